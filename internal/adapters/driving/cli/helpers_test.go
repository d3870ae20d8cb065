package cli

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/GeorgePearse/portfolio/internal/core/domain"
	"github.com/GeorgePearse/portfolio/internal/core/services"
)

// mockRepoSource serves a fixed listing.
type mockRepoSource struct {
	raw     []domain.RawRepo
	user    *domain.User
	listErr error
	userErr error
}

func (m *mockRepoSource) ListRepos(_ context.Context, _ string) ([]domain.RawRepo, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.raw, nil
}

func (m *mockRepoSource) GetUser(_ context.Context, _ string) (*domain.User, error) {
	if m.userErr != nil {
		return nil, m.userErr
	}
	return m.user, nil
}

// mockSnapshotStore keeps the snapshot in memory.
type mockSnapshotStore struct {
	snap     *domain.Snapshot
	writeErr error
}

func (m *mockSnapshotStore) Write(_ context.Context, snap domain.Snapshot) error {
	if m.writeErr != nil {
		return m.writeErr
	}
	m.snap = &snap
	return nil
}

func (m *mockSnapshotStore) Read(_ context.Context) (*domain.Snapshot, error) {
	if m.snap == nil {
		return nil, domain.ErrNoSnapshot
	}
	return m.snap, nil
}

func (m *mockSnapshotStore) Path() string { return "/tmp/repos.json" }

// mockConfigStore is an in-memory configuration.
type mockConfigStore struct {
	username string
	token    string
	forks    bool
	archived bool
}

func (m *mockConfigStore) Username() string        { return m.username }
func (m *mockConfigStore) Token() string           { return m.token }
func (m *mockConfigStore) IncludeForks() bool      { return m.forks }
func (m *mockConfigStore) IncludeArchived() bool   { return m.archived }
func (m *mockConfigStore) Path() string            { return "/tmp/config.toml" }
func (m *mockConfigStore) SetUsername(u string) error {
	m.username = u
	return nil
}
func (m *mockConfigStore) SetToken(t string) error {
	m.token = t
	return nil
}

// mockMetricsStore keeps records keyed by day.
type mockMetricsStore struct {
	records map[string]domain.MetricsRecord
}

func newMockMetricsStore() *mockMetricsStore {
	return &mockMetricsStore{records: make(map[string]domain.MetricsRecord)}
}

func (m *mockMetricsStore) Upsert(_ context.Context, rec domain.MetricsRecord) error {
	m.records[rec.Day()] = rec
	return nil
}

func (m *mockMetricsStore) List(_ context.Context) ([]domain.MetricsRecord, error) {
	out := make([]domain.MetricsRecord, 0, len(m.records))
	for _, rec := range m.records {
		out = append(out, rec)
	}
	return out, nil
}

func (m *mockMetricsStore) Close() error { return nil }

func testListing() []domain.RawRepo {
	t1 := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	return []domain.RawRepo{
		{Name: "vision-kit", Description: "CV toolbox", Topics: []string{"cv", "ml"}, Stars: 42, UpdatedAt: t1},
		{Name: "trainer", Topics: []string{"ml"}, Stars: 7, UpdatedAt: t1.Add(-time.Hour)},
		{Name: "forked-thing", Fork: true, UpdatedAt: t1.Add(-2 * time.Hour)},
	}
}

// setupTestDeps wires real services over mock driven adapters and
// returns a cleanup restoring the previous wiring and flag state.
func setupTestDeps(source *mockRepoSource, config *mockConfigStore) func() {
	snapshots := &mockSnapshotStore{}
	metrics := newMockMetricsStore()

	SetDeps(Deps{
		Portfolio: services.NewPortfolioService(source),
		Metrics:   services.NewMetricsService(source, metrics),
		Snapshots: snapshots,
		Config:    config,
		Source:    source,
	})

	return func() {
		SetDeps(Deps{})
		reposTag, reposSearch, reposForks, reposArchived, reposJSON = "", "", false, false, false
		tagsForks, tagsArchived, tagsJSON = false, false, false
		metricsJSON, metricsOutput = false, ""
	}
}

// execute runs the root command with args and returns combined output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetIn(bytes.NewReader(nil))
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return buf.String(), err
}

func requireSnapshotStore(t *testing.T) *mockSnapshotStore {
	t.Helper()

	store, ok := snapshotStore.(*mockSnapshotStore)
	require.True(t, ok)
	return store
}
