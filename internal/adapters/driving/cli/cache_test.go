package cli

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCachePrimeCmd_WritesSnapshot(t *testing.T) {
	cleanup := setupTestDeps(&mockRepoSource{raw: testListing()}, &mockConfigStore{})
	defer cleanup()

	out, err := execute(t, "cache", "prime", "octocat")

	require.NoError(t, err)
	assert.Contains(t, out, "Snapshot of 3 repositories")

	snap := requireSnapshotStore(t).snap
	require.NotNil(t, snap)
	assert.Equal(t, "octocat", snap.Username)
	assert.Equal(t, 3, snap.RepositoryCount)
	// raw records, pre-normalisation and pre-inclusion-filtering
	assert.Len(t, snap.Repositories, 3)
}

func TestCachePrimeCmd_FetchFailureWritesNothing(t *testing.T) {
	cleanup := setupTestDeps(&mockRepoSource{listErr: errors.New("listing repos: 502")}, &mockConfigStore{})
	defer cleanup()

	_, err := execute(t, "cache", "prime", "octocat")

	require.Error(t, err)
	assert.Nil(t, requireSnapshotStore(t).snap)
}
