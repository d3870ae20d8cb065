package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GeorgePearse/portfolio/internal/core/domain"
)

func TestMetricsCollectCmd(t *testing.T) {
	source := &mockRepoSource{
		raw:  testListing(),
		user: &domain.User{Login: "octocat", Followers: 120},
	}
	cleanup := setupTestDeps(source, &mockConfigStore{})
	defer cleanup()

	out, err := execute(t, "metrics", "collect", "octocat")

	require.NoError(t, err)
	assert.Contains(t, out, "120 followers")
	assert.Contains(t, out, "49 total stars")
}

func TestMetricsShowCmd_Empty(t *testing.T) {
	cleanup := setupTestDeps(&mockRepoSource{}, &mockConfigStore{})
	defer cleanup()

	out, err := execute(t, "metrics", "show")

	require.NoError(t, err)
	assert.Contains(t, out, "No observations yet")
}

func TestMetricsExportCmd_Stdout(t *testing.T) {
	source := &mockRepoSource{
		raw:  testListing(),
		user: &domain.User{Login: "octocat", Followers: 120},
	}
	cleanup := setupTestDeps(source, &mockConfigStore{username: "octocat"})
	defer cleanup()

	_, err := execute(t, "metrics", "collect")
	require.NoError(t, err)

	out, err := execute(t, "metrics", "export")

	require.NoError(t, err)
	assert.Contains(t, out, "date,followers,total_stars")
	assert.Contains(t, out, ",120,49")
}
