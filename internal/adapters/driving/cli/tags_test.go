package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagsCmd_Table(t *testing.T) {
	cleanup := setupTestDeps(&mockRepoSource{raw: testListing()}, &mockConfigStore{})
	defer cleanup()

	out, err := execute(t, "tags", "octocat")

	require.NoError(t, err)
	assert.Contains(t, out, "cv")
	assert.Contains(t, out, "ml")
	// ml appears on two repos
	assert.Regexp(t, `ml\s+2`, out)
}

func TestTagsCmd_JSON(t *testing.T) {
	cleanup := setupTestDeps(&mockRepoSource{raw: testListing()}, &mockConfigStore{})
	defer cleanup()

	out, err := execute(t, "tags", "octocat", "--json")

	require.NoError(t, err)
	assert.Contains(t, out, `"label"`)
	assert.Contains(t, out, `"count"`)
}

func TestTagsCmd_Empty(t *testing.T) {
	cleanup := setupTestDeps(&mockRepoSource{}, &mockConfigStore{})
	defer cleanup()

	out, err := execute(t, "tags", "octocat")

	require.NoError(t, err)
	assert.Contains(t, out, "No tags found.")
}
