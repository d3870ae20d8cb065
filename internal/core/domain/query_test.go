package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuery_ApplyInclusion(t *testing.T) {
	raw := []RawRepo{
		{Name: "plain"},
		{Name: "forked", Fork: true},
		{Name: "attic", Archived: true},
		{Name: "forked-attic", Fork: true, Archived: true},
	}

	tests := []struct {
		name  string
		query Query
		want  []string
	}{
		{
			name:  "defaults exclude forks and archived",
			query: Query{},
			want:  []string{"plain"},
		},
		{
			name:  "forks opted in",
			query: Query{IncludeForks: true},
			want:  []string{"plain", "forked"},
		},
		{
			name:  "archived opted in",
			query: Query{IncludeArchived: true},
			want:  []string{"plain", "attic"},
		},
		{
			name:  "everything opted in",
			query: Query{IncludeForks: true, IncludeArchived: true},
			want:  []string{"plain", "forked", "attic", "forked-attic"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kept := tt.query.ApplyInclusion(raw)

			names := make([]string, len(kept))
			for i, r := range kept {
				names[i] = r.Name
			}
			assert.Equal(t, tt.want, names)
		})
	}
}

func TestNewSnapshot(t *testing.T) {
	raw := []RawRepo{{Name: "a"}, {Name: "b"}}

	snap := NewSnapshot("octocat", raw)

	assert.Equal(t, "octocat", snap.Username)
	assert.Equal(t, 2, snap.RepositoryCount)
	require.Len(t, snap.Repositories, 2)
	assert.False(t, snap.GeneratedAt.IsZero())
}
