package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_TagsLowercasedAndDeduplicated(t *testing.T) {
	tests := []struct {
		name   string
		topics []string
		want   []string
	}{
		{
			name:   "case variants collapse",
			topics: []string{"CV", "cv", "Cv"},
			want:   []string{"cv"},
		},
		{
			name:   "order of first occurrence kept",
			topics: []string{"ML", "vision", "ml", "Vision"},
			want:   []string{"ml", "vision"},
		},
		{
			name:   "whitespace and empties dropped",
			topics: []string{" go ", "", "  "},
			want:   []string{"go"},
		},
		{
			name:   "nil topics",
			topics: nil,
			want:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := Normalize(RawRepo{Name: "r", HTMLURL: "https://example.com/r", Topics: tt.topics})
			assert.Equal(t, tt.want, repo.AllTags)
		})
	}
}

func TestNormalize_DocsURL(t *testing.T) {
	tests := []struct {
		name     string
		homepage string
		htmlURL  string
		want     string
	}{
		{
			name:     "homepage wins",
			homepage: "https://docs.example.com",
			htmlURL:  "https://github.com/u/r",
			want:     "https://docs.example.com",
		},
		{
			name:     "homepage trimmed",
			homepage: "  https://docs.example.com  ",
			htmlURL:  "https://github.com/u/r",
			want:     "https://docs.example.com",
		},
		{
			name:     "empty homepage falls back to readme",
			homepage: "",
			htmlURL:  "https://github.com/u/r",
			want:     "https://github.com/u/r#readme",
		},
		{
			name:     "whitespace homepage falls back to readme",
			homepage: "   ",
			htmlURL:  "https://github.com/u/r",
			want:     "https://github.com/u/r#readme",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := Normalize(RawRepo{Homepage: tt.homepage, HTMLURL: tt.htmlURL})
			assert.Equal(t, tt.want, repo.DocsURL)
			assert.NotEmpty(t, repo.DocsURL)
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	raw := RawRepo{
		Name:     "vision-kit",
		HTMLURL:  "https://github.com/u/vision-kit",
		Homepage: " https://vision.example.com ",
		Topics:   []string{"CV", "cv", "Deep-Learning"},
	}

	once := Normalize(raw)
	twice := Normalize(once.RawRepo)

	assert.Equal(t, once.AllTags, twice.AllTags)
	assert.Equal(t, once.DocsURL, twice.DocsURL)
}

func TestRepo_HasTag(t *testing.T) {
	repo := Normalize(RawRepo{Topics: []string{"ml", "computer-vision"}})

	assert.True(t, repo.HasTag("ml"))
	assert.True(t, repo.HasTag("ML"))
	assert.True(t, repo.HasTag("computer-vision"))
	assert.False(t, repo.HasTag("vision"))
}

func TestSortByRecency(t *testing.T) {
	t1 := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	t2 := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	t3 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	repos := []Repo{
		Normalize(RawRepo{Name: "oldest", UpdatedAt: t3}),
		Normalize(RawRepo{Name: "newest", UpdatedAt: t1}),
		Normalize(RawRepo{Name: "middle", UpdatedAt: t2}),
	}

	SortByRecency(repos)

	require.Len(t, repos, 3)
	assert.Equal(t, "newest", repos[0].Name)
	assert.Equal(t, "middle", repos[1].Name)
	assert.Equal(t, "oldest", repos[2].Name)
}

func TestSortByRecency_StableOnTies(t *testing.T) {
	ts := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	repos := []Repo{
		Normalize(RawRepo{Name: "first", UpdatedAt: ts}),
		Normalize(RawRepo{Name: "second", UpdatedAt: ts}),
	}

	SortByRecency(repos)

	assert.Equal(t, "first", repos[0].Name)
	assert.Equal(t, "second", repos[1].Name)
}
