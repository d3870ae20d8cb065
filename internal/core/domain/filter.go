package domain

import "strings"

// Filter is the interactive filter state over a collection: at most
// one selected tag and a free-text search query. The zero value
// matches every repo.
type Filter struct {
	// Tag is the selected tag. Empty means no tag clause.
	Tag string

	// Query is the free-text search string. Matched case-insensitively
	// against name, description and tags. Whitespace-only means no
	// search clause.
	Query string
}

// IsZero reports whether the filter has no active clauses.
func (f Filter) IsZero() bool {
	return f.Tag == "" && strings.TrimSpace(f.Query) == ""
}

// Matches reports whether a repo passes both the tag clause and the
// search clause. Clauses are conjunctive; an empty clause passes
// unconditionally.
func (f Filter) Matches(r *Repo) bool {
	if f.Tag != "" && !r.HasTag(f.Tag) {
		return false
	}

	query := strings.ToLower(strings.TrimSpace(f.Query))
	if query == "" {
		return true
	}

	if strings.Contains(strings.ToLower(r.Name), query) {
		return true
	}
	if strings.Contains(strings.ToLower(r.Description), query) {
		return true
	}
	for _, tag := range r.AllTags {
		if strings.Contains(tag, query) {
			return true
		}
	}
	return false
}

// Apply returns the visible subset of the collection, preserving
// order. The input slice is never mutated.
func (f Filter) Apply(repos []Repo) []Repo {
	if f.IsZero() {
		out := make([]Repo, len(repos))
		copy(out, repos)
		return out
	}

	out := make([]Repo, 0, len(repos))
	for i := range repos {
		if f.Matches(&repos[i]) {
			out = append(out, repos[i])
		}
	}
	return out
}
