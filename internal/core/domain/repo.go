package domain

import (
	"sort"
	"strings"
	"time"
)

// ReadmeFragment is appended to a repository's canonical URL when no
// homepage is set, so DocsURL always points at something readable.
const ReadmeFragment = "#readme"

// RawRepo is a repository record as returned by the listing API.
// It is received verbatim and never mutated; optional fields are zero
// values when absent from the response.
type RawRepo struct {
	// ID is the numeric repository identifier.
	ID int64 `json:"id"`

	// Name is the repository name without the owner prefix.
	Name string `json:"name"`

	// FullName is the owner-qualified name, e.g. "octocat/hello-world".
	FullName string `json:"full_name"`

	// HTMLURL is the canonical web URL of the repository.
	HTMLURL string `json:"html_url"`

	// Description is the repository description. Empty when unset.
	Description string `json:"description"`

	// Homepage is the configured homepage URL. Empty when unset.
	Homepage string `json:"homepage"`

	// Language is the primary language. Empty when undetected.
	Language string `json:"language"`

	// Topics are the free-text labels attached to the repository.
	Topics []string `json:"topics"`

	// Stars is the stargazer count.
	Stars int `json:"stargazers_count"`

	// Forks is the fork count.
	Forks int `json:"forks_count"`

	// UpdatedAt is the last-updated timestamp.
	UpdatedAt time.Time `json:"updated_at"`

	// Archived reports whether the repository is archived.
	Archived bool `json:"archived"`

	// Fork reports whether the repository is itself a fork.
	Fork bool `json:"fork"`

	// Private reports whether the repository is private.
	Private bool `json:"private"`
}

// Repo is a normalised repository record.
//
// Invariants: AllTags contains no case-variant duplicates and every
// entry is lower-cased; DocsURL is never empty.
type Repo struct {
	RawRepo

	// AllTags is the deduplicated, lower-cased set of topics.
	AllTags []string `json:"all_tags"`

	// DocsURL is the best documentation link for the repository:
	// the trimmed homepage when set, otherwise the canonical URL
	// with a readme fragment.
	DocsURL string `json:"docs_url"`
}

// Normalize converts a raw record into its normalised form.
// It is a pure function with no failure modes: malformed optional
// fields degrade to empty defaults. Normalising the result of a
// previous normalisation yields the same Repo.
func Normalize(raw RawRepo) Repo {
	tags := make([]string, 0, len(raw.Topics))
	seen := make(map[string]struct{}, len(raw.Topics))
	for _, topic := range raw.Topics {
		tag := strings.ToLower(strings.TrimSpace(topic))
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
	}

	docsURL := strings.TrimSpace(raw.Homepage)
	if docsURL == "" {
		docsURL = raw.HTMLURL + ReadmeFragment
	}

	return Repo{
		RawRepo: raw,
		AllTags: tags,
		DocsURL: docsURL,
	}
}

// HasTag reports whether the repo carries the given tag.
// The match is case-insensitive; AllTags is already lower-cased.
func (r *Repo) HasTag(tag string) bool {
	tag = strings.ToLower(tag)
	for _, t := range r.AllTags {
		if t == tag {
			return true
		}
	}
	return false
}

// SortByRecency orders repos by last-updated timestamp, most recent
// first. The sort is stable so ties retain the server's ordering.
func SortByRecency(repos []Repo) {
	sort.SliceStable(repos, func(i, j int) bool {
		return repos[i].UpdatedAt.After(repos[j].UpdatedAt)
	})
}
