package domain

// Query identifies one fetch cycle: whose repositories to list and
// which inclusion filters to apply before the collection is built.
type Query struct {
	// Username is the account whose repositories are listed.
	Username string

	// IncludeForks keeps repos flagged as forks in the collection.
	IncludeForks bool

	// IncludeArchived keeps archived repos in the collection.
	IncludeArchived bool
}

// PortfolioState is the load lifecycle exposed to consumers.
//
// Err holds a human-readable message; a failed fetch never clears a
// previously successful collection, so Repos may be stale alongside
// a non-empty Err.
type PortfolioState struct {
	// Repos is the current collection, sorted by recency.
	Repos []Repo `json:"repositories"`

	// Query is the configuration the collection was loaded for.
	Query Query `json:"-"`

	// Loading reports whether a fetch cycle is in flight.
	Loading bool `json:"loading"`

	// Err is the stored error message from the last failed cycle,
	// empty after a success or before the first load.
	Err string `json:"error,omitempty"`
}

// ApplyInclusion drops raw records excluded by the query's inclusion
// flags: forks and archived repos are removed unless opted in.
func (q Query) ApplyInclusion(raw []RawRepo) []RawRepo {
	kept := make([]RawRepo, 0, len(raw))
	for _, r := range raw {
		if r.Fork && !q.IncludeForks {
			continue
		}
		if r.Archived && !q.IncludeArchived {
			continue
		}
		kept = append(kept, r)
	}
	return kept
}
