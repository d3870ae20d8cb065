package domain

import "time"

// Snapshot is the offline cache artifact: the raw records from one
// complete fetch cycle, written to disk for build-time availability
// and used as a fallback data source when the listing API is down.
type Snapshot struct {
	// GeneratedAt is when the snapshot was taken.
	GeneratedAt time.Time `json:"generated_at"`

	// Username is the account the snapshot was taken for.
	Username string `json:"username"`

	// RepositoryCount is len(Repositories), kept explicit so the
	// artifact is self-describing for external tooling.
	RepositoryCount int `json:"repository_count"`

	// Repositories are the raw records, pre-normalisation.
	Repositories []RawRepo `json:"repositories"`
}

// NewSnapshot builds a snapshot for a user from raw records.
func NewSnapshot(username string, raw []RawRepo) Snapshot {
	return Snapshot{
		GeneratedAt:     time.Now().UTC(),
		Username:        username,
		RepositoryCount: len(raw),
		Repositories:    raw,
	}
}
