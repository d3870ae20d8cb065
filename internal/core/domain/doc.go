// Package domain defines the core business entities for the portfolio tool.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - RawRepo: A repository record as returned by the listing API
//   - Repo: A normalised repository with derived tags and docs link
//   - TagMeta: A tag label with its frequency in the current collection
//   - Filter: An interactive tag/search filter over the collection
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
