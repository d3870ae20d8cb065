// Package github implements the driven.RepoSource port against the
// GitHub REST API using google/go-github.
//
// # Pagination
//
// The listing endpoint is paged. Pages of 100 records are requested
// sequentially starting at page 1, sorted by recency server-side; a
// short page (fewer than 100 records) is the last page and terminates
// the cycle after being included. Page N+1 is never requested before
// page N's response has been incorporated.
//
// # Authentication
//
// A credential from the TokenProvider is attached as a bearer token on
// every request. An empty credential degrades to unauthenticated
// requests, which are subject to GitHub's lower public rate limits.
//
// # Failure
//
// Any non-success response aborts the whole listing with an APIError
// carrying the HTTP status and, when present, the remaining-rate-limit
// and reset-time headers. No retry is attempted; callers decide
// whether to re-invoke the operation.
package github
