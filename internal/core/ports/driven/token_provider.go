package driven

import "context"

// TokenProvider provides access tokens for authenticated API calls.
//
// An empty token is not an error: requests are made unauthenticated
// and are subject to the service's lower public rate limits.
type TokenProvider interface {
	// GetToken returns the access token to attach to requests.
	// Returns empty string when no credential is configured.
	GetToken(ctx context.Context) (string, error)
}
