package github

import (
	"errors"
	"fmt"
	"time"
)

// ErrUserNotFound indicates the account does not exist or is not visible.
var ErrUserNotFound = errors.New("github: user not found")

// RateLimitError represents a rate limit exceeded error with reset time.
type RateLimitError struct {
	ResetAt   time.Time
	Remaining int
	Limit     int
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("github: rate limit exceeded, resets at %s", e.ResetAt.Format(time.RFC3339))
}

// APIError represents a GitHub API error response. Remaining and
// ResetAt carry the rate-limit response headers when they were present,
// so callers can tell a quota exhaustion from a plain failure.
type APIError struct {
	StatusCode int
	Message    string
	Remaining  int
	ResetAt    time.Time
}

func (e *APIError) Error() string {
	msg := fmt.Sprintf("github: API error %d: %s", e.StatusCode, e.Message)
	if !e.ResetAt.IsZero() {
		msg += fmt.Sprintf(" (rate limit remaining: %d, resets at %s)",
			e.Remaining, e.ResetAt.Format(time.RFC3339))
	}
	return msg
}

// IsNotFound checks if the error indicates a resource was not found.
func IsNotFound(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == 404
	}
	return errors.Is(err, ErrUserNotFound)
}

// IsRateLimited checks if the error indicates rate limiting.
func IsRateLimited(err error) bool {
	var rateLimitErr *RateLimitError
	return errors.As(err, &rateLimitErr)
}

// IsUnauthorized checks if the error indicates an authentication failure.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == 401
	}
	return false
}
