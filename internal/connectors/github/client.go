package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	gh "github.com/google/go-github/v80/github"
	"golang.org/x/oauth2"

	"github.com/GeorgePearse/portfolio/internal/core/domain"
	"github.com/GeorgePearse/portfolio/internal/core/ports/driven"
	"github.com/GeorgePearse/portfolio/internal/logger"
)

const (
	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 30 * time.Second

	// PageSize is the fixed listing page size. A page shorter than
	// this is the last page.
	PageSize = 100
)

// Ensure Client implements the port.
var _ driven.RepoSource = (*Client)(nil)

// Client implements driven.RepoSource over the GitHub REST API.
type Client struct {
	gh            *gh.Client
	tokenProvider driven.TokenProvider
	rateLimiter   *RateLimiter
}

// NewClient creates a GitHub client with a token provider.
// The provider may be nil, meaning unauthenticated requests.
func NewClient(tokenProvider driven.TokenProvider) *Client {
	return &Client{
		tokenProvider: tokenProvider,
		rateLimiter:   NewRateLimiter(),
	}
}

// NewClientWithHTTPClient creates a GitHub client over a custom
// http.Client. Used by tests to point at a fake API.
func NewClientWithHTTPClient(httpClient *http.Client) *Client {
	return &Client{
		gh:          gh.NewClient(httpClient),
		rateLimiter: NewRateLimiter(),
	}
}

// ensureClient initializes the go-github client if not already done.
// Called lazily so the credential is resolved when first needed.
func (c *Client) ensureClient(ctx context.Context) error {
	if c.gh != nil {
		return nil
	}

	token := ""
	if c.tokenProvider != nil {
		var err error
		token, err = c.tokenProvider.GetToken(ctx)
		if err != nil {
			return fmt.Errorf("get token: %w", err)
		}
	}

	if token == "" {
		logger.Debug("No credential configured, using unauthenticated client")
		c.gh = gh.NewClient(&http.Client{Timeout: DefaultTimeout})
		return nil
	}

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	tc := oauth2.NewClient(ctx, ts)
	tc.Timeout = DefaultTimeout
	c.gh = gh.NewClient(tc)

	return nil
}

// ListRepos returns every repository of the user in recency order,
// requesting fixed-size pages sequentially until a short page.
// Any non-success response aborts the whole listing.
func (c *Client) ListRepos(ctx context.Context, username string) ([]domain.RawRepo, error) {
	if err := c.ensureClient(ctx); err != nil {
		return nil, err
	}

	var all []domain.RawRepo

	opts := &gh.RepositoryListByUserOptions{
		Sort:        "updated",
		ListOptions: gh.ListOptions{PerPage: PageSize, Page: 1},
	}

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limit wait: %w", err)
		}

		repos, resp, err := c.gh.Repositories.ListByUser(ctx, username, opts)
		if err != nil {
			return nil, c.wrapError(err, "list repositories")
		}

		c.updateRateLimitFromResponse(resp)
		logger.Debug("Fetched page %d: %d repositories", opts.Page, len(repos))

		for _, r := range repos {
			all = append(all, toRawRepo(r))
		}

		// A short page is the last page.
		if len(repos) < PageSize {
			break
		}
		opts.Page++
	}

	return all, nil
}

// GetUser fetches account metadata for the user.
func (c *Client) GetUser(ctx context.Context, username string) (*domain.User, error) {
	if err := c.ensureClient(ctx); err != nil {
		return nil, err
	}

	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	user, resp, err := c.gh.Users.Get(ctx, username)
	if err != nil {
		wrapped := c.wrapError(err, "get user")
		if IsNotFound(wrapped) {
			return nil, fmt.Errorf("%w: %s", ErrUserNotFound, username)
		}
		return nil, wrapped
	}

	c.updateRateLimitFromResponse(resp)
	return &domain.User{
		Login:     user.GetLogin(),
		Followers: user.GetFollowers(),
	}, nil
}

// RateLimiter returns the rate limiter for external inspection.
func (c *Client) RateLimiter() *RateLimiter {
	return c.rateLimiter
}

// updateRateLimitFromResponse records rate limit headers from a response.
func (c *Client) updateRateLimitFromResponse(resp *gh.Response) {
	if resp == nil || resp.Response == nil {
		return
	}
	c.rateLimiter.UpdateFromResponse(resp.Response)
}

// wrapError converts go-github errors to this package's error types.
func (c *Client) wrapError(err error, operation string) error {
	if err == nil {
		return nil
	}

	var rateLimitErr *gh.RateLimitError
	if errors.As(err, &rateLimitErr) {
		return &RateLimitError{
			ResetAt:   rateLimitErr.Rate.Reset.Time,
			Remaining: rateLimitErr.Rate.Remaining,
			Limit:     rateLimitErr.Rate.Limit,
		}
	}

	var ghErr *gh.ErrorResponse
	if errors.As(err, &ghErr) {
		apiErr := &APIError{
			StatusCode: ghErr.Response.StatusCode,
			Message:    ghErr.Message,
		}
		// Attach quota context when the response carried it.
		if remaining := ghErr.Response.Header.Get(HeaderRateRemaining); remaining != "" {
			if val, convErr := strconv.Atoi(remaining); convErr == nil {
				apiErr.Remaining = val
			}
			if reset := ghErr.Response.Header.Get(HeaderRateReset); reset != "" {
				if val, convErr := strconv.ParseInt(reset, 10, 64); convErr == nil {
					apiErr.ResetAt = time.Unix(val, 0)
				}
			}
		}
		return apiErr
	}

	return fmt.Errorf("%s: %w", operation, err)
}

// toRawRepo converts an API repository into the domain raw record.
// Absent optional fields degrade to zero values.
func toRawRepo(r *gh.Repository) domain.RawRepo {
	return domain.RawRepo{
		ID:          r.GetID(),
		Name:        r.GetName(),
		FullName:    r.GetFullName(),
		HTMLURL:     r.GetHTMLURL(),
		Description: r.GetDescription(),
		Homepage:    r.GetHomepage(),
		Language:    r.GetLanguage(),
		Topics:      r.Topics,
		Stars:       r.GetStargazersCount(),
		Forks:       r.GetForksCount(),
		UpdatedAt:   r.GetUpdatedAt().Time,
		Archived:    r.GetArchived(),
		Fork:        r.GetFork(),
		Private:     r.GetPrivate(),
	}
}
