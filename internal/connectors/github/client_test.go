package github

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"testing"
	"time"

	gh "github.com/google/go-github/v80/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

// mockTokenProvider implements driven.TokenProvider for testing.
type mockTokenProvider struct {
	token string
	err   error
}

func (p *mockTokenProvider) GetToken(_ context.Context) (string, error) {
	return p.token, p.err
}

// newTestClient points a Client at a fake API server and removes the
// proactive throttle so tests run instantly.
func newTestClient(t *testing.T, server *httptest.Server) *Client {
	t.Helper()

	c := NewClientWithHTTPClient(server.Client())
	baseURL, err := url.Parse(server.URL + "/")
	require.NoError(t, err)
	c.gh.BaseURL = baseURL
	c.rateLimiter.bucket = rate.NewLimiter(rate.Inf, 1)
	return c
}

// fakeRepoPage renders n repository records for a page.
func fakeRepoPage(page, n int) []map[string]any {
	repos := make([]map[string]any, n)
	for i := 0; i < n; i++ {
		id := (page-1)*PageSize + i
		repos[i] = map[string]any{
			"id":               id,
			"name":             fmt.Sprintf("repo-%d", id),
			"html_url":         fmt.Sprintf("https://github.com/octocat/repo-%d", id),
			"stargazers_count": id,
			"updated_at":       time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC).Add(-time.Duration(id) * time.Hour).Format(time.RFC3339),
		}
	}
	return repos
}

func TestClient_ListRepos_Pagination(t *testing.T) {
	tests := []struct {
		name         string
		pageSizes    []int
		wantRepos    int
		wantRequests int
	}{
		{
			name:         "two full pages then short page",
			pageSizes:    []int{100, 100, 37},
			wantRepos:    237,
			wantRequests: 3,
		},
		{
			name:         "single short page",
			pageSizes:    []int{12},
			wantRepos:    12,
			wantRequests: 1,
		},
		{
			name:         "empty first page",
			pageSizes:    []int{0},
			wantRepos:    0,
			wantRequests: 1,
		},
		{
			name:         "full page then empty terminal page",
			pageSizes:    []int{100, 0},
			wantRepos:    100,
			wantRequests: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			requests := 0
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				requests++
				assert.Equal(t, "/users/octocat/repos", r.URL.Path)
				assert.Equal(t, strconv.Itoa(PageSize), r.URL.Query().Get("per_page"))
				assert.Equal(t, "updated", r.URL.Query().Get("sort"))

				page, _ := strconv.Atoi(r.URL.Query().Get("page"))
				if page == 0 {
					page = 1
				}
				require.LessOrEqual(t, page, len(tt.pageSizes), "requested page past the last")

				w.Header().Set("Content-Type", "application/json")
				json.NewEncoder(w).Encode(fakeRepoPage(page, tt.pageSizes[page-1]))
			}))
			defer server.Close()

			c := newTestClient(t, server)
			repos, err := c.ListRepos(context.Background(), "octocat")

			require.NoError(t, err)
			assert.Len(t, repos, tt.wantRepos)
			assert.Equal(t, tt.wantRequests, requests)
		})
	}
}

func TestClient_ListRepos_PagesRequestedInOrder(t *testing.T) {
	var pages []int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		if page == 0 {
			page = 1
		}
		pages = append(pages, page)

		size := PageSize
		if page == 3 {
			size = 1
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(fakeRepoPage(page, size))
	}))
	defer server.Close()

	c := newTestClient(t, server)
	repos, err := c.ListRepos(context.Background(), "octocat")

	require.NoError(t, err)
	assert.Len(t, repos, 201)
	assert.Equal(t, []int{1, 2, 3}, pages)
}

func TestClient_ListRepos_FailureAbortsWholeCycle(t *testing.T) {
	requests := 0
	resetAt := time.Now().Add(30 * time.Minute).Unix()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		if page <= 1 {
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(fakeRepoPage(1, PageSize))
			return
		}

		w.Header().Set(HeaderRateRemaining, "7")
		w.Header().Set(HeaderRateReset, strconv.FormatInt(resetAt, 10))
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprint(w, `{"message":"server error"}`)
	}))
	defer server.Close()

	c := newTestClient(t, server)
	repos, err := c.ListRepos(context.Background(), "octocat")

	// No partial result on failure.
	require.Error(t, err)
	assert.Nil(t, repos)
	assert.Equal(t, 2, requests)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Equal(t, 7, apiErr.Remaining)
	assert.Equal(t, time.Unix(resetAt, 0), apiErr.ResetAt)
	assert.Contains(t, apiErr.Error(), "rate limit remaining: 7")
}

func TestClient_ListRepos_UpdatesRateLimiterFromHeaders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(HeaderRateLimit, "5000")
		w.Header().Set(HeaderRateRemaining, "4321")
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(fakeRepoPage(1, 1))
	}))
	defer server.Close()

	c := newTestClient(t, server)
	_, err := c.ListRepos(context.Background(), "octocat")

	require.NoError(t, err)
	assert.Equal(t, 4321, c.RateLimiter().Remaining())
	assert.Equal(t, 5000, c.RateLimiter().Limit())
}

func TestClient_ListRepos_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(fakeRepoPage(1, PageSize))
	}))
	defer server.Close()

	c := newTestClient(t, server)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.ListRepos(ctx, "octocat")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestClient_GetUser(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/octocat", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"login":"octocat","followers":99}`)
	}))
	defer server.Close()

	c := newTestClient(t, server)
	user, err := c.GetUser(context.Background(), "octocat")

	require.NoError(t, err)
	assert.Equal(t, "octocat", user.Login)
	assert.Equal(t, 99, user.Followers)
}

func TestClient_GetUser_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"message":"Not Found"}`)
	}))
	defer server.Close()

	c := newTestClient(t, server)
	_, err := c.GetUser(context.Background(), "nobody")

	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestToRawRepo_OptionalFieldsDegrade(t *testing.T) {
	raw := toRawRepo(&gh.Repository{})

	assert.Empty(t, raw.Name)
	assert.Empty(t, raw.Description)
	assert.Empty(t, raw.Homepage)
	assert.Nil(t, raw.Topics)
	assert.True(t, raw.UpdatedAt.IsZero())
}

func TestNewClient_NilTokenProvider(t *testing.T) {
	c := NewClient(nil)
	require.NotNil(t, c)

	err := c.ensureClient(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, c.gh)
}

func TestNewClient_TokenProviderError(t *testing.T) {
	c := NewClient(&mockTokenProvider{err: assert.AnError})

	err := c.ensureClient(context.Background())
	assert.Error(t, err)
}
