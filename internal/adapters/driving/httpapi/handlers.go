package httpapi

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/GeorgePearse/portfolio/internal/core/domain"
)

func (s *Server) listRepos(c *gin.Context) {
	filter := domain.Filter{
		Tag:   c.Query("tag"),
		Query: c.Query("q"),
	}

	repos := s.portfolio.Repos(filter)

	// forks=false / archived=false trim the served collection further;
	// by default whatever the load included is returned.
	if !parseBool(c.Query("forks"), true) {
		repos = withoutForks(repos)
	}
	if !parseBool(c.Query("archived"), true) {
		repos = withoutArchived(repos)
	}

	c.JSON(http.StatusOK, gin.H{
		"total": len(repos),
		"items": repos,
	})
}

func (s *Server) listTags(c *gin.Context) {
	tags := s.portfolio.Tags()
	c.JSON(http.StatusOK, gin.H{
		"total": len(tags),
		"items": tags,
	})
}

func (s *Server) status(c *gin.Context) {
	state := s.portfolio.State()

	body := gin.H{
		"username":         state.Query.Username,
		"repository_count": len(state.Repos),
		"loading":          state.Loading,
	}
	if state.Err != "" {
		body["error"] = state.Err
	}

	code := http.StatusOK
	if state.Err != "" && len(state.Repos) == 0 {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, body)
}

func parseBool(raw string, fallback bool) bool {
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return fallback
	}
	return v
}

func withoutForks(repos []domain.Repo) []domain.Repo {
	out := make([]domain.Repo, 0, len(repos))
	for _, r := range repos {
		if !r.Fork {
			out = append(out, r)
		}
	}
	return out
}

func withoutArchived(repos []domain.Repo) []domain.Repo {
	out := make([]domain.Repo, 0, len(repos))
	for _, r := range repos {
		if !r.Archived {
			out = append(out, r)
		}
	}
	return out
}
