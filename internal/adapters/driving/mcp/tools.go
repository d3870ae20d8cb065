package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/GeorgePearse/portfolio/internal/core/domain"
)

// ListRepositoriesInput is the input schema for the list_repositories tool.
type ListRepositoriesInput struct {
	Tag   string `json:"tag,omitempty" jsonschema:"only return repositories carrying this topic tag"`
	Query string `json:"query,omitempty" jsonschema:"case-insensitive substring matched against name, description and tags"`
}

// ListRepositoriesOutput is the output schema for the list_repositories tool.
type ListRepositoriesOutput struct {
	Repositories []RepositoryOutput `json:"repositories"`
	Count        int                `json:"count"`
}

// RepositoryOutput represents a single repository in tool output.
type RepositoryOutput struct {
	Name        string   `json:"name"`
	FullName    string   `json:"full_name"`
	Description string   `json:"description,omitempty"`
	URL         string   `json:"url"`
	DocsURL     string   `json:"docs_url"`
	Language    string   `json:"language,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Stars       int      `json:"stars"`
	UpdatedAt   string   `json:"updated_at"`
}

// ListTagsOutput is the output schema for the list_tags tool.
type ListTagsOutput struct {
	Tags  []domain.TagMeta `json:"tags"`
	Count int              `json:"count"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_repositories",
		Description: "List portfolio repositories, newest activity first, optionally filtered by tag or search text",
	}, s.handleListRepositories)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_tags",
		Description: "List all topic tags across the portfolio with usage counts",
	}, s.handleListTags)
}

// handleListRepositories handles the list_repositories tool invocation.
func (s *Server) handleListRepositories(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input ListRepositoriesInput,
) (*mcp.CallToolResult, ListRepositoriesOutput, error) {
	filter := domain.Filter{Tag: input.Tag, Query: input.Query}
	repos := s.ports.Portfolio.Repos(filter)

	output := ListRepositoriesOutput{
		Repositories: make([]RepositoryOutput, len(repos)),
		Count:        len(repos),
	}

	for i := range repos {
		output.Repositories[i] = RepositoryOutput{
			Name:        repos[i].Name,
			FullName:    repos[i].FullName,
			Description: repos[i].Description,
			URL:         repos[i].HTMLURL,
			DocsURL:     repos[i].DocsURL,
			Language:    repos[i].Language,
			Tags:        repos[i].AllTags,
			Stars:       repos[i].Stars,
			UpdatedAt:   repos[i].UpdatedAt.Format("2006-01-02"),
		}
	}

	return nil, output, nil
}

// handleListTags handles the list_tags tool invocation.
func (s *Server) handleListTags(
	_ context.Context,
	_ *mcp.CallToolRequest,
	_ struct{},
) (*mcp.CallToolResult, ListTagsOutput, error) {
	tags := s.ports.Portfolio.Tags()
	return nil, ListTagsOutput{Tags: tags, Count: len(tags)}, nil
}
