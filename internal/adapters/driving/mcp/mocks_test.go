package mcp

import (
	"context"

	"github.com/GeorgePearse/portfolio/internal/core/domain"
)

// mockPortfolioService is a mock implementation of driving.PortfolioService.
type mockPortfolioService struct {
	repos []domain.Repo
	state domain.PortfolioState
}

func (m *mockPortfolioService) Load(_ context.Context, _ domain.Query) error {
	return nil
}

func (m *mockPortfolioService) State() domain.PortfolioState {
	return m.state
}

func (m *mockPortfolioService) Repos(filter domain.Filter) []domain.Repo {
	return filter.Apply(m.repos)
}

func (m *mockPortfolioService) Tags() []domain.TagMeta {
	return domain.AggregateTags(m.repos)
}

func (m *mockPortfolioService) Replace(_ domain.Query, _ []domain.RawRepo) {}
