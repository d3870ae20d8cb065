// Package auth provides TokenProvider implementations.
//
// The portfolio tool authenticates with a single personal access
// token, looked up from the environment first and the config file
// second. Absence of a token is not an error: requests fall back to
// the public unauthenticated rate limits.
package auth

import (
	"context"
	"os"

	"github.com/GeorgePearse/portfolio/internal/core/ports/driven"
)

// EnvToken is the environment variable consulted before the config file.
const EnvToken = "GITHUB_TOKEN"

// Ensure providers implement the TokenProvider interface.
var (
	_ driven.TokenProvider = (*StaticTokenProvider)(nil)
	_ driven.TokenProvider = (*ChainTokenProvider)(nil)
	_ driven.TokenProvider = (*EnvTokenProvider)(nil)
	_ driven.TokenProvider = (*ConfigTokenProvider)(nil)
)

// StaticTokenProvider returns a fixed token. Useful for tests and
// one-shot invocations with an explicit --token flag.
type StaticTokenProvider struct {
	token string
}

// NewStaticTokenProvider creates a provider returning the given token.
func NewStaticTokenProvider(token string) *StaticTokenProvider {
	return &StaticTokenProvider{token: token}
}

// GetToken returns the fixed token.
func (p *StaticTokenProvider) GetToken(_ context.Context) (string, error) {
	return p.token, nil
}

// EnvTokenProvider reads the token from the environment on every call.
type EnvTokenProvider struct{}

// NewEnvTokenProvider creates an environment-backed provider.
func NewEnvTokenProvider() *EnvTokenProvider {
	return &EnvTokenProvider{}
}

// GetToken returns the environment token, empty when unset.
func (p *EnvTokenProvider) GetToken(_ context.Context) (string, error) {
	return os.Getenv(EnvToken), nil
}

// ConfigTokenProvider reads the token from the config store.
type ConfigTokenProvider struct {
	config driven.ConfigStore
}

// NewConfigTokenProvider creates a config-backed provider.
func NewConfigTokenProvider(config driven.ConfigStore) *ConfigTokenProvider {
	return &ConfigTokenProvider{config: config}
}

// GetToken returns the stored token, empty when unset.
func (p *ConfigTokenProvider) GetToken(_ context.Context) (string, error) {
	if p.config == nil {
		return "", nil
	}
	return p.config.Token(), nil
}

// ChainTokenProvider returns the first non-empty token from its
// providers. Provider errors abort the chain.
type ChainTokenProvider struct {
	providers []driven.TokenProvider
}

// NewChainTokenProvider creates a chain over the given providers.
func NewChainTokenProvider(providers ...driven.TokenProvider) *ChainTokenProvider {
	return &ChainTokenProvider{providers: providers}
}

// GetToken returns the first non-empty token in the chain.
func (p *ChainTokenProvider) GetToken(ctx context.Context) (string, error) {
	for _, provider := range p.providers {
		token, err := provider.GetToken(ctx)
		if err != nil {
			return "", err
		}
		if token != "" {
			return token, nil
		}
	}
	return "", nil
}
