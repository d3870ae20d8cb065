// Package file provides the TOML-backed configuration store.
// Configuration lives in a single file under the portfolio config
// directory, with restricted permissions since it may hold a token.
package file

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"github.com/GeorgePearse/portfolio/internal/core/ports/driven"
)

// Ensure ConfigStore implements the interface.
var _ driven.ConfigStore = (*ConfigStore)(nil)

// config is the on-disk TOML shape.
type config struct {
	Username        string `toml:"username"`
	Token           string `toml:"token"`
	IncludeForks    bool   `toml:"include_forks"`
	IncludeArchived bool   `toml:"include_archived"`
}

// ConfigStore is a file-based implementation of driven.ConfigStore
// using TOML.
type ConfigStore struct {
	mu       sync.RWMutex
	filePath string
	cfg      config
}

// NewConfigStore creates a TOML-based config store.
// If configDir is empty, defaults to ~/.portfolio/config.toml.
func NewConfigStore(configDir string) (*ConfigStore, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		configDir = filepath.Join(home, ".portfolio")
	}

	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, err
	}

	s := &ConfigStore{
		filePath: filepath.Join(configDir, "config.toml"),
	}

	if err := s.load(); err != nil {
		return nil, err
	}

	return s, nil
}

// Username returns the default account username.
func (s *ConfigStore) Username() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg.Username
}

// Token returns the stored API credential.
func (s *ConfigStore) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg.Token
}

// IncludeForks reports the default fork inclusion setting.
func (s *ConfigStore) IncludeForks() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg.IncludeForks
}

// IncludeArchived reports the default archived inclusion setting.
func (s *ConfigStore) IncludeArchived() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg.IncludeArchived
}

// SetUsername stores the default username and persists immediately.
func (s *ConfigStore) SetUsername(username string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg.Username = username
	return s.save()
}

// SetToken stores the API credential and persists immediately.
func (s *ConfigStore) SetToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg.Token = token
	return s.save()
}

// SetInclusion stores the default inclusion flags and persists immediately.
func (s *ConfigStore) SetInclusion(forks, archived bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg.IncludeForks = forks
	s.cfg.IncludeArchived = archived
	return s.save()
}

// Path returns the configuration file path.
func (s *ConfigStore) Path() string {
	return s.filePath
}

// save writes configuration to the TOML file (caller must hold lock).
func (s *ConfigStore) save() error {
	data, err := toml.Marshal(s.cfg)
	if err != nil {
		return err
	}

	// Restricted permissions, the file may hold a token.
	return os.WriteFile(s.filePath, data, 0600)
}

// load reads configuration from the TOML file. A missing file is not
// an error: the store starts empty.
func (s *ConfigStore) load() error {
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	return toml.Unmarshal(data, &s.cfg)
}
