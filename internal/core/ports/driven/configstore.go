package driven

// ConfigStore provides access to application configuration.
// Implementations handle persistence (e.g., TOML files).
type ConfigStore interface {
	// Username returns the default account username. Empty when unset.
	Username() string

	// Token returns the stored API credential. Empty when unset.
	Token() string

	// IncludeForks reports whether forked repos are included by default.
	IncludeForks() bool

	// IncludeArchived reports whether archived repos are included by default.
	IncludeArchived() bool

	// SetUsername stores the default username and persists immediately.
	SetUsername(username string) error

	// SetToken stores the API credential and persists immediately.
	SetToken(token string) error

	// Path returns the configuration file path.
	Path() string
}
