package config

// Config is the create-bun-stack configuration. It is built once at startup
// and passed explicitly to everything that needs it.
type Config struct {
	// Templates selects the template source.
	Templates TemplatesConfig `koanf:"templates" toml:"templates"`
	// Runtime configures the JavaScript runtime used for post-copy steps.
	Runtime RuntimeConfig `koanf:"runtime" toml:"runtime"`
	// Database holds the default database choice and connection settings.
	Database DatabaseConfig `koanf:"database" toml:"database"`
	// Output configures display.
	Output OutputConfig `koanf:"output" toml:"output"`
}

// TemplatesConfig represents template selection settings.
type TemplatesConfig struct {
	// Dir is a local template directory. Empty means the built-in catalog.
	Dir string `koanf:"dir" toml:"dir"`
	// Name is the built-in template to use.
	Name string `koanf:"name" toml:"name"`
}

// RuntimeConfig represents the runtime used to install and run scripts.
type RuntimeConfig struct {
	// Command is the runtime binary (e.g. "bun").
	Command string `koanf:"command" toml:"command"`
}

// DatabaseConfig represents database defaults.
type DatabaseConfig struct {
	// Provider is the default database provider: postgres, sqlite or auto.
	Provider string `koanf:"provider" toml:"provider"`
	// URL is the PostgreSQL connection URL probed during database setup.
	URL string `koanf:"url" toml:"url"`
	// SQLitePath is the SQLite database file, relative to the project root.
	SQLitePath string `koanf:"sqlite_path" toml:"sqlite_path"`
}

// OutputConfig represents output and display settings.
type OutputConfig struct {
	// Color enables colored terminal output.
	Color bool `koanf:"color" toml:"color"`
	// Quiet suppresses non-error output.
	Quiet bool `koanf:"quiet" toml:"quiet"`
	// Banner shows the welcome banner.
	Banner bool `koanf:"banner" toml:"banner"`
}
