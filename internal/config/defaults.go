package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

const (
	// AppName is used for the config directory and environment prefix.
	AppName = "create-bun-stack"
	// EnvPrefix prefixes environment overrides, e.g. CREATE_BUN_STACK_RUNTIME__COMMAND.
	EnvPrefix = "CREATE_BUN_STACK_"
	// ConfigFileName is the config file name inside the config directory.
	ConfigFileName = "config.toml"
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Templates: TemplatesConfig{
			Dir:  "",
			Name: "default",
		},
		Runtime: RuntimeConfig{
			Command: "bun",
		},
		Database: DatabaseConfig{
			Provider:   "auto",
			URL:        "",
			SQLitePath: "./db/app.db",
		},
		Output: OutputConfig{
			Color:  true,
			Quiet:  false,
			Banner: true,
		},
	}
}

// defaultsMap is DefaultConfig flattened into koanf keys.
func defaultsMap() map[string]interface{} {
	d := DefaultConfig()
	return map[string]interface{}{
		"templates.dir":        d.Templates.Dir,
		"templates.name":       d.Templates.Name,
		"runtime.command":      d.Runtime.Command,
		"database.provider":    d.Database.Provider,
		"database.url":         d.Database.URL,
		"database.sqlite_path": d.Database.SQLitePath,
		"output.color":         d.Output.Color,
		"output.quiet":         d.Output.Quiet,
		"output.banner":        d.Output.Banner,
	}
}

// DefaultConfigPath returns the default configuration file path
// ($XDG_CONFIG_HOME/create-bun-stack/config.toml).
func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, AppName, ConfigFileName)
}
