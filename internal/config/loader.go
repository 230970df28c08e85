package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	gotoml "github.com/pelletier/go-toml/v2"

	"github.com/tacogips/create-bun-stack/internal/debug"
)

// Loader defines the interface for loading configuration files.
type Loader interface {
	// Load loads configuration from the specified file path.
	Load(path string) (*Config, error)
	// LoadOrDefault loads configuration or falls back to defaults if the file doesn't exist.
	LoadOrDefault(path string) (*Config, error)
	// Validate validates the configuration.
	Validate(config *Config) error
}

// FileLoader loads configuration layered as defaults, TOML file, then environment.
type FileLoader struct{}

// NewLoader creates a new FileLoader instance.
func NewLoader() Loader {
	return &FileLoader{}
}

// Load loads configuration from the specified file path. The file must exist.
func (l *FileLoader) Load(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, NewConfigErrorWithCause(ConfigNotFound, path, "configuration file not found", err)
		}
		return nil, NewConfigErrorWithCause(ConfigInvalid, path, "failed to read configuration file", err)
	}
	return load(path)
}

// LoadOrDefault loads configuration from path. A missing file is not an error:
// defaults and environment overrides still apply.
func (l *FileLoader) LoadOrDefault(path string) (*Config, error) {
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			return load(path)
		}
		debug.Debugf("[config] %s not found, using defaults", path)
	}
	return load("")
}

// Validate validates the configuration.
func (l *FileLoader) Validate(config *Config) error {
	return Validate(config)
}

func load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaultsMap(), "."), nil); err != nil {
		return nil, NewConfigErrorWithCause(ConfigInvalid, path, "failed to load defaults", err)
	}

	if path != "" {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, NewConfigErrorWithCause(ConfigInvalid, path, "invalid TOML syntax", err)
		}
		debug.Debugf("[config] loaded %s", path)
	}

	// Conventional variables shared with the generated app.
	if err := k.Load(env.ProviderWithValue("", ".", conventionalEnv), nil); err != nil {
		return nil, NewConfigErrorWithCause(ConfigInvalid, path, "failed to read environment", err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", prefixedEnvKey), nil); err != nil {
		return nil, NewConfigErrorWithCause(ConfigInvalid, path, "failed to read environment", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, NewConfigErrorWithCause(ConfigInvalid, path, "failed to decode configuration", err)
	}

	if err := Validate(&cfg); err != nil {
		var cfgErr *ConfigError
		if errors.As(err, &cfgErr) && cfgErr.File == "" {
			cfgErr.File = path
		}
		return nil, err
	}

	return &cfg, nil
}

// conventionalEnv maps non-empty DATABASE_URL and SQLITE_PATH onto their
// config keys. Everything else is ignored.
func conventionalEnv(key, value string) (string, interface{}) {
	if value == "" {
		return "", nil
	}
	switch key {
	case "DATABASE_URL":
		return "database.url", value
	case "SQLITE_PATH":
		return "database.sqlite_path", value
	default:
		return "", nil
	}
}

// prefixedEnvKey maps CREATE_BUN_STACK_SECTION__FIELD to section.field.
func prefixedEnvKey(key string) string {
	key = strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
	return strings.ReplaceAll(key, "__", ".")
}

// Marshal encodes the configuration as TOML.
func Marshal(cfg *Config) ([]byte, error) {
	data, err := gotoml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode configuration: %w", err)
	}
	return data, nil
}

// Save writes the configuration as TOML, creating parent directories.
func Save(path string, cfg *Config) error {
	if err := Validate(cfg); err != nil {
		return err
	}

	data, err := Marshal(cfg)
	if err != nil {
		return NewConfigErrorWithCause(ConfigInvalid, path, "failed to encode configuration", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return NewConfigErrorWithCause(ConfigInvalid, path, "failed to create config directory", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return NewConfigErrorWithCause(ConfigInvalid, path, "failed to write configuration file", err)
	}

	debug.Debugf("[config] saved %s", path)
	return nil
}

// ExpandPath expands ~ to home directory and evaluates relative paths.
func ExpandPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}

	// Expand ~ to home directory
	if path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		if len(path) == 1 {
			return homeDir, nil
		}
		if path[1] == filepath.Separator {
			return filepath.Join(homeDir, path[2:]), nil
		}
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve absolute path: %w", err)
	}

	return absPath, nil
}
