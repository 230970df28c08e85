package app

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/tacogips/create-bun-stack/internal/config"
	"github.com/tacogips/create-bun-stack/internal/debug"
)

// ConfigInitOptions contains options for writing the config file.
type ConfigInitOptions struct {
	// Path is the config file to write. Defaults to config.DefaultConfigPath.
	Path string
	// Force overwrites an existing file.
	Force bool
}

// InitConfig writes the default configuration as TOML and returns the path
// written.
func InitConfig(opts ConfigInitOptions) (string, error) {
	path := opts.Path
	if path == "" {
		path = config.DefaultConfigPath()
	}

	debug.DebugSection("[app] ConfigInit workflow start")
	debug.DebugValue("[app] Config path", path)
	debug.DebugValue("[app] Force", opts.Force)

	if _, err := os.Stat(path); err == nil {
		if !opts.Force {
			return "", NewConfigInitError(
				fmt.Sprintf("configuration already exists at %s (use --force to overwrite)", path),
				nil,
			)
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return "", NewConfigInitError("failed to check configuration file", err)
	}

	if err := config.Save(path, config.DefaultConfig()); err != nil {
		return "", NewConfigInitError("failed to write configuration", err)
	}

	return path, nil
}

// ShowConfig renders cfg as TOML.
func ShowConfig(cfg *config.Config) (string, error) {
	data, err := config.Marshal(cfg)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
