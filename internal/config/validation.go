package config

import (
	"fmt"
	"strings"
)

var validProviders = []string{"postgres", "sqlite", "auto"}

// Validate validates the configuration.
func Validate(config *Config) error {
	if config == nil {
		return NewConfigErrorWithField(ConfigValidationFailed, "", "", "configuration is nil")
	}

	if strings.TrimSpace(config.Templates.Dir) == "" && strings.TrimSpace(config.Templates.Name) == "" {
		return NewConfigErrorWithField(ConfigValidationFailed, "", "templates.name",
			"template name is required when templates.dir is empty")
	}

	if strings.TrimSpace(config.Runtime.Command) == "" {
		return NewConfigErrorWithField(ConfigValidationFailed, "", "runtime.command",
			"runtime command cannot be empty")
	}

	if !isValidProvider(config.Database.Provider) {
		return NewConfigErrorWithField(ConfigValidationFailed, "", "database.provider",
			fmt.Sprintf("invalid provider %q (must be one of: %s)", config.Database.Provider, strings.Join(validProviders, ", ")))
	}

	if strings.TrimSpace(config.Database.SQLitePath) == "" {
		return NewConfigErrorWithField(ConfigValidationFailed, "", "database.sqlite_path",
			"sqlite path cannot be empty")
	}

	return nil
}

func isValidProvider(provider string) bool {
	for _, p := range validProviders {
		if provider == p {
			return true
		}
	}
	return false
}
