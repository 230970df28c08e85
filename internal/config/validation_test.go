package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		field   string
		wantErr bool
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "postgres", mutate: func(c *Config) { c.Database.Provider = "postgres" }},
		{name: "sqlite", mutate: func(c *Config) { c.Database.Provider = "sqlite" }},
		{
			name:    "unknown provider",
			mutate:  func(c *Config) { c.Database.Provider = "mysql" },
			field:   "database.provider",
			wantErr: true,
		},
		{
			name:    "empty runtime",
			mutate:  func(c *Config) { c.Runtime.Command = "" },
			field:   "runtime.command",
			wantErr: true,
		},
		{
			name:    "no template source",
			mutate:  func(c *Config) { c.Templates.Name = "" },
			field:   "templates.name",
			wantErr: true,
		},
		{
			name: "template dir without name",
			mutate: func(c *Config) {
				c.Templates.Name = ""
				c.Templates.Dir = "./my-templates"
			},
		},
		{
			name:    "empty sqlite path",
			mutate:  func(c *Config) { c.Database.SQLitePath = "" },
			field:   "database.sqlite_path",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := Validate(cfg)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			var cfgErr *ConfigError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, ConfigValidationFailed, cfgErr.Type)
			assert.Equal(t, tt.field, cfgErr.Field)
		})
	}
}

func TestValidate_Nil(t *testing.T) {
	assert.Error(t, Validate(nil))
}

func TestConfigError_Error(t *testing.T) {
	err := NewConfigErrorWithField(ConfigValidationFailed, "cfg.toml", "runtime.command", "empty")
	assert.Equal(t, "configuration error in cfg.toml [field: runtime.command]: empty", err.Error())

	err = &ConfigError{Type: ConfigInvalid, Message: "bad"}
	assert.Equal(t, "configuration error in <config>: bad", err.Error())
}
