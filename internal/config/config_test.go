package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks variables that would otherwise leak host settings into loads.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"DATABASE_URL",
		"SQLITE_PATH",
		EnvPrefix + "TEMPLATES__DIR",
		EnvPrefix + "TEMPLATES__NAME",
		EnvPrefix + "RUNTIME__COMMAND",
		EnvPrefix + "DATABASE__PROVIDER",
		EnvPrefix + "DATABASE__URL",
		EnvPrefix + "DATABASE__SQLITE_PATH",
		EnvPrefix + "OUTPUT__COLOR",
		EnvPrefix + "OUTPUT__QUIET",
		EnvPrefix + "OUTPUT__BANNER",
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "", cfg.Templates.Dir)
	assert.Equal(t, "default", cfg.Templates.Name)
	assert.Equal(t, "bun", cfg.Runtime.Command)
	assert.Equal(t, "auto", cfg.Database.Provider)
	assert.Equal(t, "", cfg.Database.URL)
	assert.Equal(t, "./db/app.db", cfg.Database.SQLitePath)
	assert.True(t, cfg.Output.Color)
	assert.False(t, cfg.Output.Quiet)
	assert.True(t, cfg.Output.Banner)
	assert.NoError(t, Validate(cfg))
}

func TestDefaultConfigPath(t *testing.T) {
	path := DefaultConfigPath()
	assert.Equal(t, ConfigFileName, filepath.Base(path))
	assert.Equal(t, AppName, filepath.Base(filepath.Dir(path)))
}

func TestLoadOrDefault_MissingFile(t *testing.T) {
	clearEnv(t)

	cfg, err := NewLoader().LoadOrDefault(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadOrDefault_EmptyPath(t *testing.T) {
	clearEnv(t)

	cfg, err := NewLoader().LoadOrDefault("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_File(t *testing.T) {
	clearEnv(t)

	path := writeConfig(t, `
[runtime]
command = "/opt/bun/bin/bun"

[database]
provider = "sqlite"
sqlite_path = "./data/dev.db"

[output]
banner = false
`)

	cfg, err := NewLoader().Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/opt/bun/bin/bun", cfg.Runtime.Command)
	assert.Equal(t, "sqlite", cfg.Database.Provider)
	assert.Equal(t, "./data/dev.db", cfg.Database.SQLitePath)
	assert.False(t, cfg.Output.Banner)

	// Untouched keys keep their defaults.
	assert.Equal(t, "default", cfg.Templates.Name)
	assert.True(t, cfg.Output.Color)
}

func TestLoad_NotFound(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "missing.toml")
	_, err := NewLoader().Load(path)
	require.Error(t, err)
	assert.True(t, IsNotFound(err))

	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, path, cfgErr.File)
}

func TestLoad_InvalidTOML(t *testing.T) {
	clearEnv(t)

	path := writeConfig(t, "[runtime\ncommand = ")
	_, err := NewLoader().Load(path)
	require.Error(t, err)

	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, ConfigInvalid, cfgErr.Type)
	assert.False(t, IsNotFound(err))
}

func TestLoad_InvalidProvider(t *testing.T) {
	clearEnv(t)

	path := writeConfig(t, "[database]\nprovider = \"mysql\"\n")
	_, err := NewLoader().Load(path)
	require.Error(t, err)

	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, ConfigValidationFailed, cfgErr.Type)
	assert.Equal(t, "database.provider", cfgErr.Field)
	assert.Equal(t, path, cfgErr.File)
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)

	path := writeConfig(t, "[database]\nprovider = \"sqlite\"\n")
	t.Setenv(EnvPrefix+"DATABASE__PROVIDER", "postgres")
	t.Setenv(EnvPrefix+"RUNTIME__COMMAND", "bunx")
	t.Setenv(EnvPrefix+"OUTPUT__QUIET", "true")

	cfg, err := NewLoader().Load(path)
	require.NoError(t, err)

	assert.Equal(t, "postgres", cfg.Database.Provider)
	assert.Equal(t, "bunx", cfg.Runtime.Command)
	assert.True(t, cfg.Output.Quiet)
}

func TestLoad_ConventionalEnv(t *testing.T) {
	clearEnv(t)

	t.Setenv("DATABASE_URL", "postgres://localhost:5432/blog_dev")
	t.Setenv("SQLITE_PATH", "./tmp/blog.db")

	cfg, err := NewLoader().LoadOrDefault("")
	require.NoError(t, err)

	assert.Equal(t, "postgres://localhost:5432/blog_dev", cfg.Database.URL)
	assert.Equal(t, "./tmp/blog.db", cfg.Database.SQLitePath)
}

func TestLoad_PrefixedEnvWinsOverConventional(t *testing.T) {
	clearEnv(t)

	t.Setenv("DATABASE_URL", "postgres://localhost/one")
	t.Setenv(EnvPrefix+"DATABASE__URL", "postgres://localhost/two")

	cfg, err := NewLoader().LoadOrDefault("")
	require.NoError(t, err)
	assert.Equal(t, "postgres://localhost/two", cfg.Database.URL)
}

func TestSaveAndLoad(t *testing.T) {
	clearEnv(t)

	cfg := DefaultConfig()
	cfg.Templates.Dir = "/srv/templates/bun"
	cfg.Database.Provider = "postgres"
	cfg.Output.Color = false

	path := filepath.Join(t.TempDir(), "nested", "dir", ConfigFileName)
	require.NoError(t, Save(path, cfg))

	loaded, err := NewLoader().Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestSave_RejectsInvalid(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Runtime.Command = "  "

	path := filepath.Join(t.TempDir(), ConfigFileName)
	err := Save(path, cfg)
	require.Error(t, err)
	assert.NoFileExists(t, path)
}

func TestMarshal(t *testing.T) {
	data, err := Marshal(DefaultConfig())
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, "[templates]")
	assert.Contains(t, out, "[runtime]")
	assert.Regexp(t, `command = ['"]bun['"]`, out)
	assert.Regexp(t, `sqlite_path = ['"]\./db/app\.db['"]`, out)
	assert.Contains(t, out, "[output]")
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: ""},
		{name: "tilde", in: "~", want: home},
		{name: "tilde subdir", in: "~/templates", want: filepath.Join(home, "templates")},
		{name: "absolute", in: "/tmp/x", want: "/tmp/x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExpandPath(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	rel, err := ExpandPath("relative/dir")
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(rel))
}
