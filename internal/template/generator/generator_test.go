package generator

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTree creates files under root from a path -> content map.
func writeTree(t *testing.T, root string, files map[string][]byte) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(root, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, content, 0644))
	}
}

func TestCopyDirectory_EndToEnd(t *testing.T) {
	src := t.TempDir()
	dst := filepath.Join(t.TempDir(), "demo")

	binary := []byte{0x00, 0x01, 0xfe, 0xff, '{', '{', 'p', '}', '}'}
	writeTree(t, src, map[string][]byte{
		"a.txt":              []byte("Hello {{projectName}}"),
		"sub/b.bin":          binary,
		"node_modules/x.txt": []byte("skip me"),
	})

	vars, err := NewVariables("demo", DBProviderSQLite)
	require.NoError(t, err)

	c := NewOsCopier()
	require.NoError(t, c.CopyDirectory(src, dst, vars, ExcludePatterns{"node_modules"}))

	got, err := os.ReadFile(filepath.Join(dst, "a.txt"))
	require.NoError(t, err)
	assert.Equal(t, "Hello demo", string(got))

	gotBin, err := os.ReadFile(filepath.Join(dst, "sub", "b.bin"))
	require.NoError(t, err)
	assert.Equal(t, binary, gotBin)

	assert.NoDirExists(t, filepath.Join(dst, "node_modules"))

	stats := c.Stats()
	assert.Equal(t, 2, stats.FilesWritten)
	assert.Equal(t, 1, stats.TextFiles)
	assert.Equal(t, 1, stats.BinaryFiles)
	assert.Equal(t, 1, stats.Excluded)
}

func TestCopyDirectory_NoExcludedNamesInOutput(t *testing.T) {
	source := afero.NewMemMapFs()
	files := map[string]string{
		"tpl/package.json":            `{"name": "{{projectName}}"}`,
		"tpl/.gitignore":              "node_modules\n*.db\n",
		"tpl/CLAUDE.md":               "# {{projectName}}",
		"tpl/bun.lock":                "lock",
		"tpl/dist/app.js":             "built",
		"tpl/src/build/out.js":        "built",
		"tpl/src/index.ts":            "console.log('{{projectName}}')",
		"tpl/db/app.db":               "sqlite",
		"tpl/.env.local":              "SECRET=1",
		"tpl/.DS_Store":               "meta",
		"tpl/logs/debug*.log":         "log",
		"tpl/node_modules/x/index.js": "dep",
	}
	for path, content := range files {
		require.NoError(t, afero.WriteFile(source, path, []byte(content), 0644))
	}
	target := afero.NewMemMapFs()

	patterns := GetExcludePatterns()
	c := NewCopier(source, target)
	require.NoError(t, c.CopyDirectory("tpl", "out", Variables{VarProjectName: "demo", VarDBProvider: "auto"}, patterns))

	var seen []string
	err := afero.Walk(target, "out", func(path string, info os.FileInfo, err error) error {
		require.NoError(t, err)
		assert.False(t, patterns.Matches(info.Name()), "excluded entry %s found in output", path)
		seen = append(seen, filepath.ToSlash(path))
		return nil
	})
	require.NoError(t, err)

	assert.Contains(t, seen, "out/.gitignore")
	assert.Contains(t, seen, "out/CLAUDE.md")
	assert.Contains(t, seen, "out/src/index.ts")
	assert.Contains(t, seen, "out/db")

	content, err := afero.ReadFile(target, "out/package.json")
	require.NoError(t, err)
	assert.Equal(t, `{"name": "demo"}`, string(content))
}

func TestCopyDirectory_TextFilesHaveNoDefinedMarkers(t *testing.T) {
	source := afero.NewMemMapFs()
	vars := Variables{VarProjectName: "demo", VarDBProvider: DBProviderPostgres}
	for _, name := range []string{"a.ts", "b.tsx", "c.json", "d.md", "e.yaml", "f.toml", ".gitignore", "g.env"} {
		content := "{{projectName}} uses {{dbProvider}} and keeps {{other}}"
		require.NoError(t, afero.WriteFile(source, filepath.Join("tpl", name), []byte(content), 0644))
	}
	target := afero.NewMemMapFs()

	c := NewCopier(source, target)
	require.NoError(t, c.CopyDirectory("tpl", "out", vars, nil))

	for _, path := range c.Stats().Files {
		content, err := afero.ReadFile(target, path)
		require.NoError(t, err)
		for key := range vars {
			assert.NotContains(t, string(content), Marker(key), "file %s", path)
		}
		assert.Contains(t, string(content), "{{other}}")
	}
	assert.Equal(t, 8, c.Stats().TextFiles)
}

func TestCopyDirectory_SourceIsIOFS(t *testing.T) {
	mapFS := fstest.MapFS{
		"templates/default/README.md":          {Data: []byte("# {{projectName}}")},
		"templates/default/.gitignore":         {Data: []byte("node_modules")},
		"templates/default/public/favicon.ico": {Data: []byte{0, 0, 1, 0}},
	}
	source := afero.FromIOFS{FS: mapFS}
	target := afero.NewMemMapFs()

	c := NewCopier(source, target)
	require.NoError(t, c.CopyDirectory("templates/default", "app", Variables{VarProjectName: "demo"}, GetExcludePatterns()))

	readme, err := afero.ReadFile(target, "app/README.md")
	require.NoError(t, err)
	assert.Equal(t, "# demo", string(readme))

	ico, err := afero.ReadFile(target, "app/public/favicon.ico")
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 0, 1, 0}, ico)

	// Read-only embedded modes still produce owner-writable output.
	info, err := target.Stat("app/README.md")
	require.NoError(t, err)
	assert.NotZero(t, info.Mode().Perm()&0200)
}

func TestCopyDirectory_MissingSource(t *testing.T) {
	dst := filepath.Join(t.TempDir(), "out")
	err := NewOsCopier().CopyDirectory(filepath.Join(t.TempDir(), "nope"), dst, nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)

	// The target directory was created before the listing failed.
	assert.DirExists(t, dst)
}

func TestCopyFile_CreatesMissingAncestors(t *testing.T) {
	src := filepath.Join(t.TempDir(), "file.md")
	require.NoError(t, os.WriteFile(src, []byte("{{projectName}}"), 0644))
	dst := filepath.Join(t.TempDir(), "a", "b", "c", "file.md")

	c := NewOsCopier()
	require.NoError(t, c.CopyFile(src, dst, Variables{VarProjectName: "deep"}))
	// Running again over existing directories and file is fine.
	require.NoError(t, c.CopyFile(src, dst, Variables{VarProjectName: "deeper"}))

	got, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "deeper", string(got))
}

func TestCopyFile_BinaryFidelity(t *testing.T) {
	content := make([]byte, 4096)
	for i := range content {
		content[i] = byte(i % 256)
	}
	// Marker bytes inside a binary file must survive untouched.
	copy(content[100:], "{{projectName}}")

	src := filepath.Join(t.TempDir(), "blob.bin")
	require.NoError(t, os.WriteFile(src, content, 0644))
	dst := filepath.Join(t.TempDir(), "blob.bin")

	require.NoError(t, NewOsCopier().CopyFile(src, dst, Variables{VarProjectName: "demo"}))

	got, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, content, got)
}

func TestCopyFile_EnvExampleIsCopiedVerbatim(t *testing.T) {
	src := filepath.Join(t.TempDir(), ".env.example")
	require.NoError(t, os.WriteFile(src, []byte("DATABASE_URL=postgres://localhost/{{projectName}}_dev"), 0644))
	dst := filepath.Join(t.TempDir(), ".env.example")

	require.NoError(t, NewOsCopier().CopyFile(src, dst, Variables{VarProjectName: "demo"}))

	got, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(string(got), "{{projectName}}_dev"))
}

func TestCopyFile_PreservesExecutableBit(t *testing.T) {
	src := filepath.Join(t.TempDir(), "run.sh")
	require.NoError(t, os.WriteFile(src, []byte("#!/bin/sh\n"), 0755))
	dst := filepath.Join(t.TempDir(), "run.sh")

	require.NoError(t, NewOsCopier().CopyFile(src, dst, nil))

	info, err := os.Stat(dst)
	require.NoError(t, err)
	assert.NotZero(t, info.Mode().Perm()&0100)
}

func TestCopyFile_MissingSource(t *testing.T) {
	dir := t.TempDir()
	err := NewOsCopier().CopyFile(filepath.Join(dir, "missing.ts"), filepath.Join(dir, "out.ts"), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)

	var pathErr *fs.PathError
	assert.ErrorAs(t, err, &pathErr, "I/O errors are returned unwrapped")
}

func TestCopyDirectory_FollowsSymlinkedDirectories(t *testing.T) {
	src := t.TempDir()
	shared := t.TempDir()
	writeTree(t, shared, map[string][]byte{"note.md": []byte("{{projectName}}")})
	require.NoError(t, os.Symlink(shared, filepath.Join(src, "linked")))

	dst := filepath.Join(t.TempDir(), "out")
	require.NoError(t, NewOsCopier().CopyDirectory(src, dst, Variables{VarProjectName: "demo"}, nil))

	got, err := os.ReadFile(filepath.Join(dst, "linked", "note.md"))
	require.NoError(t, err)
	assert.Equal(t, "demo", string(got))
}
