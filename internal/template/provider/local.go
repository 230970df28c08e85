package provider

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/tacogips/create-bun-stack/internal/debug"
)

// LocalProvider implements Provider for a template directory on disk.
type LocalProvider struct {
	// Dir is the template directory. Relative paths resolve against BaseDir.
	Dir string
	// BaseDir is the base directory for resolving relative paths.
	// If empty, uses current working directory.
	BaseDir string
}

// NewLocalProvider creates a new local filesystem provider for dir.
func NewLocalProvider(dir string) *LocalProvider {
	return &LocalProvider{Dir: dir}
}

// NewLocalProviderWithBase creates a new local provider with a base directory.
func NewLocalProviderWithBase(dir, baseDir string) *LocalProvider {
	return &LocalProvider{
		Dir:     dir,
		BaseDir: baseDir,
	}
}

// Name returns the provider name.
func (p *LocalProvider) Name() string {
	return "local"
}

// List returns the single template this provider serves.
func (p *LocalProvider) List(ctx context.Context) ([]Info, error) {
	src, err := p.Resolve(ctx, "")
	if err != nil {
		return nil, err
	}
	return []Info{{Name: src.Name, Description: src.Description}}, nil
}

// Resolve validates the template directory and returns it as a Source.
// The name argument is ignored: a local provider serves exactly one tree.
func (p *LocalProvider) Resolve(ctx context.Context, name string) (*Source, error) {
	debug.Debug("[local] Resolving template directory: %s", p.Dir)

	if p.Dir == "" {
		return nil, NewInvalidTemplateError(p.Name(), p.Dir, "template directory cannot be empty", nil)
	}

	absPath, err := p.resolvePath(p.Dir)
	if err != nil {
		debug.Debug("[local] Path resolution failed: %v", err)
		return nil, NewReadError(p.Name(), p.Dir, err)
	}
	debug.Debug("[local] Absolute path: %s", absPath)

	info, err := os.Stat(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			debug.Debug("[local] Path does not exist: %s", absPath)
			return nil, NewNotFoundError(p.Name(), p.Dir)
		}
		return nil, NewReadError(p.Name(), p.Dir, err)
	}

	if !info.IsDir() {
		debug.Debug("[local] Path is not a directory")
		return nil, NewInvalidTemplateError(p.Name(), p.Dir, "path must be a directory", nil)
	}

	return &Source{
		Name:        filepath.Base(absPath),
		Description: fmt.Sprintf("local template at %s", absPath),
		Root:        absPath,
		FS:          afero.NewOsFs(),
	}, nil
}

// resolvePath resolves a path to an absolute path.
// If the path is relative, it resolves it relative to BaseDir or current working directory.
func (p *LocalProvider) resolvePath(path string) (string, error) {
	if filepath.IsAbs(path) {
		return filepath.Clean(path), nil
	}

	baseDir := p.BaseDir
	if baseDir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to get current directory: %w", err)
		}
		baseDir = cwd
	}

	return filepath.Clean(filepath.Join(baseDir, path)), nil
}
