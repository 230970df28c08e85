package provider

import (
	"context"

	"github.com/spf13/afero"
)

// DefaultTemplate is the template used when none is requested.
const DefaultTemplate = "default"

// Source is a resolved template tree ready to be copied.
type Source struct {
	// Name identifies the template (catalog name or directory base name).
	Name string
	// Description is a one-line summary for listings.
	Description string
	// Root is the directory inside FS whose contents become the project.
	Root string
	// FS is the filesystem Root lives on.
	FS afero.Fs
}

// Info describes a template available from a provider.
type Info struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// Provider abstracts template source locations (embedded catalog, local filesystem).
type Provider interface {
	// Resolve locates the named template and returns its Source.
	Resolve(ctx context.Context, name string) (*Source, error)

	// List returns the templates this provider can resolve.
	List(ctx context.Context) ([]Info, error)

	// Name returns the provider name (e.g., "embedded", "local").
	Name() string
}
