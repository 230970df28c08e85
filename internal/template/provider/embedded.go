package provider

import (
	"context"
	"embed"
	"io/fs"
	"path"

	"github.com/spf13/afero"
	"github.com/tacogips/create-bun-stack/internal/debug"
	"gopkg.in/yaml.v3"
)

// all: keeps dotfiles such as .gitignore and .env.example in the embed.
//
//go:embed all:templates
var templatesFS embed.FS

const (
	templatesDir = "templates"
	catalogFile  = "catalog.yaml"
)

// catalog is the decoded form of templates/catalog.yaml.
type catalog struct {
	Templates []Info `yaml:"templates"`
}

// EmbeddedProvider serves the templates compiled into the binary.
type EmbeddedProvider struct {
	fsys fs.FS
}

// NewEmbeddedProvider creates a provider over the built-in template catalog.
func NewEmbeddedProvider() *EmbeddedProvider {
	return &EmbeddedProvider{fsys: templatesFS}
}

// newEmbeddedProviderFS creates a provider over an arbitrary fs.FS laid out
// like the built-in catalog. Used by tests.
func newEmbeddedProviderFS(fsys fs.FS) *EmbeddedProvider {
	return &EmbeddedProvider{fsys: fsys}
}

// Name returns the provider name.
func (p *EmbeddedProvider) Name() string {
	return "embedded"
}

// List returns the templates declared in the catalog.
func (p *EmbeddedProvider) List(ctx context.Context) ([]Info, error) {
	cat, err := p.readCatalog()
	if err != nil {
		return nil, err
	}
	return cat.Templates, nil
}

// Resolve returns the embedded template with the given name.
// An empty name resolves DefaultTemplate.
func (p *EmbeddedProvider) Resolve(ctx context.Context, name string) (*Source, error) {
	if name == "" {
		name = DefaultTemplate
	}
	debug.Debug("[embedded] Resolving template: %s", name)

	cat, err := p.readCatalog()
	if err != nil {
		return nil, err
	}

	var info *Info
	for i := range cat.Templates {
		if cat.Templates[i].Name == name {
			info = &cat.Templates[i]
			break
		}
	}
	if info == nil {
		debug.Debug("[embedded] Template not in catalog: %s", name)
		return nil, NewNotFoundError(p.Name(), name)
	}

	root := path.Join(templatesDir, name)
	stat, err := fs.Stat(p.fsys, root)
	if err != nil {
		return nil, NewInvalidTemplateError(p.Name(), name, "catalog entry has no template directory", err)
	}
	if !stat.IsDir() {
		return nil, NewInvalidTemplateError(p.Name(), name, "template root is not a directory", nil)
	}

	debug.Debug("[embedded] Template resolved: %s -> %s", name, root)
	return &Source{
		Name:        info.Name,
		Description: info.Description,
		Root:        root,
		FS:          afero.FromIOFS{FS: p.fsys},
	}, nil
}

func (p *EmbeddedProvider) readCatalog() (*catalog, error) {
	data, err := fs.ReadFile(p.fsys, path.Join(templatesDir, catalogFile))
	if err != nil {
		return nil, NewReadError(p.Name(), catalogFile, err)
	}

	var cat catalog
	if err := yaml.Unmarshal(data, &cat); err != nil {
		return nil, NewProviderError(ProviderInvalidCatalog, p.Name(), catalogFile, "invalid catalog YAML", err)
	}
	return &cat, nil
}
