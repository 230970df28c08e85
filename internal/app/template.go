package app

import (
	"context"
	"fmt"

	"github.com/tacogips/create-bun-stack/internal/config"
	"github.com/tacogips/create-bun-stack/internal/debug"
	"github.com/tacogips/create-bun-stack/internal/template/provider"
)

// TemplateOptions selects the template to scaffold from.
type TemplateOptions struct {
	// Name is the built-in template name. Ignored when Dir is set.
	Name string
	// Dir is a local template directory.
	Dir string
}

// ResolveTemplate locates the template described by opts.
func ResolveTemplate(ctx context.Context, opts TemplateOptions) (*provider.Source, error) {
	dir, err := config.ExpandPath(opts.Dir)
	if err != nil {
		return nil, NewTemplateResolveError("invalid template directory", err)
	}

	name := opts.Name
	if name == "" {
		name = provider.DefaultTemplate
	}

	p := provider.NewProvider(dir)
	debug.DebugValue("[app] Template provider", p.Name())
	debug.DebugValue("[app] Template name", name)

	src, err := p.Resolve(ctx, name)
	if err != nil {
		if provider.IsNotFound(err) {
			return nil, NewTemplateResolveError(fmt.Sprintf("template %q not found", name), err)
		}
		return nil, NewTemplateResolveError("failed to resolve template", err)
	}

	debug.DebugValue("[app] Template root", src.Root)
	return src, nil
}

// ListTemplates returns the templates offered by the built-in catalog, or by
// dir when it is set.
func ListTemplates(ctx context.Context, dir string) ([]provider.Info, error) {
	dir, err := config.ExpandPath(dir)
	if err != nil {
		return nil, NewTemplateResolveError("invalid template directory", err)
	}

	infos, err := provider.NewProvider(dir).List(ctx)
	if err != nil {
		return nil, NewTemplateResolveError("failed to list templates", err)
	}
	return infos, nil
}
