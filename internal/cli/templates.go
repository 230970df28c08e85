package cli

import (
	"github.com/spf13/cobra"

	"github.com/tacogips/create-bun-stack/internal/app"
)

// templatesCmd lists the available templates
var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List available templates",
	Long: `List the templates that can be passed to --template.

With --template-dir, shows the local template directory instead of the
built-in catalog.`,
	Args: cobra.NoArgs,
	RunE: runTemplates,
}

func runTemplates(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	dir := cfg.Templates.Dir
	if createTemplateDir != "" {
		dir = createTemplateDir
	}

	infos, err := app.ListTemplates(cmd.Context(), dir)
	if err != nil {
		return err
	}

	out := NewOutput(cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg.Output.Color, cfg.Output.Quiet)
	for _, info := range infos {
		line := out.title.Render(info.Name)
		if info.Name == cfg.Templates.Name && dir == "" {
			line += out.faint.Render(" (default)")
		}
		out.Info(line)
		if info.Description != "" {
			out.Info("  " + info.Description)
		}
	}
	return nil
}
