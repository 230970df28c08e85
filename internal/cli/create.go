package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/tacogips/create-bun-stack/internal/app"
	"github.com/tacogips/create-bun-stack/internal/debug"
)

// Create command flags
var (
	createName        string
	createDB          string
	createSkipInstall bool
	createSkipDBSetup bool
	createTemplate    string
	createTemplateDir string
	createDryRun      bool
)

func runCreate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	out := NewOutput(cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg.Output.Color, cfg.Output.Quiet)
	if cfg.Output.Banner {
		out.Banner()
	}

	dbChoice := cfg.Database.Provider
	if cmd.Flags().Changed(FlagDB) {
		dbChoice = createDB
	}

	name := createName
	interactive := name == ""
	var prompter app.Prompter = app.DefaultPrompter{}

	if interactive {
		debug.Debug("[cli] No --name given, prompting")
		prompter = surveyPrompter{}

		if name, err = promptProjectName(); err != nil {
			return err
		}
		if !cmd.Flags().Changed(FlagDB) {
			if dbChoice, err = promptDBProvider(dbChoice); err != nil {
				return err
			}
		}
	}

	templateName := cfg.Templates.Name
	if cmd.Flags().Changed(FlagTemplate) {
		templateName = createTemplate
	}
	templateDir := cfg.Templates.Dir
	if createTemplateDir != "" {
		templateDir = createTemplateDir
	}

	src, err := app.ResolveTemplate(ctx, app.TemplateOptions{Name: templateName, Dir: templateDir})
	if err != nil {
		return err
	}

	var stdout, stderr io.Writer = cmd.OutOrStdout(), cmd.ErrOrStderr()
	if cfg.Output.Quiet {
		stdout = io.Discard
	}

	result, err := app.Create(ctx, app.CreateOptions{
		ProjectName: name,
		DBProvider:  dbChoice,
		Source:      src,
		SkipInstall: createSkipInstall,
		SkipDBSetup: createSkipDBSetup,
		DryRun:      createDryRun,
		Prompter:    prompter,
		Reporter:    newStepReporter(out, cfg.Runtime.Command),
		Config:      cfg,
		Stdout:      stdout,
		Stderr:      stderr,
	})
	if err != nil {
		return err
	}

	if result.DryRun {
		out.DryRunSummary(result)
		return nil
	}

	out.Summary(result, cfg.Runtime.Command)
	if n := len(result.Warnings()); n > 0 {
		out.Warning(fmt.Sprintf("Finished with %d warning(s)", n))
	}
	return nil
}
