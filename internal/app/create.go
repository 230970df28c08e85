package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/afero"

	"github.com/tacogips/create-bun-stack/internal/config"
	"github.com/tacogips/create-bun-stack/internal/database"
	"github.com/tacogips/create-bun-stack/internal/debug"
	"github.com/tacogips/create-bun-stack/internal/exec"
	"github.com/tacogips/create-bun-stack/internal/template/generator"
	"github.com/tacogips/create-bun-stack/internal/template/provider"
)

// Confirmation prompts asked during database setup.
const (
	PromptSetupDB = "Setup database now?"
	PromptSeedDB  = "Seed database with sample data?"
)

// Prompter answers yes/no questions asked while the workflow runs.
type Prompter interface {
	Confirm(message string, defaultYes bool) (bool, error)
}

// DefaultPrompter answers every question with its default.
type DefaultPrompter struct{}

// Confirm returns defaultYes.
func (DefaultPrompter) Confirm(message string, defaultYes bool) (bool, error) {
	debug.Debugf("[app] %s -> %v (default)", message, defaultYes)
	return defaultYes, nil
}

// CreateOptions holds options for creating a project.
type CreateOptions struct {
	// ProjectName is the new project's name and directory.
	ProjectName string
	// DBProvider is postgres, sqlite or auto (aliases accepted).
	DBProvider string
	// WorkDir is where the project directory is created. Defaults to the cwd.
	WorkDir string
	// Source is the resolved template.
	Source *provider.Source
	// SkipInstall skips the dependency install.
	SkipInstall bool
	// SkipDBSetup skips database push and seed.
	SkipDBSetup bool
	// DryRun copies into memory and runs no commands.
	DryRun bool
	// Runner runs external commands. Defaults to exec.RealRunner.
	Runner exec.CommandRunner
	// Prompter answers confirmations. Defaults to DefaultPrompter.
	Prompter Prompter
	// Reporter observes step progress. Optional.
	Reporter Reporter
	// Config is the effective configuration. Defaults to config.DefaultConfig.
	Config *config.Config
	// Stdout and Stderr receive command output.
	Stdout io.Writer
	Stderr io.Writer
}

// CreateResult holds the result of project creation.
type CreateResult struct {
	// ProjectName is the validated project name.
	ProjectName string
	// ProjectPath is the absolute project directory.
	ProjectPath string
	// DBProvider is the normalized database provider.
	DBProvider string
	// Backend is the backend found by the database probe, if it ran.
	Backend string
	// Stats are the template copy statistics.
	Stats generator.Stats
	// Steps lists every step in execution order.
	Steps []StepResult
	// DBInstructions is the database setup hint for DBProvider.
	DBInstructions string
	// DryRun is true when nothing was written to disk.
	DryRun bool
}

// Warnings returns the steps that failed without aborting the workflow.
func (r *CreateResult) Warnings() []StepResult {
	var out []StepResult
	for _, s := range r.Steps {
		if s.Failed() {
			out = append(out, s)
		}
	}
	return out
}

// Create scaffolds a new project from a template and runs the post-copy
// steps. Only validation, copy and install failures are returned as errors;
// every other failed step is recorded in the result.
func Create(ctx context.Context, opts CreateOptions) (*CreateResult, error) {
	debug.DebugSection("[app] Create workflow start")
	debug.DebugValue("[app] Project name", opts.ProjectName)
	debug.DebugValue("[app] DB provider", opts.DBProvider)
	debug.DebugValue("[app] Dry run", opts.DryRun)

	name, err := ValidateProjectName(opts.ProjectName)
	if err != nil {
		return nil, err
	}

	dbProvider, err := ParseDBProvider(opts.DBProvider)
	if err != nil {
		return nil, err
	}

	if opts.Source == nil {
		return nil, NewTemplateResolveError("no template source given", nil)
	}

	workDir := opts.WorkDir
	if workDir == "" {
		if workDir, err = os.Getwd(); err != nil {
			return nil, NewValidationError("failed to get current directory", err)
		}
	}
	workDir, err = filepath.Abs(workDir)
	if err != nil {
		return nil, NewValidationError("failed to resolve working directory", err)
	}

	projectPath := filepath.Join(workDir, name)
	if err := ValidateTargetDir(projectPath); err != nil {
		return nil, err
	}

	vars, err := generator.NewVariables(name, dbProvider)
	if err != nil {
		return nil, NewValidationError("invalid template variables", err)
	}

	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	w := &createWorkflow{
		opts:     opts,
		cfg:      cfg,
		runner:   opts.Runner,
		prompter: opts.Prompter,
		reporter: opts.Reporter,
		result: &CreateResult{
			ProjectName:    name,
			ProjectPath:    projectPath,
			DBProvider:     dbProvider,
			DBInstructions: DBInstructions(dbProvider, name),
			DryRun:         opts.DryRun,
		},
	}
	if w.runner == nil {
		w.runner = exec.NewRealRunner()
	}
	if w.prompter == nil {
		w.prompter = DefaultPrompter{}
	}
	if w.reporter == nil {
		w.reporter = nopReporter{}
	}

	if err := w.copyTemplate(vars); err != nil {
		return nil, err
	}

	if opts.DryRun {
		debug.Debug("[app] Dry run, skipping commands")
		return w.result, nil
	}

	if err := w.install(ctx); err != nil {
		return nil, err
	}

	w.copyEnvFile()

	if err := w.setupDatabase(ctx); err != nil {
		return nil, err
	}

	w.record(w.run(ctx, StepCSS, "run", "build:css"))

	debug.Debug("[app] Create workflow completed")
	debug.DebugValue("[app] Files written", w.result.Stats.FilesWritten)
	return w.result, nil
}

type createWorkflow struct {
	opts     CreateOptions
	cfg      *config.Config
	runner   exec.CommandRunner
	prompter Prompter
	reporter Reporter
	result   *CreateResult
}

func (w *createWorkflow) record(step StepResult) {
	w.result.Steps = append(w.result.Steps, step)
	w.reporter.StepFinished(step)
}

func (w *createWorkflow) copyTemplate(vars generator.Variables) error {
	w.reporter.StepStarted(StepCopy)
	start := time.Now()

	var target afero.Fs = afero.NewOsFs()
	if w.opts.DryRun {
		target = afero.NewMemMapFs()
	}

	src := w.opts.Source
	copier := generator.NewCopier(src.FS, target)
	err := copier.CopyDirectory(src.Root, w.result.ProjectPath, vars, generator.GetExcludePatterns())
	w.result.Stats = copier.Stats()
	if err != nil {
		w.record(StepResult{Name: StepCopy, Status: StepFailed, Duration: time.Since(start), Err: err})
		return NewCopyError("failed to copy template", err)
	}

	if err := target.MkdirAll(filepath.Join(w.result.ProjectPath, "db"), 0755); err != nil {
		w.record(StepResult{Name: StepCopy, Status: StepFailed, Duration: time.Since(start), Err: err})
		return NewCopyError("failed to create db directory", err)
	}

	w.record(StepResult{Name: StepCopy, Status: StepSucceeded, Duration: time.Since(start)})
	return nil
}

func (w *createWorkflow) run(ctx context.Context, name string, args ...string) StepResult {
	w.reporter.StepStarted(name)
	return runStep(ctx, w.runner, name, w.result.ProjectPath, w.cfg.Runtime.Command, args, exec.RunOpts{
		Stdout: w.opts.Stdout,
		Stderr: w.opts.Stderr,
	})
}

func (w *createWorkflow) install(ctx context.Context) error {
	if w.opts.SkipInstall {
		w.record(skippedStep(StepInstall))
		return nil
	}

	step := w.run(ctx, StepInstall, "install")
	w.record(step)
	if step.Failed() {
		return NewInstallError("failed to install dependencies", step.Err)
	}
	return nil
}

// copyEnvFile copies .env.example to .env unless .env already exists.
func (w *createWorkflow) copyEnvFile() {
	w.reporter.StepStarted(StepEnv)
	osFs := afero.NewOsFs()
	example := filepath.Join(w.result.ProjectPath, ".env.example")
	env := filepath.Join(w.result.ProjectPath, ".env")

	if ok, _ := afero.Exists(osFs, env); ok {
		w.record(skippedStep(StepEnv))
		return
	}

	data, err := afero.ReadFile(osFs, example)
	if err != nil {
		if isNotExist(err) {
			w.record(skippedStep(StepEnv))
			return
		}
		w.record(StepResult{Name: StepEnv, Status: StepFailed, Err: err})
		return
	}

	if err := afero.WriteFile(osFs, env, data, 0644); err != nil {
		w.record(StepResult{Name: StepEnv, Status: StepFailed, Err: err})
		return
	}
	w.record(StepResult{Name: StepEnv, Status: StepSucceeded})
}

func (w *createWorkflow) setupDatabase(ctx context.Context) error {
	if w.opts.SkipDBSetup {
		w.record(skippedStep(StepDBPush))
		return nil
	}

	ok, err := w.prompter.Confirm(PromptSetupDB, true)
	if err != nil {
		return err
	}
	if !ok {
		w.record(skippedStep(StepDBPush))
		return nil
	}

	w.probe(ctx)

	push := w.run(ctx, StepDBPush, "run", "db:push")
	w.record(push)
	if push.Failed() {
		return nil
	}

	seed, err := w.prompter.Confirm(PromptSeedDB, false)
	if err != nil {
		return err
	}
	if !seed {
		w.record(skippedStep(StepDBSeed))
		return nil
	}

	w.record(w.run(ctx, StepDBSeed, "run", "db:seed"))
	return nil
}

// probe opens the database the generated app would pick and records which
// backend that is.
func (w *createWorkflow) probe(ctx context.Context) {
	w.reporter.StepStarted(StepDBProbe)
	start := time.Now()

	sqlitePath := w.cfg.Database.SQLitePath
	if !filepath.IsAbs(sqlitePath) {
		sqlitePath = filepath.Join(w.result.ProjectPath, sqlitePath)
	}

	h, err := database.Open(ctx, database.Options{
		Provider:   w.result.DBProvider,
		URL:        w.cfg.Database.URL,
		SQLitePath: sqlitePath,
	})
	if err != nil {
		w.record(StepResult{Name: StepDBProbe, Status: StepFailed, Duration: time.Since(start), Err: err})
		return
	}
	defer func() { _ = h.Close() }()

	w.result.Backend = h.Backend.String()
	debug.DebugValue("[app] Database backend", w.result.Backend)
	step := StepResult{Name: StepDBProbe, Status: StepSucceeded, Duration: time.Since(start)}
	if h.Fallback != nil {
		step.Note = fmt.Sprintf("PostgreSQL unavailable, using SQLite: %v", h.Fallback)
	}
	w.record(step)
}

func isNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
