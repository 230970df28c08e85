package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/tacogips/create-bun-stack/internal/app"
	"github.com/tacogips/create-bun-stack/internal/debug"
)

const summaryWidth = 80

// Output writes user-facing messages. Errors always go to errOut; everything
// else is dropped in quiet mode.
type Output struct {
	out    io.Writer
	errOut io.Writer
	quiet  bool
	color  bool

	success lipgloss.Style
	warning lipgloss.Style
	failure lipgloss.Style
	info    lipgloss.Style
	faint   lipgloss.Style
	title   lipgloss.Style
}

// NewOutput creates an Output. Color is used only when requested and out is a
// terminal.
func NewOutput(out, errOut io.Writer, color, quiet bool) *Output {
	color = color && isTerminal(out)

	r := lipgloss.NewRenderer(out)
	if !color {
		r.SetColorProfile(termenv.Ascii)
	}

	return &Output{
		out:     out,
		errOut:  errOut,
		quiet:   quiet,
		color:   color,
		success: r.NewStyle().Foreground(lipgloss.Color("2")),
		warning: r.NewStyle().Foreground(lipgloss.Color("3")),
		failure: r.NewStyle().Foreground(lipgloss.Color("1")),
		info:    r.NewStyle().Foreground(lipgloss.Color("4")),
		faint:   r.NewStyle().Foreground(lipgloss.Color("8")),
		title:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("5")),
	}
}

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (o *Output) println(s string) {
	if o.quiet {
		return
	}
	fmt.Fprintln(o.out, s)
}

// Info prints an informational message.
func (o *Output) Info(msg string) {
	o.println(msg)
}

// Progress prints a step that is starting.
func (o *Output) Progress(msg string) {
	o.println(o.info.Render("→") + " " + msg)
}

// Success prints a success message.
func (o *Output) Success(msg string) {
	o.println(o.success.Render("✓") + " " + msg)
}

// Warning prints a warning message.
func (o *Output) Warning(msg string) {
	o.println(o.warning.Render("⚠") + " " + msg)
}

// Error prints an error message. Not affected by quiet mode.
func (o *Output) Error(msg string) {
	fmt.Fprintln(o.errOut, o.failure.Render("✗")+" "+msg)
}

// Header prints a section header.
func (o *Output) Header(title string) {
	o.println("\n" + o.title.Render(title))
}

// Banner prints the welcome banner.
func (o *Output) Banner() {
	if o.quiet {
		return
	}

	var letters []pterm.Letters
	if o.color {
		letters = []pterm.Letters{
			putils.LettersFromStringWithStyle("BUN", pterm.NewStyle(pterm.FgLightYellow)),
			putils.LettersFromStringWithStyle("STACK", pterm.NewStyle(pterm.FgLightMagenta)),
		}
	} else {
		letters = []pterm.Letters{putils.LettersFromString("BUN STACK")}
	}

	banner, err := pterm.DefaultBigText.WithLetters(letters...).Srender()
	if err != nil {
		debug.Debugf("[cli] banner render failed: %v", err)
		banner = "BUN STACK"
	}
	if !o.color {
		banner = pterm.RemoveColorFromString(banner)
	}

	fmt.Fprintln(o.out, banner)
	fmt.Fprintln(o.out, o.title.Render("Welcome to Create Bun Stack!"))
	fmt.Fprintln(o.out)
}

// Markdown renders markdown for the terminal, falling back to the raw text.
func (o *Output) Markdown(md string) {
	if o.quiet {
		return
	}

	style := glamour.WithStandardStyle("notty")
	if o.color {
		style = glamour.WithAutoStyle()
	}

	rendered := md
	renderer, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(summaryWidth))
	if err == nil {
		if s, err := renderer.Render(md); err == nil {
			rendered = s
		}
	}
	fmt.Fprint(o.out, rendered)
}

// Summary prints the post-create instructions.
func (o *Output) Summary(result *app.CreateResult, runtime string) {
	o.Markdown(SummaryMarkdown(result, runtime))
}

// DryRunSummary lists the files a dry run would have written.
func (o *Output) DryRunSummary(result *app.CreateResult) {
	o.Header("Dry run: no files were written")
	for _, f := range result.Stats.Files {
		rel, err := filepath.Rel(filepath.Dir(result.ProjectPath), f)
		if err != nil {
			rel = f
		}
		o.println("  " + rel)
	}
	o.println(o.faint.Render(fmt.Sprintf(
		"%d files (%d text, %d binary), %d entries excluded",
		result.Stats.FilesWritten, result.Stats.TextFiles, result.Stats.BinaryFiles, result.Stats.Excluded,
	)))
}

// SummaryMarkdown builds the success message shown after a project is created.
func SummaryMarkdown(result *app.CreateResult, runtime string) string {
	var b strings.Builder

	b.WriteString("# Your Bun Stack app is ready!\n\n")
	fmt.Fprintf(&b, "Project created at `%s`\n\n", result.ProjectPath)

	b.WriteString("## Database\n\n")
	b.WriteString(result.DBInstructions)
	b.WriteString("\n\n")
	if result.Backend != "" {
		fmt.Fprintf(&b, "Detected backend: **%s**\n\n", result.Backend)
	}

	b.WriteString("## Get started\n\n")
	fmt.Fprintf(&b, "```sh\ncd %s\n%s run dev\n```\n\n", result.ProjectName, runtime)

	b.WriteString("## Available commands\n\n")
	b.WriteString("| Command | Description |\n|---|---|\n")
	fmt.Fprintf(&b, "| `%s run dev` | Start development server |\n", runtime)
	fmt.Fprintf(&b, "| `%s test` | Run tests |\n", runtime)
	fmt.Fprintf(&b, "| `%s run db:studio` | Open database GUI |\n", runtime)
	fmt.Fprintf(&b, "| `%s run build` | Build for production |\n\n", runtime)

	b.WriteString("## Resources\n\n")
	b.WriteString("- Documentation: https://github.com/jasencarroll/create-bun-stack\n")
	b.WriteString("- Bun Docs: https://bun.sh\n\n")
	b.WriteString("Happy coding!\n")

	return b.String()
}

// stepReporter prints workflow progress.
type stepReporter struct {
	out     *Output
	runtime string
}

func newStepReporter(out *Output, runtime string) *stepReporter {
	return &stepReporter{out: out, runtime: runtime}
}

var stepStartMessages = map[string]string{
	app.StepCopy:    "Creating your Bun Stack app...",
	app.StepInstall: "Installing dependencies...",
	app.StepDBProbe: "Checking database connection...",
	app.StepDBPush:  "Setting up database...",
	app.StepDBSeed:  "Seeding database...",
	app.StepCSS:     "Building CSS...",
}

var stepDoneMessages = map[string]string{
	app.StepCopy:    "Project structure created",
	app.StepInstall: "Dependencies installed",
	app.StepEnv:     "Created .env from .env.example",
	app.StepDBProbe: "Database connection verified",
	app.StepDBPush:  "Database setup complete",
	app.StepDBSeed:  "Database seeded",
	app.StepCSS:     "CSS built successfully",
}

// StepStarted implements app.Reporter.
func (r *stepReporter) StepStarted(name string) {
	if msg, ok := stepStartMessages[name]; ok {
		r.out.Progress(msg)
	}
}

// StepFinished implements app.Reporter.
func (r *stepReporter) StepFinished(step app.StepResult) {
	switch step.Status {
	case app.StepSucceeded:
		r.out.Success(stepDoneMessages[step.Name])
		if step.Note != "" {
			r.out.Warning(step.Note)
		}
	case app.StepFailed:
		r.out.Warning(r.failureMessage(step))
	case app.StepSkipped:
		debug.Debugf("[cli] step %s skipped", step.Name)
	}
}

func (r *stepReporter) failureMessage(step app.StepResult) string {
	switch step.Name {
	case app.StepCopy:
		return fmt.Sprintf("Failed to copy template: %v", step.Err)
	case app.StepInstall:
		return "Failed to install dependencies"
	case app.StepEnv:
		return fmt.Sprintf("Could not create .env (%v) - copy .env.example manually", step.Err)
	case app.StepDBProbe:
		return fmt.Sprintf("Database check failed: %v", step.Err)
	case app.StepDBPush:
		return fmt.Sprintf("Database setup failed - you can run '%s run db:push' later", r.runtime)
	case app.StepDBSeed:
		return fmt.Sprintf("Database seed failed - you can run '%s run db:seed' later", r.runtime)
	case app.StepCSS:
		return fmt.Sprintf("CSS build failed - you can run '%s run build:css' later", r.runtime)
	default:
		return fmt.Sprintf("%s failed: %v", step.Name, step.Err)
	}
}
