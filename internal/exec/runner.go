// Package exec runs the external commands that finish a generated project
// (dependency install, database push/seed, CSS build).
package exec

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/tacogips/create-bun-stack/internal/debug"
)

// CmdResult holds the result of a command execution.
type CmdResult struct {
	ExitCode int
	Duration time.Duration
}

// Succeeded reports whether the command exited with status 0.
func (r CmdResult) Succeeded() bool {
	return r.ExitCode == 0
}

// RunOpts holds optional parameters for command execution.
type RunOpts struct {
	Dir    string            // working directory (optional)
	Env    map[string]string // extra environment variables (overlay)
	Stdout io.Writer         // defaults to os.Stdout
	Stderr io.Writer         // defaults to os.Stderr
}

// CommandRunner is the interface for running external commands.
type CommandRunner interface {
	// Run executes a command and blocks until it exits.
	// A non-zero exit is reported through CmdResult.ExitCode with a nil error.
	// An error is returned only when the process could not run at all
	// (binary not found, ctx canceled, io failure).
	Run(ctx context.Context, name string, args []string, opts RunOpts) (CmdResult, error)
}

// RealRunner is the production implementation of CommandRunner using os/exec.
// Child output is streamed straight to the configured writers.
type RealRunner struct{}

// NewRealRunner creates a new RealRunner.
func NewRealRunner() *RealRunner {
	return &RealRunner{}
}

// Run executes the command with its output attached to opts.Stdout/opts.Stderr.
func (r *RealRunner) Run(ctx context.Context, name string, args []string, opts RunOpts) (CmdResult, error) {
	log := debug.Component("exec")
	log.Debug().
		Str("command", name).
		Strs("args", args).
		Str("dir", opts.Dir).
		Msg("Executing command")

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = opts.Stdout
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	cmd.Stderr = opts.Stderr
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	if opts.Dir != "" {
		cmd.Dir = opts.Dir
	}

	if len(opts.Env) > 0 {
		cmd.Env = cmd.Environ()
		for k, v := range opts.Env {
			cmd.Env = append(cmd.Env, k+"="+v)
		}
	}

	start := time.Now()
	err := cmd.Run()
	result := CmdResult{Duration: time.Since(start)}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && ctx.Err() == nil {
			result.ExitCode = exitErr.ExitCode()
			log.Debug().
				Str("command", name).
				Int("exit_code", result.ExitCode).
				Dur("duration", result.Duration).
				Msg("Command exited with non-zero status")
			return result, nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			err = ctxErr
		}
		log.Debug().Err(err).Str("command", name).Msg("Command failed to run")
		return result, err
	}

	log.Debug().
		Str("command", name).
		Dur("duration", result.Duration).
		Msg("Command completed")
	return result, nil
}

// CommandLine renders name and args the way a user would type them.
func CommandLine(name string, args []string) string {
	return strings.TrimSpace(name + " " + strings.Join(args, " "))
}
