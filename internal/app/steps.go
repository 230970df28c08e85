package app

import (
	"context"
	"fmt"
	"time"

	"github.com/tacogips/create-bun-stack/internal/exec"
)

// Step names reported in CreateResult.Steps.
const (
	StepCopy    = "copy"
	StepInstall = "install"
	StepEnv     = "env"
	StepDBProbe = "db:probe"
	StepDBPush  = "db:push"
	StepDBSeed  = "db:seed"
	StepCSS     = "build:css"
)

// StepStatus is the outcome of a workflow step.
type StepStatus string

const (
	StepSucceeded StepStatus = "succeeded"
	StepFailed    StepStatus = "failed"
	StepSkipped   StepStatus = "skipped"
)

// StepResult records one step of the create workflow.
type StepResult struct {
	// Name is one of the Step* constants.
	Name string
	// Command is the command line run for this step, if any.
	Command string
	// Status is the step outcome.
	Status StepStatus
	// ExitCode is the process exit code for command steps.
	ExitCode int
	// Duration is how long the step took.
	Duration time.Duration
	// Err explains a failure. Only install failures abort the workflow.
	Err error
	// Note qualifies a successful step, such as the reason the database
	// probe fell back to SQLite.
	Note string
}

// Failed reports whether the step failed.
func (s StepResult) Failed() bool {
	return s.Status == StepFailed
}

// Reporter observes workflow progress. Implementations must not block.
type Reporter interface {
	StepStarted(name string)
	StepFinished(step StepResult)
}

type nopReporter struct{}

func (nopReporter) StepStarted(string)      {}
func (nopReporter) StepFinished(StepResult) {}

// runStep runs runtime with args inside dir and turns the outcome into a StepResult.
// A spawn failure or non-zero exit yields StepFailed.
func runStep(ctx context.Context, runner exec.CommandRunner, name, dir, runtime string, args []string, opts exec.RunOpts) StepResult {
	opts.Dir = dir
	step := StepResult{
		Name:    name,
		Command: exec.CommandLine(runtime, args),
	}

	start := time.Now()
	res, err := runner.Run(ctx, runtime, args, opts)
	step.Duration = time.Since(start)
	step.ExitCode = res.ExitCode

	switch {
	case err != nil:
		step.Status = StepFailed
		step.Err = err
	case !res.Succeeded():
		step.Status = StepFailed
		step.Err = fmt.Errorf("%s exited with code %d", step.Command, res.ExitCode)
	default:
		step.Status = StepSucceeded
	}
	return step
}

func skippedStep(name string) StepResult {
	return StepResult{Name: name, Status: StepSkipped}
}
