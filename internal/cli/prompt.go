package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/AlecAivazis/survey/v2"

	"github.com/tacogips/create-bun-stack/internal/app"
)

// dbOption is one entry of the database menu.
type dbOption struct {
	label    string
	provider string
}

var dbOptions = []dbOption{
	{label: "PostgreSQL (recommended for production)", provider: "postgres"},
	{label: "SQLite (perfect for development)", provider: "sqlite"},
	{label: "Auto-detect (PostgreSQL with SQLite fallback)", provider: "auto"},
}

// promptProjectName asks for the project name until a valid one is given.
// Names of entries that already exist in the working directory are rejected.
func promptProjectName() (string, error) {
	var name string

	workDir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	prompt := &survey.Input{
		Message: "Project name:",
		Help:    "Used as the directory name and the package name. Letters, digits, '.', '_' and '-'.",
	}

	validator := survey.ComposeValidators(survey.Required, validateProjectName, projectDirAvailable(workDir))
	if err := survey.AskOne(prompt, &name, survey.WithValidator(validator)); err != nil {
		return "", err
	}

	return app.ValidateProjectName(name)
}

// validateProjectName adapts app.ValidateProjectName to a survey validator.
func validateProjectName(val interface{}) error {
	str, ok := val.(string)
	if !ok {
		return fmt.Errorf("expected string, got %T", val)
	}
	_, err := app.ValidateProjectName(str)
	return err
}

// projectDirAvailable rejects names that collide with an entry in workDir.
func projectDirAvailable(workDir string) survey.Validator {
	return func(val interface{}) error {
		str, ok := val.(string)
		if !ok {
			return fmt.Errorf("expected string, got %T", val)
		}
		name, err := app.ValidateProjectName(str)
		if err != nil {
			return err
		}
		return app.ValidateTargetDir(filepath.Join(workDir, name))
	}
}

// promptDBProvider shows the database menu. current preselects an entry.
func promptDBProvider(current string) (string, error) {
	labels := make([]string, len(dbOptions))
	for i, opt := range dbOptions {
		labels[i] = opt.label
	}

	prompt := &survey.Select{
		Message: "Database:",
		Options: labels,
		Default: labels[defaultDBOption(current)],
	}

	var idx int
	if err := survey.AskOne(prompt, &idx); err != nil {
		return "", err
	}

	return dbOptions[idx].provider, nil
}

// defaultDBOption returns the menu index for provider, falling back to auto.
func defaultDBOption(provider string) int {
	normalized, err := app.ParseDBProvider(provider)
	if err != nil {
		normalized = "auto"
	}
	for i, opt := range dbOptions {
		if opt.provider == normalized {
			return i
		}
	}
	return len(dbOptions) - 1
}

// surveyPrompter asks workflow confirmations on the terminal.
type surveyPrompter struct{}

// Confirm asks a yes/no question.
func (surveyPrompter) Confirm(message string, defaultYes bool) (bool, error) {
	answer := defaultYes
	prompt := &survey.Confirm{
		Message: message,
		Default: defaultYes,
	}
	if err := survey.AskOne(prompt, &answer); err != nil {
		return false, err
	}
	return answer, nil
}
