package cli

// Common flag names and descriptions
const (
	// Flag names
	FlagName        = "name"
	FlagDB          = "db"
	FlagSkipInstall = "skip-install"
	FlagSkipDBSetup = "skip-db-setup"
	FlagTemplate    = "template"
	FlagTemplateDir = "template-dir"
	FlagConfig      = "config"
	FlagForce       = "force"
	FlagDryRun      = "dry-run"
	FlagNoColor     = "no-color"
	FlagQuiet       = "quiet"
	FlagDebug       = "debug"

	// Flag descriptions
	DescName        = "Project name (skips interactive prompts)"
	DescDB          = "Database provider: postgres, sqlite or auto"
	DescSkipInstall = "Skip installing dependencies"
	DescSkipDBSetup = "Skip database push and seed"
	DescTemplate    = "Built-in template name"
	DescTemplateDir = "Use a local template directory instead of the built-in catalog"
	DescConfig      = "Path to config file"
	DescForce       = "Force overwrite"
	DescDryRun      = "Show the files that would be created without writing anything"
	DescNoColor     = "Disable colored output"
	DescQuiet       = "Suppress non-error output"
	DescDebug       = "Enable debug logging"
)
