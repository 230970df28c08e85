package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/tacogips/create-bun-stack/internal/config"
	"github.com/tacogips/create-bun-stack/internal/debug"
)

// Global flags
var (
	globalNoColor bool
	globalQuiet   bool
	globalDebug   bool
	globalConfig  string
)

// rootCmd creates a new project when called without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "create-bun-stack",
	Short: "Create a fullstack Bun + React app",
	Long: `create-bun-stack scaffolds a fullstack Bun application with React and
Drizzle ORM, backed by PostgreSQL or SQLite.

Run without flags to answer a few questions interactively, or pass --name
to create a project without prompts:

  create-bun-stack
  create-bun-stack --name blog --db sqlite
  create-bun-stack --name blog --dry-run`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		debug.SetNoColor(globalNoColor)
		debug.SetDebug(globalDebug)
	},
	RunE: runCreate,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		printError(rootCmd.ErrOrStderr(), err)
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVar(&globalNoColor, FlagNoColor, false, DescNoColor)
	rootCmd.PersistentFlags().BoolVarP(&globalQuiet, FlagQuiet, "q", false, DescQuiet)
	rootCmd.PersistentFlags().BoolVar(&globalDebug, FlagDebug, false, DescDebug)
	rootCmd.PersistentFlags().StringVar(&globalConfig, FlagConfig, "", DescConfig)
	rootCmd.PersistentFlags().StringVar(&createTemplateDir, FlagTemplateDir, "", DescTemplateDir)

	// Create flags
	rootCmd.Flags().StringVarP(&createName, FlagName, "n", "", DescName)
	rootCmd.Flags().StringVar(&createDB, FlagDB, "", DescDB)
	rootCmd.Flags().BoolVar(&createSkipInstall, FlagSkipInstall, false, DescSkipInstall)
	rootCmd.Flags().BoolVar(&createSkipDBSetup, FlagSkipDBSetup, false, DescSkipDBSetup)
	rootCmd.Flags().StringVarP(&createTemplate, FlagTemplate, "t", "default", DescTemplate)
	rootCmd.Flags().BoolVar(&createDryRun, FlagDryRun, false, DescDryRun)

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(templatesCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig builds the effective configuration: defaults, the config file,
// environment, then command-line flags.
func loadConfig() (*config.Config, error) {
	loader := config.NewLoader()

	var (
		cfg *config.Config
		err error
	)
	if globalConfig != "" {
		cfg, err = loader.Load(globalConfig)
	} else {
		cfg, err = loader.LoadOrDefault(config.DefaultConfigPath())
	}
	if err != nil {
		return nil, err
	}

	if globalNoColor {
		cfg.Output.Color = false
	}
	if globalQuiet {
		cfg.Output.Quiet = true
	}

	debug.DebugValue("[cli] Effective config", cfg)
	return cfg, nil
}

// printError prints an error message to w. Quiet mode never hides errors.
func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)
}
