package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tacogips/create-bun-stack/internal/app"
)

// configCmd groups configuration commands
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage create-bun-stack configuration",
	Long: `Manage the create-bun-stack configuration file.

The file is TOML and lives at $XDG_CONFIG_HOME/create-bun-stack/config.toml
unless --config is given. Every key can also be set through the environment
as CREATE_BUN_STACK_<SECTION>__<KEY>, e.g. CREATE_BUN_STACK_RUNTIME__COMMAND.`,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration file",
	Args:  cobra.NoArgs,
	RunE:  runConfigInit,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as TOML",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

// Config command flags
var configInitForce bool

func init() {
	configInitCmd.Flags().BoolVarP(&configInitForce, FlagForce, "f", false, DescForce)

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path, err := app.InitConfig(app.ConfigInitOptions{
		Path:  globalConfig,
		Force: configInitForce,
	})
	if err != nil {
		return err
	}

	out := NewOutput(cmd.OutOrStdout(), cmd.ErrOrStderr(), !globalNoColor, globalQuiet)
	out.Success(fmt.Sprintf("Wrote %s", path))
	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	data, err := app.ShowConfig(cfg)
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), data)
	return nil
}
