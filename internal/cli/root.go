package cli

import (
	"github.com/danieljhkim/nrlgen/internal/cli/setting"
	"github.com/danieljhkim/nrlgen/internal/config"
	"github.com/spf13/cobra"
)

// PathsGetter is a function that returns the Paths instance
type PathsGetter func() *config.Paths

// Execute builds the command tree and runs it.
// This is called by main.main().
func Execute() error {
	return newRootCmd().Execute()
}

// newRootCmd creates the base command with every subcommand attached
func newRootCmd() *cobra.Command {
	var (
		// Global paths instance, resolved once flags are parsed
		paths   *config.Paths
		homeDir string
	)

	getPaths := func() *config.Paths {
		if paths == nil {
			paths = config.NewPaths(homeDir)
		}
		return paths
	}

	rootCmd := &cobra.Command{
		Use:   "nrlgen",
		Short: "Generate startup commands and configs for NRL MANET daemons",
		Long: `nrlgen: generate per-node startup commands and config files for the
NRL MANET daemons (SMF, NHDP, OLSR, OLSRv2, OLSRORG, arouted, MGEN).

Each node's artifacts are resolved from its interfaces and the set of
services enabled on it, so that co-resident daemons interoperate.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&homeDir, "home", "", "Base directory for settings and output (default $NRLGEN_HOME or ~/.nrlgen)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "", "Log format (console, json)")

	rootCmd.AddCommand(newInitCmd(getPaths))
	rootCmd.AddCommand(newServicesCmd(getPaths))
	rootCmd.AddCommand(newRenderCmd(getPaths))
	rootCmd.AddCommand(newStartupCmd(getPaths))
	rootCmd.AddCommand(newConfigCmd(getPaths))
	rootCmd.AddCommand(newStatusCmd(getPaths))
	rootCmd.AddCommand(newWaitCmd(getPaths))
	rootCmd.AddCommand(newDoctorCmd(getPaths))
	rootCmd.AddCommand(setting.NewSettingCmd(setting.PathsGetter(getPaths)))

	return rootCmd
}
