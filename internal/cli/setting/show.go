package setting

import (
	"fmt"
	"os"

	"github.com/danieljhkim/nrlgen/internal/config"
	"github.com/danieljhkim/nrlgen/internal/util"
	"github.com/spf13/cobra"
)

func newShowCmd(pathsGetter PathsGetter) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the settings file contents",
		Long:  `Show the persisted settings file from $NRLGEN_HOME/nrlgen.yaml.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.NewSettingsManager(pathsGetter()).Path()
			if !util.FileExists(path) {
				return fmt.Errorf("settings file not found: %s (defaults are in use)", path)
			}

			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", path, err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "=== %s ===\n", path)
			_, err = out.Write(data)
			return err
		},
	}

	return cmd
}
