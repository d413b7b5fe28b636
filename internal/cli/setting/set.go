package setting

import (
	"fmt"
	"strings"

	"github.com/danieljhkim/nrlgen/internal/config"
	"github.com/spf13/cobra"
)

func newSetCmd(pathsGetter PathsGetter) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configurable user setting",
		Long: `Set a configurable user setting.

Supported keys: ` + strings.Join(config.SettingKeys, ", ") + `.
Durations use Go syntax (100ms, 1.5s).`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]
			value := args[1]

			sm := config.NewSettingsManager(pathsGetter())
			settings, err := sm.LoadOrDefault()
			if err != nil {
				return err
			}

			if err := settings.Set(key, value); err != nil {
				return err
			}
			if err := sm.Save(settings); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Updated %s in %s\n", key, sm.Path())
			if strings.HasPrefix(key, "barrier.") || key == "prefix-length" {
				fmt.Fprintln(cmd.ErrOrStderr(), "WARNING: Run 'nrlgen render' again so generated scripts reflect the new value.")
			}
			return nil
		},
	}

	return cmd
}
