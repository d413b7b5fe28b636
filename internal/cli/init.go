package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/nrlgen/internal/config"
	"github.com/danieljhkim/nrlgen/internal/util"
)

// initKeys are the settings confirmed interactively by init
var initKeys = []string{"barrier.attempts", "barrier.interval", "prefix-length"}

func newInitCmd(pathsGetter PathsGetter) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize nrlgen settings",
		Long: `Initialize the nrlgen settings file.

Each generation setting is shown with its current value; press Enter to
keep it or type a new one. The result is written to
$NRLGEN_HOME/nrlgen.yaml.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			paths := pathsGetter()
			sm := config.NewSettingsManager(paths)

			if util.FileExists(sm.Path()) && !force {
				fmt.Fprintf(cmd.ErrOrStderr(), "==> Settings already initialized: %s\n", sm.Path())
				fmt.Fprintln(cmd.ErrOrStderr(), "==>   (use: nrlgen init --force to overwrite)")
				return nil
			}

			settings, err := sm.LoadOrDefault()
			if err != nil {
				return fmt.Errorf("failed to load settings: %w", err)
			}

			reader := bufio.NewReader(cmd.InOrStdin())
			for _, key := range initKeys {
				current, err := settings.Get(key)
				if err != nil {
					return err
				}
				value, err := confirmInitValue(cmd.OutOrStdout(), reader, key, current)
				if err != nil {
					return err
				}
				if value == current {
					continue
				}
				if err := settings.Set(key, value); err != nil {
					return err
				}
			}

			if err := sm.Save(settings); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "\nSettings file: %s\n", sm.Path())
			fmt.Fprintf(cmd.OutOrStdout(), "Output directory: %s\n", paths.OutputDir())
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing settings")

	return cmd
}

func confirmInitValue(out io.Writer, reader *bufio.Reader, key, current string) (string, error) {
	fmt.Fprintf(out, "confirm %s to be: %s\n", key, current)
	fmt.Fprint(out, "Press Enter to confirm, or type a new value: ")

	line, err := reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read %s confirmation: %w", key, err)
	}

	value := strings.TrimSpace(line)
	if value != "" {
		return value, nil
	}
	return current, nil
}
