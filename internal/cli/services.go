package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/nrlgen/internal/util"
)

func newServicesCmd(pathsGetter PathsGetter) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "services",
		Short: "List the services nrlgen generates",
		Long: `List every service in start order with its start index and the
config files generated for it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := loadRuntime(cmd, pathsGetter)
			if err != nil {
				return err
			}

			var rows []util.TableRow
			for _, d := range rt.gen.List() {
				detail := strings.Join(d.Configs, ", ")
				if detail == "" {
					detail = "-"
				}
				rows = append(rows, util.TableRow{
					Name:   d.Name,
					Status: fmt.Sprintf("%d", d.StartIndex),
					Detail: detail,
					Ok:     true,
				})
			}

			util.Table(cmd.OutOrStdout(), rows)
			return nil
		},
	}

	return cmd
}
