package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/nrlgen/internal/config"
	"github.com/danieljhkim/nrlgen/internal/service"
	"github.com/danieljhkim/nrlgen/internal/util"
)

func newStatusCmd(pathsGetter PathsGetter) *cobra.Command {
	var outputDir string

	cmd := &cobra.Command{
		Use:   "status <node>",
		Short: "Run a rendered node's validate commands",
		Long: `Check that a rendered node's files are present and run each started
service's validate command (e.g. pidof nrlsmf) on this host.

Run it inside the emulated node, after the node was rendered with
'nrlgen render'.

Examples:
  nrlgen status n1
  nrlgen status n1 -o /tmp/out`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := loadRuntime(cmd, pathsGetter)
			if err != nil {
				return err
			}
			if outputDir == "" {
				outputDir = rt.paths.OutputDir()
			}

			om := config.NewOutputManager(outputDir, rt.gen)
			plan, err := om.Check(args[0])
			if err != nil {
				return err
			}

			runner := service.NewCommandRunner(filepath.Join(om.Dir(), plan.Node), rt.log)
			statuses := runner.Status(cmd.Context(), plan)

			out := cmd.OutOrStdout()
			util.Section(out, "%s", plan.Node)

			failed := 0
			rows := make([]util.TableRow, 0, len(statuses))
			for _, st := range statuses {
				row := util.TableRow{Name: st.Name, Detail: st.Detail}
				switch {
				case st.Skipped:
					row.Status, row.Ok = "skipped", true
				case st.Running:
					row.Status, row.Ok = "running", true
				default:
					row.Status = "stopped"
					failed++
				}
				rows = append(rows, row)
			}
			util.Table(out, rows)

			if failed > 0 {
				return fmt.Errorf("%d of %d services not running on %s", failed, len(statuses), plan.Node)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "Output directory used by render (default $NRLGEN_HOME/out)")

	return cmd
}
