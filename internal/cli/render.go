package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/nrlgen/internal/config"
	"github.com/danieljhkim/nrlgen/internal/config/generator"
	"github.com/danieljhkim/nrlgen/internal/util"
	"github.com/danieljhkim/nrlgen/internal/watcher"
)

func newRenderCmd(pathsGetter PathsGetter) *cobra.Command {
	var (
		scenarioPath string
		outputDir    string
		nodes        []string
		watch        bool
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Write every node's config files and startup plan",
		Long: `Render the generated config files, wrapper scripts and plan.yaml of
each scenario node into <output>/<node>/.

Absolute config paths are placed below the node directory
(/etc/olsrd/olsrd.conf becomes <output>/<node>/etc/olsrd/olsrd.conf).

Examples:
  nrlgen render -f scenario.yaml
  nrlgen render -f scenario.yaml -o /tmp/out --node n1 --node n2
  nrlgen render -f scenario.yaml --watch`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := loadRuntime(cmd, pathsGetter)
			if err != nil {
				return err
			}
			if outputDir == "" {
				outputDir = rt.paths.OutputDir()
			}
			om := config.NewOutputManager(outputDir, rt.gen)

			render := func() error {
				s, err := rt.loadScenario(scenarioPath)
				if err != nil {
					return err
				}
				plans, err := om.Apply(s, nodes...)
				if err != nil {
					return err
				}
				printPlans(cmd.OutOrStdout(), plans)
				util.Success("Rendered %d node(s) to %s", len(plans), om.Dir())
				return nil
			}

			if !watch {
				return render()
			}

			if err := render(); err != nil {
				rt.log.Error().Err(err).Msg("render failed, waiting for the scenario to change")
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			w := watcher.New(scenarioPath, func() {
				if err := render(); err != nil {
					rt.log.Error().Err(err).Msg("render failed")
				}
			}).WithLogger(rt.log)

			if err := w.Watch(ctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&scenarioPath, "file", "f", "", "Scenario file (YAML)")
	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "Output directory (default $NRLGEN_HOME/out)")
	cmd.Flags().StringSliceVar(&nodes, "node", nil, "Render only these nodes (repeatable)")
	cmd.Flags().BoolVar(&watch, "watch", false, "Re-render whenever the scenario file changes")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

// printPlans prints one section per node with each service's start status
func printPlans(w io.Writer, plans []*generator.Plan) {
	for _, plan := range plans {
		util.Section(w, "%s", plan.Node)

		rows := make([]util.TableRow, 0, len(plan.Services))
		for _, sp := range plan.Services {
			row := util.TableRow{Name: sp.Name, Status: "start", Ok: true}
			if sp.Skipped {
				row.Status = "skipped"
				row.Ok = false
				row.Detail = "no data interfaces"
			} else if len(sp.Files) > 0 {
				names := make([]string, 0, len(sp.Files))
				for _, f := range sp.Files {
					names = append(names, f.Name)
				}
				row.Detail = strings.Join(names, ", ")
			}
			rows = append(rows, row)
		}
		if len(rows) == 0 {
			fmt.Fprintln(w, "  (no generated services enabled)")
			continue
		}
		util.Table(w, rows)
	}
}
