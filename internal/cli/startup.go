package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/nrlgen/internal/config/generator"
	"github.com/danieljhkim/nrlgen/internal/util"
)

func newStartupCmd(pathsGetter PathsGetter) *cobra.Command {
	var (
		scenarioPath string
		nodeName     string
		serviceName  string
		kind         string
	)

	cmd := &cobra.Command{
		Use:   "startup",
		Short: "Print the startup commands for a node",
		Long: `Print the commands that start a node's services, in start order.

With --service only that service's commands are printed, one per line, so
the output can be piped to a shell. A service with nothing to start on the
node prints nothing.

--kind selects shutdown or validate commands instead.

Examples:
  nrlgen startup -f scenario.yaml --node n1
  nrlgen startup -f scenario.yaml --node n1 --service SMF
  nrlgen startup -f scenario.yaml --node n1 --kind validate`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pick, err := commandKind(kind)
			if err != nil {
				return err
			}

			rt, err := loadRuntime(cmd, pathsGetter)
			if err != nil {
				return err
			}
			s, sn, err := rt.scenarioNode(scenarioPath, nodeName)
			if err != nil {
				return err
			}
			plan := rt.gen.Plan(sn.ToNode(), s.Enabled(sn))
			out := cmd.OutOrStdout()

			if serviceName != "" {
				if !rt.gen.HasService(serviceName) {
					return fmt.Errorf("unknown service: %s", serviceName)
				}
				sp := plan.Service(serviceName)
				if sp == nil {
					return fmt.Errorf("service %s is not enabled on node %s", serviceName, nodeName)
				}
				if sp.Skipped && kind == "startup" {
					util.Warn("%s is not started on %s (no data interfaces)", serviceName, nodeName)
				}
				for _, line := range pick(sp) {
					fmt.Fprintln(out, line)
				}
				return nil
			}

			for i := range plan.Services {
				sp := &plan.Services[i]
				if sp.Skipped && kind == "startup" {
					fmt.Fprintf(out, "# %s (start index %d): skipped\n", sp.Name, sp.StartIndex)
					continue
				}
				fmt.Fprintf(out, "# %s (start index %d)\n", sp.Name, sp.StartIndex)
				for _, line := range pick(sp) {
					fmt.Fprintln(out, line)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&scenarioPath, "file", "f", "", "Scenario file (YAML)")
	cmd.Flags().StringVar(&nodeName, "node", "", "Node name")
	cmd.Flags().StringVar(&serviceName, "service", "", "Only this service")
	cmd.Flags().StringVar(&kind, "kind", "startup", "Commands to print (startup, shutdown, validate)")
	_ = cmd.MarkFlagRequired("file")
	_ = cmd.MarkFlagRequired("node")

	return cmd
}

func commandKind(kind string) (func(*generator.ServicePlan) []string, error) {
	switch kind {
	case "startup":
		return func(sp *generator.ServicePlan) []string { return sp.Startup }, nil
	case "shutdown":
		return func(sp *generator.ServicePlan) []string { return sp.Shutdown }, nil
	case "validate":
		return func(sp *generator.ServicePlan) []string { return sp.Validate }, nil
	default:
		return nil, fmt.Errorf("unknown kind %q (valid: startup, shutdown, validate)", kind)
	}
}
