package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/nrlgen/internal/env"
	"github.com/danieljhkim/nrlgen/internal/services"
)

func newDoctorCmd(pathsGetter PathsGetter) *cobra.Command {
	var (
		scenarioPath string
		nodeName     string
	)

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check that the daemons a node runs are installed",
		Long: `Check this host's PATH for the executables the generated startup
commands run.

Without --file every service is checked. With --file and --node only the
services enabled on that node are checked.

Examples:
  nrlgen doctor
  nrlgen doctor -f scenario.yaml --node n1`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := loadRuntime(cmd, pathsGetter)
			if err != nil {
				return err
			}

			descs := rt.gen.List()
			target := ""
			zebra := false
			if scenarioPath != "" {
				if nodeName == "" {
					return fmt.Errorf("--node is required with --file")
				}
				s, sn, err := rt.scenarioNode(scenarioPath, nodeName)
				if err != nil {
					return err
				}
				enabled := s.Enabled(sn)
				plan := rt.gen.Plan(sn.ToNode(), enabled)
				descs = nil
				for _, name := range plan.StartOrder() {
					d, err := rt.gen.Descriptor(name)
					if err != nil {
						return err
					}
					descs = append(descs, d)
				}
				target = nodeName
				zebra = enabled.Has(services.NameZebra)
			}

			result := env.RunDoctor(target, descs, zebra, env.NewToolDetector())
			result.Print(cmd.OutOrStdout())
			if result.HasFailures {
				return fmt.Errorf("required executables are missing")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&scenarioPath, "file", "f", "", "Scenario file (YAML)")
	cmd.Flags().StringVar(&nodeName, "node", "", "Node name")

	return cmd
}
