package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/nrlgen/internal/util"
)

func newConfigCmd(pathsGetter PathsGetter) *cobra.Command {
	var (
		scenarioPath string
		nodeName     string
		serviceName  string
		filename     string
	)

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print a service's generated config files for a node",
		Long: `Print the config files or wrapper scripts generated for one service
on one node, without writing anything.

Examples:
  nrlgen config -f scenario.yaml --node n1 --service SMF
  nrlgen config -f scenario.yaml --node n1 --service OLSRORG --file /etc/olsrd/olsrd.conf`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := loadRuntime(cmd, pathsGetter)
			if err != nil {
				return err
			}
			s, sn, err := rt.scenarioNode(scenarioPath, nodeName)
			if err != nil {
				return err
			}

			d, err := rt.gen.Descriptor(serviceName)
			if err != nil {
				return err
			}

			files := d.Configs
			if filename != "" {
				files = []string{filename}
			}
			if len(files) == 0 {
				return fmt.Errorf("%s has no generated config files", serviceName)
			}

			n := sn.ToNode()
			enabled := s.Enabled(sn)
			out := cmd.OutOrStdout()
			for _, f := range files {
				content, err := rt.gen.GenerateConfig(serviceName, n, f, enabled)
				if err != nil {
					return err
				}
				if content == "" {
					util.Warn("%s: %s is not generated for node %s", serviceName, f, nodeName)
					continue
				}
				if len(files) > 1 || filename == "" {
					fmt.Fprintf(out, "=== %s ===\n", f)
				}
				fmt.Fprint(out, content)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&scenarioPath, "file", "f", "", "Scenario file (YAML)")
	cmd.Flags().StringVar(&nodeName, "node", "", "Node name")
	cmd.Flags().StringVar(&serviceName, "service", "", "Service name")
	cmd.Flags().StringVar(&filename, "config", "", "Only this declared config file")
	_ = cmd.MarkFlagRequired("file")
	_ = cmd.MarkFlagRequired("node")
	_ = cmd.MarkFlagRequired("service")

	return cmd
}
