package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/nrlgen/internal/util"
)

func newWaitCmd(pathsGetter PathsGetter) *cobra.Command {
	var (
		attempts int
		interval time.Duration
	)

	cmd := &cobra.Command{
		Use:   "wait <path>...",
		Short: "Wait for files, pipes or sockets to exist",
		Long: `Poll until every path exists, using the same bounded barrier that
generated startup scripts use. Exits non-zero if a path is still missing
after the last attempt.

Defaults come from the barrier.attempts and barrier.interval settings.

Examples:
  nrlgen wait /tmp/n1_smf && arouted instance n1_smf ...
  nrlgen wait --attempts 50 --interval 200ms /var/run/zserv.api`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := loadRuntime(cmd, pathsGetter)
			if err != nil {
				return err
			}

			b := rt.settings.Barrier
			if cmd.Flags().Changed("attempts") {
				b.Attempts = attempts
			}
			if cmd.Flags().Changed("interval") {
				b.Interval = interval
			}
			if err := b.Validate(); err != nil {
				return err
			}

			for _, path := range args {
				if err := b.WaitForPath(cmd.Context(), path); err != nil {
					return err
				}
				rt.log.Debug().Str("path", path).Msg("resource ready")
			}
			util.Success("Ready: %d path(s)", len(args))
			return nil
		},
	}

	cmd.Flags().IntVar(&attempts, "attempts", 0, "Number of checks before giving up")
	cmd.Flags().DurationVar(&interval, "interval", 0, "Delay between checks")

	return cmd
}
