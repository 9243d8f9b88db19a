package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/camplan/internal/app"
)

func (c *CLI) newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [parts...]",
		Short: "Schedule the plan and produce missing artifacts",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dryRun, _ := cmd.Flags().GetBool("dry-run")
			noCache, _ := cmd.Flags().GetBool("no-cache")

			return c.app.Run(cmd.Context(), c.planPath(cmd), args, app.RunOptions{
				DryRun:  dryRun,
				NoCache: noCache,
			})
		},
	}

	cmd.Flags().Bool("dry-run", false, "Schedule only, do not touch artifacts")
	cmd.Flags().Bool("no-cache", false, "Reproduce artifacts even when cached")

	return cmd
}
