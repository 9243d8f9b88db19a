// Package commands implements the CLI commands for camplan.
package commands

import (
	"context"

	"github.com/spf13/cobra"
	"go.trai.ch/camplan/internal/app"
)

// CLI represents the command line interface for camplan.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a *app.App) *CLI {
	rootCmd := &cobra.Command{
		Use:           "camplan",
		Short:         "Plan machining operations and cache their geometry artifacts",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringP("plan", "p", "camplan.yaml", "Path to the plan file")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newRunCmd())
	rootCmd.AddCommand(c.newCleanCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

func (c *CLI) planPath(cmd *cobra.Command) string {
	path, _ := cmd.Flags().GetString("plan")
	return path
}
