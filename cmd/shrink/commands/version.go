package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/shrink/internal/build"
)

// versionLine is shared by the version subcommand and the --version flag.
func versionLine() string {
	return fmt.Sprintf("shrink version %s (commit: %s, date: %s)", build.Version, build.Commit, build.Date)
}

func (c *CLI) newVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the application version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			line := versionLine()
			if short, _ := cmd.Flags().GetBool("short"); short {
				line = build.Version
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), line)
		},
	}
	cmd.Flags().Bool("short", false, "Print only the version number")
	return cmd
}
