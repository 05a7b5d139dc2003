package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/shrink/internal/app"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build [dir]",
		Short: "Minify the bundler output of a project",
		Long: `Minify the JavaScript chunks a bundler emitted into the output directory.

Artifacts protected by the exclusion policy (logic.js by default) are left
untouched unless RUNE_MINIFY_LOGIC=1 is set. Assets such as source maps are
never modified.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			format, _ := cmd.Flags().GetString("format")
			outDir, _ := cmd.Flags().GetString("out-dir")
			workers, _ := cmd.Flags().GetInt("workers")
			noMinify, _ := cmd.Flags().GetBool("no-minify")
			outputMode, _ := cmd.Flags().GetString("output-mode")
			ci, _ := cmd.Flags().GetBool("ci")
			jsonLogs, _ := cmd.Flags().GetBool("json-logs")
			metricsOut, _ := cmd.Flags().GetString("metrics-out")
			reportOut, _ := cmd.Flags().GetString("report")

			// If --ci is set, override output-mode to "plain"
			if ci {
				outputMode = "plain"
			}

			return c.app.Build(cmd.Context(), app.RunOptions{
				Dir:        dir,
				Format:     format,
				OutDir:     outDir,
				Workers:    workers,
				NoMinify:   noMinify,
				OutputMode: outputMode,
				JSONLogs:   jsonLogs,
				MetricsOut: metricsOut,
				ReportOut:  reportOut,
			})
		},
	}
	cmd.Flags().StringP("format", "f", "", "Output format override: es, esm, cjs, iife, umd, or system")
	cmd.Flags().StringP("out-dir", "d", "", "Output directory override, relative to the project directory")
	cmd.Flags().IntP("workers", "w", 0, "Number of minifier workers (0 uses CPU count minus one)")
	cmd.Flags().Bool("no-minify", false, "Skip minification, as if build.minify were false")
	cmd.Flags().StringP("output-mode", "o", "auto", "Output mode: auto, pretty, plain, ci, or quiet")
	cmd.Flags().Bool("ci", false, "Use plain output mode (shorthand for --output-mode=plain)")
	cmd.Flags().Bool("json-logs", false, "Emit log lines as JSON")
	cmd.Flags().String("metrics-out", "", "Write worker pool metrics to this file in Prometheus text format")
	cmd.Flags().String("report", "", "Write a JSON bundle report to this file")
	return cmd
}
