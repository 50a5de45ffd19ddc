package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/crit/internal/app"
)

func (c *CLI) newScheduleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schedule [files...]",
		Short: "Compute the critical path schedule of project files",
		Long: "Compute earliest and latest start and finish times, slack and critical paths.\n" +
			"Without arguments the nearest crit.yaml or crit.toml above the working directory is used.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")
			output, _ := cmd.Flags().GetString("output")
			noCache, _ := cmd.Flags().GetBool("no-cache")
			watch, _ := cmd.Flags().GetBool("watch")
			failOnOverrun, _ := cmd.Flags().GetBool("fail-on-overrun")
			timings, _ := cmd.Flags().GetBool("timings")

			return c.app.Schedule(cmd.Context(), app.ScheduleOptions{
				Files:         args,
				Format:        format,
				Output:        output,
				NoCache:       noCache,
				Watch:         watch,
				FailOnOverrun: failOnOverrun,
				Timings:       timings,
			})
		},
	}
	cmd.Flags().StringP("format", "f", "table", "Output format: table, gantt, csv or json")
	cmd.Flags().StringP("output", "o", "", "Write the report to a file instead of stdout")
	cmd.Flags().BoolP("no-cache", "n", false, "Recompute the schedule even when a cached report matches")
	cmd.Flags().BoolP("watch", "w", false, "Reschedule whenever a project file changes")
	cmd.Flags().Bool("fail-on-overrun", false, "Exit with an error when the schedule misses the project deadline")
	cmd.Flags().Bool("timings", false, "Log the duration of every scheduling stage")
	return cmd
}
