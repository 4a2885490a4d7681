package cli

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/mtamigo/focus/internal/app"
	"github.com/mtamigo/focus/internal/usecase"
)

// newPlanCommand creates the plan command.
func newPlanCommand(c *app.Container) *cobra.Command {
	var date string
	var asJSON bool

	cmd := &cobra.Command{
		Use:     "plan",
		Short:   "Allocate today's focus budget",
		GroupID: groupPlanning,
		Long: `Allocate the day's focus budget: pending tasks first in working
order, then active routines by descending urgency score, until the
budget runs out. The plan is recomputed from current state every time
and never stored.

Examples:
  focus plan
  focus plan --date 2026-09-01`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in := usecase.PlanDayInput{}
			if date != "" {
				parsed, err := time.ParseInLocation("2006-01-02", date, time.Local)
				if err != nil {
					return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", date)
				}
				in.Date = parsed
			}

			out, err := c.PlanDayUseCase().Execute(cmd.Context(), in)
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), out.Plan)
			}

			plan := out.Plan
			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "Plan for %s (%d min budget, %d allocated, %d left)\n\n",
				plan.Date.Format("Mon Jan 2"), plan.TotalMinutes, plan.AllocatedMinutes, plan.RemainingMinutes)

			if len(plan.Blocks) == 0 {
				_, _ = fmt.Fprintln(w, "Nothing to allocate.")
				return nil
			}

			tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
			_, _ = fmt.Fprintln(tw, "KIND\tTITLE\tMIN\tWHY")
			for _, b := range plan.Blocks {
				_, _ = fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", b.Kind, b.Title, b.Minutes, b.Reason)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Plan for this date instead of today (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}
