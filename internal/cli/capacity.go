package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mtamigo/focus/internal/app"
	"github.com/mtamigo/focus/internal/domain"
	"github.com/mtamigo/focus/internal/usecase"
)

// newCapacityCommand creates the capacity command group.
func newCapacityCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "capacity",
		Short:   "Manage daily focus windows",
		GroupID: groupSetup,
	}

	cmd.AddCommand(
		newCapacityShowCommand(c),
		newCapacitySetCommand(c),
	)
	return cmd
}

// newCapacityShowCommand creates the capacity show command.
func newCapacityShowCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the effective focus windows",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.ShowCapacityUseCase().Execute(cmd.Context())
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			_, _ = fmt.Fprintln(tw, "DAY\tWINDOW\tBUDGET\tSOURCE")
			for _, s := range []usecase.CapacityStatus{out.Weekday, out.Weekend} {
				_, _ = fmt.Fprintf(tw, "%s\t%s-%s\t%d min\t%s\n",
					s.Kind,
					domain.FormatClock(s.Capacity.Start),
					domain.FormatClock(s.Capacity.End),
					s.Capacity.TotalMinutes,
					s.Source)
			}
			return tw.Flush()
		},
	}
	return cmd
}

// newCapacitySetCommand creates the capacity set command.
func newCapacitySetCommand(c *app.Container) *cobra.Command {
	var total int

	cmd := &cobra.Command{
		Use:   "set <weekday|weekend> <start> <end>",
		Short: "Override a focus window",
		Long: `Override the focus window for one kind of day. The budget defaults
to the window span; an explicit --total that disagrees with the span
is stored as given and reported.

Examples:
  # Weekday evenings, seven to eleven
  focus capacity set weekday 19:00 23:00

  # Weekend window with a deliberately smaller budget
  focus capacity set weekend 09:00 15:00 --total 300`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.SetCapacityUseCase().Execute(cmd.Context(), usecase.SetCapacityInput{
				Kind:         domain.DayKind(args[0]),
				Start:        args[1],
				End:          args[2],
				TotalMinutes: total,
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "Set %s window to %s-%s (%d min)\n",
				args[0],
				domain.FormatClock(out.Capacity.Start),
				domain.FormatClock(out.Capacity.End),
				out.Capacity.TotalMinutes)
			if out.Warning != "" {
				_, _ = fmt.Fprintf(w, "Warning: %s\n", out.Warning)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&total, "total", 0, "Budget in minutes (default: window span)")
	return cmd
}
