package cli

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mtamigo/focus/internal/app"
	"github.com/mtamigo/focus/internal/domain"
	"github.com/mtamigo/focus/internal/usecase"
)

// newRoutineCommand creates the routine command group.
func newRoutineCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "routine",
		Short:   "Manage recurring routines",
		GroupID: groupRoutine,
	}

	cmd.AddCommand(
		newRoutineAddCommand(c),
		newRoutineListCommand(c),
		newRoutineDoneCommand(c),
		newRoutineToggleCommand(c),
		newRoutineRemoveCommand(c),
	)
	return cmd
}

// newRoutineAddCommand creates the routine add command.
func newRoutineAddCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Priority  string
		Category  string
		Load      string
		Prefer    string
		Frequency int
	}

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Create a new routine",
		Long: `Create a recurring routine with a weekly frequency target.

Examples:
  # A demanding daily practice
  focus routine add "Deep Work" --priority high --load heavy --frequency 5

  # A light habit, three times a week, evenings preferred
  focus routine add "Reading" --priority low --load light --frequency 3 --prefer evening`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.NewRoutineUseCase().Execute(cmd.Context(), usecase.NewRoutineInput{
				Title:         args[0],
				Priority:      domain.Priority(opts.Priority),
				Category:      opts.Category,
				MentalLoad:    domain.MentalLoad(opts.Load),
				PreferredTime: domain.TimePreference(opts.Prefer),
				Frequency:     opts.Frequency,
			})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created routine #%d\n", out.RoutineID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Priority, "priority", "p", "", "Priority tier: high, medium, low (default medium)")
	cmd.Flags().StringVar(&opts.Category, "category", "", "Free-form category")
	cmd.Flags().StringVarP(&opts.Load, "load", "l", "", "Mental load: heavy, medium, light (default medium)")
	cmd.Flags().StringVar(&opts.Prefer, "prefer", "", "Preferred time: morning, afternoon, evening, weekend, anytime")
	cmd.Flags().IntVarP(&opts.Frequency, "frequency", "f", 0, "Target completions per week (1-7, required)")
	_ = cmd.MarkFlagRequired("frequency")
	return cmd
}

// newRoutineListCommand creates the routine list command.
func newRoutineListCommand(c *app.Container) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List routines by urgency score",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.ListRoutinesUseCase().Execute(cmd.Context(), usecase.ListRoutinesInput{})
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), out.Routines)
			}
			if len(out.Routines) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No routines.")
				return nil
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			_, _ = fmt.Fprintln(tw, "ID\tTITLE\tSCORE\tWEEK\tPRIORITY\tLOAD\tIDEAL\tSTATE")
			for _, s := range out.Routines {
				r := s.Routine
				state := "active"
				if !r.Active {
					state = "paused"
				}
				_, _ = fmt.Fprintf(tw, "%d\t%s\t%d\t%d/%d\t%s\t%s\t%dm\t%s\n",
					r.ID, r.Title, s.Score, s.WeekCount, r.Frequency,
					r.Priority, r.MentalLoad, r.IdealMinutes(), state)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}

// newRoutineDoneCommand creates the routine done command.
func newRoutineDoneCommand(c *app.Container) *cobra.Command {
	var minutes int

	cmd := &cobra.Command{
		Use:   "done <id>",
		Short: "Record a finished routine session",
		Long: `Record a finished session against a routine. The minutes spent
feed the routine's learned average, which becomes the session length
the planner aims for next time.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid routine ID %q", args[0])
			}
			out, err := c.RecordCompletionUseCase().Execute(cmd.Context(), usecase.RecordCompletionInput{
				RoutineID: id,
				Minutes:   minutes,
			})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Recorded %d min (average now %d min)\n", minutes, out.AvgMinutes)
			return nil
		},
	}

	cmd.Flags().IntVarP(&minutes, "minutes", "m", 0, "Minutes spent (required)")
	_ = cmd.MarkFlagRequired("minutes")
	return cmd
}

// newRoutineToggleCommand creates the routine toggle command.
func newRoutineToggleCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "toggle <id>",
		Short: "Pause or resume a routine",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid routine ID %q", args[0])
			}
			out, err := c.ToggleRoutineUseCase().Execute(cmd.Context(), usecase.ToggleRoutineInput{RoutineID: id})
			if err != nil {
				return err
			}
			state := "paused"
			if out.Active {
				state = "active"
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Routine #%d is now %s\n", id, state)
			return nil
		},
	}
	return cmd
}

// newRoutineRemoveCommand creates the routine rm command.
func newRoutineRemoveCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"remove"},
		Short:   "Delete a routine",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid routine ID %q", args[0])
			}
			if err := c.DeleteRoutineUseCase().Execute(cmd.Context(), usecase.DeleteRoutineInput{RoutineID: id}); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted routine #%d\n", id)
			return nil
		},
	}
	return cmd
}
