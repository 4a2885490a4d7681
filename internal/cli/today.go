package cli

import (
	"fmt"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/mtamigo/focus/internal/app"
	"github.com/mtamigo/focus/internal/domain"
	"github.com/mtamigo/focus/internal/tui"
	"github.com/mtamigo/focus/internal/usecase"
)

// launchWatchFunc launches the live view; a variable so tests can stub it.
var launchWatchFunc = launchWatch

// newTodayCommand creates the today command.
func newTodayCommand(c *app.Container) *cobra.Command {
	var watch bool
	var asJSON bool

	cmd := &cobra.Command{
		Use:     "today",
		Short:   "Show today's schedule",
		GroupID: groupPlanning,
		Long: `Show the clocked day schedule: fixed calendar anchors with pending
tasks flowed into the gaps between them.

With --watch the schedule stays on screen and refreshes itself; an
anchor starting soon is raised as a banner that can be acknowledged
or snoozed.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if watch {
				return launchWatchFunc(c)
			}

			out, err := c.DayScheduleUseCase().Execute(cmd.Context(), usecase.DayScheduleInput{})
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), out.Entries)
			}

			w := cmd.OutOrStdout()
			if len(out.Entries) == 0 {
				_, _ = fmt.Fprintln(w, "Nothing scheduled today.")
				return nil
			}

			tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
			_, _ = fmt.Fprintln(tw, "TIME\tTITLE\tKIND")
			for _, e := range out.Entries {
				kind := string(e.Urgency)
				if e.Fixed {
					kind = string(e.Category)
				}
				_, _ = fmt.Fprintf(tw, "%s-%s\t%s\t%s\n",
					domain.FormatClock(e.Start), domain.FormatClock(e.End), e.Title, kind)
			}
			if err := tw.Flush(); err != nil {
				return err
			}

			intr, err := c.CheckInterruptUseCase().Execute(cmd.Context(), usecase.CheckInterruptInput{})
			if err != nil {
				return err
			}
			if intr.Interrupt != nil {
				_, _ = fmt.Fprintf(w, "\nHeads up: %s starts in %d min\n",
					intr.Interrupt.Anchor.Title, intr.Interrupt.MinutesUntil)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Keep the schedule on screen and refresh it")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}

// launchWatch runs the live schedule view.
func launchWatch(c *app.Container) error {
	m := tui.New(
		c.DayScheduleUseCase(),
		c.CheckInterruptUseCase(),
		c.CurrentTaskUseCase(),
		c.Clock,
	)
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
