package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/mtamigo/focus/internal/app"
	"github.com/mtamigo/focus/internal/domain"
	"github.com/mtamigo/focus/internal/usecase"
)

// newAnchorCommand creates the anchor command group.
func newAnchorCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "anchor",
		Short:   "Manage fixed calendar anchors",
		GroupID: groupSetup,
		Long: `Anchors are the immovable points of the day: meals, commutes,
breaks. The day schedule flows tasks into the gaps between them, and
an anchor starting soon interrupts the task flow so it is not planned
over.`,
	}

	cmd.AddCommand(
		newAnchorAddCommand(c),
		newAnchorListCommand(c),
		newAnchorRemoveCommand(c),
		newAnchorImportCommand(c),
		newAnchorSeedCommand(c),
	)
	return cmd
}

// newAnchorAddCommand creates the anchor add command.
func newAnchorAddCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Category string
		Days     []string
	}

	cmd := &cobra.Command{
		Use:   "add <title> <start> <end>",
		Short: "Create a calendar anchor",
		Long: `Create a fixed calendar anchor. Without --day the anchor applies
every day.

Examples:
  focus anchor add "Lunch Break" 12:30 13:30 --category meal --day monday --day tuesday --day wednesday --day thursday --day friday
  focus anchor add "Evening Walk" 18:00 18:30`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			days, err := parseWeekdayFlags(opts.Days)
			if err != nil {
				return err
			}
			out, err := c.NewAnchorUseCase().Execute(cmd.Context(), usecase.NewAnchorInput{
				Title:    args[0],
				Start:    args[1],
				End:      args[2],
				Category: domain.AnchorCategory(opts.Category),
				Days:     days,
			})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created anchor #%d\n", out.AnchorID)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Category, "category", "", "Category: meal, break, routine, other (default other)")
	cmd.Flags().StringSliceVar(&opts.Days, "day", nil, "Weekday the anchor applies to (repeatable; default every day)")
	return cmd
}

// newAnchorListCommand creates the anchor list command.
func newAnchorListCommand(c *app.Container) *cobra.Command {
	var day string
	var asJSON bool

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List calendar anchors",
		RunE: func(cmd *cobra.Command, _ []string) error {
			in := usecase.ListAnchorsInput{}
			if day != "" {
				parsed, err := parseWeekdayFlags([]string{day})
				if err != nil {
					return err
				}
				in.Filter = true
				in.Day = parsed[0]
			}

			out, err := c.ListAnchorsUseCase().Execute(cmd.Context(), in)
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), out.Anchors)
			}
			if len(out.Anchors) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No anchors.")
				return nil
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			_, _ = fmt.Fprintln(tw, "ID\tTITLE\tTIME\tCATEGORY\tDAYS")
			for _, a := range out.Anchors {
				_, _ = fmt.Fprintf(tw, "%d\t%s\t%s-%s\t%s\t%s\n",
					a.ID, a.Title,
					domain.FormatClock(a.Start), domain.FormatClock(a.End),
					a.Category, formatDays(a.Days))
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&day, "day", "", "Only anchors active on this weekday")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}

// newAnchorRemoveCommand creates the anchor rm command.
func newAnchorRemoveCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"remove"},
		Short:   "Delete a calendar anchor",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid anchor ID %q", args[0])
			}
			if err := c.DeleteAnchorUseCase().Execute(cmd.Context(), usecase.DeleteAnchorInput{AnchorID: id}); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted anchor #%d\n", id)
			return nil
		},
	}
	return cmd
}

// newAnchorImportCommand creates the anchor import command.
func newAnchorImportCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import anchors from a YAML file",
		Long: `Import a weekly anchor template from a YAML file. The import is
additive and all-or-nothing: a bad entry aborts it.

File format:
  anchors:
    - title: Lunch Break
      category: meal
      start: "12:30"
      end: "13:30"
      days: [monday, tuesday, wednesday, thursday, friday]`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open import file: %w", err)
			}
			defer func() { _ = f.Close() }()

			out, err := c.ImportAnchorsUseCase().Execute(cmd.Context(), usecase.ImportAnchorsInput{Reader: f})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Imported %d anchors\n", out.Imported)
			return nil
		},
	}
	return cmd
}

// newAnchorSeedCommand creates the anchor seed command.
func newAnchorSeedCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Install the built-in weekly calendar",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.SeedAnchorsUseCase().Execute(cmd.Context())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d calendar anchors\n", out.Seeded)
			return nil
		},
	}
	return cmd
}

// parseWeekdayFlags converts day-name flags into weekdays.
func parseWeekdayFlags(names []string) ([]time.Weekday, error) {
	days := make([]time.Weekday, 0, len(names))
	for _, name := range names {
		matched := false
		for d := time.Sunday; d <= time.Saturday; d++ {
			if strings.EqualFold(name, d.String()) {
				days = append(days, d)
				matched = true
				break
			}
		}
		if !matched {
			return nil, fmt.Errorf("unknown weekday %q", name)
		}
	}
	return days, nil
}

// formatDays renders a weekday set compactly.
func formatDays(days []time.Weekday) string {
	if len(days) == 7 {
		return "every day"
	}
	names := make([]string, 0, len(days))
	for _, d := range days {
		names = append(names, d.String()[:3])
	}
	return strings.Join(names, ",")
}
