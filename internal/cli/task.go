package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mtamigo/focus/internal/app"
	"github.com/mtamigo/focus/internal/domain"
	"github.com/mtamigo/focus/internal/usecase"
)

// newTaskCommand creates the task command group.
func newTaskCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "task",
		Short:   "Manage one-time tasks",
		GroupID: groupTask,
	}

	cmd.AddCommand(
		newTaskAddCommand(c),
		newTaskListCommand(c),
		newTaskDoneCommand(c),
		newTaskRemoveCommand(c),
		newTaskClearCommand(c),
		newTaskNextCommand(c),
		newTaskReorderCommand(c),
	)
	return cmd
}

// newTaskAddCommand creates the task add command.
func newTaskAddCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Urgency  string
		Category string
		Deadline string
		Minutes  int
	}

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Create a new task",
		Long: `Create a new one-time task.

Examples:
  # A task picked up whenever there is room
  focus task add "Sort out tax papers"

  # An urgent 15-minute errand
  focus task add "Pay rent" --urgency now --minutes 15 --deadline "by Friday"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.NewTaskUseCase().Execute(cmd.Context(), usecase.NewTaskInput{
				Title:        args[0],
				Urgency:      domain.Urgency(opts.Urgency),
				Category:     opts.Category,
				DeadlineText: opts.Deadline,
				EstimatedMin: opts.Minutes,
			})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created task #%d\n", out.TaskID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Urgency, "urgency", "u", "", "Urgency tier: now, soon, later (default later)")
	cmd.Flags().StringVar(&opts.Category, "category", "", "Free-form category")
	cmd.Flags().StringVar(&opts.Deadline, "deadline", "", "Deadline in your own words")
	cmd.Flags().IntVarP(&opts.Minutes, "minutes", "m", 0, "Estimated minutes (default 30)")
	return cmd
}

// newTaskListCommand creates the task list command.
func newTaskListCommand(c *app.Container) *cobra.Command {
	var all bool
	var asJSON bool

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List tasks in working order",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.ListTasksUseCase().Execute(cmd.Context(), usecase.ListTasksInput{IncludeCompleted: all})
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), out.Tasks)
			}
			printTaskTable(cmd.OutOrStdout(), out.Tasks)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "Include completed tasks")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}

// newTaskDoneCommand creates the task done command.
func newTaskDoneCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "done <id>",
		Short: "Mark a task completed",
		Long: `Mark a task completed and show what comes next. If a fixed
calendar anchor starts soon, it is surfaced before the next task so
the break is not planned over.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid task ID %q", args[0])
			}

			out, err := c.CompleteTaskUseCase().Execute(cmd.Context(), usecase.CompleteTaskInput{TaskID: id})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "Completed task #%d\n", id)
			if out.Interrupt != nil {
				_, _ = fmt.Fprintf(w, "\nHeads up: %s starts in %d min (%s-%s)\n",
					out.Interrupt.Anchor.Title,
					out.Interrupt.MinutesUntil,
					domain.FormatClock(out.Interrupt.Anchor.Start),
					domain.FormatClock(out.Interrupt.Anchor.End))
				return nil
			}
			if out.NextTask != nil {
				_, _ = fmt.Fprintf(w, "Next up: #%d %s\n", out.NextTask.ID, out.NextTask.Title)
			} else {
				_, _ = fmt.Fprintln(w, "All tasks done.")
			}
			return nil
		},
	}
	return cmd
}

// newTaskRemoveCommand creates the task rm command.
func newTaskRemoveCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"remove"},
		Short:   "Delete a task",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid task ID %q", args[0])
			}
			if err := c.DeleteTaskUseCase().Execute(cmd.Context(), usecase.DeleteTaskInput{TaskID: id}); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted task #%d\n", id)
			return nil
		},
	}
	return cmd
}

// newTaskClearCommand creates the task clear command.
func newTaskClearCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete all completed tasks",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.ClearCompletedUseCase().Execute(cmd.Context())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Removed %d completed tasks\n", out.Removed)
			return nil
		},
	}
	return cmd
}

// newTaskNextCommand creates the task next command.
func newTaskNextCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "next",
		Short: "Show the task to work on now",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.CurrentTaskUseCase().Execute(cmd.Context())
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if out.Task == nil {
				_, _ = fmt.Fprintln(w, "Nothing pending.")
				return nil
			}
			_, _ = fmt.Fprintf(w, "#%d %s [%s, %d min]\n", out.Task.ID, out.Task.Title, out.Task.Urgency, out.Task.Minutes())
			if out.Task.PriorityReason != "" {
				_, _ = fmt.Fprintf(w, "  %s\n", out.Task.PriorityReason)
			}
			return nil
		},
	}
	return cmd
}

// newTaskReorderCommand creates the task reorder command.
func newTaskReorderCommand(c *app.Container) *cobra.Command {
	var useAI bool

	cmd := &cobra.Command{
		Use:   "reorder [id...]",
		Short: "Re-rank pending tasks",
		Long: `Re-rank pending tasks, either from an explicit ID sequence or via
the configured prioritization service. IDs omitted from the sequence
keep their relative order behind the listed ones.

Examples:
  # Put task 3 first, then 1, then everything else
  focus task reorder 3 1

  # Ask the prioritizer (falls back to the local order on failure)
  focus task reorder --ai`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !useAI && len(args) == 0 {
				return fmt.Errorf("provide a task ID sequence or --ai")
			}

			sequence := make([]int, 0, len(args))
			for _, arg := range args {
				id, err := strconv.Atoi(arg)
				if err != nil {
					return fmt.Errorf("invalid task ID %q", arg)
				}
				sequence = append(sequence, id)
			}

			in := usecase.ReorderTasksInput{Sequence: sequence, UseAI: useAI}
			if useAI && c.AppConfig != nil {
				in.Timeout = c.AppConfig.AI.Timeout
			}

			out, err := c.ReorderTasksUseCase().Execute(cmd.Context(), in)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if out.UsedFallback {
				_, _ = fmt.Fprintln(w, "Prioritizer unavailable, applied local order.")
			}
			printTaskTable(w, out.Tasks)
			return nil
		},
	}

	cmd.Flags().BoolVar(&useAI, "ai", false, "Use the configured prioritization service")
	return cmd
}

// printTaskTable renders tasks in a tab-aligned table.
func printTaskTable(w io.Writer, tasks []*domain.Task) {
	if len(tasks) == 0 {
		_, _ = fmt.Fprintln(w, "No tasks.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "ID\tTITLE\tURGENCY\tMIN\tSTATUS")
	for _, t := range tasks {
		status := "pending"
		if t.Completed {
			status = "done"
		}
		_, _ = fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%s\n", t.ID, t.Title, t.Urgency, t.Minutes(), status)
	}
	_ = tw.Flush()
}

// writeJSON renders v as indented JSON.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
