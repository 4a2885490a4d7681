// Package cli provides the command-line interface for focus.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/mtamigo/focus/internal/app"
)

// Command group IDs.
const (
	groupSetup    = "setup"
	groupTask     = "task"
	groupRoutine  = "routine"
	groupPlanning = "planning"
)

// NewRootCommand creates the root command for focus.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "focus",
		Short: "Adaptive daily time-block planner",
		Long: `focus plans your day around what actually matters: recurring
routines scored by how much you have been neglecting them, one-time
tasks in the order you need them done, and the fixed points of your
calendar (meals, commutes, breaks) that everything else flows around.

Nothing it produces is stored: plans and schedules are recomputed from
the current state every time, so completing a task or logging a
routine session immediately reshapes the rest of the day.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
	}

	root.AddGroup(
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
		&cobra.Group{ID: groupTask, Title: "Task Commands:"},
		&cobra.Group{ID: groupRoutine, Title: "Routine Commands:"},
		&cobra.Group{ID: groupPlanning, Title: "Planning Commands:"},
	)

	root.AddCommand(
		newInitCommand(c),
		newTaskCommand(c),
		newRoutineCommand(c),
		newCapacityCommand(c),
		newAnchorCommand(c),
		newPlanCommand(c),
		newTodayCommand(c),
	)

	return root
}
