package usecase

import (
	"context"
	"fmt"

	"github.com/mtamigo/focus/internal/domain"
	"github.com/mtamigo/focus/internal/planner"
)

// ListTasksInput contains the parameters for listing tasks.
type ListTasksInput struct {
	IncludeCompleted bool // When false only pending tasks are returned
}

// ListTasksOutput contains the task listing.
type ListTasksOutput struct {
	Tasks []*domain.Task // Pending tasks in working order, completed appended
}

// ListTasks is the use case for listing tasks in working order.
type ListTasks struct {
	tasks domain.TaskRepository
}

// NewListTasks creates a new ListTasks use case.
func NewListTasks(tasks domain.TaskRepository) *ListTasks {
	return &ListTasks{tasks: tasks}
}

// Execute returns pending tasks sorted into working order, optionally
// followed by completed ones in ID order.
func (uc *ListTasks) Execute(_ context.Context, in ListTasksInput) (*ListTasksOutput, error) {
	all, err := uc.tasks.List()
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	ordered := planner.SortPending(all)
	if in.IncludeCompleted {
		for _, t := range all {
			if t.Completed {
				ordered = append(ordered, t)
			}
		}
	}
	return &ListTasksOutput{Tasks: ordered}, nil
}
