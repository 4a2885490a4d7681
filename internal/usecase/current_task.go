package usecase

import (
	"context"
	"fmt"

	"github.com/mtamigo/focus/internal/domain"
	"github.com/mtamigo/focus/internal/planner"
)

// CurrentTaskOutput contains the suggested current task.
type CurrentTaskOutput struct {
	Task *domain.Task // nil when nothing is pending
}

// CurrentTask is the use case for picking the single task to work on
// now: the minimum of the pending set under the rank, urgency,
// creation-time, ID ordering.
type CurrentTask struct {
	tasks domain.TaskRepository
}

// NewCurrentTask creates a new CurrentTask use case.
func NewCurrentTask(tasks domain.TaskRepository) *CurrentTask {
	return &CurrentTask{tasks: tasks}
}

// Execute returns the task to work on now.
func (uc *CurrentTask) Execute(_ context.Context) (*CurrentTaskOutput, error) {
	tasks, err := uc.tasks.List()
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return &CurrentTaskOutput{Task: planner.CurrentTask(tasks)}, nil
}
