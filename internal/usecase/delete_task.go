package usecase

import (
	"context"
	"fmt"

	"github.com/mtamigo/focus/internal/domain"
)

// DeleteTaskInput contains the parameters for deleting a task.
type DeleteTaskInput struct {
	TaskID int
}

// DeleteTask is the use case for removing a task.
type DeleteTask struct {
	tasks  domain.TaskRepository
	logger domain.Logger
}

// NewDeleteTask creates a new DeleteTask use case.
func NewDeleteTask(tasks domain.TaskRepository, logger domain.Logger) *DeleteTask {
	return &DeleteTask{
		tasks:  tasks,
		logger: logger,
	}
}

// Execute deletes the task with the given ID.
func (uc *DeleteTask) Execute(_ context.Context, in DeleteTaskInput) error {
	task, err := uc.tasks.Get(in.TaskID)
	if err != nil {
		return fmt.Errorf("get task: %w", err)
	}
	if task == nil {
		return domain.ErrTaskNotFound
	}

	if err := uc.tasks.Delete(in.TaskID); err != nil {
		return fmt.Errorf("delete task: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info("task", fmt.Sprintf("deleted #%d: %q", task.ID, task.Title))
	}
	return nil
}
