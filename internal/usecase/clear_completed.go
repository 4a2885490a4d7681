package usecase

import (
	"context"
	"fmt"

	"github.com/mtamigo/focus/internal/domain"
)

// ClearCompletedOutput contains the result of clearing completed tasks.
type ClearCompletedOutput struct {
	Removed int // Number of tasks removed
}

// ClearCompleted is the use case for pruning completed tasks.
type ClearCompleted struct {
	tasks  domain.TaskRepository
	logger domain.Logger
}

// NewClearCompleted creates a new ClearCompleted use case.
func NewClearCompleted(tasks domain.TaskRepository, logger domain.Logger) *ClearCompleted {
	return &ClearCompleted{
		tasks:  tasks,
		logger: logger,
	}
}

// Execute removes all completed tasks.
func (uc *ClearCompleted) Execute(_ context.Context) (*ClearCompletedOutput, error) {
	removed, err := uc.tasks.DeleteCompleted()
	if err != nil {
		return nil, fmt.Errorf("delete completed tasks: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info("task", fmt.Sprintf("cleared %d completed tasks", removed))
	}
	return &ClearCompletedOutput{Removed: removed}, nil
}
