// Package usecase contains application use cases.
package usecase

import (
	"context"
	"fmt"

	"github.com/mtamigo/focus/internal/domain"
)

// NewTaskInput contains the parameters for creating a new task.
// Fields are ordered to minimize memory padding.
type NewTaskInput struct {
	Title        string         // Task title (required)
	Urgency      domain.Urgency // Scheduling tier (empty = later)
	Category     string         // Free-form category (optional)
	DeadlineText string         // Deadline as the user phrased it (optional)
	EstimatedMin int            // Estimated minutes (0 = use default)
}

// NewTaskOutput contains the result of creating a new task.
type NewTaskOutput struct {
	TaskID int // The ID of the created task
}

// NewTask is the use case for creating a new task.
type NewTask struct {
	tasks  domain.TaskRepository
	clock  domain.Clock
	logger domain.Logger
}

// NewNewTask creates a new NewTask use case.
func NewNewTask(tasks domain.TaskRepository, clock domain.Clock, logger domain.Logger) *NewTask {
	return &NewTask{
		tasks:  tasks,
		clock:  clock,
		logger: logger,
	}
}

// Execute creates a new task with the given input.
func (uc *NewTask) Execute(_ context.Context, in NewTaskInput) (*NewTaskOutput, error) {
	if in.Title == "" {
		return nil, domain.ErrEmptyTitle
	}

	urgency := in.Urgency
	if urgency == "" {
		urgency = domain.UrgencyLater
	}
	if !urgency.IsValid() {
		return nil, fmt.Errorf("unknown urgency %q", in.Urgency)
	}
	if in.EstimatedMin < 0 {
		return nil, domain.ErrInvalidMinutes
	}

	id, err := uc.tasks.NextID()
	if err != nil {
		return nil, fmt.Errorf("generate task ID: %w", err)
	}

	task := &domain.Task{
		Created:      uc.clock.Now(),
		Title:        in.Title,
		Urgency:      urgency,
		Category:     in.Category,
		DeadlineText: in.DeadlineText,
		ID:           id,
		EstimatedMin: in.EstimatedMin,
	}

	if err := uc.tasks.Save(task); err != nil {
		return nil, fmt.Errorf("save task: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info("task", fmt.Sprintf("created #%d: %q", id, in.Title))
	}

	return &NewTaskOutput{TaskID: id}, nil
}
