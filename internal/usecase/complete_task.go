package usecase

import (
	"context"
	"fmt"

	"github.com/mtamigo/focus/internal/domain"
	"github.com/mtamigo/focus/internal/planner"
)

// CompleteTaskInput contains the parameters for completing a task.
type CompleteTaskInput struct {
	TaskID           int // Task to mark completed
	LookaheadMinutes int // Interrupt lookahead (0 = default)
}

// CompleteTaskOutput contains the result of completing a task.
// Completion doubles as a check-in point: if a fixed anchor starts
// within the lookahead, it is surfaced so the caller can pause the
// flow before presenting the next task.
type CompleteTaskOutput struct {
	Interrupt *domain.Interrupt // Imminent anchor, nil when none
	NextTask  *domain.Task      // Suggested next task, nil when done for the day
}

// CompleteTask is the use case for marking a task as done.
type CompleteTask struct {
	tasks   domain.TaskRepository
	anchors domain.AnchorRepository
	clock   domain.Clock
	logger  domain.Logger
}

// NewCompleteTask creates a new CompleteTask use case.
func NewCompleteTask(tasks domain.TaskRepository, anchors domain.AnchorRepository, clock domain.Clock, logger domain.Logger) *CompleteTask {
	return &CompleteTask{
		tasks:   tasks,
		anchors: anchors,
		clock:   clock,
		logger:  logger,
	}
}

// Execute marks the task completed and reports what comes next.
func (uc *CompleteTask) Execute(_ context.Context, in CompleteTaskInput) (*CompleteTaskOutput, error) {
	task, err := uc.tasks.Get(in.TaskID)
	if err != nil {
		return nil, fmt.Errorf("get task: %w", err)
	}
	if task == nil {
		return nil, domain.ErrTaskNotFound
	}

	now := uc.clock.Now()
	task.Completed = true
	task.CompletedAt = &now
	if err := uc.tasks.Save(task); err != nil {
		return nil, fmt.Errorf("save task: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info("task", fmt.Sprintf("completed #%d: %q", task.ID, task.Title))
	}

	out := &CompleteTaskOutput{}

	anchors, err := uc.anchors.ListFor(now.Weekday())
	if err != nil {
		return nil, fmt.Errorf("list anchors: %w", err)
	}
	out.Interrupt = planner.NextImminentAnchor(anchors, now, in.LookaheadMinutes)

	remaining, err := uc.tasks.List()
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	out.NextTask = planner.CurrentTask(remaining)

	return out, nil
}
