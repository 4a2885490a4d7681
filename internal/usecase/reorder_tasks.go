package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/mtamigo/focus/internal/domain"
	"github.com/mtamigo/focus/internal/planner"
)

// ReorderTasksInput contains the parameters for reordering tasks.
// Fields are ordered to minimize memory padding.
type ReorderTasksInput struct {
	Sequence []int         // Explicit pending-task ID order (manual mode)
	Timeout  time.Duration // Prioritizer budget (0 = no extra deadline)
	UseAI    bool          // Ask the prioritizer instead of taking Sequence
}

// ReorderTasksOutput contains the reordered pending tasks.
type ReorderTasksOutput struct {
	Tasks        []*domain.Task // Pending tasks in the new order
	UsedFallback bool           // True when the prioritizer failed and local ordering was applied
}

// ReorderTasks is the use case for re-ranking pending tasks, either
// from an explicit sequence or via the prioritizer. The prioritizer is
// best-effort: on error or timeout the local deterministic order is
// applied instead and UsedFallback is set.
type ReorderTasks struct {
	tasks       domain.TaskRepository
	prioritizer domain.Prioritizer
	logger      domain.Logger
}

// NewReorderTasks creates a new ReorderTasks use case. The prioritizer
// may be nil, in which case UseAI always falls back.
func NewReorderTasks(tasks domain.TaskRepository, prioritizer domain.Prioritizer, logger domain.Logger) *ReorderTasks {
	return &ReorderTasks{
		tasks:       tasks,
		prioritizer: prioritizer,
		logger:      logger,
	}
}

// Execute applies the new order and persists the resulting ranks.
func (uc *ReorderTasks) Execute(ctx context.Context, in ReorderTasksInput) (*ReorderTasksOutput, error) {
	all, err := uc.tasks.List()
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	pending := planner.SortPending(all)

	if in.UseAI {
		return uc.executeAI(ctx, in, pending)
	}
	return uc.executeManual(in.Sequence, pending)
}

// executeManual applies an explicit ID sequence. Every ID must name a
// pending task; pending tasks missing from the sequence keep their
// relative order after the sequenced ones.
func (uc *ReorderTasks) executeManual(sequence []int, pending []*domain.Task) (*ReorderTasksOutput, error) {
	byID := make(map[int]*domain.Task, len(pending))
	for _, t := range pending {
		byID[t.ID] = t
	}

	seen := make(map[int]bool, len(sequence))
	ordered := make([]*domain.Task, 0, len(pending))
	for _, id := range sequence {
		t, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("%w: %d", domain.ErrUnknownTaskID, id)
		}
		if seen[id] {
			return nil, fmt.Errorf("%w: %d listed twice", domain.ErrUnknownTaskID, id)
		}
		seen[id] = true
		ordered = append(ordered, t)
	}
	for _, t := range pending {
		if !seen[t.ID] {
			ordered = append(ordered, t)
		}
	}

	if err := uc.applyOrder(ordered); err != nil {
		return nil, err
	}
	return &ReorderTasksOutput{Tasks: ordered}, nil
}

// executeAI asks the prioritizer for an order and falls back to the
// local deterministic one when it fails.
func (uc *ReorderTasks) executeAI(ctx context.Context, in ReorderTasksInput, pending []*domain.Task) (*ReorderTasksOutput, error) {
	ordered, reasons, ok := uc.askPrioritizer(ctx, in.Timeout, pending)
	if !ok {
		// Local order is already applied to the slice; persist the ranks
		// so subsequent listings stay stable.
		if err := uc.applyOrder(pending); err != nil {
			return nil, err
		}
		return &ReorderTasksOutput{Tasks: pending, UsedFallback: true}, nil
	}

	for _, t := range ordered {
		if reason := reasons[t.ID]; reason != "" {
			t.PriorityReason = reason
		}
	}
	if err := uc.applyOrder(ordered); err != nil {
		return nil, err
	}
	return &ReorderTasksOutput{Tasks: ordered}, nil
}

// askPrioritizer runs the prioritizer under the configured budget.
func (uc *ReorderTasks) askPrioritizer(ctx context.Context, timeout time.Duration, pending []*domain.Task) ([]*domain.Task, map[int]string, bool) {
	if uc.prioritizer == nil || len(pending) == 0 {
		return nil, nil, false
	}

	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	ranked, err := uc.prioritizer.Prioritize(ctx, pending)
	if err != nil {
		if uc.logger != nil {
			uc.logger.Warn("reorder", fmt.Sprintf("prioritizer failed, using local order: %v", err))
		}
		return nil, nil, false
	}

	byID := make(map[int]*domain.Task, len(pending))
	for _, t := range pending {
		byID[t.ID] = t
	}

	seen := make(map[int]bool, len(ranked))
	ordered := make([]*domain.Task, 0, len(pending))
	reasons := make(map[int]string, len(ranked))
	for _, r := range ranked {
		t, ok := byID[r.TaskID]
		if !ok || seen[r.TaskID] {
			if uc.logger != nil {
				uc.logger.Warn("reorder", fmt.Sprintf("prioritizer returned bad task ID %d, using local order", r.TaskID))
			}
			return nil, nil, false
		}
		seen[r.TaskID] = true
		ordered = append(ordered, t)
		reasons[r.TaskID] = r.Reason
	}
	// Tasks the prioritizer omitted keep their local relative order at
	// the back.
	for _, t := range pending {
		if !seen[t.ID] {
			ordered = append(ordered, t)
		}
	}
	return ordered, reasons, true
}

// applyOrder persists rank and urgency band for the given order.
func (uc *ReorderTasks) applyOrder(ordered []*domain.Task) error {
	for i, t := range ordered {
		rank := i + 1
		t.PriorityRank = &rank
		t.Urgency = planner.UrgencyForPosition(i)
		if err := uc.tasks.Save(t); err != nil {
			return fmt.Errorf("save task: %w", err)
		}
	}
	return nil
}
