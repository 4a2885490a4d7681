package usecase

import (
	"context"
	"fmt"

	"github.com/mtamigo/focus/internal/domain"
)

// RecordCompletionInput contains the parameters for recording a
// routine session.
type RecordCompletionInput struct {
	RoutineID int
	Minutes   int // Actual minutes spent (must be positive)
}

// RecordCompletionOutput contains the updated learned duration.
type RecordCompletionOutput struct {
	AvgMinutes int // New rolling mean over all recorded sessions
}

// RecordCompletion is the use case for logging a finished routine
// session. It appends to the immutable history and re-learns the
// routine's average session length from the full record, so the
// allocator's ideal duration tracks actual behavior.
type RecordCompletion struct {
	routines domain.RoutineRepository
	history  domain.HistoryRepository
	clock    domain.Clock
	logger   domain.Logger
}

// NewRecordCompletion creates a new RecordCompletion use case.
func NewRecordCompletion(routines domain.RoutineRepository, history domain.HistoryRepository, clock domain.Clock, logger domain.Logger) *RecordCompletion {
	return &RecordCompletion{
		routines: routines,
		history:  history,
		clock:    clock,
		logger:   logger,
	}
}

// Execute records the session and updates the routine's learned
// average.
func (uc *RecordCompletion) Execute(_ context.Context, in RecordCompletionInput) (*RecordCompletionOutput, error) {
	if in.Minutes <= 0 {
		return nil, domain.ErrInvalidMinutes
	}

	routine, err := uc.routines.Get(in.RoutineID)
	if err != nil {
		return nil, fmt.Errorf("get routine: %w", err)
	}
	if routine == nil {
		return nil, domain.ErrRoutineNotFound
	}

	now := uc.clock.Now()
	if _, err := uc.history.Append(domain.CompletionRecord{
		At:        now,
		RoutineID: in.RoutineID,
		Minutes:   in.Minutes,
	}); err != nil {
		return nil, fmt.Errorf("append completion: %w", err)
	}

	records, err := uc.history.ListForRoutine(in.RoutineID)
	if err != nil {
		return nil, fmt.Errorf("list completions: %w", err)
	}
	total := 0
	for _, rec := range records {
		total += rec.Minutes
	}
	avg := total / len(records)

	routine.AvgMinutes = &avg
	routine.LastCompleted = &now
	if err := uc.routines.Save(routine); err != nil {
		return nil, fmt.Errorf("save routine: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info("routine", fmt.Sprintf("recorded %d min for #%d %q (avg now %d)", in.Minutes, routine.ID, routine.Title, avg))
	}
	return &RecordCompletionOutput{AvgMinutes: avg}, nil
}
