package usecase

import (
	"context"
	"fmt"

	"github.com/mtamigo/focus/internal/domain"
)

// DeleteRoutineInput contains the parameters for deleting a routine.
type DeleteRoutineInput struct {
	RoutineID int
}

// DeleteRoutine is the use case for removing a routine. Its history
// records are kept; the append-only log is never rewritten.
type DeleteRoutine struct {
	routines domain.RoutineRepository
	logger   domain.Logger
}

// NewDeleteRoutine creates a new DeleteRoutine use case.
func NewDeleteRoutine(routines domain.RoutineRepository, logger domain.Logger) *DeleteRoutine {
	return &DeleteRoutine{
		routines: routines,
		logger:   logger,
	}
}

// Execute deletes the routine with the given ID.
func (uc *DeleteRoutine) Execute(_ context.Context, in DeleteRoutineInput) error {
	routine, err := uc.routines.Get(in.RoutineID)
	if err != nil {
		return fmt.Errorf("get routine: %w", err)
	}
	if routine == nil {
		return domain.ErrRoutineNotFound
	}

	if err := uc.routines.Delete(in.RoutineID); err != nil {
		return fmt.Errorf("delete routine: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info("routine", fmt.Sprintf("deleted #%d: %q", routine.ID, routine.Title))
	}
	return nil
}
