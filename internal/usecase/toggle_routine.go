package usecase

import (
	"context"
	"fmt"

	"github.com/mtamigo/focus/internal/domain"
)

// ToggleRoutineInput contains the parameters for toggling a routine.
type ToggleRoutineInput struct {
	RoutineID int
}

// ToggleRoutineOutput reports the routine's new state.
type ToggleRoutineOutput struct {
	Active bool
}

// ToggleRoutine is the use case for flipping a routine between active
// and paused. Paused routines keep their history but are never
// allocated.
type ToggleRoutine struct {
	routines domain.RoutineRepository
	logger   domain.Logger
}

// NewToggleRoutine creates a new ToggleRoutine use case.
func NewToggleRoutine(routines domain.RoutineRepository, logger domain.Logger) *ToggleRoutine {
	return &ToggleRoutine{
		routines: routines,
		logger:   logger,
	}
}

// Execute toggles the routine's active flag.
func (uc *ToggleRoutine) Execute(_ context.Context, in ToggleRoutineInput) (*ToggleRoutineOutput, error) {
	routine, err := uc.routines.Get(in.RoutineID)
	if err != nil {
		return nil, fmt.Errorf("get routine: %w", err)
	}
	if routine == nil {
		return nil, domain.ErrRoutineNotFound
	}

	routine.Active = !routine.Active
	if err := uc.routines.Save(routine); err != nil {
		return nil, fmt.Errorf("save routine: %w", err)
	}

	if uc.logger != nil {
		state := "paused"
		if routine.Active {
			state = "active"
		}
		uc.logger.Info("routine", fmt.Sprintf("#%d %q is now %s", routine.ID, routine.Title, state))
	}
	return &ToggleRoutineOutput{Active: routine.Active}, nil
}
