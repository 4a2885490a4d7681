package usecase

import (
	"context"
	"fmt"

	"github.com/mtamigo/focus/internal/domain"
)

// NewRoutineInput contains the parameters for creating a routine.
// Fields are ordered to minimize memory padding.
type NewRoutineInput struct {
	Title         string                // Routine title (required)
	Priority      domain.Priority       // Importance tier (empty = medium)
	Category      string                // Free-form category (optional)
	MentalLoad    domain.MentalLoad     // Session weight class (empty = medium)
	PreferredTime domain.TimePreference // Preferred time of day (optional)
	Frequency     int                   // Target completions per week (1-7)
}

// NewRoutineOutput contains the result of creating a routine.
type NewRoutineOutput struct {
	RoutineID int
}

// NewRoutine is the use case for creating a routine.
type NewRoutine struct {
	routines domain.RoutineRepository
	clock    domain.Clock
	logger   domain.Logger
}

// NewNewRoutine creates a new NewRoutine use case.
func NewNewRoutine(routines domain.RoutineRepository, clock domain.Clock, logger domain.Logger) *NewRoutine {
	return &NewRoutine{
		routines: routines,
		clock:    clock,
		logger:   logger,
	}
}

// Execute creates a new routine with the given input.
func (uc *NewRoutine) Execute(_ context.Context, in NewRoutineInput) (*NewRoutineOutput, error) {
	if in.Title == "" {
		return nil, domain.ErrEmptyTitle
	}
	if in.Frequency < 1 || in.Frequency > 7 {
		return nil, domain.ErrInvalidFrequency
	}

	priority := in.Priority
	if priority == "" {
		priority = domain.PriorityMedium
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("unknown priority %q", in.Priority)
	}

	load := in.MentalLoad
	if load == "" {
		load = domain.LoadMedium
	}
	if !load.IsValid() {
		return nil, fmt.Errorf("unknown mental load %q", in.MentalLoad)
	}

	id, err := uc.routines.NextID()
	if err != nil {
		return nil, fmt.Errorf("generate routine ID: %w", err)
	}

	routine := &domain.Routine{
		Created:       uc.clock.Now(),
		Title:         in.Title,
		Priority:      priority,
		Category:      in.Category,
		MentalLoad:    load,
		PreferredTime: in.PreferredTime,
		ID:            id,
		Frequency:     in.Frequency,
		Active:        true,
	}

	if err := uc.routines.Save(routine); err != nil {
		return nil, fmt.Errorf("save routine: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info("routine", fmt.Sprintf("created #%d: %q (%dx/week)", id, in.Title, in.Frequency))
	}

	return &NewRoutineOutput{RoutineID: id}, nil
}
