package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/mtamigo/focus/internal/domain"
	"github.com/mtamigo/focus/internal/planner"
)

// RoutineStatus is one routine with its derived standing: the current
// urgency score and this week's completion count against the target.
// Fields are ordered to minimize memory padding.
type RoutineStatus struct {
	Routine   *domain.Routine
	Score     int
	WeekCount int // Completions since the week boundary
}

// ListRoutinesInput contains the parameters for listing routines.
type ListRoutinesInput struct {
	ReferenceTime time.Time // Scoring reference (zero = clock now)
}

// ListRoutinesOutput contains the routine listing.
type ListRoutinesOutput struct {
	Routines []RoutineStatus // Ordered by descending score
}

// ListRoutines is the use case for listing routines with scores.
type ListRoutines struct {
	routines domain.RoutineRepository
	history  domain.HistoryRepository
	clock    domain.Clock
}

// NewListRoutines creates a new ListRoutines use case.
func NewListRoutines(routines domain.RoutineRepository, history domain.HistoryRepository, clock domain.Clock) *ListRoutines {
	return &ListRoutines{
		routines: routines,
		history:  history,
		clock:    clock,
	}
}

// Execute returns all routines ordered by descending score.
func (uc *ListRoutines) Execute(_ context.Context, in ListRoutinesInput) (*ListRoutinesOutput, error) {
	routines, err := uc.routines.List()
	if err != nil {
		return nil, fmt.Errorf("list routines: %w", err)
	}
	history, err := uc.history.List()
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}

	ref := in.ReferenceTime
	if ref.IsZero() {
		ref = uc.clock.Now()
	}

	scored := planner.ScoreRoutines(routines, history, ref)
	statuses := make([]RoutineStatus, 0, len(scored))
	for _, s := range scored {
		statuses = append(statuses, RoutineStatus{
			Routine:   s.Routine,
			Score:     s.Score,
			WeekCount: domain.CountWeekCompletions(history, s.Routine.ID, ref),
		})
	}
	return &ListRoutinesOutput{Routines: statuses}, nil
}
