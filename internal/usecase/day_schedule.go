package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/mtamigo/focus/internal/domain"
	"github.com/mtamigo/focus/internal/planner"
)

// DayScheduleInput contains the parameters for building the merged
// day schedule.
type DayScheduleInput struct {
	Date time.Time // Schedule reference (zero = clock now)
}

// DayScheduleOutput contains the merged schedule.
type DayScheduleOutput struct {
	Entries []domain.ScheduleEntry // Ordered by start time
}

// DaySchedule is the use case for the clocked day view: the day's
// fixed anchors plus pending tasks packed into the gaps between them.
// Like the plan, the schedule is recomputed on demand and never
// stored.
type DaySchedule struct {
	tasks   domain.TaskRepository
	anchors domain.AnchorRepository
	clock   domain.Clock
}

// NewDaySchedule creates a new DaySchedule use case.
func NewDaySchedule(tasks domain.TaskRepository, anchors domain.AnchorRepository, clock domain.Clock) *DaySchedule {
	return &DaySchedule{
		tasks:   tasks,
		anchors: anchors,
		clock:   clock,
	}
}

// Execute builds the schedule for the given date.
func (uc *DaySchedule) Execute(_ context.Context, in DayScheduleInput) (*DayScheduleOutput, error) {
	ref := in.Date
	if ref.IsZero() {
		ref = uc.clock.Now()
	}

	anchors, err := uc.anchors.ListFor(ref.Weekday())
	if err != nil {
		return nil, fmt.Errorf("list anchors: %w", err)
	}
	tasks, err := uc.tasks.List()
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	window := domain.DefaultWorkWindow(domain.DayKindFor(ref))
	entries := planner.BuildDaySchedule(tasks, anchors, window)
	return &DayScheduleOutput{Entries: entries}, nil
}
