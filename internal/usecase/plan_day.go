package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/mtamigo/focus/internal/domain"
	"github.com/mtamigo/focus/internal/planner"
)

// PlanDayInput contains the parameters for building a day plan.
type PlanDayInput struct {
	Date time.Time // Planning reference (zero = clock now)
}

// PlanDayOutput contains the generated plan.
type PlanDayOutput struct {
	Plan domain.Plan
}

// PlanDay is the use case for the daily capacity allocation: tasks
// first in entry order, then active routines by descending score,
// spent against the day's focus-window budget. The plan is a derived
// view and is never persisted.
type PlanDay struct {
	routines   domain.RoutineRepository
	tasks      domain.TaskRepository
	history    domain.HistoryRepository
	capacities domain.CapacityRepository
	config     domain.ConfigLoader
	clock      domain.Clock
	logger     domain.Logger
}

// NewPlanDay creates a new PlanDay use case.
func NewPlanDay(
	routines domain.RoutineRepository,
	tasks domain.TaskRepository,
	history domain.HistoryRepository,
	capacities domain.CapacityRepository,
	config domain.ConfigLoader,
	clock domain.Clock,
	logger domain.Logger,
) *PlanDay {
	return &PlanDay{
		routines:   routines,
		tasks:      tasks,
		history:    history,
		capacities: capacities,
		config:     config,
		clock:      clock,
		logger:     logger,
	}
}

// Execute builds the plan for the given date.
func (uc *PlanDay) Execute(_ context.Context, in PlanDayInput) (*PlanDayOutput, error) {
	ref := in.Date
	if ref.IsZero() {
		ref = uc.clock.Now()
	}

	capacity, err := uc.resolveCapacity(domain.DayKindFor(ref))
	if err != nil {
		return nil, err
	}

	routines, err := uc.routines.List()
	if err != nil {
		return nil, fmt.Errorf("list routines: %w", err)
	}
	tasks, err := uc.tasks.List()
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	history, err := uc.history.List()
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}

	pending := planner.SortPending(tasks)
	plan := planner.Allocate(routines, pending, capacity, history, ref)

	if uc.logger != nil {
		uc.logger.Info("plan", fmt.Sprintf("allocated %d/%d min across %d blocks",
			plan.AllocatedMinutes, plan.TotalMinutes, len(plan.Blocks)))
	}
	return &PlanDayOutput{Plan: plan}, nil
}

// resolveCapacity picks the focus window: stored override, then
// config, then built-in default.
func (uc *PlanDay) resolveCapacity(kind domain.DayKind) (domain.TimeCapacity, error) {
	override, err := uc.capacities.Get(kind)
	if err != nil {
		return domain.TimeCapacity{}, fmt.Errorf("get capacity override: %w", err)
	}
	if override != nil {
		return *override, nil
	}

	cfg, err := uc.config.Load()
	if err != nil {
		return domain.TimeCapacity{}, fmt.Errorf("load config: %w", err)
	}
	return cfg.CapacityFor(kind), nil
}
