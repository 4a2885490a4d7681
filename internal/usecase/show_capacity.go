package usecase

import (
	"context"
	"fmt"

	"github.com/mtamigo/focus/internal/domain"
)

// CapacityStatus is the effective focus window for one day kind plus
// where it came from.
// Fields are ordered to minimize memory padding.
type CapacityStatus struct {
	Source   string // "override", "config", or "default"
	Kind     domain.DayKind
	Capacity domain.TimeCapacity
}

// ShowCapacityOutput contains both effective windows.
type ShowCapacityOutput struct {
	Weekday CapacityStatus
	Weekend CapacityStatus
}

// ShowCapacity is the use case for resolving the effective focus
// windows. Resolution order: stored override, then config file, then
// built-in default.
type ShowCapacity struct {
	capacities domain.CapacityRepository
	config     domain.ConfigLoader
}

// NewShowCapacity creates a new ShowCapacity use case.
func NewShowCapacity(capacities domain.CapacityRepository, config domain.ConfigLoader) *ShowCapacity {
	return &ShowCapacity{
		capacities: capacities,
		config:     config,
	}
}

// Execute resolves both day-kind windows.
func (uc *ShowCapacity) Execute(_ context.Context) (*ShowCapacityOutput, error) {
	cfg, err := uc.config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	out := &ShowCapacityOutput{}
	for _, kind := range []domain.DayKind{domain.Weekday, domain.Weekend} {
		status, err := uc.resolve(kind, cfg)
		if err != nil {
			return nil, err
		}
		if kind == domain.Weekday {
			out.Weekday = status
		} else {
			out.Weekend = status
		}
	}
	return out, nil
}

func (uc *ShowCapacity) resolve(kind domain.DayKind, cfg *domain.Config) (CapacityStatus, error) {
	override, err := uc.capacities.Get(kind)
	if err != nil {
		return CapacityStatus{}, fmt.Errorf("get capacity override: %w", err)
	}
	if override != nil {
		return CapacityStatus{Source: "override", Kind: kind, Capacity: *override}, nil
	}

	configured := cfg.CapacityFor(kind)
	if configured != domain.DefaultCapacity(kind) {
		return CapacityStatus{Source: "config", Kind: kind, Capacity: configured}, nil
	}
	return CapacityStatus{Source: "default", Kind: kind, Capacity: configured}, nil
}
