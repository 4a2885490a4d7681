package usecase

import (
	"context"
	"fmt"

	"github.com/mtamigo/focus/internal/domain"
)

// SetCapacityInput contains the parameters for overriding a focus
// window.
// Fields are ordered to minimize memory padding.
type SetCapacityInput struct {
	Kind         domain.DayKind // weekday or weekend
	Start        string         // "HH:MM"
	End          string         // "HH:MM"
	TotalMinutes int            // Advertised focus minutes (0 = derive from bounds)
}

// SetCapacityOutput contains the stored capacity and any consistency
// warning.
type SetCapacityOutput struct {
	Warning  string // Non-empty when the total disagrees with the bounds
	Capacity domain.TimeCapacity
}

// SetCapacity is the use case for storing a focus-window override. An
// inconsistent total is stored as given and reported, not rejected:
// the advertised total is what the allocator spends.
type SetCapacity struct {
	capacities domain.CapacityRepository
	logger     domain.Logger
}

// NewSetCapacity creates a new SetCapacity use case.
func NewSetCapacity(capacities domain.CapacityRepository, logger domain.Logger) *SetCapacity {
	return &SetCapacity{
		capacities: capacities,
		logger:     logger,
	}
}

// Execute parses and stores the override.
func (uc *SetCapacity) Execute(_ context.Context, in SetCapacityInput) (*SetCapacityOutput, error) {
	if in.Kind != domain.Weekday && in.Kind != domain.Weekend {
		return nil, fmt.Errorf("unknown day kind %q", in.Kind)
	}

	start, err := domain.ParseClock(in.Start)
	if err != nil {
		return nil, err
	}
	end, err := domain.ParseClock(in.End)
	if err != nil {
		return nil, err
	}
	if end <= start {
		return nil, fmt.Errorf("window end %s is not after start %s", in.End, in.Start)
	}

	capacity := domain.TimeCapacity{
		Start:        start,
		End:          end,
		TotalMinutes: in.TotalMinutes,
	}
	if capacity.TotalMinutes == 0 {
		capacity.TotalMinutes = end - start
	}

	if err := uc.capacities.Set(in.Kind, capacity); err != nil {
		return nil, fmt.Errorf("save capacity: %w", err)
	}

	out := &SetCapacityOutput{Capacity: capacity}
	if err := capacity.Validate(); err != nil {
		out.Warning = err.Error()
	}

	if uc.logger != nil {
		uc.logger.Info("capacity", fmt.Sprintf("%s window set to %s-%s (%d min)",
			in.Kind, domain.FormatClock(start), domain.FormatClock(end), capacity.TotalMinutes))
	}
	return out, nil
}
