package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/mtamigo/focus/internal/domain"
	"github.com/mtamigo/focus/internal/planner"
)

// CheckInterruptInput contains the parameters for interrupt detection.
type CheckInterruptInput struct {
	Now              time.Time // Detection reference (zero = clock now)
	LookaheadMinutes int       // 0 = default lookahead
}

// CheckInterruptOutput contains the detection result.
type CheckInterruptOutput struct {
	Interrupt *domain.Interrupt // nil when no anchor is imminent
}

// CheckInterrupt is the use case for the imminent-anchor check run at
// completion events and render ticks: the first of today's anchors
// (in stored order) starting within the lookahead is surfaced.
type CheckInterrupt struct {
	anchors domain.AnchorRepository
	clock   domain.Clock
}

// NewCheckInterrupt creates a new CheckInterrupt use case.
func NewCheckInterrupt(anchors domain.AnchorRepository, clock domain.Clock) *CheckInterrupt {
	return &CheckInterrupt{
		anchors: anchors,
		clock:   clock,
	}
}

// Execute runs the detection.
func (uc *CheckInterrupt) Execute(_ context.Context, in CheckInterruptInput) (*CheckInterruptOutput, error) {
	now := in.Now
	if now.IsZero() {
		now = uc.clock.Now()
	}

	anchors, err := uc.anchors.ListFor(now.Weekday())
	if err != nil {
		return nil, fmt.Errorf("list anchors: %w", err)
	}
	return &CheckInterruptOutput{
		Interrupt: planner.NextImminentAnchor(anchors, now, in.LookaheadMinutes),
	}, nil
}
