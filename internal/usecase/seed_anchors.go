package usecase

import (
	"context"
	"fmt"

	"github.com/mtamigo/focus/internal/domain"
)

// SeedAnchorsOutput contains the seeding result.
type SeedAnchorsOutput struct {
	Seeded int // Number of anchors created
}

// SeedAnchors is the use case for installing the built-in weekly
// calendar template. It refuses to run when anchors already exist so
// a re-run never duplicates the calendar.
type SeedAnchors struct {
	anchors domain.AnchorRepository
	logger  domain.Logger
}

// NewSeedAnchors creates a new SeedAnchors use case.
func NewSeedAnchors(anchors domain.AnchorRepository, logger domain.Logger) *SeedAnchors {
	return &SeedAnchors{
		anchors: anchors,
		logger:  logger,
	}
}

// Execute installs the built-in anchors.
func (uc *SeedAnchors) Execute(_ context.Context) (*SeedAnchorsOutput, error) {
	existing, err := uc.anchors.List()
	if err != nil {
		return nil, fmt.Errorf("list anchors: %w", err)
	}
	if len(existing) > 0 {
		return nil, fmt.Errorf("calendar already has %d anchors, not seeding", len(existing))
	}

	seed := domain.SeedAnchors()
	for i := range seed {
		id, err := uc.anchors.NextID()
		if err != nil {
			return nil, fmt.Errorf("generate anchor ID: %w", err)
		}
		anchor := seed[i]
		anchor.ID = id
		if err := uc.anchors.Save(&anchor); err != nil {
			return nil, fmt.Errorf("save anchor: %w", err)
		}
	}

	if uc.logger != nil {
		uc.logger.Info("anchor", fmt.Sprintf("seeded %d anchors", len(seed)))
	}
	return &SeedAnchorsOutput{Seeded: len(seed)}, nil
}
