package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/mtamigo/focus/internal/domain"
)

// ListAnchorsInput contains the parameters for listing anchors.
// Fields are ordered to minimize memory padding.
type ListAnchorsInput struct {
	Day    time.Weekday // Meaningful only when FilterDay is set
	Filter bool         // When true only anchors active on Day are returned
}

// ListAnchorsOutput contains the anchor listing.
type ListAnchorsOutput struct {
	Anchors []*domain.CalendarAnchor // Ordered by ID
}

// ListAnchors is the use case for listing calendar anchors.
type ListAnchors struct {
	anchors domain.AnchorRepository
}

// NewListAnchors creates a new ListAnchors use case.
func NewListAnchors(anchors domain.AnchorRepository) *ListAnchors {
	return &ListAnchors{anchors: anchors}
}

// Execute returns anchors, optionally filtered to one weekday.
func (uc *ListAnchors) Execute(_ context.Context, in ListAnchorsInput) (*ListAnchorsOutput, error) {
	var (
		anchors []*domain.CalendarAnchor
		err     error
	)
	if in.Filter {
		anchors, err = uc.anchors.ListFor(in.Day)
	} else {
		anchors, err = uc.anchors.List()
	}
	if err != nil {
		return nil, fmt.Errorf("list anchors: %w", err)
	}
	return &ListAnchorsOutput{Anchors: anchors}, nil
}
