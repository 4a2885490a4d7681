package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/mtamigo/focus/internal/domain"
)

// NewAnchorInput contains the parameters for creating a calendar
// anchor.
// Fields are ordered to minimize memory padding.
type NewAnchorInput struct {
	Title    string                // Display title (required)
	Start    string                // "HH:MM"
	End      string                // "HH:MM"
	Category domain.AnchorCategory // Entry classification (empty = other)
	Days     []time.Weekday        // Weekdays (empty = every day)
}

// NewAnchorOutput contains the result of creating an anchor.
type NewAnchorOutput struct {
	AnchorID int
}

// NewAnchor is the use case for creating a fixed calendar anchor.
type NewAnchor struct {
	anchors domain.AnchorRepository
	logger  domain.Logger
}

// NewNewAnchor creates a new NewAnchor use case.
func NewNewAnchor(anchors domain.AnchorRepository, logger domain.Logger) *NewAnchor {
	return &NewAnchor{
		anchors: anchors,
		logger:  logger,
	}
}

// Execute creates a new anchor with the given input.
func (uc *NewAnchor) Execute(_ context.Context, in NewAnchorInput) (*NewAnchorOutput, error) {
	if in.Title == "" {
		return nil, domain.ErrEmptyTitle
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
		return nil, fmt.Errorf("anchor end %s is not after start %s", in.End, in.Start)
	}

	category := in.Category
	if category == "" {
		category = domain.AnchorOther
	}
	if !category.IsValid() {
		return nil, fmt.Errorf("unknown anchor category %q", in.Category)
	}

	days := in.Days
	if len(days) == 0 {
		days = []time.Weekday{
			time.Sunday, time.Monday, time.Tuesday, time.Wednesday,
			time.Thursday, time.Friday, time.Saturday,
		}
	}

	id, err := uc.anchors.NextID()
	if err != nil {
		return nil, fmt.Errorf("generate anchor ID: %w", err)
	}

	anchor := &domain.CalendarAnchor{
		Title:    in.Title,
		Category: category,
		Days:     days,
		ID:       id,
		Start:    start,
		End:      end,
	}
	if err := uc.anchors.Save(anchor); err != nil {
		return nil, fmt.Errorf("save anchor: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info("anchor", fmt.Sprintf("created #%d: %q %s-%s", id, in.Title,
			domain.FormatClock(start), domain.FormatClock(end)))
	}
	return &NewAnchorOutput{AnchorID: id}, nil
}
