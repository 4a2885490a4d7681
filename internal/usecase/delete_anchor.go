package usecase

import (
	"context"
	"fmt"

	"github.com/mtamigo/focus/internal/domain"
)

// DeleteAnchorInput contains the parameters for deleting an anchor.
type DeleteAnchorInput struct {
	AnchorID int
}

// DeleteAnchor is the use case for removing a calendar anchor.
type DeleteAnchor struct {
	anchors domain.AnchorRepository
	logger  domain.Logger
}

// NewDeleteAnchor creates a new DeleteAnchor use case.
func NewDeleteAnchor(anchors domain.AnchorRepository, logger domain.Logger) *DeleteAnchor {
	return &DeleteAnchor{
		anchors: anchors,
		logger:  logger,
	}
}

// Execute deletes the anchor with the given ID.
func (uc *DeleteAnchor) Execute(_ context.Context, in DeleteAnchorInput) error {
	anchors, err := uc.anchors.List()
	if err != nil {
		return fmt.Errorf("list anchors: %w", err)
	}
	found := false
	for _, a := range anchors {
		if a.ID == in.AnchorID {
			found = true
			break
		}
	}
	if !found {
		return domain.ErrAnchorNotFound
	}

	if err := uc.anchors.Delete(in.AnchorID); err != nil {
		return fmt.Errorf("delete anchor: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info("anchor", fmt.Sprintf("deleted #%d", in.AnchorID))
	}
	return nil
}
