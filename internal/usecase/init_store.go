package usecase

import (
	"context"
	"fmt"

	"github.com/mtamigo/focus/internal/domain"
)

// InitStore is the use case for creating the data store.
type InitStore struct {
	store  domain.StoreInitializer
	logger domain.Logger
}

// NewInitStore creates a new InitStore use case.
func NewInitStore(store domain.StoreInitializer, logger domain.Logger) *InitStore {
	return &InitStore{
		store:  store,
		logger: logger,
	}
}

// Execute initializes the store. Re-running on an existing store is a
// no-op.
func (uc *InitStore) Execute(_ context.Context) error {
	if err := uc.store.Initialize(); err != nil {
		return fmt.Errorf("initialize store: %w", err)
	}
	if uc.logger != nil {
		uc.logger.Info("init", "store initialized")
	}
	return nil
}
