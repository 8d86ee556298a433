package cartstore

import (
	"context"

	"cafecart/internal/domain"
)

// Store maps a user identifier to that user's ordered line-item list.
//
// Load never treats absence as an error: an unknown user gets an empty list.
// Save replaces the whole list atomically from the caller's perspective; a
// Save for an empty userID is a silent no-op, so anonymous browsing never
// persists a cart. Infrastructure failures wrap domain.ErrStorageUnavailable.
type Store interface {
	Load(ctx context.Context, userID string) ([]domain.LineItem, error)
	Save(ctx context.Context, userID string, items []domain.LineItem) error
}
