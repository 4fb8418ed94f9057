// Package store provides the item persistence layer.
//
// Two backends are supported:
//   - SQLite (embedded, default; ":memory:" for a process-lifetime store)
//   - PostgreSQL
package store

import (
	"context"

	"github.com/shelf-labs/shelf/pkg/shelf/models"
)

// Store provides the item persistence interface.
//
// Thread Safety: Implementations must be safe for concurrent use from
// multiple goroutines.
type Store interface {
	// CreateItem inserts a new item and assigns its ID and creation
	// timestamp. A pre-set CreatedAt is honored so callers can backdate
	// seed and test fixtures; a zero CreatedAt is filled by the store.
	// The caller is expected to have validated the name already.
	CreateItem(ctx context.Context, item *models.Item) error

	// ListItems returns all items ordered by creation time descending,
	// ties broken by later insertion first. Returns an empty slice,
	// never nil, when no items exist.
	ListItems(ctx context.Context) ([]*models.Item, error)

	// GetItem returns an item by ID.
	// Returns models.ErrItemNotFound if the item doesn't exist.
	GetItem(ctx context.Context, id uint) (*models.Item, error)

	// DeleteItem removes an item by ID.
	// Returns models.ErrItemNotFound if no row was deleted, which lets
	// callers distinguish an absent item (including one deleted by a
	// racing request) from a storage failure.
	DeleteItem(ctx context.Context, id uint) error

	// Seed inserts the placeholder items if the table is empty.
	// Returns the number of items created. Safe to call repeatedly.
	Seed(ctx context.Context) (int, error)

	// Healthcheck verifies the store is operational.
	Healthcheck(ctx context.Context) error

	// Close closes the store and releases resources.
	Close() error
}
