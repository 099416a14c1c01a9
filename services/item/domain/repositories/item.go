package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/ghuser/itemflow/services/item/domain/models"
)

// ItemRepository is the persistence interface for the Item aggregate.
// The domain layer owns this interface; infrastructure implements it.
//
// Individual calls are safe to issue concurrently; each Save/Update is atomic
// under the store's own isolation. Callers must not assume any cross-call
// transactional grouping.
type ItemRepository interface {
	// Save persists a new Item. Returns ErrDuplicateEmail when the email
	// unique constraint is violated.
	Save(ctx context.Context, item *models.Item) error

	// GetByID retrieves an item. Returns ErrItemNotFound if absent.
	GetByID(ctx context.Context, id uuid.UUID) (*models.Item, error)

	// FindAll returns a snapshot of every item, ordered by creation time.
	FindAll(ctx context.Context) ([]*models.Item, error)

	// FindAllIDs returns every item ID without loading full rows.
	// Useful for bulk sweeps that want to avoid fetching entity data up front.
	FindAllIDs(ctx context.Context) ([]uuid.UUID, error)

	// Update persists changes to an existing Item. Returns ErrItemNotFound if
	// the row is gone and ErrDuplicateEmail on a unique violation.
	Update(ctx context.Context, item *models.Item) error

	// Delete removes an item by ID.
	Delete(ctx context.Context, id uuid.UUID) error

	// Exists reports whether an item with the given ID exists.
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}
