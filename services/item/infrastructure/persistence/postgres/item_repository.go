package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ghuser/itemflow/pkg/database"
	"github.com/ghuser/itemflow/pkg/events"
	itemdomain "github.com/ghuser/itemflow/services/item/domain"
	domainevents "github.com/ghuser/itemflow/services/item/domain/events"
	"github.com/ghuser/itemflow/services/item/domain/models"
)

// pgUniqueViolation is the PostgreSQL error code for unique constraint violations.
const pgUniqueViolation = "23505"

// ItemRepository implements repositories.ItemRepository against PostgreSQL.
type ItemRepository struct {
	db  *database.Database
	bus *events.EventBus
}

// NewItemRepository returns an ItemRepository backed by the given connection pool
// and event bus. The bus is used to publish lifecycle events transactionally with
// the row changes (outbox pattern); pass nil to disable publishing.
func NewItemRepository(db *database.Database, bus *events.EventBus) *ItemRepository {
	return &ItemRepository{db: db, bus: bus}
}

// Save persists a new Item and publishes an ItemCreatedEvent within the same
// transaction. Returns ErrDuplicateEmail on a unique constraint violation.
func (r *ItemRepository) Save(ctx context.Context, item *models.Item) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO items (id, name, description, status, email, created_at, updated_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			item.ID, item.Name, item.Description, item.Status.String(), item.Email,
			item.CreatedAt, item.UpdatedAt,
		)
		if err != nil {
			if isUniqueViolation(err) {
				return itemdomain.ErrDuplicateEmail
			}
			return fmt.Errorf("insert item: %w", err)
		}

		if r.bus != nil {
			if err := r.publishCreated(tx, item); err != nil {
				return fmt.Errorf("publish item created: %w", err)
			}
		}
		return nil
	})
}

// GetByID retrieves an Item by ID. Returns ErrItemNotFound if absent.
func (r *ItemRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Item, error) {
	row := r.db.DB().QueryRowContext(ctx,
		`SELECT id, name, description, status, email, created_at, updated_at
		 FROM items WHERE id = $1`, id)

	item, err := scanItem(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, itemdomain.ErrItemNotFound
		}
		return nil, fmt.Errorf("query item: %w", err)
	}
	return item, nil
}

// FindAll returns every item ordered by creation time. The result is a
// point-in-time snapshot; rows inserted concurrently may not appear.
func (r *ItemRepository) FindAll(ctx context.Context) ([]*models.Item, error) {
	rows, err := r.db.DB().QueryContext(ctx,
		`SELECT id, name, description, status, email, created_at, updated_at
		 FROM items ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("query items: %w", err)
	}
	defer rows.Close()

	var items []*models.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate items: %w", err)
	}
	return items, nil
}

// FindAllIDs returns every item ID without loading full rows.
func (r *ItemRepository) FindAllIDs(ctx context.Context) ([]uuid.UUID, error) {
	rows, err := r.db.DB().QueryContext(ctx, `SELECT id FROM items ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("query item ids: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan item id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate item ids: %w", err)
	}
	return ids, nil
}

// Update persists changes to an existing Item. When the item has reached
// PROCESSED, an ItemProcessedEvent is published in the same transaction so
// downstream consumers observe the transition atomically with the row change.
// Returns ErrItemNotFound if the row is gone and ErrDuplicateEmail on a
// unique violation.
func (r *ItemRepository) Update(ctx context.Context, item *models.Item) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			`UPDATE items SET name = $2, description = $3, status = $4, email = $5, updated_at = $6
			 WHERE id = $1`,
			item.ID, item.Name, item.Description, item.Status.String(), item.Email,
			item.UpdatedAt,
		)
		if err != nil {
			if isUniqueViolation(err) {
				return itemdomain.ErrDuplicateEmail
			}
			return fmt.Errorf("update item: %w", err)
		}
		if n, err := res.RowsAffected(); err == nil && n == 0 {
			return itemdomain.ErrItemNotFound
		}

		if r.bus != nil && item.Status == models.StatusProcessed {
			if err := r.publishProcessed(tx, item); err != nil {
				return fmt.Errorf("publish item processed: %w", err)
			}
		}
		return nil
	})
}

// Delete removes an item by ID. Returns ErrItemNotFound if no row matched.
func (r *ItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.DB().ExecContext(ctx, `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return itemdomain.ErrItemNotFound
	}
	return nil
}

// Exists reports whether an item with the given ID exists.
func (r *ItemRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.DB().QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM items WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check item exists: %w", err)
	}
	return exists, nil
}

func (r *ItemRepository) publishCreated(tx *sql.Tx, item *models.Item) error {
	event := domainevents.ItemCreatedEvent{
		EventID:     uuid.New(),
		Version:     1,
		ItemID:      item.ID,
		Name:        item.Name,
		Description: item.Description,
		Status:      item.Status.String(),
		Email:       item.Email,
		OccurredAt:  item.CreatedAt,
	}
	return r.publish(tx, domainevents.TopicItemCreated, event.EventID, event)
}

func (r *ItemRepository) publishProcessed(tx *sql.Tx, item *models.Item) error {
	event := domainevents.ItemProcessedEvent{
		EventID:    uuid.New(),
		Version:    1,
		ItemID:     item.ID,
		Email:      item.Email,
		OccurredAt: time.Now().UTC(),
	}
	return r.publish(tx, domainevents.TopicItemProcessed, event.EventID, event)
}

func (r *ItemRepository) publish(tx *sql.Tx, topic string, eventID uuid.UUID, event any) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("event_id", eventID.String())
	msg.Metadata.Set("event_version", "1")
	p, err := r.bus.NewTxPublisher(tx)
	if err != nil {
		return fmt.Errorf("create publisher: %w", err)
	}
	return p.Publish(topic, msg)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

// scanItem maps a row to a domain models.Item.
func scanItem(row interface{ Scan(dest ...any) error }) (*models.Item, error) {
	var (
		item   models.Item
		status string
	)
	if err := row.Scan(
		&item.ID, &item.Name, &item.Description, &status, &item.Email,
		&item.CreatedAt, &item.UpdatedAt,
	); err != nil {
		return nil, err
	}
	item.Status = models.Status(status)
	return &item, nil
}
