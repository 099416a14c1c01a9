package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	pkgcache "github.com/ghuser/itemflow/pkg/cache"
	"github.com/ghuser/itemflow/pkg/logger"
	itemdomain "github.com/ghuser/itemflow/services/item/domain"
	"github.com/ghuser/itemflow/services/item/domain/models"
	"github.com/ghuser/itemflow/services/item/domain/repositories"
	domainsvcs "github.com/ghuser/itemflow/services/item/domain/services"
)

// ItemFields carries the mutable fields of an Item as received from a request.
type ItemFields struct {
	Name        string
	Description string
	Status      string
	Email       string
}

// ItemService orchestrates CRUD and batch processing of Items.
// Event publishing is handled by the repository layer (outbox pattern).
// Reads are served from Redis cache when available.
type ItemService struct {
	repo    repositories.ItemRepository
	cache   *pkgcache.ItemCache
	checker *domainsvcs.EmailChecker
	log     logger.Logger
}

// NewItemService returns an ItemService wired with the given repository,
// cache, deliverability checker, and logger. cache may be nil.
func NewItemService(
	repo repositories.ItemRepository,
	itemCache *pkgcache.ItemCache,
	checker *domainsvcs.EmailChecker,
	log logger.Logger,
) *ItemService {
	return &ItemService{repo: repo, cache: itemCache, checker: checker, log: log}
}

// Create validates and persists a new Item. The email deliverability check
// (format + MX lookup) runs inline before the write; structural field errors
// are wrapped in ErrInvalidItem.
func (s *ItemService) Create(ctx context.Context, fields ItemFields) (*models.Item, error) {
	item, err := models.NewItem(fields.Name, fields.Description, fields.Status, fields.Email)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", itemdomain.ErrInvalidItem, err)
	}

	if !s.checker.Deliverable(ctx, item.Email) {
		return nil, itemdomain.ErrEmailNotDeliverable
	}

	if err := s.repo.Save(ctx, item); err != nil {
		return nil, fmt.Errorf("save item: %w", err)
	}

	return item, nil
}

// GetByID retrieves an Item using a read-through cache pattern:
//  1. Check Redis cache first.
//  2. On cache miss (or cache error), query Postgres.
//  3. Asynchronously warm the cache with the Postgres result.
func (s *ItemService) GetByID(ctx context.Context, id uuid.UUID) (*models.Item, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, id); err == nil {
			return cachedToItem(cached), nil
		} else if !errors.Is(err, redis.Nil) {
			s.log.WarnContext(ctx, "item cache read failed", "item_id", id, "error", err)
		}
	}

	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}

	if s.cache != nil {
		go func() {
			_ = s.cache.Set(context.Background(), itemToCached(item))
		}()
	}

	return item, nil
}

// List returns a snapshot of all items.
func (s *ItemService) List(ctx context.Context) ([]*models.Item, error) {
	items, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return items, nil
}

// Update overwrites an existing Item's fields. Returns ErrItemNotFound if the
// id does not resolve; the deliverability check runs inline like in Create.
// The cache entry is invalidated after a successful write.
func (s *ItemService) Update(ctx context.Context, id uuid.UUID, fields ItemFields) (*models.Item, error) {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}

	if err := item.Apply(fields.Name, fields.Description, fields.Status, fields.Email); err != nil {
		return nil, fmt.Errorf("%w: %w", itemdomain.ErrInvalidItem, err)
	}

	if !s.checker.Deliverable(ctx, item.Email) {
		return nil, itemdomain.ErrEmailNotDeliverable
	}

	if err := s.repo.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("update item: %w", err)
	}

	s.invalidateCache(ctx, id)
	return item, nil
}

// Delete removes an item by ID.
// Returns ErrItemNotFound if no matching item exists.
func (s *ItemService) Delete(ctx context.Context, id uuid.UUID) error {
	exists, err := s.repo.Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("check item: %w", err)
	}
	if !exists {
		return itemdomain.ErrItemNotFound
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	s.invalidateCache(ctx, id)
	return nil
}

// ProcessItems transitions every item currently in the store to PROCESSED and
// persists it, collecting only the successes.
//
// Each item is handled by its own goroutine owning a private copy; one item's
// failure never aborts the batch. The call returns after every task has
// settled. Failures are logged with the item's id and cause, then excluded
// from the result. Successful results keep the snapshot's order. Only a
// failure of the initial snapshot read fails the whole operation.
func (s *ItemService) ProcessItems(ctx context.Context) ([]*models.Item, error) {
	items, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load items for processing: %w", err)
	}

	// Slot per task, zipped back by originating index so the result order is
	// stable regardless of completion timing.
	results := make([]*models.Item, len(items))

	var wg sync.WaitGroup
	for i, item := range items {
		wg.Add(1)
		go func(i int, item models.Item) {
			defer wg.Done()
			processed, err := s.processAndSave(ctx, item)
			if err != nil {
				s.log.WarnContext(ctx, "item processing failed",
					"item_id", itemIDOrUnknown(&item),
					"error", err,
				)
				return
			}
			results[i] = processed
		}(i, *item)
	}
	wg.Wait()

	out := make([]*models.Item, 0, len(items))
	for _, it := range results {
		if it != nil {
			out = append(out, it)
		}
	}
	return out, nil
}

// processAndSave marks one item PROCESSED and persists it as a single unit.
// The status mutation happens on the task's private copy, so a failed save
// leaves nothing observable behind. A panic inside the unit is converted to
// an error so a single bad task cannot take down the batch.
func (s *ItemService) processAndSave(ctx context.Context, item models.Item) (_ *models.Item, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic during processing: %v", r)
		}
	}()

	item.Status = models.StatusProcessed
	if err := s.repo.Update(ctx, &item); err != nil {
		return nil, err
	}

	s.invalidateCache(ctx, item.ID)
	return &item, nil
}

// invalidateCache drops the read-model entry; best-effort.
func (s *ItemService) invalidateCache(ctx context.Context, id uuid.UUID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(context.WithoutCancel(ctx), id); err != nil {
		s.log.WarnContext(ctx, "item cache invalidation failed", "item_id", id, "error", err)
	}
}

func itemIDOrUnknown(item *models.Item) string {
	if item == nil || item.ID == uuid.Nil {
		return "unknown"
	}
	return item.ID.String()
}

func itemToCached(item *models.Item) *pkgcache.CachedItem {
	return &pkgcache.CachedItem{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		Status:      item.Status.String(),
		Email:       item.Email,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
}

func cachedToItem(cached *pkgcache.CachedItem) *models.Item {
	return &models.Item{
		ID:          cached.ID,
		Name:        cached.Name,
		Description: cached.Description,
		Status:      models.Status(cached.Status),
		Email:       cached.Email,
		CreatedAt:   cached.CreatedAt,
		UpdatedAt:   cached.UpdatedAt,
	}
}
