package services

import (
	"github.com/ghuser/itemflow/pkg/app"
	"github.com/ghuser/itemflow/pkg/cache"
	domainsvcs "github.com/ghuser/itemflow/services/item/domain/services"
	"github.com/ghuser/itemflow/services/item/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
type Services struct {
	Item *ItemService
}

// New wires all item application services with infrastructure from the Application container.
func New(a *app.Application) *Services {
	repo := postgres.NewItemRepository(a.Db, a.EventBus)
	itemCache := cache.NewItemCache(a.Redis)
	checker := domainsvcs.NewEmailChecker(nil, a.EmailMXTimeout)
	return &Services{
		Item: NewItemService(repo, itemCache, checker, a.Logger),
	}
}
