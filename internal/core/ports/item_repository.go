// internal/core/ports/item_repository.go
package ports

import (
	"context"

	"github.com/rperset/setstock/internal/core/domain"
)

// ItemRepository is the persistence port for a production's item collection.
// Implemented by the database adapter. FindByID returns domain.ErrNotFound
// when the item does not exist.
type ItemRepository interface {
	Save(ctx context.Context, item *domain.Item) error
	Update(ctx context.Context, item *domain.Item) error
	FindByID(ctx context.Context, projectID, itemID string) (*domain.Item, error)
	ListByProject(ctx context.Context, projectID string) ([]domain.Item, error)
	ListOpenRequests(ctx context.Context, projectID string) ([]domain.Item, error)
	Delete(ctx context.Context, projectID, itemID string) error

	// DecrementIfAvailable atomically subtracts qty from the item's current
	// quantity, failing with domain.ErrInsufficientStock instead of going
	// negative. This is the only write a foreign production is allowed on an
	// item it does not own.
	DecrementIfAvailable(ctx context.Context, projectID, itemID string, qty int) error

	// IncrementQuantity adds qty back and optionally re-flags the surplus
	// state; used by transaction rejection to compensate a decrement.
	IncrementQuantity(ctx context.Context, projectID, itemID string, qty int, action domain.SurplusAction) error
}

// ListingFinder is the cross-production read: every item flagged marketplace
// or buy-back with stock remaining, enriched with production identity.
type ListingFinder interface {
	GlobalListings(ctx context.Context) ([]domain.Listing, error)
}

// ProjectRepository resolves production identity and settings.
type ProjectRepository interface {
	FindByID(ctx context.Context, projectID string) (*domain.Project, error)
}
