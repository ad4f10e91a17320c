// internal/core/ports/buyback_repository.go
package ports

import (
	"context"

	"github.com/rperset/setstock/internal/core/domain"
)

// BuyBackRepository persists the department-internal resale board.
type BuyBackRepository interface {
	Save(ctx context.Context, item *domain.BuyBackItem) error
	Update(ctx context.Context, item *domain.BuyBackItem) error
	FindByID(ctx context.Context, projectID, itemID string) (*domain.BuyBackItem, error)
	ListByProject(ctx context.Context, projectID string) ([]domain.BuyBackItem, error)
	Delete(ctx context.Context, projectID, itemID string) error
}
