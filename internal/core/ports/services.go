// internal/core/ports/services.go
package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rperset/setstock/internal/core/domain"
)

// DispositionQuote is the first half of the two-step disposition API. Propose
// returns one; the caller may adjust Mode and ResalePrice before committing.
// Note: quote/result types live here to avoid circular dependencies.
type DispositionQuote struct {
	ProjectID      string               `json:"project_id"`
	ItemID         string               `json:"item_id"`
	Action         domain.SurplusAction `json:"action"`
	Composition    domain.Composition   `json:"composition"`
	Mode           domain.SplitMode     `json:"mode"`
	SuggestedPrice decimal.Decimal      `json:"suggested_price"`
	ResalePrice    *decimal.Decimal     `json:"resale_price,omitempty"`
}

// DispositionResult reports the item mutations a committed disposition
// produced. Split is nil for whole-item transitions.
type DispositionResult struct {
	Original domain.Item  `json:"original"`
	Split    *domain.Item `json:"split,omitempty"`
}

// SurplusService drives the item lifecycle: quantity mutations, the purchase
// request queue, and surplus dispositions with optional quantity splits.
type SurplusService interface {
	CreateItem(ctx context.Context, actor domain.Actor, item *domain.Item) error
	GetItem(ctx context.Context, projectID, itemID string) (*domain.Item, error)
	ListItems(ctx context.Context, projectID string) ([]domain.Item, error)
	DeleteItem(ctx context.Context, actor domain.Actor, projectID, itemID string) error
	ProposeDisposition(ctx context.Context, actor domain.Actor, projectID, itemID string, action domain.SurplusAction) (*DispositionQuote, error)
	CommitDisposition(ctx context.Context, actor domain.Actor, quote DispositionQuote) (*DispositionResult, error)
	UndoDisposition(ctx context.Context, actor domain.Actor, projectID, itemID string) (*domain.Item, error)
	AdjustQuantity(ctx context.Context, actor domain.Actor, projectID, itemID string, delta int) (*domain.Item, error)
	MarkStarted(ctx context.Context, actor domain.Actor, projectID, itemID string) (*domain.Item, error)
	MarkBought(ctx context.Context, actor domain.Actor, projectID, itemID string, price *decimal.Decimal) (*domain.Item, error)
	ConfirmReceipt(ctx context.Context, actor domain.Actor, projectID, itemID string, price *decimal.Decimal) (*domain.Item, error)
	ValidateRequest(ctx context.Context, actor domain.Actor, projectID, itemID string) (*domain.Item, error)
}

// MarketplaceService matches purchase requests against the cross-production
// listing set and executes matched orders.
type MarketplaceService interface {
	GlobalListings(ctx context.Context) ([]domain.Listing, error)
	ComputeOpportunities(ctx context.Context, projectID string) ([]domain.Opportunity, error)
	ExecuteOrder(ctx context.Context, actor domain.Actor, opp domain.Opportunity) (*domain.Transaction, error)
	ExecuteOrders(ctx context.Context, actor domain.Actor, opps []domain.Opportunity) ([]domain.Transaction, error)
	UnreadCount(ctx context.Context, projectID string) (int64, error)
}

// BuyBackService runs the department-internal resale board.
type BuyBackService interface {
	Sell(ctx context.Context, actor domain.Actor, item *domain.BuyBackItem, photo *BuyBackPhoto) error
	ToggleReservation(ctx context.Context, actor domain.Actor, projectID, itemID string) (*domain.BuyBackItem, error)
	Confirm(ctx context.Context, actor domain.Actor, projectID, itemID string) (*domain.BuyBackItem, error)
	Delete(ctx context.Context, actor domain.Actor, projectID, itemID string) error
	List(ctx context.Context, projectID string) ([]domain.BuyBackItem, error)
}

// BuyBackPhoto is an optional image attached when listing an item on the
// buy-back board.
type BuyBackPhoto struct {
	Data        []byte
	ContentType string
}

// TransactionService settles pending cross-production purchases.
type TransactionService interface {
	Validate(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.Transaction, error)
	Reject(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.Transaction, error)
	ListForProject(ctx context.Context, projectID string) ([]domain.Transaction, error)
}
