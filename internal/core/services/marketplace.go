// internal/core/services/marketplace.go
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/rperset/setstock/internal/core/domain"
	"github.com/rperset/setstock/internal/core/ports"
)

const (
	// PlatformName masks the owning production on buy-back listings: the
	// platform buys the stock and resells it under its own name.
	PlatformName = "PER SET"

	// ListingsCacheKey holds the cached global listing snapshot. The cleanup
	// worker invalidates it after reaping sold-out listings.
	ListingsCacheKey = "marketplace:listings"

	unreadKeyPrefix = "marketplace:unread:"
)

// MarketplaceService matches purchase requests against the cross-production
// listing set and executes matched orders.
type MarketplaceService struct {
	items    ports.ItemRepository
	listings ports.ListingFinder
	projects ports.ProjectRepository
	ledger   ports.TransactionLedger
	cache    ports.CacheRepository
	logger   *slog.Logger
	cacheTTL time.Duration
}

var _ ports.MarketplaceService = (*MarketplaceService)(nil)

// NewMarketplaceService creates a new marketplace service
func NewMarketplaceService(
	items ports.ItemRepository,
	listings ports.ListingFinder,
	projects ports.ProjectRepository,
	ledger ports.TransactionLedger,
	cache ports.CacheRepository,
	cacheTTL time.Duration,
	logger *slog.Logger,
) *MarketplaceService {
	return &MarketplaceService{
		items:    items,
		listings: listings,
		projects: projects,
		ledger:   ledger,
		cache:    cache,
		cacheTTL: cacheTTL,
		logger:   logger.With(slog.String("service", "marketplace")),
	}
}

// GlobalListings returns the cross-production listing snapshot: every item
// flagged marketplace or buy-back with stock remaining, enriched with its
// production's display name. Buy-back stock is masked as the platform's own.
// The snapshot is cached with a short TTL and invalidated after every order.
func (s *MarketplaceService) GlobalListings(ctx context.Context) ([]domain.Listing, error) {
	var listings []domain.Listing
	err := s.cache.GetOrSet(ctx, ListingsCacheKey, &listings, func() (interface{}, error) {
		fresh, err := s.listings.GlobalListings(ctx)
		if err != nil {
			return nil, err
		}
		for i := range fresh {
			if fresh[i].SurplusAction == domain.SurplusBuyBack {
				fresh[i].ProductionName = PlatformName
			}
		}
		return fresh, nil
	}, s.cacheTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to load global listings: %w", err)
	}
	return listings, nil
}

// ComputeOpportunities reconciles the project's open purchase requests
// against the global listing set. Deterministic for a fixed input.
func (s *MarketplaceService) ComputeOpportunities(ctx context.Context, projectID string) ([]domain.Opportunity, error) {
	requests, err := s.items.ListOpenRequests(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to load open requests: %w", err)
	}
	listings, err := s.GlobalListings(ctx)
	if err != nil {
		return nil, err
	}
	return domain.MatchOpportunities(requests, listings, projectID), nil
}

// ExecuteOrder settles one matched opportunity: ledger append (pending, with
// the platform fee), atomic conditional decrement on the seller's stock, and
// the buyer's request update. The decrement never drives stock negative; a
// failure after the ledger append committed surfaces as a
// *domain.PartialWriteError.
func (s *MarketplaceService) ExecuteOrder(ctx context.Context, actor domain.Actor, opp domain.Opportunity) (*domain.Transaction, error) {
	tx, err := s.executeOrder(ctx, actor, opp, opp.Listing.QuantityCurrent)
	if err != nil {
		return nil, err
	}
	s.invalidateListings(ctx)
	return tx, nil
}

// ExecuteOrders settles a batch. Opportunities sharing a listing see the
// already-decremented running quantity, so one batch can never oversell a
// listing past its snapshot quantity. Sold-out listings simply yield no
// further orders.
func (s *MarketplaceService) ExecuteOrders(ctx context.Context, actor domain.Actor, opps []domain.Opportunity) ([]domain.Transaction, error) {
	remaining := make(map[string]int, len(opps))
	var done []domain.Transaction

	for _, opp := range opps {
		key := opp.Listing.ProjectID + "/" + opp.Listing.ID
		avail, seen := remaining[key]
		if !seen {
			avail = opp.Listing.QuantityCurrent
		}
		if avail <= 0 {
			continue
		}

		tx, err := s.executeOrder(ctx, actor, opp, avail)
		if err != nil {
			s.invalidateListings(ctx)
			if len(done) > 0 {
				completed := make([]string, 0, len(done))
				for _, t := range done {
					completed = append(completed, "order:"+t.ID.String())
				}
				return done, &domain.PartialWriteError{
					Op:        "execute_orders",
					Completed: completed,
					Err:       err,
				}
			}
			return nil, err
		}
		remaining[key] = avail - tx.Items[0].Quantity
		done = append(done, *tx)
	}

	s.invalidateListings(ctx)
	return done, nil
}

// UnreadCount returns the project's unread marketplace badge counter.
func (s *MarketplaceService) UnreadCount(ctx context.Context, projectID string) (int64, error) {
	var n int64
	if err := s.cache.Get(ctx, unreadKeyPrefix+projectID, &n); err != nil {
		// Miss or unavailable cache both read as zero; the badge is cosmetic.
		s.logger.DebugContext(ctx, "unread counter unavailable",
			slog.String("project_id", projectID),
			slog.String("error", err.Error()))
		return 0, nil
	}
	return n, nil
}

func (s *MarketplaceService) executeOrder(ctx context.Context, actor domain.Actor, opp domain.Opportunity, available int) (*domain.Transaction, error) {
	qty := opp.Request.QuantityInitial
	if qty > available {
		qty = available
	}
	if qty <= 0 {
		return nil, domain.ErrInsufficientStock
	}

	buyer, err := s.projects.FindByID(ctx, actor.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("failed to load buying production: %w", err)
	}

	sellerName := opp.Listing.ProductionName
	line := domain.TransactionLine{
		ItemID:   opp.Listing.ID,
		Name:     opp.Listing.Name,
		Quantity: qty,
		Price:    opp.Cost,
	}
	tx := domain.NewTransaction(opp.Listing.ProjectID, sellerName, actor.ProjectID, buyer.DisplayName(), []domain.TransactionLine{line})
	if err := tx.Validate(); err != nil {
		return nil, err
	}

	if err := s.ledger.Append(ctx, &tx); err != nil {
		return nil, fmt.Errorf("failed to append transaction: %w", err)
	}

	if err := s.items.DecrementIfAvailable(ctx, opp.Listing.ProjectID, opp.Listing.ID, qty); err != nil {
		s.logger.ErrorContext(ctx, "order left inconsistent state",
			slog.String("transaction_id", tx.ID.String()),
			slog.String("listing_id", opp.Listing.ID),
			slog.String("error", err.Error()))
		return nil, &domain.PartialWriteError{
			Op:        "execute_order",
			Completed: []string{"append_transaction"},
			Err:       err,
		}
	}

	// Fulfil the buyer's own request: flagged as ordered at the listing's
	// effective price, capped at the quantity actually secured.
	req := opp.Request
	req.IsBought = true
	cost := opp.Cost
	req.Price = &cost
	req.OriginalPrice = &cost
	req.QuantityCurrent = qty
	if req.QuantityStarted > qty {
		req.QuantityStarted = qty
	}
	if err := s.items.Update(ctx, &req); err != nil {
		s.logger.ErrorContext(ctx, "order left inconsistent state",
			slog.String("transaction_id", tx.ID.String()),
			slog.String("request_id", req.ID),
			slog.String("error", err.Error()))
		return nil, &domain.PartialWriteError{
			Op:        "execute_order",
			Completed: []string{"append_transaction", "decrement_listing"},
			Err:       err,
		}
	}

	s.logger.InfoContext(ctx, "executed order",
		slog.String("transaction_id", tx.ID.String()),
		slog.String("seller_id", opp.Listing.ProjectID),
		slog.String("buyer_id", actor.ProjectID),
		slog.Int("quantity", qty),
		slog.String("total", tx.TotalAmount.String()))

	return &tx, nil
}

func (s *MarketplaceService) invalidateListings(ctx context.Context) {
	if err := s.cache.Delete(ctx, ListingsCacheKey); err != nil {
		s.logger.WarnContext(ctx, "failed to invalidate listing cache",
			slog.String("error", err.Error()))
	}
}

// UnreadKey builds the redis key of a project's unread marketplace counter.
// Shared with the buy-back service, which bumps it on new entries.
func UnreadKey(projectID string) string {
	return unreadKeyPrefix + projectID
}
