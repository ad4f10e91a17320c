// internal/core/services/buyback.go
package services

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/rperset/setstock/internal/core/domain"
	"github.com/rperset/setstock/internal/core/ports"
)

// BuyBackService runs the department-internal resale board: listing,
// reservation toggling, sale confirmation and removal.
type BuyBackService struct {
	board    ports.BuyBackRepository
	photos   ports.PhotoStore
	cache    ports.CacheRepository
	notifier ports.Notifier
	logger   *slog.Logger
}

var _ ports.BuyBackService = (*BuyBackService)(nil)

// NewBuyBackService creates a new buy-back board service
func NewBuyBackService(board ports.BuyBackRepository, photos ports.PhotoStore, cache ports.CacheRepository, notifier ports.Notifier, logger *slog.Logger) *BuyBackService {
	return &BuyBackService{
		board:    board,
		photos:   photos,
		cache:    cache,
		notifier: notifier,
		logger:   logger.With(slog.String("service", "buyback")),
	}
}

// Sell puts an item on the board as AVAILABLE. The photo upload is best
// effort: on failure the entry is created without one.
func (s *BuyBackService) Sell(ctx context.Context, actor domain.Actor, item *domain.BuyBackItem, photo *ports.BuyBackPhoto) error {
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	if item.SellerDepartment == "" {
		item.SellerDepartment = actor.Department
	}
	item.Status = domain.BuyBackAvailable
	if item.Date.IsZero() {
		item.Date = time.Now()
	}
	if err := item.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	if !actor.CanManage(item.SellerDepartment) {
		return domain.AuthorizationError{Actor: actor.Department, Action: "sell for this department"}
	}

	if photo != nil && s.photos != nil {
		key := fmt.Sprintf("buyback/%s/%s", item.ProjectID, item.ID)
		url, err := s.photos.Upload(ctx, key, bytes.NewReader(photo.Data), photo.ContentType)
		if err != nil {
			s.logger.WarnContext(ctx, "photo upload failed, listing without photo",
				slog.String("item_id", item.ID),
				slog.String("error", err.Error()))
		} else {
			item.Photo = url
		}
	}

	if err := s.board.Save(ctx, item); err != nil {
		return fmt.Errorf("failed to save board entry: %w", err)
	}

	if _, err := s.cache.Increment(ctx, UnreadKey(item.ProjectID)); err != nil {
		s.logger.DebugContext(ctx, "failed to bump unread counter",
			slog.String("project_id", item.ProjectID),
			slog.String("error", err.Error()))
	}
	s.notify(ctx, fmt.Sprintf("%s listed %q for buy-back", actor.Name, item.Name),
		ports.SeverityInfo, domain.DepartmentProduction)

	s.logger.InfoContext(ctx, "listed buy-back item",
		slog.String("project_id", item.ProjectID),
		slog.String("item_id", item.ID),
		slog.String("price", item.Price.String()))
	return nil
}

// ToggleReservation reserves an AVAILABLE entry for the actor's department,
// or cancels an existing reservation held by it (production may cancel any).
func (s *BuyBackService) ToggleReservation(ctx context.Context, actor domain.Actor, projectID, itemID string) (*domain.BuyBackItem, error) {
	item, err := s.board.FindByID(ctx, projectID, itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to load board entry: %w", err)
	}

	switch item.Status {
	case domain.BuyBackAvailable:
		err = item.Reserve(actor)
	case domain.BuyBackReserved:
		err = item.Unreserve(actor)
	default:
		err = domain.ValidationError{Field: "status", Reason: "sold items cannot be reserved"}
	}
	if err != nil {
		return nil, err
	}

	if err := s.board.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to update board entry: %w", err)
	}

	if item.Status == domain.BuyBackReserved {
		s.notify(ctx, fmt.Sprintf("%q was reserved by %s", item.Name, actor.Name),
			ports.SeverityInfo, item.SellerDepartment)
	}
	return item, nil
}

// Confirm finalizes a sale: RESERVED to SOLD, reservation fields retained as
// the sale record.
func (s *BuyBackService) Confirm(ctx context.Context, actor domain.Actor, projectID, itemID string) (*domain.BuyBackItem, error) {
	item, err := s.board.FindByID(ctx, projectID, itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to load board entry: %w", err)
	}
	if err := item.ConfirmSale(actor); err != nil {
		return nil, err
	}
	if err := s.board.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to update board entry: %w", err)
	}

	s.notify(ctx, fmt.Sprintf("%q was sold", item.Name),
		ports.SeveritySuccess, item.SellerDepartment)

	s.logger.InfoContext(ctx, "confirmed buy-back sale",
		slog.String("project_id", projectID),
		slog.String("item_id", itemID))
	return item, nil
}

// Delete removes an entry in any status, cleaning up its photo best effort.
func (s *BuyBackService) Delete(ctx context.Context, actor domain.Actor, projectID, itemID string) error {
	item, err := s.board.FindByID(ctx, projectID, itemID)
	if err != nil {
		return fmt.Errorf("failed to load board entry: %w", err)
	}
	if !item.CanDelete(actor) {
		return domain.AuthorizationError{Actor: actor.Department, Action: "delete this board entry"}
	}

	if err := s.board.Delete(ctx, projectID, itemID); err != nil {
		return fmt.Errorf("failed to delete board entry: %w", err)
	}

	if item.Photo != "" && s.photos != nil {
		key := fmt.Sprintf("buyback/%s/%s", projectID, itemID)
		if err := s.photos.Delete(ctx, key); err != nil {
			s.logger.WarnContext(ctx, "failed to delete board photo",
				slog.String("item_id", itemID),
				slog.String("error", err.Error()))
		}
	}
	return nil
}

// List returns the project's board, newest first.
func (s *BuyBackService) List(ctx context.Context, projectID string) ([]domain.BuyBackItem, error) {
	items, err := s.board.ListByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list board entries: %w", err)
	}
	return items, nil
}

func (s *BuyBackService) notify(ctx context.Context, message string, severity ports.Severity, target domain.Department) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.Notify(ctx, message, severity, target); err != nil {
		s.logger.WarnContext(ctx, "notification failed",
			slog.String("message", message),
			slog.String("error", err.Error()))
	}
}
