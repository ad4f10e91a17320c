// internal/core/services/surplus.go
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rperset/setstock/internal/core/domain"
	"github.com/rperset/setstock/internal/core/ports"
)

// SurplusService drives the item lifecycle: quantity mutations, the purchase
// request queue, and surplus dispositions with optional quantity splits.
type SurplusService struct {
	items    ports.ItemRepository
	projects ports.ProjectRepository
	notifier ports.Notifier
	logger   *slog.Logger
	now      func() time.Time
}

// Statically assert that *SurplusService implements the SurplusService port.
var _ ports.SurplusService = (*SurplusService)(nil)

// NewSurplusService creates a new surplus service
func NewSurplusService(items ports.ItemRepository, projects ports.ProjectRepository, notifier ports.Notifier, logger *slog.Logger) *SurplusService {
	return &SurplusService{
		items:    items,
		projects: projects,
		notifier: notifier,
		logger:   logger.With(slog.String("service", "surplus")),
		now:      time.Now,
	}
}

// CreateItem validates and persists a new item owned by the actor's project.
func (s *SurplusService) CreateItem(ctx context.Context, actor domain.Actor, item *domain.Item) error {
	if !actor.CanManage(item.Department) {
		return domain.AuthorizationError{Actor: actor.Department, Action: "create items for this department"}
	}
	if err := item.Validate(); err != nil {
		return err
	}

	if err := s.items.Save(ctx, item); err != nil {
		return fmt.Errorf("failed to save item: %w", err)
	}

	s.logger.InfoContext(ctx, "item created",
		slog.String("project_id", item.ProjectID),
		slog.String("item_id", item.ID),
		slog.String("name", item.Name))
	return nil
}

// GetItem loads a single item.
func (s *SurplusService) GetItem(ctx context.Context, projectID, itemID string) (*domain.Item, error) {
	item, err := s.items.FindByID(ctx, projectID, itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to load item: %w", err)
	}
	return item, nil
}

// ListItems returns every item of a production, newest first.
func (s *SurplusService) ListItems(ctx context.Context, projectID string) ([]domain.Item, error) {
	items, err := s.items.ListByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	return items, nil
}

// DeleteItem removes an item from the production's stock.
func (s *SurplusService) DeleteItem(ctx context.Context, actor domain.Actor, projectID, itemID string) error {
	item, err := s.items.FindByID(ctx, projectID, itemID)
	if err != nil {
		return fmt.Errorf("failed to load item: %w", err)
	}
	if !actor.CanManage(item.Department) {
		return domain.AuthorizationError{Actor: actor.Department, Action: "delete this item"}
	}

	if err := s.items.Delete(ctx, projectID, itemID); err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}

	s.logger.InfoContext(ctx, "item deleted",
		slog.String("project_id", projectID),
		slog.String("item_id", itemID))
	return nil
}

// ProposeDisposition validates a disposition request and returns a quote: the
// item's composition, the default split mode, and the policy-suggested price.
// It never writes; the caller confirms the quote via CommitDisposition.
func (s *SurplusService) ProposeDisposition(ctx context.Context, actor domain.Actor, projectID, itemID string, action domain.SurplusAction) (*ports.DispositionQuote, error) {
	if !action.Valid() || action == domain.SurplusNone {
		return nil, domain.ValidationError{Field: "action", Reason: "is not a disposition"}
	}

	item, err := s.items.FindByID(ctx, projectID, itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to load item: %w", err)
	}
	if !actor.CanManage(item.Department) {
		return nil, domain.AuthorizationError{Actor: actor.Department, Action: "dispose of this item"}
	}
	if item.SurplusAction != domain.SurplusNone {
		return nil, domain.ValidationError{
			Field:  "surplus_action",
			Reason: fmt.Sprintf("item already dispatched to %s", item.SurplusAction),
		}
	}

	comp := item.Composition()
	mode := domain.SplitNone
	if comp == domain.PartiallyStarted {
		mode = domain.SplitOnlyNew
	}

	quote := &ports.DispositionQuote{
		ProjectID:      projectID,
		ItemID:         itemID,
		Action:         action,
		Composition:    comp,
		Mode:           mode,
		SuggestedPrice: domain.SuggestedPrice(action, *item),
	}
	if action.Priced() {
		suggested := quote.SuggestedPrice
		quote.ResalePrice = &suggested
	}
	return quote, nil
}

// CommitDisposition applies a confirmed quote. Whole-item transitions are a
// single update; splits update the truncated original and then create the
// split record sequentially. A failure after the first write committed is
// surfaced as a *domain.PartialWriteError naming the completed steps.
func (s *SurplusService) CommitDisposition(ctx context.Context, actor domain.Actor, quote ports.DispositionQuote) (*ports.DispositionResult, error) {
	item, err := s.items.FindByID(ctx, quote.ProjectID, quote.ItemID)
	if err != nil {
		return nil, fmt.Errorf("failed to load item: %w", err)
	}
	if !actor.CanManage(item.Department) {
		return nil, domain.AuthorizationError{Actor: actor.Department, Action: "dispose of this item"}
	}

	plan, err := domain.PlanDisposition(*item, quote.Action, quote.Mode, quote.ResalePrice, s.now())
	if err != nil {
		return nil, err
	}

	if err := s.items.Update(ctx, &plan.Original); err != nil {
		return nil, fmt.Errorf("failed to update item: %w", err)
	}
	if plan.Split != nil {
		if err := s.items.Save(ctx, plan.Split); err != nil {
			pwe := &domain.PartialWriteError{
				Op:        "commit_disposition",
				Completed: []string{"update_original"},
				Err:       err,
			}
			s.logger.ErrorContext(ctx, "disposition left inconsistent state",
				slog.String("project_id", quote.ProjectID),
				slog.String("item_id", quote.ItemID),
				slog.String("completed", "update_original"),
				slog.String("error", err.Error()))
			return nil, pwe
		}
	}

	s.logger.InfoContext(ctx, "committed disposition",
		slog.String("project_id", quote.ProjectID),
		slog.String("item_id", quote.ItemID),
		slog.String("action", string(quote.Action)),
		slog.Bool("split", plan.Split != nil))

	s.notify(ctx, fmt.Sprintf("%s flagged %q as %s", actor.Name, item.Name, quote.Action),
		ports.SeverityStockMove, domain.DepartmentProduction)

	result := &ports.DispositionResult{Original: plan.Original, Split: plan.Split}
	return result, nil
}

// UndoDisposition returns an item to normal department stock. Production may
// always undo; the originating department only while the item sits in
// released-to-production intake.
func (s *SurplusService) UndoDisposition(ctx context.Context, actor domain.Actor, projectID, itemID string) (*domain.Item, error) {
	item, err := s.items.FindByID(ctx, projectID, itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to load item: %w", err)
	}
	if item.SurplusAction == domain.SurplusNone {
		return nil, domain.ValidationError{Field: "surplus_action", Reason: "item is not dispatched"}
	}
	if !domain.CanUndoDisposition(actor, *item) {
		return nil, domain.AuthorizationError{Actor: actor.Department, Action: "undo this disposition"}
	}

	item.SurplusAction = domain.SurplusNone
	if err := s.items.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to update item: %w", err)
	}

	s.logger.InfoContext(ctx, "undid disposition",
		slog.String("project_id", projectID),
		slog.String("item_id", itemID))
	return item, nil
}

// AdjustQuantity applies a signed delta to the item's current quantity,
// clamping at zero and recomputing the derived status.
func (s *SurplusService) AdjustQuantity(ctx context.Context, actor domain.Actor, projectID, itemID string, delta int) (*domain.Item, error) {
	item, err := s.items.FindByID(ctx, projectID, itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to load item: %w", err)
	}
	if !actor.CanManage(item.Department) {
		return nil, domain.AuthorizationError{Actor: actor.Department, Action: "adjust this item"}
	}

	item.AdjustQuantity(delta)
	if err := s.items.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to update item: %w", err)
	}

	if item.Status == domain.StatusEmpty {
		s.notify(ctx, fmt.Sprintf("%q is out of stock", item.Name),
			ports.SeverityWarning, item.Department)
	}
	return item, nil
}

// MarkStarted opens one sealed unit of the item.
func (s *SurplusService) MarkStarted(ctx context.Context, actor domain.Actor, projectID, itemID string) (*domain.Item, error) {
	item, err := s.items.FindByID(ctx, projectID, itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to load item: %w", err)
	}
	if !actor.CanManage(item.Department) {
		return nil, domain.AuthorizationError{Actor: actor.Department, Action: "mark this item started"}
	}

	if !item.MarkStarted() {
		return nil, domain.ValidationError{Field: "quantity_started", Reason: "every remaining unit is already started"}
	}
	if err := s.items.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to update item: %w", err)
	}
	return item, nil
}

// MarkBought flags a purchase request as ordered (is_bought), before final
// receipt confirmation. The first price recorded snapshots the acquisition
// price into original_price.
func (s *SurplusService) MarkBought(ctx context.Context, actor domain.Actor, projectID, itemID string, price *decimal.Decimal) (*domain.Item, error) {
	item, err := s.items.FindByID(ctx, projectID, itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to load item: %w", err)
	}
	if !actor.CanManage(item.Department) {
		return nil, domain.AuthorizationError{Actor: actor.Department, Action: "mark this item bought"}
	}
	if item.Purchased {
		return nil, domain.ValidationError{Field: "purchased", Reason: "item is already received"}
	}

	item.IsBought = true
	if price != nil {
		item.SetPrice(*price)
	}
	if err := s.items.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to update item: %w", err)
	}

	s.logger.InfoContext(ctx, "marked item bought",
		slog.String("project_id", projectID),
		slog.String("item_id", itemID))
	return item, nil
}

// ConfirmReceipt confirms the physical arrival of an ordered item:
// purchased = true, the transient is_bought flag is cleared, and an optional
// final price is recorded. The owning department is notified.
func (s *SurplusService) ConfirmReceipt(ctx context.Context, actor domain.Actor, projectID, itemID string, price *decimal.Decimal) (*domain.Item, error) {
	item, err := s.items.FindByID(ctx, projectID, itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to load item: %w", err)
	}
	if !actor.CanManage(item.Department) {
		return nil, domain.AuthorizationError{Actor: actor.Department, Action: "confirm receipt of this item"}
	}

	item.Purchased = true
	item.IsBought = false
	if price != nil {
		item.SetPrice(*price)
	}
	if err := s.items.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to update item: %w", err)
	}

	s.notify(ctx, fmt.Sprintf("%q has arrived", item.Name),
		ports.SeveritySuccess, item.Department)
	return item, nil
}

// ValidateRequest approves a purchase request when the project requires order
// validation. Production only.
func (s *SurplusService) ValidateRequest(ctx context.Context, actor domain.Actor, projectID, itemID string) (*domain.Item, error) {
	if !actor.IsProduction() {
		return nil, domain.AuthorizationError{Actor: actor.Department, Action: "validate purchase requests"}
	}

	project, err := s.projects.FindByID(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to load project: %w", err)
	}
	if !project.RequireOrderValidation {
		return nil, domain.ValidationError{Field: "require_order_validation", Reason: "is disabled for this project"}
	}

	item, err := s.items.FindByID(ctx, projectID, itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to load item: %w", err)
	}

	validated := true
	item.IsValidated = &validated
	if err := s.items.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to update item: %w", err)
	}

	s.notify(ctx, fmt.Sprintf("order for %q was approved", item.Name),
		ports.SeverityOrder, item.Department)
	return item, nil
}

// notify sends a fire-and-forget notification; failures never abort the
// primary transition.
func (s *SurplusService) notify(ctx context.Context, message string, severity ports.Severity, target domain.Department) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.Notify(ctx, message, severity, target); err != nil {
		s.logger.WarnContext(ctx, "notification failed",
			slog.String("message", message),
			slog.String("error", err.Error()))
	}
}
