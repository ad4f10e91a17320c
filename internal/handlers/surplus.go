// internal/handlers/surplus.go
package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rperset/setstock/internal/core/domain"
	"github.com/rperset/setstock/internal/core/ports"
	"github.com/rperset/setstock/internal/handlers/middleware"
)

// SurplusHandler handles item lifecycle HTTP requests
type SurplusHandler struct {
	service ports.SurplusService
	logger  *slog.Logger
}

// NewSurplusHandler creates a new surplus handler
func NewSurplusHandler(service ports.SurplusService, logger *slog.Logger) *SurplusHandler {
	return &SurplusHandler{
		service: service,
		logger:  logger.With(slog.String("handler", "surplus")),
	}
}

// ListItems handles GET /api/v1/projects/{projectID}/items
func (h *SurplusHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	projectID := r.PathValue("projectID")

	items, err := h.service.ListItems(ctx, projectID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list items",
			slog.String("project_id", projectID),
			slog.String("error", err.Error()))
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, map[string]interface{}{
		"items": items,
		"count": len(items),
	})
}

// GetItem handles GET /api/v1/projects/{projectID}/items/{itemID}
func (h *SurplusHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	item, err := h.service.GetItem(ctx, r.PathValue("projectID"), r.PathValue("itemID"))
	if err != nil {
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, item)
}

// CreateItem handles POST /api/v1/projects/{projectID}/items
func (h *SurplusHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, _ := middleware.ActorFromContext(ctx)

	var req CreateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}

	item := req.ToDomain(r.PathValue("projectID"), actor)
	if err := h.service.CreateItem(ctx, actor, item); err != nil {
		h.logger.ErrorContext(ctx, "failed to create item",
			slog.String("project_id", item.ProjectID),
			slog.String("error", err.Error()))
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusCreated, item)
}

// DeleteItem handles DELETE /api/v1/projects/{projectID}/items/{itemID}
func (h *SurplusHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, _ := middleware.ActorFromContext(ctx)
	projectID := r.PathValue("projectID")
	itemID := r.PathValue("itemID")

	if err := h.service.DeleteItem(ctx, actor, projectID, itemID); err != nil {
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, map[string]string{
		"message": "Item deleted",
		"item_id": itemID,
	})
}

// ProposeDisposition handles POST /api/v1/projects/{projectID}/items/{itemID}/dispose/quote
func (h *SurplusHandler) ProposeDisposition(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, _ := middleware.ActorFromContext(ctx)

	var req struct {
		Action domain.SurplusAction `json:"action"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}

	quote, err := h.service.ProposeDisposition(ctx, actor, r.PathValue("projectID"), r.PathValue("itemID"), req.Action)
	if err != nil {
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, quote)
}

// CommitDisposition handles POST /api/v1/projects/{projectID}/items/{itemID}/dispose
func (h *SurplusHandler) CommitDisposition(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, _ := middleware.ActorFromContext(ctx)

	var quote ports.DispositionQuote
	if err := json.NewDecoder(r.Body).Decode(&quote); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}
	// Path wins over whatever the client echoed back in the quote
	quote.ProjectID = r.PathValue("projectID")
	quote.ItemID = r.PathValue("itemID")

	result, err := h.service.CommitDisposition(ctx, actor, quote)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to commit disposition",
			slog.String("project_id", quote.ProjectID),
			slog.String("item_id", quote.ItemID),
			slog.String("error", err.Error()))
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, result)
}

// UndoDisposition handles POST /api/v1/projects/{projectID}/items/{itemID}/dispose/undo
func (h *SurplusHandler) UndoDisposition(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, _ := middleware.ActorFromContext(ctx)

	item, err := h.service.UndoDisposition(ctx, actor, r.PathValue("projectID"), r.PathValue("itemID"))
	if err != nil {
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, item)
}

// AdjustQuantity handles POST /api/v1/projects/{projectID}/items/{itemID}/quantity
func (h *SurplusHandler) AdjustQuantity(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, _ := middleware.ActorFromContext(ctx)

	var req struct {
		Delta int `json:"delta"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Delta == 0 {
		respondError(w, h.logger, http.StatusBadRequest, "delta must be non-zero")
		return
	}

	item, err := h.service.AdjustQuantity(ctx, actor, r.PathValue("projectID"), r.PathValue("itemID"), req.Delta)
	if err != nil {
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, item)
}

// MarkStarted handles POST /api/v1/projects/{projectID}/items/{itemID}/start
func (h *SurplusHandler) MarkStarted(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, _ := middleware.ActorFromContext(ctx)

	item, err := h.service.MarkStarted(ctx, actor, r.PathValue("projectID"), r.PathValue("itemID"))
	if err != nil {
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, item)
}

// MarkBought handles POST /api/v1/projects/{projectID}/items/{itemID}/bought
func (h *SurplusHandler) MarkBought(w http.ResponseWriter, r *http.Request) {
	h.recordPurchaseStep(w, r, h.service.MarkBought)
}

// ConfirmReceipt handles POST /api/v1/projects/{projectID}/items/{itemID}/received
func (h *SurplusHandler) ConfirmReceipt(w http.ResponseWriter, r *http.Request) {
	h.recordPurchaseStep(w, r, h.service.ConfirmReceipt)
}

// ValidateRequest handles POST /api/v1/projects/{projectID}/items/{itemID}/validate
func (h *SurplusHandler) ValidateRequest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, _ := middleware.ActorFromContext(ctx)

	item, err := h.service.ValidateRequest(ctx, actor, r.PathValue("projectID"), r.PathValue("itemID"))
	if err != nil {
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, item)
}

type purchaseStepFunc func(ctx context.Context, actor domain.Actor, projectID, itemID string, price *decimal.Decimal) (*domain.Item, error)

// recordPurchaseStep is shared by MarkBought and ConfirmReceipt: both take an
// optional price in the body and differ only in the service call.
func (h *SurplusHandler) recordPurchaseStep(w http.ResponseWriter, r *http.Request, step purchaseStepFunc) {
	ctx := r.Context()
	actor, _ := middleware.ActorFromContext(ctx)

	var req struct {
		Price *decimal.Decimal `json:"price,omitempty"`
	}
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, h.logger, http.StatusBadRequest, "Invalid request body")
			return
		}
	}

	item, err := step(ctx, actor, r.PathValue("projectID"), r.PathValue("itemID"), req.Price)
	if err != nil {
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, item)
}

// Request/Response DTOs

// CreateItemRequest represents the request body for creating an item
type CreateItemRequest struct {
	ID              string            `json:"id,omitempty"`
	Name            string            `json:"name"`
	Department      domain.Department `json:"department,omitempty"`
	QuantityInitial int               `json:"quantity_initial"`
	QuantityCurrent int               `json:"quantity_current,omitempty"`
	Unit            string            `json:"unit,omitempty"`
	Price           *decimal.Decimal  `json:"price,omitempty"`
}

// ToDomain converts the request to a domain model
func (r *CreateItemRequest) ToDomain(projectID string, actor domain.Actor) *domain.Item {
	item := &domain.Item{
		ID:              r.ID,
		ProjectID:       projectID,
		Name:            r.Name,
		Department:      r.Department,
		QuantityInitial: r.QuantityInitial,
		QuantityCurrent: r.QuantityCurrent,
		Unit:            r.Unit,
		Price:           r.Price,
		Status:          domain.StatusNew,
		SurplusAction:   domain.SurplusNone,
		CreatedAt:       time.Now(),
	}

	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	if item.Department == "" {
		item.Department = actor.Department
	}
	if item.QuantityCurrent == 0 {
		item.QuantityCurrent = item.QuantityInitial
	}

	return item
}
