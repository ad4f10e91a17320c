// internal/handlers/marketplace.go
package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/rperset/setstock/internal/core/domain"
	"github.com/rperset/setstock/internal/core/ports"
	"github.com/rperset/setstock/internal/handlers/middleware"
)

// MarketplaceHandler handles cross-production marketplace HTTP requests
type MarketplaceHandler struct {
	service ports.MarketplaceService
	logger  *slog.Logger
}

// NewMarketplaceHandler creates a new marketplace handler
func NewMarketplaceHandler(service ports.MarketplaceService, logger *slog.Logger) *MarketplaceHandler {
	return &MarketplaceHandler{
		service: service,
		logger:  logger.With(slog.String("handler", "marketplace")),
	}
}

// ListListings handles GET /api/v1/marketplace/listings
func (h *MarketplaceHandler) ListListings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	listings, err := h.service.GlobalListings(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to load global listings",
			slog.String("error", err.Error()))
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, map[string]interface{}{
		"listings": listings,
		"count":    len(listings),
	})
}

// ListOpportunities handles GET /api/v1/projects/{projectID}/opportunities
func (h *MarketplaceHandler) ListOpportunities(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	projectID := r.PathValue("projectID")

	opps, err := h.service.ComputeOpportunities(ctx, projectID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to compute opportunities",
			slog.String("project_id", projectID),
			slog.String("error", err.Error()))
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, map[string]interface{}{
		"opportunities": opps,
		"count":         len(opps),
	})
}

// ExecuteOrder handles POST /api/v1/projects/{projectID}/orders
func (h *MarketplaceHandler) ExecuteOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, _ := middleware.ActorFromContext(ctx)

	var opp domain.Opportunity
	if err := json.NewDecoder(r.Body).Decode(&opp); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}

	tx, err := h.service.ExecuteOrder(ctx, actor, opp)
	if err != nil {
		h.logger.ErrorContext(ctx, "order execution failed",
			slog.String("project_id", actor.ProjectID),
			slog.String("listing_id", opp.Listing.ID),
			slog.String("error", err.Error()))
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusCreated, tx)
}

// ExecuteOrders handles POST /api/v1/projects/{projectID}/orders/bulk
func (h *MarketplaceHandler) ExecuteOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, _ := middleware.ActorFromContext(ctx)

	var req struct {
		Opportunities []domain.Opportunity `json:"opportunities"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}
	if len(req.Opportunities) == 0 {
		respondError(w, h.logger, http.StatusBadRequest, "opportunities cannot be empty")
		return
	}

	txs, err := h.service.ExecuteOrders(ctx, actor, req.Opportunities)
	if err != nil {
		h.logger.ErrorContext(ctx, "bulk order execution failed",
			slog.String("project_id", actor.ProjectID),
			slog.Int("requested", len(req.Opportunities)),
			slog.Int("completed", len(txs)),
			slog.String("error", err.Error()))

		// Some orders may have settled before the failure; report both.
		var partialErr *domain.PartialWriteError
		if errors.As(err, &partialErr) && len(txs) > 0 {
			respondJSON(w, h.logger, http.StatusMultiStatus, map[string]interface{}{
				"transactions": txs,
				"error":        "some orders could not be completed",
			})
			return
		}
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusCreated, map[string]interface{}{
		"transactions": txs,
		"count":        len(txs),
	})
}

// UnreadCount handles GET /api/v1/projects/{projectID}/marketplace/unread
func (h *MarketplaceHandler) UnreadCount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	projectID := r.PathValue("projectID")

	count, err := h.service.UnreadCount(ctx, projectID)
	if err != nil {
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, map[string]int64{"unread": count})
}
