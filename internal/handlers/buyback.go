// internal/handlers/buyback.go
package handlers

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rperset/setstock/internal/core/domain"
	"github.com/rperset/setstock/internal/core/ports"
	"github.com/rperset/setstock/internal/handlers/middleware"
)

// maxPhotoBytes caps buy-back photo uploads at 10 MB
const maxPhotoBytes = 10 << 20

// BuyBackHandler handles buy-back board HTTP requests
type BuyBackHandler struct {
	service ports.BuyBackService
	logger  *slog.Logger
}

// NewBuyBackHandler creates a new buy-back handler
func NewBuyBackHandler(service ports.BuyBackService, logger *slog.Logger) *BuyBackHandler {
	return &BuyBackHandler{
		service: service,
		logger:  logger.With(slog.String("handler", "buyback")),
	}
}

// List handles GET /api/v1/projects/{projectID}/buyback
func (h *BuyBackHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	projectID := r.PathValue("projectID")

	items, err := h.service.List(ctx, projectID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list buyback board",
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

// Sell handles POST /api/v1/projects/{projectID}/buyback.
// Accepts multipart/form-data (entry fields + optional photo file) or plain
// JSON when there is no photo.
func (h *BuyBackHandler) Sell(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, _ := middleware.ActorFromContext(ctx)
	projectID := r.PathValue("projectID")

	var req SellRequest
	var photo *ports.BuyBackPhoto

	contentType := r.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "multipart/form-data") {
		if err := r.ParseMultipartForm(maxPhotoBytes); err != nil {
			respondError(w, h.logger, http.StatusBadRequest, "Invalid multipart form")
			return
		}

		req.Name = r.FormValue("name")
		req.Description = r.FormValue("description")
		if priceStr := r.FormValue("price"); priceStr != "" {
			price, err := decimal.NewFromString(priceStr)
			if err != nil {
				respondError(w, h.logger, http.StatusBadRequest, "Invalid price")
				return
			}
			req.Price = price
		}

		file, header, err := r.FormFile("photo")
		if err == nil {
			defer file.Close()
			data, err := io.ReadAll(io.LimitReader(file, maxPhotoBytes))
			if err != nil {
				respondError(w, h.logger, http.StatusBadRequest, "Failed to read photo")
				return
			}
			photo = &ports.BuyBackPhoto{
				Data:        data,
				ContentType: header.Header.Get("Content-Type"),
			}
		}
	} else {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, h.logger, http.StatusBadRequest, "Invalid request body")
			return
		}
	}

	item := req.ToDomain(projectID)
	if err := h.service.Sell(ctx, actor, item, photo); err != nil {
		h.logger.ErrorContext(ctx, "failed to create buyback entry",
			slog.String("project_id", projectID),
			slog.String("error", err.Error()))
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusCreated, item)
}

// ToggleReservation handles POST /api/v1/projects/{projectID}/buyback/{itemID}/reserve
func (h *BuyBackHandler) ToggleReservation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, _ := middleware.ActorFromContext(ctx)

	item, err := h.service.ToggleReservation(ctx, actor, r.PathValue("projectID"), r.PathValue("itemID"))
	if err != nil {
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, item)
}

// Confirm handles POST /api/v1/projects/{projectID}/buyback/{itemID}/confirm
func (h *BuyBackHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, _ := middleware.ActorFromContext(ctx)

	item, err := h.service.Confirm(ctx, actor, r.PathValue("projectID"), r.PathValue("itemID"))
	if err != nil {
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, item)
}

// Delete handles DELETE /api/v1/projects/{projectID}/buyback/{itemID}
func (h *BuyBackHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, _ := middleware.ActorFromContext(ctx)
	itemID := r.PathValue("itemID")

	if err := h.service.Delete(ctx, actor, r.PathValue("projectID"), itemID); err != nil {
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, map[string]string{
		"message": "Buy-back entry deleted",
		"item_id": itemID,
	})
}

// SellRequest represents the request body for a new buy-back entry
type SellRequest struct {
	Name          string           `json:"name"`
	Description   string           `json:"description,omitempty"`
	Price         decimal.Decimal  `json:"price"`
	OriginalPrice *decimal.Decimal `json:"original_price,omitempty"`
}

// ToDomain converts the request to a domain model
func (r *SellRequest) ToDomain(projectID string) *domain.BuyBackItem {
	return &domain.BuyBackItem{
		ProjectID:     projectID,
		Name:          r.Name,
		Description:   r.Description,
		Price:         r.Price,
		OriginalPrice: r.OriginalPrice,
		Status:        domain.BuyBackAvailable,
		Date:          time.Now(),
	}
}
