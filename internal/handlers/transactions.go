// internal/handlers/transactions.go
package handlers

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/rperset/setstock/internal/core/ports"
	"github.com/rperset/setstock/internal/handlers/middleware"
)

// TransactionHandler handles transaction settlement HTTP requests
type TransactionHandler struct {
	service ports.TransactionService
	logger  *slog.Logger
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(service ports.TransactionService, logger *slog.Logger) *TransactionHandler {
	return &TransactionHandler{
		service: service,
		logger:  logger.With(slog.String("handler", "transactions")),
	}
}

// ListForProject handles GET /api/v1/projects/{projectID}/transactions
func (h *TransactionHandler) ListForProject(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	projectID := r.PathValue("projectID")

	txs, err := h.service.ListForProject(ctx, projectID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list transactions",
			slog.String("project_id", projectID),
			slog.String("error", err.Error()))
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, map[string]interface{}{
		"transactions": txs,
		"count":        len(txs),
	})
}

// Validate handles POST /api/v1/transactions/{id}/validate
func (h *TransactionHandler) Validate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, _ := middleware.ActorFromContext(ctx)

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid transaction ID format")
		return
	}

	tx, err := h.service.Validate(ctx, actor, id)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to validate transaction",
			slog.String("transaction_id", id.String()),
			slog.String("error", err.Error()))
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, tx)
}

// Reject handles POST /api/v1/transactions/{id}/reject
func (h *TransactionHandler) Reject(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, _ := middleware.ActorFromContext(ctx)

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid transaction ID format")
		return
	}

	tx, err := h.service.Reject(ctx, actor, id)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to reject transaction",
			slog.String("transaction_id", id.String()),
			slog.String("error", err.Error()))
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, tx)
}
