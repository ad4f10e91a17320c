// internal/handlers/notifications.go
package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	redis_a "github.com/rperset/setstock/internal/adapters/redis_adapter"
)

// NotificationHandler serves the per-department notification feed
type NotificationHandler struct {
	store  *redis_a.NotificationStore
	logger *slog.Logger
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(store *redis_a.NotificationStore, logger *slog.Logger) *NotificationHandler {
	return &NotificationHandler{
		store:  store,
		logger: logger.With(slog.String("handler", "notifications")),
	}
}

// List handles GET /api/v1/notifications/{department}
func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	department := r.PathValue("department")

	limit := 50
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 && l <= 100 {
			limit = l
		}
	}

	notifications, err := h.store.List(ctx, department, limit)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list notifications",
			slog.String("department", department),
			slog.String("error", err.Error()))
		respondError(w, h.logger, http.StatusInternalServerError, "Failed to list notifications")
		return
	}

	respondJSON(w, h.logger, http.StatusOK, map[string]interface{}{
		"notifications": notifications,
		"count":         len(notifications),
	})
}
