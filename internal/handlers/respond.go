// internal/handlers/respond.go
package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/rperset/setstock/internal/core/domain"
)

func respondJSON(w http.ResponseWriter, logger *slog.Logger, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode JSON response",
			slog.String("error", err.Error()))
	}
}

func respondError(w http.ResponseWriter, logger *slog.Logger, status int, message string) {
	respondJSON(w, logger, status, map[string]string{"error": message})
}

// respondDomainError maps domain error types onto HTTP status codes. Unknown
// errors become a generic 500 so internals never leak to clients.
func respondDomainError(w http.ResponseWriter, logger *slog.Logger, err error) {
	var validationErr domain.ValidationError
	var authzErr domain.AuthorizationError
	var partialErr *domain.PartialWriteError

	switch {
	case errors.Is(err, domain.ErrNotFound):
		respondError(w, logger, http.StatusNotFound, "Not found")
	case errors.As(err, &validationErr):
		respondError(w, logger, http.StatusBadRequest, validationErr.Error())
	case errors.As(err, &authzErr):
		respondError(w, logger, http.StatusForbidden, authzErr.Error())
	case errors.Is(err, domain.ErrInsufficientStock):
		respondError(w, logger, http.StatusConflict, "Insufficient stock")
	case errors.As(err, &partialErr):
		// The write partially committed; the client must not retry blindly.
		respondError(w, logger, http.StatusInternalServerError, "Operation partially completed, contact support")
	default:
		respondError(w, logger, http.StatusInternalServerError, "Internal server error")
	}
}
