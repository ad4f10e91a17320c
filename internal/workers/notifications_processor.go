// internal/workers/notification_processor.go
package workers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/hibiken/asynq"

	redis_a "github.com/rperset/setstock/internal/adapters/redis_adapter"
)

// NotificationProcessor delivers queued notifications into the per-department
// in-app feeds.
type NotificationProcessor struct {
	store  *redis_a.NotificationStore
	logger *slog.Logger
}

// NewNotificationProcessor creates a new notification processor
func NewNotificationProcessor(store *redis_a.NotificationStore, logger *slog.Logger) *NotificationProcessor {
	return &NotificationProcessor{
		store:  store,
		logger: logger.With(slog.String("processor", "notification")),
	}
}

// HandleDispatch stores a queued notification in its target department's feed
func (p *NotificationProcessor) HandleDispatch(ctx context.Context, t *asynq.Task) error {
	var payload NotificationPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	err := p.store.Push(ctx, redis_a.Notification{
		Message:  payload.Message,
		Severity: payload.Severity,
		Target:   payload.Target,
	})
	if err != nil {
		return fmt.Errorf("failed to store notification: %w", err)
	}

	p.logger.InfoContext(ctx, "notification delivered",
		slog.String("target", payload.Target),
		slog.String("severity", payload.Severity))
	return nil
}
