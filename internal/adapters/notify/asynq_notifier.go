// internal/adapters/notify/asynq_notifier.go
package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"

	"github.com/rperset/setstock/internal/core/domain"
	"github.com/rperset/setstock/internal/core/ports"
	"github.com/rperset/setstock/internal/workers"
)

// AsynqNotifier queues notifications for asynchronous delivery. Services
// treat a failed enqueue as non-fatal.
type AsynqNotifier struct {
	client *asynq.Client
	logger *slog.Logger
}

var _ ports.Notifier = (*AsynqNotifier)(nil)

// NewAsynqNotifier creates a new asynq-backed notifier
func NewAsynqNotifier(client *asynq.Client, logger *slog.Logger) *AsynqNotifier {
	return &AsynqNotifier{
		client: client,
		logger: logger.With(slog.String("component", "notifier")),
	}
}

// Notify enqueues a notification dispatch task
func (n *AsynqNotifier) Notify(ctx context.Context, message string, severity ports.Severity, target domain.Department) error {
	payload, err := json.Marshal(workers.NotificationPayload{
		Message:  message,
		Severity: string(severity),
		Target:   string(target),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	task := asynq.NewTask(workers.TypeNotificationDispatch, payload)
	info, err := n.client.EnqueueContext(ctx, task,
		asynq.Queue("default"),
		asynq.MaxRetry(3),
		asynq.Timeout(30*time.Second),
	)
	if err != nil {
		return fmt.Errorf("failed to enqueue notification: %w", err)
	}

	n.logger.DebugContext(ctx, "notification enqueued",
		slog.String("task_id", info.ID),
		slog.String("target", string(target)))
	return nil
}
