// internal/adapters/redis/notifications.go
package redis_a

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// notificationCap bounds each department's feed; older entries fall off.
const notificationCap = 100

// Notification is an in-app feed entry for one department.
type Notification struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	Severity  string    `json:"severity"`
	Target    string    `json:"target"`
	CreatedAt time.Time `json:"created_at"`
}

// NotificationStore keeps per-department notification feeds as capped redis
// lists. The worker pushes, the API reads.
type NotificationStore struct {
	client *redis.Client
	logger *slog.Logger
}

// NewNotificationStore creates a new notification store
func NewNotificationStore(client *redis.Client, logger *slog.Logger) *NotificationStore {
	return &NotificationStore{
		client: client,
		logger: logger.With(slog.String("component", "notifications")),
	}
}

// Push prepends a notification to its department's feed
func (s *NotificationStore) Push(ctx context.Context, n Notification) error {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now()
	}

	data, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("marshal error: %w", err)
	}

	key := notificationKey(n.Target)
	pipe := s.client.TxPipeline()
	pipe.LPush(ctx, key, data)
	pipe.LTrim(ctx, key, 0, notificationCap-1)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("redis pipeline error: %w", err)
	}

	s.logger.DebugContext(ctx, "notification stored",
		slog.String("target", n.Target),
		slog.String("severity", n.Severity))
	return nil
}

// List returns the newest notifications for a department, most recent first.
func (s *NotificationStore) List(ctx context.Context, target string, limit int) ([]Notification, error) {
	if limit <= 0 || limit > notificationCap {
		limit = notificationCap
	}

	raw, err := s.client.LRange(ctx, notificationKey(target), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("redis lrange error: %w", err)
	}

	notifications := make([]Notification, 0, len(raw))
	for _, item := range raw {
		var n Notification
		if err := json.Unmarshal([]byte(item), &n); err != nil {
			s.logger.WarnContext(ctx, "skipping malformed notification",
				slog.String("error", err.Error()))
			continue
		}
		notifications = append(notifications, n)
	}
	return notifications, nil
}

func notificationKey(target string) string {
	return "notifications:" + target
}
