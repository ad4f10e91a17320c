// internal/workers/tasks.go
package workers

// Task type names shared between the enqueuing adapters and the worker mux
const (
	TypeNotificationDispatch = "notification:dispatch"
	TypeReapListings         = "listings:reap"
	TypeBoardSweep           = "buyback:sweep"
)

// NotificationPayload is the wire form of a queued notification task
type NotificationPayload struct {
	Message  string `json:"message"`
	Severity string `json:"severity"`
	Target   string `json:"target"`
}
