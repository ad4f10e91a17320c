// internal/core/ports/notifier.go
package ports

import (
	"context"

	"github.com/rperset/setstock/internal/core/domain"
)

// Severity of a notification
type Severity string

const (
	SeverityInfo      Severity = "info"
	SeveritySuccess   Severity = "success"
	SeverityWarning   Severity = "warning"
	SeverityStockMove Severity = "stock_move"
	SeverityOrder     Severity = "order"
)

// Notifier is the fire-and-forget notification sink. Failures are non-fatal:
// services log them and carry on with the primary transition.
type Notifier interface {
	Notify(ctx context.Context, message string, severity Severity, target domain.Department) error
}
