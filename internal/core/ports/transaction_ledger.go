// internal/core/ports/transaction_ledger.go
package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/rperset/setstock/internal/core/domain"
)

// TransactionLedger is the append-only record of cross-production purchases.
// The core emits records to it; it does not own the storage.
type TransactionLedger interface {
	Append(ctx context.Context, tx *domain.Transaction) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Transaction, error)
	ListForProject(ctx context.Context, projectID string) ([]domain.Transaction, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.TransactionStatus) error
}
