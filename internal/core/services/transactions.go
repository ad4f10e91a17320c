// internal/core/services/transactions.go
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/rperset/setstock/internal/core/domain"
	"github.com/rperset/setstock/internal/core/ports"
)

// TransactionService settles pending cross-production purchases: validation
// into an invoice, or rejection with a compensating stock restore.
type TransactionService struct {
	ledger ports.TransactionLedger
	items  ports.ItemRepository
	logger *slog.Logger
}

var _ ports.TransactionService = (*TransactionService)(nil)

// NewTransactionService creates a new transaction service
func NewTransactionService(ledger ports.TransactionLedger, items ports.ItemRepository, logger *slog.Logger) *TransactionService {
	return &TransactionService{
		ledger: ledger,
		items:  items,
		logger: logger.With(slog.String("service", "transactions")),
	}
}

// Validate settles a pending transaction: PENDING to VALIDATED. Only the
// selling production (or an admin) may validate.
func (s *TransactionService) Validate(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.Transaction, error) {
	tx, err := s.ledger.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load transaction: %w", err)
	}
	if !actor.IsAdmin && actor.ProjectID != tx.SellerID {
		return nil, domain.AuthorizationError{Actor: actor.Department, Action: "validate this transaction"}
	}
	if tx.Status != domain.TransactionPending {
		return nil, domain.ValidationError{
			Field:  "status",
			Reason: fmt.Sprintf("only pending transactions can be validated, got %s", tx.Status),
		}
	}

	if err := s.ledger.UpdateStatus(ctx, id, domain.TransactionValidated); err != nil {
		return nil, fmt.Errorf("failed to update transaction status: %w", err)
	}
	tx.Status = domain.TransactionValidated
	now := time.Now()
	tx.InvoicedAt = &now

	s.logger.InfoContext(ctx, "validated transaction",
		slog.String("transaction_id", id.String()),
		slog.String("total", tx.TotalAmount.String()))
	return tx, nil
}

// Reject cancels a pending transaction and compensates the stock decrements:
// each line's quantity is restored on the seller's item, which is re-flagged
// released_to_prod so production redecides its disposition. Per-line restore
// failures do not abort the cancellation; each is logged as an
// inconsistent-state event and the batch is reported once via
// *domain.PartialWriteError.
func (s *TransactionService) Reject(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.Transaction, error) {
	tx, err := s.ledger.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load transaction: %w", err)
	}
	if !actor.IsAdmin && actor.ProjectID != tx.SellerID && actor.ProjectID != tx.BuyerID {
		return nil, domain.AuthorizationError{Actor: actor.Department, Action: "reject this transaction"}
	}
	if tx.Status != domain.TransactionPending {
		return nil, domain.ValidationError{
			Field:  "status",
			Reason: fmt.Sprintf("only pending transactions can be rejected, got %s", tx.Status),
		}
	}

	if err := s.ledger.UpdateStatus(ctx, id, domain.TransactionCancelled); err != nil {
		return nil, fmt.Errorf("failed to update transaction status: %w", err)
	}
	tx.Status = domain.TransactionCancelled

	var completed []string
	var restoreErr error
	for _, line := range tx.Items {
		err := s.items.IncrementQuantity(ctx, tx.SellerID, line.ItemID, line.Quantity, domain.SurplusReleasedToPro)
		if err != nil {
			s.logger.ErrorContext(ctx, "stock restore left inconsistent state",
				slog.String("transaction_id", id.String()),
				slog.String("item_id", line.ItemID),
				slog.Int("quantity", line.Quantity),
				slog.String("error", err.Error()))
			restoreErr = err
			continue
		}
		completed = append(completed, "restore:"+line.ItemID)
	}

	s.logger.InfoContext(ctx, "rejected transaction",
		slog.String("transaction_id", id.String()),
		slog.Int("restored_lines", len(completed)))

	if restoreErr != nil {
		return tx, &domain.PartialWriteError{
			Op:        "reject_transaction",
			Completed: append([]string{"cancel_status"}, completed...),
			Err:       restoreErr,
		}
	}
	return tx, nil
}

// ListForProject returns every transaction the production sides on, as buyer
// or seller.
func (s *TransactionService) ListForProject(ctx context.Context, projectID string) ([]domain.Transaction, error) {
	txs, err := s.ledger.ListForProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return txs, nil
}
