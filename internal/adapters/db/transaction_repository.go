// internal/adapters/db/transaction_repository.go
package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/rperset/setstock/internal/core/domain"
	"github.com/rperset/setstock/internal/core/ports"
)

// transactionRepository implements ports.TransactionLedger. Line snapshots
// are stored as a jsonb column: a transaction is a receipt, not a live
// reference, so there is nothing relational to normalize.
type transactionRepository struct {
	db     *Database
	logger *slog.Logger
}

var _ ports.TransactionLedger = (*transactionRepository)(nil)

// NewTransactionRepository creates a new ledger repository
func NewTransactionRepository(db *Database, logger *slog.Logger) *transactionRepository {
	return &transactionRepository{
		db:     db,
		logger: logger.With(slog.String("repository", "transactions")),
	}
}

// Append inserts a new ledger record. Records are never updated in place
// except for their status.
func (r *transactionRepository) Append(ctx context.Context, tx *domain.Transaction) error {
	lines, err := json.Marshal(tx.Items)
	if err != nil {
		return fmt.Errorf("failed to marshal transaction lines: %w", err)
	}

	query := `
		INSERT INTO transactions (
			id, seller_id, seller_name, buyer_id, buyer_name,
			items, total_amount, platform_fee, status, created_at, invoiced_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11
		)`

	_, err = r.db.Exec(ctx, query,
		tx.ID, tx.SellerID, tx.SellerName, tx.BuyerID, tx.BuyerName,
		lines, tx.TotalAmount, tx.PlatformFee, tx.Status, tx.CreatedAt, tx.InvoicedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to append transaction: %w", err)
	}

	r.logger.DebugContext(ctx, "transaction appended",
		slog.String("transaction_id", tx.ID.String()),
		slog.String("seller_id", tx.SellerID),
		slog.String("buyer_id", tx.BuyerID))
	return nil
}

// FindByID retrieves one ledger record; domain.ErrNotFound when missing.
func (r *transactionRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Transaction, error) {
	query := `
		SELECT id, seller_id, seller_name, buyer_id, buyer_name,
			items, total_amount, platform_fee, status, created_at, invoiced_at
		FROM transactions
		WHERE id = $1`

	tx, err := scanTransaction(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("transaction %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find transaction: %w", err)
	}
	return tx, nil
}

// ListForProject returns every record the production sides on, as buyer or
// seller, newest first.
func (r *transactionRepository) ListForProject(ctx context.Context, projectID string) ([]domain.Transaction, error) {
	query := `
		SELECT id, seller_id, seller_name, buyer_id, buyer_name,
			items, total_amount, platform_fee, status, created_at, invoiced_at
		FROM transactions
		WHERE seller_id = $1 OR buyer_id = $1
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	var txs []domain.Transaction
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		txs = append(txs, *tx)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}
	return txs, nil
}

// UpdateStatus moves a record through PENDING -> VALIDATED / CANCELLED.
// Validation stamps invoiced_at.
func (r *transactionRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.TransactionStatus) error {
	query := `
		UPDATE transactions SET
			status = $2,
			invoiced_at = CASE WHEN $2 = 'validated' THEN now() ELSE invoiced_at END
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id, status)
	if err != nil {
		return fmt.Errorf("failed to update transaction status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("transaction %s: %w", id, domain.ErrNotFound)
	}

	r.logger.InfoContext(ctx, "transaction status updated",
		slog.String("transaction_id", id.String()),
		slog.String("status", string(status)))
	return nil
}

func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	tx := &domain.Transaction{}
	var lines []byte
	var invoicedAt *time.Time

	err := row.Scan(
		&tx.ID, &tx.SellerID, &tx.SellerName, &tx.BuyerID, &tx.BuyerName,
		&lines, &tx.TotalAmount, &tx.PlatformFee, &tx.Status, &tx.CreatedAt, &invoicedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(lines, &tx.Items); err != nil {
		return nil, fmt.Errorf("failed to unmarshal transaction lines: %w", err)
	}
	tx.InvoicedAt = invoicedAt
	return tx, nil
}
