// internal/adapters/db/buyback_repository.go
package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/rperset/setstock/internal/core/domain"
	"github.com/rperset/setstock/internal/core/ports"
)

// buyBackRepository implements ports.BuyBackRepository
type buyBackRepository struct {
	db     *Database
	logger *slog.Logger
}

var _ ports.BuyBackRepository = (*buyBackRepository)(nil)

// NewBuyBackRepository creates a new buy-back board repository
func NewBuyBackRepository(db *Database, logger *slog.Logger) *buyBackRepository {
	return &buyBackRepository{
		db:     db,
		logger: logger.With(slog.String("repository", "buyback")),
	}
}

// Save creates a new board entry
func (r *buyBackRepository) Save(ctx context.Context, item *domain.BuyBackItem) error {
	query := `
		INSERT INTO buyback_items (
			id, project_id, name, description, price, original_price, photo,
			seller_department, status, reserved_by, reserved_by_name,
			reserved_by_user_id, date
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13
		)`

	_, err := r.db.Exec(ctx, query,
		item.ID, item.ProjectID, item.Name, item.Description,
		item.Price, decimalArg(item.OriginalPrice), item.Photo,
		item.SellerDepartment, item.Status, departmentArg(item.ReservedBy),
		item.ReservedByName, item.ReservedByUserID, item.Date,
	)
	if err != nil {
		return fmt.Errorf("failed to save board entry: %w", err)
	}

	r.logger.DebugContext(ctx, "board entry saved",
		slog.String("project_id", item.ProjectID),
		slog.String("item_id", item.ID))
	return nil
}

// Update rewrites an existing board entry
func (r *buyBackRepository) Update(ctx context.Context, item *domain.BuyBackItem) error {
	query := `
		UPDATE buyback_items SET
			name = $3, description = $4, price = $5, original_price = $6,
			photo = $7, seller_department = $8, status = $9,
			reserved_by = $10, reserved_by_name = $11, reserved_by_user_id = $12
		WHERE project_id = $1 AND id = $2`

	tag, err := r.db.Exec(ctx, query,
		item.ProjectID, item.ID, item.Name, item.Description,
		item.Price, decimalArg(item.OriginalPrice), item.Photo,
		item.SellerDepartment, item.Status, departmentArg(item.ReservedBy),
		item.ReservedByName, item.ReservedByUserID,
	)
	if err != nil {
		return fmt.Errorf("failed to update board entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("board entry %s/%s: %w", item.ProjectID, item.ID, domain.ErrNotFound)
	}
	return nil
}

// FindByID retrieves one board entry; domain.ErrNotFound when missing.
func (r *buyBackRepository) FindByID(ctx context.Context, projectID, itemID string) (*domain.BuyBackItem, error) {
	query := `
		SELECT id, project_id, name, description, price, original_price, photo,
			seller_department, status, reserved_by, reserved_by_name,
			reserved_by_user_id, date
		FROM buyback_items
		WHERE project_id = $1 AND id = $2`

	item, err := scanBuyBackItem(r.db.QueryRow(ctx, query, projectID, itemID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("board entry %s/%s: %w", projectID, itemID, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find board entry: %w", err)
	}
	return item, nil
}

// ListByProject returns the project's board, newest first.
func (r *buyBackRepository) ListByProject(ctx context.Context, projectID string) ([]domain.BuyBackItem, error) {
	query := `
		SELECT id, project_id, name, description, price, original_price, photo,
			seller_department, status, reserved_by, reserved_by_name,
			reserved_by_user_id, date
		FROM buyback_items
		WHERE project_id = $1
		ORDER BY date DESC, id ASC`

	rows, err := r.db.Query(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to query board entries: %w", err)
	}
	defer rows.Close()

	var items []domain.BuyBackItem
	for rows.Next() {
		item, err := scanBuyBackItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan board entry: %w", err)
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}
	return items, nil
}

// Delete removes a board entry permanently
func (r *buyBackRepository) Delete(ctx context.Context, projectID, itemID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM buyback_items WHERE project_id = $1 AND id = $2`, projectID, itemID)
	if err != nil {
		return fmt.Errorf("failed to delete board entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("board entry %s/%s: %w", projectID, itemID, domain.ErrNotFound)
	}
	r.logger.InfoContext(ctx, "board entry deleted",
		slog.String("project_id", projectID),
		slog.String("item_id", itemID))
	return nil
}

func scanBuyBackItem(row pgx.Row) (*domain.BuyBackItem, error) {
	item := &domain.BuyBackItem{}
	var original decimal.NullDecimal
	var description, photo, reservedBy, reservedByName, reservedByUserID sql.NullString

	err := row.Scan(
		&item.ID, &item.ProjectID, &item.Name, &description,
		&item.Price, &original, &photo,
		&item.SellerDepartment, &item.Status, &reservedBy,
		&reservedByName, &reservedByUserID, &item.Date,
	)
	if err != nil {
		return nil, err
	}

	item.Description = description.String
	item.Photo = photo.String
	item.ReservedByName = reservedByName.String
	item.ReservedByUserID = reservedByUserID.String
	item.OriginalPrice = nullableDecimal(original)
	if reservedBy.Valid && reservedBy.String != "" {
		dept := domain.Department(reservedBy.String)
		item.ReservedBy = &dept
	}
	return item, nil
}

func departmentArg(d *domain.Department) interface{} {
	if d == nil {
		return nil
	}
	return string(*d)
}
