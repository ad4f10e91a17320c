// internal/adapters/db/item_repository.go
package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/rperset/setstock/internal/core/domain"
	"github.com/rperset/setstock/internal/core/ports"
)

var itemColumns = []string{
	"id", "project_id", "name", "department",
	"quantity_initial", "quantity_current", "quantity_started",
	"unit", "status", "purchased", "is_bought", "is_validated",
	"surplus_action", "price", "original_price",
	"created_at", "updated_at",
}

// itemRepository implements ports.ItemRepository and ports.ListingFinder
type itemRepository struct {
	db     *Database
	logger *slog.Logger
}

var (
	_ ports.ItemRepository = (*itemRepository)(nil)
	_ ports.ListingFinder  = (*itemRepository)(nil)
)

// NewItemRepository creates a new item repository
func NewItemRepository(db *Database, logger *slog.Logger) *itemRepository {
	return &itemRepository{
		db:     db,
		logger: logger.With(slog.String("repository", "items")),
	}
}

// Save creates a new item row
func (r *itemRepository) Save(ctx context.Context, item *domain.Item) error {
	item.PrepareForStorage()

	query := `
		INSERT INTO items (
			id, project_id, name, department,
			quantity_initial, quantity_current, quantity_started,
			unit, status, purchased, is_bought, is_validated,
			surplus_action, price, original_price,
			created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
			$11, $12, $13, $14, $15, $16, $17
		)`

	_, err := r.db.Exec(ctx, query,
		item.ID, item.ProjectID, item.Name, item.Department,
		item.QuantityInitial, item.QuantityCurrent, item.QuantityStarted,
		item.Unit, item.Status, item.Purchased, item.IsBought, item.IsValidated,
		item.SurplusAction, decimalArg(item.Price), decimalArg(item.OriginalPrice),
		item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save item: %w", err)
	}

	r.logger.DebugContext(ctx, "item saved",
		slog.String("project_id", item.ProjectID),
		slog.String("item_id", item.ID))
	return nil
}

// Update rewrites an existing item row
func (r *itemRepository) Update(ctx context.Context, item *domain.Item) error {
	query := `
		UPDATE items SET
			name = $3, department = $4,
			quantity_initial = $5, quantity_current = $6, quantity_started = $7,
			unit = $8, status = $9, purchased = $10, is_bought = $11,
			is_validated = $12, surplus_action = $13, price = $14,
			original_price = $15, updated_at = $16
		WHERE project_id = $1 AND id = $2`

	item.UpdatedAt = time.Now()
	tag, err := r.db.Exec(ctx, query,
		item.ProjectID, item.ID, item.Name, item.Department,
		item.QuantityInitial, item.QuantityCurrent, item.QuantityStarted,
		item.Unit, item.Status, item.Purchased, item.IsBought,
		item.IsValidated, item.SurplusAction, decimalArg(item.Price),
		decimalArg(item.OriginalPrice), item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("item %s/%s: %w", item.ProjectID, item.ID, domain.ErrNotFound)
	}
	return nil
}

// FindByID retrieves one item; domain.ErrNotFound when missing.
func (r *itemRepository) FindByID(ctx context.Context, projectID, itemID string) (*domain.Item, error) {
	qb := squirrel.Select(itemColumns...).
		From("items").
		Where(squirrel.Eq{"project_id": projectID, "id": itemID}).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	item, err := scanItem(r.db.QueryRow(ctx, sqlQuery, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("item %s/%s: %w", projectID, itemID, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find item: %w", err)
	}
	return item, nil
}

// ListByProject returns every item of one production, newest first.
func (r *itemRepository) ListByProject(ctx context.Context, projectID string) ([]domain.Item, error) {
	qb := squirrel.Select(itemColumns...).
		From("items").
		Where(squirrel.Eq{"project_id": projectID}).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar)
	return r.queryItems(ctx, qb)
}

// ListOpenRequests returns the production's outstanding purchase requests:
// not yet received, still eligible for marketplace matching.
func (r *itemRepository) ListOpenRequests(ctx context.Context, projectID string) ([]domain.Item, error) {
	qb := squirrel.Select(itemColumns...).
		From("items").
		Where(squirrel.Eq{"project_id": projectID, "purchased": false}).
		OrderBy("created_at ASC").
		PlaceholderFormat(squirrel.Dollar)
	return r.queryItems(ctx, qb)
}

// Delete removes an item row permanently
func (r *itemRepository) Delete(ctx context.Context, projectID, itemID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM items WHERE project_id = $1 AND id = $2`, projectID, itemID)
	if err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("item %s/%s: %w", projectID, itemID, domain.ErrNotFound)
	}
	r.logger.InfoContext(ctx, "item deleted",
		slog.String("project_id", projectID),
		slog.String("item_id", itemID))
	return nil
}

// DecrementIfAvailable is the atomic conditional decrement behind every
// cross-production stock write: a single guarded UPDATE, never a blind
// read-modify-write. The started count and derived status drop together with
// the quantity.
func (r *itemRepository) DecrementIfAvailable(ctx context.Context, projectID, itemID string, qty int) error {
	if qty <= 0 {
		return domain.ValidationError{Field: "quantity", Reason: "must be positive"}
	}

	query := `
		UPDATE items SET
			quantity_current = quantity_current - $3,
			quantity_started = LEAST(quantity_started, quantity_current - $3),
			status = CASE
				WHEN quantity_current - $3 = 0 THEN 'empty'
				WHEN quantity_current - $3 < quantity_initial THEN 'used'
				ELSE status
			END,
			updated_at = now()
		WHERE project_id = $1 AND id = $2 AND quantity_current >= $3`

	tag, err := r.db.Exec(ctx, query, projectID, itemID, qty)
	if err != nil {
		return fmt.Errorf("failed to decrement stock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		// Either the row is gone or the guard rejected the decrement;
		// disambiguate for the caller.
		exists, err := r.db.Exists(ctx, `SELECT 1 FROM items WHERE project_id = $1 AND id = $2`, projectID, itemID)
		if err != nil {
			return fmt.Errorf("failed to check item existence: %w", err)
		}
		if !exists {
			return fmt.Errorf("item %s/%s: %w", projectID, itemID, domain.ErrNotFound)
		}
		return fmt.Errorf("item %s/%s: %w", projectID, itemID, domain.ErrInsufficientStock)
	}

	r.logger.DebugContext(ctx, "stock decremented",
		slog.String("project_id", projectID),
		slog.String("item_id", itemID),
		slog.Int("quantity", qty))
	return nil
}

// IncrementQuantity restores qty units and optionally re-flags the surplus
// state; transaction rejection uses it to compensate a decrement.
func (r *itemRepository) IncrementQuantity(ctx context.Context, projectID, itemID string, qty int, action domain.SurplusAction) error {
	if qty <= 0 {
		return domain.ValidationError{Field: "quantity", Reason: "must be positive"}
	}

	query := `
		UPDATE items SET
			quantity_current = quantity_current + $3,
			quantity_initial = GREATEST(quantity_initial, quantity_current + $3),
			status = CASE
				WHEN quantity_started > 0 OR quantity_current + $3 < quantity_initial THEN 'used'
				ELSE 'new'
			END,
			surplus_action = COALESCE(NULLIF($4, ''), surplus_action),
			updated_at = now()
		WHERE project_id = $1 AND id = $2`

	tag, err := r.db.Exec(ctx, query, projectID, itemID, qty, string(action))
	if err != nil {
		return fmt.Errorf("failed to restore stock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("item %s/%s: %w", projectID, itemID, domain.ErrNotFound)
	}
	return nil
}

// GlobalListings is the cross-production read: every item flagged marketplace
// or buy-back with stock remaining, joined with its production's identity.
func (r *itemRepository) GlobalListings(ctx context.Context) ([]domain.Listing, error) {
	qb := squirrel.Select(
		"i.id", "i.project_id", "i.name", "i.department",
		"i.quantity_initial", "i.quantity_current", "i.quantity_started",
		"i.unit", "i.status", "i.purchased", "i.is_bought", "i.is_validated",
		"i.surplus_action", "i.price", "i.original_price",
		"i.created_at", "i.updated_at",
		"COALESCE(NULLIF(p.production_company, ''), p.name, 'Unknown production') AS production_name",
	).
		From("items i").
		Join("projects p ON p.id = i.project_id").
		Where(squirrel.Eq{"i.surplus_action": []domain.SurplusAction{domain.SurplusMarketplace, domain.SurplusBuyBack}}).
		Where(squirrel.Gt{"i.quantity_current": 0}).
		OrderBy("i.id ASC").
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.db.Query(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query listings: %w", err)
	}
	defer rows.Close()

	var listings []domain.Listing
	for rows.Next() {
		var l domain.Listing
		var price, original decimal.NullDecimal
		err := rows.Scan(
			&l.ID, &l.ProjectID, &l.Name, &l.Department,
			&l.QuantityInitial, &l.QuantityCurrent, &l.QuantityStarted,
			&l.Unit, &l.Status, &l.Purchased, &l.IsBought, &l.IsValidated,
			&l.SurplusAction, &price, &original,
			&l.CreatedAt, &l.UpdatedAt,
			&l.ProductionName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan listing: %w", err)
		}
		l.Price = nullableDecimal(price)
		l.OriginalPrice = nullableDecimal(original)
		listings = append(listings, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}
	return listings, nil
}

func (r *itemRepository) queryItems(ctx context.Context, qb squirrel.SelectBuilder) ([]domain.Item, error) {
	sqlQuery, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.db.Query(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query items: %w", err)
	}
	defer rows.Close()

	var items []domain.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}
	return items, nil
}

func scanItem(row pgx.Row) (*domain.Item, error) {
	item := &domain.Item{}
	var price, original decimal.NullDecimal

	err := row.Scan(
		&item.ID, &item.ProjectID, &item.Name, &item.Department,
		&item.QuantityInitial, &item.QuantityCurrent, &item.QuantityStarted,
		&item.Unit, &item.Status, &item.Purchased, &item.IsBought, &item.IsValidated,
		&item.SurplusAction, &price, &original,
		&item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	item.Price = nullableDecimal(price)
	item.OriginalPrice = nullableDecimal(original)
	return item, nil
}

func decimalArg(d *decimal.Decimal) interface{} {
	if d == nil {
		return nil
	}
	return *d
}

func nullableDecimal(d decimal.NullDecimal) *decimal.Decimal {
	if !d.Valid {
		return nil
	}
	v := d.Decimal
	return &v
}
