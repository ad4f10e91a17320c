// internal/workers/cleanup_processor.go
package workers

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hibiken/asynq"

	"github.com/rperset/setstock/internal/adapters/db"
	"github.com/rperset/setstock/internal/core/ports"
	"github.com/rperset/setstock/internal/core/services"
)

// CleanupProcessor runs periodic housekeeping over the marketplace data
type CleanupProcessor struct {
	db     *db.Database
	cache  ports.CacheRepository
	logger *slog.Logger
}

// NewCleanupProcessor creates a new cleanup processor
func NewCleanupProcessor(database *db.Database, cache ports.CacheRepository, logger *slog.Logger) *CleanupProcessor {
	return &CleanupProcessor{
		db:     database,
		cache:  cache,
		logger: logger.With(slog.String("processor", "cleanup")),
	}
}

// ReapSoldOutListings returns sold-out marketplace and buy-back items to
// normal stock state so they drop off the global listing set, then drops the
// cached snapshot.
func (p *CleanupProcessor) ReapSoldOutListings(ctx context.Context, t *asynq.Task) error {
	query := `
		UPDATE items SET surplus_action = 'none', updated_at = now()
		WHERE surplus_action IN ('marketplace', 'buyback') AND quantity_current = 0`

	result, err := p.db.Exec(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to reap sold-out listings: %w", err)
	}

	if result.RowsAffected() > 0 {
		if err := p.cache.Delete(ctx, services.ListingsCacheKey); err != nil {
			p.logger.WarnContext(ctx, "failed to invalidate listing cache",
				slog.String("error", err.Error()))
		}
	}

	p.logger.InfoContext(ctx, "sold-out listings reaped",
		slog.Int64("rows_updated", result.RowsAffected()))
	return nil
}

// SweepBoard removes buy-back board entries sold more than 60 days ago
func (p *CleanupProcessor) SweepBoard(ctx context.Context, t *asynq.Task) error {
	query := `DELETE FROM buyback_items WHERE status = 'sold' AND date < NOW() - INTERVAL '60 days'`

	result, err := p.db.Exec(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to sweep buy-back board: %w", err)
	}

	p.logger.InfoContext(ctx, "buy-back board swept",
		slog.Int64("rows_deleted", result.RowsAffected()))
	return nil
}
