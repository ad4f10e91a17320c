// internal/adapters/db/project_repository.go
package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"

	"github.com/rperset/setstock/internal/core/domain"
	"github.com/rperset/setstock/internal/core/ports"
)

// projectRepository implements ports.ProjectRepository
type projectRepository struct {
	db     *Database
	logger *slog.Logger
}

var _ ports.ProjectRepository = (*projectRepository)(nil)

// NewProjectRepository creates a new project repository
func NewProjectRepository(db *Database, logger *slog.Logger) *projectRepository {
	return &projectRepository{
		db:     db,
		logger: logger.With(slog.String("repository", "projects")),
	}
}

// FindByID resolves a production's identity and settings.
func (r *projectRepository) FindByID(ctx context.Context, projectID string) (*domain.Project, error) {
	query := `
		SELECT id, name, production_company, require_order_validation
		FROM projects
		WHERE id = $1`

	p := &domain.Project{}
	var company sql.NullString
	err := r.db.QueryRow(ctx, query, projectID).Scan(&p.ID, &p.Name, &company, &p.RequireOrderValidation)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("project %s: %w", projectID, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}
	p.ProductionCompany = company.String
	return p, nil
}

// Save upserts a production row; the seeder uses it.
func (r *projectRepository) Save(ctx context.Context, p *domain.Project) error {
	query := `
		INSERT INTO projects (id, name, production_company, require_order_validation)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			production_company = EXCLUDED.production_company,
			require_order_validation = EXCLUDED.require_order_validation`

	if _, err := r.db.Exec(ctx, query, p.ID, p.Name, p.ProductionCompany, p.RequireOrderValidation); err != nil {
		return fmt.Errorf("failed to save project: %w", err)
	}
	r.logger.DebugContext(ctx, "project saved", slog.String("project_id", p.ID))
	return nil
}
