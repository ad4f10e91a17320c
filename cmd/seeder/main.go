// cmd/seeder/main.go
//
// Seeds a development database with a handful of productions, department
// stock, and buy-back board entries so the marketplace has something to
// match against.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/rperset/setstock/internal/core/domain"
)

type seedProject struct {
	ID                string
	Name              string
	ProductionCompany string
	RequireValidation bool
}

type seedItem struct {
	ProjectID     string
	Name          string
	Department    domain.Department
	Initial       int
	Current       int
	Started       int
	Unit          string
	SurplusAction domain.SurplusAction
	Price         string // empty means no price set
	OriginalPrice string
}

type seedBuyBack struct {
	ProjectID        string
	Name             string
	Description      string
	Price            string
	OriginalPrice    string
	SellerDepartment domain.Department
}

var projects = []seedProject{
	{ID: "midnight-harbor", Name: "Midnight Harbor", ProductionCompany: "Lanternlight Pictures", RequireValidation: true},
	{ID: "copper-sky", Name: "Copper Sky", ProductionCompany: "Northbank Studios"},
	{ID: "the-long-take", Name: "The Long Take", ProductionCompany: "Lanternlight Pictures"},
}

var items = []seedItem{
	// Consumables still in use
	{ProjectID: "midnight-harbor", Name: "Gaffer tape, black 2in", Department: domain.DepartmentGrip,
		Initial: 48, Current: 31, Started: 2, Unit: "roll"},
	{ProjectID: "midnight-harbor", Name: "Haze fluid", Department: domain.DepartmentLighting,
		Initial: 12, Current: 12, Unit: "bottle"},
	{ProjectID: "midnight-harbor", Name: "Sandbags 15lb", Department: domain.DepartmentGrip,
		Initial: 40, Current: 40, Unit: "bag"},

	// Surplus already flagged for the marketplace
	{ProjectID: "copper-sky", Name: "ND filter set 4x5.65", Department: domain.DepartmentCamera,
		Initial: 3, Current: 3, Unit: "set",
		SurplusAction: domain.SurplusMarketplace, Price: "210.00", OriginalPrice: "420.00"},
	{ProjectID: "copper-sky", Name: "LED tube lights", Department: domain.DepartmentLighting,
		Initial: 16, Current: 8, Unit: "tube",
		SurplusAction: domain.SurplusMarketplace, Price: "55.00", OriginalPrice: "110.00"},
	{ProjectID: "the-long-take", Name: "Apple boxes, full", Department: domain.DepartmentGrip,
		Initial: 10, Current: 10, Unit: "box",
		SurplusAction: domain.SurplusMarketplace, Price: "22.50", OriginalPrice: "45.00"},

	// Buy-back flagged stock sold under the platform's name
	{ProjectID: "the-long-take", Name: "Foam core 4x8", Department: domain.DepartmentSetDesign,
		Initial: 30, Current: 14, Unit: "sheet",
		SurplusAction: domain.SurplusBuyBack, Price: "3.00", OriginalPrice: "12.00"},

	// Donation and short-film dispositions, off the listing set
	{ProjectID: "midnight-harbor", Name: "Set dressing fabric", Department: domain.DepartmentSetDesign,
		Initial: 25, Current: 25, Unit: "yard",
		SurplusAction: domain.SurplusDonation, Price: "0.00", OriginalPrice: "18.00"},
	{ProjectID: "copper-sky", Name: "Practical bulbs assorted", Department: domain.DepartmentSetOps,
		Initial: 60, Current: 45, Unit: "bulb",
		SurplusAction: domain.SurplusShortFilm, Price: "0.75", OriginalPrice: "7.50"},
}

var buyBackItems = []seedBuyBack{
	{ProjectID: "midnight-harbor", Name: "Director's chair, worn",
		Description: "Canvas seat, one armrest re-glued.", Price: "15.00", OriginalPrice: "60.00",
		SellerDepartment: domain.DepartmentSetOps},
	{ProjectID: "copper-sky", Name: "C-stand with arm",
		Description: "Surface rust on the legs, knuckle is fine.", Price: "40.00", OriginalPrice: "160.00",
		SellerDepartment: domain.DepartmentGrip},
}

func main() {
	var (
		logLevel = flag.String("log-level", "info", "Log level (debug, info, warn, error)")
		dryRun   = flag.Bool("dry-run", false, "Preview changes without modifying database")
		wipe     = flag.Bool("wipe", false, "Delete existing rows before seeding")
	)
	flag.Parse()

	var slogLevel slog.Level
	switch *logLevel {
	case "debug":
		slogLevel = slog.LevelDebug
	case "warn":
		slogLevel = slog.LevelWarn
	case "error":
		slogLevel = slog.LevelError
	default:
		slogLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slogLevel}))
	slog.SetDefault(logger)

	dbURL := fmt.Sprintf("postgresql://%s:%s@%s:%s/%s?sslmode=%s",
		getEnv("DB_USER", "setstock"),
		getEnv("DB_PASSWORD", "setstock_dev_2026"),
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_PORT", "5432"),
		getEnv("DB_NAME", "setstock"),
		getEnv("DB_SSL_MODE", "disable"),
	)

	if *dryRun {
		logger.Info("dry run, nothing will be written",
			slog.Int("projects", len(projects)),
			slog.Int("items", len(items)),
			slog.Int("buyback_items", len(buyBackItems)))
		return
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		logger.Error("failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	if err := seed(ctx, pool, *wipe, logger); err != nil {
		logger.Error("seed failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("seed completed",
		slog.Int("projects", len(projects)),
		slog.Int("items", len(items)),
		slog.Int("buyback_items", len(buyBackItems)))
}

func seed(ctx context.Context, pool *pgxpool.Pool, wipe bool, logger *slog.Logger) error {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if wipe {
		for _, table := range []string{"transactions", "buyback_items", "items", "projects"} {
			if _, err := tx.Exec(ctx, "DELETE FROM "+table); err != nil {
				return fmt.Errorf("failed to wipe %s: %w", table, err)
			}
		}
		logger.Info("existing rows wiped")
	}

	batch := &pgx.Batch{}

	for _, p := range projects {
		batch.Queue(`
			INSERT INTO projects (id, name, production_company, require_order_validation)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (id) DO NOTHING`,
			p.ID, p.Name, p.ProductionCompany, p.RequireValidation)
	}

	for _, it := range items {
		status := domain.StatusNew
		if it.Current == 0 {
			status = domain.StatusEmpty
		} else if it.Current < it.Initial {
			status = domain.StatusUsed
		}
		action := it.SurplusAction
		if action == "" {
			action = domain.SurplusNone
		}
		batch.Queue(`
			INSERT INTO items (
				id, project_id, name, department,
				quantity_initial, quantity_current, quantity_started,
				unit, status, purchased, surplus_action, price, original_price
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, TRUE, $10, $11, $12)
			ON CONFLICT (project_id, id) DO NOTHING`,
			uuid.NewString(), it.ProjectID, it.Name, it.Department,
			it.Initial, it.Current, it.Started,
			it.Unit, status, action, nullDecimal(it.Price), nullDecimal(it.OriginalPrice))
	}

	for _, b := range buyBackItems {
		batch.Queue(`
			INSERT INTO buyback_items (
				id, project_id, name, description, price, original_price,
				seller_department, status
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			ON CONFLICT (project_id, id) DO NOTHING`,
			uuid.NewString(), b.ProjectID, b.Name, b.Description,
			mustDecimal(b.Price), nullDecimal(b.OriginalPrice),
			b.SellerDepartment, domain.BuyBackAvailable)
	}

	br := tx.SendBatch(ctx, batch)
	for i := 0; i < batch.Len(); i++ {
		if _, err := br.Exec(); err != nil {
			br.Close()
			return fmt.Errorf("failed to insert seed row: %w", err)
		}
	}
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to close batch results: %w", err)
	}

	return tx.Commit(ctx)
}

func mustDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(fmt.Sprintf("bad seed price %q: %v", s, err))
	}
	return d
}

func nullDecimal(s string) *decimal.Decimal {
	if s == "" {
		return nil
	}
	d := mustDecimal(s)
	return &d
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
