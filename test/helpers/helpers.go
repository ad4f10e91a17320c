// test/helpers/helpers.go
package helpers

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/rperset/setstock/internal/adapters/db"
	"github.com/rperset/setstock/internal/core/domain"
	"github.com/rperset/setstock/internal/pkg/config"
	"github.com/rperset/setstock/internal/pkg/logger"
)

// TestDB represents a test database instance
type TestDB struct {
	PgxPool  *pgxpool.Pool
	Database *db.Database
	Resource *dockertest.Resource
	Pool     *dockertest.Pool
	Config   *db.Config
}

// TestRedis represents a test Redis instance
type TestRedis struct {
	Client *redis.Client
	Server *miniredis.Miniredis
}

// TestSlogger returns a plain slog logger for tests
func TestSlogger() *slog.Logger {
	level := slog.LevelError
	if testing.Verbose() {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}

// TestLogger returns the application's context-aware logger for tests
func TestLogger() *logger.Logger {
	if testing.Verbose() {
		return logger.SetupLogger("debug", "text")
	}
	return logger.SetupLogger("error", "text")
}

// SetupTestDB creates a PostgreSQL container for integration tests
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	pool, err := dockertest.NewPool("")
	require.NoError(t, err, "Could not connect to Docker")

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_USER=test",
			"POSTGRES_PASSWORD=test",
			"POSTGRES_DB=test_setstock",
			"listen_addresses = '*'",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	require.NoError(t, err, "Could not start PostgreSQL container")

	t.Cleanup(func() {
		if err := pool.Purge(resource); err != nil {
			t.Logf("Could not purge resource: %s", err)
		}
	})

	dbConfig := &db.Config{
		Host:               "localhost",
		Port:               resource.GetPort("5432/tcp"),
		User:               "test",
		Password:           "test",
		Database:           "test_setstock",
		SSLMode:            "disable",
		MaxConnections:     5,
		MinConnections:     1,
		MaxConnLifetime:    time.Hour,
		MaxConnIdleTime:    time.Minute * 30,
		HealthCheckPeriod:  time.Minute,
		ConnectTimeout:     time.Second * 10,
		StatementCacheMode: "describe",
		EnableQueryLogging: testing.Verbose(),
	}

	var database *db.Database
	err = pool.Retry(func() error {
		ctx := context.Background()
		var err error
		database, err = db.NewDatabase(ctx, dbConfig, TestSlogger())
		if err != nil {
			return err
		}
		return database.Ping(ctx)
	})
	require.NoError(t, err, "Could not connect to PostgreSQL")

	ctx := context.Background()
	migrationConfig := &db.MigrationConfig{
		DatabaseURL: fmt.Sprintf("postgresql://%s:%s@%s:%s/%s?sslmode=%s",
			dbConfig.User, dbConfig.Password, dbConfig.Host, dbConfig.Port,
			dbConfig.Database, dbConfig.SSLMode),
		SourcePath: "../../migrations",
		TableName:  "schema_migrations",
		SchemaName: "public",
	}

	err = db.RunMigrationsWithRetry(ctx, migrationConfig, TestSlogger(), 3)
	require.NoError(t, err, "Could not run migrations")

	return &TestDB{
		PgxPool:  database.Pool(),
		Database: database,
		Resource: resource,
		Pool:     pool,
		Config:   dbConfig,
	}
}

// SetupTestRedis creates a mock Redis instance for testing
func SetupTestRedis(t *testing.T) *TestRedis {
	t.Helper()

	mr := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	t.Cleanup(func() {
		client.Close()
		mr.Close()
	})

	return &TestRedis{
		Client: client,
		Server: mr,
	}
}

// LoadTestConfig returns a test configuration
func LoadTestConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{
			Name:        "test-api",
			Environment: "test",
			Version:     "test",
			LogLevel:    "debug",
			LogFormat:   "text",
			Debug:       true,
		},
		Database: config.DatabaseConfig{
			Host:               "localhost",
			Port:               "5432",
			User:               "test",
			Password:           "test",
			Name:               "test_setstock",
			SSLMode:            "disable",
			MaxConnections:     10,
			MinConnections:     2,
			EnableQueryLogging: true,
		},
		Redis: config.RedisConfig{
			Host:     "localhost",
			Port:     "6379",
			DB:       0,
			TTL:      time.Hour,
			PoolSize: 10,
		},
		Marketplace: config.MarketplaceConfig{
			ListingCacheTTL:    5 * time.Minute,
			ReapInterval:       time.Hour,
			BoardSweepInterval: 24 * time.Hour,
			BoardRetention:     60 * 24 * time.Hour,
		},
		Security: config.SecurityConfig{
			RateLimitRequests: 100,
			RateLimitDuration: time.Minute,
			AllowedOrigins:    []string{"*"},
			SecureHeaders:     false,
		},
		Server: config.ServerConfig{
			Host:         "localhost",
			Port:         "8080",
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
		},
	}
}

// CreateTestActor returns a department crew member for tests
func CreateTestActor(projectID string, dept domain.Department) domain.Actor {
	return domain.Actor{
		UserID:     "user-" + string(dept),
		Name:       "Test Crew",
		Department: dept,
		ProjectID:  projectID,
	}
}

// CreateTestItem creates a stock item with sensible defaults
func CreateTestItem(overrides ...func(*domain.Item)) *domain.Item {
	item := &domain.Item{
		ID:              uuid.NewString(),
		ProjectID:       "test-project",
		Name:            "Gaffer tape, black 2in",
		Department:      domain.DepartmentGrip,
		QuantityInitial: 10,
		QuantityCurrent: 10,
		Unit:            "roll",
		Status:          domain.StatusNew,
		Purchased:       true,
		SurplusAction:   domain.SurplusNone,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}

	for _, override := range overrides {
		override(item)
	}

	return item
}

// CreateTestBuyBackItem creates a board entry with sensible defaults
func CreateTestBuyBackItem(overrides ...func(*domain.BuyBackItem)) *domain.BuyBackItem {
	price := decimal.NewFromFloat(15.00)
	original := decimal.NewFromFloat(60.00)
	item := &domain.BuyBackItem{
		ID:               uuid.NewString(),
		ProjectID:        "test-project",
		Name:             "Director's chair",
		Description:      "Canvas seat, light wear",
		Price:            price,
		OriginalPrice:    &original,
		SellerDepartment: domain.DepartmentSetOps,
		Status:           domain.BuyBackAvailable,
		Date:             time.Now(),
	}

	for _, override := range overrides {
		override(item)
	}

	return item
}

// SeedTestProject inserts a project row for integration tests
func SeedTestProject(t *testing.T, pool *pgxpool.Pool, project domain.Project) {
	t.Helper()

	_, err := pool.Exec(context.Background(), `
		INSERT INTO projects (id, name, production_company, require_order_validation)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO NOTHING`,
		project.ID, project.Name, project.ProductionCompany, project.RequireOrderValidation)
	require.NoError(t, err, "Failed to seed project")
}

// SeedTestItems inserts item rows for integration tests
func SeedTestItems(t *testing.T, pool *pgxpool.Pool, items []domain.Item) {
	t.Helper()

	ctx := context.Background()
	for _, item := range items {
		_, err := pool.Exec(ctx, `
			INSERT INTO items (
				id, project_id, name, department,
				quantity_initial, quantity_current, quantity_started,
				unit, status, purchased, is_bought, is_validated,
				surplus_action, price, original_price, created_at, updated_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`,
			item.ID, item.ProjectID, item.Name, item.Department,
			item.QuantityInitial, item.QuantityCurrent, item.QuantityStarted,
			item.Unit, item.Status, item.Purchased, item.IsBought, item.IsValidated,
			item.SurplusAction, item.Price, item.OriginalPrice, item.CreatedAt, item.UpdatedAt)
		require.NoError(t, err, "Failed to seed item")
	}
}

// TruncateAllTables truncates all tables in the test database
func TruncateAllTables(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()
	tables := []string{
		"transactions",
		"buyback_items",
		"items",
		"projects",
	}

	for _, table := range tables {
		_, err := pool.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		require.NoError(t, err, "Failed to truncate table: %s", table)
	}
}

// AssertEventuallyWithTimeout asserts that a condition is met within a timeout
func AssertEventuallyWithTimeout(t *testing.T, condition func() bool, timeout time.Duration, msg string) {
	t.Helper()

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if condition() {
			return
		}
		time.Sleep(100 * time.Millisecond)
	}

	t.Errorf("Condition not met within %v: %s", timeout, msg)
}
