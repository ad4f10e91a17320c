// cmd/api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"

	"github.com/rperset/setstock/internal/adapters/db"
	"github.com/rperset/setstock/internal/adapters/notify"
	redis_a "github.com/rperset/setstock/internal/adapters/redis_adapter"
	"github.com/rperset/setstock/internal/adapters/storage"
	"github.com/rperset/setstock/internal/core/services"
	"github.com/rperset/setstock/internal/handlers"
	"github.com/rperset/setstock/internal/handlers/middleware"
	"github.com/rperset/setstock/internal/pkg/config"
	"github.com/rperset/setstock/internal/pkg/logger"
)

// Build information injected at compile time
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	slogger := logger.SetupLogger("debug", "json")

	slogger.Info("starting setstock inventory engine",
		slog.String("version", Version),
		slog.String("build_time", BuildTime),
	)

	cfg, err := config.Load(slogger.Logger)
	if err != nil {
		slogger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Reconfigure logger with loaded settings
	slogger = logger.SetupLogger(cfg.App.LogLevel, cfg.App.LogFormat)
	slogger.Info("configuration loaded",
		slog.String("environment", cfg.App.Environment),
		slog.String("log_level", cfg.App.LogLevel),
	)

	ctx := context.Background()

	deps, err := initializeDependencies(ctx, cfg, slogger.Logger)
	if err != nil {
		slogger.Error("failed to initialize dependencies", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer deps.cleanup()

	if cfg.App.Environment != "production" {
		if err := runMigrations(ctx, cfg, slogger.Logger); err != nil {
			slogger.Error("failed to run migrations", slog.String("error", err.Error()))
		}
	}

	server := setupHTTPServer(cfg, deps, slogger)

	serverErrors := make(chan error, 1)
	go func() {
		slogger.Info("starting HTTP server",
			slog.String("address", cfg.GetServerAddress()),
			slog.Bool("tls", cfg.Server.TLSEnabled),
		)

		if cfg.Server.TLSEnabled {
			serverErrors <- server.ListenAndServeTLS(cfg.Server.TLSCertFile, cfg.Server.TLSKeyFile)
		} else {
			serverErrors <- server.ListenAndServe()
		}
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slogger.Error("server error", slog.String("error", err.Error()))
		}
	case sig := <-shutdown:
		slogger.Info("shutdown signal received", slog.String("signal", sig.String()))

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.GracefulTimeout)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			slogger.Error("failed to gracefully shutdown server", slog.String("error", err.Error()))
			server.Close()
		}

		slogger.Info("server shutdown complete")
	}
}

// dependencies holds all application dependencies
type dependencies struct {
	database       *db.Database
	redisClient    *redis.Client
	asynqClient    *asynq.Client
	asynqInspector *asynq.Inspector

	surplusHandler      *handlers.SurplusHandler
	marketplaceHandler  *handlers.MarketplaceHandler
	buyBackHandler      *handlers.BuyBackHandler
	transactionHandler  *handlers.TransactionHandler
	notificationHandler *handlers.NotificationHandler
	healthHandler       *handlers.HealthHandler
}

func (d *dependencies) cleanup() {
	if d.database != nil {
		d.database.Close()
	}
	if d.redisClient != nil {
		d.redisClient.Close()
	}
	if d.asynqClient != nil {
		d.asynqClient.Close()
	}
}

func initializeDependencies(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*dependencies, error) {
	deps := &dependencies{}

	logger.Info("connecting to database",
		slog.String("host", cfg.Database.Host),
		slog.String("database", cfg.Database.Name),
	)

	database, err := db.NewDatabase(ctx, &db.Config{
		Host:               cfg.Database.Host,
		Port:               cfg.Database.Port,
		User:               cfg.Database.User,
		Password:           cfg.Database.Password,
		Database:           cfg.Database.Name,
		SSLMode:            cfg.Database.SSLMode,
		MaxConnections:     cfg.Database.MaxConnections,
		MinConnections:     cfg.Database.MinConnections,
		MaxConnLifetime:    cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:    cfg.Database.MaxConnIdleTime,
		HealthCheckPeriod:  cfg.Database.HealthCheckPeriod,
		ConnectTimeout:     cfg.Database.ConnectTimeout,
		StatementCacheMode: cfg.Database.StatementCacheMode,
		EnableQueryLogging: cfg.Database.EnableQueryLogging,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	deps.database = database

	logger.Info("connecting to Redis",
		slog.String("host", cfg.Redis.Host),
		slog.String("port", cfg.Redis.Port),
	)

	redisClient := redis.NewClient(&redis.Options{
		Addr:            fmt.Sprintf("%s:%s", cfg.Redis.Host, cfg.Redis.Port),
		Password:        cfg.Redis.Password,
		DB:              cfg.Redis.DB,
		MaxRetries:      cfg.Redis.MaxRetries,
		MinRetryBackoff: cfg.Redis.MinRetryBackoff,
		MaxRetryBackoff: cfg.Redis.MaxRetryBackoff,
		DialTimeout:     cfg.Redis.DialTimeout,
		ReadTimeout:     cfg.Redis.ReadTimeout,
		WriteTimeout:    cfg.Redis.WriteTimeout,
		PoolSize:        cfg.Redis.PoolSize,
		MinIdleConns:    cfg.Redis.MinIdleConns,
		ConnMaxLifetime: cfg.Redis.MaxConnAge,
		PoolTimeout:     cfg.Redis.PoolTimeout,
		ConnMaxIdleTime: cfg.Redis.IdleTimeout,
	})

	if err := redisClient.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	deps.redisClient = redisClient

	cache := redis_a.NewCache(redisClient, cfg.Redis.TTL, logger)
	notificationStore := redis_a.NewNotificationStore(redisClient, logger)

	asynqRedisOpt := asynq.RedisClientOpt{
		Addr:     cfg.Asynq.RedisAddr,
		Password: cfg.Asynq.RedisPassword,
		DB:       cfg.Asynq.RedisDB,
	}
	deps.asynqClient = asynq.NewClient(asynqRedisOpt)
	deps.asynqInspector = asynq.NewInspector(asynqRedisOpt)

	photoStore, err := storage.NewS3Storage(ctx, &storage.S3Config{
		Region:          cfg.AWS.Region,
		Bucket:          cfg.AWS.S3Bucket,
		AccessKeyID:     cfg.AWS.AccessKeyID,
		SecretAccessKey: cfg.AWS.SecretAccessKey,
		Endpoint:        cfg.AWS.S3Endpoint,
		UsePathStyle:    cfg.AWS.UsePathStyle,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize photo storage: %w", err)
	}

	notifier := notify.NewAsynqNotifier(deps.asynqClient, logger)

	// Repositories
	itemRepo := db.NewItemRepository(database, logger)
	projectRepo := db.NewProjectRepository(database, logger)
	buyBackRepo := db.NewBuyBackRepository(database, logger)
	ledger := db.NewTransactionRepository(database, logger)

	// Services
	surplusService := services.NewSurplusService(itemRepo, projectRepo, notifier, logger)
	marketplaceService := services.NewMarketplaceService(
		itemRepo, itemRepo, projectRepo, ledger, cache,
		cfg.Marketplace.ListingCacheTTL, logger,
	)
	buyBackService := services.NewBuyBackService(buyBackRepo, photoStore, cache, notifier, logger)
	transactionService := services.NewTransactionService(ledger, itemRepo, logger)

	// Handlers
	deps.surplusHandler = handlers.NewSurplusHandler(surplusService, logger)
	deps.marketplaceHandler = handlers.NewMarketplaceHandler(marketplaceService, logger)
	deps.buyBackHandler = handlers.NewBuyBackHandler(buyBackService, logger)
	deps.transactionHandler = handlers.NewTransactionHandler(transactionService, logger)
	deps.notificationHandler = handlers.NewNotificationHandler(notificationStore, logger)
	deps.healthHandler = handlers.NewHealthHandler(database, redisClient, deps.asynqInspector, cfg, logger)

	logger.Info("all dependencies initialized successfully")
	return deps, nil
}

func setupHTTPServer(cfg *config.Config, deps *dependencies, slogger *logger.Logger) *http.Server {
	mux := http.NewServeMux()
	registerRoutes(mux, deps, cfg)

	// Apply middleware in reverse order (innermost first)
	var handler http.Handler = mux
	handler = middleware.Actor(handler)
	if cfg.App.Environment != "test" {
		handler = middleware.RequestID(handler)
		handler = middleware.Logger(slogger)(handler)
		handler = middleware.Recovery(slogger.Logger)(handler)
	}

	if cfg.Security.RateLimitRequests > 0 {
		handler = middleware.RateLimit(cfg.Security.RateLimitRequests, cfg.Security.RateLimitDuration)(handler)
	}

	if len(cfg.Security.AllowedOrigins) > 0 {
		handler = middleware.CORS(cfg.Security.AllowedOrigins)(handler)
	}

	if cfg.Security.SecureHeaders {
		handler = middleware.SecureHeaders(handler)
	}

	return &http.Server{
		Addr:           cfg.GetServerAddress(),
		Handler:        handler,
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    cfg.Server.IdleTimeout,
		MaxHeaderBytes: cfg.Server.MaxHeaderBytes,
		ErrorLog:       slog.NewLogLogger(slogger.Handler(), slog.LevelError),
	}
}

func registerRoutes(mux *http.ServeMux, deps *dependencies, cfg *config.Config) {
	apiV1 := "/api/v1"

	if cfg.Server.EnableHealthCheck {
		mux.HandleFunc("GET /health", deps.healthHandler.Health)
		mux.HandleFunc("GET /ready", deps.healthHandler.Readiness)
		mux.HandleFunc("GET "+apiV1+"/health", deps.healthHandler.Health)
	}

	// Department stock and the surplus lifecycle
	items := apiV1 + "/projects/{projectID}/items"
	mux.HandleFunc("GET "+items, deps.surplusHandler.ListItems)
	mux.HandleFunc("POST "+items, deps.surplusHandler.CreateItem)
	mux.HandleFunc("GET "+items+"/{itemID}", deps.surplusHandler.GetItem)
	mux.HandleFunc("DELETE "+items+"/{itemID}", deps.surplusHandler.DeleteItem)
	mux.HandleFunc("POST "+items+"/{itemID}/dispose/quote", deps.surplusHandler.ProposeDisposition)
	mux.HandleFunc("POST "+items+"/{itemID}/dispose", deps.surplusHandler.CommitDisposition)
	mux.HandleFunc("POST "+items+"/{itemID}/dispose/undo", deps.surplusHandler.UndoDisposition)
	mux.HandleFunc("POST "+items+"/{itemID}/quantity", deps.surplusHandler.AdjustQuantity)
	mux.HandleFunc("POST "+items+"/{itemID}/start", deps.surplusHandler.MarkStarted)
	mux.HandleFunc("POST "+items+"/{itemID}/bought", deps.surplusHandler.MarkBought)
	mux.HandleFunc("POST "+items+"/{itemID}/received", deps.surplusHandler.ConfirmReceipt)
	mux.HandleFunc("POST "+items+"/{itemID}/validate", deps.surplusHandler.ValidateRequest)

	// Cross-production marketplace
	mux.HandleFunc("GET "+apiV1+"/marketplace/listings", deps.marketplaceHandler.ListListings)
	mux.HandleFunc("GET "+apiV1+"/projects/{projectID}/opportunities", deps.marketplaceHandler.ListOpportunities)
	mux.HandleFunc("POST "+apiV1+"/projects/{projectID}/orders", deps.marketplaceHandler.ExecuteOrder)
	mux.HandleFunc("POST "+apiV1+"/projects/{projectID}/orders/bulk", deps.marketplaceHandler.ExecuteOrders)
	mux.HandleFunc("GET "+apiV1+"/projects/{projectID}/marketplace/unread", deps.marketplaceHandler.UnreadCount)

	// Buy-back board
	board := apiV1 + "/projects/{projectID}/buyback"
	mux.HandleFunc("GET "+board, deps.buyBackHandler.List)
	mux.HandleFunc("POST "+board, deps.buyBackHandler.Sell)
	mux.HandleFunc("POST "+board+"/{itemID}/reserve", deps.buyBackHandler.ToggleReservation)
	mux.HandleFunc("POST "+board+"/{itemID}/confirm", deps.buyBackHandler.Confirm)
	mux.HandleFunc("DELETE "+board+"/{itemID}", deps.buyBackHandler.Delete)

	// Transaction settlement
	mux.HandleFunc("GET "+apiV1+"/projects/{projectID}/transactions", deps.transactionHandler.ListForProject)
	mux.HandleFunc("POST "+apiV1+"/transactions/{id}/validate", deps.transactionHandler.Validate)
	mux.HandleFunc("POST "+apiV1+"/transactions/{id}/reject", deps.transactionHandler.Reject)

	// Department notification feed
	mux.HandleFunc("GET "+apiV1+"/notifications/{department}", deps.notificationHandler.List)

	// pprof endpoints (development only)
	if cfg.Server.EnablePprof && cfg.IsDevelopment() {
		mux.HandleFunc("GET /debug/pprof/", http.HandlerFunc(http.DefaultServeMux.ServeHTTP))
	}
}

func runMigrations(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	logger.Info("running database migrations")

	migrationConfig := &db.MigrationConfig{
		DatabaseURL: cfg.GetDatabaseURL(),
		SourcePath:  cfg.Database.MigrationPath,
		TableName:   "schema_migrations",
		SchemaName:  "public",
	}

	return db.RunMigrationsWithRetry(ctx, migrationConfig, logger, 3)
}
