package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"product-catalog/config"
	_ "product-catalog/docs" // Swagger docs
	"product-catalog/internal/httpserver"
	"product-catalog/internal/middleware"
	"product-catalog/internal/product/repository"
	"product-catalog/internal/product/repository/memory"
	"product-catalog/internal/product/repository/postgre"
	"product-catalog/pkg/log"
	"product-catalog/pkg/postgres"
)

// @title       Product Catalog API
// @description Versioned CRUD, filtering, pagination and search over the product catalog.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Product Catalog...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Storage driver: %s", cfg.Storage.Driver)

	// 3. Storage
	repo, db, err := openRepository(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize storage: ", err)
		return
	}
	if db != nil {
		defer db.Close()
	}

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Middleware: middleware.Config{
			SupportedVersions: cfg.API.Versions,
			RateLimit: middleware.RateLimitConfig{
				Enabled:        cfg.RateLimit.Enabled,
				RequestsPerMin: cfg.RateLimit.RequestsPerMin,
			},
		},
		ProductRepository: repo,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 5. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// openRepository returns the product store selected by storage.driver.
// db is nil for the memory store.
func openRepository(ctx context.Context, cfg *config.Config, logger log.Logger) (repository.Repository, *sql.DB, error) {
	if cfg.Storage.Driver == config.StorageDriverMemory {
		logger.Warn(ctx, "Using in-memory store: data is lost on restart")
		return memory.New(), nil, nil
	}

	db, err := postgres.Connect(ctx, postgres.Config{
		DSN:             cfg.Postgres.DSN,
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: cfg.Postgres.ConnMaxLifetime,
	})
	if err != nil {
		return nil, nil, err
	}
	logger.Info(ctx, "✅ PostgreSQL connected")

	if cfg.Postgres.AutoMigrate {
		if err := postgres.Migrate(ctx, db); err != nil {
			db.Close()
			return nil, nil, err
		}
		logger.Info(ctx, "✅ Schema migrated")
	}

	return postgre.New(db, logger), db, nil
}
