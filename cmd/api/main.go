package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"storeapi/internal/config"
	"storeapi/internal/database"
	"storeapi/internal/database/migration"
	handlers "storeapi/internal/http/handler"
	"storeapi/internal/http/middleware"
	"storeapi/internal/logger"
	tracing "storeapi/internal/otel"
	"storeapi/internal/repository/gormrepo"
)

// @title Store System API
// @version 1.0
// @BasePath /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg, err := config.Load()
	if err != nil {
		l := logger.New(logger.Options{ServiceName: "store_system"})
		l.Fatal().Err(err).Msg("invalid configuration")
	}

	log := logger.New(logger.Options{
		ServiceName: cfg.Name,
		Level:       cfg.LogLevel(),
		Format:      cfg.Log.Format,
	})
	zerolog.DefaultContextLogger = &log

	if err := run(cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func run(cfg *config.AppConfig, log zerolog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := tracing.Init(ctx, cfg.Name, log)
	if err != nil {
		return err
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := shutdownTracing(sctx); err != nil {
			log.Warn().Err(err).Msg("tracer shutdown failed")
		}
	}()

	// Initialize PostgreSQL: traced pool plus the gorm session over it
	db, err := database.Open(ctx, cfg.Database, database.GormOptions{Logger: log, LogSQL: cfg.Debug})
	if err != nil {
		return err
	}
	defer db.Close()

	if cfg.Database.AutoMigrate {
		if err := migration.EnsureMigrated(ctx, db.Gorm, log); err != nil {
			return err
		}
	}

	app, err := newServer(cfg, log, db, prometheus.DefaultRegisterer, prometheus.DefaultGatherer)
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", ":"+cfg.Port).Str("api_prefix", cfg.APIPrefix).Msg("server starting")
		errCh <- app.Listen(":" + cfg.Port)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Dur("timeout", cfg.ShutdownTimeout).Msg("shutting down")
	if err := app.ShutdownWithTimeout(cfg.ShutdownTimeout); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return nil
}

// newServer builds the fiber app with the middleware chain and every route
// registered. Metrics are registered with reg and exposed from gatherer.
func newServer(cfg *config.AppConfig, log zerolog.Logger, db *database.DB, reg prometheus.Registerer, gatherer prometheus.Gatherer) (*fiber.App, error) {
	metrics, err := middleware.NewPrometheusMiddleware(reg, cfg.Name)
	if err != nil {
		return nil, err
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.Name,
		ErrorHandler: handlers.ErrorHandler(),
	})

	// Register global middleware
	app.Use(recover.New())
	app.Use(otelfiber.Middleware())
	// RequestID middleware adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	// Structured request logs; also puts a request scoped logger in the user context
	app.Use(middleware.Logger(log))
	app.Use(metrics.Handler())

	handlers.RegisterRoutes(app, db.SQL, newRepositories(db.Gorm), handlers.Options{
		APIPrefix: cfg.APIPrefix,
		Gatherer:  gatherer,
	})
	return app, nil
}

func newRepositories(db *gorm.DB) handlers.Repositories {
	return handlers.Repositories{
		Stores:           gormrepo.NewStoreRepository(db),
		StoreInspections: gormrepo.NewStoreInspectionRepository(db),
		Products:         gormrepo.NewProductRepository(db),
		ProductArrivals:  gormrepo.NewProductArrivalRepository(db),
		Customers:        gormrepo.NewCustomerRepository(db),
		Purchases:        gormrepo.NewPurchaseRepository(db),
	}
}
