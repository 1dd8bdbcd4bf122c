// Package main is the entry point for the Budget Ledger API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/budget-ledger/backend/config"
	"github.com/budget-ledger/backend/internal/application/usecase/period"
	"github.com/budget-ledger/backend/internal/infra/db"
	"github.com/budget-ledger/backend/internal/infra/dependency"
	"github.com/budget-ledger/backend/internal/infra/monitoring"
	"github.com/budget-ledger/backend/internal/infra/scheduler"
	"github.com/budget-ledger/backend/internal/integration/persistence/model"
)

const (
	shutdownTimeout      = 10 * time.Second
	redisConnectTimeout  = 3 * time.Second
	rateLimitCleanupTick = 5 * time.Minute
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Load configuration
	cfg := config.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Server.LogLevel),
	}))
	slog.SetDefault(logger)

	if err := cfg.Validate(); err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("Starting Budget Ledger API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
		"db_driver", cfg.Database.Driver,
	)

	// Initialize error reporting
	reporter, flush, err := monitoring.NewReporter(&cfg.Sentry, cfg.Server.Environment)
	if err != nil {
		slog.Error("Failed to initialize error reporting", "error", err)
		os.Exit(1)
	}
	defer flush()

	// Initialize database connection
	database, err := db.NewConnection(&cfg.Database)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()

	// Run database migrations
	if err := database.AutoMigrate(model.AllModels()...); err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Database migrations completed successfully")

	// Redis is optional: without it gold prices are fetched on every refresh
	rdb := connectRedis(&cfg.Redis)
	if rdb != nil {
		defer func() {
			if err := rdb.Close(); err != nil {
				slog.Error("Failed to close redis connection", "error", err)
			}
		}()
	}

	injector := dependency.NewInjector(cfg, database.DB(), rdb, reporter, time.Now)

	ctx := context.Background()
	if err := injector.Store.Load(ctx, time.Now()); err != nil {
		reporter.CaptureError(ctx, err, map[string]string{"operation": "load_ledger"})
		slog.Error("Failed to load ledger", "error", err)
		os.Exit(1)
	}

	var rolloverScheduler *scheduler.RolloverScheduler
	if cfg.Scheduler.AutoRollover {
		catchUp := func(ctx context.Context) error {
			_, err := injector.CatchUpPeriods.Execute(ctx, period.CatchUpPeriodsInput{Now: time.Now()})
			return err
		}

		// A failed startup catch-up leaves the ledger at the last committed
		// period and is retried on the next tick.
		if err := catchUp(ctx); err != nil {
			slog.Warn("Startup rollover incomplete", "error", err)
		}

		rolloverScheduler = scheduler.NewRolloverScheduler(&cfg.Scheduler, catchUp, reporter)
		if err := rolloverScheduler.Start(); err != nil {
			slog.Error("Failed to start rollover scheduler", "error", err)
			os.Exit(1)
		}
	}

	stopCleanup := make(chan struct{})
	go func() {
		ticker := time.NewTicker(rateLimitCleanupTick)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				injector.ImportRateLimiter.Cleanup()
			case <-stopCleanup:
				return
			}
		}
	}()

	// Setup router
	engine := injector.Router.Setup(cfg.Server.Environment)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	close(stopCleanup)
	if rolloverScheduler != nil {
		rolloverScheduler.Stop(shutdownCtx)
	}

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		return
	}

	slog.Info("Server exited properly")
}

// connectRedis returns nil when Redis is not configured or unreachable.
func connectRedis(cfg *config.RedisConfig) *redis.Client {
	if cfg.URL == "" {
		slog.Info("Redis not configured, gold price cache disabled")
		return nil
	}

	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		slog.Warn("Invalid REDIS_URL, gold price cache disabled", "error", err)
		return nil
	}
	if cfg.Password != "" {
		opts.Password = cfg.Password
	}
	if cfg.DB != 0 {
		opts.DB = cfg.DB
	}

	rdb := redis.NewClient(opts)
	ctx, cancel := context.WithTimeout(context.Background(), redisConnectTimeout)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		slog.Warn("Redis unreachable, gold price cache disabled", "error", err)
		_ = rdb.Close()
		return nil
	}

	slog.Info("Redis connected")
	return rdb
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
