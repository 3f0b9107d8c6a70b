package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/nekogravitycat/stadium-schedule-backend/internal/app"
	"github.com/nekogravitycat/stadium-schedule-backend/internal/config"
	"github.com/nekogravitycat/stadium-schedule-backend/internal/db"
	"github.com/nekogravitycat/stadium-schedule-backend/internal/event"
	"github.com/nekogravitycat/stadium-schedule-backend/internal/pkg/logger"
	"github.com/nekogravitycat/stadium-schedule-backend/internal/pkg/otelx"
	"github.com/nekogravitycat/stadium-schedule-backend/internal/schedule"
)

const serviceName = "stadium-schedule-backend"

func main() {
	// For receiving Ctrl+C / SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load config
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "err", err)
		os.Exit(1)
	}

	log := logger.New(serviceName, cfg.LogLevel)
	slog.SetDefault(log)

	// Tracing
	shutdownTracing, err := otelx.Setup(ctx, otelx.Config{
		Enabled:      cfg.OTelEnabled,
		ServiceName:  serviceName,
		OTLPEndpoint: cfg.OTelEndpoint,
		SampleRatio:  cfg.OTelSampleRatio,
	})
	if err != nil {
		log.Error("failed to set up tracing", "err", err)
		os.Exit(1)
	}

	// Connect DB
	pool, err := db.NewPool(ctx, cfg.DBDSN)
	if err != nil {
		log.Error("failed to connect to db", "err", err)
		os.Exit(1)
	}
	defer pool.Close()

	if cfg.DBAutoMigrate {
		if err := db.Migrate(ctx, pool); err != nil {
			log.Error("failed to apply migrations", "err", err)
			os.Exit(1)
		}
		log.Info("migrations applied")
	}

	// Optional Redis cache for availability reads
	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPassword})
		defer rdb.Close()
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Warn("redis unreachable, availability reads will fall back to the database", "addr", cfg.RedisAddr, "err", err)
		}
	}

	hours, err := operatingHours(cfg)
	if err != nil {
		log.Error("invalid operating hours", "err", err)
		os.Exit(1)
	}

	container := app.NewContainer(app.Config{
		IsProduction:   cfg.IsProduction(),
		ProdOrigins:    cfg.ProdOrigins,
		Logger:         log,
		DBPool:         pool,
		JWTSecret:      cfg.JWTSecret,
		JWTTTL:         cfg.JWTAccessTokenTTL,
		PasswordCost:   cfg.BcryptCost,
		OperatingHours: hours,
		Redis:          rdb,
		CacheTTL:       cfg.AvailabilityCacheTTL,
		Publisher: event.PublisherConfig{
			Brokers:   cfg.KafkaBrokers,
			PollEvery: cfg.OutboxPollInterval,
			BatchSize: cfg.OutboxBatchSize,
		},
	})

	// Outbox relay
	publisherDone := make(chan struct{})
	go func() {
		defer close(publisherDone)
		container.Publisher.Run(ctx)
	}()

	// Use http.Server for graceful shutdown
	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           otelhttp.NewHandler(container.Router, serviceName),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Run server in separate goroutine
	go func() {
		log.Info("server running", "addr", cfg.HTTPAddr, "env", cfg.AppEnv)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "err", err)
			stop()
		}
	}()

	// Wait for Ctrl+C
	<-ctx.Done()
	log.Info("shutdown signal received")

	// Create a shutdown context with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("server forced to shutdown", "err", err)
	}

	select {
	case <-publisherDone:
	case <-shutdownCtx.Done():
		log.Warn("outbox publisher did not stop in time")
	}

	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Error("tracing shutdown failed", "err", err)
	}

	log.Info("server exited gracefully")
}

func operatingHours(cfg *config.Config) (schedule.OperatingHours, error) {
	open, err := schedule.ParseClock(cfg.OperatingHoursStart)
	if err != nil {
		return schedule.OperatingHours{}, err
	}
	closeAt, err := schedule.ParseClock(cfg.OperatingHoursEnd)
	if err != nil {
		return schedule.OperatingHours{}, err
	}
	hours := schedule.OperatingHours{Open: open, Close: closeAt}
	return hours, hours.Validate()
}
