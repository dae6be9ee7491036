// cmd/server/main.go
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/hostelhub/hostelhub/internal/api/dashboard"
	"github.com/hostelhub/hostelhub/internal/api/reports"
	"github.com/hostelhub/hostelhub/internal/config"
	"github.com/hostelhub/hostelhub/internal/db"
	"github.com/hostelhub/hostelhub/internal/metrics"
	"github.com/hostelhub/hostelhub/internal/ratelimit"
	"github.com/hostelhub/hostelhub/internal/scheduler"
	"github.com/hostelhub/hostelhub/internal/stats"
)

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func setupLogger(environment string, debug bool) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	if environment == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}

func main() {
	cfg, err := config.Load(getEnv("CONFIG_PATH", "config/config.yaml"))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	setupLogger(cfg.App.Environment, cfg.Features.EnableDebug)
	shutdownTimeout := time.Duration(getEnvAsInt("SHUTDOWN_TIMEOUT_SECONDS", 30)) * time.Second

	database, err := db.NewFromConfig(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open database")
	}
	defer database.Close()

	if cfg.Features.EnableMetrics {
		metrics.Init(database.DB)
	}

	aggregator, err := stats.NewAggregator(
		database.Queries,
		stats.WithLocation(cfg.Location()),
		stats.WithRecentLimit(cfg.Reports.RecentLimit),
		stats.WithTopRoomsLimit(cfg.Reports.TopRoomsLimit),
		stats.WithTrendMonths(cfg.Reports.TrendMonths),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to build report aggregator")
	}
	dashboard.InitHandlers(aggregator, database.Queries, cfg.Reports.QueryTimeout)
	reports.InitHandlers(aggregator, database.Queries, cfg.Reports.QueryTimeout)

	if err := scheduler.Init(); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize scheduler")
	}
	if err := scheduler.RegisterSnapshotJob(aggregator, database.Queries, cfg.Reports.SnapshotCron, cfg.Reports.SnapshotRetention); err != nil {
		log.Fatal().Err(err).Msg("Failed to register report snapshot job")
	}
	if err := scheduler.Start(); err != nil {
		log.Fatal().Err(err).Msg("Failed to start scheduler")
	}

	limiter := ratelimit.New(&ratelimit.Config{Limit: cfg.Reports.RateLimitPerMinute, Window: time.Minute})
	defer limiter.Close()

	server := newServer(cfg, limiter)

	// Setup graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info().Int("port", cfg.App.Port).Str("environment", cfg.App.Environment).Msg("Starting server")
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		log.Info().Msg("Shutting down server")
		if err := scheduler.Stop(); err != nil {
			log.Error().Err(err).Msg("Failed to stop scheduler")
		}
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown error: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Error().Err(err).Msg("Server terminated with error")
		os.Exit(1)
	}
}
