// Package main runs the villa HTTP server: SurrealDB persistence, the
// decision oracle, the cycle engine and the polling API.
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

	"github.com/dotslashsimran/ai-love-island/internal/config"
	"github.com/dotslashsimran/ai-love-island/internal/db"
	"github.com/dotslashsimran/ai-love-island/internal/metrics"
	"github.com/dotslashsimran/ai-love-island/internal/models"
	"github.com/dotslashsimran/ai-love-island/internal/oracle"
	"github.com/dotslashsimran/ai-love-island/internal/server"
	"github.com/dotslashsimran/ai-love-island/internal/sim"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env if present; real env vars win.
	_ = godotenv.Load()

	cfg := config.Load()

	logger, cleanup := config.SetupLogger(cfg.LogFile, cfg.LogLevel)
	defer func() {
		if err := cleanup(); err != nil {
			slog.Error("failed to close log file", "error", err)
		}
	}()
	slog.SetDefault(logger)

	logger.Info("starting villa-server", "port", cfg.ServerPort)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	store, err := db.NewClient(ctx, db.Config{
		URL:       cfg.DBURL,
		Namespace: cfg.DBNamespace,
		Database:  cfg.DBDatabase,
		Username:  cfg.DBUser,
		Password:  cfg.DBPass,
		AuthLevel: cfg.DBAuthLevel,
	}, logger)
	if err != nil {
		cancel()
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := store.Close(context.Background()); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	if err := store.InitSchema(ctx); err != nil {
		cancel()
		logger.Error("failed to initialize schema", "error", err)
		os.Exit(1)
	}

	cast := models.SeedCharacters()
	if cfg.CastFile != "" {
		cast, err = models.LoadCastFile(cfg.CastFile)
		if err != nil {
			cancel()
			logger.Error("failed to load cast file", "file", cfg.CastFile, "error", err)
			os.Exit(1)
		}
		logger.Info("using cast file", "file", cfg.CastFile, "characters", len(cast))
	}
	if err := store.EnsureSeeded(ctx, cast); err != nil {
		cancel()
		logger.Error("failed to seed characters", "error", err)
		os.Exit(1)
	}
	cancel()

	collector := metrics.NewCollector()

	decider, err := oracle.New(cfg, logger, collector)
	if err != nil {
		logger.Error("failed to create oracle", "error", err)
		os.Exit(1)
	}
	if !decider.Enabled() {
		logger.Warn("oracle disabled, cycles will run on fallback paths only")
	}

	engine := sim.NewEngine(store, decider, logger,
		sim.WithSeed(cast),
		sim.WithMetrics(collector))

	srv := server.New(store, engine, collector, cfg.CronSecret, logger)

	go func() {
		if err := srv.Start(":" + cfg.ServerPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server stopped", "error", err)
			os.Exit(1)
		}
	}()
	logger.Info("villa-server listening", "port", cfg.ServerPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown failed", "error", err)
	}
}
