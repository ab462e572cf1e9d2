// Package main is the entry point for the mileage logbook API server.
// Its sole responsibility is wiring dependencies together and starting the server.
// No business logic belongs here.
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
	"time"
	_ "time/tzdata"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/pkordes/mileage-logbook/internal/config"
	"github.com/pkordes/mileage-logbook/internal/database"
	"github.com/pkordes/mileage-logbook/internal/handler"
	"github.com/pkordes/mileage-logbook/internal/live"
	"github.com/pkordes/mileage-logbook/internal/logging"
	"github.com/pkordes/mileage-logbook/internal/middleware"
	"github.com/pkordes/mileage-logbook/internal/repo"
	"github.com/pkordes/mileage-logbook/internal/service"
	"github.com/pkordes/mileage-logbook/internal/summary"
)

func main() {
	// --- Config -----------------------------------------------------------
	cfg, err := config.Load()
	if err != nil {
		// Use plain stderr before the logger is configured.
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// --- Logger -----------------------------------------------------------
	logger := logging.Setup(os.Stdout, cfg.LogLevel, cfg.LogFormat)

	if err := run(cfg, logger); err != nil {
		logger.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, logger *slog.Logger) error {
	// --- Database ---------------------------------------------------------
	startCtx, cancelStart := context.WithTimeout(context.Background(), 30*time.Second)
	journeyRepo, closeStore, err := openStore(startCtx, cfg.DatabaseURL, logger,
		repo.WithDefaultFuelPrice(cfg.DefaultFuelPrice))
	cancelStart()
	if err != nil {
		return err
	}
	defer closeStore()

	// --- Services ---------------------------------------------------------
	hub := live.NewHub(logger)
	opts := service.Options{Location: cfg.Location, Events: hub, Logger: logger}

	journeys := service.NewJourneyService(journeyRepo, summary.New(nil), cfg.DefaultFuelPrice, opts)
	challenges := service.NewChallengeService(journeyRepo, opts)
	journeys.Observe(challenges)

	server := handler.NewServer(handler.Deps{
		Journeys:   journeys,
		Insights:   service.NewInsightService(journeyRepo),
		Challenges: challenges,
		Export:     service.NewExportService(journeyRepo),
		Live:       live.Handler(hub, cfg.CORSOrigins),
		Logger:     logger,
	})

	// --- Router -----------------------------------------------------------
	// Middleware is applied in order: RequestID → RealIP → Logger → Recoverer → CORS → MaxBodySize.
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(cfg.MaxBodyBytes))
	server.Routes(r)

	// --- HTTP Server ------------------------------------------------------
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown: wait for OS signal, then give in-flight requests
	// up to 15 seconds to complete before forcefully closing.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
	case <-ctx.Done():
	}
	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	logger.Info("server stopped")
	return nil
}

// openStore connects the backend selected by url, applies migrations, and
// returns the journey repository with a function that releases it.
func openStore(ctx context.Context, url string, logger *slog.Logger, opts ...repo.Option) (repo.JourneyRepo, func(), error) {
	switch database.DriverFor(url) {
	case database.DriverPostgres:
		pool, err := database.OpenPostgres(ctx, url)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("database connection established", "driver", database.DriverPostgres)
		return repo.NewPostgresJourneyRepo(pool, opts...), pool.Close, nil
	default:
		db, err := database.OpenSQLite(ctx, url)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("database connection established", "driver", database.DriverSQLite)
		return repo.NewSQLiteJourneyRepo(db, opts...), func() { _ = db.Close() }, nil
	}
}
