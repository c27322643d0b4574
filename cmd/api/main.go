// Package main is the entry point for the listings API server.
// Its sole responsibility is wiring dependencies together and starting the server.
// No business logic belongs here.
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

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/hikingbuddies/listings/internal/config"
	"github.com/hikingbuddies/listings/internal/database"
	"github.com/hikingbuddies/listings/internal/handler"
	"github.com/hikingbuddies/listings/internal/middleware"
	"github.com/hikingbuddies/listings/internal/repo"
	"github.com/hikingbuddies/listings/internal/seed"
	"github.com/hikingbuddies/listings/internal/service"
)

func main() {
	// --- Config -----------------------------------------------------------
	cfg, err := config.Load()
	if err != nil {
		// The default logger writes plain text to stderr until replaced below.
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// --- Logger -----------------------------------------------------------
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()

	// --- Database ---------------------------------------------------------
	pool, err := database.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()
	slog.Info("database connection established")

	applied, err := database.Migrate(ctx, pool)
	if err != nil {
		slog.Error("failed to apply migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("migrations applied", "count", applied)

	// --- Services ---------------------------------------------------------
	eventRepo := repo.NewEventRepo(pool)
	mountainRepo := repo.NewMountainRepo(pool)

	mountainSvc := service.NewMountainService(mountainRepo)
	eventSvc := service.NewEventService(eventRepo, mountainRepo)
	draftSvc := service.NewDraftService(mountainRepo)
	exportSvc := service.NewExportService(eventRepo)

	if cfg.SeedMountains {
		n, err := seed.LoadMountains(ctx, mountainSvc)
		if err != nil {
			slog.Error("failed to seed mountains", "error", err)
			os.Exit(1)
		}
		slog.Info("mountains seeded", "inserted", n)
	}

	if cfg.AddEventKey == "" {
		slog.Warn("ADD_EVENT_KEY is empty, event creation is open to everyone")
	}

	// --- Router -----------------------------------------------------------
	// RequestID → RealIP → SlogLogger → Recoverer → CORS → MaxBodySize.
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(cfg.MaxBodyBytes))

	srv := handler.NewServer(eventSvc, mountainSvc, draftSvc, exportSvc)
	r.Mount("/", srv.Routes(middleware.NewAddKeyGate(cfg.AddEventKey)))

	// --- HTTP Server ------------------------------------------------------
	httpSrv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "addr", httpSrv.Addr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-stop
	slog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}
