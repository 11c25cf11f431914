package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/magazine-platform/internal/api"
	"github.com/magazine-platform/internal/auth"
	"github.com/magazine-platform/internal/config"
	"github.com/magazine-platform/internal/content"
	"github.com/magazine-platform/internal/database"
	"github.com/magazine-platform/internal/overlay"
	"github.com/magazine-platform/internal/repository"
	"github.com/magazine-platform/internal/resolver"
	"github.com/magazine-platform/internal/service"
	"github.com/magazine-platform/pkg/logger"
)

func main() {
	// Initialize logger
	log := logger.New()
	log.Info().Msg("Starting magazine platform server...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Load the static content bundle
	contentStore, err := content.Load(cfg.Content.BundlePath, log)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.Content.BundlePath).Msg("Failed to load content bundle")
	}

	// Open the overlay store
	var kv overlay.KV
	switch cfg.Overlay.Backend {
	case config.OverlaySQLite:
		kv, err = overlay.NewSQLiteKV(cfg.Overlay.Path, log)
	default:
		kv, err = overlay.NewFileKV(cfg.Overlay.Path, log)
	}
	if err != nil {
		log.Fatal().Err(err).Str("backend", cfg.Overlay.Backend).Msg("Failed to open overlay store")
	}
	defer kv.Close()

	overlayStore := overlay.NewStore(kv, log)
	contentResolver := resolver.New(contentStore, overlayStore)

	// Connect to Postgres only in database mode
	var repos *repository.Repositories
	if cfg.Content.Source == config.SourceDatabase {
		db, err := database.New(&cfg.Database, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to database")
		}
		defer db.Close()

		if err := db.RunMigrations(cfg.Database.MigrationsPath); err != nil {
			log.Fatal().Err(err).Msg("Failed to run database migrations")
		}

		repos = repository.New(db)
	}

	// Auth is optional: without JWT_SECRET the admin surface stays off
	var tokens *auth.TokenService
	if cfg.Auth.JWTSecret != "" {
		tokens, err = auth.NewTokenService(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize token service")
		}
	} else {
		log.Warn().Msg("JWT_SECRET not set, auth and admin routes disabled")
	}

	// Initialize services
	services := service.NewServices(service.Deps{
		Config:   cfg,
		Content:  contentStore,
		Overlay:  overlayStore,
		Resolver: contentResolver,
		Repos:    repos,
		Hasher:   auth.NewPasswordHasher(),
		Tokens:   tokens,
	}, log)

	// Initialize router
	router := api.NewRouter(services, cfg, tokens, log)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.ReadTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().
			Str("port", cfg.Server.Port).
			Str("content_source", cfg.Content.Source).
			Str("overlay_backend", cfg.Overlay.Backend).
			Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited gracefully")
}
