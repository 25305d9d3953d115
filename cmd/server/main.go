package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/SathilaT2001/ceylon-serenity-resort/internal/booking"
	"github.com/SathilaT2001/ceylon-serenity-resort/internal/config"
	"github.com/SathilaT2001/ceylon-serenity-resort/internal/database"
	"github.com/SathilaT2001/ceylon-serenity-resort/internal/handlers"
	"github.com/SathilaT2001/ceylon-serenity-resort/internal/router"
	"github.com/SathilaT2001/ceylon-serenity-resort/internal/service"
	"github.com/SathilaT2001/ceylon-serenity-resort/internal/ws"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Connect to Postgres
	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("failed to create connection pool", zap.Error(err))
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		logger.Fatal("failed to reach database", zap.Error(err))
	}

	repo := database.NewRepository(pool)

	// The booking catalog is validated once at startup; the booking flow
	// never needs defensive checks afterwards.
	catalog := booking.DefaultCatalog()

	hub := ws.NewHub(logger)
	go hub.Run(ctx)

	svc := service.NewReservationService(catalog, repo, hub, logger)
	h := handlers.NewHandler(svc, logger)

	r := router.NewRouter(h, hub, logger, router.Config{
		JWTSecret:  cfg.JWTSecret,
		CORSOrigin: cfg.CORSOrigin,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.Info("server starting", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	logger.Info("server stopped")
}
