package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/phambaophuc/watermark-removal/internal/config"
	"github.com/phambaophuc/watermark-removal/internal/http/handlers"
	"github.com/phambaophuc/watermark-removal/internal/http/routes"
	"github.com/phambaophuc/watermark-removal/internal/services/inpaint"
	"github.com/phambaophuc/watermark-removal/internal/services/remover"
	"github.com/phambaophuc/watermark-removal/internal/services/storage"
	"go.uber.org/zap"
)

func main() {
	// Initialize logger
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer logger.Sync()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	// Initialize services
	lama := inpaint.NewLamaClient(cfg.Inpaint.URL, cfg.Inpaint.Device, cfg.Inpaint.Timeout)

	cache := storage.NewCacheService(cfg)
	if !cache.Enabled() {
		logger.Info("Result cache disabled, no REDIS_ADDR configured")
	}

	removerService := remover.NewService(lama, cache, logger, cfg)

	// Initialize handlers
	watermarkHandler := handlers.NewWatermarkHandler(removerService, lama, cache, logger, cfg)

	router := routes.NewRouter(watermarkHandler, logger)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		Handler:      router.SetupRoutes(),
	}

	// Start server
	go func() {
		logger.Info("Starting server",
			zap.String("addr", server.Addr),
			zap.String("model_url", cfg.Inpaint.URL),
			zap.String("device", cfg.Inpaint.Device),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}
