// ABOUTME: Main entry point for the Link Preview API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"linkpreview-api/api"
	"linkpreview-api/api/handlers"
	"linkpreview-api/core/interfaces"
	"linkpreview-api/core/resolver"
	stdhttp "linkpreview-api/infrastructure/http/standard"
	logruslogger "linkpreview-api/infrastructure/logger/logrus"
	"linkpreview-api/pkg/config"
)

func main() {
	// Load configuration
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Create logger
	logger := logruslogger.New(logruslogger.Config{
		Level: cfg.Log.Level,
		File:  cfg.Log.File,
	})
	logger.Info("Starting Link Preview API", map[string]interface{}{
		"port":          cfg.Server.Port,
		"fetch_timeout": cfg.Resolver.FetchTimeoutSeconds,
	})

	fetchTimeout := time.Duration(cfg.Resolver.FetchTimeoutSeconds) * time.Second

	// Create HTTP client
	httpClient := stdhttp.NewStandardHTTPClient(fetchTimeout)

	// Create dependencies container
	deps := interfaces.Dependencies{
		HTTPClient: httpClient,
		Logger:     logger,
	}

	// Create resolver service
	resolverService := resolver.NewService(deps,
		resolver.WithTimeout(fetchTimeout),
		resolver.WithMaxBodySize(cfg.Resolver.MaxBodyBytes),
	)

	// Create router with middleware and handlers
	router := api.NewRouter(api.Config{
		Logger:         logger,
		RateLimit:      cfg.RateLimit.Requests,
		RateWindow:     time.Duration(cfg.RateLimit.WindowSeconds) * time.Second,
		AllowedOrigins: cfg.Server.AllowedOrigins,
	},
		handlers.NewPreviewHandler(resolverService, logger),
		handlers.NewHealthHandler(),
	)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...", nil)

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server stopped", nil)
}
