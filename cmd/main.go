package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/CHARLESojini/SkyRide-Weather-API-project/internal/config"
	"github.com/CHARLESojini/SkyRide-Weather-API-project/internal/format"
	"github.com/CHARLESojini/SkyRide-Weather-API-project/internal/geocoding"
	"github.com/CHARLESojini/SkyRide-Weather-API-project/internal/metrics"
	"github.com/CHARLESojini/SkyRide-Weather-API-project/internal/server"
	"github.com/CHARLESojini/SkyRide-Weather-API-project/internal/service"
	"github.com/CHARLESojini/SkyRide-Weather-API-project/internal/weather"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Constants for different environment types.
const (
	envLocal = "local"
	envDev   = "development"
	envProd  = "production"
)

// main is the entry point of the application.
func main() {
	// Create a context that will be canceled when an interrupt signal is received.
	// This allows for graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load application configuration.
	cfg := config.MustLoad()

	// Set up the logger based on the environment.
	logger := setupLogger(cfg.Env)

	// Missing keys are not fatal at startup; they surface later as upstream
	// authentication failures at request time.
	if cfg.GeocodingAPIKey == "" {
		logger.Warn("GEOCODING_API_KEY is not set; geocoding requests will fail upstream")
	}
	if cfg.WeatherAPIKey == "" {
		logger.Warn("OPENWEATHER_API_KEY is not set; weather requests will fail upstream")
	}

	// Create a separate registry for metrics with exemplar
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.NewMetrics(reg)

	// Create geocoding provider using factory pattern based on configuration.
	// This allows runtime selection between different providers (Geoapify, Google).
	rateLimit := 5
	geoProvider, err := geocoding.NewProvider(geocoding.ProviderConfig{
		Type:      geocoding.ProviderType(cfg.Geocoder),
		APIKey:    cfg.GeocodingAPIKey,
		RateLimit: rateLimit,
		Logger:    logger,
	})
	if err != nil {
		log.Fatalf("Failed to create geocoding provider: %v", err)
	}

	logger.InfoContext(ctx, "Geocoding provider initialized", "type", cfg.Geocoder)

	// Init the weather pipeline: client, formatter and orchestrator.
	weatherClient := weather.NewClient(cfg.WeatherAPIKey, logger)
	formatter := format.NewFormatter(logger)
	weatherSvc := service.NewWeatherService(logger, geoProvider, weatherClient, formatter, appMetrics)

	srv := server.New(logger, weatherSvc, reg)

	// Start the HTTP server in a goroutine to allow main to listen for signals.
	go func() {
		logger.InfoContext(ctx, "Starting HTTP server", "port", cfg.Port)
		if listenErr := srv.Listen(cfg.Port); listenErr != nil {
			logger.ErrorContext(ctx, "HTTP server failed", "error", listenErr)
			stop()
		}
	}()

	// Log that the application has started.
	logger.InfoContext(ctx, "Application started. Press Ctrl+C to stop.")

	// Wait for the context to be canceled (e.g., by Ctrl+C).
	<-ctx.Done()

	// Log that a shutdown signal has been received.
	logger.InfoContext(ctx, "Shutdown signal received. Stopping application...")

	shutdownTimeout := 5
	if err = srv.Shutdown(time.Duration(shutdownTimeout) * time.Second); err != nil {
		logger.ErrorContext(ctx, "Server forced to shutdown", "error", err)
	}

	// Log graceful shutdown completion.
	logger.InfoContext(ctx, "Application stopped gracefully.")
}

// setupLogger initializes and returns a logger based on the environment provided.
func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
				Level:     slog.LevelDebug,
				AddSource: true,
			}),
		)
	case envDev:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level:     slog.LevelInfo,
				AddSource: false,
			}),
		)
	case envProd:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level:     slog.LevelInfo,
				AddSource: false,
				ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
					if a.Key == slog.TimeKey {
						return slog.Attr{}
					}
					return a
				},
			}),
		)
	default:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level:     slog.LevelError,
				AddSource: false,
			}),
		)

		log.Error(
			"The env parameter was not specified or was invalid. Logging will be minimal, by default.",
			slog.String("available_envs", "local, development, production"))
	}

	return log
}
