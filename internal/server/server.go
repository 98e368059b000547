// Package server wires the HTTP surface of the weather backend.
package server

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/CHARLESojini/SkyRide-Weather-API-project/internal/apperr"
	"github.com/CHARLESojini/SkyRide-Weather-API-project/internal/service"
)

// Server exposes the weather pipeline over HTTP: the health check, the
// weather endpoint and the operational endpoints (healthz, metrics).
type Server struct {
	app     *fiber.App              // Fiber application with routes and middleware
	log     *slog.Logger            // Logger for logging server events
	weather *service.WeatherService // Orchestrator for the weather pipeline
}

// New creates a Server with open CORS (all origins, methods and headers)
// and the routes registered.
func New(log *slog.Logger, weatherSvc *service.WeatherService, reg *prometheus.Registry) *Server {
	const (
		readTimeout  = 5
		writeTimeout = 10
	)

	app := fiber.New(fiber.Config{
		AppName:      "SkyRide Weather API",
		ReadTimeout:  readTimeout * time.Second,
		WriteTimeout: writeTimeout * time.Second,
	})

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${method} ${path} (${latency})\n",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders: "*",
	}))

	srv := &Server{app: app, log: log, weather: weatherSvc}

	app.Get("/", srv.handleRoot)
	app.Get("/weather", srv.handleWeather)
	app.Get("/healthz", srv.handleHealthz)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	return srv
}

// App exposes the underlying Fiber application, mainly for tests.
func (s *Server) App() *fiber.App { return s.app }

// Listen starts the HTTP server on the given port and blocks.
func (s *Server) Listen(port int) error {
	return s.app.Listen(fmt.Sprintf(":%d", port))
}

// Shutdown gracefully stops the server within the given timeout.
func (s *Server) Shutdown(timeout time.Duration) error {
	return s.app.ShutdownWithTimeout(timeout)
}

// handleRoot reports that the backend is up.
func (s *Server) handleRoot(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "Hello World",
		"status":  "Backend is running",
	})
}

// handleHealthz is the liveness probe.
func (s *Server) handleHealthz(c *fiber.Ctx) error {
	return c.SendString("OK")
}

// handleWeather runs the pipeline for the requested city. Every pipeline
// failure is reported as a 500 with a human-readable detail message; the
// status code deliberately does not distinguish error kinds.
func (s *Server) handleWeather(c *fiber.Ctx) error {
	city := c.Query("city")
	if city == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"detail": "city query parameter is required",
		})
	}

	// The pipeline runs on the user context, which Fiber does not tie to
	// the client connection: a disconnect does not abort in-flight
	// upstream calls.
	formatted, err := s.weather.Current(c.UserContext(), city)
	if err != nil {
		s.log.ErrorContext(c.UserContext(), "Weather request failed", "city", city, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"detail": detailMessage(err),
		})
	}

	return c.JSON(formatted)
}

// detailMessage converts a pipeline error into the response detail string.
func detailMessage(err error) string {
	var (
		notFound  *apperr.NotFoundError
		upstream  *apperr.UpstreamError
		formatErr *apperr.FormatError
	)

	switch {
	case errors.As(err, &notFound):
		return fmt.Sprintf("City '%s' not found in geocoding results", notFound.City)
	case errors.As(err, &upstream):
		if upstream.Provider == apperr.ProviderGeocoding {
			return fmt.Sprintf("Geocoding API error: %v. Check GEOCODING_API_KEY.", upstream.Err)
		}
		return fmt.Sprintf("Weather API error: %v. Check OPENWEATHER_API_KEY.", upstream.Err)
	case errors.As(err, &formatErr):
		return fmt.Sprintf("Data formatting error: %v", formatErr.Err)
	default:
		return (&apperr.UnexpectedError{Err: err}).Error()
	}
}
