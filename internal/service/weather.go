package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/CHARLESojini/SkyRide-Weather-API-project/internal/apperr"
	"github.com/CHARLESojini/SkyRide-Weather-API-project/internal/format"
	"github.com/CHARLESojini/SkyRide-Weather-API-project/internal/geocoding"
	"github.com/CHARLESojini/SkyRide-Weather-API-project/internal/metrics"
	"github.com/CHARLESojini/SkyRide-Weather-API-project/internal/models"
	"github.com/CHARLESojini/SkyRide-Weather-API-project/internal/weather"
)

// WeatherService orchestrates the request pipeline: resolve the city to
// coordinates, fetch the raw weather payload for them, reshape it into the
// response contract. It holds no mutable state across requests.
type WeatherService struct {
	log       *slog.Logger       // Logger for logging service activities
	geocoder  geocoding.Provider // Geocoding provider for resolving city names
	fetcher   weather.Fetcher    // Weather client for the raw payload
	formatter *format.Formatter  // Formatter for the response contract
	metrics   *metrics.Metrics   // Metrics for tracking service performance
}

// NewWeatherService creates a new instance of WeatherService.
func NewWeatherService(
	log *slog.Logger,
	geocoder geocoding.Provider,
	fetcher weather.Fetcher,
	formatter *format.Formatter,
	appMetrics *metrics.Metrics,
) *WeatherService {
	return &WeatherService{
		log:       log,
		geocoder:  geocoder,
		fetcher:   fetcher,
		formatter: formatter,
		metrics:   appMetrics,
	}
}

// Current handles a single weather request for the given city name.
// The two upstream calls are strictly sequential — the weather call needs
// the resolved coordinate — and no stage is retried or cached; the first
// failure is returned to the caller unchanged.
func (ws *WeatherService) Current(ctx context.Context, city string) (*models.FormattedWeather, error) {
	ws.log.InfoContext(ctx, "Handling weather request", "city", city)

	startTime := time.Now()
	coords, err := ws.geocoder.Geocode(ctx, city)
	ws.metrics.UpstreamRequestSeconds.WithLabelValues(apperr.ProviderGeocoding).
		Observe(time.Since(startTime).Seconds())
	if err != nil {
		ws.metrics.UpstreamErrors.WithLabelValues(apperr.ProviderGeocoding).Inc()
		ws.metrics.RequestsTotal.WithLabelValues("rejected").Inc()
		return nil, err
	}

	startTime = time.Now()
	payload, err := ws.fetcher.Fetch(ctx, *coords)
	ws.metrics.UpstreamRequestSeconds.WithLabelValues(apperr.ProviderWeather).
		Observe(time.Since(startTime).Seconds())
	if err != nil {
		ws.metrics.UpstreamErrors.WithLabelValues(apperr.ProviderWeather).Inc()
		ws.metrics.RequestsTotal.WithLabelValues("rejected").Inc()
		return nil, err
	}

	formatted, err := ws.formatter.Format(ctx, payload)
	if err != nil {
		ws.metrics.RequestsTotal.WithLabelValues("rejected").Inc()
		return nil, err
	}

	formatted.InputCity = city
	ws.metrics.RequestsTotal.WithLabelValues("fulfilled").Inc()
	ws.log.InfoContext(ctx, "Weather data returned", "city", city)

	return formatted, nil
}
