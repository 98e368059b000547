// Package weather holds the client for the external weather provider.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/CHARLESojini/SkyRide-Weather-API-project/internal/apperr"
	"github.com/CHARLESojini/SkyRide-Weather-API-project/internal/models"
	"github.com/go-resty/resty/v2"
)

// OpenWeatherBaseURL -- OpenWeather API base URL.
const OpenWeatherBaseURL = "https://api.openweathermap.org"

// currentWeatherPath is the current-conditions endpoint of the API.
const currentWeatherPath = "/data/2.5/weather"

// Fetcher is an interface that defines a method for fetching the current
// weather payload for a geographical point.
type Fetcher interface {
	Fetch(ctx context.Context, coords models.Coordinates) (models.RawWeatherPayload, error)
}

// Client fetches current weather from the OpenWeather API. The response
// body is returned verbatim as a weakly-typed document; shape validation
// is deferred to the formatter.
type Client struct {
	http   *resty.Client // HTTP client for making requests
	apiKey string        // API key for the OpenWeather API
	log    *slog.Logger  // Logger for logging operations
}

// NewClient creates a new OpenWeather client with a 5-second request timeout.
func NewClient(apiKey string, log *slog.Logger) *Client {
	return NewClientWithBaseURL(OpenWeatherBaseURL, apiKey, log)
}

// NewClientWithBaseURL creates a client against a custom API host.
// Useful for testing against a stub server.
func NewClientWithBaseURL(baseURL, apiKey string, log *slog.Logger) *Client {
	const timeout = 5

	return &Client{
		http:   resty.New().SetBaseURL(baseURL).SetTimeout(timeout * time.Second),
		apiKey: apiKey,
		log:    log,
	}
}

// Fetch retrieves the current weather for the given coordinates and returns
// the parsed JSON body as-is. Transport failures and non-success statuses
// surface as UpstreamError for the weather provider.
func (c *Client) Fetch(ctx context.Context, coords models.Coordinates) (models.RawWeatherPayload, error) {
	c.log.InfoContext(ctx, "Fetching weather", "lat", coords.Latitude, "lon", coords.Longitude)

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"lat":   strconv.FormatFloat(coords.Latitude, 'f', -1, 64),
			"lon":   strconv.FormatFloat(coords.Longitude, 'f', -1, 64),
			"appid": c.apiKey,
		}).
		Get(currentWeatherPath)
	if err != nil {
		c.log.ErrorContext(ctx, "Weather request failed", "error", err)
		return nil, &apperr.UpstreamError{
			Provider: apperr.ProviderWeather,
			Err:      fmt.Errorf("failed to execute weather request: %w", err),
		}
	}

	if resp.StatusCode() != http.StatusOK {
		c.log.ErrorContext(ctx, "OpenWeather API error", "status", resp.StatusCode(), "body", string(resp.Body()))
		return nil, &apperr.UpstreamError{
			Provider: apperr.ProviderWeather,
			Err:      fmt.Errorf("openweather API returned status %d: %s", resp.StatusCode(), resp.Body()),
		}
	}

	var payload models.RawWeatherPayload
	if err = json.Unmarshal(resp.Body(), &payload); err != nil {
		c.log.ErrorContext(ctx, "Failed to parse OpenWeather response", "error", err)
		return nil, &apperr.UpstreamError{
			Provider: apperr.ProviderWeather,
			Err:      fmt.Errorf("failed to decode openweather response: %w", err),
		}
	}

	c.log.InfoContext(ctx, "Received weather data")

	return payload, nil
}
