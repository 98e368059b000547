package geocoding

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/CHARLESojini/SkyRide-Weather-API-project/internal/apperr"
	"github.com/CHARLESojini/SkyRide-Weather-API-project/internal/models"
	"golang.org/x/time/rate"
)

// GeoapifyBaseURL -- Geoapify geocoding API base URL.
const GeoapifyBaseURL = "https://api.geoapify.com/v1/geocode/search"

// GeoapifyProvider implements the Provider interface using the Geoapify
// geocoding API. Results are ordered by the provider; only the first one
// is ever used, with no further ranking or disambiguation.
type GeoapifyProvider struct {
	client  HTTPClient    // HTTP client for making requests
	baseURL string        // Base URL for the Geoapify API
	apiKey  string        // API key with geocoding access
	log     *slog.Logger  // Logger for logging operations
	limiter *rate.Limiter // Rate limiter
}

// HTTPClient defines the interface for making HTTP requests.
// This allows for easy mocking in tests.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// geoapifyResponse represents the JSON response from the Geoapify API
// (simplified to the fields the service needs).
type geoapifyResponse struct {
	Results []struct {
		Lat float64 `json:"lat"` // Latitude of the match
		Lon float64 `json:"lon"` // Longitude of the match
	} `json:"results"`
}

// NewGeoapifyProvider creates a new Geoapify geocoding provider with a
// 5-second request timeout.
func NewGeoapifyProvider(apiKey string, rateLimit int, log *slog.Logger) *GeoapifyProvider {
	const timeout = 5

	return &GeoapifyProvider{
		client: &http.Client{
			Timeout: timeout * time.Second,
		},
		baseURL: GeoapifyBaseURL,
		apiKey:  apiKey,
		log:     log,
		limiter: rate.NewLimiter(rate.Limit(rateLimit), rateLimit),
	}
}

// NewGeoapifyProviderWithClient allows injecting custom HTTP client.
// Useful for testing with mocked HTTP clients.
func NewGeoapifyProviderWithClient(
	client HTTPClient,
	apiKey string,
	limiter *rate.Limiter,
	log *slog.Logger,
) *GeoapifyProvider {
	return &GeoapifyProvider{
		client:  client,
		baseURL: GeoapifyBaseURL,
		apiKey:  apiKey,
		log:     log,
		limiter: limiter,
	}
}

// Geocode resolves a city name into geographic coordinates using the
// Geoapify API. Transport failures and non-success statuses surface as
// UpstreamError; a successful response with no matches surfaces as
// NotFoundError for the requested city.
func (gp *GeoapifyProvider) Geocode(ctx context.Context, city string) (*models.Coordinates, error) {
	if err := gp.limiter.Wait(ctx); err != nil {
		return nil, &apperr.UpstreamError{
			Provider: apperr.ProviderGeocoding,
			Err:      fmt.Errorf("rate limit exceeded: %w", err),
		}
	}

	gp.log.InfoContext(ctx, "Fetching coordinates", "city", city)

	reqURL, err := url.Parse(gp.baseURL)
	if err != nil {
		return nil, &apperr.UpstreamError{
			Provider: apperr.ProviderGeocoding,
			Err:      fmt.Errorf("failed to parse base URL: %w", err),
		}
	}

	query := reqURL.Query()
	query.Set("text", city)
	query.Set("format", "json")
	query.Set("apiKey", gp.apiKey)
	reqURL.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return nil, &apperr.UpstreamError{
			Provider: apperr.ProviderGeocoding,
			Err:      fmt.Errorf("failed to create request: %w", err),
		}
	}

	req.Header.Set("Accept", "application/json")

	resp, err := gp.client.Do(req)
	if err != nil {
		gp.log.ErrorContext(ctx, "Geocoding request failed", "city", city, "error", err)
		return nil, &apperr.UpstreamError{
			Provider: apperr.ProviderGeocoding,
			Err:      fmt.Errorf("failed to execute geocoding request: %w", err),
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		gp.log.ErrorContext(ctx, "Geoapify API error", "status", resp.StatusCode, "body", string(body))
		return nil, &apperr.UpstreamError{
			Provider: apperr.ProviderGeocoding,
			Err:      fmt.Errorf("geoapify API returned status %d: %s", resp.StatusCode, string(body)),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &apperr.UpstreamError{
			Provider: apperr.ProviderGeocoding,
			Err:      fmt.Errorf("failed to read response body: %w", err),
		}
	}

	var result geoapifyResponse
	if err = json.Unmarshal(body, &result); err != nil {
		gp.log.ErrorContext(ctx, "Failed to parse Geoapify response", "error", err, "body", string(body))
		return nil, &apperr.UpstreamError{
			Provider: apperr.ProviderGeocoding,
			Err:      fmt.Errorf("failed to decode geoapify response: %w", err),
		}
	}

	if len(result.Results) == 0 {
		gp.log.WarnContext(ctx, "Geoapify returned no results", "city", city)
		return nil, &apperr.NotFoundError{City: city}
	}

	first := result.Results[0]
	gp.log.InfoContext(ctx, "Geoapify found result", "city", city, "lat", first.Lat, "lon", first.Lon)

	return &models.Coordinates{
		Latitude:  first.Lat,
		Longitude: first.Lon,
	}, nil
}
