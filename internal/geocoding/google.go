package geocoding

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/CHARLESojini/SkyRide-Weather-API-project/internal/apperr"
	"github.com/CHARLESojini/SkyRide-Weather-API-project/internal/models"
	"googlemaps.github.io/maps"
)

// GoogleProvider is a struct that holds the client for Google Maps API
// and a logger for logging purposes. It is used as an alternative to the
// default Geoapify provider when selected via configuration.
type GoogleProvider struct {
	client GoogleAPIClient // client is the Google Maps API client
	log    *slog.Logger    // log is the logger for logging operations
}

// GoogleAPIClient is the subset of the Google Maps client used by the
// provider, extracted for mocking in tests.
type GoogleAPIClient interface {
	Geocode(ctx context.Context, r *maps.GeocodingRequest) ([]maps.GeocodingResult, error)
}

// NewGoogleProvider initializes a new GoogleProvider with the given client and logger.
func NewGoogleProvider(client GoogleAPIClient, log *slog.Logger) *GoogleProvider {
	return &GoogleProvider{client: client, log: log}
}

// Geocode resolves a city name into geographic coordinates using the Google
// Maps Geocoding API. SDK failures surface as UpstreamError; an empty result
// set surfaces as NotFoundError for the requested city.
func (gp *GoogleProvider) Geocode(ctx context.Context, city string) (*models.Coordinates, error) {
	gp.log.InfoContext(ctx, "Fetching coordinates", "city", city)

	req := maps.GeocodingRequest{Address: city}
	geocodeResponse, err := gp.client.Geocode(ctx, &req)
	if err != nil {
		gp.log.ErrorContext(ctx, "Geocoding request failed", "city", city, "error", err)
		return nil, &apperr.UpstreamError{
			Provider: apperr.ProviderGeocoding,
			Err:      fmt.Errorf("failed to geocode city: %w", err),
		}
	}

	if len(geocodeResponse) == 0 {
		gp.log.WarnContext(ctx, "Google Maps returned no results", "city", city)
		return nil, &apperr.NotFoundError{City: city}
	}
	loc := geocodeResponse[0].Geometry.Location

	gp.log.InfoContext(ctx, "Google Maps found result", "city", city, "lat", loc.Lat, "lon", loc.Lng)

	return &models.Coordinates{Latitude: loc.Lat, Longitude: loc.Lng}, nil
}
