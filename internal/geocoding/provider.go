package geocoding

import (
	"context"

	"github.com/CHARLESojini/SkyRide-Weather-API-project/internal/models"
)

// Provider is an interface that defines a method for resolving a city name.
// The Geocode method takes a context and a city name as input, and returns
// the coordinates of the best match and an error if any occurs.
type Provider interface {
	Geocode(ctx context.Context, city string) (*models.Coordinates, error)
}
