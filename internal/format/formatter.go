// Package format reshapes raw weather payloads into the response contract.
package format

import (
	"context"
	"log/slog"

	"github.com/CHARLESojini/SkyRide-Weather-API-project/internal/apperr"
	"github.com/CHARLESojini/SkyRide-Weather-API-project/internal/models"
)

// Source identifies the upstream weather provider in formatted responses.
const Source = "openweathermap"

// Formatter maps raw OpenWeather payloads into the normalized schema,
// converting all temperature fields to celsius.
type Formatter struct {
	log *slog.Logger // Logger for logging operations
}

// NewFormatter creates a new Formatter.
func NewFormatter(log *slog.Logger) *Formatter {
	return &Formatter{log: log}
}

// Format reshapes the payload into FormattedWeather. Absent optional fields
// become null rather than failing; absent temperature readings default to
// 0 K before conversion. A type mismatch anywhere in the payload fails the
// whole operation with FormatError — no partial result is returned.
func (f *Formatter) Format(ctx context.Context, payload models.RawWeatherPayload) (*models.FormattedWeather, error) {
	formatted, err := reshape(payload)
	if err != nil {
		f.log.ErrorContext(ctx, "Failed to format weather payload", "error", err)
		return nil, &apperr.FormatError{Err: err}
	}

	f.log.InfoContext(ctx, "Formatted weather data", "city", stringOrEmpty(formatted.City))

	return formatted, nil
}

func reshape(payload models.RawWeatherPayload) (*models.FormattedWeather, error) {
	conditions, err := firstObject(payload, "weather")
	if err != nil {
		return nil, err
	}
	main, err := subObject(payload, "main")
	if err != nil {
		return nil, err
	}
	wind, err := subObject(payload, "wind")
	if err != nil {
		return nil, err
	}
	sys, err := subObject(payload, "sys")
	if err != nil {
		return nil, err
	}
	clouds, err := subObject(payload, "clouds")
	if err != nil {
		return nil, err
	}

	out := &models.FormattedWeather{
		Coordinates: payload["coord"],
		Source:      Source,
	}

	if out.City, err = stringField(payload, "name"); err != nil {
		return nil, err
	}
	if out.Country, err = stringField(sys, "country"); err != nil {
		return nil, err
	}

	if out.Conditions.Label, err = stringField(conditions, "main"); err != nil {
		return nil, err
	}
	if out.Conditions.Description, err = stringField(conditions, "description"); err != nil {
		return nil, err
	}
	if out.Conditions.Icon, err = stringField(conditions, "icon"); err != nil {
		return nil, err
	}

	if out.Temperature.CurrentC, err = celsiusField(main, "temp"); err != nil {
		return nil, err
	}
	if out.Temperature.FeelsLikeC, err = celsiusField(main, "feels_like"); err != nil {
		return nil, err
	}
	if out.Temperature.MinC, err = celsiusField(main, "temp_min"); err != nil {
		return nil, err
	}
	if out.Temperature.MaxC, err = celsiusField(main, "temp_max"); err != nil {
		return nil, err
	}

	if out.Humidity, err = numberField(main, "humidity"); err != nil {
		return nil, err
	}
	if out.Pressure, err = numberField(main, "pressure"); err != nil {
		return nil, err
	}

	if out.Wind.SpeedMps, err = numberField(wind, "speed"); err != nil {
		return nil, err
	}
	if out.Wind.DirectionDeg, err = numberField(wind, "deg"); err != nil {
		return nil, err
	}
	if out.Wind.GustMps, err = numberField(wind, "gust"); err != nil {
		return nil, err
	}

	if out.VisibilityM, err = numberField(payload, "visibility"); err != nil {
		return nil, err
	}
	if out.CloudCoverPct, err = numberField(clouds, "all"); err != nil {
		return nil, err
	}
	if out.Timestamp, err = intField(payload, "dt"); err != nil {
		return nil, err
	}
	if out.TimezoneOffsetS, err = intField(payload, "timezone"); err != nil {
		return nil, err
	}

	return out, nil
}

// celsiusField reads an absolute temperature field and converts it to
// celsius. An absent reading defaults to 0 K, yielding -273.1.
func celsiusField(doc map[string]any, key string) (float64, error) {
	num, err := numberField(doc, key)
	if err != nil {
		return 0, err
	}
	if num == nil {
		return KelvinToCelsius(0), nil
	}

	return KelvinToCelsius(*num), nil
}

func stringOrEmpty(str *string) string {
	if str == nil {
		return ""
	}

	return *str
}
