package format_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/CHARLESojini/SkyRide-Weather-API-project/internal/apperr"
	"github.com/CHARLESojini/SkyRide-Weather-API-project/internal/format"
	"github.com/CHARLESojini/SkyRide-Weather-API-project/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// payloadFromJSON decodes a JSON literal the way the weather client does,
// so field types match real responses.
func payloadFromJSON(t *testing.T, raw string) models.RawWeatherPayload {
	t.Helper()

	var payload models.RawWeatherPayload
	require.NoError(t, json.Unmarshal([]byte(raw), &payload))

	return payload
}

func TestFormatter_Format(t *testing.T) {
	ctx := context.Background()
	formatter := format.NewFormatter(slog.Default())

	t.Run("full payload", func(t *testing.T) {
		payload := payloadFromJSON(t, `{
			"main": {"temp": 283.15, "feels_like": 282.0, "temp_min": 281.0, "temp_max": 285.0, "humidity": 70, "pressure": 1012},
			"weather": [{"main": "Clouds", "description": "overcast clouds", "icon": "04d"}],
			"wind": {"speed": 3.1, "deg": 200},
			"name": "London",
			"sys": {"country": "GB"},
			"coord": {"lat": 51.51, "lon": -0.13},
			"visibility": 10000,
			"clouds": {"all": 90},
			"dt": 1700000000,
			"timezone": 0
		}`)

		formatted, err := formatter.Format(ctx, payload)

		require.NoError(t, err)
		require.NotNil(t, formatted)

		require.NotNil(t, formatted.City)
		assert.Equal(t, "London", *formatted.City)
		require.NotNil(t, formatted.Country)
		assert.Equal(t, "GB", *formatted.Country)

		assert.InDelta(t, 10.0, formatted.Temperature.CurrentC, 0.0001)
		assert.InDelta(t, 8.9, formatted.Temperature.FeelsLikeC, 0.0001)
		assert.InDelta(t, 7.9, formatted.Temperature.MinC, 0.0001)
		assert.InDelta(t, 11.9, formatted.Temperature.MaxC, 0.0001)

		require.NotNil(t, formatted.Conditions.Label)
		assert.Equal(t, "Clouds", *formatted.Conditions.Label)
		require.NotNil(t, formatted.Conditions.Description)
		assert.Equal(t, "overcast clouds", *formatted.Conditions.Description)
		require.NotNil(t, formatted.Conditions.Icon)
		assert.Equal(t, "04d", *formatted.Conditions.Icon)

		require.NotNil(t, formatted.Humidity)
		assert.InDelta(t, 70, *formatted.Humidity, 0.0001)
		require.NotNil(t, formatted.Pressure)
		assert.InDelta(t, 1012, *formatted.Pressure, 0.0001)

		require.NotNil(t, formatted.Wind.SpeedMps)
		assert.InDelta(t, 3.1, *formatted.Wind.SpeedMps, 0.0001)
		require.NotNil(t, formatted.Wind.DirectionDeg)
		assert.InDelta(t, 200, *formatted.Wind.DirectionDeg, 0.0001)
		assert.Nil(t, formatted.Wind.GustMps)

		require.NotNil(t, formatted.VisibilityM)
		assert.InDelta(t, 10000, *formatted.VisibilityM, 0.0001)
		require.NotNil(t, formatted.CloudCoverPct)
		assert.InDelta(t, 90, *formatted.CloudCoverPct, 0.0001)

		require.NotNil(t, formatted.Timestamp)
		assert.Equal(t, int64(1700000000), *formatted.Timestamp)
		require.NotNil(t, formatted.TimezoneOffsetS)
		assert.Equal(t, int64(0), *formatted.TimezoneOffsetS)

		assert.Equal(t, "openweathermap", formatted.Source)
		assert.NotNil(t, formatted.Coordinates)
	})

	t.Run("missing wind yields null wind fields", func(t *testing.T) {
		payload := payloadFromJSON(t, `{"main": {"temp": 283.15}, "name": "London"}`)

		formatted, err := formatter.Format(ctx, payload)

		require.NoError(t, err)
		assert.Nil(t, formatted.Wind.SpeedMps)
		assert.Nil(t, formatted.Wind.DirectionDeg)
		assert.Nil(t, formatted.Wind.GustMps)
	})

	t.Run("empty weather array yields null conditions", func(t *testing.T) {
		payload := payloadFromJSON(t, `{"weather": [], "main": {"temp": 283.15}}`)

		formatted, err := formatter.Format(ctx, payload)

		require.NoError(t, err)
		assert.Nil(t, formatted.Conditions.Label)
		assert.Nil(t, formatted.Conditions.Description)
		assert.Nil(t, formatted.Conditions.Icon)
	})

	t.Run("missing temperatures default to absolute zero", func(t *testing.T) {
		payload := payloadFromJSON(t, `{"name": "Nowhere"}`)

		formatted, err := formatter.Format(ctx, payload)

		require.NoError(t, err)
		assert.InDelta(t, -273.1, formatted.Temperature.CurrentC, 0.0001)
		assert.InDelta(t, -273.1, formatted.Temperature.FeelsLikeC, 0.0001)
		assert.InDelta(t, -273.1, formatted.Temperature.MinC, 0.0001)
		assert.InDelta(t, -273.1, formatted.Temperature.MaxC, 0.0001)
	})

	t.Run("empty payload never fails", func(t *testing.T) {
		formatted, err := formatter.Format(ctx, models.RawWeatherPayload{})

		require.NoError(t, err)
		assert.Nil(t, formatted.City)
		assert.Nil(t, formatted.Country)
		assert.Nil(t, formatted.Coordinates)
		assert.Nil(t, formatted.Humidity)
		assert.Nil(t, formatted.Timestamp)
		assert.Equal(t, "openweathermap", formatted.Source)
	})

	t.Run("malformed main sub-object fails the whole format", func(t *testing.T) {
		payload := payloadFromJSON(t, `{"main": "not an object"}`)

		formatted, err := formatter.Format(ctx, payload)

		require.Error(t, err)
		assert.Nil(t, formatted)

		var formatErr *apperr.FormatError
		require.ErrorAs(t, err, &formatErr)
	})

	t.Run("malformed weather array fails the whole format", func(t *testing.T) {
		payload := payloadFromJSON(t, `{"weather": {"main": "Clouds"}}`)

		formatted, err := formatter.Format(ctx, payload)

		require.Error(t, err)
		assert.Nil(t, formatted)

		var formatErr *apperr.FormatError
		require.ErrorAs(t, err, &formatErr)
	})

	t.Run("mistyped temperature fails the whole format", func(t *testing.T) {
		payload := payloadFromJSON(t, `{"main": {"temp": "283.15"}}`)

		formatted, err := formatter.Format(ctx, payload)

		require.Error(t, err)
		assert.Nil(t, formatted)

		var formatErr *apperr.FormatError
		require.ErrorAs(t, err, &formatErr)
	})
}
