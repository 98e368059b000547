package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/CHARLESojini/SkyRide-Weather-API-project/internal/config"
	"github.com/Flaque/filet"
	"github.com/stretchr/testify/assert"
)

func Test_MustLoad(t *testing.T) {
	t.Setenv("SKYRIDE_ENV", "local")
	t.Setenv("SKYRIDE_PORT", "9000")
	t.Setenv("SKYRIDE_GEOCODER", "google")
	t.Setenv("GEOCODING_API_KEY", "testGeoKey")
	t.Setenv("OPENWEATHER_API_KEY", "testWeatherKey")

	cfg := config.MustLoad()

	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, "google", cfg.Geocoder)
	assert.Equal(t, "testGeoKey", cfg.GeocodingAPIKey)
	assert.Equal(t, "testWeatherKey", cfg.WeatherAPIKey)
}

// chdir changes the working directory for the duration of the test,
// restoring it on cleanup (stand-in for t.Chdir, added in Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}

func TestMustLoad_Defaults(t *testing.T) {
	// Run from an empty directory so no .env file is picked up.
	chdir(t, filet.TmpDir(t, ""))
	defer filet.CleanUp(t)

	cfg := config.MustLoad()

	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, 8000, cfg.Port)
	assert.Equal(t, "geoapify", cfg.Geocoder)
}

func TestMustLoad_PortError(t *testing.T) {
	t.Setenv("SKYRIDE_PORT", "error_value")

	assert.PanicsWithValue(t, "failed to parse port for HTTP server from configuration", func() {
		config.MustLoad()
	})
}

func TestMustLoad_DotEnvFile(t *testing.T) {
	dir := filet.TmpDir(t, "")
	defer filet.CleanUp(t)

	filet.File(t, filepath.Join(dir, ".env"), "SKYRIDE_GEOCODER=google\nGEOCODING_API_KEY=fromDotenv\n")
	chdir(t, dir)

	// godotenv only fills unset variables and mutates the process
	// environment, so clear them first and after the test.
	unset := func() {
		_ = os.Unsetenv("SKYRIDE_GEOCODER")
		_ = os.Unsetenv("GEOCODING_API_KEY")
	}
	unset()
	t.Cleanup(unset)

	cfg := config.MustLoad()

	assert.Equal(t, "google", cfg.Geocoder)
	assert.Equal(t, "fromDotenv", cfg.GeocodingAPIKey)
}
