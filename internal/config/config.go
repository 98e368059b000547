package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the configuration settings for the weather backend.
// It includes the environment, server port, the geocoding provider
// selection and the API keys for both external providers.
//
// Fields:
// - Env: The current environment (e.g., local, development, production).
// - Port: The port for the HTTP server.
// - Geocoder: The type of geocoding provider to use (geoapify, google).
// - GeocodingAPIKey: The API key for the geocoding provider.
// - WeatherAPIKey: The API key for the OpenWeather API.
type Config struct {
	Env             string // Env is the current environment: local, development, production.
	Port            int    // Port is the HTTP server port.
	Geocoder        string // Geocoder specifies which geocoding provider to use.
	GeocodingAPIKey string // The API key for the geocoding provider.
	WeatherAPIKey   string // The API key for the OpenWeather API.
}

// MustLoad loads the configuration from the environment (and an optional
// .env file) and returns a Config struct. API keys are read as-is; their
// absence is not fatal here and is reported at startup by the caller.
func MustLoad() *Config {
	_ = godotenv.Load()

	port, err := strconv.Atoi(setDefaultEnv("SKYRIDE_PORT", "8000"))
	if err != nil {
		panic("failed to parse port for HTTP server from configuration")
	}

	return &Config{
		Env:             setDefaultEnv("SKYRIDE_ENV", "production"),
		Port:            port,
		Geocoder:        setDefaultEnv("SKYRIDE_GEOCODER", "geoapify"),
		GeocodingAPIKey: os.Getenv("GEOCODING_API_KEY"),
		WeatherAPIKey:   os.Getenv("OPENWEATHER_API_KEY"),
	}
}

func setDefaultEnv(key, override string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		value = override
	}

	return value
}
