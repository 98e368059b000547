// Package apperr defines the error taxonomy of the weather pipeline.
// Every failure a request can hit maps onto exactly one of these types;
// the HTTP handler converts them into response details in a single place.
package apperr

import "fmt"

// Provider labels used by UpstreamError and the metrics.
const (
	ProviderGeocoding = "geocoding"
	ProviderWeather   = "weather"
)

// UpstreamError reports a transport failure, timeout or non-success status
// from one of the external providers.
type UpstreamError struct {
	Provider string // which upstream failed: "geocoding" or "weather"
	Err      error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s provider error: %v", e.Provider, e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// NotFoundError means the geocoding call succeeded but returned no matches
// for the requested city.
type NotFoundError struct {
	City string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("city %q not found in geocoding results", e.City)
}

// FormatError means the weather payload could not be reshaped into the
// output schema. No partial result is ever produced alongside it.
type FormatError struct {
	Err error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("data formatting error: %v", e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

// UnexpectedError classifies any failure outside the taxonomy above.
type UnexpectedError struct {
	Err error
}

func (e *UnexpectedError) Error() string {
	return fmt.Sprintf("unexpected error: %v", e.Err)
}

func (e *UnexpectedError) Unwrap() error { return e.Err }
