package format

import "math"

// absoluteZeroOffset is the offset between the Kelvin and Celsius scales.
const absoluteZeroOffset = 273.15

// KelvinToCelsius converts an absolute temperature to celsius, rounded to
// one decimal place. Total; never fails.
func KelvinToCelsius(kelvin float64) float64 {
	return math.Round((kelvin-absoluteZeroOffset)*10) / 10
}
