package models

// RawWeatherPayload is the weather provider's JSON body, parsed but not
// validated. Every field must be treated as possibly absent; shape checks
// happen in the formatter, not at fetch time.
type RawWeatherPayload map[string]any

// Conditions describes the weather condition summary of the first entry in
// the provider's `weather` array.
type Conditions struct {
	Label       *string `json:"label"`
	Description *string `json:"description"`
	Icon        *string `json:"icon"`
}

// Temperature holds the converted temperature readings in celsius, rounded
// to one decimal. These fields are never null: an absent upstream reading
// defaults to 0 K before conversion.
type Temperature struct {
	CurrentC   float64 `json:"current_c"`
	FeelsLikeC float64 `json:"feels_like_c"`
	MinC       float64 `json:"min_c"`
	MaxC       float64 `json:"max_c"`
}

// Wind describes the wind readings of the provider's `wind` sub-object.
type Wind struct {
	SpeedMps     *float64 `json:"speed_mps"`
	DirectionDeg *float64 `json:"direction_deg"`
	GustMps      *float64 `json:"gust_mps"`
}

// FormattedWeather is the response contract of the /weather endpoint.
// Coordinates carries the provider's original coordinate object untouched.
type FormattedWeather struct {
	City            *string     `json:"city"`
	Country         *string     `json:"country"`
	Coordinates     any         `json:"coordinates"`
	Conditions      Conditions  `json:"conditions"`
	Temperature     Temperature `json:"temperature"`
	Humidity        *float64    `json:"humidity"`
	Pressure        *float64    `json:"pressure"`
	Wind            Wind        `json:"wind"`
	VisibilityM     *float64    `json:"visibility_m"`
	CloudCoverPct   *float64    `json:"cloud_cover_pct"`
	Timestamp       *int64      `json:"timestamp"`
	TimezoneOffsetS *int64      `json:"timezone_offset_s"`
	Source          string      `json:"source"`
	InputCity       string      `json:"input_city"`
}
