package models

// BadWeatherSeverity is the first severity code considered bad weather.
// Codes above it block exterior scenes for the day.
const BadWeatherSeverity = 3

// WeatherForecast is the oracle's answer for one (place, date, hour) lookup.
type WeatherForecast struct {
	Temperature  float64 `json:"temperature"`
	SeverityCode int     `json:"severity_code"`
	Description  string  `json:"description,omitempty"`
}

// IsGood reports whether the forecast permits exterior shooting.
func (f *WeatherForecast) IsGood() bool {
	return f == nil || f.SeverityCode <= BadWeatherSeverity
}

// Coordinates is a geocoded point.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
