package domain

// WeatherReading is the snapshot of conditions attached to one advice request
type WeatherReading struct {
	Temperature  float64 `json:"temperature"` // °C
	Humidity     float64 `json:"humidity"`    // %
	Rainfall     float64 `json:"rainfall"`    // mm
	WindSpeed    float64 `json:"windSpeed"`   // km/h
	WeatherCode  int     `json:"weatherCode"` // WMO code
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	LocationName *string `json:"locationName,omitempty"`
}

// Location returns the reading's location label, or "" when unknown
func (w WeatherReading) Location() string {
	if w.LocationName == nil {
		return ""
	}
	return *w.LocationName
}

// ForecastDay is one day of a multi-day forecast
type ForecastDay struct {
	Date        string  `json:"date"`
	MaxTemp     float64 `json:"maxTemp"`
	MinTemp     float64 `json:"minTemp"`
	Humidity    float64 `json:"humidity"`
	Rainfall    float64 `json:"rainfall"`
	WindSpeed   float64 `json:"windSpeed"`
	WeatherCode int     `json:"weatherCode"`
}

// WeatherForecast wraps forecast days with the resolved location label
type WeatherForecast struct {
	Location string        `json:"location"`
	Forecast []ForecastDay `json:"forecast"`
}

// DefaultLocationLabel is used when reverse geocoding yields nothing
const DefaultLocationLabel = "Your Location"
