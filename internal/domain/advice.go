package domain

import "time"

// AdviceRequest is one validated farmer submission
type AdviceRequest struct {
	Query    string
	Language Language
	Weather  WeatherReading
}

// AdviceResult is returned to the caller once advice has been generated
type AdviceResult struct {
	Advice         string    `json:"advice"`
	Language       Language  `json:"language"`
	Timestamp      time.Time `json:"timestamp"`
	WeatherSummary string    `json:"weatherSummary"`
}

// NewAdviceHistory is an advice exchange that has not been stored yet.
// A zero Timestamp is filled in at write time.
type NewAdviceHistory struct {
	Query        string
	Advice       string
	Language     Language
	Temperature  float64
	Humidity     float64
	Rainfall     float64
	WindSpeed    float64
	LocationName *string
	Latitude     float64
	Longitude    float64
	Timestamp    time.Time
}

// AdviceHistoryRecord is a stored advice exchange
type AdviceHistoryRecord struct {
	ID           int64     `json:"id"`
	Query        string    `json:"query"`
	Advice       string    `json:"advice"`
	Language     Language  `json:"language"`
	Temperature  float64   `json:"temperature"`
	Humidity     float64   `json:"humidity"`
	Rainfall     float64   `json:"rainfall"`
	WindSpeed    float64   `json:"windSpeed"`
	LocationName *string   `json:"locationName"`
	Latitude     float64   `json:"latitude"`
	Longitude    float64   `json:"longitude"`
	Timestamp    time.Time `json:"timestamp"`
}

// HistoryFromExchange builds the history entry for a request and its advice
func HistoryFromExchange(req AdviceRequest, advice string) NewAdviceHistory {
	return NewAdviceHistory{
		Query:        req.Query,
		Advice:       advice,
		Language:     req.Language,
		Temperature:  req.Weather.Temperature,
		Humidity:     req.Weather.Humidity,
		Rainfall:     req.Weather.Rainfall,
		WindSpeed:    req.Weather.WindSpeed,
		LocationName: req.Weather.LocationName,
		Latitude:     req.Weather.Latitude,
		Longitude:    req.Weather.Longitude,
	}
}

// Stored returns the record with its id and timestamp
func (n NewAdviceHistory) Stored(id int64, ts time.Time) AdviceHistoryRecord {
	return AdviceHistoryRecord{
		ID:           id,
		Query:        n.Query,
		Advice:       n.Advice,
		Language:     n.Language,
		Temperature:  n.Temperature,
		Humidity:     n.Humidity,
		Rainfall:     n.Rainfall,
		WindSpeed:    n.WindSpeed,
		LocationName: n.LocationName,
		Latitude:     n.Latitude,
		Longitude:    n.Longitude,
		Timestamp:    ts,
	}
}

// History listing bounds
const (
	MinHistoryLimit     = 1
	MaxHistoryLimit     = 100
	DefaultHistoryLimit = 20
)
