package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"github.com/desertfarm/backend/internal/domain"
	"github.com/desertfarm/backend/pkg/utils"
)

// Default Open-Meteo endpoints
const (
	DefaultForecastURL  = "https://api.open-meteo.com/v1/forecast"
	DefaultGeocodingURL = "https://geocoding-api.open-meteo.com/v1/reverse"
)

// ForecastDays is the length of the daily forecast
const ForecastDays = 7

var errWeatherUnavailable = errors.New("weather provider unavailable")

// WeatherService handles weather data fetching
type WeatherService struct {
	forecastURL  string
	geocodingURL string
	httpClient   *http.Client
	circuit      *gobreaker.CircuitBreaker
	logger       *zap.Logger
}

// NewWeatherService creates a new weather service. Empty URLs fall back to the
// public Open-Meteo endpoints.
func NewWeatherService(forecastURL, geocodingURL string, timeout time.Duration, logger *zap.Logger) *WeatherService {
	if forecastURL == "" {
		forecastURL = DefaultForecastURL
	}
	if geocodingURL == "" {
		geocodingURL = DefaultGeocodingURL
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "openmeteo",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	return &WeatherService{
		forecastURL:  forecastURL,
		geocodingURL: geocodingURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		circuit: cb,
		logger:  logger,
	}
}

// openMeteoCurrentResponse represents the Open-Meteo current conditions payload
type openMeteoCurrentResponse struct {
	Current struct {
		Temperature   float64 `json:"temperature_2m"`
		Humidity      float64 `json:"relative_humidity_2m"`
		Precipitation float64 `json:"precipitation"`
		WindSpeed     float64 `json:"wind_speed_10m"`
		WeatherCode   int     `json:"weather_code"`
	} `json:"current"`
}

// openMeteoDailyResponse represents the Open-Meteo daily forecast payload
type openMeteoDailyResponse struct {
	Daily struct {
		Time        []string  `json:"time"`
		MaxTemp     []float64 `json:"temperature_2m_max"`
		MinTemp     []float64 `json:"temperature_2m_min"`
		Humidity    []float64 `json:"relative_humidity_2m_mean"`
		Rainfall    []float64 `json:"precipitation_sum"`
		WindSpeed   []float64 `json:"wind_speed_10m_max"`
		WeatherCode []int     `json:"weather_code"`
	} `json:"daily"`
}

type geocodingResponse struct {
	Results []struct {
		Name    string `json:"name"`
		Admin1  string `json:"admin1"`
		Country string `json:"country"`
	} `json:"results"`
}

// ValidCoordinates reports whether lat/lon are usable coordinates
func ValidCoordinates(lat, lon float64) bool {
	if math.IsNaN(lat) || math.IsNaN(lon) {
		return false
	}
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}

// GetCurrentWeather fetches current conditions and a location label
func (s *WeatherService) GetCurrentWeather(ctx context.Context, lat, lon float64) (domain.WeatherReading, error) {
	q := coordinateQuery(lat, lon)
	q.Set("current", "temperature_2m,relative_humidity_2m,precipitation,wind_speed_10m,weather_code")
	q.Set("timezone", "auto")

	var payload openMeteoCurrentResponse
	if err := s.getJSON(ctx, s.forecastURL, q, &payload); err != nil {
		s.logger.Error("failed to fetch current weather",
			zap.Float64("latitude", lat),
			zap.Float64("longitude", lon),
			zap.Error(err))
		return domain.WeatherReading{}, fmt.Errorf("weather: failed to fetch current weather: %w", err)
	}

	location := s.ReverseGeocode(ctx, lat, lon)

	return domain.WeatherReading{
		Temperature:  payload.Current.Temperature,
		Humidity:     utils.Clamp(payload.Current.Humidity, 0, 100),
		Rainfall:     math.Max(payload.Current.Precipitation, 0),
		WindSpeed:    math.Max(payload.Current.WindSpeed, 0),
		WeatherCode:  payload.Current.WeatherCode,
		Latitude:     lat,
		Longitude:    lon,
		LocationName: &location,
	}, nil
}

// GetForecast fetches a daily forecast for the next ForecastDays days
func (s *WeatherService) GetForecast(ctx context.Context, lat, lon float64) (domain.WeatherForecast, error) {
	q := coordinateQuery(lat, lon)
	q.Set("daily", "temperature_2m_max,temperature_2m_min,relative_humidity_2m_mean,precipitation_sum,wind_speed_10m_max,weather_code")
	q.Set("timezone", "auto")
	q.Set("forecast_days", strconv.Itoa(ForecastDays))

	var payload openMeteoDailyResponse
	if err := s.getJSON(ctx, s.forecastURL, q, &payload); err != nil {
		s.logger.Error("failed to fetch forecast",
			zap.Float64("latitude", lat),
			zap.Float64("longitude", lon),
			zap.Error(err))
		return domain.WeatherForecast{}, fmt.Errorf("weather: failed to fetch forecast: %w", err)
	}

	daily := payload.Daily
	days := make([]domain.ForecastDay, 0, len(daily.Time))
	for i, date := range daily.Time {
		days = append(days, domain.ForecastDay{
			Date:        date,
			MaxTemp:     at(daily.MaxTemp, i),
			MinTemp:     at(daily.MinTemp, i),
			Humidity:    utils.Clamp(at(daily.Humidity, i), 0, 100),
			Rainfall:    math.Max(at(daily.Rainfall, i), 0),
			WindSpeed:   math.Max(at(daily.WindSpeed, i), 0),
			WeatherCode: at(daily.WeatherCode, i),
		})
	}

	return domain.WeatherForecast{
		Location: s.ReverseGeocode(ctx, lat, lon),
		Forecast: days,
	}, nil
}

// ReverseGeocode resolves a human-readable label for the coordinates.
// Failures are logged and yield domain.DefaultLocationLabel.
func (s *WeatherService) ReverseGeocode(ctx context.Context, lat, lon float64) string {
	q := coordinateQuery(lat, lon)
	q.Set("count", "1")

	var payload geocodingResponse
	if err := s.getJSON(ctx, s.geocodingURL, q, &payload); err != nil {
		s.logger.Warn("reverse geocoding failed", zap.Error(err))
		return domain.DefaultLocationLabel
	}
	if len(payload.Results) == 0 {
		return domain.DefaultLocationLabel
	}

	r := payload.Results[0]
	for _, label := range []string{r.Name, r.Admin1, r.Country} {
		if label != "" {
			return label
		}
	}
	return domain.DefaultLocationLabel
}

// getJSON performs a GET through the circuit breaker and decodes the body
func (s *WeatherService) getJSON(ctx context.Context, endpoint string, q url.Values, out any) error {
	_, err := s.circuit.Execute(func() (interface{}, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+q.Encode(), nil)
		if err != nil {
			return nil, err
		}

		resp, err := s.httpClient.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("%w: status %d", errWeatherUnavailable, resp.StatusCode)
		}

		return nil, json.NewDecoder(resp.Body).Decode(out)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return fmt.Errorf("%w: %v", errWeatherUnavailable, err)
	}
	return err
}

func coordinateQuery(lat, lon float64) url.Values {
	q := url.Values{}
	q.Set("latitude", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("longitude", strconv.FormatFloat(lon, 'f', -1, 64))
	return q
}

func at[T any](values []T, i int) T {
	var zero T
	if i < len(values) {
		return values[i]
	}
	return zero
}
