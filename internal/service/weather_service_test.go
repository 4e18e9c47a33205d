package service

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/desertfarm/backend/internal/domain"
)

func newOpenMeteoStub(t *testing.T, geocode string) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/forecast", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("latitude") != "24.2" || r.URL.Query().Get("longitude") != "55.7" {
			http.Error(w, "bad coordinates", http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Query().Get("daily") != "" {
			_, _ = w.Write([]byte(`{"daily":{
				"time":["2026-10-18","2026-10-19"],
				"temperature_2m_max":[36.1,35.4],
				"temperature_2m_min":[24.0,23.2],
				"relative_humidity_2m_mean":[40,104],
				"precipitation_sum":[0,-0.1],
				"wind_speed_10m_max":[18.2,12.0],
				"weather_code":[0,1]}}`))
			return
		}
		_, _ = w.Write([]byte(`{"current":{"temperature_2m":38.2,"relative_humidity_2m":22,"precipitation":0,"wind_speed_10m":14.6,"weather_code":0}}`))
	})
	mux.HandleFunc("/reverse", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(geocode))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestWeatherServiceGetCurrentWeather(t *testing.T) {
	srv := newOpenMeteoStub(t, `{"results":[{"name":"Al Ain","country":"UAE"}]}`)
	svc := NewWeatherService(srv.URL+"/forecast", srv.URL+"/reverse", time.Second, zap.NewNop())

	w, err := svc.GetCurrentWeather(context.Background(), 24.2, 55.7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w.Temperature != 38.2 || w.Humidity != 22 || w.WindSpeed != 14.6 {
		t.Errorf("unexpected reading: %+v", w)
	}
	if w.Location() != "Al Ain" {
		t.Errorf("location = %q, want Al Ain", w.Location())
	}
	if got := SummarizeWeather(w, domain.LanguageEnglish); got != "38°C, 22% humidity" {
		t.Errorf("summary = %q", got)
	}
}

func TestWeatherServiceGetForecastClampsValues(t *testing.T) {
	srv := newOpenMeteoStub(t, `{"results":[]}`)
	svc := NewWeatherService(srv.URL+"/forecast", srv.URL+"/reverse", time.Second, zap.NewNop())

	f, err := svc.GetForecast(context.Background(), 24.2, 55.7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.Location != domain.DefaultLocationLabel {
		t.Errorf("location = %q, want fallback", f.Location)
	}
	if len(f.Forecast) != 2 {
		t.Fatalf("days = %d, want 2", len(f.Forecast))
	}
	if f.Forecast[1].Humidity != 100 || f.Forecast[1].Rainfall != 0 {
		t.Errorf("values not clamped: %+v", f.Forecast[1])
	}
	if f.Forecast[0].Date != "2026-10-18" || f.Forecast[0].MaxTemp != 36.1 {
		t.Errorf("unexpected first day: %+v", f.Forecast[0])
	}
}

func TestWeatherServiceUpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	svc := NewWeatherService(srv.URL, srv.URL, time.Second, zap.NewNop())

	_, err := svc.GetCurrentWeather(context.Background(), 24.2, 55.7)
	if !errors.Is(err, errWeatherUnavailable) {
		t.Fatalf("error = %v, want errWeatherUnavailable", err)
	}
	if got := svc.ReverseGeocode(context.Background(), 24.2, 55.7); got != domain.DefaultLocationLabel {
		t.Fatalf("ReverseGeocode() = %q, want fallback", got)
	}
}

func TestValidCoordinates(t *testing.T) {
	tests := []struct {
		lat, lon float64
		want     bool
	}{
		{24.2, 55.7, true},
		{-90, 180, true},
		{91, 0, false},
		{0, -181, false},
	}
	for _, tt := range tests {
		if got := ValidCoordinates(tt.lat, tt.lon); got != tt.want {
			t.Errorf("ValidCoordinates(%v, %v) = %v, want %v", tt.lat, tt.lon, got, tt.want)
		}
	}
}
