package repositories

import (
	"context"
	"net/http"
	"time"

	"weather-forecast/config"
	"weather-forecast/internal/models"
	"weather-forecast/pkg/logger"
)

type Geocoder interface {
	Name() string
	Search(ctx context.Context, name string) ([]models.Location, error)
}

type ForecastRepository interface {
	Name() string
	FetchDaily(ctx context.Context, loc models.Location) (models.Forecast, error)
}

type Repositories struct {
	Geocoder Geocoder
	Forecast ForecastRepository
}

// InitRepositories builds the configured upstreams. Each gets its own
// http.Client with the configured timeout; missing entries fall back to the
// public Open-Meteo endpoints.
func InitRepositories(cfg *config.Config, l *logger.Logger) Repositories {
	geoAPI := config.WeatherAPIConfig{Name: config.OpenMeteoGeocodingAPI, Timeout: 10}
	forecastAPI := config.WeatherAPIConfig{Name: config.OpenMeteoForecastAPI, Timeout: 10}

	for _, api := range cfg.GetWeatherAPIs() {
		switch api.Name {
		case config.OpenMeteoGeocodingAPI:
			geoAPI = api
		case config.OpenMeteoForecastAPI:
			forecastAPI = api
		}
	}

	var geocoder Geocoder = NewOpenMeteoGeocodingRepository(geoAPI, l, newHTTPClient(geoAPI))
	if cfg.Cache.GeocodeTTL > 0 {
		geocoder = NewCachedGeocoder(geocoder, time.Duration(cfg.Cache.GeocodeTTL)*time.Second, l)
	}

	return Repositories{
		Geocoder: geocoder,
		Forecast: NewOpenMeteoRepository(forecastAPI, l, newHTTPClient(forecastAPI)),
	}
}

func newHTTPClient(api config.WeatherAPIConfig) *http.Client {
	return &http.Client{Timeout: time.Duration(api.Timeout) * time.Second}
}
