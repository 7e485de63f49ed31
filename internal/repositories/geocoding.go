package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"weather-forecast/config"
	"weather-forecast/internal/models"
	"weather-forecast/pkg/logger"
)

const geocodingCandidates = 10

type OpenMeteoGeocodingRepository struct {
	api *upstream
	l   *logger.Logger
}

func NewOpenMeteoGeocodingRepository(api config.WeatherAPIConfig, l *logger.Logger, httpClient HTTPClient) *OpenMeteoGeocodingRepository {
	api.Name = config.OpenMeteoGeocodingAPI
	return &OpenMeteoGeocodingRepository{
		api: newUpstream(api, config.OpenMeteoGeocodingURL, l, httpClient),
		l:   l,
	}
}

func (g *OpenMeteoGeocodingRepository) Name() string {
	return config.OpenMeteoGeocodingAPI
}

type geocodingResult struct {
	Name        string  `json:"name"`
	Country     string  `json:"country"`
	CountryCode string  `json:"country_code"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Timezone    string  `json:"timezone"`
}

// Search returns the candidate locations in upstream order. Open-Meteo omits
// "results" entirely when nothing matches, which yields an empty slice.
func (g *OpenMeteoGeocodingRepository) Search(ctx context.Context, name string) ([]models.Location, error) {
	params := url.Values{}
	params.Set("name", name)
	params.Set("count", strconv.Itoa(geocodingCandidates))
	params.Set("language", "en")
	params.Set("format", "json")

	g.l.Info("making geocoding API request", map[string]any{"name": name})

	body, err := g.api.get(ctx, g.api.baseURL+"?"+params.Encode())
	if err != nil {
		return nil, err
	}

	var response struct {
		Results []geocodingResult `json:"results"`
	}
	if err = json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w", err)
	}

	locations := make([]models.Location, 0, len(response.Results))
	for _, r := range response.Results {
		locations = append(locations, models.Location{
			Name:        r.Name,
			Country:     r.Country,
			CountryCode: r.CountryCode,
			Latitude:    r.Latitude,
			Longitude:   r.Longitude,
			Timezone:    r.Timezone,
		})
	}

	g.l.Info("parsed geocoding response", map[string]any{
		"name":       name,
		"candidates": len(locations),
	})

	return locations, nil
}
