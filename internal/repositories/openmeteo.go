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

const dailyVariables = "weathercode,temperature_2m_max,temperature_2m_min"

type OpenMeteoRepository struct {
	api *upstream
	l   *logger.Logger
}

func NewOpenMeteoRepository(api config.WeatherAPIConfig, l *logger.Logger, httpClient HTTPClient) *OpenMeteoRepository {
	api.Name = config.OpenMeteoForecastAPI
	return &OpenMeteoRepository{
		api: newUpstream(api, config.OpenMeteoForecastURL, l, httpClient),
		l:   l,
	}
}

func (o *OpenMeteoRepository) Name() string {
	return config.OpenMeteoForecastAPI
}

type OpenMeteoResponse struct {
	Time             []string  `json:"time"`
	WeatherCode      []int     `json:"weathercode"`
	Temperature2mMax []float64 `json:"temperature_2m_max"`
	Temperature2mMin []float64 `json:"temperature_2m_min"`
}

// FetchDaily requests the daily series in the location's own timezone. The
// number of days is whatever the upstream returns.
func (o *OpenMeteoRepository) FetchDaily(ctx context.Context, loc models.Location) (models.Forecast, error) {
	timezone := loc.Timezone
	if timezone == "" {
		timezone = "auto"
	}

	params := url.Values{}
	params.Set("latitude", strconv.FormatFloat(loc.Latitude, 'f', -1, 64))
	params.Set("longitude", strconv.FormatFloat(loc.Longitude, 'f', -1, 64))
	params.Set("timezone", timezone)
	params.Set("daily", dailyVariables)

	o.l.Info("making openmeteo API request", map[string]any{
		"params": loc.RequestParams(),
	})

	body, err := o.api.get(ctx, o.api.baseURL+"?"+params.Encode())
	if err != nil {
		return models.Forecast{}, err
	}

	var response struct {
		Timezone             string            `json:"timezone"`
		TimezoneAbbreviation string            `json:"timezone_abbreviation"`
		UTCOffsetSeconds     int               `json:"utc_offset_seconds"`
		Daily                OpenMeteoResponse `json:"daily"`
	}
	if err = json.Unmarshal(body, &response); err != nil {
		return models.Forecast{}, fmt.Errorf("failed to parse JSON response: %w", err)
	}

	forecast := models.Forecast{
		Timezone:             response.Timezone,
		TimezoneAbbreviation: response.TimezoneAbbreviation,
		UTCOffsetSeconds:     response.UTCOffsetSeconds,
		Days:                 dailyForecastOpenMeteo(response.Daily),
	}

	o.l.Info("parsed API response", map[string]any{
		"days":     len(forecast.Days),
		"timezone": forecast.Timezone,
	})

	return forecast, nil
}

// dailyForecastOpenMeteo zips the parallel arrays, truncated to the shortest
// of the weather code and temperature series.
func dailyForecastOpenMeteo(daily OpenMeteoResponse) []models.DailyForecast {
	n := min(len(daily.WeatherCode), len(daily.Temperature2mMax), len(daily.Temperature2mMin))
	days := make([]models.DailyForecast, 0, n)

	for i := 0; i < n; i++ {
		day := models.DailyForecast{
			WeatherCode: daily.WeatherCode[i],
			TempMax:     daily.Temperature2mMax[i],
			TempMin:     daily.Temperature2mMin[i],
		}
		if i < len(daily.Time) {
			day.Date = daily.Time[i]
		}
		days = append(days, day)
	}

	return days
}
