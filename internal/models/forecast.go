package models

// DailyForecast is a single forecast day. Days are ordered starting from today.
type DailyForecast struct {
	Date        string  `json:"date" example:"2025-07-25"`
	WeatherCode int     `json:"weather_code" example:"61"`
	TempMax     float64 `json:"temp_max" example:"20.0"`
	TempMin     float64 `json:"temp_min" example:"10.0"`
}

type Forecast struct {
	Timezone             string          `json:"timezone" example:"Europe/Berlin"`
	TimezoneAbbreviation string          `json:"timezone_abbreviation" example:"CEST"`
	UTCOffsetSeconds     int             `json:"utc_offset_seconds" example:"7200"`
	Days                 []DailyForecast `json:"days"`
}
