package view

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-forecast/internal/models"
	"weather-forecast/internal/services/forecast"
	"weather-forecast/internal/services/input"
)

// Friday 2025-07-25 10:00 UTC, 12:00 in Berlin.
var friday = time.Date(2025, 7, 25, 10, 0, 0, 0, time.UTC)

func berlinSnapshot() forecast.Snapshot {
	return forecast.Snapshot{
		Term:   "Berlin",
		Status: forecast.StatusSuccess,
		Location: &models.Location{
			Name:        "Berlin",
			Country:     "Germany",
			CountryCode: "DE",
			Latitude:    52.52,
			Longitude:   13.4,
			Timezone:    "Europe/Berlin",
		},
		Days: []models.DailyForecast{
			{WeatherCode: 1, TempMax: 20, TempMin: 10},
			{WeatherCode: 61, TempMax: 18, TempMin: 9},
			{WeatherCode: 3, TempMax: 19, TempMin: 11},
		},
		TimezoneAbbreviation: "CEST",
	}
}

func TestWeekdayLabel(t *testing.T) {
	assert.Equal(t, "today", WeekdayLabel(time.Friday, 0))
	assert.Equal(t, "sat", WeekdayLabel(time.Friday, 1))
	assert.Equal(t, "sun", WeekdayLabel(time.Friday, 2))
	assert.Equal(t, "mon", WeekdayLabel(time.Friday, 3))
	assert.Equal(t, "thu", WeekdayLabel(time.Friday, 6))
	assert.Equal(t, "fri", WeekdayLabel(time.Friday, 7))
	assert.Equal(t, "sat", WeekdayLabel(time.Friday, 15))
	assert.Equal(t, "thu", WeekdayLabel(time.Friday, -1))
	assert.Equal(t, "today", WeekdayLabel(time.Sunday, 0))
}

func TestWeekdayLabel_SixteenDaysWrapModuloSeven(t *testing.T) {
	for start := time.Sunday; start <= time.Saturday; start++ {
		for offset := 1; offset < 16; offset++ {
			want := DefaultWeekdays[(int(start)+offset)%7]
			assert.Equal(t, want, WeekdayLabel(start, offset), "start %s offset %d", start, offset)
		}
	}
}

func TestWeekdays_CustomTable(t *testing.T) {
	german := Weekdays{"So", "Mo", "Di", "Mi", "Do", "Fr", "Sa"}
	assert.Equal(t, "Sa", german.Label(time.Friday, 1))
	assert.Equal(t, TodayLabel, german.Label(time.Friday, 0))
}

func TestBuild_BerlinScenario(t *testing.T) {
	page := Build(berlinSnapshot(), input.State{Draft: "Berlin", Committed: "Berlin"}, friday)

	assert.Equal(t, "Berlin (Germany)", page.LocationLine)
	assert.Equal(t, "🇩🇪", page.Flag)
	assert.False(t, page.Loading)
	assert.Equal(t, "Local Time 12:00 CEST", page.LocalTime)

	require.Len(t, page.Days, 3)
	assert.Equal(t, DayCard{Label: "today", Icon: models.IconMostlyClear, Glyph: "🌤", Range: "20°/10°C"}, page.Days[0])
	assert.Equal(t, DayCard{Label: "sat", Icon: models.IconLightRain, Glyph: "🌦", Range: "18°/9°C"}, page.Days[1])
	assert.Equal(t, DayCard{Label: "sun", Icon: models.IconOvercast, Glyph: "☁️", Range: "19°/11°C"}, page.Days[2])
}

func TestBuild_UsesLocationTimezoneForToday(t *testing.T) {
	snap := berlinSnapshot()
	snap.Location.Timezone = "Pacific/Auckland"
	snap.TimezoneAbbreviation = "NZST"

	// 22:00 in Auckland on Friday UTC means it is already Saturday there
	page := Build(snap, input.State{}, time.Date(2025, 7, 25, 12, 0, 0, 0, time.UTC))

	assert.Equal(t, "Local Time 00:00 NZST", page.LocalTime)
	assert.Equal(t, "sun", page.Days[1].Label)
}

func TestBuild_UnknownTimezoneFallsBackToClock(t *testing.T) {
	snap := berlinSnapshot()
	snap.Location.Timezone = "Mars/Olympus_Mons"
	snap.TimezoneAbbreviation = ""

	page := Build(snap, input.State{}, friday)
	assert.Equal(t, "Local Time 10:00", page.LocalTime)
	assert.Equal(t, "sat", page.Days[1].Label)
}

func TestBuild_Loading(t *testing.T) {
	snap := berlinSnapshot()
	snap.Status = forecast.StatusLoading
	snap.Loading = true

	page := Build(snap, input.State{Draft: "Paris", Disabled: true}, friday)

	assert.True(t, page.Loading)
	assert.Equal(t, LoadingText, page.LoadingText)
	assert.Empty(t, page.Days)
	assert.True(t, page.InputDisabled)
	assert.Equal(t, "Berlin (Germany)", page.LocationLine)
}

func TestBuild_NoLocation(t *testing.T) {
	page := Build(forecast.Snapshot{Status: forecast.StatusIdle}, input.State{Focused: true}, friday)

	assert.Empty(t, page.LocationLine)
	assert.Empty(t, page.LocalTime)
	assert.Empty(t, page.Days)
	assert.True(t, page.Autofocus)
	assert.False(t, page.InputDisabled)
}

func TestBuild_EmptyResultError(t *testing.T) {
	snap := forecast.Snapshot{
		Term:   "Zzqx",
		Status: forecast.StatusError,
		Error:  `no location found for "Zzqx"`,
	}

	page := Build(snap, input.State{}, friday)

	assert.Equal(t, forecast.StatusError, page.Status)
	assert.Empty(t, page.Days)
	assert.Empty(t, page.LocationLine)
	assert.Contains(t, page.Error, "no location found")
}

func TestBuild_CardCountFollowsForecast(t *testing.T) {
	snap := berlinSnapshot()
	snap.Days = make([]models.DailyForecast, 16)

	page := Build(snap, input.State{}, friday)

	require.Len(t, page.Days, 16)
	assert.Equal(t, "today", page.Days[0].Label)
	assert.Equal(t, "sat", page.Days[8].Label)
}

func TestTemperatureRange(t *testing.T) {
	assert.Equal(t, "20°/10°C", TemperatureRange(20, 10))
	assert.Equal(t, "18.5°/-2.3°C", TemperatureRange(18.5, -2.3))
}

func TestRenderHTML(t *testing.T) {
	var buf bytes.Buffer
	page := Build(berlinSnapshot(), input.State{Draft: "<Berlin>"}, friday)

	require.NoError(t, RenderHTML(&buf, page))
	html := buf.String()

	assert.Contains(t, html, "Weather Forecast App")
	assert.Contains(t, html, "Berlin (Germany)")
	assert.Contains(t, html, "20°/10°C")
	assert.Contains(t, html, "icon-light-rain")
	assert.Contains(t, html, "&lt;Berlin&gt;")
	assert.Equal(t, 3, bytes.Count(buf.Bytes(), []byte(`<li class="day">`)))
	assert.NotContains(t, html, "Loading..")
}

func TestRenderHTML_Loading(t *testing.T) {
	snap := berlinSnapshot()
	snap.Loading = true

	var buf bytes.Buffer
	require.NoError(t, RenderHTML(&buf, Build(snap, input.State{}, friday)))

	assert.Contains(t, buf.String(), "Loading..")
	assert.Contains(t, buf.String(), " disabled")
	assert.NotContains(t, buf.String(), `<li class="day">`)
}

func TestRenderText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderText(&buf, Build(berlinSnapshot(), input.State{}, friday)))

	assert.Equal(t, "Weather Forecast App\n"+
		"Berlin (Germany) 🇩🇪\n"+
		"today 🌤 20°/10°C\n"+
		"sat   🌦 18°/9°C\n"+
		"sun   ☁️ 19°/11°C\n"+
		"Local Time 12:00 CEST\n", buf.String())
}
