// Package view turns a pipeline snapshot into the forecast page.
package view

import (
	"fmt"
	"strconv"
	"time"
	_ "time/tzdata"

	"weather-forecast/internal/models"
	"weather-forecast/internal/services/forecast"
	"weather-forecast/internal/services/input"
)

const (
	Title       = "Weather Forecast App"
	Placeholder = "Enter city name"
	ButtonLabel = "Get Weather"
	LoadingText = "Loading.."
	TodayLabel  = "today"
)

// Weekdays names the days of the week starting with Sunday.
type Weekdays [7]string

var DefaultWeekdays = Weekdays{"sun", "mon", "tue", "wed", "thu", "fri", "sat"}

// Label names the day offset days after start; offset 0 is always "today".
func (w Weekdays) Label(start time.Weekday, offset int) string {
	if offset == 0 {
		return TodayLabel
	}
	return w[((int(start)+offset)%7+7)%7]
}

func WeekdayLabel(start time.Weekday, offset int) string {
	return DefaultWeekdays.Label(start, offset)
}

type DayCard struct {
	Label string      `json:"label"`
	Date  string      `json:"date,omitempty"`
	Icon  models.Icon `json:"icon"`
	Glyph string      `json:"glyph"`
	Range string      `json:"range"`
}

type Page struct {
	Title       string `json:"title"`
	Placeholder string `json:"placeholder"`
	ButtonLabel string `json:"button_label"`

	Draft         string `json:"draft"`
	InputDisabled bool   `json:"input_disabled"`
	Autofocus     bool   `json:"autofocus"`

	Status       forecast.Status `json:"status"`
	LocationLine string          `json:"location_line,omitempty"`
	Flag         string          `json:"flag,omitempty"`
	Loading      bool            `json:"loading"`
	LoadingText  string          `json:"loading_text,omitempty"`
	Error        string          `json:"error,omitempty"`
	Days         []DayCard       `json:"days"`
	LocalTime    string          `json:"local_time,omitempty"`
}

// Build is pure: the same snapshot, form state and clock give the same page.
func Build(snap forecast.Snapshot, form input.State, now time.Time) Page {
	page := Page{
		Title:         Title,
		Placeholder:   Placeholder,
		ButtonLabel:   ButtonLabel,
		Draft:         form.Draft,
		InputDisabled: form.Disabled || snap.Loading,
		Autofocus:     form.Focused,
		Status:        snap.Status,
		Error:         snap.Error,
		Days:          []DayCard{},
	}

	localNow := now
	if snap.Location != nil {
		localNow = LocalNow(snap.Location.Timezone, now)
		page.LocationLine = snap.Location.DisplayName()
		page.Flag = snap.Location.Flag()
		page.LocalTime = localTimeLine(localNow, snap.TimezoneAbbreviation)
	}

	if snap.Loading {
		page.Loading = true
		page.LoadingText = LoadingText
		return page
	}

	page.Days = DayCards(snap.Days, localNow.Weekday())
	return page
}

// DayCards renders one card per day, in order.
func DayCards(days []models.DailyForecast, today time.Weekday) []DayCard {
	cards := make([]DayCard, 0, len(days))
	for i, d := range days {
		icon := models.IconFor(d.WeatherCode)
		cards = append(cards, DayCard{
			Label: WeekdayLabel(today, i),
			Date:  d.Date,
			Icon:  icon,
			Glyph: icon.Glyph(),
			Range: TemperatureRange(d.TempMax, d.TempMin),
		})
	}
	return cards
}

func TemperatureRange(hi, lo float64) string {
	return fmt.Sprintf("%s°/%s°C", formatTemp(hi), formatTemp(lo))
}

func formatTemp(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// LocalNow converts now to the IANA timezone, keeping now's own location when
// the zone is empty or unknown.
func LocalNow(timezone string, now time.Time) time.Time {
	if timezone == "" {
		return now
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return now
	}
	return now.In(loc)
}

func localTimeLine(t time.Time, abbreviation string) string {
	line := "Local Time " + t.Format("15:04")
	if abbreviation != "" {
		line += " " + abbreviation
	}
	return line
}
