package models

import (
	"fmt"
	"strings"
)

// Location is one geocoding candidate.
type Location struct {
	Name        string  `json:"name" example:"Berlin"`
	Country     string  `json:"country" example:"Germany"`
	CountryCode string  `json:"country_code" example:"DE"`
	Latitude    float64 `json:"latitude" example:"52.52"`
	Longitude   float64 `json:"longitude" example:"13.41"`
	Timezone    string  `json:"timezone" example:"Europe/Berlin"`
}

// DisplayName renders the location line, e.g. "Berlin (Germany)".
func (l Location) DisplayName() string {
	return fmt.Sprintf("%s (%s)", l.Name, l.Country)
}

// Flag converts a two-letter country code into its regional indicator pair.
// Anything that is not two ASCII letters yields "".
func (l Location) Flag() string {
	code := strings.ToUpper(l.CountryCode)
	if len(code) != 2 {
		return ""
	}

	var b strings.Builder
	for _, c := range code {
		if c < 'A' || c > 'Z' {
			return ""
		}
		b.WriteRune(0x1F1E6 + (c - 'A'))
	}
	return b.String()
}

func (l Location) RequestParams() string {
	return fmt.Sprintf("lat: %.4f lon: %.4f tz: %s", l.Latitude, l.Longitude, l.Timezone)
}
