package models

// Icon is the symbolic weather glyph class for a WMO weather code.
type Icon string

const (
	IconClear                Icon = "clear"
	IconMostlyClear          Icon = "mostly-clear"
	IconPartlyCloudy         Icon = "partly-cloudy"
	IconOvercast             Icon = "overcast"
	IconFog                  Icon = "fog"
	IconLightRain            Icon = "light-rain"
	IconRain                 Icon = "rain"
	IconSnow                 Icon = "snow"
	IconThunderstorm         Icon = "thunderstorm"
	IconThunderstormWithHail Icon = "thunderstorm-hail"
	IconUnknown              Icon = "unknown"
)

var iconGroups = []struct {
	codes []int
	icon  Icon
}{
	{[]int{0}, IconClear},
	{[]int{1}, IconMostlyClear},
	{[]int{2}, IconPartlyCloudy},
	{[]int{3}, IconOvercast},
	{[]int{45, 48}, IconFog},
	{[]int{51, 56, 61, 66, 80}, IconLightRain},
	{[]int{53, 55, 57, 63, 65, 67, 81, 82}, IconRain},
	{[]int{71, 73, 75, 77, 85, 86}, IconSnow},
	{[]int{95}, IconThunderstorm},
	{[]int{96, 99}, IconThunderstormWithHail},
}

var iconByCode = expandIconGroups()

var glyphs = map[Icon]string{
	IconClear:                "☀️",
	IconMostlyClear:          "🌤",
	IconPartlyCloudy:         "⛅️",
	IconOvercast:             "☁️",
	IconFog:                  "🌫",
	IconLightRain:            "🌦",
	IconRain:                 "🌧",
	IconSnow:                 "🌨",
	IconThunderstorm:         "🌩",
	IconThunderstormWithHail: "⛈",
}

// first group wins if a code were ever listed twice
func expandIconGroups() map[int]Icon {
	m := make(map[int]Icon)
	for _, g := range iconGroups {
		for _, code := range g.codes {
			if _, ok := m[code]; !ok {
				m[code] = g.icon
			}
		}
	}
	return m
}

// IconFor never fails: codes outside the table map to IconUnknown.
func IconFor(code int) Icon {
	if icon, ok := iconByCode[code]; ok {
		return icon
	}
	return IconUnknown
}

func (i Icon) Glyph() string {
	if g, ok := glyphs[i]; ok {
		return g
	}
	return "NOT FOUND"
}
