package models

import "time"

// ProposedDay is one calendar day of the draft shooting plan: the scenes
// placed on it, their start times and the logistics metadata the call sheet
// needs. Scenes and SceneTimes are parallel slices, one HH:MM start per scene.
type ProposedDay struct {
	Date            time.Time
	CallTime        string
	LocationSummary []string
	Scenes          []Scene
	SceneTimes      []string
	IsGoodWeather   bool
	Forecast        *WeatherForecast
}

// Characters returns the distinct character names appearing across the day's
// scenes, in first-appearance order.
func (d *ProposedDay) Characters() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, sc := range d.Scenes {
		for _, ch := range sc.Characters {
			if _, ok := seen[ch]; ok {
				continue
			}
			seen[ch] = struct{}{}
			out = append(out, ch)
		}
	}
	return out
}
