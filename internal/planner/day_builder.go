package planner

import (
	"fmt"
	"slices"
	"time"

	"film-server/planner/internal/models"
)

// BuildDay fills one calendar day greedily from the unplanned pool. It
// repeatedly scores every remaining scene against the day in progress, commits
// the best one, and stops when the day is full or no feasible scene remains.
//
// The pool is not mutated: the updated pool comes back as the second return
// value, which keeps what-if runs on the same snapshot independent. The third
// value is the wrap cursor in minutes from midnight (start time for an empty
// day), which the driver uses for the turnaround rule.
//
// Ties break on first-encountered pool order, so the result is deterministic
// for a deterministic input order.
func BuildDay(
	pool []models.Scene,
	index *LocationIndex,
	strategy Strategy,
	date time.Time,
	startMinutes int,
	goodWeather bool,
	forecast *models.WeatherForecast,
) (models.ProposedDay, []models.Scene, int) {
	day := models.ProposedDay{
		Date:          date,
		IsGoodWeather: goodWeather,
		Forecast:      forecast,
	}
	remaining := slices.Clone(pool)

	cursor := startMinutes
	state := DayState{
		Cast:        make(map[string]struct{}),
		GoodWeather: goodWeather,
	}

	for state.MinutesUsed < DailyCapMinutes && len(remaining) > 0 {
		bestIdx := -1
		var best Candidate
		for i, sc := range remaining {
			cand := strategy.Score(sc, index.Resolve(sc.Slugline), state)
			if bestIdx == -1 || cand.Score > best.Score {
				bestIdx, best = i, cand
			}
		}

		if best.Score <= StopScore {
			break
		}

		sc := remaining[bestIdx]
		loc := index.Resolve(sc.Slugline)

		cursor += best.TravelMinutes
		day.Scenes = append(day.Scenes, sc)
		day.SceneTimes = append(day.SceneTimes, minutesToClock(cursor))
		cursor += sc.EstimatedMinutes + SceneBufferMinutes

		state.MinutesUsed = cursor - startMinutes
		state.LocationKey = locationKey(sc, loc)
		state.City = locationCity(loc)
		for _, ch := range sc.Characters {
			state.Cast[ch] = struct{}{}
		}

		if name := summaryName(sc, loc); name != "" && !slices.Contains(day.LocationSummary, name) {
			day.LocationSummary = append(day.LocationSummary, name)
		}

		remaining = slices.Delete(remaining, bestIdx, bestIdx+1)
	}

	return day, remaining, cursor
}

// minutesToClock renders minutes-from-midnight as HH:MM, wrapping past
// midnight for late night shoots.
func minutesToClock(m int) string {
	m %= 24 * 60
	if m < 0 {
		m += 24 * 60
	}
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}
