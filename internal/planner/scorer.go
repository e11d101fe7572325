package planner

import (
	"film-server/planner/internal/models"
)

// Contract values of the scheduling heuristic. These are part of the planner's
// behavior, not deployment configuration.
const (
	// DailyCapMinutes is the shooting time budget of one day, travel and
	// buffers included.
	DailyCapMinutes = 600
	// SceneBufferMinutes separates consecutive scenes (resets, touch-ups).
	SceneBufferMinutes = 15

	sameCityTravelMinutes  = 30
	companyMoveMinutes     = 60
	localityBonus          = 500
	priorityWeight         = 50
	nightShapingWeight     = 400
	dayShapingWeight       = 200
	exteriorWeatherBonus   = 100
	castContinuityBonus    = 30
	weatherBlockScore      = -10000
	capacityBlockScore     = -5000
	// StopScore is the day builder's cutoff: when no candidate scores above
	// it, the day is done.
	StopScore = -1000
)

// DayState is the in-progress state of the day being built, as the scorer
// sees it.
type DayState struct {
	MinutesUsed int
	LocationKey string // "" before the first scene
	City        string // normalized, "" when unknown
	Cast        map[string]struct{}
	GoodWeather bool
}

// Candidate is one scored scene: its desirability and the travel minutes
// committing it would cost.
type Candidate struct {
	Score         float64
	TravelMinutes int
}

// Strategy scores one unplanned scene against the day in progress. The day
// builder always picks the highest-scoring candidate, so alternative
// scheduling policies plug in here without touching the driver.
type Strategy interface {
	Score(scene models.Scene, loc *models.Location, state DayState) Candidate
}

// Compile-time check to ensure implementation satisfies the interface.
var _ Strategy = (*GreedyScorer)(nil)

// GreedyScorer is the default heuristic. It hard-blocks exteriors on
// bad-weather days, prices company moves, soft-blocks scenes that overflow
// the daily cap, and otherwise rewards staying put, high priority, day scenes
// early / night scenes late, good-weather exteriors, and cast continuity.
type GreedyScorer struct{}

func (GreedyScorer) Score(scene models.Scene, loc *models.Location, state DayState) Candidate {
	if !state.GoodWeather && scene.IntExt.IsExterior() {
		return Candidate{Score: weatherBlockScore}
	}

	key := locationKey(scene, loc)
	travel := 0
	sameLocation := state.LocationKey != "" && key == state.LocationKey
	if state.LocationKey != "" && !sameLocation {
		city := locationCity(loc)
		if city != "" && city == state.City {
			travel = sameCityTravelMinutes
		} else {
			travel = companyMoveMinutes
		}
	}

	if state.MinutesUsed+scene.EstimatedMinutes+travel > DailyCapMinutes {
		return Candidate{Score: capacityBlockScore, TravelMinutes: travel}
	}

	score := 0.0
	if sameLocation {
		score += localityBonus
	}
	score += float64(scene.Priority * priorityWeight)

	dayProgress := float64(state.MinutesUsed) / float64(DailyCapMinutes)
	if scene.DayNight.IsNight() {
		score += dayProgress * nightShapingWeight
	} else {
		score += (1 - dayProgress) * dayShapingWeight
	}

	if scene.IntExt.IsExterior() && state.GoodWeather {
		score += exteriorWeatherBonus
	}

	for _, ch := range scene.Characters {
		if _, ok := state.Cast[ch]; ok {
			score += castContinuityBonus
		}
	}

	return Candidate{Score: score, TravelMinutes: travel}
}
