package planner

import (
	"testing"

	"film-server/planner/internal/models"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func scene(opts func(*models.Scene)) models.Scene {
	sc := models.Scene{
		Slugline:         "INT. STUDIO A - DAY",
		IntExt:           models.IntExtInterior,
		DayNight:         models.DayNightDay,
		EstimatedMinutes: 60,
	}
	if opts != nil {
		opts(&sc)
	}
	return sc
}

func TestGreedyScorerWeatherHardBlock(t *testing.T) {
	scorer := GreedyScorer{}
	state := DayState{GoodWeather: false}

	ext := scene(func(sc *models.Scene) { sc.IntExt = models.IntExtExterior })
	cand := scorer.Score(ext, nil, state)
	assert.Equal(t, float64(weatherBlockScore), cand.Score, "exterior scene must be hard-blocked on a bad-weather day")

	mixed := scene(func(sc *models.Scene) { sc.IntExt = models.IntExtMixed })
	cand = scorer.Score(mixed, nil, state)
	assert.Equal(t, float64(weatherBlockScore), cand.Score, "mixed INT/EXT counts as exterior")

	interior := scene(nil)
	cand = scorer.Score(interior, nil, state)
	assert.Greater(t, cand.Score, float64(StopScore), "interior scene is unaffected by bad weather")
}

func TestGreedyScorerCapacitySoftBlock(t *testing.T) {
	scorer := GreedyScorer{}

	state := DayState{MinutesUsed: 570, GoodWeather: true}
	cand := scorer.Score(scene(nil), nil, state)
	assert.Equal(t, float64(capacityBlockScore), cand.Score, "570 used + 60 scene exceeds the 600-minute cap")

	// An oversized scene never fits, even on an empty day.
	big := scene(func(sc *models.Scene) { sc.EstimatedMinutes = 650 })
	cand = scorer.Score(big, nil, DayState{GoodWeather: true})
	assert.Equal(t, float64(capacityBlockScore), cand.Score)
}

func TestGreedyScorerTravelCost(t *testing.T) {
	scorer := GreedyScorer{}

	paris := strPtr("Paris")
	warehouse := &models.Location{Name: "Warehouse", City: paris}
	sc := scene(func(s *models.Scene) { s.Slugline = "INT. WAREHOUSE - DAY" })

	// First scene of the day travels for free.
	cand := scorer.Score(sc, warehouse, DayState{GoodWeather: true})
	assert.Equal(t, 0, cand.TravelMinutes)

	// Same location: no travel.
	state := DayState{LocationKey: "warehouse", City: "paris", GoodWeather: true}
	cand = scorer.Score(sc, warehouse, state)
	assert.Equal(t, 0, cand.TravelMinutes)

	// Different location, same city: 30 minutes.
	state = DayState{LocationKey: "studio a", City: "paris", GoodWeather: true}
	cand = scorer.Score(sc, warehouse, state)
	assert.Equal(t, sameCityTravelMinutes, cand.TravelMinutes)

	// Different city: full company move.
	state = DayState{LocationKey: "studio a", City: "lyon", GoodWeather: true}
	cand = scorer.Score(sc, warehouse, state)
	assert.Equal(t, companyMoveMinutes, cand.TravelMinutes)

	// Unknown city counts as a different city.
	noCity := &models.Location{Name: "Warehouse"}
	state = DayState{LocationKey: "studio a", City: "paris", GoodWeather: true}
	cand = scorer.Score(sc, noCity, state)
	assert.Equal(t, companyMoveMinutes, cand.TravelMinutes)
}

func TestGreedyScorerBaseScore(t *testing.T) {
	scorer := GreedyScorer{}

	// Day scene on an empty day: full early-day bonus.
	cand := scorer.Score(scene(nil), nil, DayState{GoodWeather: true})
	assert.InDelta(t, 200.0, cand.Score, 0.001)

	// Night scene on an empty day scores nothing yet.
	night := scene(func(sc *models.Scene) { sc.DayNight = models.DayNightNight })
	cand = scorer.Score(night, nil, DayState{GoodWeather: true})
	assert.InDelta(t, 0.0, cand.Score, 0.001)

	// Night scenes grow more attractive as the day wears on.
	cand = scorer.Score(night, nil, DayState{MinutesUsed: 300, GoodWeather: true})
	assert.InDelta(t, 200.0, cand.Score, 0.001, "dayProgress 0.5 gives the night scene half its shaping weight")

	// Priority is worth 50 points a step.
	prio := scene(func(sc *models.Scene) { sc.Priority = 5 })
	cand = scorer.Score(prio, nil, DayState{GoodWeather: true})
	assert.InDelta(t, 450.0, cand.Score, 0.001)

	// Good-weather exterior gets front-loaded.
	ext := scene(func(sc *models.Scene) { sc.IntExt = models.IntExtExterior })
	cand = scorer.Score(ext, nil, DayState{GoodWeather: true})
	assert.InDelta(t, 300.0, cand.Score, 0.001)

	// Staying at the current location is worth 500.
	studio := &models.Location{Name: "Studio A"}
	sc := scene(nil)
	state := DayState{MinutesUsed: 150, LocationKey: "studio a", GoodWeather: true}
	cand = scorer.Score(sc, studio, state)
	assert.InDelta(t, 650.0, cand.Score, 0.001, "500 locality + (1-0.25)*200 day shaping")
}

func TestGreedyScorerCastContinuity(t *testing.T) {
	scorer := GreedyScorer{}

	sc := scene(func(s *models.Scene) { s.Characters = []string{"ALICE", "BOB", "CHARLIE"} })
	state := DayState{
		GoodWeather: true,
		Cast:        map[string]struct{}{"ALICE": {}, "BOB": {}},
	}
	cand := scorer.Score(sc, nil, state)
	assert.InDelta(t, 260.0, cand.Score, 0.001, "200 day shaping + 2 continuing characters at 30 each")
}
