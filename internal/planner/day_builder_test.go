package planner

import (
	"testing"
	"time"

	"film-server/planner/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDate() time.Time {
	return time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
}

func studioScenes() []models.Scene {
	return []models.Scene{
		{
			ID: uuid.New(), SceneNumber: "1", Slugline: "EXT. STUDIO A - DAY",
			IntExt: models.IntExtExterior, DayNight: models.DayNightDay, EstimatedMinutes: 120,
		},
		{
			ID: uuid.New(), SceneNumber: "2", Slugline: "INT. STUDIO A - NIGHT",
			IntExt: models.IntExtInterior, DayNight: models.DayNightNight, EstimatedMinutes: 90, Priority: 5,
		},
		{
			ID: uuid.New(), SceneNumber: "3", Slugline: "EXT. STUDIO A - DAY",
			IntExt: models.IntExtExterior, DayNight: models.DayNightDay, EstimatedMinutes: 60,
		},
	}
}

func studioLocations() []models.Location {
	return []models.Location{
		{ID: uuid.New(), Name: "Studio A", Address: strPtr("1 Studio Way"), City: strPtr("Paris")},
	}
}

func TestBuildDayGoodWeatherOrdering(t *testing.T) {
	scenes := studioScenes()
	index := NewLocationIndex(studioLocations())

	day, remaining, wrap := BuildDay(scenes, index, GreedyScorer{}, testDate(), DefaultDayStartMinutes, true, nil)

	require.Len(t, day.Scenes, 3, "all three scenes fit in one day")
	assert.Empty(t, remaining)

	// Scene 1 wins the opening slot (300 vs 250 vs 300, first-encountered
	// tie-break), then the night scene's priority and locality take over.
	assert.Equal(t, "1", day.Scenes[0].SceneNumber)
	assert.Equal(t, "2", day.Scenes[1].SceneNumber)
	assert.Equal(t, "3", day.Scenes[2].SceneNumber)

	assert.Equal(t, []string{"09:00", "11:15", "13:00"}, day.SceneTimes)
	assert.Equal(t, 855, wrap, "wrap = 09:00 + durations + buffers")
	assert.Equal(t, []string{"Studio A"}, day.LocationSummary)
}

func TestBuildDayBadWeatherBlocksExteriors(t *testing.T) {
	scenes := studioScenes()
	index := NewLocationIndex(studioLocations())

	day, remaining, _ := BuildDay(scenes, index, GreedyScorer{}, testDate(), DefaultDayStartMinutes, false, nil)

	require.Len(t, day.Scenes, 1)
	assert.Equal(t, "2", day.Scenes[0].SceneNumber, "only the interior scene survives a bad-weather day")
	require.Len(t, remaining, 2)
	for _, sc := range remaining {
		assert.True(t, sc.IntExt.IsExterior())
	}
}

func TestBuildDayStopsAtCapacity(t *testing.T) {
	scenes := []models.Scene{
		{ID: uuid.New(), SceneNumber: "1", Slugline: "INT. STAGE - DAY", IntExt: models.IntExtInterior, DayNight: models.DayNightDay, EstimatedMinutes: 500},
		{ID: uuid.New(), SceneNumber: "2", Slugline: "INT. STAGE - DAY", IntExt: models.IntExtInterior, DayNight: models.DayNightDay, EstimatedMinutes: 200},
	}
	index := NewLocationIndex(nil)

	day, remaining, _ := BuildDay(scenes, index, GreedyScorer{}, testDate(), DefaultDayStartMinutes, true, nil)

	require.Len(t, day.Scenes, 1)
	assert.Equal(t, "1", day.Scenes[0].SceneNumber)
	require.Len(t, remaining, 1)
	assert.Equal(t, "2", remaining[0].SceneNumber, "515 minutes used + 200 would blow the cap")
}

func TestBuildDayRejectsOversizedScene(t *testing.T) {
	scenes := []models.Scene{
		{ID: uuid.New(), SceneNumber: "1", Slugline: "INT. STAGE - DAY", IntExt: models.IntExtInterior, DayNight: models.DayNightDay, EstimatedMinutes: 650},
	}
	index := NewLocationIndex(nil)

	day, remaining, wrap := BuildDay(scenes, index, GreedyScorer{}, testDate(), DefaultDayStartMinutes, true, nil)

	assert.Empty(t, day.Scenes, "a scene longer than the daily cap never fits")
	assert.Len(t, remaining, 1)
	assert.Equal(t, DefaultDayStartMinutes, wrap, "empty day wraps at its start")
}

func TestBuildDayCompanyMoveAndSummary(t *testing.T) {
	locations := []models.Location{
		{ID: uuid.New(), Name: "Studio A", City: strPtr("Paris")},
		{ID: uuid.New(), Name: "Warehouse"},
	}
	scenes := []models.Scene{
		{ID: uuid.New(), SceneNumber: "1", Slugline: "INT. STUDIO A - DAY", IntExt: models.IntExtInterior, DayNight: models.DayNightDay, EstimatedMinutes: 60},
		{ID: uuid.New(), SceneNumber: "2", Slugline: "INT. WAREHOUSE - DAY", IntExt: models.IntExtInterior, DayNight: models.DayNightDay, EstimatedMinutes: 60},
	}
	index := NewLocationIndex(locations)

	day, remaining, wrap := BuildDay(scenes, index, GreedyScorer{}, testDate(), DefaultDayStartMinutes, true, nil)

	require.Len(t, day.Scenes, 2)
	assert.Empty(t, remaining)
	assert.Equal(t, []string{"09:00", "11:15"}, day.SceneTimes, "second scene starts after the 15-minute buffer plus a 60-minute company move")
	assert.Equal(t, []string{"Studio A", "Warehouse"}, day.LocationSummary)

	// Capacity accounting: 120 durations + 30 buffers + 60 travel.
	assert.Equal(t, DefaultDayStartMinutes+210, wrap)
}

func TestBuildDayDoesNotMutateInputPool(t *testing.T) {
	scenes := studioScenes()
	index := NewLocationIndex(studioLocations())

	_, _, _ = BuildDay(scenes, index, GreedyScorer{}, testDate(), DefaultDayStartMinutes, true, nil)

	assert.Equal(t, "1", scenes[0].SceneNumber)
	assert.Equal(t, "2", scenes[1].SceneNumber)
	assert.Equal(t, "3", scenes[2].SceneNumber)
}

func TestMinutesToClock(t *testing.T) {
	assert.Equal(t, "09:00", minutesToClock(540))
	assert.Equal(t, "00:00", minutesToClock(0))
	assert.Equal(t, "23:59", minutesToClock(1439))
	assert.Equal(t, "00:30", minutesToClock(1470), "past-midnight times wrap to the next day")
}
