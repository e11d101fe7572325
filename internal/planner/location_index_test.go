package planner

import (
	"testing"

	"film-server/planner/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocationIndexResolve(t *testing.T) {
	studio := models.Location{ID: uuid.New(), Name: "Studio A"}
	warehouse := models.Location{ID: uuid.New(), Name: "Warehouse"}
	ix := NewLocationIndex([]models.Location{studio, warehouse})

	loc := ix.Resolve("INT. STUDIO A - DAY")
	require.NotNil(t, loc)
	assert.Equal(t, studio.ID, loc.ID)

	loc = ix.Resolve("EXT. WAREHOUSE ROOFTOP - NIGHT")
	require.NotNil(t, loc)
	assert.Equal(t, warehouse.ID, loc.ID)

	assert.Nil(t, ix.Resolve("INT. SUBMARINE - DAY"))
	assert.Nil(t, ix.Resolve(""))
}

func TestLocationIndexMatchIsCaseInsensitive(t *testing.T) {
	ix := NewLocationIndex([]models.Location{{ID: uuid.New(), Name: "studio a"}})

	assert.NotNil(t, ix.Resolve("INT. Studio A - DAY"))
}

func TestLocationIndexFirstDeclaredWins(t *testing.T) {
	bar := models.Location{ID: uuid.New(), Name: "Bar"}
	barback := models.Location{ID: uuid.New(), Name: "Bar Back Room"}
	ix := NewLocationIndex([]models.Location{bar, barback})

	// Both names are contained in the slugline; declaration order decides.
	loc := ix.Resolve("INT. BAR BACK ROOM - NIGHT")
	require.NotNil(t, loc)
	assert.Equal(t, bar.ID, loc.ID)
}

func TestLocationIndexMemoizes(t *testing.T) {
	ix := NewLocationIndex([]models.Location{{ID: uuid.New(), Name: "Studio A"}})

	first := ix.Resolve("INT. STUDIO A - DAY")
	second := ix.Resolve("int. studio a - day")
	require.NotNil(t, first)
	require.NotNil(t, second)
	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, ix.resolved, 1, "normalized sluglines share one cache entry")
}

func TestLocationKeyFallsBackToSlugline(t *testing.T) {
	scene := models.Scene{Slugline: "EXT. Desert Road - DAY"}

	assert.Equal(t, "ext. desert road - day", locationKey(scene, nil))

	loc := &models.Location{Name: "Desert Road"}
	assert.Equal(t, "desert road", locationKey(scene, loc))
}

func TestSummaryName(t *testing.T) {
	scene := models.Scene{Slugline: "  EXT. DESERT ROAD - DAY "}

	assert.Equal(t, "EXT. DESERT ROAD - DAY", summaryName(scene, nil))
	assert.Equal(t, "Desert Road", summaryName(scene, &models.Location{Name: "Desert Road"}))
}
