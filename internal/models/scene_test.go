package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseIntExt(t *testing.T) {
	assert.Equal(t, IntExtInterior, ParseIntExt("INT"))
	assert.Equal(t, IntExtInterior, ParseIntExt(" int. "))
	assert.Equal(t, IntExtExterior, ParseIntExt("EXT"))
	assert.Equal(t, IntExtMixed, ParseIntExt("INT/EXT"))
	assert.Equal(t, IntExtMixed, ParseIntExt("INT./EXT."))
	assert.Equal(t, IntExtInterior, ParseIntExt(""), "unknown markers default to interior")
}

func TestIsExterior(t *testing.T) {
	assert.False(t, IntExtInterior.IsExterior())
	assert.True(t, IntExtExterior.IsExterior())
	assert.True(t, IntExtMixed.IsExterior(), "mixed scenes need the weather to cooperate too")
}

func TestParseDayNight(t *testing.T) {
	assert.Equal(t, DayNightDay, ParseDayNight("DAY"))
	assert.Equal(t, DayNightNight, ParseDayNight(" night "))
	assert.Equal(t, DayNightDusk, ParseDayNight("DUSK"))
	assert.Equal(t, DayNightDawn, ParseDayNight("DAWN"))
	assert.Equal(t, DayNightDay, ParseDayNight("MAGIC HOUR"), "unknown markers default to day")
}

func TestIsNight(t *testing.T) {
	assert.True(t, DayNightNight.IsNight())
	assert.False(t, DayNightDusk.IsNight())
	assert.False(t, DayNightDawn.IsNight())
	assert.False(t, DayNightDay.IsNight())
}
