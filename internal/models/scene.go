package models

import (
	"strings"

	"github.com/google/uuid"
)

// IntExt describes whether a scene is shot indoors, outdoors or both.
type IntExt string

const (
	IntExtInterior IntExt = "INT"
	IntExtExterior IntExt = "EXT"
	IntExtMixed    IntExt = "INT/EXT"
)

// IsExterior reports whether the scene needs an outdoor set for any part of it.
// Mixed scenes count as exterior: they cannot be shot on a bad-weather day either.
func (ie IntExt) IsExterior() bool {
	return ie == IntExtExterior || ie == IntExtMixed
}

// ParseIntExt normalizes the free-form INT/EXT marker a script breakdown carries.
// Unknown values fall back to interior, the permissive default.
func ParseIntExt(raw string) IntExt {
	s := strings.ToUpper(strings.TrimSpace(raw))
	hasInt := strings.Contains(s, "INT")
	hasExt := strings.Contains(s, "EXT")
	switch {
	case hasInt && hasExt:
		return IntExtMixed
	case hasExt:
		return IntExtExterior
	default:
		return IntExtInterior
	}
}

// DayNight is the time-of-day requirement of a scene.
type DayNight string

const (
	DayNightDay   DayNight = "DAY"
	DayNightNight DayNight = "NIGHT"
	DayNightDusk  DayNight = "DUSK"
	DayNightDawn  DayNight = "DAWN"
)

// IsNight reports whether the scene needs darkness. Dusk and dawn scenes are
// scheduled like day scenes: they only need the edge of the day, not full night.
func (dn DayNight) IsNight() bool {
	return dn == DayNightNight
}

// ParseDayNight normalizes the free-form DAY/NIGHT marker. Unknown values
// default to DAY.
func ParseDayNight(raw string) DayNight {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "NIGHT":
		return DayNightNight
	case "DUSK":
		return DayNightDusk
	case "DAWN":
		return DayNightDawn
	default:
		return DayNightDay
	}
}

// DefaultSceneMinutes is assumed when a scene has no duration estimate.
const DefaultSceneMinutes = 60

// Scene is one atomic unit of script content. Immutable during a planning run.
type Scene struct {
	ID               uuid.UUID
	ProjectID        uuid.UUID
	SceneNumber      string
	Title            string
	Slugline         string
	IntExt           IntExt
	DayNight         DayNight
	EstimatedMinutes int
	Priority         int
	Characters       []string
}
