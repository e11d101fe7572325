package planner

import (
	"strings"

	"film-server/planner/internal/models"
)

// LocationIndex resolves scene sluglines to the project's named locations.
// Built once per planning run. A slugline matches a location when the
// normalized slugline contains the normalized location name; the first
// declared location wins. Resolutions are memoized since the same sluglines
// come back for every day of the run.
type LocationIndex struct {
	locations []models.Location
	names     []string
	resolved  map[string]int // normalized slug -> index into locations, -1 for no match
}

func NewLocationIndex(locations []models.Location) *LocationIndex {
	ix := &LocationIndex{
		locations: locations,
		names:     make([]string, len(locations)),
		resolved:  make(map[string]int),
	}
	for i, loc := range locations {
		ix.names[i] = normalize(loc.Name)
	}
	return ix
}

// Resolve returns the location a slugline refers to, or nil when the address
// is unknown to the production.
func (ix *LocationIndex) Resolve(slugline string) *models.Location {
	slug := normalize(slugline)
	if slug == "" {
		return nil
	}

	i, ok := ix.resolved[slug]
	if !ok {
		i = -1
		for j, name := range ix.names {
			if name != "" && strings.Contains(slug, name) {
				i = j
				break
			}
		}
		ix.resolved[slug] = i
	}

	if i < 0 {
		return nil
	}
	return &ix.locations[i]
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// locationKey identifies the place a scene is shot at, for travel and
// locality comparisons. Scenes resolving to the same named location share a
// key; unresolved scenes key on their own slugline.
func locationKey(scene models.Scene, loc *models.Location) string {
	if loc != nil {
		return normalize(loc.Name)
	}
	return normalize(scene.Slugline)
}

// locationCity returns the normalized city of a resolved location, or "" when
// unknown. Unknown cities always count as a company move at full travel cost.
func locationCity(loc *models.Location) string {
	if loc == nil || loc.City == nil {
		return ""
	}
	return normalize(*loc.City)
}

// summaryName is the display name a day's location summary uses.
func summaryName(scene models.Scene, loc *models.Location) string {
	if loc != nil {
		return loc.Name
	}
	return strings.TrimSpace(scene.Slugline)
}
