package planner

import (
	"context"
	"slices"
	"time"

	"film-server/planner/internal/models"

	"go.uber.org/zap"
)

const (
	// DefaultDayStartMinutes is when a shoot day starts unless a late wrap
	// pushed it back.
	DefaultDayStartMinutes = 9 * 60
	// lateWrapMinutes: wrapping after 22:00 triggers the turnaround rule.
	lateWrapMinutes = 22 * 60
	// turnaroundRestMinutes is the legal rest between wrap and the next call.
	turnaroundRestMinutes = 11 * 60
	// crewCallLeadMinutes: crew is called this long before the first scene.
	crewCallLeadMinutes = 60
	// maxPlanDays bounds the calendar walk. A pool that cannot drain (an
	// oversized scene, persistent bad weather over exteriors) otherwise loops
	// forever.
	maxPlanDays = 100
)

// WeatherGate answers whether a date permits exterior shooting.
type WeatherGate interface {
	Check(ctx context.Context, date time.Time) (bool, *models.WeatherForecast)
}

// PlanResult is a draft shooting plan. UnplannedScenes holds whatever the
// driver could not place within the day cap; callers must surface it, a
// non-empty remainder means the plan is incomplete relative to the pool.
type PlanResult struct {
	Days            []models.ProposedDay
	UnplannedScenes []models.Scene
}

// Driver walks the calendar day by day, building each day greedily until the
// pool drains or the safety cap is hit.
type Driver struct {
	strategy Strategy
	gate     WeatherGate
	index    *LocationIndex
	logger   *zap.Logger
}

func NewDriver(strategy Strategy, gate WeatherGate, index *LocationIndex, logger *zap.Logger) *Driver {
	return &Driver{
		strategy: strategy,
		gate:     gate,
		index:    index,
		logger:   logger.Named("PlanDriver"),
	}
}

// Plan partitions the scenes into a sequence of shoot days starting at
// startDate (or tomorrow when zero). The input slice is never mutated.
func (d *Driver) Plan(ctx context.Context, scenes []models.Scene, startDate time.Time) *PlanResult {
	pool := slices.Clone(scenes)

	current := startDate
	if current.IsZero() {
		current = time.Now().AddDate(0, 0, 1)
	}
	current = time.Date(current.Year(), current.Month(), current.Day(), 0, 0, 0, 0, current.Location())

	var days []models.ProposedDay
	var nextStartOverride *int

	for i := 0; i < maxPlanDays && len(pool) > 0; i++ {
		goodWeather, forecast := d.gate.Check(ctx, current)

		start := DefaultDayStartMinutes
		if nextStartOverride != nil {
			start = *nextStartOverride
			nextStartOverride = nil
		}

		day, rest, wrap := BuildDay(pool, d.index, d.strategy, current, start, goodWeather, forecast)
		if len(day.Scenes) > 0 {
			if next, ok := turnaroundStart(wrap); ok {
				nextStartOverride = &next
			}

			day.CallTime = minutesToClock((start - crewCallLeadMinutes) / 60 * 60)
			days = append(days, day)
			pool = rest
		}

		// The calendar advances even on an empty day; staying on an
		// unschedulable date would stall the run.
		current = current.AddDate(0, 0, 1)
	}

	if len(pool) > 0 {
		d.logger.Warn("Plan is incomplete, scenes left unplanned",
			zap.Int("unplanned", len(pool)),
			zap.Int("planned_days", len(days)))
	}

	return &PlanResult{Days: days, UnplannedScenes: pool}
}

// turnaroundStart computes the earliest start of the day after a wrap. A wrap
// past 22:00 pushes the next call out to 11 hours of rest, never earlier than
// the default start.
func turnaroundStart(wrapMinutes int) (int, bool) {
	if wrapMinutes <= lateWrapMinutes {
		return 0, false
	}
	next := wrapMinutes - 24*60 + turnaroundRestMinutes
	if next < DefaultDayStartMinutes {
		next = DefaultDayStartMinutes
	}
	return next, true
}
