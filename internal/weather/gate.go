package weather

import (
	"context"
	"time"

	"film-server/planner/internal/models"

	"go.uber.org/zap"
)

// ForecastHour is the fixed reference time-of-day for a day's forecast.
const ForecastHour = 12

// Gate answers the per-day "can we shoot exteriors today" question.
//
// The representative address is picked once from the project's locations,
// before any scene has been assigned to a day. That is a deliberate
// approximation: the locations actually visited on a day are only known after
// the day is built, so the gate forecasts for the first location with a known
// address and applies the answer to the whole day.
//
// Every failure (no address, geocoding miss, oracle down, timeout) degrades to
// good weather with no forecast. A scheduling run is never blocked by the
// oracle.
type Gate struct {
	oracle  Oracle
	address string
	coords  *models.Coordinates // memoized geocode result
	logger  *zap.Logger
}

func NewGate(oracle Oracle, locations []models.Location, logger *zap.Logger) *Gate {
	g := &Gate{
		oracle: oracle,
		logger: logger.Named("WeatherGate"),
	}
	for _, loc := range locations {
		if loc.Address != nil && *loc.Address != "" {
			g.address = *loc.Address
			break
		}
	}
	return g
}

// Check returns whether the date is a good-weather day and the forecast it
// based that on, if any.
func (g *Gate) Check(ctx context.Context, date time.Time) (bool, *models.WeatherForecast) {
	if g.address == "" {
		return true, nil
	}

	if g.coords == nil {
		coords, err := g.oracle.Geocode(ctx, g.address)
		if err != nil {
			g.logger.Debug("Geocoding failed, assuming good weather",
				zap.Error(err), zap.String("address", g.address))
			return true, nil
		}
		g.coords = coords
	}

	fc, err := g.oracle.Forecast(ctx, *g.coords, date, ForecastHour)
	if err != nil {
		g.logger.Debug("Forecast lookup failed, assuming good weather",
			zap.Error(err), zap.Time("date", date))
		return true, nil
	}

	return fc.IsGood(), fc
}
