package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"film-server/planner/internal/models"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Cache stores forecasts in Redis so repeated plan previews for the same dates
// do not re-hit the oracle. Cache failures are logged and otherwise ignored;
// the client just fetches again. A nil *Cache is a no-op.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewCache(client *redis.Client, ttl time.Duration, logger *zap.Logger) *Cache {
	return &Cache{
		client: client,
		ttl:    ttl,
		logger: logger.Named("WeatherCache"),
	}
}

func cacheKey(coords models.Coordinates, date time.Time, hour int) string {
	return fmt.Sprintf("weather:forecast:%.4f:%.4f:%s:%02d",
		coords.Latitude, coords.Longitude, date.Format("2006-01-02"), hour)
}

func (c *Cache) Get(ctx context.Context, coords models.Coordinates, date time.Time, hour int) (*models.WeatherForecast, bool) {
	if c == nil {
		return nil, false
	}

	raw, err := c.client.Get(ctx, cacheKey(coords, date, hour)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("Forecast cache read failed", zap.Error(err))
		}
		return nil, false
	}

	var fc models.WeatherForecast
	if err := json.Unmarshal(raw, &fc); err != nil {
		c.logger.Warn("Forecast cache entry corrupt", zap.Error(err))
		return nil, false
	}
	return &fc, true
}

func (c *Cache) Set(ctx context.Context, coords models.Coordinates, date time.Time, hour int, fc *models.WeatherForecast) {
	if c == nil || fc == nil {
		return
	}

	raw, err := json.Marshal(fc)
	if err != nil {
		c.logger.Warn("Failed to marshal forecast for cache", zap.Error(err))
		return
	}
	if err := c.client.Set(ctx, cacheKey(coords, date, hour), raw, c.ttl).Err(); err != nil {
		c.logger.Warn("Forecast cache write failed", zap.Error(err))
	}
}
