package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds the Planner Service configuration, loaded from environment
// variables.
type Config struct {
	Port        string `envconfig:"PLANNER_SERVER_PORT" default:"8086"`
	Env         string `envconfig:"APP_ENV" default:"production"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`
	LogEncoding string `envconfig:"LOG_ENCODING" default:"json"`

	// PostgreSQL
	DBHost     string `envconfig:"DB_HOST" required:"true"`
	DBPort     string `envconfig:"DB_PORT" default:"5432"`
	DBUser     string `envconfig:"DB_USER" required:"true"`
	DBPassword string `envconfig:"DB_PASSWORD" required:"true"`
	DBName     string `envconfig:"DB_NAME" required:"true"`
	DBSSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	DBMaxConns int32  `envconfig:"DB_MAX_CONNECTIONS" default:"10"`

	// Redis (weather forecast cache)
	RedisAddr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	RedisPassword string `envconfig:"REDIS_PASSWORD" default:""`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0"`

	// RabbitMQ
	RabbitMQURL     string `envconfig:"RABBITMQ_URL" required:"true"`
	PlanEventsQueue string `envconfig:"PLAN_EVENTS_QUEUE" default:"plan_committed_events"`

	// Weather oracle
	WeatherBaseURL    string        `envconfig:"WEATHER_BASE_URL" default:"https://api.open-meteo.com"`
	WeatherGeoBaseURL string        `envconfig:"WEATHER_GEO_BASE_URL" default:"https://geocoding-api.open-meteo.com"`
	WeatherTimeout    time.Duration `envconfig:"WEATHER_TIMEOUT" default:"10s"`
	WeatherCacheTTL   time.Duration `envconfig:"WEATHER_CACHE_TTL" default:"3h"`

	CORSAllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"http://localhost:3000"`
}

// GetDSN returns the PostgreSQL connection string.
func (c *Config) GetDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode)
}

// LoadConfig loads configuration from an optional .env file and the
// environment.
func LoadConfig(envFiles ...string) (*Config, error) {
	_ = godotenv.Load(envFiles...)

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load planner-service configuration: %w", err)
	}
	return &cfg, nil
}
