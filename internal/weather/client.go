package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"film-server/planner/internal/models"

	"go.uber.org/zap"
)

// Oracle answers geocoding and forecast lookups. All methods are best-effort:
// callers degrade to "good weather" on error rather than aborting a run.
type Oracle interface {
	Geocode(ctx context.Context, address string) (*models.Coordinates, error)
	Forecast(ctx context.Context, coords models.Coordinates, date time.Time, hour int) (*models.WeatherForecast, error)
}

// ClientConfig holds the HTTP oracle settings.
type ClientConfig struct {
	BaseURL    string // forecast API, e.g. https://api.open-meteo.com
	GeoBaseURL string // geocoding API, e.g. https://geocoding-api.open-meteo.com
	Timeout    time.Duration
}

// Compile-time check to ensure implementation satisfies the interface.
var _ Oracle = (*Client)(nil)

// Client talks to an Open-Meteo-compatible weather API. A nil cache disables
// forecast caching.
type Client struct {
	httpClient *http.Client
	baseURL    string
	geoBaseURL string
	cache      *Cache
	logger     *zap.Logger
}

func NewClient(cfg ClientConfig, cache *Cache, logger *zap.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    cfg.BaseURL,
		geoBaseURL: cfg.GeoBaseURL,
		cache:      cache,
		logger:     logger.Named("WeatherClient"),
	}
}

type geocodeResponse struct {
	Results []struct {
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	} `json:"results"`
}

// Geocode resolves a postal address to coordinates using the first search hit.
func (c *Client) Geocode(ctx context.Context, address string) (*models.Coordinates, error) {
	q := url.Values{}
	q.Set("name", address)
	q.Set("count", "1")
	reqURL := fmt.Sprintf("%s/v1/search?%s", c.geoBaseURL, q.Encode())

	var resp geocodeResponse
	if err := c.getJSON(ctx, reqURL, &resp); err != nil {
		return nil, fmt.Errorf("geocode request failed: %w", err)
	}
	if len(resp.Results) == 0 {
		return nil, fmt.Errorf("geocode %q: %w", address, models.ErrNotFound)
	}

	return &models.Coordinates{
		Latitude:  resp.Results[0].Latitude,
		Longitude: resp.Results[0].Longitude,
	}, nil
}

type forecastResponse struct {
	Hourly struct {
		Time        []string  `json:"time"`
		Temperature []float64 `json:"temperature_2m"`
		WeatherCode []int     `json:"weathercode"`
	} `json:"hourly"`
}

// Forecast returns the forecast at the given hour of the given date.
func (c *Client) Forecast(ctx context.Context, coords models.Coordinates, date time.Time, hour int) (*models.WeatherForecast, error) {
	if fc, ok := c.cache.Get(ctx, coords, date, hour); ok {
		return fc, nil
	}

	day := date.Format("2006-01-02")
	q := url.Values{}
	q.Set("latitude", fmt.Sprintf("%.4f", coords.Latitude))
	q.Set("longitude", fmt.Sprintf("%.4f", coords.Longitude))
	q.Set("hourly", "temperature_2m,weathercode")
	q.Set("start_date", day)
	q.Set("end_date", day)
	reqURL := fmt.Sprintf("%s/v1/forecast?%s", c.baseURL, q.Encode())

	var resp forecastResponse
	if err := c.getJSON(ctx, reqURL, &resp); err != nil {
		return nil, fmt.Errorf("forecast request failed: %w", err)
	}

	want := fmt.Sprintf("%sT%02d:00", day, hour)
	for i, t := range resp.Hourly.Time {
		if t != want {
			continue
		}
		if i >= len(resp.Hourly.Temperature) || i >= len(resp.Hourly.WeatherCode) {
			break
		}
		code := resp.Hourly.WeatherCode[i]
		fc := &models.WeatherForecast{
			Temperature:  resp.Hourly.Temperature[i],
			SeverityCode: severityFromWeatherCode(code),
			Description:  describeWeatherCode(code),
		}
		c.cache.Set(ctx, coords, date, hour, fc)
		return fc, nil
	}

	return nil, fmt.Errorf("forecast for %s hour %d: %w", day, hour, models.ErrNotFound)
}

func (c *Client) getJSON(ctx context.Context, reqURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

// severityFromWeatherCode collapses WMO weather codes into the ordinal scale
// the planner thresholds on. Codes above models.BadWeatherSeverity block
// exterior scenes.
func severityFromWeatherCode(code int) int {
	switch {
	case code == 0:
		return 0 // clear
	case code <= 2:
		return 1 // partly cloudy
	case code == 3:
		return 2 // overcast
	case code == 45 || code == 48:
		return 3 // fog
	case code >= 51 && code <= 57:
		return 4 // drizzle
	case code >= 61 && code <= 67:
		return 5 // rain
	case code >= 71 && code <= 77:
		return 6 // snow
	case code >= 80 && code <= 86:
		return 6 // showers
	case code >= 95:
		return 8 // thunderstorm
	default:
		return 2
	}
}

func describeWeatherCode(code int) string {
	switch {
	case code == 0:
		return "clear"
	case code <= 2:
		return "partly cloudy"
	case code == 3:
		return "overcast"
	case code == 45 || code == 48:
		return "fog"
	case code >= 51 && code <= 57:
		return "drizzle"
	case code >= 61 && code <= 67:
		return "rain"
	case code >= 71 && code <= 77:
		return "snow"
	case code >= 80 && code <= 86:
		return "showers"
	case code >= 95:
		return "thunderstorm"
	default:
		return "unknown"
	}
}
