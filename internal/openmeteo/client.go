// Package openmeteo fetches and merges the two Open-Meteo time-series feeds
// (marine and atmospheric) for a coordinate into a unified hourly forecast.
package openmeteo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mxmdgames/surfcast/internal/models"
)

const (
	defaultMarineURL   = "https://marine-api.open-meteo.com/v1/marine"
	defaultForecastURL = "https://api.open-meteo.com/v1/forecast"

	requestTimeout = 15 * time.Second

	marineHourlyFields = "wave_height,wave_direction,wave_period," +
		"wind_wave_height,wind_wave_direction,wind_wave_period," +
		"swell_wave_height,swell_wave_direction,swell_wave_period"
	marineDailyFields = "wave_height_max,wave_direction_dominant,wave_period_max," +
		"wind_wave_height_max,wind_wave_direction_dominant,wind_wave_period_max"
	weatherHourlyFields = "temperature_2m,relative_humidity_2m,apparent_temperature," +
		"precipitation_probability,weather_code,wind_speed_10m,wind_direction_10m,visibility"
	weatherDailyFields = "sunrise,sunset,temperature_2m_max,temperature_2m_min,weather_code"
)

// Client fetches forecasts from the Open-Meteo APIs.
type Client struct {
	marineURL   string
	forecastURL string
	httpClient  *http.Client
	logger      *slog.Logger
}

// NewClient creates an Open-Meteo client.
func NewClient(logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		marineURL:   defaultMarineURL,
		forecastURL: defaultForecastURL,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
		logger: logger,
	}
}

// Forecast retrieves the marine and atmospheric series for a coordinate and
// horizon (3, 5, or 7 days) and merges them into one hourly sequence. The two
// requests run concurrently; both must succeed or the whole operation fails
// with a *FetchError.
func (c *Client) Forecast(ctx context.Context, coord models.Coordinate, days int) (*models.Forecast, error) {
	var (
		marine  marineResponse
		weather weatherResponse
	)

	// A plain group rather than errgroup.WithContext: a failure of one feed
	// must not abort the other in-flight request, only fail the join.
	var g errgroup.Group
	g.Go(func() error {
		return c.fetchJSON(ctx, "marine", c.marineRequestURL(coord, days), &marine)
	})
	g.Go(func() error {
		return c.fetchJSON(ctx, "weather", c.weatherRequestURL(coord, days), &weather)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	forecast := merge(&marine, &weather)
	c.logger.Info("forecast fetched",
		"lat", coord.Lat, "lng", coord.Lng, "days", days,
		"hours", len(forecast.Hourly))
	return forecast, nil
}

func (c *Client) marineRequestURL(coord models.Coordinate, days int) string {
	params := url.Values{}
	params.Set("latitude", formatCoord(coord.Lat))
	params.Set("longitude", formatCoord(coord.Lng))
	params.Set("hourly", marineHourlyFields)
	params.Set("daily", marineDailyFields)
	params.Set("timezone", "auto")
	params.Set("forecast_days", strconv.Itoa(days))
	return c.marineURL + "?" + params.Encode()
}

func (c *Client) weatherRequestURL(coord models.Coordinate, days int) string {
	params := url.Values{}
	params.Set("latitude", formatCoord(coord.Lat))
	params.Set("longitude", formatCoord(coord.Lng))
	params.Set("hourly", weatherHourlyFields)
	params.Set("daily", weatherDailyFields)
	params.Set("timezone", "auto")
	params.Set("forecast_days", strconv.Itoa(days))
	return c.forecastURL + "?" + params.Encode()
}

// fetchJSON performs one GET and decodes the body, classifying failures into
// the FetchError taxonomy.
func (c *Client) fetchJSON(ctx context.Context, source, requestURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return fmt.Errorf("creating %s request: %w", source, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			return &FetchError{Kind: FetchTimeout, Source: source, Err: err}
		}
		// Transport failures are not one of the payload failure modes.
		return fmt.Errorf("executing %s request: %w", source, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &FetchError{Kind: FetchStatus, Source: source, Status: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &FetchError{Kind: FetchParse, Source: source, Err: err}
	}
	return nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr interface{ Timeout() bool }
	return errors.As(err, &netErr) && netErr.Timeout()
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}
