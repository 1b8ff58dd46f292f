// Package geocoding resolves free-text queries to coordinates via the
// Nominatim API, used as the fallback behind the built-in spot catalog.
package geocoding

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	defaultBaseURL = "https://nominatim.openstreetmap.org/search"

	// Nominatim's usage policy requires an identifying User-Agent.
	defaultUserAgent = "SurfCast/1.0 (github.com/mxmdgames/surfcast)"

	requestTimeout = 10 * time.Second
	resultLimit    = 10
)

// SearchErrorKind distinguishes the failure modes of a geocoding lookup.
type SearchErrorKind int

const (
	// SearchTimeout means the request did not complete in time.
	SearchTimeout SearchErrorKind = iota
	// SearchStatus means the API answered with a non-200 status.
	SearchStatus
)

// SearchError is the error surfaced by a failed geocoding lookup. Items
// with malformed coordinates are dropped silently and never produce one.
type SearchError struct {
	Kind   SearchErrorKind
	Status int // set for SearchStatus
	Err    error
}

func (e *SearchError) Error() string {
	if e.Kind == SearchTimeout {
		return "search timed out"
	}
	return fmt.Sprintf("search API returned status %d", e.Status)
}

func (e *SearchError) Unwrap() error {
	return e.Err
}

// Client queries the Nominatim geocoding API.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a geocoding client. An empty userAgent falls back to the
// built-in identifier.
func NewClient(userAgent string, logger *slog.Logger) *Client {
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL:   defaultBaseURL,
		userAgent: userAgent,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
		logger: logger,
	}
}

// nominatimItem is one entry of the Nominatim response array. Coordinates
// arrive as strings.
type nominatimItem struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
}

// Result is one geocoded location.
type Result struct {
	Name string
	Lat  float64
	Lng  float64
}

// Search geocodes a query. An empty result set is a valid outcome, not an
// error.
func (c *Client) Search(ctx context.Context, query string) ([]Result, error) {
	params := url.Values{}
	params.Set("format", "json")
	params.Set("q", query)
	params.Set("limit", strconv.Itoa(resultLimit))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			return nil, &SearchError{Kind: SearchTimeout, Err: err}
		}
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &SearchError{Kind: SearchStatus, Status: resp.StatusCode}
	}

	var items []nominatimItem
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	results := make([]Result, 0, len(items))
	for _, item := range items {
		lat, latErr := strconv.ParseFloat(item.Lat, 64)
		lng, lngErr := strconv.ParseFloat(item.Lon, 64)
		if latErr != nil || lngErr != nil {
			// Malformed coordinates are dropped, not reported.
			continue
		}
		results = append(results, Result{
			Name: displayName(item),
			Lat:  lat,
			Lng:  lng,
		})
	}

	c.logger.Debug("geocoded query", "query", query, "results", len(results))
	return results, nil
}

// displayName prefers the short place name, then the first comma-segment of
// the full display name, then a placeholder.
func displayName(item nominatimItem) string {
	var parts []string
	if item.Name != "" {
		parts = append(parts, item.Name)
	}
	if item.DisplayName != "" {
		first, _, _ := strings.Cut(item.DisplayName, ",")
		parts = append(parts, first)
	}
	if len(parts) == 0 {
		return "Unnamed Location"
	}
	return strings.Join(parts, ", ")
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr interface{ Timeout() bool }
	return errors.As(err, &netErr) && netErr.Timeout()
}
