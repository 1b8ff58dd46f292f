package search

import (
	"context"
	"log/slog"

	"github.com/mxmdgames/surfcast/internal/catalog"
	"github.com/mxmdgames/surfcast/internal/geocoding"
	"github.com/mxmdgames/surfcast/internal/models"
)

// Geocoder resolves free-text queries to coordinates over the network.
type Geocoder interface {
	Search(ctx context.Context, query string) ([]geocoding.Result, error)
}

// Resolver turns a query into surf spot candidates. Resolution runs in
// tiers: session cache first, then the built-in spot catalog, and only
// when both miss does it fall through to the geocoder.
type Resolver struct {
	cache    *Cache
	geocoder Geocoder
	logger   *slog.Logger
}

// NewResolver creates a resolver backed by the given geocoder.
func NewResolver(geocoder Geocoder, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{
		cache:    NewCache(),
		geocoder: geocoder,
		logger:   logger,
	}
}

// Resolve returns candidate locations for a query. Catalog matches are
// preferred over geocoded ones so well-known breaks keep their curated
// coordinates. Results are cached per query string, including geocoder
// responses that came back empty.
func (r *Resolver) Resolve(ctx context.Context, query string) ([]models.SearchResult, error) {
	if cached, ok := r.cache.Get(query); ok {
		return cached, nil
	}

	if spots := catalog.Search(query); len(spots) > 0 {
		results := make([]models.SearchResult, len(spots))
		for i, spot := range spots {
			results[i] = models.SearchResult{
				Name:  spot.Name,
				Coord: spot.Coord,
			}
		}
		r.cache.Put(query, results)
		return results, nil
	}

	geocoded, err := r.geocoder.Search(ctx, query)
	if err != nil {
		r.logger.Warn("geocoding failed", "query", query, "error", err)
		return nil, err
	}

	results := make([]models.SearchResult, 0, len(geocoded))
	for _, g := range geocoded {
		results = append(results, models.SearchResult{
			Name: g.Name,
			Coord: models.Coordinate{
				Lat: g.Lat,
				Lng: g.Lng,
			},
		})
	}
	r.cache.Put(query, results)
	return results, nil
}
