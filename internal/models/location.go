package models

import (
	"math"
	"time"
)

// Coordinate is an immutable geographic point.
type Coordinate struct {
	Lat float64
	Lng float64
}

// Valid reports whether the coordinate is within geographic bounds.
func (c Coordinate) Valid() bool {
	return c.Lat >= -90 && c.Lat <= 90 && c.Lng >= -180 && c.Lng <= 180
}

// SameSpot reports whether two coordinates refer to the same surf spot
// for duplicate-favorite detection: both deltas under 0.01 degrees.
func (c Coordinate) SameSpot(other Coordinate) bool {
	return math.Abs(c.Lat-other.Lat) < 0.01 && math.Abs(c.Lng-other.Lng) < 0.01
}

// SurfSpot is one entry of the built-in spot catalog.
type SurfSpot struct {
	Name      string
	Coord     Coordinate
	BreakType string // e.g. "Beach Break", "Reef Break", "Point Break"
	Swell     string // dominant swell direction as a compass label
}

// SearchResult is a resolved location, from either the catalog or geocoding.
type SearchResult struct {
	Name  string
	Coord Coordinate
}

// FavoriteEntry is a user-saved surf spot.
type FavoriteEntry struct {
	ID        int64
	Name      string
	Coord     Coordinate
	CreatedAt time.Time
}
