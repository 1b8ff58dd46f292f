package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"

	"github.com/mxmdgames/surfcast/internal/models"
)

// resultItem wraps a SearchResult for use in a list
type resultItem struct {
	result models.SearchResult
}

// FilterValue implements list.Item
func (r resultItem) FilterValue() string {
	return r.result.Name
}

// Title implements list.DefaultItem
func (r resultItem) Title() string {
	return r.result.Name
}

// Description implements list.DefaultItem
func (r resultItem) Description() string {
	return formatCoord(r.result.Coord)
}

// favoriteItem wraps a FavoriteEntry for use in a list
type favoriteItem struct {
	entry models.FavoriteEntry
}

// FilterValue implements list.Item
func (f favoriteItem) FilterValue() string {
	return f.entry.Name
}

// Title implements list.DefaultItem
func (f favoriteItem) Title() string {
	return f.entry.Name
}

// Description implements list.DefaultItem
func (f favoriteItem) Description() string {
	return formatCoord(f.entry.Coord)
}

// createResultList creates a list.Model from search results
func createResultList(results []models.SearchResult, width, height int) list.Model {
	items := make([]list.Item, len(results))
	for i, r := range results {
		items[i] = resultItem{result: r}
	}

	l := list.New(items, list.NewDefaultDelegate(), width, height)
	l.Title = "Select a location"
	l.SetShowHelp(true)
	l.SetFilteringEnabled(false)

	return l
}

// createFavoritesList creates a list.Model from saved spots
func createFavoritesList(entries []models.FavoriteEntry, width, height int) list.Model {
	items := make([]list.Item, len(entries))
	for i, e := range entries {
		items[i] = favoriteItem{entry: e}
	}

	l := list.New(items, list.NewDefaultDelegate(), width, height)
	l.Title = "Favorite surf spots"
	l.SetShowHelp(true)
	l.SetFilteringEnabled(false)

	return l
}

// formatCoord renders a coordinate pair the way the details view does.
func formatCoord(c models.Coordinate) string {
	ns := "N"
	if c.Lat < 0 {
		ns = "S"
	}
	ew := "E"
	if c.Lng < 0 {
		ew = "W"
	}
	return fmt.Sprintf("%.4f°%s, %.4f°%s", abs(c.Lat), ns, abs(c.Lng), ew)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
