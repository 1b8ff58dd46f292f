package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mxmdgames/surfcast/internal/favorites"
	"github.com/mxmdgames/surfcast/internal/forecast"
	"github.com/mxmdgames/surfcast/internal/models"
	"github.com/mxmdgames/surfcast/internal/openmeteo"
	"github.com/mxmdgames/surfcast/internal/search"
)

// searchRequestMsg is emitted through the debounce channel when the user
// pauses typing.
type searchRequestMsg struct {
	id    uint64
	query string
}

// searchClearedMsg is emitted when the query drops below the minimum length.
type searchClearedMsg struct{}

// searchResultsMsg is sent when a resolve completes. id matches the
// request that produced it.
type searchResultsMsg struct {
	id      uint64
	query   string
	results []models.SearchResult
	err     error
}

// forecastMsg is sent when a forecast fetch completes. seq matches the
// fetch that produced it.
type forecastMsg struct {
	seq       uint64
	location  models.SearchResult
	forecast  *models.Forecast
	summaries []models.DailySummary
	err       error
}

// favoritesLoadedMsg is sent when the saved spots have been read.
type favoritesLoadedMsg struct {
	entries []models.FavoriteEntry
	err     error
}

// favoriteSavedMsg is sent when an add completes.
type favoriteSavedMsg struct {
	entry *models.FavoriteEntry
	err   error
}

// favoriteRemovedMsg is sent when a removal completes.
type favoriteRemovedMsg struct {
	name string
	err  error
}

// waitForSearch relays the next debouncer event into the update loop. The
// returned command re-arms itself from Update after every receive.
func waitForSearch(ch chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return <-ch
	}
}

// resolveQuery resolves a search query in the background.
func resolveQuery(r *search.Resolver, id uint64, query string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		results, err := r.Resolve(ctx, query)
		return searchResultsMsg{id: id, query: query, results: results, err: err}
	}
}

// fetchForecast fetches and summarizes a forecast in the background.
func fetchForecast(c *openmeteo.Client, seq uint64, loc models.SearchResult, days int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		fc, err := c.Forecast(ctx, loc.Coord, days)
		if err != nil {
			return forecastMsg{seq: seq, location: loc, err: err}
		}
		return forecastMsg{
			seq:       seq,
			location:  loc,
			forecast:  fc,
			summaries: forecast.Summarize(fc.Hourly, fc.Daily),
		}
	}
}

// loadFavorites reads the saved spots.
func loadFavorites(store *favorites.Store) tea.Cmd {
	return func() tea.Msg {
		entries, err := store.List()
		return favoritesLoadedMsg{entries: entries, err: err}
	}
}

// saveFavorite adds the given spot to the saved list.
func saveFavorite(store *favorites.Store, name string, coord models.Coordinate) tea.Cmd {
	return func() tea.Msg {
		entry, err := store.Add(name, coord)
		return favoriteSavedMsg{entry: entry, err: err}
	}
}

// removeFavorite deletes a saved spot by name.
func removeFavorite(store *favorites.Store, name string) tea.Cmd {
	return func() tea.Msg {
		err := store.Remove(name)
		return favoriteRemovedMsg{name: name, err: err}
	}
}
