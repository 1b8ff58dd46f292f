package ui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/jonboulle/clockwork"

	"github.com/mxmdgames/surfcast/internal/favorites"
	"github.com/mxmdgames/surfcast/internal/models"
	"github.com/mxmdgames/surfcast/internal/openmeteo"
	"github.com/mxmdgames/surfcast/internal/search"
)

// debounceIdle is how long the user must pause before a search fires.
const debounceIdle = 500 * time.Millisecond

// AppState represents the current state of the application
type AppState int

const (
	StateSearch    AppState = iota // Typing a location query
	StateResults                   // Choosing from resolved locations
	StateLoading                   // Fetching forecast data
	StateDisplay                   // Showing the forecast
	StateFavorites                 // Browsing saved spots
	StateError                     // Error with no data to fall back on
)

// ForecastView is the active tab on the display screen
type ForecastView int

const (
	ViewCurrent ForecastView = iota
	ViewForecast
	ViewDetails
)

// Model represents the application's state
type Model struct {
	state  AppState
	view   ForecastView
	width  int
	height int
	err    error
	status string

	// Search
	searchInput textinput.Model
	debouncer   *search.Debouncer
	searchCh    chan tea.Msg
	resolver    *search.Resolver
	results     []models.SearchResult
	resultList  list.Model

	// Favorites
	store      *favorites.Store
	favEntries []models.FavoriteEntry
	favList    list.Model

	// Forecast
	client    *openmeteo.Client
	location  models.SearchResult
	days      int
	forecast  *models.Forecast
	summaries []models.DailySummary
	fetchSeq  uint64

	spinner spinner.Model
}

// NewModel creates a new application model. The initial forecast is
// fetched for defaultLocation on Init.
func NewModel(client *openmeteo.Client, resolver *search.Resolver, store *favorites.Store, defaultLocation models.SearchResult, days int) Model {
	ti := textinput.New()
	ti.Placeholder = "Search surf spots (e.g. Malibu or Pipeline, Hawaii)..."
	ti.CharLimit = 100
	ti.Width = 58

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(colorPrimary)

	searchCh := make(chan tea.Msg, 16)
	debouncer := search.NewDebouncer(clockwork.NewRealClock(), debounceIdle,
		func(id uint64, query string) {
			searchCh <- searchRequestMsg{id: id, query: query}
		},
		func() {
			searchCh <- searchClearedMsg{}
		},
	)

	return Model{
		state:       StateLoading,
		searchInput: ti,
		debouncer:   debouncer,
		searchCh:    searchCh,
		resolver:    resolver,
		store:       store,
		client:      client,
		location:    defaultLocation,
		days:        days,
		fetchSeq:    1,
		spinner:     s,
	}
}

// Init kicks off the initial forecast fetch and the debounce relay.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		fetchForecast(m.client, m.fetchSeq, m.location, m.days),
		loadFavorites(m.store),
		waitForSearch(m.searchCh),
	)
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = msg.Width
		m.height = msg.Height
		if m.state == StateResults {
			m.resultList.SetSize(msg.Width-4, msg.Height-12)
		}
		if m.state == StateFavorites {
			m.favList.SetSize(msg.Width-4, msg.Height-10)
		}
		return m, nil
	}

	switch msg := msg.(type) {
	case searchRequestMsg:
		// Resolve in the background and keep listening for the next
		// debounce event.
		return m, tea.Batch(
			resolveQuery(m.resolver, msg.id, msg.query),
			waitForSearch(m.searchCh),
		)

	case searchClearedMsg:
		m.results = nil
		if m.state == StateResults {
			m.state = StateSearch
			m.searchInput.Focus()
		}
		return m, waitForSearch(m.searchCh)

	case searchResultsMsg:
		// Only the most recently issued request may update the screen,
		// and only while the query it answered is still what the user
		// has typed — a newer edit may not have settled into an id yet.
		if msg.id != m.debouncer.Latest() {
			return m, nil
		}
		if msg.query != strings.TrimSpace(m.searchInput.Value()) {
			return m, nil
		}
		if m.state != StateSearch && m.state != StateResults {
			return m, nil
		}
		if msg.err != nil {
			m.results = nil
			m.err = fmt.Errorf("search failed: %w", msg.err)
			m.state = StateSearch
			m.searchInput.Focus()
			return m, nil
		}
		m.err = nil
		m.results = msg.results
		if len(msg.results) == 0 {
			m.status = fmt.Sprintf("No matches for %q", msg.query)
			m.state = StateSearch
			return m, nil
		}
		m.status = ""
		m.resultList = createResultList(msg.results, m.width-4, m.height-12)
		m.state = StateResults
		return m, nil

	case forecastMsg:
		if msg.seq != m.fetchSeq {
			return m, nil
		}
		if msg.err != nil {
			m.err = fmt.Errorf("fetching forecast: %w", msg.err)
			// Keep whatever was on screen before the failed fetch.
			if m.forecast != nil {
				m.state = StateDisplay
			} else {
				m.state = StateError
			}
			return m, nil
		}
		m.err = nil
		m.status = ""
		m.location = msg.location
		m.forecast = msg.forecast
		m.summaries = msg.summaries
		m.state = StateDisplay
		return m, nil

	case favoritesLoadedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Loading favorites failed: %v", msg.err)
			return m, nil
		}
		m.favEntries = msg.entries
		if m.state == StateFavorites {
			m.favList = createFavoritesList(msg.entries, m.width-4, m.height-10)
		}
		return m, nil

	case favoriteSavedMsg:
		if errors.Is(msg.err, favorites.ErrDuplicate) {
			m.status = "Location already in favorites!"
			return m, nil
		}
		if msg.err != nil {
			m.status = fmt.Sprintf("Saving favorite failed: %v", msg.err)
			return m, nil
		}
		m.status = "Surf spot added to favorites!"
		return m, loadFavorites(m.store)

	case favoriteRemovedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Removing favorite failed: %v", msg.err)
			return m, nil
		}
		m.status = fmt.Sprintf("Removed %s from favorites", msg.name)
		return m, loadFavorites(m.store)
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		switch m.state {
		case StateSearch:
			return m.handleSearchInput(keyMsg)
		case StateResults:
			return m.handleResultList(msg)
		case StateDisplay:
			return m.handleDisplayKeys(keyMsg)
		case StateFavorites:
			return m.handleFavoritesList(msg)
		case StateError:
			if keyMsg.String() == "q" {
				return m, tea.Quit
			}
			// Any other key returns to search
			m.state = StateSearch
			m.err = nil
			m.searchInput.Focus()
			return m, textinput.Blink
		}
	}

	switch m.state {
	case StateLoading:
		m.spinner, cmd = m.spinner.Update(msg)
	case StateSearch:
		m.searchInput, cmd = m.searchInput.Update(msg)
	case StateResults:
		m.resultList, cmd = m.resultList.Update(msg)
	case StateFavorites:
		m.favList, cmd = m.favList.Update(msg)
	}

	return m, cmd
}

// handleSearchInput handles keyboard input in search state
func (m Model) handleSearchInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if m.err != nil && msg.Type != tea.KeyEnter {
		m.err = nil
	}

	switch msg.Type {
	case tea.KeyEsc:
		if m.forecast != nil {
			m.state = StateDisplay
			m.searchInput.Blur()
			return m, nil
		}
		return m, nil

	case tea.KeyEnter, tea.KeyDown:
		if len(m.results) == 0 {
			return m, nil
		}
		m.resultList = createResultList(m.results, m.width-4, m.height-12)
		m.state = StateResults
		return m, nil
	}

	m.searchInput, cmd = m.searchInput.Update(msg)
	m.debouncer.Input(m.searchInput.Value())
	return m, cmd
}

// handleResultList handles keyboard input while choosing a location
func (m Model) handleResultList(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEnter {
			if item, ok := m.resultList.SelectedItem().(resultItem); ok {
				return m.startFetch(item.result)
			}
		}
		if keyMsg.Type == tea.KeyEsc {
			m.state = StateSearch
			m.searchInput.Focus()
			return m, textinput.Blink
		}
	}

	m.resultList, cmd = m.resultList.Update(msg)
	return m, cmd
}

// handleDisplayKeys handles keyboard input on the forecast screen
func (m Model) handleDisplayKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "s", "/":
		m.state = StateSearch
		m.status = ""
		m.results = nil
		m.searchInput.SetValue("")
		m.searchInput.Focus()
		return m, textinput.Blink

	case "tab":
		m.view = (m.view + 1) % 3
		return m, nil

	case "3", "5", "7":
		days := int(msg.Runes[0] - '0')
		if days == m.days {
			return m, nil
		}
		m.days = days
		return m.startFetch(m.location)

	case "r":
		return m.startFetch(m.location)

	case "a":
		return m, saveFavorite(m.store, m.location.Name, m.location.Coord)

	case "f":
		m.favList = createFavoritesList(m.favEntries, m.width-4, m.height-10)
		m.state = StateFavorites
		return m, nil
	}

	return m, nil
}

// handleFavoritesList handles keyboard input while browsing saved spots
func (m Model) handleFavoritesList(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "enter":
			if item, ok := m.favList.SelectedItem().(favoriteItem); ok {
				return m.startFetch(models.SearchResult{
					Name:  item.entry.Name,
					Coord: item.entry.Coord,
				})
			}
		case "d":
			if item, ok := m.favList.SelectedItem().(favoriteItem); ok {
				return m, removeFavorite(m.store, item.entry.Name)
			}
		case "esc", "f":
			m.state = StateDisplay
			return m, nil
		}
	}

	m.favList, cmd = m.favList.Update(msg)
	return m, cmd
}

// startFetch issues a forecast fetch for loc. Responses from earlier
// fetches are recognized by sequence number and dropped.
func (m Model) startFetch(loc models.SearchResult) (tea.Model, tea.Cmd) {
	m.fetchSeq++
	m.state = StateLoading
	m.status = fmt.Sprintf("Fetching surf data for %s...", loc.Name)
	m.results = nil
	m.searchInput.SetValue("")
	m.searchInput.Blur()
	return m, tea.Batch(
		m.spinner.Tick,
		fetchForecast(m.client, m.fetchSeq, loc, m.days),
	)
}

// View renders the UI
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	switch m.state {
	case StateSearch:
		return m.viewSearch()
	case StateResults:
		return m.viewResults()
	case StateLoading:
		return m.viewLoading()
	case StateDisplay:
		return m.viewDisplay()
	case StateFavorites:
		return m.viewFavorites()
	case StateError:
		return m.viewError()
	}

	return ""
}

// viewSearch renders the location search screen
func (m Model) viewSearch() string {
	title := titleStyle.Render("🌊 SurfCast")
	subtitle := mutedStyle.Render("Surf forecasts for any break on earth")

	searchBox := searchBoxStyle.Render(m.searchInput.View())

	sections := []string{title, subtitle, "", searchBox}

	if m.err != nil {
		sections = append(sections, "", errorStyle.Render("✗ "+m.err.Error()))
	}
	if m.status != "" {
		sections = append(sections, "", mutedStyle.Render(m.status))
	}
	if len(m.results) > 0 {
		sections = append(sections, "", mutedStyle.Render(fmt.Sprintf("%d matches — press Enter to choose", len(m.results))))
	}

	sections = append(sections,
		"",
		mutedStyle.Render("Examples: Malibu | Pipeline | Tamarindo | Hossegor"),
		"",
		helpStyle.Render("Esc: Back to forecast • Ctrl+C: Quit"),
	)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// viewResults renders the resolved location list
func (m Model) viewResults() string {
	title := titleStyle.Render("🌊 SurfCast")
	help := helpStyle.Render("↑/↓: Navigate • Enter: Select • Esc: Back to search")

	return lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		"",
		m.resultList.View(),
		"",
		help,
	)
}

// viewLoading renders the fetch-in-progress screen
func (m Model) viewLoading() string {
	status := m.status
	if status == "" {
		status = "Fetching surf data..."
	}
	return lipgloss.JoinVertical(
		lipgloss.Left,
		"",
		fmt.Sprintf("%s %s", m.spinner.View(), mutedStyle.Render(status)),
	)
}

// viewDisplay renders the forecast screen with its three tabs
func (m Model) viewDisplay() string {
	header := titleStyle.Render("🌊 " + m.location.Name)
	days := mutedStyle.Render(fmt.Sprintf("📍 %s • %d day forecast", formatCoord(m.location.Coord), m.days))

	var content string
	switch m.view {
	case ViewCurrent:
		content = m.renderCurrent()
	case ViewForecast:
		content = m.renderForecastDays()
	case ViewDetails:
		content = m.renderDetails()
	}

	sections := []string{header, days, "", m.renderTabs(), "", content}

	if m.err != nil {
		sections = append(sections, "", errorStyle.Render("✗ "+m.err.Error()))
	}
	if m.status != "" {
		sections = append(sections, "", mutedStyle.Render(m.status))
	}

	help := helpStyle.Render("S: Search • F: Favorites • A: Save spot • Tab: Next view • 3/5/7: Days • R: Refresh • Q: Quit")
	sections = append(sections, "", help)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderTabs renders the Current/Forecast/Details tab bar
func (m Model) renderTabs() string {
	labels := []string{"Current", "Forecast", "Details"}
	rendered := make([]string, len(labels))
	for i, label := range labels {
		if ForecastView(i) == m.view {
			rendered[i] = titleStyle.Render("[" + label + "]")
		} else {
			rendered[i] = mutedStyle.Render(" " + label + " ")
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

// viewFavorites renders the saved spots list
func (m Model) viewFavorites() string {
	title := titleStyle.Render("🌊 Favorite Surf Spots")
	help := helpStyle.Render("↑/↓: Navigate • Enter: Go to spot • D: Remove • Esc: Back")

	sections := []string{title, "", m.favList.View()}
	if m.status != "" {
		sections = append(sections, "", mutedStyle.Render(m.status))
	}
	sections = append(sections, "", help)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// viewError renders the error screen
func (m Model) viewError() string {
	title := errorStyle.Render("✗ Error")

	errMsg := "An unknown error occurred"
	if m.err != nil {
		errMsg = m.err.Error()
	}

	help := helpStyle.Render("Press any key to search • Q: Quit")

	return lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		"",
		errMsg,
		"",
		help,
	)
}
