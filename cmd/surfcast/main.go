package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mxmdgames/surfcast/internal/config"
	"github.com/mxmdgames/surfcast/internal/favorites"
	"github.com/mxmdgames/surfcast/internal/geocoding"
	"github.com/mxmdgames/surfcast/internal/openmeteo"
	"github.com/mxmdgames/surfcast/internal/search"
	"github.com/mxmdgames/surfcast/internal/ui"
)

func main() {
	logPath := flag.String("log", "", "Write debug logs to this file (stdout belongs to the UI)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := newLogger(*logPath)
	if err != nil {
		fmt.Printf("Error opening log file: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	if dir := filepath.Dir(cfg.DBPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			fmt.Printf("Error creating data directory: %v\n", err)
			os.Exit(1)
		}
	}

	client := openmeteo.NewClient(logger)
	geocoder := geocoding.NewClient(cfg.UserAgent, logger)
	resolver := search.NewResolver(geocoder, logger)
	store := favorites.NewStore(cfg.DBPath)

	model := ui.NewModel(client, resolver, store, cfg.DefaultLocation, cfg.ForecastDays)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running application: %v\n", err)
		os.Exit(1)
	}
}

// newLogger builds the slog logger shared by the network clients. Without
// a log file everything is discarded, since the terminal is occupied by
// the UI.
func newLogger(path string) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.DiscardHandler), func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, err
	}
	return slog.New(slog.NewTextHandler(f, nil)), func() { f.Close() }, nil
}
