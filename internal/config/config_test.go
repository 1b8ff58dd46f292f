package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.DBPath != "data/surfcast.db" {
		t.Errorf("DBPath = %q", cfg.DBPath)
	}
	if cfg.DefaultLocation.Name != "Malibu, CA" {
		t.Errorf("DefaultLocation.Name = %q", cfg.DefaultLocation.Name)
	}
	if cfg.DefaultLocation.Coord.Lat != 34.0195 || cfg.DefaultLocation.Coord.Lng != -118.4912 {
		t.Errorf("DefaultLocation.Coord = %+v", cfg.DefaultLocation.Coord)
	}
	if cfg.ForecastDays != 3 {
		t.Errorf("ForecastDays = %d, want 3", cfg.ForecastDays)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SURFCAST_DB_PATH", "/tmp/test.db")
	t.Setenv("SURFCAST_DEFAULT_NAME", "Bells Beach")
	t.Setenv("SURFCAST_DEFAULT_LAT", "-38.3667")
	t.Setenv("SURFCAST_DEFAULT_LNG", "144.2833")
	t.Setenv("SURFCAST_FORECAST_DAYS", "7")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.DBPath != "/tmp/test.db" {
		t.Errorf("DBPath = %q", cfg.DBPath)
	}
	if cfg.DefaultLocation.Name != "Bells Beach" {
		t.Errorf("DefaultLocation.Name = %q", cfg.DefaultLocation.Name)
	}
	if cfg.DefaultLocation.Coord.Lat != -38.3667 {
		t.Errorf("DefaultLocation.Coord.Lat = %v", cfg.DefaultLocation.Coord.Lat)
	}
	if cfg.ForecastDays != 7 {
		t.Errorf("ForecastDays = %d, want 7", cfg.ForecastDays)
	}
}

func TestLoadRejectsBadForecastDays(t *testing.T) {
	t.Setenv("SURFCAST_FORECAST_DAYS", "4")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for SURFCAST_FORECAST_DAYS=4")
	}
}

func TestLoadMalformedNumbersFallBack(t *testing.T) {
	t.Setenv("SURFCAST_DEFAULT_LAT", "not-a-number")
	t.Setenv("SURFCAST_FORECAST_DAYS", "five")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.DefaultLocation.Coord.Lat != 34.0195 {
		t.Errorf("Lat = %v, want default", cfg.DefaultLocation.Coord.Lat)
	}
	if cfg.ForecastDays != 3 {
		t.Errorf("ForecastDays = %d, want default 3", cfg.ForecastDays)
	}
}
