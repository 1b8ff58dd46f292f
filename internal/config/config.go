package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/mxmdgames/surfcast/internal/models"
)

// Config holds the runtime settings, sourced from the environment with an
// optional .env file.
type Config struct {
	DBPath          string
	UserAgent       string
	DefaultLocation models.SearchResult
	ForecastDays    int
}

// Load reads configuration from the environment. A missing .env file is
// not an error; every setting has a default.
func Load() (*Config, error) {
	godotenv.Load()

	cfg := &Config{
		DBPath:    getEnv("SURFCAST_DB_PATH", "data/surfcast.db"),
		UserAgent: getEnv("SURFCAST_USER_AGENT", ""),
		DefaultLocation: models.SearchResult{
			Name: getEnv("SURFCAST_DEFAULT_NAME", "Malibu, CA"),
			Coord: models.Coordinate{
				Lat: getEnvAsFloat("SURFCAST_DEFAULT_LAT", 34.0195),
				Lng: getEnvAsFloat("SURFCAST_DEFAULT_LNG", -118.4912),
			},
		},
		ForecastDays: getEnvAsInt("SURFCAST_FORECAST_DAYS", 3),
	}

	switch cfg.ForecastDays {
	case 3, 5, 7:
	default:
		return nil, fmt.Errorf("SURFCAST_FORECAST_DAYS must be 3, 5 or 7, got %d", cfg.ForecastDays)
	}
	if !cfg.DefaultLocation.Coord.Valid() {
		return nil, fmt.Errorf("default location %v is out of range", cfg.DefaultLocation.Coord)
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	value := getEnv(key, "")
	if value == "" {
		return defaultValue
	}

	intValue, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return intValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	value := getEnv(key, "")
	if value == "" {
		return defaultValue
	}

	floatValue, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return defaultValue
	}
	return floatValue
}
