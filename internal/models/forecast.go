package models

import "time"

// HourlySample is one merged record of marine and atmospheric conditions
// for a single hour. Numeric fields default to 0 when the upstream source
// had no value for that index.
type HourlySample struct {
	Time              string  // localized ISO timestamp from the marine source
	WaveHeight        float64 // meters
	WaveDirection     float64 // degrees
	WavePeriod        float64 // seconds
	SwellHeight       float64 // meters
	SwellDirection    float64 // degrees
	SwellPeriod       float64 // seconds
	WindWaveHeight    float64 // meters
	WindWaveDirection float64 // degrees
	WindWavePeriod    float64 // seconds
	Temperature       float64 // celsius
	ApparentTemp      float64 // celsius
	Humidity          float64 // percent
	Precipitation     float64 // probability, percent
	WeatherCode       float64 // WMO weather code
	WindSpeed         float64 // km/h
	WindDirection     float64 // degrees
	Visibility        float64 // meters
}

// DailyRecord carries the raw per-day fields taken verbatim from the
// atmospheric source's daily arrays.
type DailyRecord struct {
	Date        string // YYYY-MM-DD
	Sunrise     string
	Sunset      string
	TempMax     float64
	TempMin     float64
	WeatherCode float64
}

// Forecast is the unified result of one fetch: the merged hourly sequence
// plus the raw daily fields, both in ascending time order.
type Forecast struct {
	Hourly []HourlySample
	Daily  []DailyRecord
}

// DailySummary is one calendar day's derived statistics over the merged
// hourly sequence, joined with that day's raw daily fields.
type DailySummary struct {
	Date                   time.Time
	Sunrise                string
	Sunset                 string
	TempMax                float64
	TempMin                float64
	WeatherCode            float64
	WaveHeightMin          float64
	WaveHeightMax          float64
	WindSpeedAvg           float64
	DominantSwellDirection float64 // degrees, statistical mode of the day's readings
}
