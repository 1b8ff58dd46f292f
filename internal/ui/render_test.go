package ui

import (
	"fmt"
	"strings"
	"testing"

	"github.com/mxmdgames/surfcast/internal/models"
)

func chartSamples(n int, height func(i int) float64) []models.HourlySample {
	samples := make([]models.HourlySample, n)
	for i := range samples {
		samples[i] = models.HourlySample{
			Time:       fmt.Sprintf("2026-08-30T%02d:00", i%24),
			WaveHeight: height(i),
		}
	}
	return samples
}

func TestWaveChartRowsEveryFourHours(t *testing.T) {
	chart := renderWaveChart(chartSamples(24, func(i int) float64 { return 1.0 }))

	lines := strings.Split(strings.TrimRight(chart, "\n"), "\n")
	// Header plus rows for hours 0, 4, 8, 12, 16, 20.
	if len(lines) != 7 {
		t.Fatalf("chart has %d lines, want 7:\n%s", len(lines), chart)
	}
	for _, stamp := range []string{"00:00", "04:00", "08:00", "12:00", "16:00", "20:00"} {
		if !strings.Contains(chart, stamp) {
			t.Errorf("chart missing row for %s", stamp)
		}
	}
	if strings.Contains(chart, "01:00") {
		t.Error("chart contains a row for an off-step hour")
	}
}

func TestWaveChartScalesToMax(t *testing.T) {
	chart := renderWaveChart(chartSamples(24, func(i int) float64 {
		if i == 4 {
			return 2.0
		}
		return 1.0
	}))

	full := strings.Repeat("█", chartBarWidth)
	half := strings.Repeat("█", chartBarWidth/2)
	if !strings.Contains(chart, "|"+full+"|") {
		t.Errorf("tallest hour did not fill the bar:\n%s", chart)
	}
	if !strings.Contains(chart, "|"+half+strings.Repeat(" ", chartBarWidth/2)+"|") {
		t.Errorf("half-height hour did not render a half bar:\n%s", chart)
	}
}

func TestWaveChartLimitsToFirstDay(t *testing.T) {
	chart := renderWaveChart(chartSamples(48, func(i int) float64 { return 1.0 }))

	lines := strings.Split(strings.TrimRight(chart, "\n"), "\n")
	if len(lines) != 7 {
		t.Errorf("chart over 48 hours has %d lines, want 7 (first 24h only)", len(lines))
	}
}

func TestWaveChartAllZeroHeights(t *testing.T) {
	chart := renderWaveChart(chartSamples(24, func(i int) float64 { return 0 }))

	if strings.Contains(chart, "█") {
		t.Errorf("flat chart should have empty bars:\n%s", chart)
	}
	if !strings.Contains(chart, "0.0m") {
		t.Errorf("flat chart should still label heights:\n%s", chart)
	}
}

func TestWaveChartSkipsUnparseableStamps(t *testing.T) {
	samples := chartSamples(24, func(i int) float64 { return 1.0 })
	samples[4].Time = "not-a-time"

	chart := renderWaveChart(samples)
	lines := strings.Split(strings.TrimRight(chart, "\n"), "\n")
	if len(lines) != 6 {
		t.Errorf("chart has %d lines, want 6 after dropping the bad stamp", len(lines))
	}
}
