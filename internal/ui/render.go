package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/mxmdgames/surfcast/internal/compass"
	"github.com/mxmdgames/surfcast/internal/models"
)

const (
	chartBarWidth  = 20
	chartHours     = 24
	chartHourStep  = 4
	hourStampShort = "15:04"
)

// renderCurrent renders the current conditions tiles plus the wave trend
// chart for the first hourly sample.
func (m Model) renderCurrent() string {
	if m.forecast == nil || len(m.forecast.Hourly) == 0 {
		return mutedStyle.Render("No conditions available")
	}
	current := m.forecast.Hourly[0]

	swell := compass.FromDegrees(current.SwellDirection)
	wind := compass.FromDegrees(current.WindDirection)

	tiles := lipgloss.JoinHorizontal(
		lipgloss.Top,
		conditionTile("Wave Height", fmt.Sprintf("%.1f", current.WaveHeight), "m", valueStyle),
		conditionTile("Wind Speed", fmt.Sprintf("%.0f", current.WindSpeed), "km/h", valueStyle),
		conditionTile("Swell Period", fmt.Sprintf("%.0f", current.SwellPeriod), "sec", valueStyle),
		conditionTile("Swell Direction", swell.Arrow+" "+swell.Label8, "", swellStyle),
		conditionTile("Wind Direction", wind.Arrow+" "+wind.Label8, "", windStyle),
	)

	var b strings.Builder
	b.WriteString(tiles)
	b.WriteString("\n")
	b.WriteString(sectionHeaderStyle.Render("Wave Height Trend"))
	b.WriteString("\n")
	b.WriteString(renderWaveChart(m.forecast.Hourly))

	return b.String()
}

func conditionTile(label, value, unit string, style lipgloss.Style) string {
	body := style.Bold(true).Render(value)
	if unit != "" {
		body += " " + mutedStyle.Render(unit)
	}
	return tileStyle.Render(labelStyle.Render(label) + "\n" + body)
}

// renderWaveChart draws the first day's wave heights as horizontal bars,
// one row every four hours, scaled against the day's maximum.
func renderWaveChart(hourly []models.HourlySample) string {
	window := hourly
	if len(window) > chartHours {
		window = window[:chartHours]
	}

	maxHeight := 0.0
	for _, h := range window {
		if h.WaveHeight > maxHeight {
			maxHeight = h.WaveHeight
		}
	}

	var b strings.Builder
	b.WriteString("Wave Height (24h):\n")
	for i, hour := range window {
		if i%chartHourStep != 0 {
			continue
		}
		stamp, err := parseHourStamp(hour.Time)
		if err != nil {
			continue
		}
		barLength := 0
		if maxHeight > 0 {
			barLength = int(hour.WaveHeight / maxHeight * chartBarWidth)
		}
		bar := strings.Repeat("█", barLength)
		fmt.Fprintf(&b, "%s |%-*s| %.1fm\n", stamp.Format(hourStampShort), chartBarWidth, bar, hour.WaveHeight)
	}

	return b.String()
}

// renderForecastDays renders one bordered row per summarized day.
func (m Model) renderForecastDays() string {
	if len(m.summaries) == 0 {
		return mutedStyle.Render("No forecast available")
	}

	rows := make([]string, 0, len(m.summaries))
	for _, day := range m.summaries {
		swell := compass.FromDegrees(day.DominantSwellDirection)
		stats := fmt.Sprintf("Waves: %.1f-%.1fm | Wind: %.0fkm/h | Swell: %s",
			day.WaveHeightMin, day.WaveHeightMax, day.WindSpeedAvg, swell.Label16)

		row := lipgloss.JoinHorizontal(
			lipgloss.Top,
			dayDateStyle.Width(22).Render(day.Date.Format("Monday, January 2")),
			valueStyle.Render(stats),
		)
		rows = append(rows, dayRowStyle.Render(row))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderDetails renders the full current-conditions breakdown.
func (m Model) renderDetails() string {
	if m.forecast == nil || len(m.forecast.Hourly) == 0 {
		return mutedStyle.Render("No details available")
	}
	current := m.forecast.Hourly[0]

	swell := compass.FromDegrees(current.SwellDirection)
	wind := compass.FromDegrees(current.WindDirection)

	swellShare, windWaveShare := 0.0, 0.0
	if current.WaveHeight != 0 {
		swellShare = current.SwellHeight / current.WaveHeight * 100
		windWaveShare = current.WindWaveHeight / current.WaveHeight * 100
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Location: %s\n", m.location.Name)
	fmt.Fprintf(&b, "Coordinates: %s\n\n", formatCoord(m.location.Coord))

	b.WriteString(sectionHeaderStyle.Render("Current Conditions"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "• Wave Height: %.1fm\n", current.WaveHeight)
	fmt.Fprintf(&b, "• Swell Height: %.1fm\n", current.SwellHeight)
	fmt.Fprintf(&b, "• Swell Period: %.0fs\n", current.SwellPeriod)
	fmt.Fprintf(&b, "• Swell Direction: %s (%.0f°)\n", swell.Label16, current.SwellDirection)
	fmt.Fprintf(&b, "• Wind Speed: %.0f km/h\n", current.WindSpeed)
	fmt.Fprintf(&b, "• Wind Direction: %s (%.0f°)\n", wind.Label16, current.WindDirection)
	fmt.Fprintf(&b, "• Wave Period: %.0fs\n", current.WavePeriod)
	fmt.Fprintf(&b, "• Temperature: %.1f°C\n", current.Temperature)
	fmt.Fprintf(&b, "• Humidity: %.0f%%\n", current.Humidity)
	fmt.Fprintf(&b, "• Precipitation: %.0f%%\n\n", current.Precipitation)

	b.WriteString(sectionHeaderStyle.Render("Wave Analysis"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "• Swell Component: %.0f%%\n", swellShare)
	fmt.Fprintf(&b, "• Wind Wave Component: %.0f%%\n", windWaveShare)

	return b.String()
}

// parseHourStamp accepts the marine feed's localized hour stamps, with an
// RFC3339 fallback for sources that include a zone offset.
func parseHourStamp(stamp string) (time.Time, error) {
	t, err := time.Parse("2006-01-02T15:04", stamp)
	if err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, stamp)
}
