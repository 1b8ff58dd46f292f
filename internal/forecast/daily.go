// Package forecast derives per-day summaries from the merged hourly sequence.
package forecast

import (
	"sort"
	"time"

	"github.com/mxmdgames/surfcast/internal/models"
)

// Open-Meteo returns localized timestamps without a zone suffix when
// timezone=auto is requested.
const hourLayout = "2006-01-02T15:04"

// Summarize groups the hourly sequence by calendar date and derives one
// DailySummary per day present, in ascending date order. Samples whose
// timestamps cannot be parsed are skipped; a day that loses all its samples
// is simply absent from the result. Sunrise, sunset, temperature bounds, and
// weather code are joined from the raw daily records by date.
func Summarize(hourly []models.HourlySample, daily []models.DailyRecord) []models.DailySummary {
	type partition struct {
		date    time.Time
		samples []models.HourlySample
	}

	byDate := make(map[string]*partition)
	var order []string

	for _, sample := range hourly {
		ts, err := parseHour(sample.Time)
		if err != nil {
			continue
		}
		key := ts.Format("2006-01-02")
		p, ok := byDate[key]
		if !ok {
			p = &partition{date: time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, ts.Location())}
			byDate[key] = p
			order = append(order, key)
		}
		p.samples = append(p.samples, sample)
	}

	sort.Strings(order)

	rawByDate := make(map[string]models.DailyRecord, len(daily))
	for _, rec := range daily {
		rawByDate[rec.Date] = rec
	}

	summaries := make([]models.DailySummary, 0, len(order))
	for _, key := range order {
		p := byDate[key]

		summary := models.DailySummary{
			Date:                   p.date,
			WaveHeightMin:          p.samples[0].WaveHeight,
			WaveHeightMax:          p.samples[0].WaveHeight,
			DominantSwellDirection: dominantDirection(p.samples),
		}

		var windSum float64
		for _, s := range p.samples {
			if s.WaveHeight < summary.WaveHeightMin {
				summary.WaveHeightMin = s.WaveHeight
			}
			if s.WaveHeight > summary.WaveHeightMax {
				summary.WaveHeightMax = s.WaveHeight
			}
			windSum += s.WindSpeed
		}
		summary.WindSpeedAvg = windSum / float64(len(p.samples))

		if rec, ok := rawByDate[key]; ok {
			summary.Sunrise = rec.Sunrise
			summary.Sunset = rec.Sunset
			summary.TempMax = rec.TempMax
			summary.TempMin = rec.TempMin
			summary.WeatherCode = rec.WeatherCode
		}

		summaries = append(summaries, summary)
	}

	return summaries
}

// dominantDirection is the statistical mode of the day's swell directions.
// Counting first and then re-scanning in sample order keeps the tie-break
// deterministic: the first-encountered value wins.
func dominantDirection(samples []models.HourlySample) float64 {
	counts := make(map[float64]int, len(samples))
	for _, s := range samples {
		counts[s.SwellDirection]++
	}

	best := samples[0].SwellDirection
	bestCount := counts[best]
	for _, s := range samples {
		if counts[s.SwellDirection] > bestCount {
			best = s.SwellDirection
			bestCount = counts[best]
		}
	}
	return best
}

func parseHour(ts string) (time.Time, error) {
	t, err := time.Parse(hourLayout, ts)
	if err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, ts)
}
