package forecast

import (
	"testing"

	"github.com/mxmdgames/surfcast/internal/models"
)

func sample(ts string, waveHeight, windSpeed, swellDir float64) models.HourlySample {
	return models.HourlySample{
		Time:           ts,
		WaveHeight:     waveHeight,
		WindSpeed:      windSpeed,
		SwellDirection: swellDir,
	}
}

func TestSummarize_GroupsByCalendarDate(t *testing.T) {
	hourly := []models.HourlySample{
		sample("2026-08-28T22:00", 1.0, 10, 270),
		sample("2026-08-28T23:00", 1.5, 12, 270),
		sample("2026-08-29T00:00", 2.0, 20, 180),
		sample("2026-08-29T01:00", 1.8, 22, 180),
	}

	summaries := Summarize(hourly, nil)

	if len(summaries) != 2 {
		t.Fatalf("Summarize() produced %d summaries, want 2", len(summaries))
	}
	if got := summaries[0].Date.Format("2006-01-02"); got != "2026-08-28" {
		t.Errorf("first summary date = %s, want 2026-08-28", got)
	}
	if got := summaries[1].Date.Format("2006-01-02"); got != "2026-08-29" {
		t.Errorf("second summary date = %s, want 2026-08-29", got)
	}
}

func TestSummarize_Statistics(t *testing.T) {
	hourly := []models.HourlySample{
		sample("2026-08-28T06:00", 1.2, 10, 270),
		sample("2026-08-28T12:00", 2.4, 20, 270),
		sample("2026-08-28T18:00", 0.9, 15, 180),
	}

	summaries := Summarize(hourly, nil)
	if len(summaries) != 1 {
		t.Fatalf("Summarize() produced %d summaries, want 1", len(summaries))
	}

	s := summaries[0]
	if s.WaveHeightMin != 0.9 {
		t.Errorf("WaveHeightMin = %v, want 0.9", s.WaveHeightMin)
	}
	if s.WaveHeightMax != 2.4 {
		t.Errorf("WaveHeightMax = %v, want 2.4", s.WaveHeightMax)
	}
	if s.WindSpeedAvg != 15 {
		t.Errorf("WindSpeedAvg = %v, want 15", s.WindSpeedAvg)
	}
	if s.WaveHeightMin > s.WaveHeightMax {
		t.Error("WaveHeightMin exceeds WaveHeightMax")
	}
}

func TestSummarize_DominantSwellDirectionMode(t *testing.T) {
	hourly := []models.HourlySample{
		sample("2026-08-28T00:00", 1, 10, 10),
		sample("2026-08-28T01:00", 1, 10, 15),
		sample("2026-08-28T02:00", 1, 10, 10),
		sample("2026-08-28T03:00", 1, 10, 200),
	}

	summaries := Summarize(hourly, nil)
	if got := summaries[0].DominantSwellDirection; got != 10 {
		t.Errorf("DominantSwellDirection = %v, want 10 (mode)", got)
	}
}

func TestSummarize_ModeTieBreaksFirstSeen(t *testing.T) {
	hourly := []models.HourlySample{
		sample("2026-08-28T00:00", 1, 10, 200),
		sample("2026-08-28T01:00", 1, 10, 10),
		sample("2026-08-28T02:00", 1, 10, 10),
		sample("2026-08-28T03:00", 1, 10, 200),
	}

	// 200 and 10 both appear twice; 200 was seen first.
	summaries := Summarize(hourly, nil)
	if got := summaries[0].DominantSwellDirection; got != 200 {
		t.Errorf("DominantSwellDirection = %v, want 200 (first-seen tie winner)", got)
	}
}

func TestSummarize_SkipsUnparseableTimestamps(t *testing.T) {
	hourly := []models.HourlySample{
		sample("garbage", 9.9, 99, 1),
		sample("2026-08-28T00:00", 1.0, 10, 270),
	}

	summaries := Summarize(hourly, nil)
	if len(summaries) != 1 {
		t.Fatalf("Summarize() produced %d summaries, want 1", len(summaries))
	}
	if summaries[0].WaveHeightMax != 1.0 {
		t.Errorf("WaveHeightMax = %v, skipped sample leaked into aggregation", summaries[0].WaveHeightMax)
	}
}

func TestSummarize_AllUnparseableYieldsNoDays(t *testing.T) {
	hourly := []models.HourlySample{
		sample("not-a-time", 1, 1, 1),
		sample("also bad", 2, 2, 2),
	}

	if summaries := Summarize(hourly, nil); len(summaries) != 0 {
		t.Errorf("Summarize() produced %d summaries, want 0", len(summaries))
	}
}

func TestSummarize_JoinsDailyRecords(t *testing.T) {
	hourly := []models.HourlySample{
		sample("2026-08-28T08:00", 1.0, 10, 270),
	}
	daily := []models.DailyRecord{
		{
			Date:        "2026-08-28",
			Sunrise:     "2026-08-28T06:24",
			Sunset:      "2026-08-28T19:41",
			TempMax:     21.3,
			TempMin:     15.8,
			WeatherCode: 2,
		},
		{Date: "2026-08-29", Sunrise: "2026-08-29T06:25"},
	}

	summaries := Summarize(hourly, daily)
	if len(summaries) != 1 {
		t.Fatalf("Summarize() produced %d summaries, want 1", len(summaries))
	}

	s := summaries[0]
	if s.Sunrise != "2026-08-28T06:24" || s.Sunset != "2026-08-28T19:41" {
		t.Errorf("sunrise/sunset = %q/%q, want joined daily record values", s.Sunrise, s.Sunset)
	}
	if s.TempMax != 21.3 || s.TempMin != 15.8 || s.WeatherCode != 2 {
		t.Errorf("temps/code = %v/%v/%v, want 21.3/15.8/2", s.TempMax, s.TempMin, s.WeatherCode)
	}
}

func TestSummarize_RFC3339TimestampsAccepted(t *testing.T) {
	hourly := []models.HourlySample{
		sample("2026-08-28T00:00:00Z", 1.0, 10, 270),
	}

	if summaries := Summarize(hourly, nil); len(summaries) != 1 {
		t.Errorf("Summarize() produced %d summaries, want 1", len(summaries))
	}
}
