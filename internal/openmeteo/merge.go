package openmeteo

import "github.com/mxmdgames/surfcast/internal/models"

// Open-Meteo response shapes. Hourly series decode into pointer slices so a
// JSON null stays distinguishable from a real zero until extraction.

type marineResponse struct {
	Hourly struct {
		Time               []string   `json:"time"`
		WaveHeight         []*float64 `json:"wave_height"`
		WaveDirection      []*float64 `json:"wave_direction"`
		WavePeriod         []*float64 `json:"wave_period"`
		WindWaveHeight     []*float64 `json:"wind_wave_height"`
		WindWaveDirection  []*float64 `json:"wind_wave_direction"`
		WindWavePeriod     []*float64 `json:"wind_wave_period"`
		SwellWaveHeight    []*float64 `json:"swell_wave_height"`
		SwellWaveDirection []*float64 `json:"swell_wave_direction"`
		SwellWavePeriod    []*float64 `json:"swell_wave_period"`
	} `json:"hourly"`
}

type weatherResponse struct {
	Hourly struct {
		Time                     []string   `json:"time"`
		Temperature              []*float64 `json:"temperature_2m"`
		RelativeHumidity         []*float64 `json:"relative_humidity_2m"`
		ApparentTemperature      []*float64 `json:"apparent_temperature"`
		PrecipitationProbability []*float64 `json:"precipitation_probability"`
		WeatherCode              []*float64 `json:"weather_code"`
		WindSpeed                []*float64 `json:"wind_speed_10m"`
		WindDirection            []*float64 `json:"wind_direction_10m"`
		Visibility               []*float64 `json:"visibility"`
	} `json:"hourly"`
	Daily struct {
		Time        []string   `json:"time"`
		Sunrise     []string   `json:"sunrise"`
		Sunset      []string   `json:"sunset"`
		TempMax     []*float64 `json:"temperature_2m_max"`
		TempMin     []*float64 `json:"temperature_2m_min"`
		WeatherCode []*float64 `json:"weather_code"`
	} `json:"daily"`
}

// merge aligns the two feeds index-by-index over the marine source's
// timestamp index. Both feeds are requested with timezone=auto and the same
// horizon, so their hourly arrays are expected to line up; timestamps are
// not cross-validated between sources.
func merge(marine *marineResponse, weather *weatherResponse) *models.Forecast {
	hourly := make([]models.HourlySample, 0, len(marine.Hourly.Time))
	for i, ts := range marine.Hourly.Time {
		hourly = append(hourly, models.HourlySample{
			Time:              ts,
			WaveHeight:        valueAt(marine.Hourly.WaveHeight, i),
			WaveDirection:     valueAt(marine.Hourly.WaveDirection, i),
			WavePeriod:        valueAt(marine.Hourly.WavePeriod, i),
			SwellHeight:       valueAt(marine.Hourly.SwellWaveHeight, i),
			SwellDirection:    valueAt(marine.Hourly.SwellWaveDirection, i),
			SwellPeriod:       valueAt(marine.Hourly.SwellWavePeriod, i),
			WindWaveHeight:    valueAt(marine.Hourly.WindWaveHeight, i),
			WindWaveDirection: valueAt(marine.Hourly.WindWaveDirection, i),
			WindWavePeriod:    valueAt(marine.Hourly.WindWavePeriod, i),
			Temperature:       valueAt(weather.Hourly.Temperature, i),
			ApparentTemp:      valueAt(weather.Hourly.ApparentTemperature, i),
			Humidity:          valueAt(weather.Hourly.RelativeHumidity, i),
			Precipitation:     valueAt(weather.Hourly.PrecipitationProbability, i),
			WeatherCode:       valueAt(weather.Hourly.WeatherCode, i),
			WindSpeed:         valueAt(weather.Hourly.WindSpeed, i),
			WindDirection:     valueAt(weather.Hourly.WindDirection, i),
			Visibility:        valueAt(weather.Hourly.Visibility, i),
		})
	}

	daily := make([]models.DailyRecord, 0, len(weather.Daily.Time))
	for i, date := range weather.Daily.Time {
		daily = append(daily, models.DailyRecord{
			Date:        date,
			Sunrise:     stringAt(weather.Daily.Sunrise, i),
			Sunset:      stringAt(weather.Daily.Sunset, i),
			TempMax:     valueAt(weather.Daily.TempMax, i),
			TempMin:     valueAt(weather.Daily.TempMin, i),
			WeatherCode: valueAt(weather.Daily.WeatherCode, i),
		})
	}

	return &models.Forecast{Hourly: hourly, Daily: daily}
}

// valueAt extracts one reading, absorbing missing keys, nulls, and
// out-of-range indexes into a zero value so no field-level defect ever
// surfaces downstream.
func valueAt(series []*float64, i int) float64 {
	if i < 0 || i >= len(series) || series[i] == nil {
		return 0
	}
	return *series[i]
}

func stringAt(series []string, i int) string {
	if i < 0 || i >= len(series) {
		return ""
	}
	return series[i]
}
