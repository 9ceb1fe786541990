package domain

import "time"

// forecastDays is how many trailing records the mock forecast shows.
const forecastDays = 3

// Summary is the "outputs & alerts" view of a series: the window peaks, the
// risk level derived from them, the matching advisory, and the mock forecast
// tail. Derived on demand, never persisted.
type Summary struct {
	Location      string        `json:"location,omitempty"`
	Start         time.Time     `json:"start"`
	End           time.Time     `json:"end"`
	Days          int           `json:"days"`
	PeakMaxTempC  float64       `json:"peak_max_temp_c"`
	PeakHeatIndex float64       `json:"peak_heat_index"`
	Risk          RiskLevel     `json:"risk"`
	Advice        string        `json:"advice"`
	Forecast      []ForecastDay `json:"forecast"`
	GeneratedAt   time.Time     `json:"generated_at"`
}

// ForecastDay is one row of the canned forecast table.
type ForecastDay struct {
	Date     time.Time `json:"date"`
	MaxTempC float64   `json:"max_temp_c"`
	Risk     RiskLevel `json:"risk"`
}

// Summarize derives the window summary from an ordered series. The risk is
// classified from the window peaks, so a single HIGH day marks the whole
// window HIGH. An empty series yields a LOW summary with zero peaks.
func Summarize(records []DailyRecord) Summary {
	var peakTemp, peakIndex float64
	if len(records) > 0 {
		peakTemp = records[0].MaxTempC
		peakIndex = records[0].HeatIndex
	}
	for i := range records {
		if records[i].MaxTempC > peakTemp {
			peakTemp = records[i].MaxTempC
		}
		if records[i].HeatIndex > peakIndex {
			peakIndex = records[i].HeatIndex
		}
	}

	risk := Classify(peakTemp, peakIndex)

	s := Summary{
		Days:          len(records),
		PeakMaxTempC:  peakTemp,
		PeakHeatIndex: peakIndex,
		Risk:          risk,
		Advice:        Advice(risk),
		Forecast:      ForecastTail(records, forecastDays),
		GeneratedAt:   clock.Now().UTC(),
	}
	if len(records) > 0 {
		s.Start = records[0].Date
		s.End = records[len(records)-1].Date
	}
	return s
}

// ForecastTail returns the last min(n, len) records as forecast rows,
// preserving order.
func ForecastTail(records []DailyRecord, n int) []ForecastDay {
	if n > len(records) {
		n = len(records)
	}
	if n <= 0 {
		return nil
	}
	tail := make([]ForecastDay, 0, n)
	for _, rec := range records[len(records)-n:] {
		tail = append(tail, ForecastDay{
			Date:     rec.Date,
			MaxTempC: rec.MaxTempC,
			Risk:     rec.Risk,
		})
	}
	return tail
}
