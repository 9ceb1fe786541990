package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	fixedTime := time.Date(2025, 8, 20, 6, 0, 0, 0, time.UTC)
	withFrozenClock(t, fixedTime)

	t.Run("peaks and window risk", func(t *testing.T) {
		records := []DailyRecord{
			{Date: day(2025, 1, 1), MaxTempC: 33.2, Humidity: 58, HeatIndex: 33.8, Risk: RiskLow},
			{Date: day(2025, 1, 2), MaxTempC: 36.1, Humidity: 62, HeatIndex: 37.1, Risk: RiskMedium},
			{Date: day(2025, 1, 3), MaxTempC: 34.8, Humidity: 70, HeatIndex: 36.4, Risk: RiskMedium},
		}

		s := Summarize(records)

		assert.Equal(t, day(2025, 1, 1), s.Start)
		assert.Equal(t, day(2025, 1, 3), s.End)
		assert.Equal(t, 3, s.Days)
		assert.Equal(t, 36.1, s.PeakMaxTempC)
		assert.Equal(t, 37.1, s.PeakHeatIndex)
		assert.Equal(t, RiskMedium, s.Risk)
		assert.Equal(t, Advice(RiskMedium), s.Advice)
		assert.Equal(t, fixedTime, s.GeneratedAt)
	})

	t.Run("one high day marks the window high", func(t *testing.T) {
		records := []DailyRecord{
			{Date: day(2025, 1, 1), MaxTempC: 33.0, HeatIndex: 33.5, Risk: RiskLow},
			{Date: day(2025, 1, 2), MaxTempC: 38.4, HeatIndex: 40.2, Risk: RiskHigh},
		}

		s := Summarize(records)

		assert.Equal(t, RiskHigh, s.Risk)
		assert.Equal(t, Advice(RiskHigh), s.Advice)
	})

	t.Run("sub-zero series reports real peaks", func(t *testing.T) {
		records := []DailyRecord{
			{Date: day(2025, 1, 1), MaxTempC: -5.0, Humidity: 60, HeatIndex: -4.2, Risk: RiskLow},
			{Date: day(2025, 1, 2), MaxTempC: -3.1, Humidity: 55, HeatIndex: -2.7, Risk: RiskLow},
		}

		s := Summarize(records)

		assert.Equal(t, -3.1, s.PeakMaxTempC)
		assert.Equal(t, -2.7, s.PeakHeatIndex)
		assert.Equal(t, RiskLow, s.Risk)
	})

	t.Run("empty series", func(t *testing.T) {
		s := Summarize(nil)

		assert.Zero(t, s.Days)
		assert.Zero(t, s.PeakMaxTempC)
		assert.Equal(t, RiskLow, s.Risk)
		assert.Empty(t, s.Forecast)
		assert.True(t, s.Start.IsZero())
	})

	t.Run("forecast holds the last three days", func(t *testing.T) {
		records := GenerateSeries(day(2025, 1, 1), day(2025, 1, 7), 7)
		s := Summarize(records)

		require.Len(t, s.Forecast, 3)
		assert.Equal(t, day(2025, 1, 5), s.Forecast[0].Date)
		assert.Equal(t, day(2025, 1, 7), s.Forecast[2].Date)
		assert.Equal(t, records[6].MaxTempC, s.Forecast[2].MaxTempC)
		assert.Equal(t, records[6].Risk, s.Forecast[2].Risk)
	})
}

func TestForecastTail(t *testing.T) {
	records := []DailyRecord{
		{Date: day(2025, 1, 1), MaxTempC: 33.0, Risk: RiskLow},
		{Date: day(2025, 1, 2), MaxTempC: 34.0, Risk: RiskLow},
	}

	t.Run("shorter series than n", func(t *testing.T) {
		tail := ForecastTail(records, 3)
		require.Len(t, tail, 2)
		assert.Equal(t, day(2025, 1, 1), tail[0].Date)
	})

	t.Run("zero n", func(t *testing.T) {
		assert.Nil(t, ForecastTail(records, 0))
	})

	t.Run("empty records", func(t *testing.T) {
		assert.Nil(t, ForecastTail(nil, 3))
	})
}

func TestNewHeatAlert(t *testing.T) {
	fixedTime := time.Date(2025, 8, 20, 6, 0, 0, 0, time.UTC)
	withFrozenClock(t, fixedTime)

	records := GenerateSeries(day(2025, 5, 1), day(2025, 5, 8), 7)
	summary := Summarize(records)

	alert := NewHeatAlert("Kuala Lumpur", summary)

	assert.True(t, len(alert.ID) > len("heat-"), "id should carry a hash suffix")
	assert.Contains(t, alert.ID, "heat-")
	assert.Equal(t, "Kuala Lumpur", alert.Location)
	assert.Equal(t, summary.Start, alert.WindowStart)
	assert.Equal(t, summary.End, alert.WindowEnd)
	assert.Equal(t, summary.Risk, alert.Level)
	assert.Equal(t, summary.Advice, alert.Advice)
	assert.Equal(t, fixedTime, alert.IssuedAt)

	t.Run("deterministic ID", func(t *testing.T) {
		again := NewHeatAlert("Kuala Lumpur", summary)
		assert.Equal(t, alert.ID, again.ID)
	})

	t.Run("different window changes ID", func(t *testing.T) {
		other := summary
		other.End = other.End.AddDate(0, 0, 1)
		assert.NotEqual(t, alert.ID, NewHeatAlert("Kuala Lumpur", other).ID)
	})

	t.Run("different location changes ID", func(t *testing.T) {
		assert.NotEqual(t, alert.ID, NewHeatAlert("Penang", summary).ID)
	})
}

func TestGlobalReference(t *testing.T) {
	ref := GlobalReference()
	require.Len(t, ref, 5)

	assert.Equal(t, 2021, ref[0].Year)
	assert.Equal(t, 2025, ref[4].Year)
	assert.Equal(t, 45, ref[3].HeatIndex)
	assert.False(t, ref[1].Heatwave, "2022 was not a heatwave year in the reference data")

	// Callers get a copy, not the backing array.
	ref[0].Year = 1900
	assert.Equal(t, 2021, GlobalReference()[0].Year)
}
