package domain

import (
	"math"
	"math/rand/v2"
	"time"
)

// Series shape constants. Changing any of these changes every generated
// series, so treat them as part of the output contract.
const (
	rampStartC = 33.0 // base temperature on the first day
	rampEndC   = 39.0 // base temperature on the last day

	tempNoiseSigma = 0.6

	humidityMean       = 60.0
	humidityNoiseSigma = 6.0
	humidityMin        = 35.0
	humidityMax        = 90.0

	// heatIndexCoeff scales the humidity excess over 50% into the linear
	// heat index proxy. A placeholder value, not a calibrated index.
	heatIndexCoeff = 0.08
)

// GenerateSeries produces the deterministic daily climate series for the
// inclusive date range [start, end]. Inputs are truncated to UTC midnights;
// callers are expected to pass start <= end, and a reversed range yields an
// empty series rather than an error. A single-day range yields one record
// with the ramp collapsed to its starting temperature.
func GenerateSeries(start, end time.Time, seed int64) []DailyRecord {
	startDay := truncateToDay(start)
	endDay := truncateToDay(end)

	n := int(endDay.Sub(startDay).Hours()/24) + 1
	if n <= 0 {
		return nil
	}

	rng := rand.New(rand.NewPCG(uint64(seed), uint64(seed)))

	// Draw order matters for reproducibility: all temperature noise first,
	// then all humidity noise, in day order.
	tempNoise := make([]float64, n)
	for i := range tempNoise {
		tempNoise[i] = rng.NormFloat64() * tempNoiseSigma
	}
	humidityNoise := make([]float64, n)
	for i := range humidityNoise {
		humidityNoise[i] = rng.NormFloat64() * humidityNoiseSigma
	}

	records := make([]DailyRecord, n)
	for i := range records {
		base := rampStartC
		if n > 1 {
			base += (rampEndC - rampStartC) * float64(i) / float64(n-1)
		}
		base += tempNoise[i]

		humidity := clampFloat(humidityMean+humidityNoise[i], humidityMin, humidityMax)

		// The index is derived from the unrounded values; rounding happens
		// only on the stored fields.
		heatIndex := base + (humidity-50)*heatIndexCoeff

		maxTemp := round1(base)
		index := round1(heatIndex)

		records[i] = DailyRecord{
			Date:      startDay.AddDate(0, 0, i),
			MaxTempC:  maxTemp,
			Humidity:  int(math.Round(humidity)),
			HeatIndex: index,
			Risk:      Classify(maxTemp, index),
		}
	}
	return records
}

// DefaultWindow returns the rolling window ending today (UTC): a start of
// today minus days and an end of today, both midnights. days=7 gives the
// dashboard's default eight-point window.
func DefaultWindow(days int) (start, end time.Time) {
	end = truncateToDay(clock.Now().UTC())
	return end.AddDate(0, 0, -days), end
}

func truncateToDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func clampFloat(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

// round1 rounds to one decimal place, half away from zero.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
