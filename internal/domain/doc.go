// Package domain models the synthetic heatwave series and its risk rules.
//
// # Data Source
//
// There is none. The series is a seed-reproducible mock standing in for
// station data: a linear warming ramp from 33°C to 39°C across the requested
// window with Gaussian noise, plus a noisy humidity channel. The point is a
// plausible-looking chart, not a forecast.
//
// # Determinism
//
// A series is a pure function of (start, end, seed). The noise stream is
// math/rand/v2 PCG seeded with (seed, seed), drawing all temperature noise
// first and then all humidity noise, in day order. Re-running with the same
// inputs yields byte-identical output, which is what the fixture generator
// and the regression tests rely on. Parity with any other RNG algorithm is
// explicitly not a goal.
//
// # Risk classification
//
// Two threshold rules, first match wins:
//
//	heat index >= 41 or max temp >= 38  ->  HIGH
//	heat index >= 35 or max temp >= 35  ->  MEDIUM
//	otherwise                           ->  LOW
//
// The heat index here is a linear comfort proxy
// (max temp + (humidity-50) * 0.08), and the thresholds are explainable
// placeholders. None of these constants are calibrated meteorology; treat
// them as replaceable if this ever feeds a real forecasting system.
package domain
