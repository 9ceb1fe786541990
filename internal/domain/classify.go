package domain

// Risk thresholds in °C / index points. Evaluated strictly in order, first
// match wins. These values are part of the output contract.
const (
	highHeatIndex   = 41.0
	highMaxTemp     = 38.0
	mediumHeatIndex = 35.0
	mediumMaxTemp   = 35.0
)

// Classify maps a (max temperature, heat index) pair to a risk level.
// Total over all real inputs; no error conditions.
func Classify(maxTempC, heatIndex float64) RiskLevel {
	if heatIndex >= highHeatIndex || maxTempC >= highMaxTemp {
		return RiskHigh
	}
	if heatIndex >= mediumHeatIndex || maxTempC >= mediumMaxTemp {
		return RiskMedium
	}
	return RiskLow
}

// Advice returns the fixed advisory sentence for a risk level. The three
// strings are part of the external contract and must not be reworded.
func Advice(level RiskLevel) string {
	switch level {
	case RiskHigh:
		return "Avoid outdoor activities during peak heat hours. Stay hydrated and seek shade/air-conditioning."
	case RiskMedium:
		return "Limit prolonged outdoor exposure. Take breaks, drink water, and monitor updates."
	default:
		return "Normal conditions. Maintain routine activities and monitor weather updates."
	}
}
