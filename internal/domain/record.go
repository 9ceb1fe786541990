package domain

import (
	"fmt"
	"strings"
	"time"
)

// DailyRecord is one row of a generated series. Dates are UTC midnights,
// contiguous and strictly ascending within a series. Temperatures and the
// heat index carry one decimal place; humidity is a whole percentage
// clamped to [35, 90].
type DailyRecord struct {
	Date      time.Time `json:"date"`
	MaxTempC  float64   `json:"max_temp_c"`
	Humidity  int       `json:"humidity"`
	HeatIndex float64   `json:"heat_index"`
	Risk      RiskLevel `json:"risk"`
}

// RiskLevel is the three-step heat risk category, ordered LOW < MEDIUM < HIGH.
type RiskLevel string

const (
	RiskLow    RiskLevel = "LOW"
	RiskMedium RiskLevel = "MEDIUM"
	RiskHigh   RiskLevel = "HIGH"
)

// Rank returns the ordering of a level: LOW=0, MEDIUM=1, HIGH=2.
// Unknown levels rank below LOW so comparisons against a configured
// threshold never fire accidentally.
func (r RiskLevel) Rank() int {
	switch r {
	case RiskLow:
		return 0
	case RiskMedium:
		return 1
	case RiskHigh:
		return 2
	default:
		return -1
	}
}

// ParseRiskLevel converts a case-insensitive string to a RiskLevel.
func ParseRiskLevel(s string) (RiskLevel, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "LOW":
		return RiskLow, nil
	case "MEDIUM":
		return RiskMedium, nil
	case "HIGH":
		return RiskHigh, nil
	default:
		return "", fmt.Errorf("unknown risk level %q", s)
	}
}
