package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"
)

// HeatAlert is the message published when a window's risk reaches the
// configured alert level.
type HeatAlert struct {
	ID            string    `json:"id"`
	Location      string    `json:"location"`
	WindowStart   time.Time `json:"window_start"`
	WindowEnd     time.Time `json:"window_end"`
	PeakMaxTempC  float64   `json:"peak_max_temp_c"`
	PeakHeatIndex float64   `json:"peak_heat_index"`
	Level         RiskLevel `json:"level"`
	Advice        string    `json:"advice"`
	IssuedAt      time.Time `json:"issued_at"`
}

// NewHeatAlert builds an alert from a window summary. The ID is a
// deterministic hash of location, window, and level, so re-evaluating the
// same window never produces a duplicate alert identity downstream.
func NewHeatAlert(location string, s Summary) HeatAlert {
	return HeatAlert{
		ID:            alertID(location, s.Start, s.End, s.Risk),
		Location:      location,
		WindowStart:   s.Start,
		WindowEnd:     s.End,
		PeakMaxTempC:  s.PeakMaxTempC,
		PeakHeatIndex: s.PeakHeatIndex,
		Level:         s.Risk,
		Advice:        s.Advice,
		IssuedAt:      clock.Now().UTC(),
	}
}

func alertID(location string, start, end time.Time, level RiskLevel) string {
	input := fmt.Sprintf("%s|%s|%s|%s",
		location, start.Format("2006-01-02"), end.Format("2006-01-02"), level)
	hash := sha256.Sum256([]byte(input))
	return "heat-" + hex.EncodeToString(hash[:8])
}
