package domain

// ReferenceRow is one year of the static "Global Heatwaves data" table shown
// alongside the generated series. Sample/hypothetical values from the
// infographic the dashboard was built around, not measurements.
type ReferenceRow struct {
	Year      int  `json:"year"`
	MaxTempC  int  `json:"max_temp_c"`
	Humidity  int  `json:"humidity"`
	HeatIndex int  `json:"heat_index"`
	Heatwave  bool `json:"heatwave"`
}

var globalReference = []ReferenceRow{
	{Year: 2021, MaxTempC: 36, Humidity: 70, HeatIndex: 42, Heatwave: true},
	{Year: 2022, MaxTempC: 34, Humidity: 65, HeatIndex: 38, Heatwave: false},
	{Year: 2023, MaxTempC: 37, Humidity: 68, HeatIndex: 43, Heatwave: true},
	{Year: 2024, MaxTempC: 39, Humidity: 73, HeatIndex: 45, Heatwave: true},
	{Year: 2025, MaxTempC: 37, Humidity: 69, HeatIndex: 43, Heatwave: true},
}

// GlobalReference returns a copy of the five-year reference table.
func GlobalReference() []ReferenceRow {
	out := make([]ReferenceRow, len(globalReference))
	copy(out, globalReference)
	return out
}

// Locations lists the selectable location labels. The series itself does not
// vary by location; the label only annotates the output.
func Locations() []string {
	return []string{"Kuala Lumpur", "Johor Bahru", "Penang", "Kuching", "City Name"}
}
