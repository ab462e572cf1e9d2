package domain

// ExportRow is one journey flattened for export, with its derived
// emissions figure alongside the recorded fields.
type ExportRow struct {
	ID              string
	Date            string // "2006-01-02"
	StartedAt       string // RFC 3339
	StartReading    float64
	EndReading      float64
	Distance        float64
	Purpose         string
	Category        string
	Tags            []string
	FuelConsumption *float64
	FuelPrice       float64
	Cost            float64
	CO2             float64
}
