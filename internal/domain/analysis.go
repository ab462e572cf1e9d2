package domain

import "time"

// Trend classifies how fuel efficiency moved over the recorded period.
type Trend string

const (
	TrendImproving Trend = "improving"
	TrendDeclining Trend = "declining"
	TrendStable    Trend = "stable"
	// TrendInsufficientData is reported when fewer than three journeys carry fuel data.
	TrendInsufficientData Trend = "insufficient_data"
)

// Impact tags a pattern for display.
type Impact string

const (
	ImpactPositive Impact = "positive"
	ImpactNegative Impact = "negative"
	ImpactNeutral  Impact = "neutral"
)

// PatternAnalysis is the output of the driving-pattern analyzer.
type PatternAnalysis struct {
	Trend                Trend             `json:"trend"`
	EfficiencyTimeseries []EfficiencyPoint `json:"efficiency_timeseries"`
	Patterns             []Pattern         `json:"patterns"`
	Recommendations      []Recommendation  `json:"recommendations"`
	EcoScore             float64           `json:"eco_score"`
	ImprovementPotential float64           `json:"improvement_potential"`
	BestPractices        []string          `json:"best_practices"`
	AreasToImprove       []string          `json:"areas_to_improve"`
}

// EfficiencyPoint is one journey's fuel efficiency (distance per litre).
type EfficiencyPoint struct {
	Date       time.Time `json:"date"`
	Efficiency float64   `json:"efficiency"`
	Distance   float64   `json:"distance"`
	Category   Category  `json:"category"`
}

// Pattern is an observation about driving behaviour.
type Pattern struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Impact      Impact `json:"impact"`
}

// Recommendation is an actionable tip.
type Recommendation struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Suggestion is a route-optimization tip. Savings is nil for generic tips.
type Suggestion struct {
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	SavingsEstimate *Savings `json:"savings_estimate,omitempty"`
	Icon            string   `json:"icon"`
}

// Savings quantifies what following a suggestion would save.
type Savings struct {
	Distance float64 `json:"distance"`
	Fuel     float64 `json:"fuel"`
	CO2      float64 `json:"co2"`
}
