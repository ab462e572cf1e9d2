package domain

// Statistics is the cross-journey aggregate over a record collection.
// On an empty collection every numeric field is 0 and the breakdowns are empty.
type Statistics struct {
	TotalJourneys   int               `json:"total_journeys"`
	TotalDistance   float64           `json:"total_distance"`
	AvgDistance     float64           `json:"avg_distance"`
	MaxDistance     float64           `json:"max_distance"`
	TotalFuel       float64           `json:"total_fuel"`
	FuelEconomy     float64           `json:"fuel_economy"`
	TotalCost       float64           `json:"total_cost"`
	CO2Emissions    float64           `json:"co2_emissions"`
	MonthlyDistance []MonthlyDistance `json:"monthly_distance"`
	CategoryStats   []CategoryStat    `json:"category_stats"`
	CarbonOffset    OffsetPlan        `json:"carbon_offset_options"`
}

// MonthlyDistance is the distance driven in one calendar month ("2006-01").
type MonthlyDistance struct {
	Month    string  `json:"month"`
	Distance float64 `json:"distance"`
}

// CategoryStat is the per-category breakdown of distance and cost.
type CategoryStat struct {
	Category Category `json:"category"`
	Journeys int      `json:"journeys"`
	Distance float64  `json:"distance"`
	Cost     float64  `json:"cost"`
}

// OffsetPlan sizes carbon-offset options to a CO2 quantity in kg.
type OffsetPlan struct {
	TreesNeeded        int                `json:"trees_needed"`
	RenewableEnergyKWh float64            `json:"renewable_energy_kwh"`
	OffsetCost         float64            `json:"offset_cost"`
	Suggestions        []OffsetSuggestion `json:"suggestions"`
}

// OffsetSuggestion is one mitigation method with its estimated cost in USD.
type OffsetSuggestion struct {
	Method      string  `json:"method"`
	Description string  `json:"description"`
	Cost        float64 `json:"cost"`
}
