package metrics

import (
	"math"

	"github.com/pkordes/mileage-logbook/internal/domain"
)

const (
	kgPerTreeYear        = 21.0  // CO2 one tree absorbs in a year
	kwhPerKgCO2          = 2.0   // renewable energy needed to displace 1 kg CO2
	offsetUSDPerKg       = 0.012 // market price of verified offsets
	treeUSD              = 4.0
	renewableUSDPerKWh   = 0.015
	conservationUSDPerKg = 0.01
	agricultureUSDPerKg  = 0.013

	lowEmissionKg  = 5.0
	highEmissionKg = 20.0
)

// CarbonOffsetOptions sizes offset options for co2 kg of emissions.
// A non-positive amount yields a zeroed plan with no suggestions.
func CarbonOffsetOptions(co2 float64) domain.OffsetPlan {
	if co2 <= 0 {
		return domain.OffsetPlan{Suggestions: []domain.OffsetSuggestion{}}
	}

	// Half-way amounts round to even so 2.5 trees is 2 and 0.5 kWh is 0.
	trees := max(1, int(math.RoundToEven(co2/kgPerTreeYear)))
	kwh := math.RoundToEven(co2 * kwhPerKgCO2)

	suggestions := []domain.OffsetSuggestion{
		{
			Method:      "Tree Planting",
			Description: "Plant trees through a verified reforestation programme.",
			Cost:        round2(float64(trees) * treeUSD),
		},
		{
			Method:      "Renewable Energy",
			Description: "Fund wind or solar generation to displace fossil power.",
			Cost:        round2(kwh * renewableUSDPerKWh),
		},
		{
			Method:      "Forest Conservation",
			Description: "Support projects that protect existing forest from clearing.",
			Cost:        round2(co2 * conservationUSDPerKg),
		},
	}
	if co2 < lowEmissionKg {
		suggestions = append(suggestions, domain.OffsetSuggestion{
			Method:      "Low-Cost Actions",
			Description: "Walk or cycle one short trip this week and keep tyres properly inflated.",
			Cost:        0,
		})
	}
	if co2 > highEmissionKg {
		suggestions = append(suggestions, domain.OffsetSuggestion{
			Method:      "Sustainable Agriculture",
			Description: "Back regenerative farming that stores carbon in soil.",
			Cost:        round2(co2 * agricultureUSDPerKg),
		})
	}

	return domain.OffsetPlan{
		TreesNeeded:        trees,
		RenewableEnergyKWh: kwh,
		OffsetCost:         round2(co2 * offsetUSDPerKg),
		Suggestions:        suggestions,
	}
}
