// Package metrics holds the per-journey derived values: cost, CO2 emissions,
// fuel efficiency, carbon-offset sizing and category icons.
// Every function is pure; absent optional inputs yield 0 or an empty result.
package metrics

import (
	"github.com/shopspring/decimal"

	"github.com/pkordes/mileage-logbook/internal/domain"
)

// FuelEmissionFactor is kg CO2 released per litre of petrol burned.
const FuelEmissionFactor = 2.31

// VehicleType selects the distance-based emission estimate used when a
// journey has no fuel data.
type VehicleType string

const (
	VehicleSmall  VehicleType = "small"
	VehicleMedium VehicleType = "medium"
	VehicleLarge  VehicleType = "large"
	VehicleSUV    VehicleType = "suv"
)

// emissionFactors are kg CO2 per km by vehicle size.
var emissionFactors = map[VehicleType]float64{
	VehicleSmall:  0.15,
	VehicleMedium: 0.19,
	VehicleLarge:  0.25,
	VehicleSUV:    0.30,
}

// Cost returns fuel * price, or 0 when fuel is absent or non-positive or price is absent.
func Cost(fuel, price *float64) float64 {
	if fuel == nil || *fuel <= 0 || price == nil {
		return 0
	}
	return decimal.NewFromFloat(*fuel).Mul(decimal.NewFromFloat(*price)).InexactFloat64()
}

// CO2Emissions returns kg CO2 for one journey. Measured fuel takes precedence;
// otherwise distance is multiplied by the factor for vehicle, with unknown
// types treated as medium.
func CO2Emissions(distance float64, fuel *float64, vehicle VehicleType) float64 {
	if fuel != nil && *fuel > 0 {
		return *fuel * FuelEmissionFactor
	}
	factor, ok := emissionFactors[vehicle]
	if !ok {
		factor = emissionFactors[VehicleMedium]
	}
	return distance * factor
}

// JourneyCO2 is CO2Emissions for a recorded journey with the default vehicle.
func JourneyCO2(j domain.Journey) float64 {
	return CO2Emissions(j.Distance, j.FuelConsumption, VehicleMedium)
}

// Efficiency returns km per litre for j. ok is false when j has no fuel data.
func Efficiency(j domain.Journey) (eff float64, ok bool) {
	if !j.HasFuel() {
		return 0, false
	}
	return j.Distance / *j.FuelConsumption, true
}

// round2 rounds half away from zero to two decimal places.
func round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}
