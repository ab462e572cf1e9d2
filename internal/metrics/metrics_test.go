package metrics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/mileage-logbook/internal/domain"
	"github.com/pkordes/mileage-logbook/internal/metrics"
)

func ptr(v float64) *float64 { return &v }

func TestCost(t *testing.T) {
	assert.Equal(t, 0.0, metrics.Cost(ptr(0), ptr(1.5)), "zero fuel")
	assert.Equal(t, 0.0, metrics.Cost(nil, ptr(1.5)), "absent fuel")
	assert.Equal(t, 0.0, metrics.Cost(ptr(5), nil), "absent price")
	assert.Equal(t, 0.0, metrics.Cost(ptr(-2), ptr(1.5)), "negative fuel")
	assert.Equal(t, 7.5, metrics.Cost(ptr(5), ptr(1.5)))
	// decimal multiplication avoids the binary float artefact of 0.1 * 3.
	assert.Equal(t, 0.3, metrics.Cost(ptr(0.1), ptr(3)))
}

func TestCO2Emissions_FuelBased(t *testing.T) {
	assert.InDelta(t, 23.1, metrics.CO2Emissions(100, ptr(10), metrics.VehicleMedium), 1e-9)
	// Vehicle type is ignored when fuel is measured.
	assert.InDelta(t, 23.1, metrics.CO2Emissions(100, ptr(10), metrics.VehicleSUV), 1e-9)
}

func TestCO2Emissions_DistanceEstimate(t *testing.T) {
	tests := []struct {
		vehicle metrics.VehicleType
		want    float64
	}{
		{metrics.VehicleSmall, 15.0},
		{metrics.VehicleMedium, 19.0},
		{metrics.VehicleLarge, 25.0},
		{metrics.VehicleSUV, 30.0},
		{metrics.VehicleType("tractor"), 19.0},
	}
	for _, tt := range tests {
		t.Run(string(tt.vehicle), func(t *testing.T) {
			assert.InDelta(t, tt.want, metrics.CO2Emissions(100, nil, tt.vehicle), 1e-9)
		})
	}
}

func TestCO2Emissions_ZeroFuelFallsBackToEstimate(t *testing.T) {
	assert.InDelta(t, 19.0, metrics.CO2Emissions(100, ptr(0), metrics.VehicleMedium), 1e-9)
}

func TestEfficiency(t *testing.T) {
	eff, ok := metrics.Efficiency(domain.Journey{Distance: 120, FuelConsumption: ptr(8)})
	require.True(t, ok)
	assert.InDelta(t, 15.0, eff, 1e-9)

	_, ok = metrics.Efficiency(domain.Journey{Distance: 120})
	assert.False(t, ok)
}

func TestCategoryIcon(t *testing.T) {
	for _, c := range domain.Categories {
		assert.NotEmpty(t, metrics.CategoryIcon(c), "icon for %s", c)
	}
	assert.Equal(t, "🛒", metrics.CategoryIcon(domain.CategoryShopping))
	assert.Equal(t, "🚗", metrics.CategoryIcon(domain.Category("Spaceflight")))
}
