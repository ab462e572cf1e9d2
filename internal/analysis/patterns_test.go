package analysis_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/mileage-logbook/internal/analysis"
	"github.com/pkordes/mileage-logbook/internal/domain"
)

func titles[T interface{ domain.Pattern | domain.Recommendation }](items []T) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		switch v := any(it).(type) {
		case domain.Pattern:
			out = append(out, v.Title)
		case domain.Recommendation:
			out = append(out, v.Title)
		}
	}
	return out
}

func TestAnalyzePatterns_InsufficientData(t *testing.T) {
	got := analysis.AnalyzePatterns([]domain.Journey{
		trip(at(10, 1, 9, 0), "Office", domain.CategoryCommute, 100, ptr(10)),
		trip(at(10, 2, 9, 0), "Office", domain.CategoryCommute, 100, ptr(10)),
		// No fuel data: does not count towards the minimum.
		trip(at(10, 3, 9, 0), "Office", domain.CategoryCommute, 100, nil),
	})

	assert.Equal(t, domain.TrendInsufficientData, got.Trend)
	assert.Empty(t, got.Patterns)
	assert.Empty(t, got.Recommendations)
	assert.Equal(t, 0.0, got.EcoScore)
	assert.Len(t, got.EfficiencyTimeseries, 2)
}

func TestAnalyzePatterns_Improving(t *testing.T) {
	// Efficiencies in date order: 8, 9, 12, 13 km/L. Input is shuffled.
	got := analysis.AnalyzePatterns([]domain.Journey{
		trip(at(10, 3, 9, 0), "Office", domain.CategoryCommute, 120, ptr(10)),
		trip(at(10, 1, 9, 0), "Office", domain.CategoryCommute, 80, ptr(10)),
		trip(at(10, 4, 9, 0), "Office", domain.CategoryCommute, 130, ptr(10)),
		trip(at(10, 2, 9, 0), "Office", domain.CategoryCommute, 90, ptr(10)),
	})

	assert.Equal(t, domain.TrendImproving, got.Trend)
	require.Len(t, got.EfficiencyTimeseries, 4)
	assert.InDelta(t, 8.0, got.EfficiencyTimeseries[0].Efficiency, 1e-9)
	assert.InDelta(t, 13.0, got.EfficiencyTimeseries[3].Efficiency, 1e-9)

	assert.Equal(t, []string{"Improving Efficiency", "Inconsistent Efficiency"}, titles(got.Patterns))
	assert.Equal(t, []string{"Replicate Your Best Journey", "Close the Gap to Your Best"}, titles(got.Recommendations))
	assert.Contains(t, got.Recommendations[0].Description, "2026-10-04")

	assert.InDelta(t, 52.5, got.EcoScore, 1e-9)
	assert.Equal(t, 24.0, got.ImprovementPotential)
	assert.Equal(t, []string{"Consistently improving your driving efficiency"}, got.BestPractices)
	assert.Equal(t, []string{"Efficiency varies widely between journeys"}, got.AreasToImprove)
}

func TestAnalyzePatterns_StablePadsGenericRecommendations(t *testing.T) {
	got := analysis.AnalyzePatterns([]domain.Journey{
		trip(at(10, 1, 9, 0), "Office", domain.CategoryCommute, 100, ptr(10)),
		trip(at(10, 2, 9, 0), "Office", domain.CategoryCommute, 102, ptr(10)),
		trip(at(10, 3, 9, 0), "Office", domain.CategoryCommute, 101, ptr(10)),
	})

	assert.Equal(t, domain.TrendStable, got.Trend)
	assert.Equal(t, []string{"Stable Efficiency"}, titles(got.Patterns))
	assert.Equal(t,
		[]string{"Maintain Steady Speeds", "Check Tyre Pressure", "Reduce Idling"},
		titles(got.Recommendations))
	assert.InDelta(t, 50.5, got.EcoScore, 1e-9)
	assert.Equal(t, 1.0, got.ImprovementPotential)
	assert.Empty(t, got.BestPractices)
	assert.Empty(t, got.AreasToImprove)
}

func TestAnalyzePatterns_DecliningWithShortTripsAndCategoryGap(t *testing.T) {
	got := analysis.AnalyzePatterns([]domain.Journey{
		trip(at(10, 1, 9, 0), "Client visit", domain.CategoryBusiness, 100, ptr(5)), // 20 km/L
		trip(at(10, 2, 9, 0), "Client visit", domain.CategoryBusiness, 120, ptr(6)), // 20 km/L
		trip(at(10, 3, 9, 0), "Groceries", domain.CategoryShopping, 3, ptr(0.5)),    // 6 km/L
		trip(at(10, 4, 9, 0), "Pharmacy", domain.CategoryShopping, 4, ptr(0.5)),     // 8 km/L
	})

	assert.Equal(t, domain.TrendDeclining, got.Trend)
	assert.Equal(t, []string{
		"Declining Efficiency",
		"Inconsistent Efficiency",
		"Category Efficiency Gap",
		"Short Trip Penalty",
	}, titles(got.Patterns))
	assert.Contains(t, got.Patterns[2].Description, "Business")
	assert.Contains(t, got.Patterns[2].Description, "Shopping")
	assert.Equal(t, []string{
		"Replicate Your Best Journey",
		"Close the Gap to Your Best",
		"Combine Short Trips",
	}, titles(got.Recommendations))
	// Ties on the best efficiency keep the earliest journey.
	assert.Contains(t, got.Recommendations[0].Description, "2026-10-01")

	assert.InDelta(t, 67.5, got.EcoScore, 1e-9)
	assert.Equal(t, 48.0, got.ImprovementPotential)
	assert.Equal(t, []string{"Maintaining above-average fuel efficiency"}, got.BestPractices)
	assert.Equal(t, []string{"Efficiency varies widely between journeys"}, got.AreasToImprove)
}

func TestAnalyzePatterns_EcoScoreClamped(t *testing.T) {
	journeys := make([]domain.Journey, 0, 3)
	for d := 1; d <= 3; d++ {
		journeys = append(journeys, trip(at(10, d, 9, 0), "Highway", domain.CategoryVacation, 250, ptr(10)))
	}

	got := analysis.AnalyzePatterns(journeys)

	assert.Equal(t, 100.0, got.EcoScore)
	assert.Equal(t, []string{"Maintaining above-average fuel efficiency"}, got.BestPractices)
}

func TestAnalyzePatterns_PoorEfficiency(t *testing.T) {
	journeys := make([]domain.Journey, 0, 3)
	for d := 1; d <= 3; d++ {
		journeys = append(journeys, trip(at(10, d, 9, 0), "Site", domain.CategoryBusiness, 60, ptr(10)))
	}

	got := analysis.AnalyzePatterns(journeys)

	assert.InDelta(t, 30.0, got.EcoScore, 1e-9)
	assert.Equal(t, []string{"Overall fuel efficiency is below 10 km/L"}, got.AreasToImprove)
}

func TestAnalyzePatterns_SameDayOrderedByStartTime(t *testing.T) {
	got := analysis.AnalyzePatterns([]domain.Journey{
		trip(at(10, 1, 18, 0), "Home", domain.CategoryCommute, 120, ptr(10)),
		trip(at(10, 1, 8, 0), "Office", domain.CategoryCommute, 80, ptr(10)),
		trip(at(10, 2, 8, 0), "Office", domain.CategoryCommute, 100, ptr(10)),
	})

	require.Len(t, got.EfficiencyTimeseries, 3)
	assert.InDelta(t, 8.0, got.EfficiencyTimeseries[0].Efficiency, 1e-9)
	assert.True(t, got.EfficiencyTimeseries[0].Date.Equal(time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)))
}
