// Package stats is the aggregation engine: it folds a journey collection into
// totals, fuel economy, cost, emissions and monthly/category breakdowns.
package stats

import (
	"sort"

	"github.com/pkordes/mileage-logbook/internal/domain"
	"github.com/pkordes/mileage-logbook/internal/metrics"
)

// monthLayout is the grouping key for monthly distance.
const monthLayout = "2006-01"

// Aggregate computes Statistics over journeys.
//
// Fuel economy only counts the distance of journeys that carry fuel data, so a
// journey logged without fuel neither inflates nor deflates it. Emissions are
// summed per journey, each using its own fuel-based or distance-based formula.
// An empty collection yields zero totals and empty breakdowns.
func Aggregate(journeys []domain.Journey) domain.Statistics {
	s := domain.Statistics{
		TotalJourneys:   len(journeys),
		MonthlyDistance: []domain.MonthlyDistance{},
		CategoryStats:   []domain.CategoryStat{},
	}

	distances := make([]float64, 0, len(journeys))
	var fuelledDistance float64
	for _, j := range journeys {
		distances = append(distances, j.Distance)
		s.TotalFuel += j.Fuel()
		s.TotalCost += j.Cost
		s.CO2Emissions += metrics.JourneyCO2(j)
		if j.HasFuel() {
			fuelledDistance += j.Distance
		}
	}

	s.TotalDistance = Sum(distances)
	s.AvgDistance = Mean(distances)
	s.MaxDistance = Max(distances)
	if s.TotalFuel > 0 {
		s.FuelEconomy = fuelledDistance / s.TotalFuel
	}

	s.MonthlyDistance = monthlyDistance(journeys)
	s.CategoryStats = categoryStats(journeys)
	s.CarbonOffset = metrics.CarbonOffsetOptions(s.CO2Emissions)
	return s
}

// monthlyDistance sums distance per calendar month, ordered by month.
func monthlyDistance(journeys []domain.Journey) []domain.MonthlyDistance {
	byMonth := map[string]float64{}
	for _, j := range journeys {
		byMonth[j.Date.Format(monthLayout)] += j.Distance
	}

	out := make([]domain.MonthlyDistance, 0, len(byMonth))
	for month, dist := range byMonth {
		out = append(out, domain.MonthlyDistance{Month: month, Distance: dist})
	}
	sort.Slice(out, func(a, b int) bool { return out[a].Month < out[b].Month })
	return out
}

// categoryStats sums distance and cost per category in display order,
// omitting categories with no journeys.
func categoryStats(journeys []domain.Journey) []domain.CategoryStat {
	byCategory := map[domain.Category]*domain.CategoryStat{}
	for _, j := range journeys {
		cs, ok := byCategory[j.Category]
		if !ok {
			cs = &domain.CategoryStat{Category: j.Category}
			byCategory[j.Category] = cs
		}
		cs.Journeys++
		cs.Distance += j.Distance
		cs.Cost += j.Cost
	}

	out := make([]domain.CategoryStat, 0, len(byCategory))
	for _, c := range domain.Categories {
		if cs, ok := byCategory[c]; ok {
			out = append(out, *cs)
			delete(byCategory, c)
		}
	}
	// Anything left is a category outside the fixed set; keep it, sorted by name.
	rest := make([]domain.CategoryStat, 0, len(byCategory))
	for _, cs := range byCategory {
		rest = append(rest, *cs)
	}
	sort.Slice(rest, func(a, b int) bool { return rest[a].Category < rest[b].Category })
	return append(out, rest...)
}
