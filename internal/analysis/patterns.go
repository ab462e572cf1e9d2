// Package analysis turns a journey collection into driving-pattern insights
// and route-optimization suggestions. Both analyzers are pure and return a
// neutral result, not an error, when there is too little data.
package analysis

import (
	"fmt"
	"math"
	"sort"

	"github.com/pkordes/mileage-logbook/internal/domain"
	"github.com/pkordes/mileage-logbook/internal/metrics"
	"github.com/pkordes/mileage-logbook/internal/stats"
)

// PatternThresholds holds the tunables of the driving-pattern analyzer.
type PatternThresholds struct {
	MinJourneys        int     // journeys with fuel data needed for any output
	TrendBand          float64 // relative change between halves that counts as a trend
	MaxVariation       float64 // (max-min)/mean above this is inconsistent
	EcoAnchor          float64 // km/L scored as 50
	EcoPointsPerUnit   float64 // score points per km/L above or below the anchor
	MinPotential       float64 // % gain worth recommending
	CategoryGap        float64 // relative best/worst category gap worth reporting
	ShortTripKm        float64 // journeys below this are short trips
	ShortTripPenalty   float64 // short-trip mean below long-trip mean * this is a penalty
	GoodEfficiency     float64 // mean above this is a best practice
	PoorEfficiency     float64 // mean below this is an area to improve
	MinRecommendations int     // pad generic tips up to this many
}

// DefaultPatternThresholds are the thresholds used by AnalyzePatterns.
var DefaultPatternThresholds = PatternThresholds{
	MinJourneys:        3,
	TrendBand:          0.05,
	MaxVariation:       0.3,
	EcoAnchor:          10,
	EcoPointsPerUnit:   5,
	MinPotential:       10,
	CategoryGap:        0.15,
	ShortTripKm:        5,
	ShortTripPenalty:   0.85,
	GoodEfficiency:     12,
	PoorEfficiency:     10,
	MinRecommendations: 3,
}

// genericRecommendations pad the output, in this order, when the data
// produced fewer than two specific recommendations.
var genericRecommendations = []domain.Recommendation{
	{Title: "Maintain Steady Speeds", Description: "Smooth acceleration and braking can improve fuel economy by up to 20%."},
	{Title: "Check Tyre Pressure", Description: "Under-inflated tyres raise rolling resistance; check pressure monthly."},
	{Title: "Reduce Idling", Description: "Switch the engine off when parked for more than a minute."},
	{Title: "Lighten the Load", Description: "Remove roof racks and heavy items you do not need for the trip."},
}

// AnalyzePatterns analyses fuel efficiency over time using DefaultPatternThresholds.
func AnalyzePatterns(journeys []domain.Journey) domain.PatternAnalysis {
	return DefaultPatternThresholds.Analyze(journeys)
}

// Analyze runs the driving-pattern analysis with th.
func (th PatternThresholds) Analyze(journeys []domain.Journey) domain.PatternAnalysis {
	points := efficiencySeries(journeys)
	if len(points) < th.MinJourneys {
		return domain.PatternAnalysis{
			Trend:                domain.TrendInsufficientData,
			EfficiencyTimeseries: points,
			Patterns:             []domain.Pattern{},
			Recommendations:      []domain.Recommendation{},
			BestPractices:        []string{},
			AreasToImprove:       []string{},
		}
	}

	effs := make([]float64, len(points))
	for i, p := range points {
		effs[i] = p.Efficiency
	}
	mean := stats.Mean(effs)

	out := domain.PatternAnalysis{
		EfficiencyTimeseries: points,
		Patterns:             []domain.Pattern{},
		Recommendations:      []domain.Recommendation{},
		BestPractices:        []string{},
		AreasToImprove:       []string{},
	}

	// Trend: compare the mean of the later half against the earlier half.
	half := len(effs) / 2
	firstMean, secondMean := stats.Mean(effs[:half]), stats.Mean(effs[half:])
	switch {
	case secondMean > firstMean*(1+th.TrendBand):
		out.Trend = domain.TrendImproving
		out.Patterns = append(out.Patterns, domain.Pattern{
			Title:       "Improving Efficiency",
			Description: fmt.Sprintf("Your fuel efficiency rose from %.1f to %.1f km/L.", firstMean, secondMean),
			Impact:      domain.ImpactPositive,
		})
	case secondMean < firstMean*(1-th.TrendBand):
		out.Trend = domain.TrendDeclining
		out.Patterns = append(out.Patterns, domain.Pattern{
			Title:       "Declining Efficiency",
			Description: fmt.Sprintf("Your fuel efficiency fell from %.1f to %.1f km/L.", firstMean, secondMean),
			Impact:      domain.ImpactNegative,
		})
	default:
		out.Trend = domain.TrendStable
		out.Patterns = append(out.Patterns, domain.Pattern{
			Title:       "Stable Efficiency",
			Description: fmt.Sprintf("Your fuel efficiency has held steady around %.1f km/L.", mean),
			Impact:      domain.ImpactNeutral,
		})
	}

	variation := stats.Variation(effs)
	if variation > th.MaxVariation {
		best := bestPoint(points)
		out.Patterns = append(out.Patterns, domain.Pattern{
			Title:       "Inconsistent Efficiency",
			Description: fmt.Sprintf("Efficiency varies by %.0f%% between your journeys.", variation*100),
			Impact:      domain.ImpactNegative,
		})
		out.Recommendations = append(out.Recommendations, domain.Recommendation{
			Title: "Replicate Your Best Journey",
			Description: fmt.Sprintf("Your journey on %s reached %.1f km/L. Repeat its route, speed and timing.",
				best.Date.Format("2006-01-02"), best.Efficiency),
		})
	}

	out.EcoScore = math.Round(clamp(50+(mean-th.EcoAnchor)*th.EcoPointsPerUnit, 0, 100)*10) / 10

	out.ImprovementPotential = math.Round((stats.Max(effs)/mean - 1) * 100)
	if out.ImprovementPotential > th.MinPotential {
		out.Recommendations = append(out.Recommendations, domain.Recommendation{
			Title:       "Close the Gap to Your Best",
			Description: fmt.Sprintf("Driving like your best journeys could improve efficiency by %.0f%%.", out.ImprovementPotential),
		})
	}

	if p, ok := th.categoryGap(points); ok {
		out.Patterns = append(out.Patterns, p)
	}

	if th.shortTripPenalty(points) {
		out.Patterns = append(out.Patterns, domain.Pattern{
			Title:       "Short Trip Penalty",
			Description: fmt.Sprintf("Trips under %.0f km are markedly less efficient than longer ones.", th.ShortTripKm),
			Impact:      domain.ImpactNegative,
		})
		out.Recommendations = append(out.Recommendations, domain.Recommendation{
			Title:       "Combine Short Trips",
			Description: "A cold engine burns more fuel; chain short errands into a single outing.",
		})
	}

	if mean > th.GoodEfficiency {
		out.BestPractices = append(out.BestPractices, "Maintaining above-average fuel efficiency")
	}
	if out.Trend == domain.TrendImproving {
		out.BestPractices = append(out.BestPractices, "Consistently improving your driving efficiency")
	}
	if mean < th.PoorEfficiency {
		out.AreasToImprove = append(out.AreasToImprove, fmt.Sprintf("Overall fuel efficiency is below %.0f km/L", th.PoorEfficiency))
	}
	if variation > th.MaxVariation {
		out.AreasToImprove = append(out.AreasToImprove, "Efficiency varies widely between journeys")
	}

	if len(out.Recommendations) < 2 {
		for _, r := range genericRecommendations {
			if len(out.Recommendations) >= th.MinRecommendations {
				break
			}
			out.Recommendations = append(out.Recommendations, r)
		}
	}

	return out
}

// efficiencySeries returns one point per journey with fuel data, oldest first.
func efficiencySeries(journeys []domain.Journey) []domain.EfficiencyPoint {
	fuelled := make([]domain.Journey, 0, len(journeys))
	for _, j := range journeys {
		if j.HasFuel() {
			fuelled = append(fuelled, j)
		}
	}
	sort.SliceStable(fuelled, func(a, b int) bool {
		if !fuelled[a].Date.Equal(fuelled[b].Date) {
			return fuelled[a].Date.Before(fuelled[b].Date)
		}
		return fuelled[a].StartedAt.Before(fuelled[b].StartedAt)
	})

	points := make([]domain.EfficiencyPoint, 0, len(fuelled))
	for _, j := range fuelled {
		eff, _ := metrics.Efficiency(j)
		points = append(points, domain.EfficiencyPoint{
			Date:       j.Date,
			Efficiency: eff,
			Distance:   j.Distance,
			Category:   j.Category,
		})
	}
	return points
}

// bestPoint returns the most efficient point; ties keep the earliest.
func bestPoint(points []domain.EfficiencyPoint) domain.EfficiencyPoint {
	best := points[0]
	for _, p := range points[1:] {
		if p.Efficiency > best.Efficiency {
			best = p
		}
	}
	return best
}

// categoryGap reports the best and worst category by mean efficiency when
// they differ by more than th.CategoryGap.
func (th PatternThresholds) categoryGap(points []domain.EfficiencyPoint) (domain.Pattern, bool) {
	byCategory := map[domain.Category][]float64{}
	for _, p := range points {
		byCategory[p.Category] = append(byCategory[p.Category], p.Efficiency)
	}
	if len(byCategory) < 2 {
		return domain.Pattern{}, false
	}

	var (
		bestCat, worstCat   domain.Category
		bestMean, worstMean float64
		seen                bool
	)
	for _, c := range orderedCategories(byCategory) {
		m := stats.Mean(byCategory[c])
		if !seen || m > bestMean {
			bestCat, bestMean = c, m
		}
		if !seen || m < worstMean {
			worstCat, worstMean = c, m
		}
		seen = true
	}
	if worstMean <= 0 || (bestMean-worstMean)/worstMean <= th.CategoryGap {
		return domain.Pattern{}, false
	}
	return domain.Pattern{
		Title: "Category Efficiency Gap",
		Description: fmt.Sprintf("%s journeys average %.1f km/L while %s journeys average %.1f km/L.",
			bestCat, bestMean, worstCat, worstMean),
		Impact: domain.ImpactNeutral,
	}, true
}

// shortTripPenalty reports whether short trips are markedly less efficient.
func (th PatternThresholds) shortTripPenalty(points []domain.EfficiencyPoint) bool {
	var short, long []float64
	for _, p := range points {
		if p.Distance < th.ShortTripKm {
			short = append(short, p.Efficiency)
		} else {
			long = append(long, p.Efficiency)
		}
	}
	if len(short) == 0 || len(long) == 0 {
		return false
	}
	return stats.Mean(short) < stats.Mean(long)*th.ShortTripPenalty
}

// orderedCategories lists the keys of m in display order, then any unknown
// categories by name.
func orderedCategories[V any](m map[domain.Category]V) []domain.Category {
	out := make([]domain.Category, 0, len(m))
	known := map[domain.Category]bool{}
	for _, c := range domain.Categories {
		known[c] = true
		if _, ok := m[c]; ok {
			out = append(out, c)
		}
	}
	var rest []domain.Category
	for c := range m {
		if !known[c] {
			rest = append(rest, c)
		}
	}
	sort.Slice(rest, func(a, b int) bool { return rest[a] < rest[b] })
	return append(out, rest...)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
