package analysis

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/pkordes/mileage-logbook/internal/domain"
	"github.com/pkordes/mileage-logbook/internal/metrics"
	"github.com/pkordes/mileage-logbook/internal/stats"
)

// RouteThresholds holds the tunables of the route-optimization advisor.
type RouteThresholds struct {
	MinJourneys       int
	MaxDestinations   int           // frequent destinations examined
	EfficiencyGap     float64       // best > mean * (1+gap) triggers a route suggestion
	RouteSavingShare  float64       // share of a destination's distance a better route saves
	FallbackKmPerL    float64       // efficiency assumed when a destination has no fuel data
	ShortTripKm       float64       // trips below this are errands
	ErrandSavingShare float64       // share of clustered errand distance that combining saves
	ErrandKmPerL      float64       // efficiency assumed for errand savings
	PairMinGap        time.Duration // same-weekday journeys closer than this are one outing
	PairMaxGap        time.Duration // and further apart than this are unrelated
}

// DefaultRouteThresholds are the thresholds used by SuggestRoutes.
var DefaultRouteThresholds = RouteThresholds{
	MinJourneys:       3,
	MaxDestinations:   3,
	EfficiencyGap:     0.1,
	RouteSavingShare:  0.15,
	FallbackKmPerL:    12,
	ShortTripKm:       5,
	ErrandSavingShare: 0.2,
	ErrandKmPerL:      10,
	PairMinGap:        time.Hour,
	PairMaxGap:        5 * time.Hour,
}

// genericTips is the ordered fallback catalog; the first two are used when no
// data-driven suggestion applies.
var genericTips = []domain.Suggestion{
	{
		Title:       "Plan Your Week",
		Description: "Group appointments and errands by area so one trip covers several stops.",
		Icon:        "🗓️",
	},
	{
		Title:       "Avoid Peak Traffic",
		Description: "Stop-and-go driving wastes fuel; shift flexible trips outside rush hour.",
		Icon:        "🚦",
	},
	{
		Title:       "Use Live Navigation",
		Description: "Traffic-aware routing avoids congestion and shortens trips.",
		Icon:        "🧭",
	},
}

// SuggestRoutes proposes route optimizations using DefaultRouteThresholds.
func SuggestRoutes(journeys []domain.Journey) []domain.Suggestion {
	return DefaultRouteThresholds.Suggest(journeys)
}

// Suggest runs the advisor with th. Fewer than th.MinJourneys journeys yield
// an empty list.
func (th RouteThresholds) Suggest(journeys []domain.Journey) []domain.Suggestion {
	out := []domain.Suggestion{}
	if len(journeys) < th.MinJourneys {
		return out
	}

	out = append(out, th.destinationSuggestions(journeys)...)
	if s, ok := th.errandSuggestion(journeys); ok {
		out = append(out, s)
	}
	out = append(out, th.pairSuggestions(journeys)...)

	if len(out) == 0 {
		out = append(out, genericTips[:2]...)
	}
	return out
}

type destination struct {
	name     string
	journeys []domain.Journey
}

// frequentDestinations groups journeys by purpose, ignoring case and
// surrounding space, and returns groups visited more than once, most
// frequent first.
func (th RouteThresholds) frequentDestinations(journeys []domain.Journey) []destination {
	byKey := map[string]*destination{}
	for _, j := range journeys {
		name := strings.TrimSpace(j.Purpose)
		if name == "" {
			continue
		}
		key := strings.ToLower(name)
		d, ok := byKey[key]
		if !ok {
			d = &destination{name: name}
			byKey[key] = d
		}
		d.journeys = append(d.journeys, j)
	}

	var out []destination
	for _, d := range byKey {
		if len(d.journeys) > 1 {
			out = append(out, *d)
		}
	}
	sort.Slice(out, func(a, b int) bool {
		if len(out[a].journeys) != len(out[b].journeys) {
			return len(out[a].journeys) > len(out[b].journeys)
		}
		return strings.ToLower(out[a].name) < strings.ToLower(out[b].name)
	})
	if len(out) > th.MaxDestinations {
		out = out[:th.MaxDestinations]
	}
	return out
}

func (th RouteThresholds) destinationSuggestions(journeys []domain.Journey) []domain.Suggestion {
	var out []domain.Suggestion
	for _, d := range th.frequentDestinations(journeys) {
		var effs []float64
		var total float64
		for _, j := range d.journeys {
			total += j.Distance
			if eff, ok := metrics.Efficiency(j); ok {
				effs = append(effs, eff)
			}
		}
		if len(effs) == 0 {
			continue
		}

		mean, best := stats.Mean(effs), stats.Max(effs)
		if best <= mean*(1+th.EfficiencyGap) {
			continue
		}
		gain := (best/mean - 1) * 100
		out = append(out, domain.Suggestion{
			Title: fmt.Sprintf("Optimize Trips to %s", d.name),
			Description: fmt.Sprintf("Your most efficient trip for %q was %.0f%% better than your average. "+
				"Reuse that route and time of day.", d.name, gain),
			SavingsEstimate: th.routeSavings(total, mean),
			Icon:            "🗺️",
		})
	}
	return out
}

// routeSavings estimates what a better route saves over totalDistance.
// A non-positive efficiency falls back to th.FallbackKmPerL.
func (th RouteThresholds) routeSavings(totalDistance, kmPerL float64) *domain.Savings {
	if kmPerL <= 0 {
		kmPerL = th.FallbackKmPerL
	}
	dist := totalDistance * th.RouteSavingShare
	fuel := dist / kmPerL
	return &domain.Savings{Distance: dist, Fuel: fuel, CO2: fuel * metrics.FuelEmissionFactor}
}

// errandSuggestion looks for days with two or more short trips.
func (th RouteThresholds) errandSuggestion(journeys []domain.Journey) (domain.Suggestion, bool) {
	byDay := map[string][]float64{}
	for _, j := range journeys {
		if j.Distance < th.ShortTripKm {
			key := j.Date.Format(time.DateOnly)
			byDay[key] = append(byDay[key], j.Distance)
		}
	}

	var trips, days int
	var total float64
	for _, dists := range byDay {
		if len(dists) < 2 {
			continue
		}
		days++
		trips += len(dists)
		total += stats.Sum(dists)
	}
	if days == 0 {
		return domain.Suggestion{}, false
	}

	dist := total * th.ErrandSavingShare
	fuel := dist / th.ErrandKmPerL
	return domain.Suggestion{
		Title: "Combine Short Errands",
		Description: fmt.Sprintf("You made %d short trips spread over %d days. "+
			"Chaining them into one outing avoids repeated cold starts.", trips, days),
		SavingsEstimate: &domain.Savings{Distance: dist, Fuel: fuel, CO2: fuel * metrics.FuelEmissionFactor},
		Icon:            "🛒",
	}, true
}

// pairSuggestions finds journeys on the same weekday that started between
// th.PairMinGap and th.PairMaxGap apart, one suggestion per weekday at most.
func (th RouteThresholds) pairSuggestions(journeys []domain.Journey) []domain.Suggestion {
	byWeekday := map[time.Weekday][]domain.Journey{}
	for _, j := range journeys {
		byWeekday[j.StartedAt.Weekday()] = append(byWeekday[j.StartedAt.Weekday()], j)
	}

	var out []domain.Suggestion
	for _, wd := range []time.Weekday{
		time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
		time.Friday, time.Saturday, time.Sunday,
	} {
		group := byWeekday[wd]
		sort.SliceStable(group, func(a, b int) bool { return group[a].StartedAt.Before(group[b].StartedAt) })
		for i := 1; i < len(group); i++ {
			first, second := group[i-1], group[i]
			gap := second.StartedAt.Sub(first.StartedAt)
			if gap < th.PairMinGap || gap > th.PairMaxGap {
				continue
			}
			out = append(out, domain.Suggestion{
				Title: fmt.Sprintf("Combine %s Trips", wd),
				Description: fmt.Sprintf("On %s you set out for %q and %q %.1f hours apart. "+
					"A single round trip would save a second cold start.",
					first.StartedAt.Format("Monday 2 Jan"), displayPurpose(first), displayPurpose(second), gap.Hours()),
				Icon: "🕐",
			})
			break
		}
	}
	return out
}

func displayPurpose(j domain.Journey) string {
	if p := strings.TrimSpace(j.Purpose); p != "" {
		return p
	}
	return string(j.Category)
}
