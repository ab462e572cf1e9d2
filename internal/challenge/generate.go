// Package challenge is the weekly challenge engine. Generate draws one
// challenge per family for an ISO week, seeded by the week number so the same
// week always yields the same set; Update scores them against the week's journeys.
package challenge

import (
	"math"
	"math/rand/v2"

	"github.com/pkordes/mileage-logbook/internal/domain"
)

// seedMultiplier spreads consecutive week numbers across the generator's seed space.
const seedMultiplier = 123

// personalisedTemplate has its target raised to beat the driver's own average.
const personalisedTemplate = "efficiency_1"

// Generate returns the four challenges for week. When st reports a positive
// fuel economy, the efficiency_1 target becomes at least 10% above it.
// The generator is constructed per call, so the result never depends on
// earlier calls or other randomness in the process.
func Generate(week domain.ISOWeek, st *domain.Statistics) []domain.WeeklyChallenge {
	seed := uint64(week.Week * seedMultiplier)
	rng := rand.New(rand.NewPCG(seed, seed))

	out := make([]domain.WeeklyChallenge, 0, len(kinds))
	for _, kind := range kinds {
		options := catalog[kind]
		t := options[rng.IntN(len(options))]

		target := t.target
		if t.id == personalisedTemplate && st != nil && st.FuelEconomy > 0 {
			target = math.Max(t.target, round1(st.FuelEconomy*1.1))
		}
		out = append(out, t.build(target, week))
	}
	return out
}

// ByID returns the catalog challenge with id for week, and false for an unknown id.
func ByID(id string, week domain.ISOWeek) (domain.WeeklyChallenge, bool) {
	for _, kind := range kinds {
		for _, t := range catalog[kind] {
			if t.id == id {
				return t.build(t.target, week), true
			}
		}
	}
	return domain.WeeklyChallenge{}, false
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
