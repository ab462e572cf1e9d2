// Package summary renders the short, icon-led description shown after a
// journey is logged. Wording varies through a Picker; the bands do not.
package summary

import (
	"fmt"
	"time"

	"github.com/pkordes/mileage-logbook/internal/domain"
	"github.com/pkordes/mileage-logbook/internal/metrics"
)

var (
	distanceLines = []struct {
		below    float64
		variants []string
	}{
		{5, []string{"🏠 Just a quick local trip", "🏠 A short hop around the neighbourhood"}},
		{20, []string{"🏙️ A nice city drive", "🏙️ A comfortable run across town"}},
		{100, []string{"🛣️ A solid road trip", "🛣️ A proper stretch of road"}},
	}
	longDistance = []string{"🗺️ An impressive long-distance journey", "🗺️ Serious miles on the clock"}

	efficiencyGreat  = []string{"🌱 Great fuel efficiency!", "🌱 Light on fuel, nicely done"}
	efficiencyDecent = []string{"⛽ Decent fuel economy", "⛽ Reasonable use of fuel"}
	efficiencyHeavy  = []string{"💨 Fuel-intensive drive", "💨 That one was thirsty"}
)

// Summarizer builds journey summaries.
type Summarizer struct {
	picker Picker
}

// New returns a Summarizer. A nil picker selects HashPicker.
func New(p Picker) *Summarizer {
	if p == nil {
		p = HashPicker{}
	}
	return &Summarizer{picker: p}
}

// Summarize returns the summary lines for j relative to today: purpose,
// distance band, efficiency band when fuel was recorded, and recency.
func (s *Summarizer) Summarize(j domain.Journey, today time.Time) []string {
	lines := []string{
		fmt.Sprintf("%s You drove %.1f km for %s", PurposeIcon(j.Purpose), j.Distance, j.Purpose),
		s.pick(j, "distance", distanceLine(j.Distance)),
	}
	if eff, ok := metrics.Efficiency(j); ok {
		lines = append(lines, s.pick(j, "efficiency", efficiencyLine(eff)))
	}
	return append(lines, recencyLine(j.Date, today))
}

func (s *Summarizer) pick(j domain.Journey, line string, variants []string) string {
	i := s.picker.Pick(j.ID, line, len(variants))
	if i < 0 || i >= len(variants) {
		i = 0
	}
	return variants[i]
}

func distanceLine(km float64) []string {
	for _, band := range distanceLines {
		if km < band.below {
			return band.variants
		}
	}
	return longDistance
}

func efficiencyLine(kmPerL float64) []string {
	switch {
	case kmPerL > 15:
		return efficiencyGreat
	case kmPerL > 10:
		return efficiencyDecent
	default:
		return efficiencyHeavy
	}
}

func recencyLine(date, today time.Time) string {
	days := int(domain.DateOnly(today).Sub(domain.DateOnly(date)).Hours() / 24)
	switch {
	case days <= 0:
		return "🗓️ Completed today"
	case days == 1:
		return "🕰️ Completed yesterday"
	case days < 7:
		return "📅 Completed earlier this week"
	case days < 30:
		return "📆 Completed earlier this month"
	default:
		return "🗓️ Completed some time ago"
	}
}
