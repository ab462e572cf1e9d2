package challenge

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/pkordes/mileage-logbook/internal/domain"
	"github.com/pkordes/mileage-logbook/internal/metrics"
	"github.com/pkordes/mileage-logbook/internal/stats"
)

// score is the outcome of evaluating one challenge. ok is false when the
// week's data says nothing about the challenge, leaving it untouched.
type score struct {
	actual   float64
	progress float64
	done     bool
	ok       bool
}

type evaluator func(c domain.WeeklyChallenge, week, prev []domain.Journey) score

var evaluators = map[string]evaluator{
	"efficiency_1":  averageEfficiency(func(domain.WeeklyChallenge, domain.Journey) bool { return true }),
	"efficiency_2":  averageEfficiency(func(c domain.WeeklyChallenge, j domain.Journey) bool { return j.Distance < c.Limit }),
	"efficiency_3":  highwayBest,
	"reduction_1":   weekOverWeekReduction,
	"reduction_2":   fuelCappedDistance,
	"reduction_3":   lowCarbonDay,
	"consistency_1": steadyEfficiency,
	"consistency_2": efficiencyStreak,
	"consistency_3": dailyImprovement,
	"planning_1":    bundledErrands,
	"planning_2":    offPeakShare,
	"planning_3":    weekendShopping,
}

// Update returns a copy of challenges scored against the journeys that fall in
// week; journeys may span any period. It changes nothing when no challenge
// belongs to week or when the week has no journeys. Completed challenges are
// left as they are, and a challenge that completes has its progress set to 100.
func Update(challenges []domain.WeeklyChallenge, journeys []domain.Journey, week domain.ISOWeek) []domain.WeeklyChallenge {
	out := make([]domain.WeeklyChallenge, len(challenges))
	copy(out, challenges)

	current := inWeek(journeys, week)
	if len(current) == 0 || !hasWeek(out, week) {
		return out
	}
	prev := inWeek(journeys, week.Prev())

	for i := range out {
		c := &out[i]
		if c.WeekID != week || c.Completed {
			continue
		}
		eval, ok := evaluators[c.ID]
		if !ok {
			continue
		}
		s := eval(*c, current, prev)
		if !s.ok {
			continue
		}
		c.Actual = round2(s.actual)
		c.Progress = round1(clamp(s.progress, 0, 100))
		if s.done {
			c.Completed = true
			c.Progress = 100
		}
	}
	return out
}

func hasWeek(challenges []domain.WeeklyChallenge, week domain.ISOWeek) bool {
	for _, c := range challenges {
		if c.WeekID == week {
			return true
		}
	}
	return false
}

// inWeek returns the journeys dated inside week, ordered by date then start time.
func inWeek(journeys []domain.Journey, week domain.ISOWeek) []domain.Journey {
	var out []domain.Journey
	for _, j := range journeys {
		if week.Contains(j.Date) {
			out = append(out, j)
		}
	}
	sort.SliceStable(out, func(a, b int) bool {
		if !out[a].Date.Equal(out[b].Date) {
			return out[a].Date.Before(out[b].Date)
		}
		return out[a].StartedAt.Before(out[b].StartedAt)
	})
	return out
}

func efficiencies(journeys []domain.Journey, keep func(domain.Journey) bool) []float64 {
	var out []float64
	for _, j := range journeys {
		if !keep(j) {
			continue
		}
		if eff, ok := metrics.Efficiency(j); ok {
			out = append(out, eff)
		}
	}
	return out
}

func ratio(actual, target float64) float64 {
	if target <= 0 {
		return 0
	}
	return actual / target * 100
}

// inverseRatio scores challenges where lower is better.
func inverseRatio(actual, target float64) float64 {
	if actual <= 0 {
		return 100
	}
	return target / actual * 100
}

func averageEfficiency(keep func(domain.WeeklyChallenge, domain.Journey) bool) evaluator {
	return func(c domain.WeeklyChallenge, week, _ []domain.Journey) score {
		effs := efficiencies(week, func(j domain.Journey) bool { return keep(c, j) })
		if len(effs) == 0 {
			return score{}
		}
		avg := stats.Mean(effs)
		return score{actual: avg, progress: ratio(avg, c.Target), done: avg >= c.Target, ok: true}
	}
}

func highwayBest(c domain.WeeklyChallenge, week, _ []domain.Journey) score {
	effs := efficiencies(week, func(j domain.Journey) bool { return j.Distance >= c.Limit })
	if len(effs) == 0 {
		return score{}
	}
	best := stats.Max(effs)
	return score{actual: best, progress: ratio(best, c.Target), done: best >= c.Target, ok: true}
}

func totalCO2(journeys []domain.Journey) float64 {
	var sum float64
	for _, j := range journeys {
		sum += metrics.JourneyCO2(j)
	}
	return sum
}

// weekOverWeekReduction compares this week's emissions with last week's.
// Target is the allowed fraction of last week's CO2, so 0.9 asks for a 10% cut.
func weekOverWeekReduction(c domain.WeeklyChallenge, week, prev []domain.Journey) score {
	before := totalCO2(prev)
	if before <= 0 {
		return score{}
	}
	reduction := 1 - totalCO2(week)/before
	needed := 1 - c.Target
	// 1-0.9 is not exactly 0.1 in floating point.
	done := math.Round(reduction*1e6) >= math.Round(needed*1e6)
	return score{actual: reduction, progress: ratio(reduction, needed), done: done, ok: true}
}

func fuelCappedDistance(c domain.WeeklyChallenge, week, _ []domain.Journey) score {
	var distance, fuel float64
	for _, j := range week {
		distance += j.Distance
		fuel += j.Fuel()
	}
	distanceShare := ratio(distance, c.Target)
	fuelShare := 100.0
	if fuel > c.Limit {
		fuelShare = inverseRatio(fuel, c.Limit)
	}
	return score{
		actual:   distance,
		progress: math.Min(distanceShare, fuelShare),
		done:     distance >= c.Target && fuel <= c.Limit,
		ok:       true,
	}
}

func lowCarbonDay(c domain.WeeklyChallenge, week, _ []domain.Journey) score {
	daily := map[time.Time]float64{}
	for _, j := range week {
		daily[domain.DateOnly(j.Date)] += metrics.JourneyCO2(j)
	}
	values := make([]float64, 0, len(daily))
	for _, v := range daily {
		values = append(values, v)
	}
	lowest := stats.Min(values)
	return score{actual: lowest, progress: inverseRatio(lowest, c.Target), done: lowest <= c.Target, ok: true}
}

func steadyEfficiency(c domain.WeeklyChallenge, week, _ []domain.Journey) score {
	effs := efficiencies(week, func(domain.Journey) bool { return true })
	if len(effs) < 2 {
		return score{}
	}
	v := stats.Variation(effs)
	return score{actual: v, progress: inverseRatio(v, c.Target), done: v <= c.Target, ok: true}
}

// efficiencyStreak finds the longest run of consecutive fuelled journeys at
// or above the target efficiency.
func efficiencyStreak(c domain.WeeklyChallenge, week, _ []domain.Journey) score {
	var run, longest, fuelled int
	for _, j := range week {
		eff, ok := metrics.Efficiency(j)
		if !ok {
			continue
		}
		fuelled++
		if eff >= c.Target {
			run++
			longest = max(longest, run)
		} else {
			run = 0
		}
	}
	if fuelled == 0 {
		return score{}
	}
	n := float64(longest)
	return score{actual: n, progress: ratio(n, c.Limit), done: n >= c.Limit, ok: true}
}

// dailyImprovement counts the longest chain of calendar-adjacent days where
// each day's average efficiency beats the one before.
func dailyImprovement(c domain.WeeklyChallenge, week, _ []domain.Journey) score {
	byDay := map[time.Time][]float64{}
	for _, j := range week {
		if eff, ok := metrics.Efficiency(j); ok {
			d := domain.DateOnly(j.Date)
			byDay[d] = append(byDay[d], eff)
		}
	}
	if len(byDay) == 0 {
		return score{}
	}
	days := make([]time.Time, 0, len(byDay))
	for d := range byDay {
		days = append(days, d)
	}
	sort.Slice(days, func(a, b int) bool { return days[a].Before(days[b]) })

	var run, longest int
	for i := 1; i < len(days); i++ {
		adjacent := days[i].Sub(days[i-1]) == 24*time.Hour
		if adjacent && stats.Mean(byDay[days[i]]) > stats.Mean(byDay[days[i-1]]) {
			run++
			longest = max(longest, run)
		} else {
			run = 0
		}
	}
	n := float64(longest)
	return score{actual: n, progress: ratio(n, c.Target), done: n >= c.Target, ok: true}
}

// bundledErrands finds the day under the distance cap with the most distinct purposes.
func bundledErrands(c domain.WeeklyChallenge, week, _ []domain.Journey) score {
	type day struct {
		distance float64
		purposes map[string]struct{}
	}
	days := map[time.Time]*day{}
	for _, j := range week {
		k := domain.DateOnly(j.Date)
		d, ok := days[k]
		if !ok {
			d = &day{purposes: map[string]struct{}{}}
			days[k] = d
		}
		d.distance += j.Distance
		if p := strings.ToLower(strings.TrimSpace(j.Purpose)); p != "" {
			d.purposes[p] = struct{}{}
		}
	}
	var best int
	for _, d := range days {
		if d.distance <= c.Limit {
			best = max(best, len(d.purposes))
		}
	}
	n := float64(best)
	return score{actual: n, progress: ratio(n, c.Target), done: n >= c.Target, ok: true}
}

func isWeekend(t time.Time) bool {
	return t.Weekday() == time.Saturday || t.Weekday() == time.Sunday
}

func inRushHour(t time.Time) bool {
	h := t.Hour()
	return (h >= 7 && h < 9) || (h >= 16 && h < 18)
}

// offPeakShare counts weekday journeys that started outside rush hour, read
// on the clock the start time was recorded in. Journeys without a known
// start time are left out.
func offPeakShare(c domain.WeeklyChallenge, week, _ []domain.Journey) score {
	var weekday, offPeak int
	for _, j := range week {
		if !j.StartTimeKnown || isWeekend(j.Date) {
			continue
		}
		weekday++
		if !inRushHour(j.StartedAt) {
			offPeak++
		}
	}
	if weekday == 0 {
		return score{}
	}
	pct := float64(offPeak) / float64(weekday) * 100
	return score{actual: pct, progress: ratio(pct, c.Target), done: pct >= c.Target, ok: true}
}

func isShopping(j domain.Journey) bool {
	return j.Category == domain.CategoryShopping || strings.Contains(strings.ToLower(j.Purpose), "errand")
}

func weekendShopping(c domain.WeeklyChallenge, week, _ []domain.Journey) score {
	var total, weekend int
	for _, j := range week {
		if !isShopping(j) {
			continue
		}
		total++
		if isWeekend(j.Date) {
			weekend++
		}
	}
	if total == 0 {
		return score{}
	}
	pct := float64(weekend) / float64(total) * 100
	return score{actual: pct, progress: ratio(pct, c.Target), done: pct >= c.Target, ok: true}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
