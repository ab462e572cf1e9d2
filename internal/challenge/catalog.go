package challenge

import (
	"fmt"

	"github.com/pkordes/mileage-logbook/internal/domain"
)

// template is a catalog entry from which a week's challenge is built.
type template struct {
	id         string
	title      string
	kind       domain.ChallengeType
	target     float64
	limit      float64
	unit       string
	points     int
	difficulty string
	describe   func(target, limit float64) string
}

// kinds is the order in which one template per family is drawn.
var kinds = []domain.ChallengeType{
	domain.ChallengeEfficiency,
	domain.ChallengeReduction,
	domain.ChallengeConsistency,
	domain.ChallengePlanning,
}

var catalog = map[domain.ChallengeType][]template{
	domain.ChallengeEfficiency: {
		{
			id: "efficiency_1", title: "Efficiency Master", kind: domain.ChallengeEfficiency,
			target: 15, unit: "km/L", points: 100, difficulty: "medium",
			describe: func(target, _ float64) string {
				return fmt.Sprintf("Average at least %.1f km/L across this week's journeys.", target)
			},
		},
		{
			id: "efficiency_2", title: "City Driving Pro", kind: domain.ChallengeEfficiency,
			target: 12, limit: 20, unit: "km/L", points: 120, difficulty: "medium",
			describe: func(target, limit float64) string {
				return fmt.Sprintf("Average %.1f km/L on journeys shorter than %.0f km.", target, limit)
			},
		},
		{
			id: "efficiency_3", title: "Highway Hero", kind: domain.ChallengeEfficiency,
			target: 18, limit: 50, unit: "km/L", points: 150, difficulty: "hard",
			describe: func(target, limit float64) string {
				return fmt.Sprintf("Reach %.1f km/L on a journey of %.0f km or more.", target, limit)
			},
		},
	},
	domain.ChallengeReduction: {
		{
			id: "reduction_1", title: "Carbon Cutter", kind: domain.ChallengeReduction,
			target: 0.9, unit: "ratio", points: 150, difficulty: "hard",
			describe: func(target, _ float64) string {
				return fmt.Sprintf("Cut your CO₂ emissions by %.0f%% compared with last week.", (1-target)*100)
			},
		},
		{
			id: "reduction_2", title: "Fuel Saver", kind: domain.ChallengeReduction,
			target: 100, limit: 8, unit: "km", points: 120, difficulty: "medium",
			describe: func(target, limit float64) string {
				return fmt.Sprintf("Drive at least %.0f km this week using no more than %.0f L of fuel.", target, limit)
			},
		},
		{
			id: "reduction_3", title: "Low Carbon Day", kind: domain.ChallengeReduction,
			target: 2, unit: "kg CO₂", points: 80, difficulty: "easy",
			describe: func(target, _ float64) string {
				return fmt.Sprintf("Keep one driving day at or under %.1f kg of CO₂.", target)
			},
		},
	},
	domain.ChallengeConsistency: {
		{
			id: "consistency_1", title: "Steady Driver", kind: domain.ChallengeConsistency,
			target: 0.2, unit: "ratio", points: 100, difficulty: "medium",
			describe: func(target, _ float64) string {
				return fmt.Sprintf("Keep the spread of your fuel efficiency within %.0f%% of the average.", target*100)
			},
		},
		{
			id: "consistency_2", title: "Efficiency Streak", kind: domain.ChallengeConsistency,
			target: 12, limit: 3, unit: "km/L", points: 120, difficulty: "medium",
			describe: func(target, limit float64) string {
				return fmt.Sprintf("Log %.0f journeys in a row at %.1f km/L or better.", limit, target)
			},
		},
		{
			id: "consistency_3", title: "Daily Improver", kind: domain.ChallengeConsistency,
			target: 3, unit: "days", points: 150, difficulty: "hard",
			describe: func(target, _ float64) string {
				return fmt.Sprintf("Improve your daily average efficiency %.0f days running.", target)
			},
		},
	},
	domain.ChallengePlanning: {
		{
			id: "planning_1", title: "Errand Bundler", kind: domain.ChallengePlanning,
			target: 3, limit: 30, unit: "purposes", points: 100, difficulty: "medium",
			describe: func(target, limit float64) string {
				return fmt.Sprintf("Handle %.0f different purposes in one day while driving %.0f km or less.", target, limit)
			},
		},
		{
			id: "planning_2", title: "Rush Hour Avoider", kind: domain.ChallengePlanning,
			target: 80, unit: "%", points: 80, difficulty: "easy",
			describe: func(target, _ float64) string {
				return fmt.Sprintf("Make %.0f%% of weekday journeys outside 07:00-09:00 and 16:00-18:00.", target)
			},
		},
		{
			id: "planning_3", title: "Weekend Shopper", kind: domain.ChallengePlanning,
			target: 70, unit: "%", points: 80, difficulty: "easy",
			describe: func(target, _ float64) string {
				return fmt.Sprintf("Do %.0f%% of your shopping and errand trips at the weekend.", target)
			},
		},
	},
}

func (t template) build(target float64, week domain.ISOWeek) domain.WeeklyChallenge {
	return domain.WeeklyChallenge{
		ID:          t.id,
		Title:       t.title,
		Description: t.describe(target, t.limit),
		Type:        t.kind,
		Target:      target,
		Limit:       t.limit,
		Unit:        t.unit,
		Points:      t.points,
		Difficulty:  t.difficulty,
		WeekID:      week,
	}
}
