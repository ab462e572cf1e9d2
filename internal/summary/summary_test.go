package summary_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/mileage-logbook/internal/domain"
	"github.com/pkordes/mileage-logbook/internal/summary"
)

var today = time.Date(2026, time.October, 17, 0, 0, 0, 0, time.UTC)

func ptr(v float64) *float64 { return &v }

func journey(daysAgo int, purpose string, distance float64, fuel *float64) domain.Journey {
	return domain.Journey{
		ID:              uuid.New(),
		Date:            today.AddDate(0, 0, -daysAgo),
		Distance:        distance,
		Purpose:         purpose,
		FuelConsumption: fuel,
	}
}

func TestSummarize_Bands(t *testing.T) {
	s := summary.New(summary.FirstPicker{})

	tests := []struct {
		name string
		j    domain.Journey
		want []string
	}{
		{
			name: "local trip today without fuel",
			j:    journey(0, "Grocery run", 3.5, nil),
			want: []string{
				"🛒 You drove 3.5 km for Grocery run",
				"🏠 Just a quick local trip",
				"🗓️ Completed today",
			},
		},
		{
			name: "city drive yesterday with great efficiency",
			j:    journey(1, "Office", 19, ptr(1)),
			want: []string{
				"💼 You drove 19.0 km for Office",
				"🏙️ A nice city drive",
				"🌱 Great fuel efficiency!",
				"🕰️ Completed yesterday",
			},
		},
		{
			name: "road trip this week with decent efficiency",
			j:    journey(3, "Visit grandma", 60, ptr(5)),
			want: []string{
				"👪 You drove 60.0 km for Visit grandma",
				"🛣️ A solid road trip",
				"⛽ Decent fuel economy",
				"📅 Completed earlier this week",
			},
		},
		{
			name: "long distance this month, fuel intensive",
			j:    journey(10, "Something else", 250, ptr(25)),
			want: []string{
				"🚗 You drove 250.0 km for Something else",
				"🗺️ An impressive long-distance journey",
				"💨 Fuel-intensive drive",
				"📆 Completed earlier this month",
			},
		},
		{
			name: "old journey",
			j:    journey(45, "Gym", 8, nil),
			want: []string{
				"🏋️ You drove 8.0 km for Gym",
				"🏙️ A nice city drive",
				"🗓️ Completed some time ago",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.Summarize(tt.j, today))
		})
	}
}

func TestSummarize_ZeroFuelHasNoEfficiencyLine(t *testing.T) {
	got := summary.New(summary.FirstPicker{}).Summarize(journey(0, "Work", 10, ptr(0)), today)
	assert.Len(t, got, 3)
}

func TestHashPicker_Deterministic(t *testing.T) {
	s := summary.New(nil)
	j := journey(2, "Work", 42, ptr(3))

	first := s.Summarize(j, today)
	for range 5 {
		assert.Equal(t, first, s.Summarize(j, today))
	}
}

func TestHashPicker_InRange(t *testing.T) {
	var p summary.HashPicker
	for range 50 {
		i := p.Pick(uuid.New(), "distance", 3)
		require.GreaterOrEqual(t, i, 0)
		require.Less(t, i, 3)
	}
	assert.Equal(t, 0, p.Pick(uuid.New(), "distance", 1))
}

func TestPurposeIcon(t *testing.T) {
	assert.Equal(t, "🚗", summary.PurposeIcon(""))
	assert.Equal(t, "🏥", summary.PurposeIcon("Doctor appointment"))
	assert.Equal(t, "🍽️", summary.PurposeIcon("LUNCH with team"))
	// Earlier keywords win.
	assert.Equal(t, "💼", summary.PurposeIcon("work trip"))
}
