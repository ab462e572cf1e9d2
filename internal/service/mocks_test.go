package service_test

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/mileage-logbook/internal/domain"
	"github.com/pkordes/mileage-logbook/internal/repo"
	"github.com/pkordes/mileage-logbook/internal/service"
)

// mockJourneyRepo is a hand-written test double for repo.JourneyRepo.
// Each method is a function field; set only the ones your test needs.
type mockJourneyRepo struct {
	load func(ctx context.Context) ([]domain.Journey, error)
	save func(ctx context.Context, journeys []domain.Journey) error
}

func (m *mockJourneyRepo) Load(ctx context.Context) ([]domain.Journey, error) {
	return m.load(ctx)
}
func (m *mockJourneyRepo) Save(ctx context.Context, journeys []domain.Journey) error {
	return m.save(ctx, journeys)
}

// compile-time check: mockJourneyRepo must satisfy repo.JourneyRepo.
var _ repo.JourneyRepo = (*mockJourneyRepo)(nil)

// memRepo returns a mock backed by a slice, so saves are visible to later loads.
func memRepo(initial ...domain.Journey) (*mockJourneyRepo, *[]domain.Journey) {
	stored := slices.Clone(initial)
	return &mockJourneyRepo{
		load: func(context.Context) ([]domain.Journey, error) { return slices.Clone(stored), nil },
		save: func(_ context.Context, js []domain.Journey) error {
			stored = slices.Clone(js)
			return nil
		},
	}, &stored
}

// recorder is a service.Publisher that keeps every event.
type recorder struct {
	mu     sync.Mutex
	events []string
}

func (r *recorder) Publish(event string, _ any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

func (r *recorder) count(event string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, e := range r.events {
		if e == event {
			n++
		}
	}
	return n
}

var _ service.Publisher = (*recorder)(nil)

// now is the fixed clock for service tests: Saturday 2026-10-17, 14:30 UTC.
var now = time.Date(2026, time.October, 17, 14, 30, 0, 0, time.UTC)

func clock() time.Time { return now }

func ptr(v float64) *float64 { return &v }

func day(d int) time.Time {
	return time.Date(2026, time.October, d, 0, 0, 0, 0, time.UTC)
}

// stored returns a persisted-looking journey dated day d.
func stored(d int, distance float64, fuel *float64, tags ...string) domain.Journey {
	return domain.Journey{
		ID:              uuid.New(),
		Date:            day(d),
		StartedAt:       day(d).Add(9 * time.Hour),
		StartTimeKnown:  true,
		StartReading:    1000,
		EndReading:      1000 + distance,
		Distance:        distance,
		Purpose:         "Office",
		Category:        domain.CategoryCommute,
		Tags:            append([]string{}, tags...),
		FuelConsumption: fuel,
		FuelPrice:       domain.DefaultFuelPrice,
	}
}
