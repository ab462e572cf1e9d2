package service

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/mileage-logbook/internal/domain"
	"github.com/pkordes/mileage-logbook/internal/metrics"
	"github.com/pkordes/mileage-logbook/internal/repo"
	"github.com/pkordes/mileage-logbook/internal/summary"
)

// JourneyObserver is told about the full collection after a journey is saved.
type JourneyObserver interface {
	JourneysChanged(ctx context.Context, journeys []domain.Journey)
}

// JourneyService implements business logic for recording and browsing journeys.
// The collection is saved whole, so Create serialises load-append-save
// within the process. Separate processes sharing one store still race, and
// the last save wins.
type JourneyService struct {
	repo       repo.JourneyRepo
	summarizer *summary.Summarizer
	fuelPrice  float64
	observers  []JourneyObserver
	opts       Options

	mu sync.Mutex
}

// NewJourneyService constructs a JourneyService. fuelPrice is applied to
// journeys recorded without a price; a non-positive value selects
// domain.DefaultFuelPrice.
func NewJourneyService(r repo.JourneyRepo, s *summary.Summarizer, fuelPrice float64, opts Options) *JourneyService {
	if s == nil {
		s = summary.New(nil)
	}
	if fuelPrice <= 0 {
		fuelPrice = domain.DefaultFuelPrice
	}
	return &JourneyService{repo: r, summarizer: s, fuelPrice: fuelPrice, opts: opts.withDefaults()}
}

// Observe registers o to run after every successful Create.
func (s *JourneyService) Observe(o JourneyObserver) {
	s.observers = append(s.observers, o)
}

// Create validates in, persists the resulting journey, and returns it with
// its summary lines. Returns an error wrapping domain.ErrValidation when
// input violates business rules; nothing is saved in that case.
func (s *JourneyService) Create(ctx context.Context, in domain.JourneyInput) (domain.Journey, []string, error) {
	now := s.opts.now()
	today := domain.DateOnly(now)

	j, err := s.newJourney(in, now)
	if err != nil {
		return domain.Journey{}, nil, fmt.Errorf("service.JourneyService.Create: %w", err)
	}

	all, err := s.append(ctx, j)
	if err != nil {
		return domain.Journey{}, nil, fmt.Errorf("service.JourneyService.Create: %w", err)
	}

	s.opts.Logger.InfoContext(ctx, "journey recorded",
		"journey_id", j.ID, "distance", j.Distance, "category", j.Category)
	s.opts.Events.Publish(EventJourneyCreated, j)
	for _, o := range s.observers {
		o.JourneysChanged(ctx, all)
	}

	return j, s.summarizer.Summarize(j, today), nil
}

func (s *JourneyService) append(ctx context.Context, j domain.Journey) ([]domain.Journey, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	journeys, err := s.repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	journeys = append(journeys, j)
	if err := s.repo.Save(ctx, journeys); err != nil {
		return nil, err
	}
	return journeys, nil
}

// newJourney applies validation and defaults to in.
//   - Readings must be non-negative and end must not be below start.
//   - The date must not be after today.
//   - Category must be one of the fixed set; empty means Personal.
//   - Fuel of 0 means no fuel was recorded; negative fuel or price is rejected.
func (s *JourneyService) newJourney(in domain.JourneyInput, now time.Time) (domain.Journey, error) {
	if in.StartReading < 0 || in.EndReading < 0 {
		return domain.Journey{}, fmt.Errorf("%w: odometer readings cannot be negative", domain.ErrValidation)
	}
	if err := domain.Validate(in.StartReading, in.EndReading, in.Date, now); err != nil {
		return domain.Journey{}, err
	}
	category, ok := domain.ParseCategory(in.Category)
	if !ok {
		return domain.Journey{}, fmt.Errorf("%w: unknown category %q", domain.ErrValidation, in.Category)
	}

	var fuel *float64
	if in.FuelConsumption != nil {
		if *in.FuelConsumption < 0 {
			return domain.Journey{}, fmt.Errorf("%w: fuel consumption cannot be negative", domain.ErrValidation)
		}
		if *in.FuelConsumption > 0 {
			f := *in.FuelConsumption
			fuel = &f
		}
	}
	price := s.fuelPrice
	if in.FuelPrice != nil {
		if *in.FuelPrice < 0 {
			return domain.Journey{}, fmt.Errorf("%w: fuel price cannot be negative", domain.ErrValidation)
		}
		price = *in.FuelPrice
	}

	// A given start time keeps its offset so rush hours are judged on the
	// driver's clock.
	date := domain.DateOnly(in.Date)
	startedAt, known := date, false
	switch {
	case in.StartedAt != nil:
		startedAt, known = *in.StartedAt, true
	case date.Equal(domain.DateOnly(now)):
		startedAt, known = now, true
	}

	return domain.Journey{
		ID:              uuid.New(),
		Date:            date,
		StartedAt:       startedAt,
		StartTimeKnown:  known,
		StartReading:    in.StartReading,
		EndReading:      in.EndReading,
		Distance:        in.EndReading - in.StartReading,
		Purpose:         strings.TrimSpace(in.Purpose),
		Category:        category,
		Tags:            domain.ParseTags(strings.Join(in.Tags, ",")),
		FuelConsumption: fuel,
		FuelPrice:       price,
		Cost:            metrics.Cost(fuel, &price),
	}, nil
}

// All returns the whole collection in saved order. Always non-nil.
func (s *JourneyService) All(ctx context.Context) ([]domain.Journey, error) {
	journeys, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.JourneyService.All: %w", err)
	}
	if journeys == nil {
		return []domain.Journey{}, nil
	}
	return journeys, nil
}

// List returns one sorted page of journeys and the total number of journeys.
// Equal sort keys fall back to start time, newest first, so pages are stable.
func (s *JourneyService) List(ctx context.Context, page domain.PaginationParams, sort domain.SortParams) ([]domain.Journey, int, error) {
	journeys, err := s.repo.Load(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("service.JourneyService.List: %w", err)
	}

	sorted := slices.Clone(journeys)
	slices.SortStableFunc(sorted, func(a, b domain.Journey) int {
		c := compareBy(sort.Field, a, b)
		if !sort.Ascending {
			c = -c
		}
		if c != 0 {
			return c
		}
		return b.StartedAt.Compare(a.StartedAt)
	})

	total := len(sorted)
	start := min(page.Offset(), total)
	end := min(start+page.Limit, total)
	return slices.Clip(sorted[start:end]), total, nil
}

func compareBy(field domain.SortField, a, b domain.Journey) int {
	switch field {
	case domain.SortByDistance:
		return cmp.Compare(a.Distance, b.Distance)
	case domain.SortByStartReading:
		return cmp.Compare(a.StartReading, b.StartReading)
	case domain.SortByEndReading:
		return cmp.Compare(a.EndReading, b.EndReading)
	default:
		return a.Date.Compare(b.Date)
	}
}

// GetByID returns a single journey.
// Returns domain.ErrNotFound if no journey with that ID exists.
func (s *JourneyService) GetByID(ctx context.Context, id uuid.UUID) (domain.Journey, error) {
	journeys, err := s.repo.Load(ctx)
	if err != nil {
		return domain.Journey{}, fmt.Errorf("service.JourneyService.GetByID: %w", err)
	}
	for _, j := range journeys {
		if j.ID == id {
			return j, nil
		}
	}
	return domain.Journey{}, fmt.Errorf("service.JourneyService.GetByID: %w", domain.ErrNotFound)
}

// Summary returns the summary lines for a stored journey as of today.
// Returns domain.ErrNotFound if no journey with that ID exists.
func (s *JourneyService) Summary(ctx context.Context, id uuid.UUID) ([]string, error) {
	j, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.summarizer.Summarize(j, domain.DateOnly(s.opts.now())), nil
}

// Tags returns every distinct tag with the number of journeys carrying it,
// most used first and then by name. A non-empty prefix keeps only tags that
// start with it, ignoring case. Always returns a non-nil slice.
func (s *JourneyService) Tags(ctx context.Context, prefix string) ([]domain.TagCount, error) {
	journeys, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.JourneyService.Tags: %w", err)
	}

	prefix = strings.ToLower(strings.TrimSpace(prefix))
	counts := map[string]int{}
	for _, j := range journeys {
		for _, tag := range j.Tags {
			if strings.HasPrefix(strings.ToLower(tag), prefix) {
				counts[tag]++
			}
		}
	}

	out := make([]domain.TagCount, 0, len(counts))
	for name, n := range counts {
		out = append(out, domain.TagCount{Name: name, Count: n})
	}
	slices.SortFunc(out, func(a, b domain.TagCount) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return strings.Compare(a.Name, b.Name)
	})
	return out, nil
}
