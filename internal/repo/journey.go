// Package repo contains all database access logic for the mileage logbook.
// The journey collection is loaded and saved whole; there is no per-record
// CRUD. No business logic lives here, only SQL and type mapping.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/mileage-logbook/internal/domain"
	"github.com/pkordes/mileage-logbook/internal/metrics"
)

// JourneyRepo persists the journey collection.
// The service layer depends on this interface, not a concrete store,
// which allows the service to be unit-tested with a mock.
type JourneyRepo interface {
	// Load returns every journey in the order it was saved. Rows written
	// before category, tags, fuel price and cost existed come back with
	// those fields filled in.
	Load(ctx context.Context) ([]domain.Journey, error)

	// Save replaces the stored collection with journeys atomically.
	Save(ctx context.Context, journeys []domain.Journey) error
}

// Option configures how a store fills in legacy rows.
type Option func(*settings)

type settings struct {
	fuelPrice float64
}

// WithDefaultFuelPrice sets the price per litre given to rows stored
// without one. Non-positive prices are ignored.
func WithDefaultFuelPrice(price float64) Option {
	return func(s *settings) {
		if price > 0 {
			s.fuelPrice = price
		}
	}
}

func newSettings(opts []Option) settings {
	s := settings{fuelPrice: domain.DefaultFuelPrice}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// columns is the column order shared by both stores.
var columns = []string{
	"id", "seq", "date", "started_at", "start_reading", "end_reading", "distance",
	"purpose", "fuel_consumption", "category", "tags", "fuel_price", "cost", "start_offset",
}

// storedJourney is a journeys row as read from either store. Columns added
// after the first schema are nullable.
type storedJourney struct {
	ID              uuid.UUID
	Date            time.Time
	StartedAt       time.Time
	StartReading    float64
	EndReading      float64
	Distance        float64
	Purpose         string
	FuelConsumption *float64
	Category        *string
	Tags            *string
	FuelPrice       *float64
	Cost            *float64
	StartOffset     *int
}

// migrate maps a row onto a fully populated Journey. Absent category reads as
// Personal, absent tags as none, absent fuel price as fuelPrice, and absent
// cost is recomputed from fuel and price. Distance is always recomputed from
// the odometer readings.
//
// The start time is restored in the offset it was recorded in. Rows without
// an offset predate it; their start time counts as known unless it sits on
// midnight of the journey's date, which is what an unknown time was stored as.
func (s storedJourney) migrate(fuelPrice float64) domain.Journey {
	j := domain.Journey{
		ID:           s.ID,
		Date:         domain.DateOnly(s.Date),
		StartedAt:    s.StartedAt.UTC(),
		StartReading: s.StartReading,
		EndReading:   s.EndReading,
		Distance:     s.EndReading - s.StartReading,
		Purpose:      s.Purpose,
		Category:     domain.CategoryPersonal,
		Tags:         []string{},
		FuelPrice:    fuelPrice,
	}
	if s.FuelConsumption != nil && *s.FuelConsumption > 0 {
		fuel := *s.FuelConsumption
		j.FuelConsumption = &fuel
	}
	if s.Category != nil && *s.Category != "" {
		if c, ok := domain.ParseCategory(*s.Category); ok {
			j.Category = c
		} else {
			j.Category = domain.Category(*s.Category)
		}
	}
	if s.Tags != nil {
		j.Tags = domain.ParseTags(*s.Tags)
	}
	if s.FuelPrice != nil {
		j.FuelPrice = *s.FuelPrice
	}
	if s.Cost != nil {
		j.Cost = *s.Cost
	} else {
		j.Cost = metrics.Cost(j.FuelConsumption, &j.FuelPrice)
	}
	switch {
	case j.StartedAt.IsZero():
		j.StartedAt = j.Date
	case s.StartOffset != nil:
		j.StartedAt = j.StartedAt.In(zone(*s.StartOffset))
		j.StartTimeKnown = true
	default:
		j.StartTimeKnown = !j.StartedAt.Equal(j.Date)
	}
	return j
}

func zone(offset int) *time.Location {
	if offset == 0 {
		return time.UTC
	}
	return time.FixedZone("", offset)
}

// startOffset returns the seconds east of UTC j started at, or nil when its
// start time is unknown.
func startOffset(j domain.Journey) *int {
	if !j.StartTimeKnown {
		return nil
	}
	_, offset := j.StartedAt.Zone()
	return &offset
}

// row returns the column values for j at position seq, in columns order.
func row(j domain.Journey, seq int) []any {
	return []any{
		j.ID, seq, domain.DateOnly(j.Date), j.StartedAt.UTC(), j.StartReading, j.EndReading, j.Distance,
		j.Purpose, j.FuelConsumption, string(j.Category), domain.FormatTags(j.Tags), j.FuelPrice, j.Cost,
		startOffset(j),
	}
}
