package analysis_test

import (
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/mileage-logbook/internal/domain"
)

func ptr(v float64) *float64 { return &v }

// at builds a timestamp in UTC; 2026-10-12 is a Monday.
func at(month time.Month, day, hour, minute int) time.Time {
	return time.Date(2026, month, day, hour, minute, 0, 0, time.UTC)
}

// trip returns a journey starting at start. A nil fuel means no fuel data.
func trip(start time.Time, purpose string, cat domain.Category, distance float64, fuel *float64) domain.Journey {
	return domain.Journey{
		ID:              uuid.New(),
		Date:            domain.DateOnly(start),
		StartedAt:       start,
		StartReading:    1000,
		EndReading:      1000 + distance,
		Distance:        distance,
		Purpose:         purpose,
		Category:        cat,
		Tags:            []string{},
		FuelConsumption: fuel,
		FuelPrice:       domain.DefaultFuelPrice,
	}
}
