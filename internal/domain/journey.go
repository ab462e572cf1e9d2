// Package domain contains the core data types for the mileage logbook.
// This package depends only on uuid and is imported by every other internal
// package (metrics, stats, analysis, challenge, repo, service, handler).
package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultFuelPrice is the price per litre applied when a journey is recorded
// without an explicit price. Config may override it per process.
const DefaultFuelPrice = 1.50

// Journey is one logged trip.
// Distance is always EndReading - StartReading and is recomputed on entry,
// never trusted from input. FuelConsumption is nil when no fuel was recorded.
type Journey struct {
	ID           uuid.UUID
	Date         time.Time // calendar day, midnight UTC
	StartedAt    time.Time // moment the journey began, in the driver's offset; midnight of Date when unknown
	StartReading float64
	EndReading   float64
	Distance     float64
	Purpose      string
	Category     Category
	Tags         []string

	// StartTimeKnown is false for past journeys recorded without a start
	// time. Time-of-day checks skip those.
	StartTimeKnown bool

	FuelConsumption *float64
	FuelPrice       float64
	Cost            float64
}

// HasFuel reports whether the journey carries usable fuel data.
func (j Journey) HasFuel() bool {
	return j.FuelConsumption != nil && *j.FuelConsumption > 0
}

// Fuel returns the fuel consumed, or 0 when absent.
func (j Journey) Fuel() float64 {
	if j.FuelConsumption == nil {
		return 0
	}
	return *j.FuelConsumption
}

// JourneyInput carries the user-supplied fields for a new journey.
// Optional fields are pointers; the service applies defaults.
type JourneyInput struct {
	Date            time.Time
	StartedAt       *time.Time
	StartReading    float64
	EndReading      float64
	Purpose         string
	Category        string
	Tags            []string
	FuelConsumption *float64
	FuelPrice       *float64
}

// Category is one of a fixed set of journey classifications.
type Category string

const (
	CategoryPersonal  Category = "Personal"
	CategoryBusiness  Category = "Business"
	CategoryCommute   Category = "Commute"
	CategoryShopping  Category = "Shopping"
	CategoryVacation  Category = "Vacation"
	CategoryMedical   Category = "Medical"
	CategoryEducation Category = "Education"
	CategoryFamily    Category = "Family"
	CategoryOther     Category = "Other"
)

// Categories lists every category in display order.
var Categories = []Category{
	CategoryPersonal, CategoryBusiness, CategoryCommute, CategoryShopping,
	CategoryVacation, CategoryMedical, CategoryEducation, CategoryFamily, CategoryOther,
}

// ParseCategory matches s case-insensitively against the fixed category set.
// An empty string yields CategoryPersonal, the default.
func ParseCategory(s string) (Category, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return CategoryPersonal, true
	}
	for _, c := range Categories {
		if strings.EqualFold(s, string(c)) {
			return c, true
		}
	}
	return "", false
}

// DateOnly truncates t to midnight UTC of its own calendar day.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
