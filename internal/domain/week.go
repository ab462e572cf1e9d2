package domain

import (
	"fmt"
	"time"
)

// ISOWeek identifies an ISO 8601 week.
type ISOWeek struct {
	Year int `json:"year"`
	Week int `json:"week"`
}

// WeekOf returns the ISO week containing t.
func WeekOf(t time.Time) ISOWeek {
	y, w := t.ISOWeek()
	return ISOWeek{Year: y, Week: w}
}

// Start returns midnight UTC of the Monday that opens the week.
func (w ISOWeek) Start() time.Time {
	// January 4th is always in ISO week 1.
	jan4 := time.Date(w.Year, time.January, 4, 0, 0, 0, 0, time.UTC)
	offset := (int(jan4.Weekday()) + 6) % 7
	monday := jan4.AddDate(0, 0, -offset)
	return monday.AddDate(0, 0, (w.Week-1)*7)
}

// Prev returns the week before w.
func (w ISOWeek) Prev() ISOWeek {
	return WeekOf(w.Start().AddDate(0, 0, -7))
}

// Contains reports whether t falls inside the week.
func (w ISOWeek) Contains(t time.Time) bool {
	return WeekOf(DateOnly(t)) == w
}

func (w ISOWeek) String() string {
	return fmt.Sprintf("%04d-W%02d", w.Year, w.Week)
}
