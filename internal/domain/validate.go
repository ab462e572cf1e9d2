package domain

import "time"

// Validate checks the odometer range and journey date of a new entry.
// today is injected so callers control the clock; only the calendar day of
// date and today is compared.
func Validate(startReading, endReading float64, date, today time.Time) error {
	if endReading < startReading {
		return ErrInvalidRange
	}
	if DateOnly(date).After(DateOnly(today)) {
		return ErrFutureDate
	}
	return nil
}
