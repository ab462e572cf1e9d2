// Package service contains the business logic for the mileage logbook.
// Services validate inputs, enforce business rules, and orchestrate repo calls.
// No SQL lives here; services depend on repo interfaces, not implementations.
package service

import (
	"log/slog"
	"time"
)

// Event names published to live subscribers.
const (
	EventJourneyCreated     = "journey_created"
	EventChallengeCompleted = "challenge_completed"
)

// Publisher broadcasts an event to live subscribers. It must not block.
type Publisher interface {
	Publish(event string, payload any)
}

// Options carries the collaborators every service shares.
// Zero fields are replaced with working defaults.
type Options struct {
	// Now is the clock used for "today" and the current ISO week.
	Now func() time.Time
	// Location is where "today" and the current week are judged.
	// Defaults to UTC.
	Location *time.Location
	// Events receives domain events; nil discards them.
	Events Publisher
	// Logger defaults to slog.Default().
	Logger *slog.Logger
}

func (o Options) withDefaults() Options {
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.Location == nil {
		o.Location = time.UTC
	}
	if o.Events == nil {
		o.Events = discard{}
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	return o
}

type discard struct{}

func (discard) Publish(string, any) {}

// now reads the clock in the configured location.
func (o Options) now() time.Time {
	return o.Now().In(o.Location)
}
