// Package handler implements the HTTP handlers for the mileage logbook API.
// All handlers are methods on Server. Methods are split into domain-specific
// files (health.go, journey.go, etc.) but share the same Server struct so they
// can access its dependencies.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pkordes/mileage-logbook/internal/domain"
)

// JourneyServicer defines the journey operations the handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the database or service layer.
type JourneyServicer interface {
	Create(ctx context.Context, in domain.JourneyInput) (domain.Journey, []string, error)
	List(ctx context.Context, page domain.PaginationParams, sort domain.SortParams) ([]domain.Journey, int, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Journey, error)
	Summary(ctx context.Context, id uuid.UUID) ([]string, error)
	Tags(ctx context.Context, prefix string) ([]domain.TagCount, error)
}

// InsightServicer defines the analytics the stats handlers depend on.
type InsightServicer interface {
	Statistics(ctx context.Context) (domain.Statistics, error)
	Patterns(ctx context.Context) (domain.PatternAnalysis, error)
	Routes(ctx context.Context) ([]domain.Suggestion, error)
}

// ChallengeServicer defines the weekly challenge board operations.
type ChallengeServicer interface {
	Current(ctx context.Context) ([]domain.WeeklyChallenge, error)
}

// ExportServicer defines the export operation.
type ExportServicer interface {
	Export(ctx context.Context) ([]domain.ExportRow, error)
}

// Deps are the Server's collaborators. A nil Live handler leaves /ws unrouted.
type Deps struct {
	Journeys   JourneyServicer
	Insights   InsightServicer
	Challenges ChallengeServicer
	Export     ExportServicer
	Live       http.Handler
	Logger     *slog.Logger
}

// Server implements every API endpoint. Wire it in main.go via Routes.
type Server struct {
	journeys   JourneyServicer
	insights   InsightServicer
	challenges ChallengeServicer
	export     ExportServicer
	live       http.Handler
	log        *slog.Logger
}

// NewServer constructs the Server with all its dependencies.
func NewServer(d Deps) *Server {
	log := d.Logger
	if log == nil {
		log = slog.Default()
	}
	return &Server{
		journeys:   d.Journeys,
		insights:   d.Insights,
		challenges: d.Challenges,
		export:     d.Export,
		live:       d.Live,
		log:        log,
	}
}

// NewHealthHandler returns a Server for health-check-only use.
func NewHealthHandler() *Server {
	return NewServer(Deps{})
}

// Routes registers every endpoint on r.
func (s *Server) Routes(r chi.Router) {
	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", s.GetOpenAPI)

	r.Route("/journeys", func(r chi.Router) {
		r.Post("/", s.CreateJourney)
		r.Get("/", s.ListJourneys)
		r.Get("/{id}", s.GetJourney)
		r.Get("/{id}/summary", s.GetJourneySummary)
	})
	r.Get("/tags", s.ListTags)

	r.Route("/stats", func(r chi.Router) {
		r.Get("/", s.GetStatistics)
		r.Get("/patterns", s.GetPatterns)
		r.Get("/routes", s.GetRouteSuggestions)
	})
	r.Get("/challenges", s.GetChallenges)
	r.Get("/export", s.GetExport)

	if s.live != nil {
		r.Handle("/ws", s.live)
	}
}

// Handler returns a chi router serving every endpoint, with no middleware.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	s.Routes(r)
	return r
}
