package service

import (
	"context"
	"fmt"

	"github.com/pkordes/mileage-logbook/internal/analysis"
	"github.com/pkordes/mileage-logbook/internal/domain"
	"github.com/pkordes/mileage-logbook/internal/repo"
	"github.com/pkordes/mileage-logbook/internal/stats"
)

// InsightService computes the read-only views over the whole collection:
// the statistics dashboard, efficiency patterns, and route suggestions.
type InsightService struct {
	repo     repo.JourneyRepo
	patterns analysis.PatternThresholds
	routes   analysis.RouteThresholds
}

// NewInsightService constructs an InsightService with the default analysis thresholds.
func NewInsightService(r repo.JourneyRepo) *InsightService {
	return &InsightService{
		repo:     r,
		patterns: analysis.DefaultPatternThresholds,
		routes:   analysis.DefaultRouteThresholds,
	}
}

// Statistics aggregates every stored journey.
func (s *InsightService) Statistics(ctx context.Context) (domain.Statistics, error) {
	journeys, err := s.repo.Load(ctx)
	if err != nil {
		return domain.Statistics{}, fmt.Errorf("service.InsightService.Statistics: %w", err)
	}
	return stats.Aggregate(journeys), nil
}

// Patterns analyses the efficiency trend across every stored journey.
func (s *InsightService) Patterns(ctx context.Context) (domain.PatternAnalysis, error) {
	journeys, err := s.repo.Load(ctx)
	if err != nil {
		return domain.PatternAnalysis{}, fmt.Errorf("service.InsightService.Patterns: %w", err)
	}
	return s.patterns.Analyze(journeys), nil
}

// Routes returns route optimisation suggestions for the stored journeys.
func (s *InsightService) Routes(ctx context.Context) ([]domain.Suggestion, error) {
	journeys, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.InsightService.Routes: %w", err)
	}
	return s.routes.Suggest(journeys), nil
}
