package handler_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/mileage-logbook/internal/domain"
	"github.com/pkordes/mileage-logbook/internal/handler"
)

func TestGetStatistics(t *testing.T) {
	svc := &mockInsightServicer{
		statistics: func(context.Context) (domain.Statistics, error) {
			return domain.Statistics{TotalJourneys: 2, TotalDistance: 80, FuelEconomy: 10}, nil
		},
	}
	h := newHTTPHandler(handler.Deps{Insights: svc})

	rec := do(t, h, http.MethodGet, "/stats", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode[map[string]any](t, rec)
	assert.EqualValues(t, 2, body["total_journeys"])
	assert.EqualValues(t, 80, body["total_distance"])
	assert.Contains(t, body, "carbon_offset_options")
}

func TestGetStatistics_Error(t *testing.T) {
	svc := &mockInsightServicer{
		statistics: func(context.Context) (domain.Statistics, error) {
			return domain.Statistics{}, errors.New("db down")
		},
	}
	h := newHTTPHandler(handler.Deps{Insights: svc})

	rec := do(t, h, http.MethodGet, "/stats", nil)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "internal_error", decode[handler.ErrorResponse](t, rec).Error.Code)
}

func TestGetPatterns(t *testing.T) {
	svc := &mockInsightServicer{
		patterns: func(context.Context) (domain.PatternAnalysis, error) {
			return domain.PatternAnalysis{Trend: domain.TrendImproving, EcoScore: 72.5}, nil
		},
	}
	h := newHTTPHandler(handler.Deps{Insights: svc})

	rec := do(t, h, http.MethodGet, "/stats/patterns", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode[domain.PatternAnalysis](t, rec)
	assert.Equal(t, domain.TrendImproving, body.Trend)
	assert.Equal(t, 72.5, body.EcoScore)
}

func TestGetRouteSuggestions_EmptyIsArray(t *testing.T) {
	svc := &mockInsightServicer{
		routes: func(context.Context) ([]domain.Suggestion, error) { return nil, nil },
	}
	h := newHTTPHandler(handler.Deps{Insights: svc})

	rec := do(t, h, http.MethodGet, "/stats/routes", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":[]}`, rec.Body.String())
}

func TestGetChallenges(t *testing.T) {
	week := domain.ISOWeek{Year: 2026, Week: 42}
	svc := &mockChallengeServicer{
		current: func(context.Context) ([]domain.WeeklyChallenge, error) {
			return []domain.WeeklyChallenge{
				{ID: "efficiency_1", Points: 100, Completed: true, Progress: 100, WeekID: week},
				{ID: "planning_2", Points: 80, Progress: 40, WeekID: week},
			}, nil
		},
	}
	h := newHTTPHandler(handler.Deps{Challenges: svc})

	rec := do(t, h, http.MethodGet, "/challenges", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode[handler.ChallengeBoardResponse](t, rec)
	assert.Equal(t, "2026-W42", body.Week)
	assert.Equal(t, 100, body.Points)
	require.Len(t, body.Data, 2)
	assert.Equal(t, week, body.Data[0].WeekID)
}
