package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/mileage-logbook/internal/domain"
	"github.com/pkordes/mileage-logbook/internal/handler"
)

// mockJourneyServicer is a test double for handler.JourneyServicer.
// Set only the method fields your test needs.
type mockJourneyServicer struct {
	create  func(ctx context.Context, in domain.JourneyInput) (domain.Journey, []string, error)
	list    func(ctx context.Context, page domain.PaginationParams, sort domain.SortParams) ([]domain.Journey, int, error)
	getByID func(ctx context.Context, id uuid.UUID) (domain.Journey, error)
	summary func(ctx context.Context, id uuid.UUID) ([]string, error)
	tags    func(ctx context.Context, prefix string) ([]domain.TagCount, error)
}

func (m *mockJourneyServicer) Create(ctx context.Context, in domain.JourneyInput) (domain.Journey, []string, error) {
	return m.create(ctx, in)
}
func (m *mockJourneyServicer) List(ctx context.Context, page domain.PaginationParams, sort domain.SortParams) ([]domain.Journey, int, error) {
	return m.list(ctx, page, sort)
}
func (m *mockJourneyServicer) GetByID(ctx context.Context, id uuid.UUID) (domain.Journey, error) {
	return m.getByID(ctx, id)
}
func (m *mockJourneyServicer) Summary(ctx context.Context, id uuid.UUID) ([]string, error) {
	return m.summary(ctx, id)
}
func (m *mockJourneyServicer) Tags(ctx context.Context, prefix string) ([]domain.TagCount, error) {
	return m.tags(ctx, prefix)
}

// compile-time check: mockJourneyServicer must satisfy handler.JourneyServicer.
var _ handler.JourneyServicer = (*mockJourneyServicer)(nil)

type mockInsightServicer struct {
	statistics func(ctx context.Context) (domain.Statistics, error)
	patterns   func(ctx context.Context) (domain.PatternAnalysis, error)
	routes     func(ctx context.Context) ([]domain.Suggestion, error)
}

func (m *mockInsightServicer) Statistics(ctx context.Context) (domain.Statistics, error) {
	return m.statistics(ctx)
}
func (m *mockInsightServicer) Patterns(ctx context.Context) (domain.PatternAnalysis, error) {
	return m.patterns(ctx)
}
func (m *mockInsightServicer) Routes(ctx context.Context) ([]domain.Suggestion, error) {
	return m.routes(ctx)
}

var _ handler.InsightServicer = (*mockInsightServicer)(nil)

type mockChallengeServicer struct {
	current func(ctx context.Context) ([]domain.WeeklyChallenge, error)
}

func (m *mockChallengeServicer) Current(ctx context.Context) ([]domain.WeeklyChallenge, error) {
	return m.current(ctx)
}

var _ handler.ChallengeServicer = (*mockChallengeServicer)(nil)

type mockExportServicer struct {
	export func(ctx context.Context) ([]domain.ExportRow, error)
}

func (m *mockExportServicer) Export(ctx context.Context) ([]domain.ExportRow, error) {
	return m.export(ctx)
}

var _ handler.ExportServicer = (*mockExportServicer)(nil)

// ---- helpers ---------------------------------------------------------------

// newHTTPHandler wires a Server with the given mocks into a chi router.
// This mirrors how main.go wires it in production, minus middleware.
func newHTTPHandler(d handler.Deps) http.Handler {
	return handler.NewServer(d).Handler()
}

func do(t *testing.T, h http.Handler, method, target string, body *bytes.Buffer) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == nil {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, body)
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v))
	return v
}

func ptr(v float64) *float64 { return &v }

func journeyFixture() domain.Journey {
	return domain.Journey{
		ID:              uuid.New(),
		Date:            time.Date(2026, time.October, 12, 0, 0, 0, 0, time.UTC),
		StartedAt:       time.Date(2026, time.October, 12, 8, 0, 0, 0, time.UTC),
		StartReading:    1000,
		EndReading:      1050,
		Distance:        50,
		Purpose:         "Office",
		Category:        domain.CategoryCommute,
		Tags:            []string{"work"},
		FuelConsumption: ptr(4),
		FuelPrice:       1.5,
		Cost:            6,
	}
}
