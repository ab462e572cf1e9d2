package handler

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/mileage-logbook/internal/domain"
	"github.com/pkordes/mileage-logbook/internal/metrics"
)

// HealthResponse is the body of GET /healthz.
type HealthResponse struct {
	Status string `json:"status"`
}

// Pagination describes the page returned by a list endpoint.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

// TagList accepts tags as either a JSON array or a comma-separated string.
type TagList []string

func (t *TagList) UnmarshalJSON(b []byte) error {
	var list []string
	if err := json.Unmarshal(b, &list); err == nil {
		*t = list
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("tags must be a list or a comma-separated string")
	}
	*t = domain.ParseTags(s)
	return nil
}

// JourneyRequest is the body of POST /journeys.
type JourneyRequest struct {
	Date            openapi_types.Date `json:"date"`
	StartedAt       *time.Time         `json:"started_at,omitempty"`
	StartReading    *float64           `json:"start_reading"`
	EndReading      *float64           `json:"end_reading"`
	Purpose         string             `json:"purpose"`
	Category        string             `json:"category"`
	Tags            TagList            `json:"tags"`
	FuelConsumption *float64           `json:"fuel_consumption,omitempty"`
	FuelPrice       *float64           `json:"fuel_price,omitempty"`
}

// Journey is the API representation of a stored journey, with its derived
// efficiency, emissions and category icon.
type Journey struct {
	ID              uuid.UUID          `json:"id"`
	Date            openapi_types.Date `json:"date"`
	StartedAt       time.Time          `json:"started_at"`
	StartReading    float64            `json:"start_reading"`
	EndReading      float64            `json:"end_reading"`
	Distance        float64            `json:"distance"`
	Purpose         string             `json:"purpose"`
	Category        string             `json:"category"`
	Icon            string             `json:"icon"`
	Tags            []string           `json:"tags"`
	FuelConsumption *float64           `json:"fuel_consumption"`
	FuelPrice       float64            `json:"fuel_price"`
	Cost            float64            `json:"cost"`
	Efficiency      *float64           `json:"efficiency,omitempty"`
	CO2             float64            `json:"co2"`
}

// CreateJourneyResponse is the body of a successful POST /journeys.
type CreateJourneyResponse struct {
	Journey Journey  `json:"journey"`
	Summary []string `json:"summary"`
}

// JourneyListResponse is one page of GET /journeys.
type JourneyListResponse struct {
	Data       []Journey  `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// SummaryResponse is the body of GET /journeys/{id}/summary.
type SummaryResponse struct {
	Summary []string `json:"summary"`
}

// TagListResponse is the body of GET /tags.
type TagListResponse struct {
	Data []domain.TagCount `json:"data"`
}

// SuggestionListResponse is the body of GET /stats/routes.
type SuggestionListResponse struct {
	Data []domain.Suggestion `json:"data"`
}

// ChallengeBoardResponse is the body of GET /challenges.
type ChallengeBoardResponse struct {
	Week   string                   `json:"week"`
	Points int                      `json:"points"`
	Data   []domain.WeeklyChallenge `json:"data"`
}

// ExportRow is one journey in a JSON export.
type ExportRow struct {
	ID              string   `json:"id"`
	Date            string   `json:"date"`
	StartedAt       string   `json:"started_at"`
	StartReading    float64  `json:"start_reading"`
	EndReading      float64  `json:"end_reading"`
	Distance        float64  `json:"distance"`
	Purpose         string   `json:"purpose"`
	Category        string   `json:"category"`
	Tags            []string `json:"tags"`
	FuelConsumption *float64 `json:"fuel_consumption"`
	FuelPrice       float64  `json:"fuel_price"`
	Cost            float64  `json:"cost"`
	CO2             float64  `json:"co2"`
}

// requestToInput validates presence of the required fields and maps the body
// onto a domain.JourneyInput. Business rules are left to the service.
func requestToInput(req JourneyRequest) (domain.JourneyInput, error) {
	if req.Date.Time.IsZero() {
		return domain.JourneyInput{}, fmt.Errorf("date is required")
	}
	if req.StartReading == nil || req.EndReading == nil {
		return domain.JourneyInput{}, fmt.Errorf("start_reading and end_reading are required")
	}
	return domain.JourneyInput{
		Date:            req.Date.Time,
		StartedAt:       req.StartedAt,
		StartReading:    *req.StartReading,
		EndReading:      *req.EndReading,
		Purpose:         req.Purpose,
		Category:        req.Category,
		Tags:            req.Tags,
		FuelConsumption: req.FuelConsumption,
		FuelPrice:       req.FuelPrice,
	}, nil
}

// journeyToResponse maps a domain.Journey to its API representation.
func journeyToResponse(j domain.Journey) Journey {
	out := Journey{
		ID:              j.ID,
		Date:            openapi_types.Date{Time: j.Date},
		StartedAt:       j.StartedAt,
		StartReading:    j.StartReading,
		EndReading:      j.EndReading,
		Distance:        j.Distance,
		Purpose:         j.Purpose,
		Category:        string(j.Category),
		Icon:            metrics.CategoryIcon(j.Category),
		Tags:            j.Tags,
		FuelConsumption: j.FuelConsumption,
		FuelPrice:       j.FuelPrice,
		Cost:            j.Cost,
		CO2:             metrics.JourneyCO2(j),
	}
	if out.Tags == nil {
		out.Tags = []string{}
	}
	if eff, ok := metrics.Efficiency(j); ok {
		out.Efficiency = &eff
	}
	return out
}

func exportRowToResponse(r domain.ExportRow) ExportRow {
	return ExportRow{
		ID:              r.ID,
		Date:            r.Date,
		StartedAt:       r.StartedAt,
		StartReading:    r.StartReading,
		EndReading:      r.EndReading,
		Distance:        r.Distance,
		Purpose:         r.Purpose,
		Category:        r.Category,
		Tags:            r.Tags,
		FuelConsumption: r.FuelConsumption,
		FuelPrice:       r.FuelPrice,
		Cost:            r.Cost,
		CO2:             r.CO2,
	}
}
