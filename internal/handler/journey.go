package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pkordes/mileage-logbook/internal/domain"
)

// CreateJourney handles POST /journeys.
func (s *Server) CreateJourney(w http.ResponseWriter, r *http.Request) {
	var req JourneyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, codeBadRequest, "request body too large")
			return
		}
		badRequest(w, "invalid request body: "+err.Error())
		return
	}

	in, err := requestToInput(req)
	if err != nil {
		badRequest(w, err.Error())
		return
	}

	created, lines, err := s.journeys.Create(r.Context(), in)
	if err != nil {
		s.serviceError(w, r, err, "journey not found")
		return
	}

	writeJSON(w, http.StatusCreated, CreateJourneyResponse{
		Journey: journeyToResponse(created),
		Summary: lines,
	})
}

// ListJourneys handles GET /journeys.
// Supports ?page= and ?limit= (defaults: page=1, limit=20, max=100) and
// ?sort=date|distance|start_reading|end_reading with ?order=asc|desc.
func (s *Server) ListJourneys(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, err := optionalInt(q.Get("page"))
	if err != nil {
		badRequest(w, "page must be an integer")
		return
	}
	limit, err := optionalInt(q.Get("limit"))
	if err != nil {
		badRequest(w, "limit must be an integer")
		return
	}
	params := domain.NewPaginationParams(page, limit)
	sort := domain.NewSortParams(optionalString(q.Get("sort")), optionalString(q.Get("order")))

	journeys, total, err := s.journeys.List(r.Context(), params, sort)
	if err != nil {
		s.serviceError(w, r, err, "")
		return
	}

	data := make([]Journey, len(journeys))
	for i, j := range journeys {
		data[i] = journeyToResponse(j)
	}
	writeJSON(w, http.StatusOK, JourneyListResponse{
		Data: data,
		Pagination: Pagination{
			Page:  params.Page,
			Limit: params.Limit,
			Total: total,
		},
	})
}

// GetJourney handles GET /journeys/{id}.
func (s *Server) GetJourney(w http.ResponseWriter, r *http.Request) {
	id, ok := journeyID(w, r)
	if !ok {
		return
	}

	j, err := s.journeys.GetByID(r.Context(), id)
	if err != nil {
		s.serviceError(w, r, err, "journey not found")
		return
	}
	writeJSON(w, http.StatusOK, journeyToResponse(j))
}

// GetJourneySummary handles GET /journeys/{id}/summary.
func (s *Server) GetJourneySummary(w http.ResponseWriter, r *http.Request) {
	id, ok := journeyID(w, r)
	if !ok {
		return
	}

	lines, err := s.journeys.Summary(r.Context(), id)
	if err != nil {
		s.serviceError(w, r, err, "journey not found")
		return
	}
	writeJSON(w, http.StatusOK, SummaryResponse{Summary: lines})
}

// ListTags handles GET /tags. ?prefix= narrows the list.
func (s *Server) ListTags(w http.ResponseWriter, r *http.Request) {
	tags, err := s.journeys.Tags(r.Context(), r.URL.Query().Get("prefix"))
	if err != nil {
		s.serviceError(w, r, err, "")
		return
	}
	writeJSON(w, http.StatusOK, TagListResponse{Data: tags})
}

// journeyID parses the {id} path parameter, writing a 404 when it is not a UUID.
func journeyID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		notFound(w, "journey not found")
		return uuid.Nil, false
	}
	return id, true
}

func optionalInt(s string) (*int, error) {
	if s == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
