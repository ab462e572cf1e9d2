package handler

import (
	"net/http"

	"github.com/pkordes/mileage-logbook/internal/domain"
)

// GetStatistics handles GET /stats.
func (s *Server) GetStatistics(w http.ResponseWriter, r *http.Request) {
	st, err := s.insights.Statistics(r.Context())
	if err != nil {
		s.serviceError(w, r, err, "")
		return
	}
	writeJSON(w, http.StatusOK, st)
}

// GetPatterns handles GET /stats/patterns.
func (s *Server) GetPatterns(w http.ResponseWriter, r *http.Request) {
	p, err := s.insights.Patterns(r.Context())
	if err != nil {
		s.serviceError(w, r, err, "")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// GetRouteSuggestions handles GET /stats/routes.
func (s *Server) GetRouteSuggestions(w http.ResponseWriter, r *http.Request) {
	suggestions, err := s.insights.Routes(r.Context())
	if err != nil {
		s.serviceError(w, r, err, "")
		return
	}
	if suggestions == nil {
		suggestions = []domain.Suggestion{}
	}
	writeJSON(w, http.StatusOK, SuggestionListResponse{Data: suggestions})
}

// GetChallenges handles GET /challenges: the current ISO week's board.
func (s *Server) GetChallenges(w http.ResponseWriter, r *http.Request) {
	board, err := s.challenges.Current(r.Context())
	if err != nil {
		s.serviceError(w, r, err, "")
		return
	}

	resp := ChallengeBoardResponse{Data: board}
	if resp.Data == nil {
		resp.Data = []domain.WeeklyChallenge{}
	}
	for _, c := range board {
		resp.Week = c.WeekID.String()
		if c.Completed {
			resp.Points += c.Points
		}
	}
	writeJSON(w, http.StatusOK, resp)
}
