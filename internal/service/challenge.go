package service

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/pkordes/mileage-logbook/internal/challenge"
	"github.com/pkordes/mileage-logbook/internal/domain"
	"github.com/pkordes/mileage-logbook/internal/repo"
	"github.com/pkordes/mileage-logbook/internal/stats"
)

// ChallengeService keeps the weekly challenge board. Boards live in memory,
// one per ISO week. A board is generated from the journeys dated before the
// week, then scored once per stored prefix of the week's journeys so a
// completion reached earlier in the week stays completed. A restarted process
// therefore rebuilds the board it had, unless journeys dated before the week
// were added after the board was first generated.
type ChallengeService struct {
	repo repo.JourneyRepo
	opts Options

	mu     sync.Mutex
	boards map[domain.ISOWeek][]domain.WeeklyChallenge
}

// NewChallengeService constructs a ChallengeService.
func NewChallengeService(r repo.JourneyRepo, opts Options) *ChallengeService {
	return &ChallengeService{
		repo:   r,
		opts:   opts.withDefaults(),
		boards: map[domain.ISOWeek][]domain.WeeklyChallenge{},
	}
}

// Current returns the current week's board scored against the stored journeys.
func (s *ChallengeService) Current(ctx context.Context) ([]domain.WeeklyChallenge, error) {
	journeys, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.ChallengeService.Current: %w", err)
	}
	return s.refresh(ctx, journeys), nil
}

// JourneysChanged rescores the current week after a journey is recorded.
func (s *ChallengeService) JourneysChanged(ctx context.Context, journeys []domain.Journey) {
	s.refresh(ctx, journeys)
}

func (s *ChallengeService) refresh(ctx context.Context, journeys []domain.Journey) []domain.WeeklyChallenge {
	week := domain.WeekOf(s.opts.now())

	s.mu.Lock()
	defer s.mu.Unlock()

	board, ok := s.boards[week]
	if !ok {
		board = s.generate(journeys, week)
		clear(s.boards)
		s.opts.Logger.InfoContext(ctx, "weekly challenges generated", "week", week.String())
	}

	updated := challenge.Update(board, journeys, week)
	for i, c := range updated {
		if c.Completed && !board[i].Completed {
			s.opts.Logger.InfoContext(ctx, "challenge completed",
				"week", week.String(), "challenge_id", c.ID, "points", c.Points)
			s.opts.Events.Publish(EventChallengeCompleted, c)
		}
	}
	s.boards[week] = updated
	return slices.Clone(updated)
}

// generate builds week's board and replays every earlier prefix of journeys
// through it without publishing. The newest journey is left for the caller.
func (s *ChallengeService) generate(journeys []domain.Journey, week domain.ISOWeek) []domain.WeeklyChallenge {
	start := week.Start()
	var before []domain.Journey
	for _, j := range journeys {
		if j.Date.Before(start) {
			before = append(before, j)
		}
	}
	st := stats.Aggregate(before)
	board := challenge.Generate(week, &st)

	first := slices.IndexFunc(journeys, func(j domain.Journey) bool { return week.Contains(j.Date) })
	if first < 0 {
		return board
	}
	for n := first + 1; n < len(journeys); n++ {
		board = challenge.Update(board, journeys[:n], week)
	}
	return board
}
