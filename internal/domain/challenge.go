package domain

// ChallengeType groups weekly challenges into the four catalog families.
type ChallengeType string

const (
	ChallengeEfficiency  ChallengeType = "efficiency"
	ChallengeReduction   ChallengeType = "reduction"
	ChallengeConsistency ChallengeType = "consistency"
	ChallengePlanning    ChallengeType = "planning"
)

// WeeklyChallenge is a gamified goal scoped to one ISO week.
// It is derived application state and is never written to the journey store.
// Completed is monotonic: once true it stays true for the week.
type WeeklyChallenge struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Type        ChallengeType `json:"type"`
	Target      float64       `json:"target"`
	// Limit is the secondary threshold some challenges need: a fuel or distance
	// cap, a distance band, or a streak length.
	Limit      float64 `json:"limit,omitempty"`
	Unit       string  `json:"unit"`
	Points     int     `json:"points"`
	Difficulty string  `json:"difficulty"`
	Progress   float64 `json:"progress"`
	Actual     float64 `json:"actual"`
	Completed  bool    `json:"completed"`
	WeekID     ISOWeek `json:"week_id"`
}
