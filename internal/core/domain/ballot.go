package domain

import (
	"time"

	"github.com/google/uuid"
)

// Option is one candidate on a ballot. Text is set once at creation and
// never changes; Votes only moves through Transition.
type Option struct {
	ID    int64  `json:"id"`
	Text  string `json:"text"`
	Votes int64  `json:"votes"`
}

// VotingState is the voting aggregate for a single ballot. Options keep
// insertion order. Invariant: TotalVotes equals the sum of Votes across
// Options after every transition. NextOptionID is a monotonic counter used
// to assign option IDs; it lives in the state so Transition stays pure.
type VotingState struct {
	Options      []Option `json:"options"`
	TotalVotes   int64    `json:"total_votes"`
	NextOptionID int64    `json:"next_option_id"`
}

type Ballot struct {
	ID        uuid.UUID   `json:"id"`
	Title     string      `json:"title"`
	CreatedAt time.Time   `json:"created_at"`
	State     VotingState `json:"state"`
}

type OptionStats struct {
	OptionID   int64
	Text       string
	VoteCount  int64
	Ratio      float64
	Percentage float64
}
