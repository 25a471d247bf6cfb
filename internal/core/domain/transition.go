package domain

// SeedState is the fixed initial aggregate: two options, zero votes.
func SeedState() VotingState {
	return VotingState{
		Options: []Option{
			{ID: 1, Text: "Option A"},
			{ID: 2, Text: "Option B"},
		},
		TotalVotes:   0,
		NextOptionID: 3,
	}
}

// NewState builds a zero-vote state from the given option texts, assigning
// IDs from 1 in input order.
func NewState(texts []string) VotingState {
	options := make([]Option, 0, len(texts))
	for i, text := range texts {
		options = append(options, Option{ID: int64(i + 1), Text: text})
	}
	return VotingState{
		Options:      options,
		NextOptionID: int64(len(texts) + 1),
	}
}

// Transition applies one action to a state and returns the next state. It is
// pure and total: no side effects, no mutation of the input, and always a
// value back. A CastVote with an unknown option ID returns the state
// unchanged; incrementing TotalVotes there would break the sum invariant.
func Transition(s VotingState, a Action) VotingState {
	switch act := a.(type) {
	case AddOption:
		next := s.clone()
		next.Options = append(next.Options, Option{ID: next.NextOptionID, Text: act.Text})
		next.NextOptionID++
		return next
	case CastVote:
		for i := range s.Options {
			if s.Options[i].ID == act.OptionID {
				next := s.clone()
				next.Options[i].Votes++
				next.TotalVotes++
				return next
			}
		}
		return s
	case Reset:
		next := s.clone()
		for i := range next.Options {
			next.Options[i].Votes = 0
		}
		next.TotalVotes = 0
		return next
	}
	return s
}

func (s VotingState) clone() VotingState {
	next := s
	next.Options = make([]Option, len(s.Options))
	copy(next.Options, s.Options)
	return next
}

// HasOption reports whether an option with the given ID exists.
func (s VotingState) HasOption(id int64) bool {
	for _, opt := range s.Options {
		if opt.ID == id {
			return true
		}
	}
	return false
}

// Stats computes the read-side projection of a state: one entry per option,
// in option order, with the vote ratio guarded against division by zero.
// Computed fresh on every call and never written back into state.
func (s VotingState) Stats() []OptionStats {
	total := s.TotalVotes
	if total < 1 {
		total = 1
	}

	stats := make([]OptionStats, 0, len(s.Options))
	for _, opt := range s.Options {
		ratio := float64(opt.Votes) / float64(total)
		stats = append(stats, OptionStats{
			OptionID:   opt.ID,
			Text:       opt.Text,
			VoteCount:  opt.Votes,
			Ratio:      ratio,
			Percentage: ratio * 100,
		})
	}
	return stats
}
