package domain

// Action is the closed set of inputs Transition accepts.
type Action interface {
	isAction()
}

// AddOption appends a new option with zero votes. The engine does not
// validate Text; callers trim and reject blank text before dispatching.
type AddOption struct {
	Text string
}

// CastVote increments the matching option's count. An unknown OptionID is
// a no-op, not an error.
type CastVote struct {
	OptionID int64
}

// Reset zeroes every option's count and the running total.
type Reset struct{}

func (AddOption) isAction() {}
func (CastVote) isAction()  {}
func (Reset) isAction()     {}
