package session

// Phase represents the current phase of a quiz session.
type Phase int

const (
	PhaseAwaitingNext   Phase = iota // Between questions; Advance is allowed
	PhaseQuestionActive              // A question is displayed, awaiting Submit
	PhaseFinished                    // All questions served; summary emitted
)

func (p Phase) String() string {
	switch p {
	case PhaseAwaitingNext:
		return "awaiting-next"
	case PhaseQuestionActive:
		return "question-active"
	case PhaseFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// Score counts answers within a session. Both counters only grow until the
// session is reset.
type Score struct {
	Correct int
	Wrong   int
}

// Answered returns the number of answered questions.
func (s Score) Answered() int {
	return s.Correct + s.Wrong
}
