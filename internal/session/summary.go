package session

import "fmt"

// Summary holds the final result of a session.
type Summary struct {
	SessionID string
	Tier      string
	Correct   int
	Wrong     int
	Total     int
	Accuracy  float64
}

// Text returns the end-of-quiz sentence shown to the player.
func (s Summary) Text() string {
	return fmt.Sprintf("You answered %d correct and %d wrong out of %d.", s.Correct, s.Wrong, s.Total)
}

// BuildSummary creates a Summary from the current session state.
func BuildSummary(s *Session) Summary {
	var accuracy float64
	if s.total > 0 {
		accuracy = float64(s.score.Correct) / float64(s.total)
	}
	return Summary{
		SessionID: s.id,
		Tier:      s.tier.Name,
		Correct:   s.score.Correct,
		Wrong:     s.score.Wrong,
		Total:     s.total,
		Accuracy:  accuracy,
	}
}
