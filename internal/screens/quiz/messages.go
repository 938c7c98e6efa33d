package quiz

import "time"

// celebrationDuration is how long the mascot keeps its reaction.
const celebrationDuration = 1500 * time.Millisecond

// moodResetMsg returns the mascot to idle. Seq guards against a stale
// timer resetting a newer reaction.
type moodResetMsg struct {
	Seq int
}
