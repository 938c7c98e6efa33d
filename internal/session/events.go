package session

// QuestionReady is emitted when a new question is displayed.
type QuestionReady struct {
	SessionID string
	Tier      string
	Number    int // 1-based position within the session
	Total     int
	Prompt    string
	Choices   []string
}

// Outcome is emitted after an answer is submitted.
type Outcome struct {
	SessionID    string
	Number       int
	Chosen       int
	Correct      bool
	CorrectIndex int
	CorrectText  string
	Score        Score
	Last         bool // true when no questions remain
}

// DifficultyChange is emitted when the session switches or restarts a tier.
type DifficultyChange struct {
	SessionID string
	Tier      string
}

// Listener receives session events. Calls are synchronous and happen after
// the session state has been updated.
type Listener interface {
	QuestionReady(QuestionReady)
	Answered(Outcome)
	Finished(Summary)
	DifficultyChanged(DifficultyChange)
}

// NopListener ignores every event. Embed it to implement a subset.
type NopListener struct{}

func (NopListener) QuestionReady(QuestionReady)        {}
func (NopListener) Answered(Outcome)                   {}
func (NopListener) Finished(Summary)                   {}
func (NopListener) DifficultyChanged(DifficultyChange) {}

// Listeners fans events out to each listener in order.
type Listeners []Listener

func (ls Listeners) QuestionReady(e QuestionReady) {
	for _, l := range ls {
		l.QuestionReady(e)
	}
}

func (ls Listeners) Answered(e Outcome) {
	for _, l := range ls {
		l.Answered(e)
	}
}

func (ls Listeners) Finished(e Summary) {
	for _, l := range ls {
		l.Finished(e)
	}
}

func (ls Listeners) DifficultyChanged(e DifficultyChange) {
	for _, l := range ls {
		l.DifficultyChanged(e)
	}
}

// Effects is the optional presentation capability triggered on answers.
// Implementations must return immediately; any animation runs on its own.
type Effects interface {
	Celebrate()
	Console()
}

// NopEffects triggers nothing.
type NopEffects struct{}

func (NopEffects) Celebrate() {}
func (NopEffects) Console()   {}
