package session

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/abhisek/mathquiz/internal/difficulty"
	"github.com/abhisek/mathquiz/internal/problemgen"
)

// DefaultTotal is the number of questions in a session.
const DefaultTotal = 10

// Options configures a new Session. Zero values select defaults.
type Options struct {
	// Tier is the starting tier name. Empty selects the set's default.
	Tier string

	// Total is the number of questions per session.
	Total int

	// Listener receives session events.
	Listener Listener

	// Effects is triggered on correct and wrong answers.
	Effects Effects
}

// Session is a single-player quiz state machine. It is not safe for
// concurrent use; each operation runs to completion before the next.
type Session struct {
	id       string
	gen      problemgen.Generator
	tiers    *difficulty.Set
	tier     difficulty.Tier
	total    int
	number   int
	score    Score
	active   *problemgen.Question
	phase    Phase
	listener Listener
	effects  Effects
}

// New creates a session in PhaseAwaitingNext. Call Advance to serve the
// first question.
func New(gen problemgen.Generator, tiers *difficulty.Set, opts Options) (*Session, error) {
	if gen == nil {
		return nil, fmt.Errorf("%w: generator is nil", ErrMissingDependency)
	}
	if tiers == nil {
		return nil, fmt.Errorf("%w: tier set is nil", ErrMissingDependency)
	}
	tier := tiers.Default()
	if opts.Tier != "" {
		t, err := tiers.Lookup(opts.Tier)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidDifficulty, err)
		}
		tier = t
	}
	if opts.Total <= 0 {
		opts.Total = DefaultTotal
	}
	if opts.Listener == nil {
		opts.Listener = NopListener{}
	}
	if opts.Effects == nil {
		opts.Effects = NopEffects{}
	}

	return &Session{
		id:       uuid.NewString(),
		gen:      gen,
		tiers:    tiers,
		tier:     tier,
		total:    opts.Total,
		number:   1,
		phase:    PhaseAwaitingNext,
		listener: opts.Listener,
		effects:  opts.Effects,
	}, nil
}

// ID returns the identifier of the current round. It changes on every
// reset or difficulty change.
func (s *Session) ID() string { return s.id }

// Phase returns the current phase.
func (s *Session) Phase() Phase { return s.phase }

// Score returns the current score.
func (s *Session) Score() Score { return s.score }

// QuestionNumber returns the number of the next question to be served,
// starting at 1. It exceeds Total once every question has been served.
func (s *Session) QuestionNumber() int { return s.number }

// Total returns the number of questions per session.
func (s *Session) Total() int { return s.total }

// Tier returns the current tier.
func (s *Session) Tier() difficulty.Tier { return s.tier }

// Tiers returns the configured tier set.
func (s *Session) Tiers() *difficulty.Set { return s.tiers }

// Active returns the question currently displayed, or nil before the first
// question and after the session finished.
func (s *Session) Active() *problemgen.Question { return s.active }

// Advance serves the next question, or finishes the session when every
// question has been served. Advancing a finished session re-emits its
// summary.
func (s *Session) Advance() error {
	if s.phase == PhaseQuestionActive {
		return ErrQuestionPending
	}

	if s.number > s.total {
		s.active = nil
		s.phase = PhaseFinished
		s.listener.Finished(BuildSummary(s))
		return nil
	}

	q := s.gen.Generate(s.tier)
	number := s.number
	s.active = q
	s.number++
	s.phase = PhaseQuestionActive

	s.listener.QuestionReady(QuestionReady{
		SessionID: s.id,
		Tier:      s.tier.Name,
		Number:    number,
		Total:     s.total,
		Prompt:    q.Text(),
		Choices:   q.Choices(),
	})
	return nil
}

// Submit answers the active question with the choice at index. Misuse
// (no active question, index out of range) returns an error wrapping
// ErrMisusedTransition and leaves the session unchanged.
func (s *Session) Submit(index int) (Outcome, error) {
	if s.phase != PhaseQuestionActive || s.active == nil {
		return Outcome{}, ErrNoActiveQuestion
	}
	if index < 0 || index >= problemgen.ChoiceCount {
		return Outcome{}, fmt.Errorf("%w: %d", ErrChoiceOutOfRange, index)
	}

	correct := s.active.IsCorrect(index)
	if correct {
		s.score.Correct++
	} else {
		s.score.Wrong++
	}
	s.phase = PhaseAwaitingNext

	out := Outcome{
		SessionID:    s.id,
		Number:       s.number - 1,
		Chosen:       index,
		Correct:      correct,
		CorrectIndex: s.active.CorrectIndex(),
		CorrectText:  s.active.Answer(),
		Score:        s.score,
		Last:         s.number > s.total,
	}
	s.listener.Answered(out)

	if correct {
		s.effects.Celebrate()
	} else {
		s.effects.Console()
	}
	return out, nil
}

// SetDifficulty switches to the named tier, restarts the session and serves
// its first question. Unknown tiers are rejected without changing state.
func (s *Session) SetDifficulty(name string) error {
	tier, err := s.tiers.Lookup(name)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDifficulty, err)
	}

	s.id = uuid.NewString()
	s.tier = tier
	s.number = 1
	s.score = Score{}
	s.active = nil
	s.phase = PhaseAwaitingNext

	s.listener.DifficultyChanged(DifficultyChange{SessionID: s.id, Tier: tier.Name})
	return s.Advance()
}

// Reset restarts the session on the current tier.
func (s *Session) Reset() error {
	return s.SetDifficulty(s.tier.Name)
}
