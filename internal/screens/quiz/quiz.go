package quiz

import (
	"log"
	"strconv"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathquiz/internal/difficulty"
	"github.com/abhisek/mathquiz/internal/problemgen"
	"github.com/abhisek/mathquiz/internal/router"
	"github.com/abhisek/mathquiz/internal/screen"
	"github.com/abhisek/mathquiz/internal/screens/summary"
	"github.com/abhisek/mathquiz/internal/session"
	"github.com/abhisek/mathquiz/internal/ui/components"
	"github.com/abhisek/mathquiz/internal/ui/layout"
)

// Options configures a quiz screen.
type Options struct {
	// Tier is the starting level. Empty selects the default tier.
	Tier string

	// Total is the number of questions per round.
	Total int

	// Logger receives session events. Nil disables logging.
	Logger *log.Logger
}

// QuizScreen drives a session.Session from the keyboard. It is the
// session's Listener and Effects: the session reports every state change
// back to the screen, which only renders what it was told.
type QuizScreen struct {
	sess *session.Session
	keys keyMap

	question *session.QuestionReady
	choices  components.MultiChoice
	outcome  *session.Outcome
	finished *session.Summary

	mood    components.MascotMood
	moodSeq int
	errMsg  string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.StatusProvider = (*QuizScreen)(nil)
var _ session.Listener = (*QuizScreen)(nil)
var _ session.Effects = (*QuizScreen)(nil)

// New creates a quiz screen over a fresh session. The first question is
// served by Init.
func New(gen problemgen.Generator, tiers *difficulty.Set, opts Options) (*QuizScreen, error) {
	s := &QuizScreen{keys: defaultKeyMap()}
	sess, err := session.New(gen, tiers, session.Options{
		Tier:     opts.Tier,
		Total:    opts.Total,
		Listener: session.WithLogging(s, opts.Logger),
		Effects:  s,
	})
	if err != nil {
		return nil, err
	}
	s.sess = sess
	return s, nil
}

// Session exposes the underlying session.
func (s *QuizScreen) Session() *session.Session {
	return s.sess
}

func (s *QuizScreen) Init() tea.Cmd {
	if s.sess.Phase() == session.PhaseAwaitingNext && s.sess.Active() == nil {
		return s.advance()
	}
	return nil
}

func (s *QuizScreen) Title() string {
	return "Quiz"
}

func (s *QuizScreen) Status() layout.Status {
	sc := s.sess.Score()
	return layout.Status{
		Level:   s.sess.Tier().DisplayName(),
		Correct: sc.Correct,
		Wrong:   sc.Wrong,
	}
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	var hints []layout.KeyHint
	switch s.sess.Phase() {
	case session.PhaseQuestionActive:
		hints = append(hints, hint(s.keys.Choice), layout.KeyHint{Key: "↑↓", Description: "Move"}, hint(s.keys.Submit))
	case session.PhaseAwaitingNext:
		hints = append(hints, hint(s.keys.Next))
	case session.PhaseFinished:
		hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Results"})
	}
	return append(hints,
		hint(s.keys.Difficulty),
		hint(s.keys.Reset),
		layout.KeyHint{Key: "Esc", Description: "Home"},
	)
}

func hint(b key.Binding) layout.KeyHint {
	h := b.Help()
	return layout.KeyHint{Key: h.Key, Description: h.Desc}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		return s, s.handleKey(msg)

	case summary.PlayAgainMsg:
		return s, s.reset()

	case moodResetMsg:
		if msg.Seq == s.moodSeq {
			s.mood = components.MascotIdle
		}
		return s, nil
	}
	return s, nil
}

func (s *QuizScreen) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	switch {
	case key.Matches(msg, s.keys.Difficulty):
		return s.cycleDifficulty()
	case key.Matches(msg, s.keys.Reset):
		return s.reset()
	}

	switch s.sess.Phase() {
	case session.PhaseQuestionActive:
		switch {
		case key.Matches(msg, s.keys.Choice):
			i, _ := strconv.Atoi(msg.String())
			return s.submit(i - 1)
		case key.Matches(msg, s.keys.Up):
			s.choices.Up()
		case key.Matches(msg, s.keys.Down):
			s.choices.Down()
		case key.Matches(msg, s.keys.Submit):
			return s.submit(s.choices.Selected)
		}

	case session.PhaseAwaitingNext:
		if key.Matches(msg, s.keys.Next) {
			return s.advance()
		}

	case session.PhaseFinished:
		if key.Matches(msg, s.keys.Next) && s.finished != nil {
			return s.showSummary()
		}
	}
	return nil
}

// advance serves the next question and opens the summary once the round
// is over.
func (s *QuizScreen) advance() tea.Cmd {
	if err := s.sess.Advance(); err != nil {
		s.errMsg = err.Error()
		return nil
	}
	s.errMsg = ""
	if s.sess.Phase() == session.PhaseFinished {
		return s.showSummary()
	}
	return nil
}

func (s *QuizScreen) submit(index int) tea.Cmd {
	if _, err := s.sess.Submit(index); err != nil {
		s.errMsg = err.Error()
		return nil
	}
	s.errMsg = ""
	seq := s.moodSeq
	return tea.Tick(celebrationDuration, func(time.Time) tea.Msg {
		return moodResetMsg{Seq: seq}
	})
}

func (s *QuizScreen) reset() tea.Cmd {
	if err := s.sess.Reset(); err != nil {
		s.errMsg = err.Error()
	}
	return nil
}

// cycleDifficulty restarts the round on the next tier in display order.
func (s *QuizScreen) cycleDifficulty() tea.Cmd {
	names := s.sess.Tiers().Names()
	next := names[0]
	for i, n := range names {
		if n == s.sess.Tier().Name {
			next = names[(i+1)%len(names)]
			break
		}
	}
	if err := s.sess.SetDifficulty(next); err != nil {
		s.errMsg = err.Error()
	}
	return nil
}

func (s *QuizScreen) showSummary() tea.Cmd {
	sum := *s.finished
	level := s.sess.Tier().DisplayName()
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: summary.New(sum, level)}
	}
}

// QuestionReady implements session.Listener.
func (s *QuizScreen) QuestionReady(e session.QuestionReady) {
	s.question = &e
	s.choices = components.NewMultiChoice(e.Choices)
	s.outcome = nil
	s.finished = nil
}

// Answered implements session.Listener.
func (s *QuizScreen) Answered(o session.Outcome) {
	s.outcome = &o
	s.choices.Reveal(o.Chosen, o.CorrectIndex)
}

// Finished implements session.Listener.
func (s *QuizScreen) Finished(sum session.Summary) {
	s.finished = &sum
}

// DifficultyChanged implements session.Listener.
func (s *QuizScreen) DifficultyChanged(session.DifficultyChange) {
	s.question = nil
	s.outcome = nil
	s.finished = nil
	s.mood = components.MascotIdle
}

// Celebrate implements session.Effects.
func (s *QuizScreen) Celebrate() {
	s.mood = components.MascotCelebrating
	s.moodSeq++
}

// Console implements session.Effects.
func (s *QuizScreen) Console() {
	s.mood = components.MascotConsoling
	s.moodSeq++
}
