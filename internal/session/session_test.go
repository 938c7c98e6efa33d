package session

import (
	"bytes"
	"errors"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mathquiz/internal/difficulty"
	"github.com/abhisek/mathquiz/internal/problemgen"
)

// fixedGenerator serves the same question every time.
type fixedGenerator struct {
	q     *problemgen.Question
	tiers []string
}

func (g *fixedGenerator) Generate(tier difficulty.Tier) *problemgen.Question {
	g.tiers = append(g.tiers, tier.Name)
	return g.q
}

func newFixedGenerator(t *testing.T) *fixedGenerator {
	t.Helper()
	q, err := problemgen.NewQuestion(problemgen.Draft{
		Text:         "What is 3 + 4?",
		Choices:      []string{"8", "6", "7", "9"},
		CorrectIndex: 2,
		Answer:       "7",
		Operator:     difficulty.OpAddition,
		Operands:     [2]int{3, 4},
	})
	require.NoError(t, err)
	return &fixedGenerator{q: q}
}

// recorder captures every event in order.
type recorder struct {
	ready    []QuestionReady
	answered []Outcome
	finished []Summary
	changed  []DifficultyChange
	sequence []string
}

func (r *recorder) QuestionReady(e QuestionReady) {
	r.ready = append(r.ready, e)
	r.sequence = append(r.sequence, "ready")
}

func (r *recorder) Answered(e Outcome) {
	r.answered = append(r.answered, e)
	r.sequence = append(r.sequence, "answered")
}

func (r *recorder) Finished(e Summary) {
	r.finished = append(r.finished, e)
	r.sequence = append(r.sequence, "finished")
}

func (r *recorder) DifficultyChanged(e DifficultyChange) {
	r.changed = append(r.changed, e)
	r.sequence = append(r.sequence, "difficulty")
}

type effectsCounter struct {
	celebrations int
	consolations int
}

func (e *effectsCounter) Celebrate() { e.celebrations++ }
func (e *effectsCounter) Console()   { e.consolations++ }

func newTestSession(t *testing.T) (*Session, *recorder, *fixedGenerator) {
	t.Helper()
	gen := newFixedGenerator(t)
	rec := &recorder{}
	s, err := New(gen, difficulty.Defaults(), Options{Listener: rec})
	require.NoError(t, err)
	return s, rec, gen
}

func TestNew_Defaults(t *testing.T) {
	s, _, _ := newTestSession(t)

	assert.Equal(t, PhaseAwaitingNext, s.Phase())
	assert.Equal(t, 1, s.QuestionNumber())
	assert.Equal(t, DefaultTotal, s.Total())
	assert.Equal(t, "easy", s.Tier().Name)
	assert.Equal(t, Score{}, s.Score())
	assert.Nil(t, s.Active())
	assert.NotEmpty(t, s.ID())
}

func TestNew_UnknownTier(t *testing.T) {
	_, err := New(newFixedGenerator(t), difficulty.Defaults(), Options{Tier: "nightmare"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidDifficulty)
	assert.ErrorIs(t, err, difficulty.ErrUnknownTier)
}

func TestNew_NilDependencies(t *testing.T) {
	_, err := New(nil, difficulty.Defaults(), Options{})
	assert.ErrorIs(t, err, ErrMissingDependency)

	_, err = New(newFixedGenerator(t), nil, Options{})
	assert.ErrorIs(t, err, ErrMissingDependency)
}

func TestAdvance_EmitsQuestionReady(t *testing.T) {
	s, rec, gen := newTestSession(t)

	require.NoError(t, s.Advance())

	require.Len(t, rec.ready, 1)
	e := rec.ready[0]
	assert.Equal(t, 1, e.Number)
	assert.Equal(t, 10, e.Total)
	assert.Equal(t, "What is 3 + 4?", e.Prompt)
	assert.Equal(t, []string{"8", "6", "7", "9"}, e.Choices)
	assert.Equal(t, "easy", e.Tier)
	assert.Equal(t, s.ID(), e.SessionID)

	assert.Equal(t, PhaseQuestionActive, s.Phase())
	assert.Equal(t, 2, s.QuestionNumber())
	assert.Same(t, gen.q, s.Active())
	assert.Equal(t, []string{"easy"}, gen.tiers)
}

func TestAdvance_RejectedWhileQuestionActive(t *testing.T) {
	s, rec, _ := newTestSession(t)
	require.NoError(t, s.Advance())

	err := s.Advance()
	assert.ErrorIs(t, err, ErrQuestionPending)
	assert.ErrorIs(t, err, ErrMisusedTransition)
	assert.Len(t, rec.ready, 1)
	assert.Equal(t, 2, s.QuestionNumber())
}

func TestSubmit_Correct(t *testing.T) {
	s, rec, _ := newTestSession(t)
	fx := &effectsCounter{}
	s.effects = fx
	require.NoError(t, s.Advance())

	out, err := s.Submit(2)
	require.NoError(t, err)

	assert.True(t, out.Correct)
	assert.Equal(t, 2, out.CorrectIndex)
	assert.Equal(t, "7", out.CorrectText)
	assert.Equal(t, 1, out.Number)
	assert.Equal(t, Score{Correct: 1}, s.Score())
	assert.Equal(t, PhaseAwaitingNext, s.Phase())
	assert.Equal(t, 1, fx.celebrations)
	assert.Equal(t, 0, fx.consolations)
	require.Len(t, rec.answered, 1)
	assert.Equal(t, out, rec.answered[0])
}

func TestSubmit_Wrong(t *testing.T) {
	s, rec, _ := newTestSession(t)
	fx := &effectsCounter{}
	s.effects = fx
	require.NoError(t, s.Advance())

	out, err := s.Submit(0)
	require.NoError(t, err)

	assert.False(t, out.Correct)
	assert.Equal(t, 0, out.Chosen)
	assert.Equal(t, 2, out.CorrectIndex)
	assert.Equal(t, "7", out.CorrectText)
	assert.Equal(t, Score{Wrong: 1}, s.Score())
	assert.Equal(t, 1, fx.consolations)
	assert.Len(t, rec.answered, 1)
}

func TestSubmit_TwiceIsNoOp(t *testing.T) {
	s, rec, _ := newTestSession(t)
	require.NoError(t, s.Advance())
	_, err := s.Submit(2)
	require.NoError(t, err)
	before := s.Score()

	_, err = s.Submit(2)
	assert.ErrorIs(t, err, ErrNoActiveQuestion)
	assert.ErrorIs(t, err, ErrMisusedTransition)
	assert.Equal(t, before, s.Score())
	assert.Len(t, rec.answered, 1)
}

func TestSubmit_BeforeFirstQuestion(t *testing.T) {
	s, rec, _ := newTestSession(t)

	_, err := s.Submit(0)
	assert.ErrorIs(t, err, ErrNoActiveQuestion)
	assert.Equal(t, Score{}, s.Score())
	assert.Equal(t, PhaseAwaitingNext, s.Phase())
	assert.Empty(t, rec.answered)
}

func TestSubmit_IndexOutOfRange(t *testing.T) {
	s, rec, _ := newTestSession(t)
	require.NoError(t, s.Advance())

	for _, idx := range []int{-1, 4, 100} {
		_, err := s.Submit(idx)
		assert.ErrorIs(t, err, ErrChoiceOutOfRange, "index %d", idx)
	}
	assert.Equal(t, PhaseQuestionActive, s.Phase())
	assert.Equal(t, Score{}, s.Score())
	assert.Empty(t, rec.answered)

	_, err := s.Submit(2)
	assert.NoError(t, err, "a valid submit still works after rejected ones")
}

func TestScenario_TenCorrectThenFinished(t *testing.T) {
	s, rec, _ := newTestSession(t)

	for i := 0; i < 10; i++ {
		require.NoError(t, s.Advance())
		out, err := s.Submit(s.Active().CorrectIndex())
		require.NoError(t, err)
		assert.Equal(t, i == 9, out.Last, "question %d", i+1)
	}
	require.NoError(t, s.Advance())

	require.Len(t, rec.finished, 1)
	sum := rec.finished[0]
	assert.Equal(t, 10, sum.Correct)
	assert.Equal(t, 0, sum.Wrong)
	assert.Equal(t, 10, sum.Total)
	assert.InDelta(t, 1.0, sum.Accuracy, 1e-9)
	assert.Equal(t, "You answered 10 correct and 0 wrong out of 10.", sum.Text())

	assert.Equal(t, PhaseFinished, s.Phase())
	assert.Nil(t, s.Active())
	assert.Len(t, rec.ready, 10)
}

func TestScenario_MixedAnswers(t *testing.T) {
	s, rec, _ := newTestSession(t)

	for i := 0; i < 10; i++ {
		require.NoError(t, s.Advance())
		choice := s.Active().CorrectIndex()
		if i%3 == 0 {
			choice = (choice + 1) % problemgen.ChoiceCount
		}
		_, err := s.Submit(choice)
		require.NoError(t, err)
	}
	require.NoError(t, s.Advance())

	require.Len(t, rec.finished, 1)
	assert.Equal(t, 6, rec.finished[0].Correct)
	assert.Equal(t, 4, rec.finished[0].Wrong)
}

func TestFinished_SubmitRejectedAndAdvanceRepeatsSummary(t *testing.T) {
	gen := newFixedGenerator(t)
	rec := &recorder{}
	s, err := New(gen, difficulty.Defaults(), Options{Listener: rec, Total: 1})
	require.NoError(t, err)

	require.NoError(t, s.Advance())
	_, err = s.Submit(1)
	require.NoError(t, err)
	require.NoError(t, s.Advance())
	require.Equal(t, PhaseFinished, s.Phase())

	_, err = s.Submit(2)
	assert.ErrorIs(t, err, ErrNoActiveQuestion)

	require.NoError(t, s.Advance())
	require.Len(t, rec.finished, 2)
	assert.Equal(t, rec.finished[0], rec.finished[1])
	assert.Len(t, gen.tiers, 1, "no question generated after finishing")
}

func TestSetDifficulty_ResetsMidSession(t *testing.T) {
	s, rec, gen := newTestSession(t)
	for i := 0; i < 3; i++ {
		require.NoError(t, s.Advance())
		_, err := s.Submit(i % 4)
		require.NoError(t, err)
	}
	require.NoError(t, s.Advance())
	oldID := s.ID()

	require.NoError(t, s.SetDifficulty("hard"))

	assert.Equal(t, "hard", s.Tier().Name)
	assert.Equal(t, Score{}, s.Score())
	assert.Equal(t, 2, s.QuestionNumber(), "question 1 of the new session is already served")
	assert.Equal(t, PhaseQuestionActive, s.Phase())
	assert.NotEqual(t, oldID, s.ID())

	require.Len(t, rec.changed, 1)
	assert.Equal(t, "hard", rec.changed[0].Tier)
	last := rec.ready[len(rec.ready)-1]
	assert.Equal(t, 1, last.Number)
	assert.Equal(t, "hard", last.Tier)
	assert.Equal(t, "hard", gen.tiers[len(gen.tiers)-1])
	assert.Equal(t, []string{"difficulty", "ready"}, rec.sequence[len(rec.sequence)-2:])
}

func TestSetDifficulty_Unknown(t *testing.T) {
	s, rec, _ := newTestSession(t)
	require.NoError(t, s.Advance())
	_, err := s.Submit(2)
	require.NoError(t, err)
	require.NoError(t, s.Advance())

	id, score, number, active := s.ID(), s.Score(), s.QuestionNumber(), s.Active()

	err = s.SetDifficulty("nonexistent")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidDifficulty))

	assert.Equal(t, "easy", s.Tier().Name)
	assert.Equal(t, id, s.ID())
	assert.Equal(t, score, s.Score())
	assert.Equal(t, number, s.QuestionNumber())
	assert.Same(t, active, s.Active())
	assert.Equal(t, PhaseQuestionActive, s.Phase())
	assert.Empty(t, rec.changed)
}

func TestReset_RestartsSameTier(t *testing.T) {
	s, rec, _ := newTestSession(t)
	require.NoError(t, s.SetDifficulty("medium"))
	_, err := s.Submit(0)
	require.NoError(t, err)

	require.NoError(t, s.Reset())

	assert.Equal(t, "medium", s.Tier().Name)
	assert.Equal(t, Score{}, s.Score())
	assert.Equal(t, PhaseQuestionActive, s.Phase())
	require.Len(t, rec.changed, 2)
	assert.Equal(t, "medium", rec.changed[1].Tier)
}

func TestReset_AfterFinished(t *testing.T) {
	gen := newFixedGenerator(t)
	s, err := New(gen, difficulty.Defaults(), Options{Total: 1})
	require.NoError(t, err)
	require.NoError(t, s.Advance())
	_, err = s.Submit(2)
	require.NoError(t, err)
	require.NoError(t, s.Advance())
	require.Equal(t, PhaseFinished, s.Phase())

	require.NoError(t, s.Reset())
	assert.Equal(t, PhaseQuestionActive, s.Phase())
	assert.NotNil(t, s.Active())
}

func TestSession_WithRealGenerator(t *testing.T) {
	gen := problemgen.New(problemgen.NewSeededSource(2024), problemgen.DefaultConfig())
	rec := &recorder{}
	s, err := New(gen, difficulty.Defaults(), Options{Listener: rec, Tier: "hard"})
	require.NoError(t, err)

	for s.Phase() != PhaseFinished {
		require.NoError(t, s.Advance())
		if s.Phase() == PhaseQuestionActive {
			_, err := s.Submit(s.Active().CorrectIndex())
			require.NoError(t, err)
		}
	}
	require.Len(t, rec.finished, 1)
	assert.Equal(t, 10, rec.finished[0].Correct)
	assert.Equal(t, "hard", rec.finished[0].Tier)
}

func TestWithLogging(t *testing.T) {
	var buf bytes.Buffer
	rec := &recorder{}
	l := WithLogging(rec, log.New(&buf, "", 0))
	s, err := New(newFixedGenerator(t), difficulty.Defaults(), Options{Listener: l})
	require.NoError(t, err)

	require.NoError(t, s.Advance())
	_, err = s.Submit(2)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "session="+s.ID())
	assert.Contains(t, out, `prompt="What is 3 + 4?"`)
	assert.Contains(t, out, "result=correct")
	assert.Len(t, rec.ready, 1, "events still reach the inner listener")
	assert.Len(t, rec.answered, 1)
}

func TestWithLogging_NilLogger(t *testing.T) {
	rec := &recorder{}
	assert.Same(t, rec, WithLogging(rec, nil))
	assert.Equal(t, NopListener{}, WithLogging(nil, nil))
}

func TestListeners_FanOut(t *testing.T) {
	a, b := &recorder{}, &recorder{}
	s, err := New(newFixedGenerator(t), difficulty.Defaults(), Options{Listener: Listeners{a, b}})
	require.NoError(t, err)

	require.NoError(t, s.SetDifficulty("medium"))

	for _, r := range []*recorder{a, b} {
		assert.Equal(t, []string{"difficulty", "ready"}, r.sequence)
	}
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "awaiting-next", PhaseAwaitingNext.String())
	assert.Equal(t, "question-active", PhaseQuestionActive.String())
	assert.Equal(t, "finished", PhaseFinished.String())
	assert.Equal(t, "unknown", Phase(42).String())
}
