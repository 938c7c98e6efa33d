package problemgen

import "github.com/abhisek/mathquiz/internal/difficulty"

// baseValidators always run before any caller-supplied validators. They
// guarantee the Question invariants.
var baseValidators = []Validator{
	&StructuralValidator{},
	&ChoicesValidator{},
}

// NewQuestion validates d and builds an immutable Question from it.
// The structural and choice checks always run first, followed by extra
// in order. The first failure is returned as a *ValidationError.
func NewQuestion(d Draft, extra ...Validator) (*Question, error) {
	for _, v := range baseValidators {
		if verr := v.Validate(&d); verr != nil {
			return nil, verr
		}
	}
	for _, v := range extra {
		if verr := v.Validate(&d); verr != nil {
			return nil, verr
		}
	}

	q := &Question{
		text:         d.Text,
		correctIndex: d.CorrectIndex,
		answer:       d.Answer,
		operator:     d.Operator,
		operands:     d.Operands,
	}
	copy(q.choices[:], d.Choices)
	return q, nil
}

// fallback is served when every generation attempt fails validation.
var fallback = mustNewQuestion(Draft{
	Text:         "What is 1 + 1?",
	Choices:      []string{"1", "2", "3", "0"},
	CorrectIndex: 1,
	Answer:       "2",
	Operator:     difficulty.OpAddition,
	Operands:     [2]int{1, 1},
})

// Fallback returns the fixed safe question "What is 1 + 1?".
func Fallback() *Question {
	return fallback
}

func mustNewQuestion(d Draft) *Question {
	q, err := NewQuestion(d)
	if err != nil {
		panic("problemgen: " + err.Error())
	}
	return q
}
