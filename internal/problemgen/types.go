package problemgen

import (
	"slices"

	"github.com/abhisek/mathquiz/internal/difficulty"
)

// ChoiceCount is the number of answer choices on every question.
const ChoiceCount = 4

// Draft is an unvalidated question candidate. Drafts are turned into
// Questions only through NewQuestion.
type Draft struct {
	// Text is the question prompt, e.g. "What is 7 × 8?".
	Text string

	// Choices holds the answer options in display order.
	Choices []string

	// CorrectIndex is the position of Answer within Choices.
	// -1 when the answer is missing from Choices.
	CorrectIndex int

	// Answer is the canonical correct answer text.
	Answer string

	// Operator and Operands record how the question was built.
	Operator difficulty.Operator
	Operands [2]int
}

// Question is a validated multiple-choice arithmetic question. It is
// immutable; accessors return copies.
type Question struct {
	text         string
	choices      [ChoiceCount]string
	correctIndex int
	answer       string
	operator     difficulty.Operator
	operands     [2]int
}

// Text returns the question prompt.
func (q *Question) Text() string { return q.text }

// Choices returns the four answer choices in display order.
func (q *Question) Choices() []string { return slices.Clone(q.choices[:]) }

// CorrectIndex returns the 0-based index of the correct choice.
func (q *Question) CorrectIndex() int { return q.correctIndex }

// Answer returns the canonical correct answer text.
func (q *Question) Answer() string { return q.answer }

// Operator returns the arithmetic operator the question exercises.
func (q *Question) Operator() difficulty.Operator { return q.operator }

// Operands returns the left and right operands shown in the prompt.
func (q *Question) Operands() (int, int) { return q.operands[0], q.operands[1] }

// IsCorrect reports whether index selects the correct choice.
func (q *Question) IsCorrect(index int) bool { return index == q.correctIndex }
