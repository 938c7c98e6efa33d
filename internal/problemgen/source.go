package problemgen

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"strconv"

	"github.com/abhisek/mathquiz/internal/difficulty"
)

// Source produces question drafts for a tier.
type Source interface {
	Draft(tier difficulty.Tier) Draft
}

// ArithmeticSource drafts random arithmetic questions with plausible
// distractors derived from the operands.
type ArithmeticSource struct {
	rng *rand.Rand
}

var _ Source = (*ArithmeticSource)(nil)

// NewArithmeticSource creates a source drawing from rng. A nil rng is
// replaced by a randomly seeded one.
func NewArithmeticSource(rng *rand.Rand) *ArithmeticSource {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &ArithmeticSource{rng: rng}
}

// NewSeededSource creates a deterministic source from seed.
func NewSeededSource(seed uint64) *ArithmeticSource {
	return NewArithmeticSource(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

// Draft picks an operator uniformly at random and drafts a question for it.
func (s *ArithmeticSource) Draft(tier difficulty.Tier) Draft {
	ops := difficulty.AllOperators()
	return s.DraftFor(tier, ops[s.rng.IntN(len(ops))])
}

// DraftFor drafts a question for a specific operator.
func (s *ArithmeticSource) DraftFor(tier difficulty.Tier, op difficulty.Operator) Draft {
	r := tier.Range(op)

	var a, b, ans int
	var distractors [3]int

	switch op {
	case difficulty.OpAddition:
		a, b = s.draw(r), s.draw(r)
		ans = a + b
		distractors = [3]int{ans + 1, ans - 1, ans + 2}

	case difficulty.OpSubtraction:
		a, b = s.draw(r), s.draw(r)
		if b > a {
			a, b = b, a
		}
		ans = a - b
		distractors = [3]int{ans + 1, ans - 1, a + b}

	case difficulty.OpMultiplication:
		a, b = s.draw(r), s.draw(r)
		ans = a * b
		distractors = [3]int{ans + 1, ans - 1, a + b}

	case difficulty.OpDivision:
		b = r.Divisors[s.rng.IntN(len(r.Divisors))]
		ans = s.draw(r)
		a = b * ans
		distractors = [3]int{ans + 1, ans - 1, b}
	}

	return s.compose(op, a, b, ans, distractors)
}

// draw returns a uniform integer in [r.Min, r.Max].
func (s *ArithmeticSource) draw(r difficulty.OperatorRange) int {
	return r.Min + s.rng.IntN(r.Max-r.Min+1)
}

// compose renders the prompt and shuffles the answer among its distractors.
// Colliding distractors are kept as-is; validation rejects the draft.
func (s *ArithmeticSource) compose(op difficulty.Operator, a, b, ans int, distractors [3]int) Draft {
	answer := strconv.Itoa(ans)
	choices := []string{
		answer,
		strconv.Itoa(distractors[0]),
		strconv.Itoa(distractors[1]),
		strconv.Itoa(distractors[2]),
	}
	s.rng.Shuffle(len(choices), func(i, j int) {
		choices[i], choices[j] = choices[j], choices[i]
	})

	return Draft{
		Text:         fmt.Sprintf("What is %d %s %d?", a, op.Symbol(), b),
		Choices:      choices,
		CorrectIndex: slices.Index(choices, answer),
		Answer:       answer,
		Operator:     op,
		Operands:     [2]int{a, b},
	}
}
