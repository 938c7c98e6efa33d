package difficulty

import (
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxOperand bounds every range end and divisor so that sums and products of
// drawn operands stay well inside int.
const MaxOperand = 1_000_000

// Operator identifies one of the four arithmetic operations a tier configures.
type Operator string

const (
	OpAddition       Operator = "addition"
	OpSubtraction    Operator = "subtraction"
	OpMultiplication Operator = "multiplication"
	OpDivision       Operator = "division"
)

// AllOperators returns all operators in display order.
func AllOperators() []Operator {
	return []Operator{
		OpAddition,
		OpSubtraction,
		OpMultiplication,
		OpDivision,
	}
}

// Symbol returns the glyph used for the operator in question prompts.
func (o Operator) Symbol() string {
	switch o {
	case OpAddition:
		return "+"
	case OpSubtraction:
		return "-"
	case OpMultiplication:
		return "×"
	case OpDivision:
		return "÷"
	default:
		return "?"
	}
}

// OperatorRange bounds the operands drawn for one operator. Both ends are
// inclusive. For division, Min and Max bound the quotient and Divisors
// lists the allowed divisors.
type OperatorRange struct {
	Min      int   `yaml:"min"`
	Max      int   `yaml:"max"`
	Divisors []int `yaml:"divisors,omitempty"`
}

// Tier is a named difficulty configuration bounding operands per operator.
type Tier struct {
	Name           string        `yaml:"name"`
	Addition       OperatorRange `yaml:"addition"`
	Subtraction    OperatorRange `yaml:"subtraction"`
	Multiplication OperatorRange `yaml:"multiplication"`
	Division       OperatorRange `yaml:"division"`
}

// Range returns the operand range configured for op.
func (t Tier) Range(op Operator) OperatorRange {
	switch op {
	case OpAddition:
		return t.Addition
	case OpSubtraction:
		return t.Subtraction
	case OpMultiplication:
		return t.Multiplication
	case OpDivision:
		return t.Division
	default:
		return OperatorRange{}
	}
}

// DisplayName returns the tier name with its first letter upper-cased.
func (t Tier) DisplayName() string {
	if t.Name == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(t.Name)
	return string(unicode.ToUpper(r)) + t.Name[size:]
}

// clone returns a copy that shares no slices with t.
func (t Tier) clone() Tier {
	t.Addition.Divisors = slices.Clone(t.Addition.Divisors)
	t.Subtraction.Divisors = slices.Clone(t.Subtraction.Divisors)
	t.Multiplication.Divisors = slices.Clone(t.Multiplication.Divisors)
	t.Division.Divisors = slices.Clone(t.Division.Divisors)
	return t
}

// normalizeName folds a tier name to its lookup key.
func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
