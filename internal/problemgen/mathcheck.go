package problemgen

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

// MathCheckValidator independently recomputes the answer from the prompt
// text. Prompts that are not of the form "What is A op B?" pass through
// silently.
type MathCheckValidator struct{}

func (v *MathCheckValidator) Name() string { return "math-check" }

func (v *MathCheckValidator) Validate(d *Draft) *ValidationError {
	computed, err := computeAnswer(d.Text)
	if err != nil {
		if errors.Is(err, errNotComputable) {
			return nil
		}
		return &ValidationError{
			Validator: v.Name(),
			Message:   err.Error(),
			Retryable: true,
		}
	}
	if computed != d.Answer {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("computed %q but answer is %q", computed, d.Answer),
			Retryable: true,
		}
	}
	return nil
}

var promptRe = regexp.MustCompile(`^What is (-?\d+) ([+\-×÷]) (-?\d+)\?$`)

var errNotComputable = errors.New("not computable")

// computeAnswer extracts the expression from a prompt and evaluates it.
func computeAnswer(text string) (string, error) {
	m := promptRe.FindStringSubmatch(text)
	if m == nil {
		return "", errNotComputable
	}
	a, err := strconv.Atoi(m[1])
	if err != nil {
		return "", errNotComputable
	}
	b, err := strconv.Atoi(m[3])
	if err != nil {
		return "", errNotComputable
	}

	switch m[2] {
	case "+":
		return strconv.Itoa(a + b), nil
	case "-":
		return strconv.Itoa(a - b), nil
	case "×":
		return strconv.Itoa(a * b), nil
	case "÷":
		if b == 0 {
			return "", fmt.Errorf("division by zero in %q", text)
		}
		if a%b != 0 {
			return "", fmt.Errorf("%d ÷ %d leaves a remainder", a, b)
		}
		return strconv.Itoa(a / b), nil
	}
	return "", errNotComputable
}
