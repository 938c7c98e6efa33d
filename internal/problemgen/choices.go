package problemgen

import (
	"fmt"
	"strings"
)

// ChoicesValidator checks that all choices are non-empty and pairwise
// distinct, and that the choice at the correct index is the answer.
// Distractor collisions are reported as retryable.
type ChoicesValidator struct{}

func (v *ChoicesValidator) Name() string { return "choices" }

func (v *ChoicesValidator) Validate(d *Draft) *ValidationError {
	if strings.TrimSpace(d.Answer) == "" {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "answer is empty",
			Retryable: true,
		}
	}

	seen := make(map[string]int, len(d.Choices))
	for i, c := range d.Choices {
		if strings.TrimSpace(c) == "" {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("choice %d is empty", i),
				Retryable: true,
			}
		}
		if j, dup := seen[c]; dup {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("choices %d and %d are both %q", j, i, c),
				Retryable: true,
			}
		}
		seen[c] = i
	}

	if d.Choices[d.CorrectIndex] != d.Answer {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("choice at index %d is %q, answer is %q", d.CorrectIndex, d.Choices[d.CorrectIndex], d.Answer),
			Retryable: true,
		}
	}
	return nil
}
