package problemgen

import (
	"fmt"
	"strings"
)

// maxTextLen bounds the prompt length.
const maxTextLen = 200

// StructuralValidator checks that the prompt is present, that there are
// exactly ChoiceCount choices, and that the correct index is in range.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(d *Draft) *ValidationError {
	if strings.TrimSpace(d.Text) == "" {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "question text is empty",
			Retryable: true,
		}
	}
	if len(d.Text) > maxTextLen {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("question text exceeds %d characters", maxTextLen),
			Retryable: true,
		}
	}
	if len(d.Choices) != ChoiceCount {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("expected %d choices, got %d", ChoiceCount, len(d.Choices)),
			Retryable: true,
		}
	}
	if d.CorrectIndex < 0 || d.CorrectIndex >= len(d.Choices) {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("correct index %d out of range [0, %d)", d.CorrectIndex, len(d.Choices)),
			Retryable: true,
		}
	}
	return nil
}
