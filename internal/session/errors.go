package session

import (
	"errors"
	"fmt"
)

var (
	// ErrMisusedTransition classifies operations the caller should not have
	// attempted in the current phase. They never mutate the session.
	ErrMisusedTransition = errors.New("misused session transition")

	// ErrNoActiveQuestion is returned by Submit when no question awaits an answer.
	ErrNoActiveQuestion = fmt.Errorf("%w: no active question", ErrMisusedTransition)

	// ErrChoiceOutOfRange is returned by Submit for an index outside the choices.
	ErrChoiceOutOfRange = fmt.Errorf("%w: choice index out of range", ErrMisusedTransition)

	// ErrQuestionPending is returned by Advance while a question is unanswered.
	ErrQuestionPending = fmt.Errorf("%w: current question has not been answered", ErrMisusedTransition)

	// ErrInvalidDifficulty is returned by SetDifficulty for an unknown tier.
	ErrInvalidDifficulty = errors.New("invalid difficulty")

	// ErrMissingDependency is returned by New when the generator or tier set is nil.
	ErrMissingDependency = errors.New("missing session dependency")
)
