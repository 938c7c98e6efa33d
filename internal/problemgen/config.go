package problemgen

import "log"

// DefaultMaxAttempts is the number of drafts tried before serving the
// fallback question.
const DefaultMaxAttempts = 20

// Config controls the behavior of the RetryGenerator.
type Config struct {
	// Validators run on every draft after the built-in structural and
	// choice checks. They execute in order; the first failure stops the
	// pipeline.
	Validators []Validator

	// MaxAttempts is the number of drafts tried per question.
	MaxAttempts int

	// Logger receives rejected drafts and fallback notices. Nil disables
	// logging.
	Logger *log.Logger
}

// DefaultConfig returns a Config with the standard validator chain
// and recommended defaults.
func DefaultConfig() Config {
	return Config{
		Validators: []Validator{
			&MathCheckValidator{},
		},
		MaxAttempts: DefaultMaxAttempts,
	}
}
