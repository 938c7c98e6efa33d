package problemgen

import (
	"errors"
	"fmt"

	"github.com/abhisek/mathquiz/internal/difficulty"
)

// ErrGenerationExhausted is reported when every attempt failed validation.
var ErrGenerationExhausted = errors.New("question generation exhausted")

// Generator produces multiple-choice arithmetic questions.
type Generator interface {
	// Generate returns a validated question for the tier. It never fails;
	// when no valid question can be drafted the fallback question is
	// returned instead.
	Generate(tier difficulty.Tier) *Question
}

// RetryGenerator implements Generator by drafting from a Source until a
// draft passes validation, up to Config.MaxAttempts times.
type RetryGenerator struct {
	source Source
	config Config
}

var _ Generator = (*RetryGenerator)(nil)

// New creates a new RetryGenerator with the given source and config.
func New(source Source, cfg Config) *RetryGenerator {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = DefaultMaxAttempts
	}
	return &RetryGenerator{source: source, config: cfg}
}

// Generate returns the first valid question, or Fallback() when all
// attempts are exhausted.
func (g *RetryGenerator) Generate(tier difficulty.Tier) *Question {
	q, err := g.TryGenerate(tier)
	if err != nil {
		g.logf("%v; serving fallback question", err)
		return Fallback()
	}
	return q
}

// TryGenerate is Generate without the fallback. The returned error wraps
// ErrGenerationExhausted.
func (g *RetryGenerator) TryGenerate(tier difficulty.Tier) (*Question, error) {
	var lastErr error
	attempts := 0
	for attempts < g.config.MaxAttempts {
		attempts++
		d := g.source.Draft(tier)
		q, err := NewQuestion(d, g.config.Validators...)
		if err == nil {
			return q, nil
		}
		lastErr = err
		g.logf("tier %s: rejected draft %q (attempt %d/%d): %v", tier.Name, d.Text, attempts, g.config.MaxAttempts, err)

		var verr *ValidationError
		if errors.As(err, &verr) && !verr.Retryable {
			break
		}
	}
	return nil, fmt.Errorf("%w: tier %s after %d attempts: %v", ErrGenerationExhausted, tier.Name, attempts, lastErr)
}

func (g *RetryGenerator) logf(format string, args ...any) {
	if g.config.Logger != nil {
		g.config.Logger.Printf(format, args...)
	}
}
