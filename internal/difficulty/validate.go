package difficulty

import (
	"fmt"
	"strings"
)

// validateTiers performs all structural checks on the given tiers.
// Returns a combined error describing all problems found, or nil if valid.
func validateTiers(tiers []Tier) error {
	var errs []string

	if len(tiers) == 0 {
		errs = append(errs, "no tiers configured")
	}

	seen := make(map[string]bool, len(tiers))
	for i, t := range tiers {
		if t.Name == "" {
			errs = append(errs, fmt.Sprintf("tier %d: name is empty", i))
			continue
		}
		if seen[t.Name] {
			errs = append(errs, fmt.Sprintf("duplicate tier name: %q", t.Name))
		}
		seen[t.Name] = true
	}

	for _, t := range tiers {
		for _, op := range AllOperators() {
			r := t.Range(op)
			prefix := fmt.Sprintf("tier %q %s", t.Name, op)
			if r.Max < r.Min {
				errs = append(errs, fmt.Sprintf("%s: max must be >= min, got min=%d max=%d", prefix, r.Min, r.Max))
			}
			if r.Min < 0 {
				errs = append(errs, fmt.Sprintf("%s: min must be >= 0, got %d", prefix, r.Min))
			}
			if r.Max > MaxOperand {
				errs = append(errs, fmt.Sprintf("%s: max must be <= %d, got %d", prefix, MaxOperand, r.Max))
			}
		}

		if len(t.Division.Divisors) == 0 {
			errs = append(errs, fmt.Sprintf("tier %q division: divisors must not be empty", t.Name))
		}
		for _, d := range t.Division.Divisors {
			if d <= 0 {
				errs = append(errs, fmt.Sprintf("tier %q division: divisor must be > 0, got %d", t.Name, d))
			}
			if d > MaxOperand {
				errs = append(errs, fmt.Sprintf("tier %q division: divisor must be <= %d, got %d", t.Name, MaxOperand, d))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("tier validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
