package difficulty

import (
	"errors"
	"fmt"
)

// ErrUnknownTier is returned when a tier name is not configured.
var ErrUnknownTier = errors.New("unknown difficulty tier")

// Set is an immutable, ordered collection of tiers. It is safe to share
// between sessions.
type Set struct {
	tiers  []Tier
	byName map[string]int
}

// NewSet validates tiers and builds a Set preserving their order.
// Tier names are folded to lower case.
func NewSet(tiers ...Tier) (*Set, error) {
	s := &Set{
		tiers:  make([]Tier, 0, len(tiers)),
		byName: make(map[string]int, len(tiers)),
	}
	for _, t := range tiers {
		t = t.clone()
		t.Name = normalizeName(t.Name)
		s.tiers = append(s.tiers, t)
	}
	if err := validateTiers(s.tiers); err != nil {
		return nil, err
	}
	for i, t := range s.tiers {
		s.byName[t.Name] = i
	}
	return s, nil
}

// Lookup returns the tier with the given name (case-insensitive).
func (s *Set) Lookup(name string) (Tier, error) {
	i, ok := s.byName[normalizeName(name)]
	if !ok {
		return Tier{}, fmt.Errorf("%w: %q", ErrUnknownTier, name)
	}
	return s.tiers[i].clone(), nil
}

// Has reports whether a tier with the given name exists.
func (s *Set) Has(name string) bool {
	_, ok := s.byName[normalizeName(name)]
	return ok
}

// Names returns tier names in configured order.
func (s *Set) Names() []string {
	names := make([]string, len(s.tiers))
	for i, t := range s.tiers {
		names[i] = t.Name
	}
	return names
}

// All returns copies of all tiers in configured order.
func (s *Set) All() []Tier {
	out := make([]Tier, len(s.tiers))
	for i, t := range s.tiers {
		out[i] = t.clone()
	}
	return out
}

// Default returns DefaultTier when configured, otherwise the first tier.
func (s *Set) Default() Tier {
	if t, err := s.Lookup(DefaultTier); err == nil {
		return t
	}
	return s.tiers[0].clone()
}

// Len returns the number of tiers.
func (s *Set) Len() int {
	return len(s.tiers)
}
