package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/abhisek/mathquiz/internal/difficulty"
)

// tiersFile is the on-disk layout of a tiers file.
type tiersFile struct {
	Tiers []difficulty.Tier `yaml:"tiers"`
}

// LoadTiers reads tier definitions from a YAML file.
func LoadTiers(path string) (*difficulty.Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read tiers file: %w", err)
	}
	return ParseTiers(data)
}

// ParseTiers decodes and validates YAML tier definitions.
func ParseTiers(data []byte) (*difficulty.Set, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse tiers yaml: %w", err)
	}
	if err := validateDocument(doc); err != nil {
		return nil, err
	}

	var f tiersFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode tiers: %w", err)
	}
	set, err := difficulty.NewSet(f.Tiers...)
	if err != nil {
		return nil, err
	}
	return set, nil
}
