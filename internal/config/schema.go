package config

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/abhisek/mathquiz/internal/difficulty"
)

const tiersSchemaURL = "schema://mathquiz-tiers.json"

func rangeSchema(withDivisors bool) map[string]any {
	props := map[string]any{
		"min": map[string]any{"type": "integer", "minimum": 0, "maximum": difficulty.MaxOperand},
		"max": map[string]any{"type": "integer", "minimum": 0, "maximum": difficulty.MaxOperand},
	}
	required := []any{"min", "max"}
	if withDivisors {
		props["divisors"] = map[string]any{
			"type":     "array",
			"minItems": 1,
			"items":    map[string]any{"type": "integer", "minimum": 1, "maximum": difficulty.MaxOperand},
		}
		required = append(required, "divisors")
	}
	return map[string]any{
		"type":                 "object",
		"properties":           props,
		"required":             required,
		"additionalProperties": false,
	}
}

// tiersSchema describes the tiers file after YAML decoding.
var tiersSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"tiers": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"name":           map[string]any{"type": "string", "minLength": 1},
					"addition":       rangeSchema(false),
					"subtraction":    rangeSchema(false),
					"multiplication": rangeSchema(false),
					"division":       rangeSchema(true),
				},
				"required":             []any{"name", "addition", "subtraction", "multiplication", "division"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []any{"tiers"},
	"additionalProperties": false,
}

var (
	compileOnce     sync.Once
	compiledTiers   *jsonschema.Schema
	compileTiersErr error
)

// compiledTiersSchema compiles tiersSchema once.
func compiledTiersSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value (any).
		// Marshal then unmarshal to get a clean representation.
		defBytes, err := json.Marshal(tiersSchema)
		if err != nil {
			compileTiersErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			compileTiersErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource(tiersSchemaURL, defParsed); err != nil {
			compileTiersErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledTiers, compileTiersErr = c.Compile(tiersSchemaURL)
	})
	return compiledTiers, compileTiersErr
}

// validateDocument checks a decoded tiers document against tiersSchema.
func validateDocument(doc any) error {
	schema, err := compiledTiersSchema()
	if err != nil {
		return fmt.Errorf("compile tiers schema: %w", err)
	}

	// Round-trip through JSON so YAML-decoded numbers and maps match
	// what the validator expects.
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode tiers document: %w", err)
	}
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("decode tiers document: %w", err)
	}

	if err := schema.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}
