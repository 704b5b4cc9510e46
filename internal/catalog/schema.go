package catalog

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const schemaURL = "schema://quizcard-catalog.json"

// SchemaDefinition is the JSON Schema every catalog document must satisfy.
// The authoring command reuses it (as the quizzes item schema) when asking
// an LLM for content.
var SchemaDefinition = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"format": map[string]any{
			"type":        "string",
			"description": "Catalog format version, e.g. v1.0.0",
		},
		"quizzes": map[string]any{
			"type":  "array",
			"items": QuizSchemaDefinition,
		},
	},
	"required":             []any{"format", "quizzes"},
	"additionalProperties": false,
}

// QuizSchemaDefinition describes a single quiz object.
var QuizSchemaDefinition = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"id": map[string]any{
			"type":        "string",
			"minLength":   1,
			"description": "Stable identifier, kebab-case",
		},
		"title": map[string]any{
			"type":        "string",
			"minLength":   1,
			"description": "Short quiz title",
		},
		"description": map[string]any{
			"type":        "string",
			"description": "One sentence describing the quiz",
		},
		"level": map[string]any{
			"type":        "integer",
			"minimum":     1,
			"maximum":     3,
			"description": "Difficulty: 1 easy, 2 medium, 3 hard",
		},
		"questions": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"title": map[string]any{
						"type":        "string",
						"minLength":   1,
						"description": "The question prompt",
					},
					"alternatives": map[string]any{
						"type":        "array",
						"minItems":    2,
						"items":       map[string]any{"type": "string"},
						"description": "Answer options in display order",
					},
					"correct": map[string]any{
						"type":        "integer",
						"minimum":     0,
						"description": "Index of the correct alternative",
					},
				},
				"required":             []any{"title", "alternatives", "correct"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []any{"id", "title", "description", "level", "questions"},
	"additionalProperties": false,
}

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

// ValidateDocument checks raw JSON against SchemaDefinition.
func ValidateDocument(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	sch, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("compile catalog schema: %w", err)
	}
	if err := sch.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

func compiledSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The compiler wants a decoded JSON value, not Go maps with typed
		// slices, so round-trip the definition.
		defBytes, err := json.Marshal(SchemaDefinition)
		if err != nil {
			compileErr = err
			return
		}
		var def any
		if err := json.Unmarshal(defBytes, &def); err != nil {
			compileErr = err
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, def); err != nil {
			compileErr = err
			return
		}
		compiled, compileErr = c.Compile(schemaURL)
	})
	return compiled, compileErr
}
