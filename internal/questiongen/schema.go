package questiongen

import "github.com/abhisek/geomiz/internal/llm"

// PayloadSchema is the JSON schema for checkpoint generation responses.
// Providers with native structured output enforce it server-side; the
// orchestrator still re-parses and validates defensively.
var PayloadSchema = &llm.Schema{
	Name:        "checkpoint-question",
	Description: "A single comprehension-check question for a lesson section",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question": map[string]any{
				"type":        "string",
				"description": "The question prompt, answerable from the section content",
			},
			"options": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"minItems":    3,
				"maxItems":    4,
				"description": "Answer options, exactly one correct",
			},
			"correct_index": map[string]any{
				"type":        "integer",
				"minimum":     0,
				"description": "Index of the correct option",
			},
			"explanation": map[string]any{
				"type":        "string",
				"description": "Short child-friendly justification of the correct answer",
			},
		},
		"required":             []any{"question", "options", "correct_index", "explanation"},
		"additionalProperties": false,
	},
}
