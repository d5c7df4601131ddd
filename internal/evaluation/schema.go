package evaluation

import "github.com/abhisek/intervue/internal/llm"

// EvaluationSchema is the JSON schema for a response evaluation. Only the
// score is required; missing text fields decode as empty strings.
var EvaluationSchema = &llm.Schema{
	Name:        "response-evaluation",
	Description: "Score and qualitative feedback for one interview answer",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"score": map[string]any{
				"type":        "integer",
				"minimum":     1,
				"maximum":     10,
				"description": "Overall score for the answer from 1 (weak) to 10 (excellent)",
			},
			"feedback": map[string]any{
				"type":        "string",
				"description": "Brief constructive feedback in 1-2 sentences",
			},
			"strengths": map[string]any{
				"type":        "string",
				"description": "Key strengths observed",
			},
			"areas_to_probe": map[string]any{
				"type":        "string",
				"description": "Areas that need more exploration",
			},
		},
		"required": []any{"score"},
	},
}
