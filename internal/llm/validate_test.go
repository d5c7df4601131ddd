package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func testSchema() *Schema {
	return &Schema{
		Name:        "test-verdict",
		Description: "A test verdict",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"candidate":      map[string]any{"type": "string"},
				"score":          map[string]any{"type": "integer", "minimum": 1, "maximum": 10},
				"recommendation": map[string]any{"type": "string", "enum": []any{"Hire", "No Hire"}},
			},
			"required": []any{"candidate", "score"},
		},
	}
}

func TestValidateResponse_ValidJSON(t *testing.T) {
	raw := json.RawMessage(`{"candidate":"Ada","score":8,"recommendation":"Hire"}`)
	if err := validateResponse(testSchema(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponse_ValidWithoutOptional(t *testing.T) {
	raw := json.RawMessage(`{"candidate":"Grace","score":6}`)
	if err := validateResponse(testSchema(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"missing required", `{"candidate":"Linus"}`},
		{"wrong type", `{"candidate":"Ken","score":"eight"}`},
		{"below minimum", `{"candidate":"Ken","score":0}`},
		{"above maximum", `{"candidate":"Ken","score":11}`},
		{"fractional integer", `{"candidate":"Ken","score":7.5}`},
		{"invalid enum", `{"candidate":"Rob","score":5,"recommendation":"Maybe"}`},
		{"malformed JSON", `{not json}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResponse(testSchema(), json.RawMessage(tt.raw))
			if err == nil {
				t.Fatal("expected error")
			}
			var invErr *ErrInvalidResponse
			if !errors.As(err, &invErr) {
				t.Fatalf("expected ErrInvalidResponse, got: %T", err)
			}
		})
	}
}

func TestValidateResponse_EmptyResponse(t *testing.T) {
	if err := validateResponse(testSchema(), json.RawMessage(``)); err == nil {
		t.Fatal("expected error for empty response")
	}
}

func TestValidateResponse_NilSchema(t *testing.T) {
	raw := json.RawMessage(`{"anything":"goes"}`)
	if err := validateResponse(nil, raw); err != nil {
		t.Fatalf("expected no error with nil schema, got: %v", err)
	}
}

func TestValidateJSON_NestedObjects(t *testing.T) {
	schema := &Schema{
		Name:        "test-nested",
		Description: "Nested test",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"assessment": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"communication": map[string]any{"type": "number"},
					},
					"required": []any{"communication"},
				},
				"strengths": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string"},
				},
			},
			"required": []any{"assessment", "strengths"},
		},
	}

	valid := json.RawMessage(`{"assessment":{"communication":7.5},"strengths":["clear","concise"]}`)
	if err := ValidateJSON(schema, valid); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	invalid := json.RawMessage(`{"assessment":{"communication":7},"strengths":[1,2]}`)
	if err := ValidateJSON(schema, invalid); err == nil {
		t.Fatal("expected error for wrong array item type")
	}
}
