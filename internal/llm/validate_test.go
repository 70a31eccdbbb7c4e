package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func suggestionSchema() *Schema {
	return &Schema{
		Name:        "stream-suggestion",
		Description: "A stream suggestion for a student",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"stream":     map[string]any{"type": "string"},
				"rank":       map[string]any{"type": "integer", "minimum": 1},
				"confidence": map[string]any{"type": "string", "enum": []any{"HIGH", "MEDIUM", "LOW"}},
			},
			"required": []any{"stream", "rank"},
		},
	}
}

func TestValidateResponseValidJSON(t *testing.T) {
	raw := json.RawMessage(`{"stream":"Commerce","rank":1,"confidence":"HIGH"}`)
	if err := validateResponse(suggestionSchema(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponseValidWithoutOptional(t *testing.T) {
	raw := json.RawMessage(`{"stream":"Humanities","rank":2}`)
	if err := validateResponse(suggestionSchema(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponseMissingRequired(t *testing.T) {
	raw := json.RawMessage(`{"stream":"Science"}`)
	err := validateResponse(suggestionSchema(), raw)
	if err == nil {
		t.Fatal("expected error for missing required field")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponseWrongType(t *testing.T) {
	raw := json.RawMessage(`{"stream":"Science","rank":"first"}`)
	err := validateResponse(suggestionSchema(), raw)
	if err == nil {
		t.Fatal("expected error for wrong type")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponseInvalidEnum(t *testing.T) {
	raw := json.RawMessage(`{"stream":"Science","rank":1,"confidence":"MAYBE"}`)
	err := validateResponse(suggestionSchema(), raw)
	if err == nil {
		t.Fatal("expected error for invalid enum value")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponseMalformedJSON(t *testing.T) {
	raw := json.RawMessage(`{not json}`)
	err := validateResponse(suggestionSchema(), raw)
	if err == nil {
		t.Fatal("expected error for malformed JSON")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponseNilSchema(t *testing.T) {
	raw := json.RawMessage(`{"anything":"goes"}`)
	if err := validateResponse(nil, raw); err != nil {
		t.Fatalf("expected no error with nil schema, got: %v", err)
	}
}

func TestValidateResponseNestedObjects(t *testing.T) {
	schema := &Schema{
		Name:        "test-nested",
		Description: "Nested test",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"suggestion": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"stream": map[string]any{"type": "string"},
					},
					"required": []any{"stream"},
				},
				"career_fields": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string"},
				},
			},
			"required": []any{"suggestion", "career_fields"},
		},
	}

	valid := json.RawMessage(`{"suggestion":{"stream":"Fine Arts"},"career_fields":["Design","Animation"]}`)
	if err := validateResponse(schema, valid); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	invalid := json.RawMessage(`{"suggestion":{"stream":"Fine Arts"},"career_fields":[1,2]}`)
	if err := validateResponse(schema, invalid); err == nil {
		t.Fatal("expected error for wrong array item type")
	}
}
