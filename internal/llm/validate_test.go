package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func testSchema() *Schema {
	return &Schema{
		Name:        "test-step",
		Description: "test schema",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"sentence": map[string]any{"type": "string"},
				"options": map[string]any{
					"type":     "array",
					"minItems": 1,
					"items":    map[string]any{"type": "string"},
				},
			},
			"required":             []any{"sentence", "options"},
			"additionalProperties": false,
		},
	}
}

func TestValidateResponse_NilSchemaPasses(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`not even json`)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateResponse_ValidJSON(t *testing.T) {
	raw := json.RawMessage(`{"sentence":"hello","options":["a","b"]}`)
	if err := validateResponse(testSchema(), raw); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateResponse_MalformedJSON(t *testing.T) {
	err := validateResponse(testSchema(), json.RawMessage(`{"sentence":`))
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("expected ErrInvalidResponse, got: %v", err)
	}
}

func TestValidateResponse_MissingRequiredField(t *testing.T) {
	err := validateResponse(testSchema(), json.RawMessage(`{"sentence":"hello"}`))
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("expected ErrInvalidResponse, got: %v", err)
	}
}

func TestValidateResponse_WrongType(t *testing.T) {
	err := validateResponse(testSchema(), json.RawMessage(`{"sentence":42,"options":["a"]}`))
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("expected ErrInvalidResponse, got: %v", err)
	}
}

func TestValidateResponse_SchemaCached(t *testing.T) {
	s := testSchema()
	raw := json.RawMessage(`{"sentence":"hello","options":["a"]}`)
	if err := validateResponse(s, raw); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := schemaCache.Load(s.Name); !ok {
		t.Fatal("expected compiled schema to be cached")
	}
	// Second validation hits the cache.
	if err := validateResponse(s, raw); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
