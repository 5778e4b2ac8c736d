package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func testSchema() *Schema {
	return &Schema{
		Name:        "test-risk",
		Description: "A test risk object",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"risk_level": map[string]any{"type": "string", "enum": []any{"High", "Medium", "Low"}},
				"confidence": map[string]any{"type": "number", "minimum": 0.0, "maximum": 1.0},
				"reasoning":  map[string]any{"type": "string"},
			},
			"required": []any{"risk_level", "confidence"},
		},
	}
}

func TestValidateResponse_Valid(t *testing.T) {
	raw := json.RawMessage(`{"risk_level":"High","confidence":0.9,"reasoning":"low attendance"}`)
	if err := validateResponse(testSchema(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponse_ValidWithoutOptional(t *testing.T) {
	raw := json.RawMessage(`{"risk_level":"Low","confidence":0.88}`)
	if err := validateResponse(testSchema(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponse_MissingRequired(t *testing.T) {
	raw := json.RawMessage(`{"risk_level":"Medium"}`)
	err := validateResponse(testSchema(), raw)
	if err == nil {
		t.Fatal("expected error for missing required field")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_EnumViolation(t *testing.T) {
	raw := json.RawMessage(`{"risk_level":"Severe","confidence":0.9}`)
	if err := validateResponse(testSchema(), raw); err == nil {
		t.Fatal("expected error for unknown risk level")
	}
}

func TestValidateResponse_ConfidenceOutOfRange(t *testing.T) {
	raw := json.RawMessage(`{"risk_level":"High","confidence":1.5}`)
	if err := validateResponse(testSchema(), raw); err == nil {
		t.Fatal("expected error for confidence above 1.0")
	}
}

func TestValidateResponse_MalformedJSON(t *testing.T) {
	raw := json.RawMessage(`{"risk_level":`)
	err := validateResponse(testSchema(), raw)
	if err == nil {
		t.Fatal("expected error for malformed JSON")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_NilSchemaSkipsValidation(t *testing.T) {
	raw := json.RawMessage(`not even json`)
	if err := validateResponse(nil, raw); err != nil {
		t.Fatalf("expected nil error without schema, got: %v", err)
	}
}

func TestValidateResponse_SchemaCached(t *testing.T) {
	s := testSchema()
	raw := json.RawMessage(`{"risk_level":"Low","confidence":0.5}`)
	if err := validateResponse(s, raw); err != nil {
		t.Fatalf("first validation failed: %v", err)
	}
	if _, ok := schemaCache.Load(s.Name); !ok {
		t.Fatal("compiled schema was not cached")
	}
	if err := validateResponse(s, raw); err != nil {
		t.Fatalf("cached validation failed: %v", err)
	}
}
