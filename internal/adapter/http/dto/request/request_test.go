package request

import (
	"encoding/json"
	"errors"
	"testing"

	"contract_tracker/internal/domain/entities"
)

func TestFieldRequest_Resolve(t *testing.T) {
	r := FieldRequest{ID: " field-1 ", Type: "checkbox", Position: &PositionRequest{X: 10, Y: 20}}
	if got := r.ResolveID(); got != "field-1" {
		t.Fatalf("expected field-1, got %q", got)
	}
	if got := r.ResolveType(); got != entities.FieldTypeCheckbox {
		t.Fatalf("expected Checkbox, got %q", got)
	}
	if got := r.ResolvePosition(); got == nil || *got != (entities.Position{X: 10, Y: 20}) {
		t.Fatalf("unexpected position %v", got)
	}

	r2 := FieldRequest{Type: " Radio "}
	if got := r2.ResolveType(); got != "Radio" || got.Valid() {
		t.Fatalf("expected unknown type to pass through trimmed, got %q", got)
	}
	if r2.ResolvePosition() != nil {
		t.Fatalf("expected nil position")
	}
}

func TestContractRequest_Validate(t *testing.T) {
	t.Run("empty signatures are fine", func(t *testing.T) {
		if err := (ContractRequest{Signatures: map[string]string{"field-1": ""}}).Validate(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("data url accepted", func(t *testing.T) {
		r := ContractRequest{Signature: "data:image/png;base64,AAAA"}
		if err := r.Validate(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("plain text rejected", func(t *testing.T) {
		r := ContractRequest{Signature: "John Hancock"}
		if err := r.Validate(); !errors.Is(err, ErrInvalidSignatureImage) {
			t.Fatalf("expected ErrInvalidSignatureImage, got %v", err)
		}
	})

	t.Run("blueprint signature rejected", func(t *testing.T) {
		r := ContractRequest{Signatures: map[string]string{"field-4": "https://example.com/sig.png"}}
		if err := r.Validate(); !errors.Is(err, ErrInvalidSignatureImage) {
			t.Fatalf("expected ErrInvalidSignatureImage, got %v", err)
		}
	})
}

func TestContractRequest_ToSubmission(t *testing.T) {
	var r ContractRequest
	body := `{"blueprint_id":" blueprint-1 ","name":"Jane","values":{"field-1":"Acme","field-7":true,"field-8":null}}`
	if err := json.Unmarshal([]byte(body), &r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sub := r.ToSubmission()
	if sub.BlueprintID != "blueprint-1" || sub.Name != "Jane" {
		t.Fatalf("unexpected submission: %+v", sub)
	}
	if got := sub.Values["field-1"]; !got.Equal(entities.TextValue("Acme")) {
		t.Fatalf("unexpected text value %v", got)
	}
	if got := sub.Values["field-7"]; !got.Equal(entities.BoolValue(true)) {
		t.Fatalf("unexpected bool value %v", got)
	}
	if got := sub.Values["field-8"]; !got.IsNull() {
		t.Fatalf("expected null value, got %v", got)
	}
}
