package usecase

import (
	"testing"

	"contract_tracker/internal/domain/entities"

	"github.com/google/go-cmp/cmp"
)

func serviceBlueprint() entities.Blueprint {
	return DefaultBlueprints(fixedNow)[0]
}

func TestAssembleFromBlueprint_ClientOnly(t *testing.T) {
	bp := serviceBlueprint()
	c := AssembleFromBlueprint(bp, BlueprintInput{
		Values: map[string]entities.FieldValue{"field-2": entities.TextValue("Acme")},
	})

	if c.ContractValue != "" {
		t.Fatalf("expected empty contract value, got %q", c.ContractValue)
	}
	if c.ClientName != "Acme" {
		t.Fatalf("expected client Acme, got %q", c.ClientName)
	}
	if c.Type != "Standard Service Contract" || c.Description != bp.Description || c.BlueprintID != "blueprint-1" {
		t.Fatalf("unexpected contract: %+v", c)
	}
	if len(c.BlueprintFields) != len(bp.Fields) {
		t.Fatalf("expected %d fields, got %d", len(bp.Fields), len(c.BlueprintFields))
	}
	for i, f := range c.BlueprintFields {
		if diff := cmp.Diff(bp.Fields[i], f.Field); diff != "" {
			t.Fatalf("field %d definition changed (-want +got):\n%s", i, diff)
		}
	}
	if !c.BlueprintFields[1].Value.Equal(entities.TextValue("Acme")) {
		t.Fatalf("client value not attached: %#v", c.BlueprintFields[1].Value)
	}
	if !c.BlueprintFields[6].Value.IsNull() {
		t.Fatalf("missing signature must be null")
	}
}

func TestAssembleFromBlueprint_Name(t *testing.T) {
	bp := serviceBlueprint()

	t.Run("explicit name wins", func(t *testing.T) {
		c := AssembleFromBlueprint(bp, BlueprintInput{
			Name:   "Typed",
			Values: map[string]entities.FieldValue{"field-1": entities.TextValue("From field")},
		})
		if c.Name != "Typed" {
			t.Fatalf("expected Typed, got %q", c.Name)
		}
	})

	t.Run("first name-like field", func(t *testing.T) {
		c := AssembleFromBlueprint(bp, BlueprintInput{
			Values: map[string]entities.FieldValue{
				"field-1": entities.TextValue("From field"),
				"field-2": entities.TextValue("Acme"),
			},
		})
		if c.Name != "From field" {
			t.Fatalf("expected name from field-1, got %q", c.Name)
		}
	})

	t.Run("fallback", func(t *testing.T) {
		c := AssembleFromBlueprint(bp, BlueprintInput{})
		if c.Name != "Contract" {
			t.Fatalf("expected Contract, got %q", c.Name)
		}
	})
}

func TestMapBlueprintFields(t *testing.T) {
	field := func(label string, ft entities.FieldType, v entities.FieldValue) entities.FieldWithValue {
		return entities.FieldWithValue{Field: entities.Field{Label: label, Type: ft}, Value: v}
	}

	cases := []struct {
		name   string
		fields []entities.FieldWithValue
		want   BlueprintFieldMapping
	}{
		{
			name: "salary feeds value",
			fields: []entities.FieldWithValue{
				field("Employee Name", entities.FieldTypeText, entities.TextValue("Ann")),
				field("Salary", entities.FieldTypeText, entities.TextValue("$1")),
			},
			want: BlueprintFieldMapping{Name: "Ann", ContractValue: "$1"},
		},
		{
			name: "first match wins even when empty",
			fields: []entities.FieldWithValue{
				field("Total Amount", entities.FieldTypeText, entities.TextValue("")),
				field("Value", entities.FieldTypeText, entities.TextValue("9")),
			},
			want: BlueprintFieldMapping{},
		},
		{
			name: "one label feeds two slots",
			fields: []entities.FieldWithValue{
				field("CLIENT NAME", entities.FieldTypeText, entities.TextValue("Acme")),
			},
			want: BlueprintFieldMapping{Name: "Acme", ClientName: "Acme"},
		},
		{
			name: "signature contributes nothing",
			fields: []entities.FieldWithValue{
				field("Client Signature", entities.FieldTypeSignature, entities.TextValue("data:image/png;base64,AA")),
			},
			want: BlueprintFieldMapping{},
		},
		{
			name: "checkbox prints as true",
			fields: []entities.FieldWithValue{
				field("Value Confirmed", entities.FieldTypeCheckbox, entities.BoolValue(true)),
			},
			want: BlueprintFieldMapping{ContractValue: "true"},
		},
		{
			name:   "no matches",
			fields: []entities.FieldWithValue{field("Terms", entities.FieldTypeText, entities.TextValue("x"))},
			want:   BlueprintFieldMapping{},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if diff := cmp.Diff(tc.want, MapBlueprintFields(tc.fields)); diff != "" {
				t.Fatalf("mapping mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestInitialFieldValues(t *testing.T) {
	got := InitialFieldValues(serviceBlueprint())
	if len(got) != 7 {
		t.Fatalf("expected 7 entries, got %d", len(got))
	}
	if _, ok := got["field-7"]; ok {
		t.Fatalf("signature fields must have no initial value")
	}
	if v := got["field-8"]; !v.IsBool() || v.Bool() {
		t.Fatalf("checkbox must start unchecked, got %#v", v)
	}
	if v := got["field-3"]; !v.Equal(entities.TextValue("")) {
		t.Fatalf("date must start empty, got %#v", v)
	}
}

func TestMissingRequiredFields(t *testing.T) {
	bp := serviceBlueprint()
	fields := FillBlueprintFields(bp, BlueprintInput{
		Values: map[string]entities.FieldValue{
			"field-1": entities.TextValue("Deal"),
			"field-2": entities.TextValue("Acme"),
			"field-3": entities.TextValue("2025-03-04"),
			"field-8": entities.BoolValue(false),
		},
		Signatures: map[string]string{"field-7": "data:image/png;base64,AA"},
	})

	missing := MissingRequiredFields(fields)
	if len(missing) != 1 || missing[0].ID != "field-8" {
		t.Fatalf("expected only the unchecked terms box, got %+v", missing)
	}
}
