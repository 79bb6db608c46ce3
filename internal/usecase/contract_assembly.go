package usecase

import (
	"strings"

	"contract_tracker/internal/domain/entities"
)

const defaultContractName = "Contract"

// BlueprintFieldMapping is what the label heuristics pull out of the filled
// blueprint fields for the top-level contract attributes.
type BlueprintFieldMapping struct {
	Name          string
	ClientName    string
	ContractValue string
}

// MapBlueprintFields scans fields in order and takes, for each slot, the first
// field whose lower-cased label contains one of the slot keywords:
//
//	Name          "name"
//	ClientName    "client"
//	ContractValue "value", "salary", "amount"
//
// A label may feed several slots ("Client Name" feeds Name and ClientName).
// The mapping is lossy: anything not matched only survives in BlueprintFields.
func MapBlueprintFields(fields []entities.FieldWithValue) BlueprintFieldMapping {
	var m BlueprintFieldMapping
	var gotName, gotClient, gotValue bool
	for _, f := range fields {
		label := strings.ToLower(f.Label)
		text := mappedText(f)
		if !gotName && strings.Contains(label, "name") {
			m.Name, gotName = text, true
		}
		if !gotClient && strings.Contains(label, "client") {
			m.ClientName, gotClient = text, true
		}
		if !gotValue && containsAny(label, "value", "salary", "amount") {
			m.ContractValue, gotValue = text, true
		}
	}
	return m
}

func mappedText(f entities.FieldWithValue) string {
	if f.Type == entities.FieldTypeSignature {
		return ""
	}
	return f.Value.String()
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// InitialFieldValues returns the form state for a freshly selected blueprint.
// Signature fields get no entry; they are filled from uploads.
func InitialFieldValues(bp entities.Blueprint) map[string]entities.FieldValue {
	out := make(map[string]entities.FieldValue, len(bp.Fields))
	for _, f := range bp.Fields {
		switch f.Type {
		case entities.FieldTypeCheckbox:
			out[f.ID] = entities.BoolValue(false)
		case entities.FieldTypeSignature:
		default:
			out[f.ID] = entities.TextValue("")
		}
	}
	return out
}

// BlueprintInput is what the user entered against a blueprint.
type BlueprintInput struct {
	Name       string
	Values     map[string]entities.FieldValue
	Signatures map[string]string
}

// FillBlueprintFields pairs every blueprint field with its entered value.
// Signature fields read from Signatures, the rest from Values; anything not
// supplied is null.
func FillBlueprintFields(bp entities.Blueprint, in BlueprintInput) []entities.FieldWithValue {
	out := make([]entities.FieldWithValue, 0, len(bp.Fields))
	for _, f := range bp.Fields {
		v := entities.NullValue()
		if f.Type == entities.FieldTypeSignature {
			if sig, ok := in.Signatures[f.ID]; ok && sig != "" {
				v = entities.TextValue(sig)
			}
		} else if val, ok := in.Values[f.ID]; ok {
			v = val
		}
		out = append(out, entities.FieldWithValue{Field: f, Value: v})
	}
	return out
}

// AssembleFromBlueprint builds the contract draft for a blueprint submission.
// It does not validate required fields.
func AssembleFromBlueprint(bp entities.Blueprint, in BlueprintInput) entities.Contract {
	fields := FillBlueprintFields(bp, in)
	m := MapBlueprintFields(fields)

	name := strings.TrimSpace(in.Name)
	if name == "" {
		name = m.Name
	}
	if name == "" {
		name = defaultContractName
	}

	return entities.Contract{
		Name:            name,
		Type:            bp.Name,
		ClientName:      m.ClientName,
		ContractValue:   m.ContractValue,
		Description:     bp.Description,
		BlueprintID:     bp.ID,
		BlueprintFields: fields,
	}
}

// MissingRequiredFields returns the required fields left empty, in order.
func MissingRequiredFields(fields []entities.FieldWithValue) []entities.Field {
	var missing []entities.Field
	for _, f := range fields {
		if f.Required && f.Value.Empty() {
			missing = append(missing, f.Field)
		}
	}
	return missing
}
