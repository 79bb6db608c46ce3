package entities

import "strings"

// DateLayout is the calendar-date format used for createdAt/revokedAt stamps.
// Persisted records keep the short month/day/year form the dashboard shows.
const DateLayout = "1/2/2006"

// FieldType is the input kind of a blueprint field.

type FieldType string

const (
	FieldTypeText      FieldType = "Text"
	FieldTypeDate      FieldType = "Date"
	FieldTypeSignature FieldType = "Signature"
	FieldTypeCheckbox  FieldType = "Checkbox"
)

// FieldTypes lists the field kinds in the order the editor offers them.
var FieldTypes = []FieldType{FieldTypeText, FieldTypeDate, FieldTypeSignature, FieldTypeCheckbox}

func (t FieldType) Valid() bool {
	for _, ft := range FieldTypes {
		if ft == t {
			return true
		}
	}
	return false
}

// ParseFieldType accepts the type name case-insensitively.
func ParseFieldType(s string) (FieldType, bool) {
	s = strings.TrimSpace(s)
	for _, ft := range FieldTypes {
		if strings.EqualFold(string(ft), s) {
			return ft, true
		}
	}
	return "", false
}

// Position places a field on the printed page, in CSS pixels.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Field is one input slot of a blueprint.
//
// Identity:
//   - ID is unique inside its owning blueprint only; two blueprints may both
//     carry a "field-1".
type Field struct {
	ID       string    `json:"id"`
	Type     FieldType `json:"type"`
	Label    string    `json:"label"`
	Position Position  `json:"position"`
	Required bool      `json:"required"`
}

// Blueprint is a reusable, named field layout contracts can be generated from.
//
// Storage model (key-value):
//   - key: blueprint_data
//   - value: JSON array of Blueprint records, insertion order preserved
//
// ID has the form blueprint-<unix-ms>-<0..999> and never changes once assigned.
type Blueprint struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Fields      []Field `json:"fields"`
	CreatedAt   string  `json:"createdAt"`
}

// FieldByID returns the field with the given id, if present.
func (b Blueprint) FieldByID(id string) (Field, bool) {
	for _, f := range b.Fields {
		if f.ID == id {
			return f, true
		}
	}
	return Field{}, false
}

// Clone returns a copy that shares no slices with b.
func (b Blueprint) Clone() Blueprint {
	out := b
	out.Fields = make([]Field, len(b.Fields))
	copy(out.Fields, b.Fields)
	return out
}
