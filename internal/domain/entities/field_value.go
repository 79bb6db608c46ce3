package entities

import (
	"bytes"
	"encoding/json"
	"errors"
)

var ErrInvalidFieldValue = errors.New("invalid field value")

type valueKind uint8

const (
	valueNull valueKind = iota
	valueText
	valueBool
	// valueRaw is a JSON scalar other than a string or bool (usually a
	// number); text holds its literal so it is written back unchanged.
	valueRaw
)

// FieldValue is the value captured for one blueprint field when a contract is
// generated. Text and Date fields carry text, Checkbox fields a boolean and
// Signature fields an image data URL (text) or nothing.
//
// On the wire it is the bare JSON value: "..." | true/false | null. Any other
// JSON value is kept verbatim and printed as its literal text.
type FieldValue struct {
	kind valueKind
	text string
	flag bool
}

func TextValue(s string) FieldValue { return FieldValue{kind: valueText, text: s} }

func BoolValue(b bool) FieldValue { return FieldValue{kind: valueBool, flag: b} }

func NullValue() FieldValue { return FieldValue{} }

func (v FieldValue) IsNull() bool { return v.kind == valueNull }

func (v FieldValue) IsBool() bool { return v.kind == valueBool }

// Bool reports the checkbox state; text values count as checked when non-empty.
func (v FieldValue) Bool() bool {
	switch v.kind {
	case valueBool:
		return v.flag
	case valueText, valueRaw:
		return v.text != ""
	default:
		return false
	}
}

// String returns the printable text of the value. Unchecked booleans and null
// print as the empty string.
func (v FieldValue) String() string {
	switch v.kind {
	case valueText, valueRaw:
		return v.text
	case valueBool:
		if v.flag {
			return "true"
		}
		return ""
	default:
		return ""
	}
}

// Empty reports whether the value would fail a "required" check.
func (v FieldValue) Empty() bool {
	return !v.Bool()
}

func (v FieldValue) Equal(o FieldValue) bool {
	return v == o
}

func (v FieldValue) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case valueText:
		return json.Marshal(v.text)
	case valueBool:
		return json.Marshal(v.flag)
	case valueRaw:
		return []byte(v.text), nil
	default:
		return []byte("null"), nil
	}
}

func (v *FieldValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0 || bytes.Equal(data, []byte("null")):
		*v = NullValue()
		return nil
	case data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = TextValue(s)
		return nil
	case bytes.Equal(data, []byte("true")), bytes.Equal(data, []byte("false")):
		*v = BoolValue(data[0] == 't')
		return nil
	default:
		if !json.Valid(data) {
			return ErrInvalidFieldValue
		}
		*v = FieldValue{kind: valueRaw, text: string(data)}
		return nil
	}
}
