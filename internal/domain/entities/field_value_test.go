package entities

import (
	"encoding/json"
	"testing"
)

func TestFieldValue_JSON(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		want    FieldValue
		wantOut string
	}{
		{name: "text", in: `"Acme"`, want: TextValue("Acme"), wantOut: `"Acme"`},
		{name: "empty text", in: `""`, want: TextValue(""), wantOut: `""`},
		{name: "checked", in: `true`, want: BoolValue(true), wantOut: `true`},
		{name: "unchecked", in: `false`, want: BoolValue(false), wantOut: `false`},
		{name: "null", in: `null`, want: NullValue(), wantOut: `null`},
		{name: "number kept verbatim", in: `5000`, want: FieldValue{kind: valueRaw, text: "5000"}, wantOut: `5000`},
		{name: "decimal kept verbatim", in: `12.50`, want: FieldValue{kind: valueRaw, text: "12.50"}, wantOut: `12.50`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var got FieldValue
			if err := json.Unmarshal([]byte(tc.in), &got); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Equal(tc.want) {
				t.Fatalf("got %#v, want %#v", got, tc.want)
			}
			out, err := json.Marshal(got)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if string(out) != tc.wantOut {
				t.Fatalf("marshal = %s, want %s", out, tc.wantOut)
			}
		})
	}
}

func TestFieldValue_NumberPrintsAsText(t *testing.T) {
	var v FieldValue
	if err := json.Unmarshal([]byte(`42`), &v); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.String() != "42" || v.Empty() || v.IsBool() {
		t.Fatalf("unexpected number value: %#v", v)
	}
	if v.Equal(TextValue("42")) {
		t.Fatalf("a stored number must not equal the string \"42\"")
	}
}

func TestFieldValue_MissingKeyIsNull(t *testing.T) {
	var fw FieldWithValue
	if err := json.Unmarshal([]byte(`{"id":"field-7","type":"Signature","label":"Signature"}`), &fw); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !fw.Value.IsNull() {
		t.Fatalf("expected null value, got %#v", fw.Value)
	}
	if fw.ID != "field-7" || fw.Type != FieldTypeSignature {
		t.Fatalf("embedded field not decoded: %+v", fw.Field)
	}
}

func TestFieldValue_TextAndTruthiness(t *testing.T) {
	if TextValue("x").Empty() || !TextValue("").Empty() {
		t.Fatalf("text emptiness mismatch")
	}
	if BoolValue(false).String() != "" || BoolValue(true).String() != "true" {
		t.Fatalf("bool string mismatch")
	}
	if !NullValue().Empty() || NullValue().String() != "" {
		t.Fatalf("null must be empty")
	}
}

func TestParseFieldType(t *testing.T) {
	if ft, ok := ParseFieldType(" checkbox "); !ok || ft != FieldTypeCheckbox {
		t.Fatalf("expected Checkbox, got %q %v", ft, ok)
	}
	if _, ok := ParseFieldType("Radio"); ok {
		t.Fatalf("expected Radio to be rejected")
	}
	if !FieldTypeDate.Valid() || FieldType("date").Valid() {
		t.Fatalf("Valid must be exact")
	}
}
