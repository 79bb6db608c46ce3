package entities

import (
	"encoding/json"
	"testing"
)

func TestNextStage(t *testing.T) {
	cases := []struct {
		from ContractStatus
		want ContractStatus
		ok   bool
	}{
		{from: ContractStatusCreated, want: ContractStatusApproved, ok: true},
		{from: ContractStatusApproved, want: ContractStatusSent, ok: true},
		{from: ContractStatusSent, want: ContractStatusSigned, ok: true},
		{from: ContractStatusSigned, want: ContractStatusLocked, ok: true},
		{from: ContractStatusLocked, want: ContractStatusLocked, ok: false},
		{from: ContractStatusRevoked, want: ContractStatusRevoked, ok: false},
		{from: ContractStatus("Draft"), want: ContractStatus("Draft"), ok: false},
	}
	for _, tc := range cases {
		t.Run(string(tc.from), func(t *testing.T) {
			got, ok := NextStage(tc.from)
			if got != tc.want || ok != tc.ok {
				t.Fatalf("NextStage(%s) = (%s, %v), want (%s, %v)", tc.from, got, ok, tc.want, tc.ok)
			}
		})
	}
}

func TestStageIndexAndFlags(t *testing.T) {
	if got := StageIndex(ContractStatusCreated); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
	if got := StageIndex(ContractStatusLocked); got != 4 {
		t.Fatalf("expected 4, got %d", got)
	}
	if got := StageIndex(ContractStatusRevoked); got != -1 {
		t.Fatalf("expected -1, got %d", got)
	}
	if !ContractStatusRevoked.Valid() || ContractStatus("x").Valid() {
		t.Fatalf("unexpected Valid() result")
	}
	if ContractStatusLocked.CanAdvance() || !ContractStatusLocked.CanRevoke() {
		t.Fatalf("locked contracts can be revoked but not advanced")
	}
	if ContractStatusRevoked.CanAdvance() || ContractStatusRevoked.CanRevoke() {
		t.Fatalf("revoked contracts accept no actions")
	}
}

func TestPipelineStagesIsACopy(t *testing.T) {
	stages := PipelineStages()
	stages[0] = ContractStatusRevoked
	if PipelineStages()[0] != ContractStatusCreated {
		t.Fatalf("pipeline must not be mutable through the returned slice")
	}
}

func TestContractJSONLayout(t *testing.T) {
	sig := "data:image/png;base64,AAAA"
	c := Contract{
		ID:          12345,
		Name:        "Lease",
		Type:        "Lease",
		Status:      ContractStatusSent,
		CreatedAt:   "3/4/2025",
		ClientName:  "ABC",
		Signature:   &sig,
		BlueprintID: "blueprint-1",
		BlueprintFields: []FieldWithValue{
			{Field: Field{ID: "field-8", Type: FieldTypeCheckbox, Label: "Terms", Position: Position{X: 50, Y: 550}, Required: true}, Value: BoolValue(true)},
		},
	}
	b, err := json.Marshal(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var raw map[string]any
	if err := json.Unmarshal(b, &raw); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, key := range []string{"id", "createdAt", "clientName", "contractValue", "blueprintId", "blueprintFields", "signature"} {
		if _, ok := raw[key]; !ok {
			t.Fatalf("expected key %q in %s", key, b)
		}
	}
	if _, ok := raw["revokedAt"]; ok {
		t.Fatalf("revokedAt must be omitted when empty: %s", b)
	}
	fields := raw["blueprintFields"].([]any)
	first := fields[0].(map[string]any)
	if first["label"] != "Terms" || first["value"] != true {
		t.Fatalf("field must be flattened with its value: %v", first)
	}
}

func TestContractCloneDetachesSignature(t *testing.T) {
	sig := "data:image/png;base64,AAAA"
	c := Contract{Signature: &sig, BlueprintFields: []FieldWithValue{{Value: TextValue("a")}}}
	cl := c.Clone()
	*cl.Signature = "changed"
	cl.BlueprintFields[0].Value = TextValue("b")
	if *c.Signature != "data:image/png;base64,AAAA" || c.BlueprintFields[0].Value.String() != "a" {
		t.Fatalf("clone shares state with original")
	}
}
