package response

import (
	"encoding/json"
	"testing"

	"contract_tracker/internal/domain/entities"
	"contract_tracker/internal/usecase"

	"github.com/google/go-cmp/cmp"
)

func TestFromContract(t *testing.T) {
	sig := "data:image/png;base64,AAAA"
	c := entities.Contract{
		ID:        12345,
		Name:      "Website Redesign",
		Type:      "Service",
		Status:    entities.ContractStatusSent,
		CreatedAt: "3/4/2025",
		Signature: &sig,
	}

	res := FromContract(c)
	if res.ID != 12345 || res.Status != "Sent" || res.Signature == nil || *res.Signature != sig {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if !res.CanAdvance || !res.CanRevoke || res.NextStage != "Signed" {
		t.Fatalf("unexpected actions: %+v", res)
	}

	c.Status = entities.ContractStatusRevoked
	res = FromContract(c)
	if res.CanAdvance || res.CanRevoke || res.NextStage != "" {
		t.Fatalf("revoked contract must offer no actions: %+v", res)
	}
}

func TestFromContract_BlueprintFieldsJSON(t *testing.T) {
	c := entities.Contract{
		ID:          1,
		Status:      entities.ContractStatusCreated,
		BlueprintID: "blueprint-1",
		BlueprintFields: []entities.FieldWithValue{{
			Field: entities.Field{ID: "field-7", Type: entities.FieldTypeCheckbox, Label: "Agreed", Position: entities.Position{X: 50, Y: 610}},
			Value: entities.BoolValue(true),
		}},
	}

	raw, err := json.Marshal(FromContract(c))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var body struct {
		BlueprintFields []map[string]any `json:"blueprint_fields"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []map[string]any{{
		"id":       "field-7",
		"type":     "Checkbox",
		"label":    "Agreed",
		"position": map[string]any{"x": 50.0, "y": 610.0},
		"required": false,
		"value":    true,
	}}
	if diff := cmp.Diff(want, body.BlueprintFields); diff != "" {
		t.Fatalf("unexpected blueprint fields (-want +got):\n%s", diff)
	}
}

func TestFromDashboard(t *testing.T) {
	all := []entities.Contract{
		{ID: 1, Status: entities.ContractStatusCreated},
		{ID: 2, Status: entities.ContractStatusSigned},
		{ID: 3, Status: entities.ContractStatusSigned},
	}
	result := usecase.FilterResult{Contracts: all[1:], Total: 3}

	res := FromDashboard(usecase.StatusFilter(entities.ContractStatusSigned), result, all)
	if res.Filter != "Signed" || res.Total != 3 || res.Shown != 2 {
		t.Fatalf("unexpected summary: %+v", res)
	}
	wantCounts := map[string]int{"Created": 1, "Approved": 0, "Sent": 0, "Signed": 2, "Locked": 0, "Revoked": 0}
	if diff := cmp.Diff(wantCounts, res.Counts); diff != "" {
		t.Fatalf("unexpected counts (-want +got):\n%s", diff)
	}
	if len(res.Filters) != 7 || res.Filters[0] != "All" {
		t.Fatalf("unexpected filters: %v", res.Filters)
	}
	if len(res.Stages) != 5 || res.Stages[4] != "Locked" {
		t.Fatalf("unexpected stages: %v", res.Stages)
	}
}

func TestFromBlueprints(t *testing.T) {
	bs := []entities.Blueprint{{ID: "blueprint-1", Name: "Standard", Fields: []entities.Field{{ID: "field-1", Type: entities.FieldTypeText, Label: "Client Name"}}}}

	res := FromBlueprints(bs)
	if len(res.Blueprints) != 1 || res.Blueprints[0].Fields[0].Type != "Text" {
		t.Fatalf("unexpected blueprints: %+v", res.Blueprints)
	}
	if diff := cmp.Diff([]string{"Text", "Date", "Signature", "Checkbox"}, res.FieldTypes); diff != "" {
		t.Fatalf("unexpected field types (-want +got):\n%s", diff)
	}
}

func TestFromContractForm(t *testing.T) {
	bp := entities.Blueprint{ID: "blueprint-2", Name: "Employment Contract"}
	form := usecase.ContractForm{
		Blueprints:    []usecase.BlueprintOption{{ID: "blueprint-2", Name: "Employment Contract"}},
		Selected:      &bp,
		ContractTypes: entities.ContractTypes,
		DefaultType:   entities.DefaultContractType,
	}

	res := FromContractForm(form)
	if res.Selected == nil || res.Selected.ID != "blueprint-2" || len(res.Blueprints) != 1 {
		t.Fatalf("unexpected form: %+v", res)
	}
	if res.DefaultType != "Standard" {
		t.Fatalf("unexpected default type %q", res.DefaultType)
	}
}
