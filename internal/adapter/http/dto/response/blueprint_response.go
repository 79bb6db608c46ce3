package response

import (
	"contract_tracker/internal/domain/entities"
)

type PositionResponse struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type FieldResponse struct {
	ID       string           `json:"id"`
	Type     string           `json:"type"`
	Label    string           `json:"label"`
	Position PositionResponse `json:"position"`
	Required bool             `json:"required"`
}

type BlueprintResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Fields      []FieldResponse `json:"fields"`
	CreatedAt   string          `json:"created_at"`
}

type BlueprintListResponse struct {
	Blueprints []BlueprintResponse `json:"blueprints"`
	FieldTypes []string            `json:"field_types"`
}

func FromField(f entities.Field) FieldResponse {
	return FieldResponse{
		ID:       f.ID,
		Type:     string(f.Type),
		Label:    f.Label,
		Position: PositionResponse{X: f.Position.X, Y: f.Position.Y},
		Required: f.Required,
	}
}

func FromBlueprint(b entities.Blueprint) BlueprintResponse {
	fields := make([]FieldResponse, 0, len(b.Fields))
	for _, f := range b.Fields {
		fields = append(fields, FromField(f))
	}
	return BlueprintResponse{
		ID:          b.ID,
		Name:        b.Name,
		Description: b.Description,
		Fields:      fields,
		CreatedAt:   b.CreatedAt,
	}
}

func FromBlueprints(bs []entities.Blueprint) BlueprintListResponse {
	out := BlueprintListResponse{
		Blueprints: make([]BlueprintResponse, 0, len(bs)),
		FieldTypes: make([]string, 0, len(entities.FieldTypes)),
	}
	for _, b := range bs {
		out.Blueprints = append(out.Blueprints, FromBlueprint(b))
	}
	for _, ft := range entities.FieldTypes {
		out.FieldTypes = append(out.FieldTypes, string(ft))
	}
	return out
}
