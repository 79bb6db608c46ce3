package request

import (
	"strings"

	"contract_tracker/internal/domain/entities"
)

type PositionRequest struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// FieldRequest is one field of the blueprint editor. Fields sent with an id
// are kept as they are; fields without one are added as new fields.
type FieldRequest struct {
	ID       string           `json:"id"`
	Type     string           `json:"type" binding:"required"`
	Label    string           `json:"label"`
	Position *PositionRequest `json:"position"`
	Required bool             `json:"required"`
}

type BlueprintRequest struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Fields      []FieldRequest `json:"fields"`
}

func (r FieldRequest) ResolveID() string {
	return strings.TrimSpace(r.ID)
}

// ResolveType returns the field type, or "" when the name is unknown so the
// editor can reject it.
func (r FieldRequest) ResolveType() entities.FieldType {
	ft, ok := entities.ParseFieldType(r.Type)
	if !ok {
		return entities.FieldType(strings.TrimSpace(r.Type))
	}
	return ft
}

func (r FieldRequest) ResolvePosition() *entities.Position {
	if r.Position == nil {
		return nil
	}
	return &entities.Position{X: r.Position.X, Y: r.Position.Y}
}
