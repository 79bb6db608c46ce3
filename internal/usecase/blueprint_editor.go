package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"contract_tracker/internal/domain/entities"
)

var (
	ErrBlueprintNameRequired = errors.New("blueprint name is required")
	ErrInvalidFieldType      = errors.New("invalid field type")
	ErrFieldNotFound         = errors.New("field not found")
	ErrDuplicateFieldID      = errors.New("duplicate field id")
)

const (
	newFieldX       = 50
	newFieldTop     = 50
	newFieldSpacing = 80
)

// FieldPatch changes one field in the editor draft. Nil members are kept.
type FieldPatch struct {
	Label    *string
	Position *entities.Position
	Required *bool
}

// BlueprintEditor is a single create or edit session over a blueprint draft.
// Nothing reaches the store until Save.
type BlueprintEditor struct {
	editingID   string
	name        string
	description string
	fields      []entities.Field
	counter     int
}

// NewBlueprintEditor starts a session for a new blueprint.
func NewBlueprintEditor() *BlueprintEditor {
	return &BlueprintEditor{fields: []entities.Field{}}
}

// EditBlueprint starts a session over an existing blueprint; Save updates it
// in place.
func EditBlueprint(bp entities.Blueprint) *BlueprintEditor {
	bp = bp.Clone()
	return &BlueprintEditor{
		editingID:   bp.ID,
		name:        bp.Name,
		description: bp.Description,
		fields:      bp.Fields,
	}
}

func (e *BlueprintEditor) Editing() bool { return e.editingID != "" }

func (e *BlueprintEditor) SetName(name string) { e.name = name }

func (e *BlueprintEditor) SetDescription(desc string) { e.description = desc }

// AddField appends a field of type ft below the existing ones and returns it.
func (e *BlueprintEditor) AddField(ft entities.FieldType) (entities.Field, error) {
	if !ft.Valid() {
		return entities.Field{}, fmt.Errorf("%w: %q", ErrInvalidFieldType, ft)
	}
	f := entities.Field{
		ID:    e.nextFieldID(ft),
		Type:  ft,
		Label: string(ft) + " Field",
		Position: entities.Position{
			X: newFieldX,
			Y: newFieldTop + newFieldSpacing*float64(len(e.fields)),
		},
	}
	e.fields = append(e.fields, f)
	return f, nil
}

// KeepField appends a field that already has an id, as sent back by a client
// editing an existing layout.
func (e *BlueprintEditor) KeepField(f entities.Field) error {
	if !f.Type.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidFieldType, f.Type)
	}
	if e.indexOf(f.ID) >= 0 {
		return fmt.Errorf("%w: %s", ErrDuplicateFieldID, f.ID)
	}
	e.fields = append(e.fields, f)
	return nil
}

func (e *BlueprintEditor) UpdateField(id string, patch FieldPatch) (entities.Field, error) {
	i := e.indexOf(id)
	if i < 0 {
		return entities.Field{}, fmt.Errorf("%w: %s", ErrFieldNotFound, id)
	}
	f := &e.fields[i]
	if patch.Label != nil {
		f.Label = *patch.Label
	}
	if patch.Position != nil {
		f.Position = *patch.Position
	}
	if patch.Required != nil {
		f.Required = *patch.Required
	}
	return *f, nil
}

// RemoveField drops the field with the given id and reports whether it existed.
func (e *BlueprintEditor) RemoveField(id string) bool {
	i := e.indexOf(id)
	if i < 0 {
		return false
	}
	e.fields = append(e.fields[:i], e.fields[i+1:]...)
	return true
}

func (e *BlueprintEditor) ClearFields() {
	e.fields = []entities.Field{}
}

// Draft returns the blueprint as it would be saved.
func (e *BlueprintEditor) Draft() entities.Blueprint {
	bp := entities.Blueprint{
		ID:          e.editingID,
		Name:        e.name,
		Description: e.description,
		Fields:      e.fields,
	}
	return bp.Clone()
}

// Save writes the draft: Update when editing, Add otherwise. It returns the
// blueprint id. A blank name aborts with ErrBlueprintNameRequired.
func (e *BlueprintEditor) Save(ctx context.Context, store IBlueprintStore) (string, error) {
	if strings.TrimSpace(e.name) == "" {
		return "", ErrBlueprintNameRequired
	}
	draft := e.Draft()
	if !e.Editing() {
		return store.Add(ctx, draft)
	}
	patch := BlueprintPatch{
		Name:        &draft.Name,
		Description: &draft.Description,
		Fields:      &draft.Fields,
	}
	if err := store.Update(ctx, e.editingID, patch); err != nil {
		return "", err
	}
	return e.editingID, nil
}

func (e *BlueprintEditor) indexOf(id string) int {
	for i, f := range e.fields {
		if f.ID == id {
			return i
		}
	}
	return -1
}

// nextFieldID skips counter values whose id is already in the draft, so
// fields loaded from an earlier session keep their ids unique.
func (e *BlueprintEditor) nextFieldID(ft entities.FieldType) string {
	for {
		e.counter++
		id := fmt.Sprintf("field-%s-%d", strings.ToLower(string(ft)), e.counter)
		if e.indexOf(id) < 0 {
			return id
		}
	}
}
