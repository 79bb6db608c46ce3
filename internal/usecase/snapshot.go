package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"contract_tracker/internal/domain/entities"
	"contract_tracker/internal/usecase/interfaces"
)

const (
	BlueprintDataKey = "blueprint_data"
	ContractDataKey  = "contract_data"
)

// Snapshot reasons. LoadSnapshot wraps one of these when the stored value
// cannot be used as a collection; anything else it returns is a backend failure.
var (
	ErrSnapshotMissing = errors.New("snapshot missing")
	ErrSnapshotCorrupt = errors.New("snapshot corrupt")
	ErrSnapshotEmpty   = errors.New("snapshot empty")
)

// IsSnapshotReason reports whether err says the stored value is unusable (as
// opposed to the backend being unreachable).
func IsSnapshotReason(err error) bool {
	return errors.Is(err, ErrSnapshotMissing) || errors.Is(err, ErrSnapshotCorrupt) || errors.Is(err, ErrSnapshotEmpty)
}

// LoadSnapshot reads and decodes the collection stored under key. Every
// decoded record must pass check, otherwise the whole value is corrupt.
func LoadSnapshot[T any](ctx context.Context, kv interfaces.IKeyValueStore, key string, check func(T) error) ([]T, error) {
	raw, found, err := kv.GetItem(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", key, err)
	}
	if !found {
		return nil, fmt.Errorf("%s: %w", key, ErrSnapshotMissing)
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("%s: %w: %v", key, ErrSnapshotCorrupt, err)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%s: %w", key, ErrSnapshotEmpty)
	}
	if check != nil {
		for i, item := range items {
			if err := check(item); err != nil {
				return nil, fmt.Errorf("%s: %w: element %d: %v", key, ErrSnapshotCorrupt, i, err)
			}
		}
	}
	return items, nil
}

func checkBlueprint(bp entities.Blueprint) error {
	return checkFieldTypes(bp.Fields)
}

func checkContract(c entities.Contract) error {
	if !c.Status.Valid() {
		return fmt.Errorf("contract %d: unknown status %q", c.ID, c.Status)
	}
	fields := make([]entities.Field, len(c.BlueprintFields))
	for i, f := range c.BlueprintFields {
		fields[i] = f.Field
	}
	if err := checkFieldTypes(fields); err != nil {
		return fmt.Errorf("contract %d: %w", c.ID, err)
	}
	return nil
}

func checkFieldTypes(fields []entities.Field) error {
	for _, f := range fields {
		if !f.Type.Valid() {
			return fmt.Errorf("field %s: unknown type %q", f.ID, f.Type)
		}
	}
	return nil
}

// SaveSnapshot serializes items and writes them under key.
func SaveSnapshot[T any](ctx context.Context, kv interfaces.IKeyValueStore, key string, items []T) error {
	if items == nil {
		items = []T{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := kv.SetItem(ctx, key, b); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}
