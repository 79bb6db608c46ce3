package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"contract_tracker/internal/domain/entities"
	"contract_tracker/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrBlueprintNotFound    = errors.New("blueprint not found")
	ErrBlueprintIDExhausted = errors.New("no free blueprint id")
)

// BlueprintPatch is a shallow merge applied by Update. Nil members are left
// untouched; there is no way to change a blueprint id or its creation date.
type BlueprintPatch struct {
	Name        *string
	Description *string
	Fields      *[]entities.Field
}

// IBlueprintStore holds the blueprint collection.
//
// Every mutation writes the whole collection to blueprint_data before it
// becomes visible to readers.

type IBlueprintStore interface {
	Add(ctx context.Context, draft entities.Blueprint) (string, error)
	Get(id string) (entities.Blueprint, bool)
	List() []entities.Blueprint
	Update(ctx context.Context, id string, patch BlueprintPatch) error
	Delete(ctx context.Context, id string) error
}

type BlueprintStore struct {
	mu         sync.RWMutex
	blueprints []entities.Blueprint
	kv         interfaces.IKeyValueStore
	opts       storeOptions
	log        *zap.Logger
}

var _ IBlueprintStore = (*BlueprintStore)(nil)

// NewBlueprintStore loads blueprint_data from kv. A missing, unreadable or
// empty snapshot is replaced by the seed set, which is written back at once.
// Backend errors are returned.
func NewBlueprintStore(ctx context.Context, kv interfaces.IKeyValueStore, logger *zap.Logger, opts ...StoreOption) (*BlueprintStore, error) {
	s := &BlueprintStore{
		kv:   kv,
		opts: newStoreOptions(opts),
		log:  namedLogger(logger, "blueprint.store"),
	}

	items, err := LoadSnapshot(ctx, kv, BlueprintDataKey, checkBlueprint)
	switch {
	case err == nil:
		s.log.Info("load done", zap.Int("count", len(items)))
	case IsSnapshotReason(err):
		items = s.opts.blueprintSeed(s.opts.now())
		s.log.Warn("load fallback to seed", zap.Error(err), zap.Int("count", len(items)))
		if err := SaveSnapshot(ctx, kv, BlueprintDataKey, items); err != nil {
			return nil, fmt.Errorf("persist blueprint seed: %w", err)
		}
	default:
		return nil, fmt.Errorf("load blueprints: %w", err)
	}

	s.blueprints = items
	return s, nil
}

func (s *BlueprintStore) Add(ctx context.Context, draft entities.Blueprint) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := s.nextID()
	if err != nil {
		return "", err
	}
	bp := draft.Clone()
	bp.ID = id
	bp.CreatedAt = s.opts.today()

	next := make([]entities.Blueprint, 0, len(s.blueprints)+1)
	next = append(next, s.blueprints...)
	next = append(next, bp)
	if err := s.commit(ctx, next); err != nil {
		return "", err
	}
	s.log.Info("add done", zap.String("id", id), zap.String("name", bp.Name), zap.Int("fields", len(bp.Fields)))
	return id, nil
}

func (s *BlueprintStore) Get(id string) (entities.Blueprint, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, bp := range s.blueprints {
		if bp.ID == id {
			return bp.Clone(), true
		}
	}
	return entities.Blueprint{}, false
}

func (s *BlueprintStore) List() []entities.Blueprint {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entities.Blueprint, len(s.blueprints))
	for i, bp := range s.blueprints {
		out[i] = bp.Clone()
	}
	return out
}

func (s *BlueprintStore) Update(ctx context.Context, id string, patch BlueprintPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]entities.Blueprint, len(s.blueprints))
	matched := false
	for i, bp := range s.blueprints {
		if bp.ID == id {
			bp = applyBlueprintPatch(bp.Clone(), patch)
			matched = true
		}
		next[i] = bp
	}
	if err := s.commit(ctx, next); err != nil {
		return err
	}
	s.log.Info("update done", zap.String("id", id), zap.Bool("matched", matched))
	return nil
}

func (s *BlueprintStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]entities.Blueprint, 0, len(s.blueprints))
	for _, bp := range s.blueprints {
		if bp.ID != id {
			next = append(next, bp)
		}
	}
	removed := len(next) != len(s.blueprints)
	if err := s.commit(ctx, next); err != nil {
		return err
	}
	s.log.Info("delete done", zap.String("id", id), zap.Bool("removed", removed))
	return nil
}

// commit persists next and only then makes it the live collection.
func (s *BlueprintStore) commit(ctx context.Context, next []entities.Blueprint) error {
	if err := SaveSnapshot(ctx, s.kv, BlueprintDataKey, next); err != nil {
		s.log.Error("persist failed", zap.Error(err))
		return fmt.Errorf("persist blueprints: %w", err)
	}
	s.blueprints = next
	return nil
}

func (s *BlueprintStore) nextID() (string, error) {
	taken := make(map[string]struct{}, len(s.blueprints))
	for _, bp := range s.blueprints {
		taken[bp.ID] = struct{}{}
	}
	ms := s.opts.now().UnixMilli()

	for i := 0; i < maxIDAttempts; i++ {
		id := fmt.Sprintf("blueprint-%d-%d", ms, s.opts.intN(1000))
		if _, dup := taken[id]; !dup {
			return id, nil
		}
	}
	for n := 0; n < 1000; n++ {
		id := fmt.Sprintf("blueprint-%d-%d", ms, n)
		if _, dup := taken[id]; !dup {
			return id, nil
		}
	}
	return "", ErrBlueprintIDExhausted
}

func applyBlueprintPatch(bp entities.Blueprint, patch BlueprintPatch) entities.Blueprint {
	if patch.Name != nil {
		bp.Name = *patch.Name
	}
	if patch.Description != nil {
		bp.Description = *patch.Description
	}
	if patch.Fields != nil {
		bp.Fields = make([]entities.Field, len(*patch.Fields))
		copy(bp.Fields, *patch.Fields)
	}
	return bp
}
