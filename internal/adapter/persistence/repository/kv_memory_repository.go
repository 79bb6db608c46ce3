package repository

import (
	"context"
	"sync"

	"contract_tracker/internal/usecase/interfaces"
)

// MemoryKVRepository keeps values in process memory. Nothing survives a
// restart, so stores backed by it always start from the seed set.

type MemoryKVRepository struct {
	mu    sync.RWMutex
	items map[string][]byte
}

var _ interfaces.IKeyValueStore = (*MemoryKVRepository)(nil)

func NewMemoryKVRepository() *MemoryKVRepository {
	return &MemoryKVRepository{items: make(map[string][]byte)}
}

func (r *MemoryKVRepository) GetItem(_ context.Context, key string) ([]byte, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.items[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), v...), true, nil
}

func (r *MemoryKVRepository) SetItem(_ context.Context, key string, value []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[key] = append([]byte(nil), value...)
	return nil
}
