package usecase

import (
	"context"
	"sync"
	"time"
)

var fixedNow = time.Date(2025, time.March, 4, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

// memKV is a minimal key-value store for exercising the stores end to end.
type memKV struct {
	mu     sync.Mutex
	items  map[string][]byte
	writes int
}

func newMemKV() *memKV {
	return &memKV{items: map[string][]byte{}}
}

func (m *memKV) GetItem(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.items[key]
	return v, ok, nil
}

func (m *memKV) SetItem(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[key] = append([]byte(nil), value...)
	m.writes++
	return nil
}

func (m *memKV) put(key, value string) {
	m.items[key] = []byte(value)
}

// sequence returns an intN that replays values, then repeats the last one.
func sequence(values ...int) func(int) int {
	i := 0
	return func(n int) int {
		v := values[i]
		if i < len(values)-1 {
			i++
		}
		return v % n
	}
}
