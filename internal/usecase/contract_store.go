package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"contract_tracker/internal/domain/entities"
	"contract_tracker/internal/usecase/interfaces"

	"go.uber.org/zap"
)

const (
	minContractID = 10000
	maxContractID = 99999
)

var (
	ErrContractNotFound         = errors.New("contract not found")
	ErrContractIDSpaceExhausted = errors.New("no free contract id")
	ErrInvalidStatusFilter      = errors.New("invalid status filter")
)

// StatusFilter selects contracts on the dashboard: StatusFilterAll or one
// ContractStatus.
type StatusFilter string

const StatusFilterAll StatusFilter = "All"

// StatusFilters lists the filter options in dashboard order.
func StatusFilters() []StatusFilter {
	out := []StatusFilter{StatusFilterAll}
	for _, s := range entities.PipelineStages() {
		out = append(out, StatusFilter(s))
	}
	return append(out, StatusFilter(entities.ContractStatusRevoked))
}

// ParseStatusFilter accepts "" (meaning All) or any filter name, ignoring case.
func ParseStatusFilter(s string) (StatusFilter, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return StatusFilterAll, nil
	}
	for _, f := range StatusFilters() {
		if strings.EqualFold(string(f), s) {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidStatusFilter, s)
}

func (f StatusFilter) Matches(status entities.ContractStatus) bool {
	return f == StatusFilterAll || entities.ContractStatus(f) == status
}

// FilterResult is one dashboard page: the matching contracts and the size of
// the whole collection.
type FilterResult struct {
	Contracts []entities.Contract
	Total     int
}

// IContractStore holds the contract collection and drives the pipeline.
//
// Lifecycle rules:
//   - Add always starts a contract at Created.
//   - Advance moves one stage forward and is a no-op at Locked or Revoked.
//   - Revoke is allowed from any status and is final.

type IContractStore interface {
	Add(ctx context.Context, draft entities.Contract) (entities.Contract, error)
	Get(id int) (entities.Contract, bool)
	List() []entities.Contract
	Filter(filter StatusFilter) FilterResult
	Advance(ctx context.Context, id int) error
	Revoke(ctx context.Context, id int) error
	Delete(ctx context.Context, id int) error
	Stages() []entities.ContractStatus
}

type ContractStore struct {
	mu        sync.RWMutex
	contracts []entities.Contract
	kv        interfaces.IKeyValueStore
	opts      storeOptions
	log       *zap.Logger
}

var _ IContractStore = (*ContractStore)(nil)

// NewContractStore loads contract_data from kv, falling back to the seed set
// the same way NewBlueprintStore does.
func NewContractStore(ctx context.Context, kv interfaces.IKeyValueStore, logger *zap.Logger, opts ...StoreOption) (*ContractStore, error) {
	s := &ContractStore{
		kv:   kv,
		opts: newStoreOptions(opts),
		log:  namedLogger(logger, "contract.store"),
	}

	items, err := LoadSnapshot(ctx, kv, ContractDataKey, checkContract)
	switch {
	case err == nil:
		s.log.Info("load done", zap.Int("count", len(items)))
	case IsSnapshotReason(err):
		items = s.opts.contractSeed(s.opts.now())
		s.log.Warn("load fallback to seed", zap.Error(err), zap.Int("count", len(items)))
		if err := SaveSnapshot(ctx, kv, ContractDataKey, items); err != nil {
			return nil, fmt.Errorf("persist contract seed: %w", err)
		}
	default:
		return nil, fmt.Errorf("load contracts: %w", err)
	}

	s.contracts = items
	return s, nil
}

func (s *ContractStore) Add(ctx context.Context, draft entities.Contract) (entities.Contract, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := s.nextID()
	if err != nil {
		return entities.Contract{}, err
	}
	c := draft.Clone()
	c.ID = id
	c.Status = entities.ContractStatusCreated
	c.CreatedAt = s.opts.today()
	c.RevokedAt = ""
	if c.Signature != nil && *c.Signature == "" {
		c.Signature = nil
	}

	next := make([]entities.Contract, 0, len(s.contracts)+1)
	next = append(next, s.contracts...)
	next = append(next, c)
	if err := s.commit(ctx, next); err != nil {
		return entities.Contract{}, err
	}
	s.log.Info("add done", zap.Int("id", id), zap.String("name", c.Name), zap.String("blueprint_id", c.BlueprintID))
	return c.Clone(), nil
}

func (s *ContractStore) Get(id int) (entities.Contract, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.contracts {
		if c.ID == id {
			return c.Clone(), true
		}
	}
	return entities.Contract{}, false
}

func (s *ContractStore) List() []entities.Contract {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entities.Contract, len(s.contracts))
	for i, c := range s.contracts {
		out[i] = c.Clone()
	}
	return out
}

func (s *ContractStore) Filter(filter StatusFilter) FilterResult {
	s.mu.RLock()
	defer s.mu.RUnlock()

	res := FilterResult{Contracts: []entities.Contract{}, Total: len(s.contracts)}
	for _, c := range s.contracts {
		if filter.Matches(c.Status) {
			res.Contracts = append(res.Contracts, c.Clone())
		}
	}
	return res
}

// Advance moves the contract to the next pipeline stage. Locked and Revoked
// contracts, and unknown ids, are left as they are; the collection is
// persisted either way.
func (s *ContractStore) Advance(ctx context.Context, id int) error {
	return s.mutate(ctx, "advance", id, func(c *entities.Contract) {
		if next, ok := entities.NextStage(c.Status); ok {
			c.Status = next
		}
	})
}

// Revoke marks the contract Revoked and stamps revokedAt with today's date.
func (s *ContractStore) Revoke(ctx context.Context, id int) error {
	today := s.opts.today()
	return s.mutate(ctx, "revoke", id, func(c *entities.Contract) {
		c.Status = entities.ContractStatusRevoked
		c.RevokedAt = today
	})
}

func (s *ContractStore) Delete(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]entities.Contract, 0, len(s.contracts))
	for _, c := range s.contracts {
		if c.ID != id {
			next = append(next, c)
		}
	}
	removed := len(next) != len(s.contracts)
	if err := s.commit(ctx, next); err != nil {
		return err
	}
	s.log.Info("delete done", zap.Int("id", id), zap.Bool("removed", removed))
	return nil
}

func (s *ContractStore) Stages() []entities.ContractStatus {
	return entities.PipelineStages()
}

func (s *ContractStore) mutate(ctx context.Context, action string, id int, fn func(*entities.Contract)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]entities.Contract, len(s.contracts))
	var from, to entities.ContractStatus
	for i, c := range s.contracts {
		if c.ID == id {
			c = c.Clone()
			from = c.Status
			fn(&c)
			to = c.Status
		}
		next[i] = c
	}
	if err := s.commit(ctx, next); err != nil {
		return err
	}
	s.log.Info(action+" done", zap.Int("id", id), zap.String("from", string(from)), zap.String("to", string(to)))
	return nil
}

func (s *ContractStore) commit(ctx context.Context, next []entities.Contract) error {
	if err := SaveSnapshot(ctx, s.kv, ContractDataKey, next); err != nil {
		s.log.Error("persist failed", zap.Error(err))
		return fmt.Errorf("persist contracts: %w", err)
	}
	s.contracts = next
	return nil
}

// nextID draws a random id in [10000, 99999], re-drawing on collision with a
// live contract.
func (s *ContractStore) nextID() (int, error) {
	taken := make(map[int]struct{}, len(s.contracts))
	for _, c := range s.contracts {
		taken[c.ID] = struct{}{}
	}
	span := maxContractID - minContractID + 1

	start := minContractID + s.opts.intN(span)
	if _, dup := taken[start]; !dup {
		return start, nil
	}
	for i := 1; i < maxIDAttempts; i++ {
		id := minContractID + s.opts.intN(span)
		if _, dup := taken[id]; !dup {
			return id, nil
		}
	}
	for off := 1; off < span; off++ {
		id := minContractID + (start-minContractID+off)%span
		if _, dup := taken[id]; !dup {
			return id, nil
		}
	}
	return 0, ErrContractIDSpaceExhausted
}
