package usecase

import (
	"math/rand/v2"
	"time"

	"contract_tracker/internal/domain/entities"

	"go.uber.org/zap"
)

// maxIDAttempts bounds random re-draws before falling back to a scan.
const maxIDAttempts = 64

type storeOptions struct {
	now           func() time.Time
	intN          func(n int) int
	blueprintSeed func(now time.Time) []entities.Blueprint
	contractSeed  func(now time.Time) []entities.Contract
}

// StoreOption configures a BlueprintStore or ContractStore.
type StoreOption func(*storeOptions)

// WithClock replaces time.Now, for stamping createdAt/revokedAt and ids.
func WithClock(now func() time.Time) StoreOption {
	return func(o *storeOptions) {
		if now != nil {
			o.now = now
		}
	}
}

// WithRandom replaces the id generator. intN must return a value in [0, n).
func WithRandom(intN func(n int) int) StoreOption {
	return func(o *storeOptions) {
		if intN != nil {
			o.intN = intN
		}
	}
}

func WithBlueprintSeed(seed func(now time.Time) []entities.Blueprint) StoreOption {
	return func(o *storeOptions) {
		if seed != nil {
			o.blueprintSeed = seed
		}
	}
}

func WithContractSeed(seed func(now time.Time) []entities.Contract) StoreOption {
	return func(o *storeOptions) {
		if seed != nil {
			o.contractSeed = seed
		}
	}
}

func newStoreOptions(opts []StoreOption) storeOptions {
	o := storeOptions{
		now:           time.Now,
		intN:          rand.IntN,
		blueprintSeed: DefaultBlueprints,
		contractSeed:  DefaultContracts,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o storeOptions) today() string {
	return o.now().Format(entities.DateLayout)
}

func namedLogger(logger *zap.Logger, name string) *zap.Logger {
	if logger == nil {
		return zap.NewNop()
	}
	return logger.Named(name)
}
