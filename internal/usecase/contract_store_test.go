package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"contract_tracker/internal/domain/entities"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func newTestContractStore(t *testing.T, kv *memKV, opts ...StoreOption) *ContractStore {
	t.Helper()
	opts = append([]StoreOption{WithClock(fixedClock)}, opts...)
	s, err := NewContractStore(context.Background(), kv, nil, opts...)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return s
}

func TestNewContractStore_SeedsAndPersists(t *testing.T) {
	for _, stored := range []string{"garbage", `[{"id":1,"status":"Pending"},{"id":2,"name":"y"}]`} {
		t.Run(stored, func(t *testing.T) {
			assertSeededContracts(t, stored)
		})
	}
}

func assertSeededContracts(t *testing.T, stored string) {
	t.Helper()
	kv := newMemKV()
	kv.put(ContractDataKey, stored)
	s := newTestContractStore(t, kv)

	got := s.List()
	wantIDs := []int{12345, 23456, 34567, 45678, 56789}
	wantStatus := []entities.ContractStatus{
		entities.ContractStatusApproved,
		entities.ContractStatusSent,
		entities.ContractStatusSigned,
		entities.ContractStatusCreated,
		entities.ContractStatusLocked,
	}
	if len(got) != len(wantIDs) {
		t.Fatalf("expected %d contracts, got %d", len(wantIDs), len(got))
	}
	for i, c := range got {
		if c.ID != wantIDs[i] || c.Status != wantStatus[i] || c.Signature != nil {
			t.Fatalf("unexpected seed contract %d: %+v", i, c)
		}
	}
	if kv.writes != 1 {
		t.Fatalf("expected the seed to be written once, got %d", kv.writes)
	}

	reloaded := newTestContractStore(t, kv)
	if diff := cmp.Diff(got, reloaded.List()); diff != "" {
		t.Fatalf("reload mismatch (-want +got):\n%s", diff)
	}
}

func TestContractStore_Add(t *testing.T) {
	ctx := context.Background()

	t.Run("always starts at Created", func(t *testing.T) {
		s := newTestContractStore(t, newMemKV(), WithRandom(sequence(100)))
		sig := "data:image/png;base64,AAAA"
		c, err := s.Add(ctx, entities.Contract{
			ID:        1,
			Name:      "NDA",
			Type:      "Standard",
			Status:    entities.ContractStatusLocked,
			RevokedAt: "1/1/2020",
			Signature: &sig,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.ID != 10100 || c.Status != entities.ContractStatusCreated || c.CreatedAt != "3/4/2025" || c.RevokedAt != "" {
			t.Fatalf("unexpected contract: %+v", c)
		}
		got, ok := s.Get(c.ID)
		if !ok || got.Signature == nil || *got.Signature != sig {
			t.Fatalf("signature not kept: %+v", got)
		}
	})

	t.Run("empty signature becomes null", func(t *testing.T) {
		s := newTestContractStore(t, newMemKV(), WithRandom(sequence(1)))
		empty := ""
		c, err := s.Add(ctx, entities.Contract{Name: "x", Signature: &empty})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.Signature != nil {
			t.Fatalf("expected nil signature")
		}
	})

	t.Run("id stays in range and avoids live ids", func(t *testing.T) {
		// 2345 + 10000 collides with seed contract 12345.
		s := newTestContractStore(t, newMemKV(), WithRandom(sequence(2345, 2345, 2346)))
		c, err := s.Add(ctx, entities.Contract{Name: "x"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.ID != 12346 {
			t.Fatalf("expected 12346, got %d", c.ID)
		}
	})

	t.Run("falls back to scanning after repeated collisions", func(t *testing.T) {
		s := newTestContractStore(t, newMemKV(), WithRandom(sequence(2345)))
		c, err := s.Add(ctx, entities.Contract{Name: "x"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.ID != 12346 {
			t.Fatalf("expected 12346, got %d", c.ID)
		}
	})

	t.Run("exhausted id space", func(t *testing.T) {
		full := make([]entities.Contract, 0, maxContractID-minContractID+1)
		for id := minContractID; id <= maxContractID; id++ {
			full = append(full, entities.Contract{ID: id, Status: entities.ContractStatusCreated})
		}
		s := newTestContractStore(t, newMemKV(), WithContractSeed(func(time.Time) []entities.Contract { return full }))
		if _, err := s.Add(ctx, entities.Contract{Name: "x"}); !errors.Is(err, ErrContractIDSpaceExhausted) {
			t.Fatalf("expected ErrContractIDSpaceExhausted, got %v", err)
		}
	})
}

func TestContractStore_Lifecycle(t *testing.T) {
	ctx := context.Background()

	t.Run("four advances reach Locked, the fifth is a no-op", func(t *testing.T) {
		kv := newMemKV()
		s := newTestContractStore(t, kv, WithRandom(sequence(7)))
		c, err := s.Add(ctx, entities.Contract{Name: "x"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := []entities.ContractStatus{
			entities.ContractStatusApproved,
			entities.ContractStatusSent,
			entities.ContractStatusSigned,
			entities.ContractStatusLocked,
			entities.ContractStatusLocked,
		}
		for i, status := range want {
			writes := kv.writes
			if err := s.Advance(ctx, c.ID); err != nil {
				t.Fatalf("advance %d: %v", i+1, err)
			}
			got, _ := s.Get(c.ID)
			if got.Status != status {
				t.Fatalf("advance %d: expected %s, got %s", i+1, status, got.Status)
			}
			if kv.writes != writes+1 {
				t.Fatalf("advance %d did not persist", i+1)
			}
		}
	})

	t.Run("revoke is sticky", func(t *testing.T) {
		s := newTestContractStore(t, newMemKV())
		if err := s.Revoke(ctx, 56789); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := s.Advance(ctx, 56789); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got, _ := s.Get(56789)
		if got.Status != entities.ContractStatusRevoked || got.RevokedAt != "3/4/2025" {
			t.Fatalf("unexpected contract: %+v", got)
		}
	})

	t.Run("advance only touches the target", func(t *testing.T) {
		s := newTestContractStore(t, newMemKV())
		before := s.List()
		if err := s.Advance(ctx, 45678); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		after := s.List()
		for i := range before {
			if before[i].ID == 45678 {
				continue
			}
			if diff := cmp.Diff(before[i], after[i]); diff != "" {
				t.Fatalf("contract %d changed (-want +got):\n%s", before[i].ID, diff)
			}
		}
	})

	t.Run("delete then get is absent", func(t *testing.T) {
		kv := newMemKV()
		s := newTestContractStore(t, kv)
		if err := s.Delete(ctx, 23456); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, ok := s.Get(23456); ok {
			t.Fatalf("expected 23456 to be gone")
		}
		reloaded := newTestContractStore(t, kv)
		if _, ok := reloaded.Get(23456); ok {
			t.Fatalf("delete was not persisted")
		}
		if diff := cmp.Diff(s.List(), reloaded.List(), cmpopts.EquateEmpty()); diff != "" {
			t.Fatalf("reload mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestContractStore_Filter(t *testing.T) {
	s := newTestContractStore(t, newMemKV())
	if err := s.Revoke(context.Background(), 12345); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cases := []struct {
		filter StatusFilter
		want   []int
	}{
		{filter: StatusFilterAll, want: []int{12345, 23456, 34567, 45678, 56789}},
		{filter: StatusFilter(entities.ContractStatusSent), want: []int{23456}},
		{filter: StatusFilter(entities.ContractStatusRevoked), want: []int{12345}},
		{filter: StatusFilter(entities.ContractStatusApproved), want: []int{}},
	}
	for _, tc := range cases {
		t.Run(string(tc.filter), func(t *testing.T) {
			res := s.Filter(tc.filter)
			if res.Total != 5 {
				t.Fatalf("expected total 5, got %d", res.Total)
			}
			ids := make([]int, 0, len(res.Contracts))
			for _, c := range res.Contracts {
				ids = append(ids, c.ID)
			}
			if diff := cmp.Diff(tc.want, ids); diff != "" {
				t.Fatalf("ids mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseStatusFilter(t *testing.T) {
	cases := map[string]StatusFilter{
		"":        StatusFilterAll,
		"all":     StatusFilterAll,
		"revoked": StatusFilter(entities.ContractStatusRevoked),
		" Sent ":  StatusFilter(entities.ContractStatusSent),
	}
	for in, want := range cases {
		got, err := ParseStatusFilter(in)
		if err != nil || got != want {
			t.Fatalf("ParseStatusFilter(%q) = (%q, %v), want %q", in, got, err, want)
		}
	}
	if _, err := ParseStatusFilter("Draft"); !errors.Is(err, ErrInvalidStatusFilter) {
		t.Fatalf("expected ErrInvalidStatusFilter, got %v", err)
	}
	if got := len(StatusFilters()); got != 7 {
		t.Fatalf("expected 7 filter options, got %d", got)
	}
}

func TestContractStore_Stages(t *testing.T) {
	s := newTestContractStore(t, newMemKV())
	want := []entities.ContractStatus{"Created", "Approved", "Sent", "Signed", "Locked"}
	if diff := cmp.Diff(want, s.Stages()); diff != "" {
		t.Fatalf("stages mismatch (-want +got):\n%s", diff)
	}
}
