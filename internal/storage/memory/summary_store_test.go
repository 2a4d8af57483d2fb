package memory

import (
	"context"
	"errors"
	"testing"

	"xrpl-money-flow/internal/domain"
	"xrpl-money-flow/internal/storage"
)

func summary(address string, tags ...string) *domain.SmartMoneySummary {
	return &domain.SmartMoneySummary{
		Address:          address,
		ClosedPositions:  2,
		TotalPnl:         90,
		Tags:             tags,
		AssetChainVolume: map[string]float64{"USD.rIssuer": 70},
	}
}

func TestSummaryStore_UpsertAndGet(t *testing.T) {
	ctx := context.Background()
	store := NewSummaryStore()

	if err := store.Upsert(ctx, summary("rA", domain.TagWhale)); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}

	got, err := store.GetByAddress(ctx, "rA")
	if err != nil {
		t.Fatalf("GetByAddress failed: %v", err)
	}
	if got.TotalPnl != 90 || len(got.Tags) != 1 {
		t.Errorf("unexpected summary: %+v", got)
	}

	if _, err := store.GetByAddress(ctx, "rMissing"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestSummaryStore_UpsertReplaces(t *testing.T) {
	ctx := context.Background()
	store := NewSummaryStore()

	if err := store.Upsert(ctx, summary("rA", domain.TagWhale)); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}

	updated := summary("rA", domain.TagBot)
	updated.TotalPnl = -5
	if err := store.Upsert(ctx, updated); err != nil {
		t.Fatalf("second Upsert failed: %v", err)
	}

	got, _ := store.GetByAddress(ctx, "rA")
	if got.TotalPnl != -5 || got.Tags[0] != domain.TagBot {
		t.Errorf("upsert must replace the stored summary, got %+v", got)
	}
}

func TestSummaryStore_GetByTag(t *testing.T) {
	ctx := context.Background()
	store := NewSummaryStore()

	for _, s := range []*domain.SmartMoneySummary{
		summary("rB", domain.TagWhale, domain.TagBot),
		summary("rA", domain.TagWhale),
		summary("rC", domain.TagPassiveTrader),
	} {
		if err := store.Upsert(ctx, s); err != nil {
			t.Fatalf("Upsert failed: %v", err)
		}
	}

	got, err := store.GetByTag(ctx, domain.TagWhale)
	if err != nil {
		t.Fatalf("GetByTag failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 whales, got %d", len(got))
	}
	if got[0].Address != "rA" || got[1].Address != "rB" {
		t.Error("results must be ordered by address")
	}

	if got, _ := store.GetByTag(ctx, "NO_SUCH_TAG"); len(got) != 0 {
		t.Errorf("unknown tag returned %d summaries", len(got))
	}
}

func TestSummaryStore_InvalidInput(t *testing.T) {
	store := NewSummaryStore()

	if err := store.Upsert(context.Background(), nil); !errors.Is(err, storage.ErrInvalidInput) {
		t.Errorf("nil summary: expected ErrInvalidInput, got %v", err)
	}
	if err := store.Upsert(context.Background(), &domain.SmartMoneySummary{}); !errors.Is(err, storage.ErrInvalidInput) {
		t.Errorf("empty address: expected ErrInvalidInput, got %v", err)
	}
}

func TestSummaryStore_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	store := NewSummaryStore()

	if err := store.Upsert(ctx, summary("rA", domain.TagWhale)); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}

	got, _ := store.GetByAddress(ctx, "rA")
	got.AssetChainVolume["USD.rIssuer"] = -1
	got.Tags[0] = "MUTATED"

	again, _ := store.GetByAddress(ctx, "rA")
	if again.AssetChainVolume["USD.rIssuer"] != 70 || again.Tags[0] != domain.TagWhale {
		t.Error("store must not expose internal state to mutation")
	}
}
