package memory

import (
	"context"
	"errors"
	"testing"

	"xrpl-money-flow/internal/domain"
	"xrpl-money-flow/internal/storage"
)

func row(txHash string, ledgerIndex, inLedgerIndex int64) *domain.RawMoneyFlowRow {
	return &domain.RawMoneyFlowRow{
		FromAddress:   "rFrom",
		ToAddress:     "rTo",
		FromAsset:     "XRP",
		ToAsset:       "USD.rIssuer",
		FromAmount:    "100",
		ToAmount:      "50",
		Kind:          domain.KindSwap,
		Timestamp:     "2024-01-01 12:00:00",
		LedgerIndex:   ledgerIndex,
		InLedgerIndex: inLedgerIndex,
		TxHash:        txHash,
	}
}

func TestMoneyFlowStore_InsertBulkAndGet(t *testing.T) {
	ctx := context.Background()
	store := NewMoneyFlowStore()

	rows := []*domain.RawMoneyFlowRow{
		row("C", 2, 0),
		row("A", 1, 0),
		row("B", 1, 1),
	}
	if err := store.InsertBulk(ctx, rows); err != nil {
		t.Fatalf("InsertBulk failed: %v", err)
	}

	got, err := store.GetByAddress(ctx, "rFrom")
	if err != nil {
		t.Fatalf("GetByAddress failed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(got))
	}
	for i, tx := range []string{"A", "B", "C"} {
		if got[i].TxHash != tx {
			t.Errorf("row %d = %s, want %s (ledger order)", i, got[i].TxHash, tx)
		}
	}

	if got, _ := store.GetByAddress(ctx, "rNobody"); len(got) != 0 {
		t.Errorf("unknown address returned %d rows", len(got))
	}
}

func TestMoneyFlowStore_DuplicateKey(t *testing.T) {
	ctx := context.Background()
	store := NewMoneyFlowStore()

	if err := store.InsertBulk(ctx, []*domain.RawMoneyFlowRow{row("A", 1, 0)}); err != nil {
		t.Fatalf("first insert failed: %v", err)
	}

	err := store.InsertBulk(ctx, []*domain.RawMoneyFlowRow{row("B", 2, 0), row("A", 1, 0)})
	if !errors.Is(err, storage.ErrDuplicateKey) {
		t.Fatalf("expected ErrDuplicateKey, got %v", err)
	}

	// The batch must fail atomically: B must not be stored.
	got, _ := store.GetByLedgerRange(ctx, 2, 2)
	if len(got) != 0 {
		t.Errorf("failed batch leaked %d rows", len(got))
	}
}

func TestMoneyFlowStore_IntraBatchDuplicate(t *testing.T) {
	store := NewMoneyFlowStore()

	err := store.InsertBulk(context.Background(), []*domain.RawMoneyFlowRow{
		row("A", 1, 0),
		row("A", 1, 0),
	})
	if !errors.Is(err, storage.ErrDuplicateKey) {
		t.Fatalf("expected ErrDuplicateKey for intra-batch duplicate, got %v", err)
	}
}

func TestMoneyFlowStore_InvalidInput(t *testing.T) {
	store := NewMoneyFlowStore()

	err := store.InsertBulk(context.Background(), []*domain.RawMoneyFlowRow{{TxHash: ""}})
	if !errors.Is(err, storage.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestMoneyFlowStore_GetByAsset(t *testing.T) {
	ctx := context.Background()
	store := NewMoneyFlowStore()

	a := row("A", 1, 0)
	b := row("B", 2, 0)
	b.FromAsset = "AAA.rIss"
	b.ToAsset = "XRP"
	if err := store.InsertBulk(ctx, []*domain.RawMoneyFlowRow{a, b}); err != nil {
		t.Fatalf("InsertBulk failed: %v", err)
	}

	got, err := store.GetByAsset(ctx, "USD.rIssuer")
	if err != nil {
		t.Fatalf("GetByAsset failed: %v", err)
	}
	if len(got) != 1 || got[0].TxHash != "A" {
		t.Errorf("expected only row A, got %+v", got)
	}

	// Either side of the row matches.
	got, _ = store.GetByAsset(ctx, "XRP")
	if len(got) != 2 {
		t.Errorf("expected 2 rows touching XRP, got %d", len(got))
	}
}

func TestMoneyFlowStore_GetByLedgerRange(t *testing.T) {
	ctx := context.Background()
	store := NewMoneyFlowStore()

	if err := store.InsertBulk(ctx, []*domain.RawMoneyFlowRow{
		row("A", 1, 0), row("B", 5, 0), row("C", 10, 0),
	}); err != nil {
		t.Fatalf("InsertBulk failed: %v", err)
	}

	got, err := store.GetByLedgerRange(ctx, 1, 5)
	if err != nil {
		t.Fatalf("GetByLedgerRange failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 rows in [1,5], got %d", len(got))
	}
	if got[0].TxHash != "A" || got[1].TxHash != "B" {
		t.Error("range bounds must be inclusive and ordered")
	}
}

func TestMoneyFlowStore_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	store := NewMoneyFlowStore()

	if err := store.InsertBulk(ctx, []*domain.RawMoneyFlowRow{row("A", 1, 0)}); err != nil {
		t.Fatalf("InsertBulk failed: %v", err)
	}

	got, _ := store.GetByAddress(ctx, "rFrom")
	got[0].FromAmount = "mutated"

	again, _ := store.GetByAddress(ctx, "rFrom")
	if again[0].FromAmount != "100" {
		t.Error("store must not expose internal rows to mutation")
	}
}
