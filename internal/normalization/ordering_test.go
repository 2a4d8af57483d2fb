package normalization

import (
	"testing"

	"xrpl-money-flow/internal/domain"
)

func TestSortEvents(t *testing.T) {
	events := []*domain.MoneyFlowEvent{
		{TxHash: "c", LedgerIndex: 2, InLedgerIndex: 1},
		{TxHash: "a", LedgerIndex: 1, InLedgerIndex: 1},
		{TxHash: "b", LedgerIndex: 1, InLedgerIndex: 2},
	}

	SortEvents(events)

	want := []string{"a", "b", "c"}
	for i, tx := range want {
		if events[i].TxHash != tx {
			t.Errorf("events[%d] = %s, want %s", i, events[i].TxHash, tx)
		}
	}
	if !IsOrdered(events) {
		t.Error("sorted events reported as unordered")
	}
}

func TestIsOrdered(t *testing.T) {
	ordered := []*domain.MoneyFlowEvent{
		{LedgerIndex: 1, InLedgerIndex: 1},
		{LedgerIndex: 1, InLedgerIndex: 1}, // equal neighbors are ordered
		{LedgerIndex: 1, InLedgerIndex: 2},
		{LedgerIndex: 5, InLedgerIndex: 0},
	}
	if !IsOrdered(ordered) {
		t.Error("expected ordered")
	}

	unordered := []*domain.MoneyFlowEvent{
		{LedgerIndex: 2, InLedgerIndex: 0},
		{LedgerIndex: 1, InLedgerIndex: 0},
	}
	if IsOrdered(unordered) {
		t.Error("expected unordered")
	}

	if !IsOrdered(nil) {
		t.Error("empty input is ordered")
	}
}
