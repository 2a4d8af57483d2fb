package ledger

import (
	"testing"

	"xrpl-money-flow/internal/domain"
)

func TestAllocateChain_SingleHop(t *testing.T) {
	chain := []domain.ChainStep{
		{FromAsset: "XRP", ToAsset: "USD.rIss", FromAmount: 200, ToAmount: 100},
	}

	out := AllocateChain(chain, 100, 300)

	if len(out) != 1 {
		t.Fatalf("expected 1 hop, got %d", len(out))
	}
	if out[0].ProportionalFromAmount != 100 || out[0].ProportionalToAmount != 300 {
		t.Errorf("hop = (%f, %f), want (100, 300)",
			out[0].ProportionalFromAmount, out[0].ProportionalToAmount)
	}
}

func TestAllocateChain_MultiHopBackwardProportion(t *testing.T) {
	// XRP -> AAA -> BBB -> XRP; half of the BBB position is realized.
	chain := []domain.ChainStep{
		{FromAsset: "XRP", ToAsset: "AAA", FromAmount: 200, ToAmount: 100},
		{FromAsset: "AAA", ToAsset: "BBB", FromAmount: 100, ToAmount: 40},
		{FromAsset: "BBB", ToAsset: "XRP", FromAmount: 20, ToAmount: 90},
	}

	out := AllocateChain(chain, 20, 90)

	last := out[2]
	if last.ProportionalFromAmount != 20 || last.ProportionalToAmount != 90 {
		t.Errorf("last hop = (%f, %f), want (20, 90)",
			last.ProportionalFromAmount, last.ProportionalToAmount)
	}

	// Hop 1: proportion = 20/40 = 0.5
	if !approxEqual(out[1].ProportionalFromAmount, 50) || !approxEqual(out[1].ProportionalToAmount, 20) {
		t.Errorf("hop 1 = (%f, %f), want (50, 20)",
			out[1].ProportionalFromAmount, out[1].ProportionalToAmount)
	}

	// Hop 0: proportion = 50/100 = 0.5
	if !approxEqual(out[0].ProportionalFromAmount, 100) || !approxEqual(out[0].ProportionalToAmount, 50) {
		t.Errorf("hop 0 = (%f, %f), want (100, 50)",
			out[0].ProportionalFromAmount, out[0].ProportionalToAmount)
	}

	// Telescoping across all adjacent hops
	for i := 0; i < len(out)-1; i++ {
		if !approxEqual(out[i].ProportionalToAmount, out[i+1].ProportionalFromAmount) {
			t.Errorf("hop %d does not telescope", i)
		}
	}
}

func TestAllocateChain_DoesNotMutateInput(t *testing.T) {
	chain := []domain.ChainStep{
		{FromAsset: "XRP", ToAsset: "AAA", FromAmount: 200, ToAmount: 100},
	}

	_ = AllocateChain(chain, 50, 75)

	if chain[0].ProportionalFromAmount != 0 || chain[0].ProportionalToAmount != 0 {
		t.Error("input chain was mutated; residual lots share it")
	}
}

func TestAllocateChain_EmptyChain(t *testing.T) {
	if out := AllocateChain(nil, 10, 20); len(out) != 0 {
		t.Errorf("expected empty output, got %d hops", len(out))
	}
}
