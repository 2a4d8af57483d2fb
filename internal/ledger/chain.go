package ledger

import (
	"math"

	"xrpl-money-flow/internal/domain"
)

// NewChainStep builds a single-hop transfer record from a normalized event.
// FromAmount is stored as the absolute value of the signed cost.
func NewChainStep(e *domain.MoneyFlowEvent) domain.ChainStep {
	return domain.ChainStep{
		TxHash:     e.TxHash,
		Timestamp:  e.Timestamp,
		FromAsset:  e.FromAsset,
		ToAsset:    e.ToAsset,
		FromAmount: math.Abs(e.FromAmount),
		ToAmount:   e.ToAmount,
	}
}

// AllocateChain distributes a closed sale's final quantity and proceeds
// backward through every hop of the conversion chain, so each hop shows only
// the portion of value actually realized by this sale.
//
// The last hop receives (finalQty, finalProceeds) directly. For every
// earlier hop i, proportion = currentQty / hop[i].toAmount; the hop's
// proportional-from is fromAmount * proportion, its proportional-to is
// currentQty, and currentQty advances to the proportional-from for the next
// (earlier) iteration. The input chain is not mutated; allocation operates
// on a copy.
func AllocateChain(chain []domain.ChainStep, finalQty, finalProceeds float64) []domain.ChainStep {
	out := make([]domain.ChainStep, len(chain))
	copy(out, chain)

	n := len(out)
	if n == 0 {
		return out
	}

	out[n-1].ProportionalFromAmount = finalQty
	out[n-1].ProportionalToAmount = finalProceeds

	currentQty := finalQty
	for i := n - 2; i >= 0; i-- {
		proportion := currentQty / out[i].ToAmount
		out[i].ProportionalFromAmount = out[i].FromAmount * proportion
		out[i].ProportionalToAmount = currentQty
		currentQty = out[i].ProportionalFromAmount
	}

	return out
}
