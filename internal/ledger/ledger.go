package ledger

import (
	"math"

	"xrpl-money-flow/internal/deque"
	"xrpl-money-flow/internal/domain"
	"xrpl-money-flow/internal/idhash"
)

// LotLedger is the FIFO cost-basis state machine for one analyzed asset.
//
// Per asset id it keeps an ordered queue of open purchase lots: new lots are
// pushed to the front, matching pops from the back, so the oldest cost basis
// is always consumed first. State is private to one invocation; separate
// accounts or tokens can run their own ledgers in parallel, but events
// within one ledger must arrive in (ledgerIndex, inLedgerIndex) order.
type LotLedger struct {
	target string
	lots   map[string]*deque.Deque[*domain.PurchaseLot]
}

// New creates an empty ledger for the given target asset id.
func New(target string) *LotLedger {
	return &LotLedger{
		target: target,
		lots:   make(map[string]*deque.Deque[*domain.PurchaseLot]),
	}
}

// ProcessAll consumes events in order and returns the sale records realized
// for the target asset. The address is recorded on emitted sales.
func (l *LotLedger) ProcessAll(address string, events []*domain.MoneyFlowEvent) []*domain.SaleRecord {
	var sales []*domain.SaleRecord
	for _, e := range events {
		sales = append(sales, l.Process(address, e)...)
	}
	return sales
}

// Process applies a single event and returns any sales it realized.
//
// Transitions:
//   - Acquisition (toAsset == target, fromAsset != target): open a new lot.
//   - Disposal (fromAsset == target, toAsset != target): FIFO-match against
//     open target lots, emitting a SaleRecord per match above the dust floor.
//   - Cross-asset swap (neither side is the target or the base asset): same
//     consumption loop, but the consumed cost basis is re-lotted under the
//     receiving asset with the chain extended by one hop.
//
// Any other combination leaves the ledger untouched.
func (l *LotLedger) Process(address string, e *domain.MoneyFlowEvent) []*domain.SaleRecord {
	switch {
	case e.ToAsset == l.target && e.FromAsset != l.target:
		l.acquire(e)
		return nil
	case e.FromAsset == l.target && e.ToAsset != l.target:
		return l.dispose(address, e)
	case e.FromAsset != l.target && e.ToAsset != l.target &&
		e.FromAsset != domain.BaseAsset && e.ToAsset != domain.BaseAsset:
		l.swapAcross(e)
		return nil
	}
	return nil
}

// OpenLots returns an ordered snapshot of the open lots for an asset,
// newest first.
func (l *LotLedger) OpenLots(assetID string) []*domain.PurchaseLot {
	q, ok := l.lots[assetID]
	if !ok {
		return nil
	}
	return q.Snapshot()
}

func (l *LotLedger) queue(assetID string) *deque.Deque[*domain.PurchaseLot] {
	q, ok := l.lots[assetID]
	if !ok {
		q = &deque.Deque[*domain.PurchaseLot]{}
		l.lots[assetID] = q
	}
	return q
}

func (l *LotLedger) acquire(e *domain.MoneyFlowEvent) {
	l.queue(l.target).PushFront(&domain.PurchaseLot{
		Qty:        e.ToAmount,
		FromAmount: e.FromAmount,
		Chain:      []domain.ChainStep{NewChainStep(e)},
	})
}

// dispose FIFO-matches a sale of the target asset against open lots.
// If lots run out before the demand is met the loop stops silently: an
// undercollateralized sell is valid on the underlying ledger and simply
// yields smaller sale records, or none.
func (l *LotLedger) dispose(address string, e *domain.MoneyFlowEvent) []*domain.SaleRecord {
	var sales []*domain.SaleRecord

	q := l.queue(l.target)
	demand := math.Abs(e.FromAmount)
	demandOriginal := demand
	matchIndex := 0

	for demand > 0 {
		lot, ok := q.PopBack()
		if !ok {
			break
		}

		qtyTaken, cost := consumeLot(q, lot, &demand)
		proceeds := e.ToAmount * qtyTaken / demandOriginal
		if proceeds <= domain.DustThreshold {
			continue
		}

		chain := AllocateChain(extendChain(lot.Chain, NewChainStep(e)), qtyTaken, proceeds)
		pnl := proceeds - cost
		sales = append(sales, &domain.SaleRecord{
			ID:            idhash.ComputeSaleID(address, e.TxHash, e.LedgerIndex, matchIndex),
			Address:       address,
			AssetID:       l.target,
			Qty:           qtyTaken,
			FromAmount:    cost,
			ToAmount:      proceeds,
			FromAmountUSD: cost * e.XRPPrice,
			ToAmountUSD:   proceeds * e.XRPPrice,
			Pnl:           pnl,
			Roi:           safeRoi(pnl, cost),
			Chain:         chain,
			Timestamp:     e.Timestamp,
			LedgerIndex:   e.LedgerIndex,
			TxHash:        e.TxHash,
		})
		matchIndex++
	}

	return sales
}

// swapAcross moves cost basis between two non-target assets: the consumed
// cost and a pro-rated share of the received quantity become a new lot under
// the receiving asset, so a later true disposal can still trace back to the
// original funding asset.
func (l *LotLedger) swapAcross(e *domain.MoneyFlowEvent) {
	q := l.queue(e.FromAsset)
	demand := math.Abs(e.FromAmount)
	demandOriginal := demand

	for demand > 0 {
		lot, ok := q.PopBack()
		if !ok {
			break
		}

		qtyTaken, cost := consumeLot(q, lot, &demand)
		outQty := e.ToAmount * qtyTaken / demandOriginal
		if outQty <= domain.DustThreshold {
			continue
		}

		l.queue(e.ToAsset).PushFront(&domain.PurchaseLot{
			Qty:        outQty,
			FromAmount: -cost,
			Chain:      extendChain(lot.Chain, NewChainStep(e)),
		})
	}
}

// consumeLot takes as much of lot as demand allows, pushes back a residual
// lot with proportionally reduced cost when the lot is only partially
// consumed, reduces demand, and returns the taken quantity and its cost.
func consumeLot(q *deque.Deque[*domain.PurchaseLot], lot *domain.PurchaseLot, demand *float64) (qtyTaken, cost float64) {
	if lot.Qty < *demand {
		qtyTaken = lot.Qty
		*demand -= qtyTaken
	} else {
		qtyTaken = *demand
		*demand = 0
		if lot.Qty > qtyTaken {
			q.PushBack(&domain.PurchaseLot{
				Qty:        lot.Qty - qtyTaken,
				FromAmount: lot.FromAmount + math.Abs(lot.FromAmount*qtyTaken/lot.Qty),
				Chain:      lot.Chain,
			})
		}
	}
	cost = math.Abs(lot.FromAmount * qtyTaken / lot.Qty)
	return qtyTaken, cost
}

// extendChain returns a fresh chain with one hop appended; the source chain
// is shared by residual lots and must not be mutated.
func extendChain(chain []domain.ChainStep, step domain.ChainStep) []domain.ChainStep {
	out := make([]domain.ChainStep, 0, len(chain)+1)
	out = append(out, chain...)
	return append(out, step)
}

// safeRoi divides pnl by cost. A zero-cost sale (cost basis already rounded
// to zero by swap propagation) reports 0 instead of a non-finite value.
func safeRoi(pnl, cost float64) float64 {
	if cost == 0 {
		return 0
	}
	return pnl / cost
}
