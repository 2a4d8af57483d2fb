// Package series builds per-asset running balance and trade-volume series
// for a single account. It is an independent pass over the normalized
// events and keeps no state beyond the result it returns.
package series

import (
	"math"

	"xrpl-money-flow/internal/domain"
)

// Result carries the accumulated series plus diagnostics.
type Result struct {
	Series *domain.AccountSeries

	// DroppedSamples counts events whose timestamp failed normalization;
	// their samples are dropped rather than poisoning the series.
	DroppedSamples int
}

// Accumulate walks events in ledger order and appends balance and volume
// samples for every side the account participates in. A self-transfer
// produces entries in both directions.
//
// Balances build on the warehouse's running-balance anchors: the from
// side appends initFromAmount - fromAmount, the to side appends
// initToAmount + toAmount. Volume is always the absolute amount.
func Accumulate(address string, events []*domain.MoneyFlowEvent) *Result {
	res := &Result{Series: domain.NewAccountSeries(address)}

	for _, e := range events {
		if e.FromAddress != address && e.ToAddress != address {
			continue
		}
		if !e.HasValidTimestamp() {
			res.DroppedSamples++
			continue
		}

		if e.FromAddress == address {
			res.appendSample(e.FromAsset, e.InitFromAmount-e.FromAmount, math.Abs(e.FromAmount), e)
		}
		if e.ToAddress == address {
			res.appendSample(e.ToAsset, e.InitToAmount+e.ToAmount, math.Abs(e.ToAmount), e)
		}
	}

	return res
}

func (r *Result) appendSample(assetID string, balance, volume float64, e *domain.MoneyFlowEvent) {
	r.Series.Balances[assetID] = append(r.Series.Balances[assetID], domain.SeriesPoint{
		Value:         balance,
		Timestamp:     e.Timestamp,
		InLedgerIndex: e.InLedgerIndex,
	})
	r.Series.Volumes[assetID] = append(r.Series.Volumes[assetID], domain.SeriesPoint{
		Value:         volume,
		Timestamp:     e.Timestamp,
		InLedgerIndex: e.InLedgerIndex,
	})
}
