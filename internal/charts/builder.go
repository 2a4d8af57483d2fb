package charts

import (
	"time"

	"xrpl-money-flow/internal/domain"
)

// Builder assembles the four trailing-window chart series for one token.
// It is anchored to a fixed "now" so repeated builds over the same batch
// are deterministic.
type Builder struct {
	now time.Time
}

// NewBuilder creates a builder anchored at now.
func NewBuilder(now time.Time) *Builder {
	return &Builder{now: now}
}

// Build computes volume, distinct-trader, and holder series per window.
// Events feed volume and traders; balances (per-address token balance
// samples) feed holders. Windows share no state, so each could run in its
// own goroutine; batch sizes here have not made that worthwhile.
func (b *Builder) Build(tokenID string, events []*domain.MoneyFlowEvent, balances map[string][]domain.SeriesPoint) *domain.ChartBundle {
	bundle := &domain.ChartBundle{
		TokenID: tokenID,
		Volume:  make(domain.ChartSeries, len(domain.ChartWindows)),
		Traders: make(domain.ChartSeries, len(domain.ChartWindows)),
		Holders: make(domain.ChartSeries, len(domain.ChartWindows)),
	}
	for _, w := range domain.ChartWindows {
		bundle.Volume[w.ID] = volumeSeries(b.now, w, tokenID, events)
		bundle.Traders[w.ID] = tradersSeries(b.now, w, tokenID, events)
		bundle.Holders[w.ID] = holdersSeries(b.now, w, balances)
	}
	return bundle
}
