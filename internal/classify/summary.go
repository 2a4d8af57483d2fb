package classify

import (
	"sort"

	"xrpl-money-flow/internal/domain"
)

// TopSalesLimit caps how many sales are kept on the summary.
const TopSalesLimit = 10

// BuildSummary aggregates an account's sale records and series into the
// inputs the tag classifier consumes. Sales must be in ledger order.
func BuildSummary(address string, sales []*domain.SaleRecord, series *domain.AccountSeries) *domain.SmartMoneySummary {
	s := &domain.SmartMoneySummary{
		Address:          address,
		ClosedPositions:  len(sales),
		AssetChainVolume: make(map[string]float64),
	}

	var roiSum float64
	for _, sale := range sales {
		if sale.Pnl > 0 {
			s.Wins++
		}
		s.TotalPnl += sale.Pnl
		roiSum += sale.Roi

		// Whale input: largest cost funded directly by the base asset.
		if len(sale.Chain) > 0 && sale.Chain[0].FromAsset == domain.BaseAsset && sale.FromAmount > s.MaxBaseCost {
			s.MaxBaseCost = sale.FromAmount
		}

		// Realized volume credited per receiving asset of every hop.
		for _, hop := range sale.Chain {
			s.AssetChainVolume[hop.ToAsset] += hop.ProportionalToAmount
		}
	}

	if s.ClosedPositions > 0 {
		s.WinRate = float64(s.Wins) / float64(s.ClosedPositions) * 100
		s.AvgRoi = roiSum / float64(s.ClosedPositions)

		first := sales[0]
		last := sales[len(sales)-1]
		if len(first.Chain) > 0 {
			s.FirstHopTime = first.Chain[0].Timestamp
		}
		if len(last.Chain) > 0 {
			s.LastHopTime = last.Chain[len(last.Chain)-1].Timestamp
		}
	}

	if series != nil {
		for _, points := range series.Volumes {
			for _, p := range points {
				s.TotalVolume += p.Value
			}
		}
	}

	s.TopSales = topSales(sales, TopSalesLimit)
	return s
}

// topSales returns up to limit sales with the highest realized pnl.
func topSales(sales []*domain.SaleRecord, limit int) []domain.SaleRecord {
	sorted := make([]*domain.SaleRecord, len(sales))
	copy(sorted, sales)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Pnl > sorted[j].Pnl
	})
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	out := make([]domain.SaleRecord, len(sorted))
	for i, sale := range sorted {
		out[i] = *sale
	}
	return out
}
