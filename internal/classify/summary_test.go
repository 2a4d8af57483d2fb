package classify

import (
	"fmt"
	"testing"
	"time"

	"xrpl-money-flow/internal/domain"
)

const token = "USD.rIssuer"

func TestBuildSummary_Aggregates(t *testing.T) {
	t1 := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Hour)
	t3 := t1.Add(2 * time.Hour)

	sales := []*domain.SaleRecord{
		{
			ID: "s1", Pnl: 100, Roi: 0.5, FromAmount: 200,
			Chain: []domain.ChainStep{
				{FromAsset: domain.BaseAsset, ToAsset: token, Timestamp: t1, ProportionalToAmount: 30},
				{FromAsset: token, ToAsset: domain.BaseAsset, Timestamp: t2, ProportionalToAmount: 80},
			},
		},
		{
			ID: "s2", Pnl: -10, Roi: -0.1, FromAmount: 300,
			Chain: []domain.ChainStep{
				// Funded by a non-base asset: ineligible for MaxBaseCost.
				{FromAsset: "AAA.rIss", ToAsset: token, Timestamp: t2, ProportionalToAmount: 40},
				{FromAsset: token, ToAsset: domain.BaseAsset, Timestamp: t3, ProportionalToAmount: 25},
			},
		},
	}

	series := domain.NewAccountSeries("rAddr")
	series.Volumes[token] = []domain.SeriesPoint{{Value: 100}, {Value: 50}}
	series.Volumes[domain.BaseAsset] = []domain.SeriesPoint{{Value: 200}}

	s := BuildSummary("rAddr", sales, series)

	if s.ClosedPositions != 2 || s.Wins != 1 {
		t.Errorf("closed/wins = %d/%d, want 2/1", s.ClosedPositions, s.Wins)
	}
	if s.WinRate != 50 {
		t.Errorf("winRate = %f, want 50", s.WinRate)
	}
	if s.TotalPnl != 90 {
		t.Errorf("totalPnl = %f, want 90", s.TotalPnl)
	}
	if s.AvgRoi != 0.2 {
		t.Errorf("avgRoi = %f, want 0.2", s.AvgRoi)
	}
	if s.MaxBaseCost != 200 {
		t.Errorf("maxBaseCost = %f, want 200 (base-funded sale only)", s.MaxBaseCost)
	}
	if s.TotalVolume != 350 {
		t.Errorf("totalVolume = %f, want 350", s.TotalVolume)
	}
	if !s.FirstHopTime.Equal(t1) {
		t.Errorf("firstHopTime = %v, want %v", s.FirstHopTime, t1)
	}
	if !s.LastHopTime.Equal(t3) {
		t.Errorf("lastHopTime = %v, want %v", s.LastHopTime, t3)
	}

	if got := s.AssetChainVolume[token]; got != 70 {
		t.Errorf("chain volume for %s = %f, want 70", token, got)
	}
	if got := s.AssetChainVolume[domain.BaseAsset]; got != 105 {
		t.Errorf("chain volume for base = %f, want 105", got)
	}

	if len(s.TopSales) != 2 || s.TopSales[0].ID != "s1" {
		t.Errorf("topSales = %+v, want s1 first by pnl", s.TopSales)
	}
}

func TestBuildSummary_Empty(t *testing.T) {
	s := BuildSummary("rAddr", nil, nil)

	if s.ClosedPositions != 0 || s.WinRate != 0 || s.TotalVolume != 0 {
		t.Error("empty inputs must produce a zero summary")
	}
	if !s.FirstHopTime.IsZero() || !s.LastHopTime.IsZero() {
		t.Error("hop times must stay zero without sales")
	}
	if len(s.TopSales) != 0 {
		t.Errorf("topSales = %d entries, want 0", len(s.TopSales))
	}
}

func TestBuildSummary_TopSalesCapped(t *testing.T) {
	var sales []*domain.SaleRecord
	for i := 0; i < 15; i++ {
		sales = append(sales, &domain.SaleRecord{
			ID:  fmt.Sprintf("s%d", i),
			Pnl: float64(i),
		})
	}

	s := BuildSummary("rAddr", sales, nil)

	if len(s.TopSales) != TopSalesLimit {
		t.Fatalf("topSales = %d entries, want %d", len(s.TopSales), TopSalesLimit)
	}
	for i := 1; i < len(s.TopSales); i++ {
		if s.TopSales[i].Pnl > s.TopSales[i-1].Pnl {
			t.Fatal("topSales must be ordered by pnl descending")
		}
	}
	if s.TopSales[0].Pnl != 14 {
		t.Errorf("best pnl = %f, want 14", s.TopSales[0].Pnl)
	}
}
