// Package fixtures populates stores with deterministic demonstration data.
package fixtures

import (
	"context"

	"xrpl-money-flow/internal/domain"
	"xrpl-money-flow/internal/storage"
)

// Demo identities used across the fixture rows.
const (
	TraderOne = "rN7n7otQDd6FczFgLdSqtcsAUxDkw6fzRH"
	TraderTwo = "rvYAfWj5gh67oV6fW32ZzP3Aw4Eubs59B"
	DemoToken = "USD.rhub8VRN55s94qWKDv6jmDy1pUykJzF3wq"
)

// LoadMoneyFlow inserts a small, deterministic money-flow batch:
// TraderOne buys the demo token twice and sells across both lots;
// TraderTwo buys once and holds. Rows are pre-sorted in ledger order.
func LoadMoneyFlow(ctx context.Context, store storage.MoneyFlowStore) error {
	rows := []*domain.RawMoneyFlowRow{
		{
			FromAddress:    TraderOne,
			ToAddress:      TraderOne,
			FromAsset:      domain.BaseAsset,
			ToAsset:        DemoToken,
			FromAmount:     "200",
			ToAmount:       "100",
			InitFromAmount: "1000",
			InitToAmount:   "0",
			Kind:           domain.KindDexOffer,
			XRPPrice:       "0.52",
			Timestamp:      "2024-01-01 00:00:00",
			LedgerIndex:    1000,
			InLedgerIndex:  1,
			TxHash:         "A1000000000000000000000000000000000000000000000000000000000001",
		},
		{
			FromAddress:    TraderTwo,
			ToAddress:      TraderTwo,
			FromAsset:      domain.BaseAsset,
			ToAsset:        DemoToken,
			FromAmount:     "50",
			ToAmount:       "25",
			InitFromAmount: "500",
			InitToAmount:   "0",
			Kind:           domain.KindDexOffer,
			XRPPrice:       "0.52",
			Timestamp:      "2024-01-01 00:10:00",
			LedgerIndex:    1002,
			InLedgerIndex:  1,
			TxHash:         "B1000000000000000000000000000000000000000000000000000000000001",
		},
		{
			FromAddress:    TraderOne,
			ToAddress:      TraderOne,
			FromAsset:      domain.BaseAsset,
			ToAsset:        DemoToken,
			FromAmount:     "100",
			ToAmount:       "50",
			InitFromAmount: "800",
			InitToAmount:   "100",
			Kind:           domain.KindDexOffer,
			XRPPrice:       "0.53",
			Timestamp:      "2024-01-01 06:00:00",
			LedgerIndex:    1050,
			InLedgerIndex:  2,
			TxHash:         "A1000000000000000000000000000000000000000000000000000000000002",
		},
		{
			FromAddress:    TraderOne,
			ToAddress:      TraderOne,
			FromAsset:      DemoToken,
			ToAsset:        domain.BaseAsset,
			FromAmount:     "120",
			ToAmount:       "360",
			InitFromAmount: "150",
			InitToAmount:   "700",
			Kind:           domain.KindDexOffer,
			XRPPrice:       "0.54",
			Timestamp:      "2024-01-02 00:00:00",
			LedgerIndex:    1200,
			InLedgerIndex:  1,
			TxHash:         "A1000000000000000000000000000000000000000000000000000000000003",
		},
		{
			FromAddress:    TraderTwo,
			ToAddress:      TraderOne,
			FromAsset:      DemoToken,
			ToAsset:        DemoToken,
			FromAmount:     "5",
			ToAmount:       "5",
			InitFromAmount: "25",
			InitToAmount:   "30",
			Kind:           domain.KindPayment,
			XRPPrice:       "0.54",
			Timestamp:      "2024-01-02 00:30:00",
			LedgerIndex:    1205,
			InLedgerIndex:  3,
			TxHash:         "B1000000000000000000000000000000000000000000000000000000000002",
		},
	}

	return store.InsertBulk(ctx, rows)
}
