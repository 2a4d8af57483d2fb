package domain

import "time"

// DustThreshold is the minimum proceeds below which a FIFO match is not
// recorded as a sale.
const DustThreshold = 1e-6

// ChainStep is one hop of a (possibly multi-hop) asset conversion.
// The proportional amounts stay zero until a sale closes and the allocator
// distributes the realized quantity back through the chain.
type ChainStep struct {
	TxHash                 string    `json:"txHash"`
	Timestamp              time.Time `json:"timestamp"`
	FromAsset              string    `json:"fromAsset"`
	ToAsset                string    `json:"toAsset"`
	FromAmount             float64   `json:"fromAmount"` // absolute value of cost
	ToAmount               float64   `json:"toAmount"`
	ProportionalFromAmount float64   `json:"proportionalFromAmount,omitempty"`
	ProportionalToAmount   float64   `json:"proportionalToAmount,omitempty"`
}

// PurchaseLot is an open position: quantity of the acquired asset still
// unsold plus the signed remaining cost. The chain records full provenance
// back to the ultimate funding asset.
type PurchaseLot struct {
	Qty        float64     // units still unsold
	FromAmount float64     // signed remaining cost, negative
	Chain      []ChainStep // ordered, oldest hop first
}

// SaleRecord is one closed FIFO match.
//
// ROI is PnL divided by cost. When swap propagation rounds the remaining
// cost basis down to zero, ROI is reported as 0 rather than a non-finite
// value; see the ledger package.
type SaleRecord struct {
	ID            string      `json:"id"`
	Address       string      `json:"address"`
	AssetID       string      `json:"assetId"`
	Qty           float64     `json:"qty"`
	FromAmount    float64     `json:"fromAmount"` // cost consumed, absolute
	ToAmount      float64     `json:"toAmount"`   // proceeds
	FromAmountUSD float64     `json:"fromAmountUsd"`
	ToAmountUSD   float64     `json:"toAmountUsd"`
	Pnl           float64     `json:"pnl"`
	Roi           float64     `json:"roi"`
	Chain         []ChainStep `json:"chain"`
	Timestamp     time.Time   `json:"timestamp"`
	LedgerIndex   int64       `json:"ledgerIndex"`
	TxHash        string      `json:"txHash"`
}
