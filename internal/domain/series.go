package domain

import "time"

// SeriesPoint is one sample in a per-asset balance or volume series.
// InLedgerIndex disambiguates samples sharing a timestamp.
type SeriesPoint struct {
	Value         float64   `json:"value"`
	Timestamp     time.Time `json:"timestamp"`
	InLedgerIndex int64     `json:"inLedgerIndex"`
}

// AccountSeries holds the running balance and absolute trade-volume series
// for one account, keyed by asset identifier. Both are append-only and
// ordered by ledger position.
type AccountSeries struct {
	Address  string                   `json:"address"`
	Balances map[string][]SeriesPoint `json:"balances"`
	Volumes  map[string][]SeriesPoint `json:"volumes"`
}

// NewAccountSeries creates an empty series container for an account.
func NewAccountSeries(address string) *AccountSeries {
	return &AccountSeries{
		Address:  address,
		Balances: make(map[string][]SeriesPoint),
		Volumes:  make(map[string][]SeriesPoint),
	}
}
