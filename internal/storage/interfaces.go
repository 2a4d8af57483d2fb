package storage

import (
	"context"
	"time"

	"xrpl-money-flow/internal/domain"
)

// MoneyFlowStore provides access to raw money_flow rows in the warehouse.
// All reads return rows ordered by (ledger_index, in_ledger_index) ASC,
// which is the only order the analytics engine accepts.
type MoneyFlowStore interface {
	// InsertBulk adds multiple rows. Fails entire batch on duplicate
	// (tx_hash, ledger_index, in_ledger_index).
	InsertBulk(ctx context.Context, rows []*domain.RawMoneyFlowRow) error

	// GetByAddress retrieves all rows where the address appears on either side.
	GetByAddress(ctx context.Context, address string) ([]*domain.RawMoneyFlowRow, error)

	// GetByAsset retrieves all rows where the asset appears on either side.
	GetByAsset(ctx context.Context, assetID string) ([]*domain.RawMoneyFlowRow, error)

	// GetByLedgerRange retrieves rows with ledger_index within [start, end] (inclusive).
	GetByLedgerRange(ctx context.Context, start, end int64) ([]*domain.RawMoneyFlowRow, error)
}

// SaleRecordStore provides access to realized sale records.
type SaleRecordStore interface {
	// Insert adds a new sale. Returns ErrDuplicateKey if the id exists.
	Insert(ctx context.Context, sale *domain.SaleRecord) error

	// InsertBulk adds multiple sales atomically. Fails entire batch on any duplicate.
	InsertBulk(ctx context.Context, sales []*domain.SaleRecord) error

	// GetByID retrieves a sale by its id. Returns ErrNotFound if not exists.
	GetByID(ctx context.Context, id string) (*domain.SaleRecord, error)

	// GetByAddress retrieves all sales for an address, ordered by
	// (ledger_index, id) ASC.
	GetByAddress(ctx context.Context, address string) ([]*domain.SaleRecord, error)

	// GetByAsset retrieves all sales for an asset, ordered by
	// (ledger_index, id) ASC.
	GetByAsset(ctx context.Context, assetID string) ([]*domain.SaleRecord, error)
}

// SummaryStore provides access to smart-money summaries. Summaries are
// recomputed per batch, so writes replace any previous row for the address.
type SummaryStore interface {
	// Upsert inserts or replaces the summary for its address.
	Upsert(ctx context.Context, summary *domain.SmartMoneySummary) error

	// GetByAddress retrieves a summary. Returns ErrNotFound if not exists.
	GetByAddress(ctx context.Context, address string) (*domain.SmartMoneySummary, error)

	// GetByTag retrieves all summaries carrying the given tag.
	GetByTag(ctx context.Context, tag string) ([]*domain.SmartMoneySummary, error)
}

// SeriesCache holds computed balance/volume series keyed by address with
// TTL-based expiry.
type SeriesCache interface {
	// Put stores the series under its address for ttl.
	Put(ctx context.Context, series *domain.AccountSeries, ttl time.Duration) error

	// Get retrieves a cached series. Returns ErrNotFound on miss or expiry.
	Get(ctx context.Context, address string) (*domain.AccountSeries, error)
}

// ChartCache holds computed chart bundles keyed by token with TTL-based expiry.
type ChartCache interface {
	// Put stores the bundle under its token id for ttl.
	Put(ctx context.Context, bundle *domain.ChartBundle, ttl time.Duration) error

	// Get retrieves a cached bundle. Returns ErrNotFound on miss or expiry.
	Get(ctx context.Context, tokenID string) (*domain.ChartBundle, error)
}
