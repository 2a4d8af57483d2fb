package main

import (
	"context"
	"time"

	"xrpl-money-flow/internal/domain"
	"xrpl-money-flow/internal/observability"
	"xrpl-money-flow/internal/storage"
)

// instrumentedMoneyFlowStore records query latency and errors for every
// warehouse call.
type instrumentedMoneyFlowStore struct {
	inner storage.MoneyFlowStore
}

func newInstrumentedMoneyFlowStore(inner storage.MoneyFlowStore) *instrumentedMoneyFlowStore {
	return &instrumentedMoneyFlowStore{inner: inner}
}

var _ storage.MoneyFlowStore = (*instrumentedMoneyFlowStore)(nil)

func (s *instrumentedMoneyFlowStore) InsertBulk(ctx context.Context, rows []*domain.RawMoneyFlowRow) error {
	started := time.Now()
	err := s.inner.InsertBulk(ctx, rows)
	observability.RecordDBQuery("clickhouse", "insert_bulk", time.Since(started).Seconds(), err)
	return err
}

func (s *instrumentedMoneyFlowStore) GetByAddress(ctx context.Context, address string) ([]*domain.RawMoneyFlowRow, error) {
	started := time.Now()
	rows, err := s.inner.GetByAddress(ctx, address)
	observability.RecordDBQuery("clickhouse", "get_by_address", time.Since(started).Seconds(), err)
	return rows, err
}

func (s *instrumentedMoneyFlowStore) GetByAsset(ctx context.Context, assetID string) ([]*domain.RawMoneyFlowRow, error) {
	started := time.Now()
	rows, err := s.inner.GetByAsset(ctx, assetID)
	observability.RecordDBQuery("clickhouse", "get_by_asset", time.Since(started).Seconds(), err)
	return rows, err
}

func (s *instrumentedMoneyFlowStore) GetByLedgerRange(ctx context.Context, start, end int64) ([]*domain.RawMoneyFlowRow, error) {
	started := time.Now()
	rows, err := s.inner.GetByLedgerRange(ctx, start, end)
	observability.RecordDBQuery("clickhouse", "get_by_ledger_range", time.Since(started).Seconds(), err)
	return rows, err
}
