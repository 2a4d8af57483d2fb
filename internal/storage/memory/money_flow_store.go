package memory

import (
	"context"
	"sort"
	"sync"

	"xrpl-money-flow/internal/domain"
	"xrpl-money-flow/internal/storage"
)

// MoneyFlowStore is an in-memory implementation of storage.MoneyFlowStore.
type MoneyFlowStore struct {
	mu   sync.RWMutex
	data map[rowKey]*domain.RawMoneyFlowRow
}

type rowKey struct {
	txHash        string
	ledgerIndex   int64
	inLedgerIndex int64
}

// NewMoneyFlowStore creates a new in-memory money-flow store.
func NewMoneyFlowStore() *MoneyFlowStore {
	return &MoneyFlowStore{
		data: make(map[rowKey]*domain.RawMoneyFlowRow),
	}
}

// Compile-time interface check.
var _ storage.MoneyFlowStore = (*MoneyFlowStore)(nil)

// InsertBulk adds multiple rows. Fails entire batch on any duplicate.
func (s *MoneyFlowStore) InsertBulk(_ context.Context, rows []*domain.RawMoneyFlowRow) error {
	if len(rows) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Track keys in this batch to detect intra-batch duplicates
	batchKeys := make(map[rowKey]struct{}, len(rows))

	for _, r := range rows {
		if r == nil || r.TxHash == "" {
			return storage.ErrInvalidInput
		}
		k := rowKey{r.TxHash, r.LedgerIndex, r.InLedgerIndex}
		if _, exists := s.data[k]; exists {
			return storage.ErrDuplicateKey
		}
		if _, exists := batchKeys[k]; exists {
			return storage.ErrDuplicateKey
		}
		batchKeys[k] = struct{}{}
	}

	for _, r := range rows {
		copy := *r
		s.data[rowKey{r.TxHash, r.LedgerIndex, r.InLedgerIndex}] = &copy
	}

	return nil
}

// GetByAddress retrieves all rows where the address appears on either side,
// in ledger order.
func (s *MoneyFlowStore) GetByAddress(_ context.Context, address string) ([]*domain.RawMoneyFlowRow, error) {
	return s.filter(func(r *domain.RawMoneyFlowRow) bool {
		return r.FromAddress == address || r.ToAddress == address
	}), nil
}

// GetByAsset retrieves all rows where the asset appears on either side,
// in ledger order.
func (s *MoneyFlowStore) GetByAsset(_ context.Context, assetID string) ([]*domain.RawMoneyFlowRow, error) {
	return s.filter(func(r *domain.RawMoneyFlowRow) bool {
		return r.FromAsset == assetID || r.ToAsset == assetID
	}), nil
}

// GetByLedgerRange retrieves rows with ledger_index within [start, end]
// (inclusive), in ledger order.
func (s *MoneyFlowStore) GetByLedgerRange(_ context.Context, start, end int64) ([]*domain.RawMoneyFlowRow, error) {
	return s.filter(func(r *domain.RawMoneyFlowRow) bool {
		return r.LedgerIndex >= start && r.LedgerIndex <= end
	}), nil
}

func (s *MoneyFlowStore) filter(match func(*domain.RawMoneyFlowRow) bool) []*domain.RawMoneyFlowRow {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*domain.RawMoneyFlowRow
	for _, r := range s.data {
		if match(r) {
			copy := *r
			result = append(result, &copy)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].LedgerIndex != result[j].LedgerIndex {
			return result[i].LedgerIndex < result[j].LedgerIndex
		}
		return result[i].InLedgerIndex < result[j].InLedgerIndex
	})

	return result
}
