package memory

import (
	"context"
	"sort"
	"sync"

	"xrpl-money-flow/internal/domain"
	"xrpl-money-flow/internal/storage"
)

// SaleRecordStore is an in-memory implementation of storage.SaleRecordStore.
type SaleRecordStore struct {
	mu   sync.RWMutex
	data map[string]*domain.SaleRecord // keyed by sale id
}

// NewSaleRecordStore creates a new in-memory sale record store.
func NewSaleRecordStore() *SaleRecordStore {
	return &SaleRecordStore{
		data: make(map[string]*domain.SaleRecord),
	}
}

// Compile-time interface check.
var _ storage.SaleRecordStore = (*SaleRecordStore)(nil)

// Insert adds a new sale. Returns ErrDuplicateKey if the id exists.
func (s *SaleRecordStore) Insert(_ context.Context, sale *domain.SaleRecord) error {
	if sale == nil || sale.ID == "" {
		return storage.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.data[sale.ID]; exists {
		return storage.ErrDuplicateKey
	}

	s.data[sale.ID] = copySale(sale)
	return nil
}

// InsertBulk adds multiple sales atomically. Fails entire batch on any duplicate.
func (s *SaleRecordStore) InsertBulk(_ context.Context, sales []*domain.SaleRecord) error {
	if len(sales) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Track keys in this batch to detect intra-batch duplicates
	batchKeys := make(map[string]struct{}, len(sales))

	for _, sale := range sales {
		if sale == nil || sale.ID == "" {
			return storage.ErrInvalidInput
		}
		if _, exists := s.data[sale.ID]; exists {
			return storage.ErrDuplicateKey
		}
		if _, exists := batchKeys[sale.ID]; exists {
			return storage.ErrDuplicateKey
		}
		batchKeys[sale.ID] = struct{}{}
	}

	for _, sale := range sales {
		s.data[sale.ID] = copySale(sale)
	}

	return nil
}

// GetByID retrieves a sale by its id. Returns ErrNotFound if not exists.
func (s *SaleRecordStore) GetByID(_ context.Context, id string) (*domain.SaleRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sale, exists := s.data[id]
	if !exists {
		return nil, storage.ErrNotFound
	}

	return copySale(sale), nil
}

// GetByAddress retrieves all sales for an address, ordered by (ledger_index, id) ASC.
func (s *SaleRecordStore) GetByAddress(_ context.Context, address string) ([]*domain.SaleRecord, error) {
	return s.filter(func(sale *domain.SaleRecord) bool {
		return sale.Address == address
	}), nil
}

// GetByAsset retrieves all sales for an asset, ordered by (ledger_index, id) ASC.
func (s *SaleRecordStore) GetByAsset(_ context.Context, assetID string) ([]*domain.SaleRecord, error) {
	return s.filter(func(sale *domain.SaleRecord) bool {
		return sale.AssetID == assetID
	}), nil
}

func (s *SaleRecordStore) filter(match func(*domain.SaleRecord) bool) []*domain.SaleRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*domain.SaleRecord
	for _, sale := range s.data {
		if match(sale) {
			result = append(result, copySale(sale))
		}
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].LedgerIndex != result[j].LedgerIndex {
			return result[i].LedgerIndex < result[j].LedgerIndex
		}
		return result[i].ID < result[j].ID
	})

	return result
}

// copySale deep-copies a sale including its chain slice.
func copySale(sale *domain.SaleRecord) *domain.SaleRecord {
	out := *sale
	out.Chain = make([]domain.ChainStep, len(sale.Chain))
	copy(out.Chain, sale.Chain)
	return &out
}
