package memory

import (
	"context"
	"sort"
	"sync"

	"xrpl-money-flow/internal/domain"
	"xrpl-money-flow/internal/storage"
)

// SummaryStore is an in-memory implementation of storage.SummaryStore.
type SummaryStore struct {
	mu   sync.RWMutex
	data map[string]*domain.SmartMoneySummary // keyed by address
}

// NewSummaryStore creates a new in-memory summary store.
func NewSummaryStore() *SummaryStore {
	return &SummaryStore{
		data: make(map[string]*domain.SmartMoneySummary),
	}
}

// Compile-time interface check.
var _ storage.SummaryStore = (*SummaryStore)(nil)

// Upsert inserts or replaces the summary for its address.
func (s *SummaryStore) Upsert(_ context.Context, summary *domain.SmartMoneySummary) error {
	if summary == nil || summary.Address == "" {
		return storage.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[summary.Address] = copySummary(summary)
	return nil
}

// GetByAddress retrieves a summary. Returns ErrNotFound if not exists.
func (s *SummaryStore) GetByAddress(_ context.Context, address string) (*domain.SmartMoneySummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	summary, exists := s.data[address]
	if !exists {
		return nil, storage.ErrNotFound
	}

	return copySummary(summary), nil
}

// GetByTag retrieves all summaries carrying the given tag, ordered by address.
func (s *SummaryStore) GetByTag(_ context.Context, tag string) ([]*domain.SmartMoneySummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*domain.SmartMoneySummary
	for _, summary := range s.data {
		for _, t := range summary.Tags {
			if t == tag {
				result = append(result, copySummary(summary))
				break
			}
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Address < result[j].Address
	})

	return result, nil
}

// copySummary deep-copies a summary including its maps and slices.
func copySummary(summary *domain.SmartMoneySummary) *domain.SmartMoneySummary {
	out := *summary
	out.AssetChainVolume = make(map[string]float64, len(summary.AssetChainVolume))
	for k, v := range summary.AssetChainVolume {
		out.AssetChainVolume[k] = v
	}
	out.Tags = append([]string(nil), summary.Tags...)
	out.TopSales = append([]domain.SaleRecord(nil), summary.TopSales...)
	return &out
}
