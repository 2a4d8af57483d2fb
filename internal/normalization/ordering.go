package normalization

import (
	"sort"

	"xrpl-money-flow/internal/domain"
)

// SortEvents orders events by (ledger_index ASC, in_ledger_index ASC).
// This is the only valid processing order for FIFO matching and
// running-balance computation.
func SortEvents(events []*domain.MoneyFlowEvent) {
	sort.SliceStable(events, func(i, j int) bool {
		return compareEvents(events[i], events[j]) < 0
	})
}

// IsOrdered reports whether events already follow ledger order.
func IsOrdered(events []*domain.MoneyFlowEvent) bool {
	for i := 1; i < len(events); i++ {
		if compareEvents(events[i-1], events[i]) > 0 {
			return false
		}
	}
	return true
}

// compareEvents returns:
//   - negative if a < b
//   - zero if a == b
//   - positive if a > b
func compareEvents(a, b *domain.MoneyFlowEvent) int {
	if a.LedgerIndex != b.LedgerIndex {
		if a.LedgerIndex < b.LedgerIndex {
			return -1
		}
		return 1
	}
	if a.InLedgerIndex != b.InLedgerIndex {
		if a.InLedgerIndex < b.InLedgerIndex {
			return -1
		}
		return 1
	}
	return 0
}
