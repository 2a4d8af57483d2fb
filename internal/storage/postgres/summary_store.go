package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"

	"xrpl-money-flow/internal/domain"
	"xrpl-money-flow/internal/storage"
)

// SummaryStore implements storage.SummaryStore using PostgreSQL.
// Asset chain volumes and top sales are stored as JSONB, tags as text[].
type SummaryStore struct {
	pool *Pool
}

// NewSummaryStore creates a new SummaryStore.
func NewSummaryStore(pool *Pool) *SummaryStore {
	return &SummaryStore{pool: pool}
}

// Compile-time interface check.
var _ storage.SummaryStore = (*SummaryStore)(nil)

const summarySelectColumns = `
	address, closed_positions, wins, win_rate,
	total_pnl, avg_roi, total_volume, max_base_cost,
	first_hop_time, last_hop_time,
	asset_chain_volume, tags, top_sales
`

// Upsert inserts or replaces the summary for its address.
func (s *SummaryStore) Upsert(ctx context.Context, summary *domain.SmartMoneySummary) error {
	if summary == nil || summary.Address == "" {
		return storage.ErrInvalidInput
	}

	assetChainVolume, err := json.Marshal(summary.AssetChainVolume)
	if err != nil {
		return fmt.Errorf("marshal asset chain volume: %w", err)
	}
	topSales, err := json.Marshal(summary.TopSales)
	if err != nil {
		return fmt.Errorf("marshal top sales: %w", err)
	}

	query := `
		INSERT INTO smart_money_summaries (
			address, closed_positions, wins, win_rate,
			total_pnl, avg_roi, total_volume, max_base_cost,
			first_hop_time, last_hop_time,
			asset_chain_volume, tags, top_sales
		) VALUES (
			$1, $2, $3, $4,
			$5, $6, $7, $8,
			$9, $10,
			$11, $12, $13
		)
		ON CONFLICT (address) DO UPDATE SET
			closed_positions = EXCLUDED.closed_positions,
			wins = EXCLUDED.wins,
			win_rate = EXCLUDED.win_rate,
			total_pnl = EXCLUDED.total_pnl,
			avg_roi = EXCLUDED.avg_roi,
			total_volume = EXCLUDED.total_volume,
			max_base_cost = EXCLUDED.max_base_cost,
			first_hop_time = EXCLUDED.first_hop_time,
			last_hop_time = EXCLUDED.last_hop_time,
			asset_chain_volume = EXCLUDED.asset_chain_volume,
			tags = EXCLUDED.tags,
			top_sales = EXCLUDED.top_sales
	`

	_, err = s.pool.Exec(ctx, query,
		summary.Address, summary.ClosedPositions, summary.Wins, summary.WinRate,
		summary.TotalPnl, summary.AvgRoi, summary.TotalVolume, summary.MaxBaseCost,
		summary.FirstHopTime, summary.LastHopTime,
		assetChainVolume, summary.Tags, topSales,
	)
	if err != nil {
		return fmt.Errorf("upsert summary: %w", err)
	}
	return nil
}

// GetByAddress retrieves a summary. Returns ErrNotFound if not exists.
func (s *SummaryStore) GetByAddress(ctx context.Context, address string) (*domain.SmartMoneySummary, error) {
	query := `SELECT ` + summarySelectColumns + ` FROM smart_money_summaries WHERE address = $1`

	row := s.pool.QueryRow(ctx, query, address)
	summary, err := scanSummary(row)
	if err != nil {
		if isNotFoundError(err) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("get summary by address: %w", err)
	}
	return summary, nil
}

// GetByTag retrieves all summaries carrying the given tag, ordered by address.
func (s *SummaryStore) GetByTag(ctx context.Context, tag string) ([]*domain.SmartMoneySummary, error) {
	query := `
		SELECT ` + summarySelectColumns + `
		FROM smart_money_summaries
		WHERE $1 = ANY(tags)
		ORDER BY address ASC
	`

	rows, err := s.pool.Query(ctx, query, tag)
	if err != nil {
		return nil, fmt.Errorf("get summaries by tag: %w", err)
	}
	defer rows.Close()

	var summaries []*domain.SmartMoneySummary
	for rows.Next() {
		summary, err := scanSummary(rows)
		if err != nil {
			return nil, fmt.Errorf("scan summary row: %w", err)
		}
		summaries = append(summaries, summary)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate summary rows: %w", err)
	}

	return summaries, nil
}

// scanSummary scans a single row into a SmartMoneySummary.
func scanSummary(row pgx.Row) (*domain.SmartMoneySummary, error) {
	var summary domain.SmartMoneySummary
	var assetChainVolume, topSales []byte

	err := row.Scan(
		&summary.Address, &summary.ClosedPositions, &summary.Wins, &summary.WinRate,
		&summary.TotalPnl, &summary.AvgRoi, &summary.TotalVolume, &summary.MaxBaseCost,
		&summary.FirstHopTime, &summary.LastHopTime,
		&assetChainVolume, &summary.Tags, &topSales,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(assetChainVolume, &summary.AssetChainVolume); err != nil {
		return nil, fmt.Errorf("unmarshal asset chain volume: %w", err)
	}
	if err := json.Unmarshal(topSales, &summary.TopSales); err != nil {
		return nil, fmt.Errorf("unmarshal top sales: %w", err)
	}

	return &summary, nil
}
