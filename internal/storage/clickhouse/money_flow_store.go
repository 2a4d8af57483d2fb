package clickhouse

import (
	"context"
	"fmt"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"

	"xrpl-money-flow/internal/domain"
	"xrpl-money-flow/internal/storage"
)

// MoneyFlowStore implements storage.MoneyFlowStore using ClickHouse.
type MoneyFlowStore struct {
	conn *Conn
}

// NewMoneyFlowStore creates a new MoneyFlowStore.
func NewMoneyFlowStore(conn *Conn) *MoneyFlowStore {
	return &MoneyFlowStore{conn: conn}
}

// Compile-time interface check.
var _ storage.MoneyFlowStore = (*MoneyFlowStore)(nil)

const moneyFlowColumns = `
	from_address, to_address, from_asset, to_asset,
	from_amount, to_amount, init_from_amount, init_to_amount,
	kind, xrp_price, ts, ledger_index, in_ledger_index, tx_hash
`

// InsertBulk adds multiple rows. Fails entire batch on duplicate
// (tx_hash, ledger_index, in_ledger_index).
func (s *MoneyFlowStore) InsertBulk(ctx context.Context, rows []*domain.RawMoneyFlowRow) error {
	if len(rows) == 0 {
		return nil
	}

	// Check for intra-batch duplicates
	type key struct {
		txHash        string
		ledgerIndex   int64
		inLedgerIndex int64
	}
	seen := make(map[key]struct{}, len(rows))
	for _, r := range rows {
		if r == nil || r.TxHash == "" {
			return storage.ErrInvalidInput
		}
		k := key{r.TxHash, r.LedgerIndex, r.InLedgerIndex}
		if _, exists := seen[k]; exists {
			return storage.ErrDuplicateKey
		}
		seen[k] = struct{}{}
	}

	// Check for duplicates against existing DB rows
	for _, r := range rows {
		exists, err := s.exists(ctx, r.TxHash, r.LedgerIndex, r.InLedgerIndex)
		if err != nil {
			return fmt.Errorf("check exists: %w", err)
		}
		if exists {
			return storage.ErrDuplicateKey
		}
	}

	batch, err := s.conn.PrepareBatch(ctx, `INSERT INTO money_flow (`+moneyFlowColumns+`)`)
	if err != nil {
		return fmt.Errorf("prepare batch: %w", err)
	}

	for _, r := range rows {
		err = batch.Append(
			r.FromAddress, r.ToAddress, r.FromAsset, r.ToAsset,
			r.FromAmount, r.ToAmount, r.InitFromAmount, r.InitToAmount,
			r.Kind, r.XRPPrice, r.Timestamp, uint64(r.LedgerIndex), uint64(r.InLedgerIndex), r.TxHash,
		)
		if err != nil {
			return fmt.Errorf("append to batch: %w", err)
		}
	}

	if err := batch.Send(); err != nil {
		return fmt.Errorf("send batch: %w", err)
	}

	return nil
}

// GetByAddress retrieves all rows where the address appears on either side,
// ordered by (ledger_index, in_ledger_index) ASC.
func (s *MoneyFlowStore) GetByAddress(ctx context.Context, address string) ([]*domain.RawMoneyFlowRow, error) {
	query := `
		SELECT ` + moneyFlowColumns + `
		FROM money_flow
		WHERE from_address = ? OR to_address = ?
		ORDER BY ledger_index ASC, in_ledger_index ASC
	`

	rows, err := s.conn.Query(ctx, query, address, address)
	if err != nil {
		return nil, fmt.Errorf("query by address: %w", err)
	}
	defer rows.Close()

	return scanMoneyFlowRows(rows)
}

// GetByAsset retrieves all rows where the asset appears on either side,
// ordered by (ledger_index, in_ledger_index) ASC.
func (s *MoneyFlowStore) GetByAsset(ctx context.Context, assetID string) ([]*domain.RawMoneyFlowRow, error) {
	query := `
		SELECT ` + moneyFlowColumns + `
		FROM money_flow
		WHERE from_asset = ? OR to_asset = ?
		ORDER BY ledger_index ASC, in_ledger_index ASC
	`

	rows, err := s.conn.Query(ctx, query, assetID, assetID)
	if err != nil {
		return nil, fmt.Errorf("query by asset: %w", err)
	}
	defer rows.Close()

	return scanMoneyFlowRows(rows)
}

// GetByLedgerRange retrieves rows with ledger_index within [start, end]
// (inclusive), ordered by (ledger_index, in_ledger_index) ASC.
func (s *MoneyFlowStore) GetByLedgerRange(ctx context.Context, start, end int64) ([]*domain.RawMoneyFlowRow, error) {
	query := `
		SELECT ` + moneyFlowColumns + `
		FROM money_flow
		WHERE ledger_index >= ? AND ledger_index <= ?
		ORDER BY ledger_index ASC, in_ledger_index ASC
	`

	rows, err := s.conn.Query(ctx, query, uint64(start), uint64(end))
	if err != nil {
		return nil, fmt.Errorf("query by ledger range: %w", err)
	}
	defer rows.Close()

	return scanMoneyFlowRows(rows)
}

// exists checks if a row with the given key exists.
func (s *MoneyFlowStore) exists(ctx context.Context, txHash string, ledgerIndex, inLedgerIndex int64) (bool, error) {
	query := `
		SELECT count(*) FROM money_flow
		WHERE tx_hash = ? AND ledger_index = ? AND in_ledger_index = ?
	`

	var count uint64
	err := s.conn.QueryRow(ctx, query, txHash, uint64(ledgerIndex), uint64(inLedgerIndex)).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// scanMoneyFlowRows scans multiple rows.
func scanMoneyFlowRows(rows driver.Rows) ([]*domain.RawMoneyFlowRow, error) {
	var result []*domain.RawMoneyFlowRow

	for rows.Next() {
		var r domain.RawMoneyFlowRow
		var ledgerIndex, inLedgerIndex uint64

		err := rows.Scan(
			&r.FromAddress, &r.ToAddress, &r.FromAsset, &r.ToAsset,
			&r.FromAmount, &r.ToAmount, &r.InitFromAmount, &r.InitToAmount,
			&r.Kind, &r.XRPPrice, &r.Timestamp, &ledgerIndex, &inLedgerIndex, &r.TxHash,
		)
		if err != nil {
			return nil, fmt.Errorf("scan money flow row: %w", err)
		}

		r.LedgerIndex = int64(ledgerIndex)
		r.InLedgerIndex = int64(inLedgerIndex)
		result = append(result, &r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate money flow rows: %w", err)
	}

	return result, nil
}
