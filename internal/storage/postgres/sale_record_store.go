package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"

	"xrpl-money-flow/internal/domain"
	"xrpl-money-flow/internal/storage"
)

// SaleRecordStore implements storage.SaleRecordStore using PostgreSQL.
// The chain of custody is stored as JSONB.
type SaleRecordStore struct {
	pool *Pool
}

// NewSaleRecordStore creates a new SaleRecordStore.
func NewSaleRecordStore(pool *Pool) *SaleRecordStore {
	return &SaleRecordStore{pool: pool}
}

// Compile-time interface check.
var _ storage.SaleRecordStore = (*SaleRecordStore)(nil)

const saleInsertQuery = `
	INSERT INTO sale_records (
		id, address, asset_id, qty,
		from_amount, to_amount, from_amount_usd, to_amount_usd,
		pnl, roi, chain, ts, ledger_index, tx_hash
	) VALUES (
		$1, $2, $3, $4,
		$5, $6, $7, $8,
		$9, $10, $11, $12, $13, $14
	)
`

const saleSelectColumns = `
	id, address, asset_id, qty,
	from_amount, to_amount, from_amount_usd, to_amount_usd,
	pnl, roi, chain, ts, ledger_index, tx_hash
`

// Insert adds a new sale. Returns ErrDuplicateKey if the id exists.
func (s *SaleRecordStore) Insert(ctx context.Context, sale *domain.SaleRecord) error {
	chain, err := json.Marshal(sale.Chain)
	if err != nil {
		return fmt.Errorf("marshal chain: %w", err)
	}

	_, err = s.pool.Exec(ctx, saleInsertQuery,
		sale.ID, sale.Address, sale.AssetID, sale.Qty,
		sale.FromAmount, sale.ToAmount, sale.FromAmountUSD, sale.ToAmountUSD,
		sale.Pnl, sale.Roi, chain, sale.Timestamp, sale.LedgerIndex, sale.TxHash,
	)
	if err != nil {
		if isDuplicateKeyError(err) {
			return storage.ErrDuplicateKey
		}
		return fmt.Errorf("insert sale record: %w", err)
	}
	return nil
}

// InsertBulk adds multiple sales atomically. Fails entire batch on any duplicate.
func (s *SaleRecordStore) InsertBulk(ctx context.Context, sales []*domain.SaleRecord) error {
	if len(sales) == 0 {
		return nil
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, sale := range sales {
		chain, err := json.Marshal(sale.Chain)
		if err != nil {
			return fmt.Errorf("marshal chain: %w", err)
		}

		_, err = tx.Exec(ctx, saleInsertQuery,
			sale.ID, sale.Address, sale.AssetID, sale.Qty,
			sale.FromAmount, sale.ToAmount, sale.FromAmountUSD, sale.ToAmountUSD,
			sale.Pnl, sale.Roi, chain, sale.Timestamp, sale.LedgerIndex, sale.TxHash,
		)
		if err != nil {
			if isDuplicateKeyError(err) {
				return storage.ErrDuplicateKey
			}
			return fmt.Errorf("insert sale record in bulk: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}

	return nil
}

// GetByID retrieves a sale by its id. Returns ErrNotFound if not exists.
func (s *SaleRecordStore) GetByID(ctx context.Context, id string) (*domain.SaleRecord, error) {
	query := `SELECT ` + saleSelectColumns + ` FROM sale_records WHERE id = $1`

	row := s.pool.QueryRow(ctx, query, id)
	sale, err := scanSaleRecord(row)
	if err != nil {
		if isNotFoundError(err) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("get sale record by id: %w", err)
	}
	return sale, nil
}

// GetByAddress retrieves all sales for an address, ordered by (ledger_index, id) ASC.
func (s *SaleRecordStore) GetByAddress(ctx context.Context, address string) ([]*domain.SaleRecord, error) {
	query := `
		SELECT ` + saleSelectColumns + `
		FROM sale_records
		WHERE address = $1
		ORDER BY ledger_index ASC, id ASC
	`

	rows, err := s.pool.Query(ctx, query, address)
	if err != nil {
		return nil, fmt.Errorf("get sale records by address: %w", err)
	}
	defer rows.Close()

	return scanSaleRecords(rows)
}

// GetByAsset retrieves all sales for an asset, ordered by (ledger_index, id) ASC.
func (s *SaleRecordStore) GetByAsset(ctx context.Context, assetID string) ([]*domain.SaleRecord, error) {
	query := `
		SELECT ` + saleSelectColumns + `
		FROM sale_records
		WHERE asset_id = $1
		ORDER BY ledger_index ASC, id ASC
	`

	rows, err := s.pool.Query(ctx, query, assetID)
	if err != nil {
		return nil, fmt.Errorf("get sale records by asset: %w", err)
	}
	defer rows.Close()

	return scanSaleRecords(rows)
}

// scanSaleRecord scans a single row into a SaleRecord.
func scanSaleRecord(row pgx.Row) (*domain.SaleRecord, error) {
	var sale domain.SaleRecord
	var chain []byte

	err := row.Scan(
		&sale.ID, &sale.Address, &sale.AssetID, &sale.Qty,
		&sale.FromAmount, &sale.ToAmount, &sale.FromAmountUSD, &sale.ToAmountUSD,
		&sale.Pnl, &sale.Roi, &chain, &sale.Timestamp, &sale.LedgerIndex, &sale.TxHash,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(chain, &sale.Chain); err != nil {
		return nil, fmt.Errorf("unmarshal chain: %w", err)
	}

	return &sale, nil
}

// scanSaleRecords scans multiple rows into a slice of SaleRecord.
func scanSaleRecords(rows pgx.Rows) ([]*domain.SaleRecord, error) {
	var sales []*domain.SaleRecord

	for rows.Next() {
		sale, err := scanSaleRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan sale record row: %w", err)
		}
		sales = append(sales, sale)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sale record rows: %w", err)
	}

	return sales, nil
}
