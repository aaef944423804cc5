package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lemlem-pharmacy/backend/internal/domain/entity"
	"github.com/lemlem-pharmacy/backend/internal/domain/ledger"
	"github.com/lemlem-pharmacy/backend/internal/domain/repository"
)

var _ repository.BinCardRepository = (*BinCardRepo)(nil)

const binCardColumns = `id, batch_no, medicine_id, invoice, date_received, amount, status`

// BinCardRepo read-only adapter over the append-only bin_cards table.
type BinCardRepo struct {
	pool *pgxpool.Pool
}

// NewBinCardRepository builds the bin-card persistence adapter.
func NewBinCardRepository(pool *pgxpool.Pool) *BinCardRepo {
	return &BinCardRepo{pool: pool}
}

// List returns every ledger entry, oldest first.
func (r *BinCardRepo) List(ctx context.Context) ([]entity.BinCard, error) {
	query := `SELECT ` + binCardColumns + ` FROM bin_cards ORDER BY date_received, id`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list bin cards: %w", err)
	}
	defer rows.Close()
	return scanBinCards(rows)
}

// GetByID returns one entry, or nil when it does not exist.
func (r *BinCardRepo) GetByID(ctx context.Context, id string) (*entity.BinCard, error) {
	query := `SELECT ` + binCardColumns + ` FROM bin_cards WHERE id = $1`
	var b entity.BinCard
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&b.ID, &b.BatchNo, &b.MedicineID, &b.Invoice, &b.DateReceived, &b.Amount, &b.Status,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get bin card: %w", err)
	}
	return &b, nil
}

// ListByBatchNo returns the entries of one batch, oldest first.
func (r *BinCardRepo) ListByBatchNo(ctx context.Context, batchNo string) ([]entity.BinCard, error) {
	query := `SELECT ` + binCardColumns + ` FROM bin_cards WHERE batch_no = $1 ORDER BY date_received, id`
	rows, err := r.pool.Query(ctx, query, batchNo)
	if err != nil {
		return nil, fmt.Errorf("list bin cards by batch: %w", err)
	}
	defer rows.Close()
	return scanBinCards(rows)
}

// ListByDateRange returns the entries inside the window, both ends
// inclusive.
func (r *BinCardRepo) ListByDateRange(ctx context.Context, dr ledger.DateRange) ([]entity.BinCard, error) {
	if dr.IsZero() {
		return r.List(ctx)
	}
	query := `
		SELECT ` + binCardColumns + `
		FROM bin_cards
		WHERE date_received BETWEEN $1 AND $2
		ORDER BY date_received, id`
	rows, err := r.pool.Query(ctx, query, dr.Start, dr.End)
	if err != nil {
		return nil, fmt.Errorf("list bin cards by date: %w", err)
	}
	defer rows.Close()
	return scanBinCards(rows)
}

func scanBinCards(rows pgx.Rows) ([]entity.BinCard, error) {
	var out []entity.BinCard
	for rows.Next() {
		var b entity.BinCard
		if err := rows.Scan(
			&b.ID, &b.BatchNo, &b.MedicineID, &b.Invoice, &b.DateReceived, &b.Amount, &b.Status,
		); err != nil {
			return nil, fmt.Errorf("scan bin card: %w", err)
		}
		out = append(out, b)
	}
	return out, rows.Err()
}
