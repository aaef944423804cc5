package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lemlem-pharmacy/backend/internal/domain/entity"
	"github.com/lemlem-pharmacy/backend/internal/domain/forecast"
	"github.com/lemlem-pharmacy/backend/internal/domain/ledger"
	"github.com/lemlem-pharmacy/backend/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo read-only adapter over completed sale transactions.
type SaleRepo struct {
	pool *pgxpool.Pool
}

// NewSaleRepository builds the sales persistence adapter.
func NewSaleRepository(pool *pgxpool.Pool) *SaleRepo {
	return &SaleRepo{pool: pool}
}

// ListByDateRange returns the sale lines inside the window, oldest first.
func (r *SaleRepo) ListByDateRange(ctx context.Context, dr ledger.DateRange) ([]entity.SoldMedicine, error) {
	query := `
		SELECT transaction_id, pharmacist_id, COALESCE(customer_phone, ''), medicine_id,
		       quantity, selling_price, selling_date
		FROM sold_medicines
		WHERE selling_date IS NOT NULL`
	args := []any{}
	if !dr.IsZero() {
		query += ` AND selling_date BETWEEN $1 AND $2`
		args = append(args, dr.Start, dr.End)
	}
	query += ` ORDER BY selling_date, transaction_id`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()

	var out []entity.SoldMedicine
	for rows.Next() {
		var s entity.SoldMedicine
		if err := rows.Scan(
			&s.TransactionID, &s.PharmacistID, &s.CustomerPhone, &s.MedicineID,
			&s.Quantity, &s.SellingPrice, &s.SellingDate,
		); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// MonthlyTotals aggregates sold quantities per calendar month, oldest first.
// This is the series the demand forecaster trains on.
func (r *SaleRepo) MonthlyTotals(ctx context.Context) ([]forecast.Observation, error) {
	const query = `
		SELECT date_trunc('month', selling_date) AS period,
		       COALESCE(SUM(quantity), 0)::float8 AS total
		FROM sold_medicines
		WHERE selling_date IS NOT NULL
		GROUP BY period
		ORDER BY period`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("monthly sales totals: %w", err)
	}
	defer rows.Close()

	var out []forecast.Observation
	for rows.Next() {
		var o forecast.Observation
		if err := rows.Scan(&o.Period, &o.Quantity); err != nil {
			return nil, fmt.Errorf("scan monthly total: %w", err)
		}
		out = append(out, o)
	}
	return out, rows.Err()
}
