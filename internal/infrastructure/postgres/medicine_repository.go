package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lemlem-pharmacy/backend/internal/domain/entity"
	"github.com/lemlem-pharmacy/backend/internal/domain/repository"
)

var _ repository.MedicineRepository = (*MedicineRepo)(nil)

const medicineColumns = `id, batch_no, description, category, type, price, quantity, expire_date, active`

// MedicineRepo read-only adapter for the batch master data. Batches are
// never deleted here; historical reports depend on them.
type MedicineRepo struct {
	pool *pgxpool.Pool
}

// NewMedicineRepository builds the medicine persistence adapter.
func NewMedicineRepository(pool *pgxpool.Pool) *MedicineRepo {
	return &MedicineRepo{pool: pool}
}

// List returns every batch master record.
func (r *MedicineRepo) List(ctx context.Context) ([]entity.Medicine, error) {
	query := `SELECT ` + medicineColumns + ` FROM medicines ORDER BY batch_no`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list medicines: %w", err)
	}
	defer rows.Close()

	var out []entity.Medicine
	for rows.Next() {
		var m entity.Medicine
		if err := rows.Scan(
			&m.ID, &m.BatchNo, &m.Description, &m.Category, &m.Type,
			&m.Price, &m.Quantity, &m.ExpireDate, &m.Active,
		); err != nil {
			return nil, fmt.Errorf("scan medicine: %w", err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// GetByBatchNo returns one batch, or nil when it does not exist.
func (r *MedicineRepo) GetByBatchNo(ctx context.Context, batchNo string) (*entity.Medicine, error) {
	query := `SELECT ` + medicineColumns + ` FROM medicines WHERE batch_no = $1`
	var m entity.Medicine
	err := r.pool.QueryRow(ctx, query, batchNo).Scan(
		&m.ID, &m.BatchNo, &m.Description, &m.Category, &m.Type,
		&m.Price, &m.Quantity, &m.ExpireDate, &m.Active,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get medicine by batch: %w", err)
	}
	return &m, nil
}
