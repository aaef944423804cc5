package repository

import (
	"context"

	"github.com/lemlem-pharmacy/backend/internal/domain/entity"
)

// MedicineRepository is the read port over the batch master data.
type MedicineRepository interface {
	List(ctx context.Context) ([]entity.Medicine, error)
	GetByBatchNo(ctx context.Context, batchNo string) (*entity.Medicine, error)
}
