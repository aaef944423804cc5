package repository

import (
	"context"

	"github.com/lemlem-pharmacy/backend/internal/domain/entity"
	"github.com/lemlem-pharmacy/backend/internal/domain/ledger"
)

// BinCardRepository is the read port over the bin-card ledger. The ledger is
// append-only; no method here mutates it. Filters are expressed as typed
// predicates, never as storage syntax.
type BinCardRepository interface {
	List(ctx context.Context) ([]entity.BinCard, error)
	GetByID(ctx context.Context, id string) (*entity.BinCard, error)
	ListByBatchNo(ctx context.Context, batchNo string) ([]entity.BinCard, error)
	ListByDateRange(ctx context.Context, r ledger.DateRange) ([]entity.BinCard, error)
}
