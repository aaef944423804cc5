package repository

import (
	"context"

	"github.com/lemlem-pharmacy/backend/internal/domain/entity"
	"github.com/lemlem-pharmacy/backend/internal/domain/forecast"
	"github.com/lemlem-pharmacy/backend/internal/domain/ledger"
)

// SaleRepository is the read port over sale transactions. MonthlyTotals is
// the aggregated series the forecaster trains on.
type SaleRepository interface {
	ListByDateRange(ctx context.Context, r ledger.DateRange) ([]entity.SoldMedicine, error)
	MonthlyTotals(ctx context.Context) ([]forecast.Observation, error)
}
