package reporting

import (
	"context"

	"github.com/lemlem-pharmacy/backend/internal/domain/ledger"
)

// ProfitLossPDFGenerator renders a profit/loss report as a printable
// document. Implemented in infrastructure (maroto).
type ProfitLossPDFGenerator interface {
	GenerateProfitLossPDF(ctx context.Context, period string, rows []ledger.ProfitLossRow) ([]byte, error)
}
