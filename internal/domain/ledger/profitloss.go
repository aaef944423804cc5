package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/lemlem-pharmacy/backend/internal/domain"
)

// Selling price policy: unit cost plus a fixed 25% markup. The stored
// per-transaction selling price is audit data only and never enters this
// computation.
var markupRate = decimal.NewFromFloat(1.25)

// ProfitLossRow is the derived financial summary for one batch.
type ProfitLossRow struct {
	BatchNo         string
	Description     string
	SoldQuantity    decimal.Decimal
	SellingPrice    decimal.Decimal
	MedicineCost    decimal.Decimal
	DamagedQuantity decimal.Decimal
	Profit          decimal.Decimal
}

// ProfitLoss derives profit per batch from the grouped summaries:
//
//	profit = sellingPrice*sold - cost*sold - cost*damaged
//
// that is, revenue minus cost of goods sold minus the cost written off to
// damage. Batches with neither a sale nor a write-off are excluded rather
// than emitted as zero rows; if nothing qualifies the whole report fails
// with ErrNoRecords so callers can tell "nothing to report" from a broken
// store.
func ProfitLoss(summaries []BatchSummary) ([]ProfitLossRow, error) {
	out := make([]ProfitLossRow, 0, len(summaries))
	for _, s := range summaries {
		if s.Sold.IsZero() && s.Damaged.IsZero() {
			continue
		}
		sellingPrice := s.UnitCost.Mul(markupRate)
		profit := sellingPrice.Mul(s.Sold).
			Sub(s.UnitCost.Mul(s.Sold)).
			Sub(s.UnitCost.Mul(s.Damaged))
		out = append(out, ProfitLossRow{
			BatchNo:         s.BatchNo,
			Description:     s.Description,
			SoldQuantity:    s.Sold,
			SellingPrice:    sellingPrice,
			MedicineCost:    s.UnitCost,
			DamagedQuantity: s.Damaged,
			Profit:          profit,
		})
	}
	if len(out) == 0 {
		return nil, domain.ErrNoRecords
	}
	return out, nil
}
