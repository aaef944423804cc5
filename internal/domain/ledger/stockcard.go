package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/lemlem-pharmacy/backend/internal/domain"
	"github.com/lemlem-pharmacy/backend/internal/domain/entity"
)

// StockCardRow summarizes one batch's movement inside a date window: what
// came in, what was sold and what was written off. InStockQuantity is the
// received inflow of the window itself, distinct from the batch master's
// all-time quantity on hand.
type StockCardRow struct {
	BatchNo         string
	Description     string
	SoldQuantity    decimal.Decimal
	InStockQuantity decimal.Decimal
	DamagedQuantity decimal.Decimal
}

// StockCard builds the movement summary for a single batch from rows already
// restricted to that batch and window. A batch with no qualifying rows yields
// ErrNotFound: an unknown batch and a batch without activity are both
// "nothing to show", and the caller must be able to tell that apart from a
// zero-movement row.
func StockCard(rows []JoinedRow, batchNo string) (StockCardRow, error) {
	card := StockCardRow{BatchNo: batchNo}
	found := false
	for _, row := range rows {
		if row.Card.BatchNo != batchNo {
			continue
		}
		found = true
		card.Description = row.Batch.Description
		switch row.Card.Event() {
		case entity.EventSold:
			card.SoldQuantity = card.SoldQuantity.Add(row.Card.Amount.Neg())
		case entity.EventDamaged:
			card.DamagedQuantity = card.DamagedQuantity.Add(row.Card.Amount.Neg())
		default:
			card.InStockQuantity = card.InStockQuantity.Add(row.Card.Amount)
		}
	}
	if !found {
		return StockCardRow{}, domain.ErrNotFound
	}
	return card, nil
}
