package ledger_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lemlem-pharmacy/backend/internal/domain"
	"github.com/lemlem-pharmacy/backend/internal/domain/entity"
	"github.com/lemlem-pharmacy/backend/internal/domain/ledger"
)

// Worked example: unit cost 10.00, 40 sold, 5 damaged.
//
//	sellingPrice = 10.00 * 1.25          = 12.50
//	profit       = 12.50*40 - 10.00*40 - 10.00*5
//	             = 500 - 400 - 50        = 50
func TestProfitLoss_WorkedExample(t *testing.T) {
	cards := []entity.BinCard{
		card("B-100", entity.EventReceived, 100, 1),
		card("B-100", entity.EventSold, 40, 2),
		card("B-100", entity.EventDamaged, 5, 3),
	}
	joined, _ := ledger.Join(cards, []entity.Medicine{amoxicillin()})

	rows, err := ledger.ProfitLoss(ledger.Summarize(joined))
	require.NoError(t, err)
	require.Len(t, rows, 1)

	r := rows[0]
	assert.Equal(t, "B-100", r.BatchNo)
	assert.Equal(t, "Amoxicillin 500mg", r.Description)
	assert.True(t, r.SoldQuantity.Equal(qty(40)))
	assert.True(t, r.DamagedQuantity.Equal(qty(5)))
	assert.True(t, r.SellingPrice.Equal(decimal.RequireFromString("12.5")),
		"selling price is cost plus 25%%: got %s", r.SellingPrice)
	assert.True(t, r.MedicineCost.Equal(decimal.RequireFromString("10.00")))
	assert.True(t, r.Profit.Equal(qty(50)), "profit: got %s", r.Profit)
}

// A batch that only took damage reports a pure loss: no revenue, the
// written-off stock carried at cost.
func TestProfitLoss_DamageOnlyBatchIsALoss(t *testing.T) {
	cards := []entity.BinCard{
		card("B-100", entity.EventReceived, 100, 1),
		card("B-100", entity.EventDamaged, 8, 2),
	}
	joined, _ := ledger.Join(cards, []entity.Medicine{amoxicillin()})

	rows, err := ledger.ProfitLoss(ledger.Summarize(joined))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.True(t, rows[0].Profit.Equal(qty(-80)), "8 damaged at cost 10.00: got %s", rows[0].Profit)
}

func TestProfitLoss_SkipsBatchesWithoutActivity(t *testing.T) {
	cards := []entity.BinCard{
		card("B-100", entity.EventReceived, 100, 1), // receipts only
		card("B-200", entity.EventSold, 12, 2),
	}
	joined, _ := ledger.Join(cards, []entity.Medicine{amoxicillin(), paracetamol()})

	rows, err := ledger.ProfitLoss(ledger.Summarize(joined))
	require.NoError(t, err)
	require.Len(t, rows, 1, "a batch with neither sales nor damage yields no row")
	assert.Equal(t, "B-200", rows[0].BatchNo)
}

func TestProfitLoss_NoQualifyingBatches(t *testing.T) {
	cards := []entity.BinCard{
		card("B-100", entity.EventReceived, 100, 1),
	}
	joined, _ := ledger.Join(cards, []entity.Medicine{amoxicillin()})

	_, err := ledger.ProfitLoss(ledger.Summarize(joined))
	assert.ErrorIs(t, err, domain.ErrNoRecords)
}

func TestProfitLoss_EmptyLedger(t *testing.T) {
	_, err := ledger.ProfitLoss(nil)
	assert.ErrorIs(t, err, domain.ErrNoRecords)
}
