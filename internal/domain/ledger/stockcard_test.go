package ledger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lemlem-pharmacy/backend/internal/domain"
	"github.com/lemlem-pharmacy/backend/internal/domain/entity"
	"github.com/lemlem-pharmacy/backend/internal/domain/ledger"
)

func TestStockCard_SummarizesOneBatch(t *testing.T) {
	cards := []entity.BinCard{
		card("B-100", entity.EventReceived, 100, 1),
		card("B-100", entity.EventSold, 40, 2),
		card("B-100", entity.EventDamaged, 5, 3),
		card("B-200", entity.EventSold, 99, 2), // other batch, ignored
	}
	joined, _ := ledger.Join(cards, []entity.Medicine{amoxicillin(), paracetamol()})

	row, err := ledger.StockCard(joined, "B-100")
	require.NoError(t, err)
	assert.Equal(t, "B-100", row.BatchNo)
	assert.Equal(t, "Amoxicillin 500mg", row.Description)
	assert.True(t, row.InStockQuantity.Equal(qty(100)))
	assert.True(t, row.SoldQuantity.Equal(qty(40)))
	assert.True(t, row.DamagedQuantity.Equal(qty(5)))
}

func TestStockCard_UnknownBatch(t *testing.T) {
	cards := []entity.BinCard{
		card("B-100", entity.EventReceived, 100, 1),
	}
	joined, _ := ledger.Join(cards, []entity.Medicine{amoxicillin()})

	_, err := ledger.StockCard(joined, "B-404")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStockCard_NoRowsAtAll(t *testing.T) {
	_, err := ledger.StockCard(nil, "B-100")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
