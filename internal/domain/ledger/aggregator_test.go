package ledger_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lemlem-pharmacy/backend/internal/domain"
	"github.com/lemlem-pharmacy/backend/internal/domain/entity"
	"github.com/lemlem-pharmacy/backend/internal/domain/ledger"
)

func day(d int) time.Time {
	return time.Date(2026, time.March, d, 0, 0, 0, 0, time.UTC)
}

func qty(n int64) decimal.Decimal {
	return decimal.NewFromInt(n)
}

// card builds a bin-card entry with the sign convention applied: receipts
// positive, sales and damage write-offs negative.
func card(batchNo string, status int, amount int64, d int) entity.BinCard {
	a := decimal.NewFromInt(amount)
	if status == entity.EventDamaged || status == entity.EventSold {
		a = a.Neg()
	}
	return entity.BinCard{
		ID:           batchNo + "-" + time.Now().Format("150405.000000000"),
		BatchNo:      batchNo,
		Invoice:      "INV-" + batchNo,
		DateReceived: day(d),
		Amount:       a,
		Status:       status,
	}
}

func amoxicillin() entity.Medicine {
	return entity.Medicine{
		ID:          "m-1",
		BatchNo:     "B-100",
		Description: "Amoxicillin 500mg",
		Category:    "Antibiotic",
		Type:        "Capsule",
		Price:       decimal.RequireFromString("10.00"),
		Quantity:    qty(55),
		ExpireDate:  day(28),
	}
}

func paracetamol() entity.Medicine {
	return entity.Medicine{
		ID:          "m-2",
		BatchNo:     "B-200",
		Description: "Paracetamol 500mg",
		Category:    "Analgesic",
		Type:        "Tablet",
		Price:       decimal.RequireFromString("2.50"),
		Quantity:    qty(80),
		ExpireDate:  day(28),
	}
}

func TestJoin_SkipsOrphans(t *testing.T) {
	cards := []entity.BinCard{
		card("B-100", entity.EventReceived, 100, 1),
		card("B-999", entity.EventSold, 5, 2), // no matching batch master
	}
	rows, orphans := ledger.Join(cards, []entity.Medicine{amoxicillin()})

	assert.Len(t, rows, 1)
	assert.Equal(t, 1, orphans)
	assert.Equal(t, "B-100", rows[0].Batch.BatchNo)
}

func TestJoin_EmptyInputs(t *testing.T) {
	rows, orphans := ledger.Join(nil, nil)
	assert.Empty(t, rows)
	assert.Zero(t, orphans)
}

func TestSummarize_GroupsAndNegatesOutflows(t *testing.T) {
	cards := []entity.BinCard{
		card("B-100", entity.EventReceived, 100, 1),
		card("B-100", entity.EventSold, 30, 2),
		card("B-100", entity.EventSold, 10, 3),
		card("B-100", entity.EventDamaged, 5, 4),
	}
	rows, _ := ledger.Join(cards, []entity.Medicine{amoxicillin()})
	summaries := ledger.Summarize(rows)

	require.Len(t, summaries, 1, "four entries against one batch collapse into one summary")
	s := summaries[0]
	assert.Equal(t, "B-100", s.BatchNo)
	assert.True(t, s.Received.Equal(qty(100)), "received: got %s", s.Received)
	assert.True(t, s.Sold.Equal(qty(40)), "sold must be reported positive: got %s", s.Sold)
	assert.True(t, s.Damaged.Equal(qty(5)), "damaged must be reported positive: got %s", s.Damaged)
	assert.Equal(t, 4, s.Entries)
}

func TestSummarize_UnknownStatusCountsAsReceipt(t *testing.T) {
	weird := card("B-100", entity.EventReceived, 20, 1)
	weird.Status = 7
	rows, _ := ledger.Join([]entity.BinCard{weird}, []entity.Medicine{amoxicillin()})

	summaries := ledger.Summarize(rows)
	require.Len(t, summaries, 1)
	assert.True(t, summaries[0].Received.Equal(qty(20)))
	assert.True(t, summaries[0].Sold.IsZero())
	assert.True(t, summaries[0].Damaged.IsZero())
}

func TestSummarize_OrderedByBatchNo(t *testing.T) {
	cards := []entity.BinCard{
		card("B-200", entity.EventReceived, 10, 1),
		card("B-100", entity.EventReceived, 10, 1),
	}
	rows, _ := ledger.Join(cards, []entity.Medicine{amoxicillin(), paracetamol()})
	summaries := ledger.Summarize(rows)

	require.Len(t, summaries, 2)
	assert.Equal(t, "B-100", summaries[0].BatchNo)
	assert.Equal(t, "B-200", summaries[1].BatchNo)
}

// Outflows never exceed the recorded inflow in a well-formed ledger; the
// summary must preserve that relation instead of inventing quantity.
func TestSummarize_OutflowsDoNotExceedInflow(t *testing.T) {
	cards := []entity.BinCard{
		card("B-100", entity.EventReceived, 100, 1),
		card("B-100", entity.EventSold, 60, 2),
		card("B-100", entity.EventDamaged, 15, 3),
	}
	rows, _ := ledger.Join(cards, []entity.Medicine{amoxicillin()})
	s := ledger.Summarize(rows)[0]

	assert.True(t, s.Sold.Add(s.Damaged).LessThanOrEqual(s.Received))
}

func TestFilterRange_InclusiveBothEnds(t *testing.T) {
	cards := []entity.BinCard{
		card("B-100", entity.EventReceived, 1, 1),
		card("B-100", entity.EventReceived, 1, 5),
		card("B-100", entity.EventReceived, 1, 10),
		card("B-100", entity.EventReceived, 1, 11),
	}
	rows, _ := ledger.Join(cards, []entity.Medicine{amoxicillin()})

	got := ledger.FilterRange(rows, ledger.DateRange{Start: day(1), End: day(10)})
	assert.Len(t, got, 3, "entries on the start and end dates are included")
}

func TestFilterRange_ZeroRangeKeepsAll(t *testing.T) {
	cards := []entity.BinCard{
		card("B-100", entity.EventReceived, 1, 1),
		card("B-100", entity.EventReceived, 1, 20),
	}
	rows, _ := ledger.Join(cards, []entity.Medicine{amoxicillin()})

	got := ledger.FilterRange(rows, ledger.DateRange{})
	assert.Len(t, got, 2)
}

func TestDateRange_Validate(t *testing.T) {
	assert.NoError(t, ledger.DateRange{}.Validate())
	assert.NoError(t, ledger.DateRange{Start: day(1), End: day(2)}.Validate())

	err := ledger.DateRange{Start: day(2), End: day(1)}.Validate()
	assert.ErrorIs(t, err, domain.ErrInvalidRange)
}

func TestMatchesPhrase(t *testing.T) {
	rows, _ := ledger.Join(
		[]entity.BinCard{card("B-100", entity.EventReceived, 10, 1)},
		[]entity.Medicine{amoxicillin()},
	)
	row := rows[0]

	assert.True(t, ledger.MatchesPhrase(row, ""), "empty phrase matches everything")
	assert.True(t, ledger.MatchesPhrase(row, "amoxi"), "description match, case-insensitive")
	assert.True(t, ledger.MatchesPhrase(row, "b-100"), "batch number match")
	assert.True(t, ledger.MatchesPhrase(row, "inv-"), "invoice match")
	assert.False(t, ledger.MatchesPhrase(row, "ibuprofen"))
}

func TestDamagedEntries_OneRowPerWriteOff(t *testing.T) {
	cards := []entity.BinCard{
		card("B-100", entity.EventDamaged, 5, 3),
		card("B-100", entity.EventDamaged, 2, 1),
		card("B-100", entity.EventSold, 10, 2),
	}
	rows, _ := ledger.Join(cards, []entity.Medicine{amoxicillin()})

	damaged := ledger.DamagedEntries(rows)
	require.Len(t, damaged, 2, "sales are excluded from the damaged report")
	assert.True(t, damaged[0].DateReceived.Before(damaged[1].DateReceived), "ordered by event date")
	assert.True(t, damaged[0].Amount.Equal(qty(2)), "amount is the positive magnitude")
	assert.Equal(t, "Antibiotic", damaged[0].Category)
	assert.Equal(t, "Amoxicillin 500mg", damaged[0].Description)
}

func TestCategoryTotals(t *testing.T) {
	cards := []entity.BinCard{
		card("B-100", entity.EventDamaged, 5, 1),
		card("B-100", entity.EventSold, 30, 2),
		card("B-200", entity.EventSold, 12, 2),
		card("B-200", entity.EventReceived, 50, 1),
	}
	rows, _ := ledger.Join(cards, []entity.Medicine{amoxicillin(), paracetamol()})

	damaged := ledger.DamagedByCategory(rows)
	require.Len(t, damaged, 1)
	assert.Equal(t, "Antibiotic", damaged[0].Category)
	assert.True(t, damaged[0].Amount.Equal(qty(5)))

	sold := ledger.SoldByCategory(rows)
	require.Len(t, sold, 2)
	assert.Equal(t, "Analgesic", sold[0].Category)
	assert.True(t, sold[0].Amount.Equal(qty(12)))
	assert.Equal(t, "Antibiotic", sold[1].Category)
	assert.True(t, sold[1].Amount.Equal(qty(30)))
}

func TestInStockByCategory_UsesBatchMasterQuantity(t *testing.T) {
	got := ledger.InStockByCategory([]entity.Medicine{amoxicillin(), paracetamol()})

	require.Len(t, got, 2)
	assert.Equal(t, "Analgesic", got[0].Category)
	assert.True(t, got[0].Amount.Equal(qty(80)))
	assert.Equal(t, "Antibiotic", got[1].Category)
	assert.True(t, got[1].Amount.Equal(qty(55)))
}

func TestMostSold_RanksBySoldQuantityDescending(t *testing.T) {
	cards := []entity.BinCard{
		card("B-100", entity.EventSold, 30, 1),
		card("B-200", entity.EventSold, 45, 1),
	}
	rows, _ := ledger.Join(cards, []entity.Medicine{amoxicillin(), paracetamol()})
	ranked := ledger.MostSold(ledger.Summarize(rows))

	require.Len(t, ranked, 2)
	assert.Equal(t, "B-200", ranked[0].BatchNo)
	assert.Equal(t, "B-100", ranked[1].BatchNo)
}

func TestMostSold_ExcludesBatchesWithoutSales(t *testing.T) {
	cards := []entity.BinCard{
		card("B-100", entity.EventSold, 30, 1),
		card("B-200", entity.EventReceived, 50, 1),
		card("B-200", entity.EventDamaged, 3, 2),
	}
	rows, _ := ledger.Join(cards, []entity.Medicine{amoxicillin(), paracetamol()})
	ranked := ledger.MostSold(ledger.Summarize(rows))

	require.Len(t, ranked, 1)
	assert.Equal(t, "B-100", ranked[0].BatchNo)
}
