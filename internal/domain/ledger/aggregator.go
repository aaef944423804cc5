// Package ledger implements the read-only aggregation core over the bin-card
// ledger: the join against medicine batches, event classification, and the
// grouped quantity summaries every report is derived from.
//
// All functions here are pure; they take rows already fetched from the store
// and never perform I/O, so concurrent report requests can share them freely.
package ledger

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/lemlem-pharmacy/backend/internal/domain/entity"
)

// JoinedRow is one bin-card entry paired with its batch master record.
type JoinedRow struct {
	Card  entity.BinCard
	Batch entity.Medicine
}

// Join pairs every bin card with its medicine batch on BatchNo. Entries
// referencing an unknown batch are skipped and counted as orphans; an orphan
// is a data-quality signal for the caller's logs, never a failure.
func Join(cards []entity.BinCard, medicines []entity.Medicine) (rows []JoinedRow, orphans int) {
	byBatch := make(map[string]entity.Medicine, len(medicines))
	for _, m := range medicines {
		byBatch[m.BatchNo] = m
	}
	rows = make([]JoinedRow, 0, len(cards))
	for _, c := range cards {
		batch, ok := byBatch[c.BatchNo]
		if !ok {
			orphans++
			continue
		}
		rows = append(rows, JoinedRow{Card: c, Batch: batch})
	}
	return rows, orphans
}

// FilterRange keeps the rows whose event date falls inside the window.
func FilterRange(rows []JoinedRow, r DateRange) []JoinedRow {
	if r.IsZero() {
		return rows
	}
	out := make([]JoinedRow, 0, len(rows))
	for _, row := range rows {
		if r.Contains(row.Card.DateReceived) {
			out = append(out, row)
		}
	}
	return out
}

// MatchesPhrase reports whether the row matches a free-text phrase against
// description, batch number or invoice, case-insensitively. The empty phrase
// matches everything.
func MatchesPhrase(row JoinedRow, phrase string) bool {
	if phrase == "" {
		return true
	}
	p := strings.ToLower(phrase)
	return strings.Contains(strings.ToLower(row.Batch.Description), p) ||
		strings.Contains(strings.ToLower(row.Card.BatchNo), p) ||
		strings.Contains(strings.ToLower(row.Card.Invoice), p)
}

// BatchSummary is the per-batch grouped view of the ledger: inflow and the
// sold/damaged outflows as positive magnitudes, plus the master data the
// financial derivations need. One summary per batch, never one per entry.
type BatchSummary struct {
	BatchNo     string
	Description string
	Category    string
	UnitCost    decimal.Decimal
	Received    decimal.Decimal
	Sold        decimal.Decimal
	Damaged     decimal.Decimal
	Entries     int
}

// Summarize groups joined rows by batch number and sums the movement deltas
// per classification in a single pass. Sold and damaged deltas are stored as
// negative outflows and are negated here, once, so every consumer sees
// positive "amount removed" figures. Output is ordered by batch number.
func Summarize(rows []JoinedRow) []BatchSummary {
	grouped := make(map[string]*BatchSummary)
	for _, row := range rows {
		s, ok := grouped[row.Card.BatchNo]
		if !ok {
			s = &BatchSummary{
				BatchNo:     row.Card.BatchNo,
				Description: row.Batch.Description,
				Category:    row.Batch.Category,
				UnitCost:    row.Batch.Price,
			}
			grouped[row.Card.BatchNo] = s
		}
		s.Entries++
		switch row.Card.Event() {
		case entity.EventDamaged:
			s.Damaged = s.Damaged.Add(row.Card.Amount.Neg())
		case entity.EventSold:
			s.Sold = s.Sold.Add(row.Card.Amount.Neg())
		default:
			s.Received = s.Received.Add(row.Card.Amount)
		}
	}

	out := make([]BatchSummary, 0, len(grouped))
	for _, s := range grouped {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].BatchNo < out[j].BatchNo })
	return out
}

// CategoryAmount is one {category, total} pair for the category graphs.
type CategoryAmount struct {
	Category string
	Amount   decimal.Decimal
}

// DamagedByCategory totals the damage write-offs per medicine category,
// presented as positive magnitudes.
func DamagedByCategory(rows []JoinedRow) []CategoryAmount {
	return categoryTotals(rows, entity.EventDamaged)
}

// SoldByCategory totals the sold outflow per medicine category, presented as
// positive magnitudes.
func SoldByCategory(rows []JoinedRow) []CategoryAmount {
	return categoryTotals(rows, entity.EventSold)
}

func categoryTotals(rows []JoinedRow, event int) []CategoryAmount {
	grouped := make(map[string]decimal.Decimal)
	for _, row := range rows {
		if row.Card.Event() != event {
			continue
		}
		grouped[row.Batch.Category] = grouped[row.Batch.Category].Add(row.Card.Amount.Neg())
	}
	return sortedCategories(grouped)
}

// InStockByCategory totals current stock per category straight from the
// batch master's quantity-on-hand. Stock is deliberately not re-derived from
// ledger entries: entries outlive the batch's running count and re-summing
// them would double-count.
func InStockByCategory(medicines []entity.Medicine) []CategoryAmount {
	grouped := make(map[string]decimal.Decimal)
	for _, m := range medicines {
		grouped[m.Category] = grouped[m.Category].Add(m.Quantity)
	}
	return sortedCategories(grouped)
}

func sortedCategories(grouped map[string]decimal.Decimal) []CategoryAmount {
	out := make([]CategoryAmount, 0, len(grouped))
	for category, amount := range grouped {
		out = append(out, CategoryAmount{Category: category, Amount: amount})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Category < out[j].Category })
	return out
}

// DamagedRow is one damage write-off enriched with batch master data, used by
// the full damaged-stock report. Unlike the grouped summaries this report is
// one row per ledger entry.
type DamagedRow struct {
	Invoice      string
	BatchNo      string
	DateReceived time.Time
	Amount       decimal.Decimal // positive magnitude
	Description  string
	ExpireDate   time.Time
	Category     string
	Type         string
}

// DamagedEntries lists every damage write-off with its batch details, ordered
// by event date then batch number.
func DamagedEntries(rows []JoinedRow) []DamagedRow {
	out := make([]DamagedRow, 0)
	for _, row := range rows {
		if row.Card.Event() != entity.EventDamaged {
			continue
		}
		out = append(out, DamagedRow{
			Invoice:      row.Card.Invoice,
			BatchNo:      row.Card.BatchNo,
			DateReceived: row.Card.DateReceived,
			Amount:       row.Card.Amount.Neg(),
			Description:  row.Batch.Description,
			ExpireDate:   row.Batch.ExpireDate,
			Category:     row.Batch.Category,
			Type:         row.Batch.Type,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].DateReceived.Equal(out[j].DateReceived) {
			return out[i].BatchNo < out[j].BatchNo
		}
		return out[i].DateReceived.Before(out[j].DateReceived)
	})
	return out
}

// MostSold ranks batches by sold quantity, highest first. Batches without a
// single sale in the window are left out.
func MostSold(summaries []BatchSummary) []BatchSummary {
	out := make([]BatchSummary, 0, len(summaries))
	for _, s := range summaries {
		if s.Sold.IsPositive() {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Sold.Equal(out[j].Sold) {
			return out[i].BatchNo < out[j].BatchNo
		}
		return out[i].Sold.GreaterThan(out[j].Sold)
	})
	return out
}
