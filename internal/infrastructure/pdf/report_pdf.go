// Package pdf renders the profit/loss report as a printable A4 document.
//
// Page layout:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Pharmacy name | report title + period               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLE: Batch | Description | Sold | Price | Cost | Damaged  │
//	│         | Profit                                             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALS: total profit over the period                        │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/lemlem-pharmacy/backend/internal/application/reporting"
	"github.com/lemlem-pharmacy/backend/internal/domain/ledger"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 90, Blue: 60}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// Compile-time check that MarotoReportGenerator implements the facade port.
var _ reporting.ProfitLossPDFGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implements reporting.ProfitLossPDFGenerator using
// Maroto v2.
type MarotoReportGenerator struct {
	pharmacyName string
}

// NewMarotoReportGenerator builds the generator.
func NewMarotoReportGenerator(pharmacyName string) *MarotoReportGenerator {
	return &MarotoReportGenerator{pharmacyName: pharmacyName}
}

// GenerateProfitLossPDF renders the report rows and returns the PDF bytes.
func (g *MarotoReportGenerator) GenerateProfitLossPDF(
	_ context.Context,
	period string,
	rows []ledger.ProfitLossRow,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Profit/Loss Report", true).
		WithAuthor(g.pharmacyName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(period))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, r := range rows {
		m.AddRows(detailRow(r))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(rows))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate document: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: pharmacy name on the left, report title, period and print date
// on the right.
func (g *MarotoReportGenerator) headerRow(period string) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New(g.pharmacyName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New("PROFIT/LOSS REPORT", props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New("Period: "+period, props.Text{
				Size: 8, Align: align.Right, Top: 7, Color: colorGray,
			}),
			text.New("Printed: "+time.Now().Format("2006-01-02"), props.Text{
				Size: 8, Align: align.Right, Top: 12, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 1,
		}))
	}
	return row.New(7).Add(
		h("Batch", 2, align.Left),
		h("Description", 3, align.Left),
		h("Sold", 1, align.Right),
		h("Price", 2, align.Right),
		h("Cost", 1, align.Right),
		h("Damaged", 1, align.Right),
		h("Profit", 2, align.Right),
	)
}

func detailRow(r ledger.ProfitLossRow) core.Row {
	c := func(value string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(value, props.Text{Size: 8, Align: a, Top: 1}))
	}
	return row.New(6).Add(
		c(r.BatchNo, 2, align.Left),
		c(r.Description, 3, align.Left),
		c(r.SoldQuantity.String(), 1, align.Right),
		c(r.SellingPrice.StringFixed(2), 2, align.Right),
		c(r.MedicineCost.StringFixed(2), 1, align.Right),
		c(r.DamagedQuantity.String(), 1, align.Right),
		c(r.Profit.StringFixed(2), 2, align.Right),
	)
}

func totalsRow(rows []ledger.ProfitLossRow) core.Row {
	total := decimal.Zero
	for _, r := range rows {
		total = total.Add(r.Profit)
	}
	return row.New(8).Add(
		col.New(8),
		col.New(4).Add(
			text.New("TOTAL PROFIT: "+total.StringFixed(2), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Top: 2,
			}),
		),
	)
}
