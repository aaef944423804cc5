package reporting

import (
	"context"
	"fmt"

	"github.com/lemlem-pharmacy/backend/internal/application/dto"
	"github.com/lemlem-pharmacy/backend/internal/domain"
	"github.com/lemlem-pharmacy/backend/internal/domain/entity"
	"github.com/lemlem-pharmacy/backend/internal/domain/forecast"
	"github.com/lemlem-pharmacy/backend/internal/domain/ledger"
	"github.com/lemlem-pharmacy/backend/internal/domain/repository"
	"github.com/lemlem-pharmacy/backend/pkg/logger"
)

// DefaultForecastHorizon months predicted when the caller does not ask for a
// specific horizon.
const DefaultForecastHorizon = 3

// ReportUseCase is the single entry surface for every derived report: it
// wires the ledger store ports to the aggregation core, the profit/loss and
// stock-card derivations, and the demand forecaster. It applies no report
// logic of its own beyond predicate validation and error shaping.
//
// Every call recomputes from source rows; reads never mutate ledger state,
// so concurrent report requests are safe against a store that is being
// appended to.
type ReportUseCase struct {
	binCards   repository.BinCardRepository
	medicines  repository.MedicineRepository
	sales      repository.SaleRepository
	forecaster forecast.Forecaster
	pdf        ProfitLossPDFGenerator
	log        *logger.Logger
}

// NewReportUseCase builds the reporting facade.
func NewReportUseCase(
	binCards repository.BinCardRepository,
	medicines repository.MedicineRepository,
	sales repository.SaleRepository,
	forecaster forecast.Forecaster,
	pdf ProfitLossPDFGenerator,
	log *logger.Logger,
) *ReportUseCase {
	return &ReportUseCase{
		binCards:   binCards,
		medicines:  medicines,
		sales:      sales,
		forecaster: forecaster,
		pdf:        pdf,
		log:        log,
	}
}

// joined fetches bin cards (optionally restricted to a window) and batch
// masters, and joins them. Orphaned entries are logged and skipped, never
// propagated as a failure.
func (uc *ReportUseCase) joined(ctx context.Context, r ledger.DateRange) ([]ledger.JoinedRow, error) {
	entries, err := uc.fetchCards(ctx, r)
	if err != nil {
		return nil, upstream("query bin cards", err)
	}
	medicines, err := uc.medicines.List(ctx)
	if err != nil {
		return nil, upstream("query medicines", err)
	}
	rows, orphans := ledger.Join(entries, medicines)
	if orphans > 0 {
		uc.log.Warn().Int("orphans", orphans).Msg("bin cards referencing unknown batches skipped")
	}
	return rows, nil
}

// FullDamagedReport lists every damage write-off with its batch details.
func (uc *ReportUseCase) FullDamagedReport(ctx context.Context) ([]dto.DamagedStockRowDTO, error) {
	rows, err := uc.joined(ctx, ledger.DateRange{})
	if err != nil {
		return nil, err
	}
	damaged := ledger.DamagedEntries(rows)
	if len(damaged) == 0 {
		return nil, domain.ErrNoRecords
	}
	return dto.NewDamagedStockRows(damaged), nil
}

// DamagedByCategory totals damage write-offs per medicine category.
func (uc *ReportUseCase) DamagedByCategory(ctx context.Context) ([]dto.CategoryAmountDTO, error) {
	rows, err := uc.joined(ctx, ledger.DateRange{})
	if err != nil {
		return nil, err
	}
	return dto.NewCategoryAmounts(ledger.DamagedByCategory(rows)), nil
}

// SoldByCategory totals sold outflow per medicine category.
func (uc *ReportUseCase) SoldByCategory(ctx context.Context) ([]dto.CategoryAmountDTO, error) {
	rows, err := uc.joined(ctx, ledger.DateRange{})
	if err != nil {
		return nil, err
	}
	return dto.NewCategoryAmounts(ledger.SoldByCategory(rows)), nil
}

// InStockByCategory totals current stock per category straight from the
// batch masters.
func (uc *ReportUseCase) InStockByCategory(ctx context.Context) ([]dto.CategoryAmountDTO, error) {
	medicines, err := uc.medicines.List(ctx)
	if err != nil {
		return nil, upstream("query medicines", err)
	}
	return dto.NewCategoryAmounts(ledger.InStockByCategory(medicines)), nil
}

// ProfitLoss derives the profit/loss report over the whole ledger.
func (uc *ReportUseCase) ProfitLoss(ctx context.Context) ([]dto.ProfitLossRowDTO, error) {
	return uc.profitLoss(ctx, ledger.DateRange{})
}

// ProfitLossByDate derives the profit/loss report for a date window.
// The range is validated before any store access.
func (uc *ReportUseCase) ProfitLossByDate(ctx context.Context, req dto.DateRangeRequest) ([]dto.ProfitLossRowDTO, error) {
	r, err := req.Range()
	if err != nil {
		return nil, err
	}
	return uc.profitLoss(ctx, r)
}

func (uc *ReportUseCase) profitLoss(ctx context.Context, r ledger.DateRange) ([]dto.ProfitLossRowDTO, error) {
	rows, err := uc.joined(ctx, r)
	if err != nil {
		return nil, err
	}
	plRows, err := ledger.ProfitLoss(ledger.Summarize(rows))
	if err != nil {
		return nil, err
	}
	return dto.NewProfitLossRows(plRows), nil
}

// MostSold ranks batches by sold quantity inside the window.
func (uc *ReportUseCase) MostSold(ctx context.Context, req dto.DateRangeRequest) ([]dto.ProductRecommendationDTO, error) {
	r, err := req.Range()
	if err != nil {
		return nil, err
	}
	rows, err := uc.joined(ctx, r)
	if err != nil {
		return nil, err
	}
	ranked := ledger.MostSold(ledger.Summarize(rows))
	if len(ranked) == 0 {
		return nil, domain.ErrNoRecords
	}
	out := make([]dto.ProductRecommendationDTO, 0, len(ranked))
	for _, s := range ranked {
		out = append(out, dto.ProductRecommendationDTO{
			BatchNo:      s.BatchNo,
			Description:  s.Description,
			SoldQuantity: s.Sold,
		})
	}
	return out, nil
}

// SalesByDate lists the sale transactions inside a window, oldest first.
// This is the transaction-level audit view; report quantities stay derived
// from the bin-card ledger.
func (uc *ReportUseCase) SalesByDate(ctx context.Context, req dto.DateRangeRequest) ([]dto.SoldTransactionDTO, error) {
	r, err := req.Range()
	if err != nil {
		return nil, err
	}
	sales, err := uc.sales.ListByDateRange(ctx, r)
	if err != nil {
		return nil, upstream("query sales", err)
	}
	if len(sales) == 0 {
		return nil, domain.ErrNoRecords
	}
	return dto.NewSoldTransactions(sales), nil
}

// StockCard summarizes one batch's movement inside a window. An unknown
// batch or a batch without activity in the window fails with ErrNotFound.
func (uc *ReportUseCase) StockCard(ctx context.Context, req dto.StockCardRequest) (*dto.StockCardRowDTO, error) {
	if req.BatchNo == "" {
		return nil, domain.ErrInvalidArgument
	}
	r, err := dto.DateRangeRequest{StartDate: req.StartDate, EndDate: req.EndDate}.Range()
	if err != nil {
		return nil, err
	}
	entries, err := uc.binCards.ListByBatchNo(ctx, req.BatchNo)
	if err != nil {
		return nil, upstream("query bin cards", err)
	}
	medicines, err := uc.medicines.List(ctx)
	if err != nil {
		return nil, upstream("query medicines", err)
	}
	rows, orphans := ledger.Join(entries, medicines)
	if orphans > 0 {
		uc.log.Warn().Int("orphans", orphans).Str("batch_no", req.BatchNo).
			Msg("bin cards referencing unknown batches skipped")
	}
	card, err := ledger.StockCard(ledger.FilterRange(rows, r), req.BatchNo)
	if err != nil {
		return nil, err
	}
	return &dto.StockCardRowDTO{
		BatchNo:         card.BatchNo,
		Description:     card.Description,
		SoldQuantity:    card.SoldQuantity,
		InStockQuantity: card.InStockQuantity,
		DamagedQuantity: card.DamagedQuantity,
	}, nil
}

// Forecast fits the demand model on the monthly sales series and predicts
// the requested number of future months. The horizon is validated before
// any store access.
func (uc *ReportUseCase) Forecast(ctx context.Context, horizon int) ([]dto.ForecastPointDTO, error) {
	if horizon <= 0 {
		return nil, domain.ErrInvalidArgument
	}
	series, err := uc.sales.MonthlyTotals(ctx)
	if err != nil {
		return nil, upstream("query monthly sales", err)
	}
	model, err := uc.forecaster.Fit(series)
	if err != nil {
		return nil, err
	}
	points, err := model.Predict(horizon)
	if err != nil {
		return nil, err
	}
	return dto.NewForecastPoints(points), nil
}

// BatchInfo is the read-only accessor the notification collaborator uses to
// enrich reminder messages.
func (uc *ReportUseCase) BatchInfo(ctx context.Context, batchNo string) (*dto.BatchInfoDTO, error) {
	m, err := uc.medicines.GetByBatchNo(ctx, batchNo)
	if err != nil {
		return nil, upstream("query medicine", err)
	}
	if m == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.BatchInfoDTO{BatchNo: m.BatchNo, Description: m.Description, Category: m.Category}, nil
}

// ProfitLossPDF renders the (optionally date-windowed) profit/loss report as
// a PDF document.
func (uc *ReportUseCase) ProfitLossPDF(ctx context.Context, req dto.DateRangeRequest) ([]byte, error) {
	r, err := req.Range()
	if err != nil {
		return nil, err
	}
	rows, err := uc.joined(ctx, r)
	if err != nil {
		return nil, err
	}
	plRows, err := ledger.ProfitLoss(ledger.Summarize(rows))
	if err != nil {
		return nil, err
	}
	period := "all time"
	if !r.IsZero() {
		period = req.StartDate + " to " + req.EndDate
	}
	return uc.pdf.GenerateProfitLossPDF(ctx, period, plRows)
}

// fetchCards picks the narrowest ledger query for the window.
func (uc *ReportUseCase) fetchCards(ctx context.Context, r ledger.DateRange) ([]entity.BinCard, error) {
	if r.IsZero() {
		return uc.binCards.List(ctx)
	}
	return uc.binCards.ListByDateRange(ctx, r)
}

// upstream tags a store/forecaster failure so handlers can distinguish
// "the system is broken" from "nothing matched".
func upstream(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", domain.ErrUpstream, op, err)
}
