package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/lemlem-pharmacy/backend/internal/domain/entity"
	"github.com/lemlem-pharmacy/backend/internal/domain/forecast"
	"github.com/lemlem-pharmacy/backend/internal/domain/ledger"
)

// ── Requests ──────────────────────────────────────────────────────────────────

// StockCardRequest query parameters for GET /api/dss/stock-card.
type StockCardRequest struct {
	BatchNo   string `query:"batch_no"`
	StartDate string `query:"start_date"` // YYYY-MM-DD
	EndDate   string `query:"end_date"`   // YYYY-MM-DD
}

// ForecastRequest query parameters for GET /api/dss/forecast.
type ForecastRequest struct {
	Horizon int `query:"horizon"` // number of future months; default 3
}

// ── Report rows ───────────────────────────────────────────────────────────────

// CategoryAmountDTO one {category, amount} pair for the category graphs.
type CategoryAmountDTO struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

// DamagedStockRowDTO one damage write-off with its batch details
// (full damaged-stock report).
type DamagedStockRowDTO struct {
	Invoice      string          `json:"invoice"`
	BatchNo      string          `json:"batch_no"`
	DateReceived time.Time       `json:"date_received"`
	Amount       decimal.Decimal `json:"amount"`
	Description  string          `json:"description"`
	ExpireDate   time.Time       `json:"expire_date"`
	Category     string          `json:"category"`
	Type         string          `json:"type"`
}

// ProfitLossRowDTO derived financial summary per batch.
// Profit = SellingPrice*Sold - Cost*Sold - Cost*Damaged.
type ProfitLossRowDTO struct {
	BatchNo         string          `json:"batch_no"`
	Description     string          `json:"description"`
	SoldQuantity    decimal.Decimal `json:"sold_quantity"`
	SellingPrice    decimal.Decimal `json:"selling_price"`
	MedicineCost    decimal.Decimal `json:"medicine_cost"`
	DamagedQuantity decimal.Decimal `json:"damaged_quantity"`
	Profit          decimal.Decimal `json:"profit"`
}

// StockCardRowDTO per-batch movement summary for a date window.
type StockCardRowDTO struct {
	BatchNo         string          `json:"batch_no"`
	Description     string          `json:"description"`
	SoldQuantity    decimal.Decimal `json:"sold_quantity"`
	InStockQuantity decimal.Decimal `json:"in_stock_quantity"`
	DamagedQuantity decimal.Decimal `json:"damaged_quantity"`
}

// ProductRecommendationDTO most-sold ranking row.
type ProductRecommendationDTO struct {
	BatchNo      string          `json:"batch_no"`
	Description  string          `json:"description"`
	SoldQuantity decimal.Decimal `json:"sold_quantity"`
}

// ForecastPointDTO one predicted future period.
type ForecastPointDTO struct {
	PeriodIndex    int     `json:"period_index"`
	PredictedValue float64 `json:"predicted_value"`
}

// SoldTransactionDTO one sale transaction line for the sales audit listing.
type SoldTransactionDTO struct {
	TransactionID string          `json:"transaction_id"`
	PharmacistID  string          `json:"pharmacist_id"`
	CustomerPhone string          `json:"customer_phone,omitempty"`
	MedicineID    string          `json:"medicine_id"`
	Quantity      decimal.Decimal `json:"quantity"`
	SellingPrice  decimal.Decimal `json:"selling_price"`
	SellingDate   time.Time       `json:"selling_date"`
}

// BatchInfoDTO read-only batch details for the notification collaborator.
type BatchInfoDTO struct {
	BatchNo     string `json:"batch_no"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

// ── Converters ────────────────────────────────────────────────────────────────

// NewCategoryAmounts maps domain category totals to DTOs.
func NewCategoryAmounts(rows []ledger.CategoryAmount) []CategoryAmountDTO {
	out := make([]CategoryAmountDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, CategoryAmountDTO{Category: r.Category, Amount: r.Amount})
	}
	return out
}

// NewDamagedStockRows maps damaged ledger rows to DTOs.
func NewDamagedStockRows(rows []ledger.DamagedRow) []DamagedStockRowDTO {
	out := make([]DamagedStockRowDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, DamagedStockRowDTO{
			Invoice:      r.Invoice,
			BatchNo:      r.BatchNo,
			DateReceived: r.DateReceived,
			Amount:       r.Amount,
			Description:  r.Description,
			ExpireDate:   r.ExpireDate,
			Category:     r.Category,
			Type:         r.Type,
		})
	}
	return out
}

// NewProfitLossRows maps profit/loss rows to DTOs.
func NewProfitLossRows(rows []ledger.ProfitLossRow) []ProfitLossRowDTO {
	out := make([]ProfitLossRowDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, ProfitLossRowDTO{
			BatchNo:         r.BatchNo,
			Description:     r.Description,
			SoldQuantity:    r.SoldQuantity,
			SellingPrice:    r.SellingPrice,
			MedicineCost:    r.MedicineCost,
			DamagedQuantity: r.DamagedQuantity,
			Profit:          r.Profit,
		})
	}
	return out
}

// NewSoldTransactions maps sale lines to DTOs.
func NewSoldTransactions(rows []entity.SoldMedicine) []SoldTransactionDTO {
	out := make([]SoldTransactionDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, SoldTransactionDTO{
			TransactionID: r.TransactionID,
			PharmacistID:  r.PharmacistID,
			CustomerPhone: r.CustomerPhone,
			MedicineID:    r.MedicineID,
			Quantity:      r.Quantity,
			SellingPrice:  r.SellingPrice,
			SellingDate:   r.SellingDate,
		})
	}
	return out
}

// NewForecastPoints maps forecast points to DTOs.
func NewForecastPoints(points []forecast.Point) []ForecastPointDTO {
	out := make([]ForecastPointDTO, 0, len(points))
	for _, p := range points {
		out = append(out, ForecastPointDTO{PeriodIndex: p.PeriodIndex, PredictedValue: p.PredictedValue})
	}
	return out
}
