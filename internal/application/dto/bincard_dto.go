package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/lemlem-pharmacy/backend/internal/domain/entity"
)

// BinCardDTO one ledger entry as returned by the bin-card queries.
type BinCardDTO struct {
	ID           string          `json:"id"`
	BatchNo      string          `json:"batch_no"`
	MedicineID   string          `json:"medicine_id"`
	Invoice      string          `json:"invoice"`
	DateReceived time.Time       `json:"date_received"`
	Amount       decimal.Decimal `json:"amount"`
	Status       int             `json:"status"` // 1=damaged, 2=sold, otherwise received
}

// NewBinCard maps an entity to its DTO.
func NewBinCard(b entity.BinCard) BinCardDTO {
	return BinCardDTO{
		ID:           b.ID,
		BatchNo:      b.BatchNo,
		MedicineID:   b.MedicineID,
		Invoice:      b.Invoice,
		DateReceived: b.DateReceived,
		Amount:       b.Amount,
		Status:       b.Status,
	}
}

// NewBinCards maps a slice of entities to DTOs.
func NewBinCards(cards []entity.BinCard) []BinCardDTO {
	out := make([]BinCardDTO, 0, len(cards))
	for _, b := range cards {
		out = append(out, NewBinCard(b))
	}
	return out
}
