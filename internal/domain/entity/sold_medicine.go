package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SoldMedicine is one sale transaction line. SellingDate is non-null for
// completed sales and Quantity is always positive. The bin-card ledger stays
// authoritative for sold quantities in reports; these rows exist for
// transaction-level audit and feed the monthly series of the forecaster.
type SoldMedicine struct {
	TransactionID string
	PharmacistID  string
	CustomerPhone string
	MedicineID    string
	Quantity      decimal.Decimal
	SellingPrice  decimal.Decimal
	SellingDate   time.Time
}
