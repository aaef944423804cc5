package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Medicine is one purchased lot (batch) of a drug. BatchNo is the join key
// against the bin-card ledger and must be unique among active lots. Rows are
// never physically deleted; historical reports depend on them.
type Medicine struct {
	ID          string
	BatchNo     string
	Description string
	Category    string
	Type        string
	Price       decimal.Decimal // unit cost at purchase
	Quantity    decimal.Decimal // denormalized stock on hand, kept by the movement flow
	ExpireDate  time.Time
	Active      bool
}
