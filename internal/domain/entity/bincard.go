package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Bin-card event codes. The Status column on a bin card doubles as the event
// type: 1 marks a damage write-off, 2 a sale, and every other value is a
// normal receipt of stock. Outflows (damaged, sold) are stored with a
// negative Amount; receipts with a positive one.
const (
	EventReceived = 0
	EventDamaged  = 1
	EventSold     = 2
)

// BinCard is one recorded stock-movement event against a batch. Rows are
// append-only: once written they are never updated or deleted, and every
// report is a read-only projection over them.
type BinCard struct {
	ID           string
	BatchNo      string
	MedicineID   string
	Invoice      string
	DateReceived time.Time
	Amount       decimal.Decimal // signed movement delta
	Status       int             // event code, see EventReceived/EventDamaged/EventSold
}

// Event normalizes the stored status code: anything that is not an explicit
// damage or sale counts as a receipt.
func (b BinCard) Event() int {
	switch b.Status {
	case EventDamaged, EventSold:
		return b.Status
	default:
		return EventReceived
	}
}
