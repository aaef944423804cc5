package entity

import "time"

// CustomerNotification is a refill reminder: the customer with PhoneNo gets
// an SMS every IntervalMonths for the medicine batch BatchNo until EndDate.
// NextDate is the next scheduled send and advances by the interval after
// each dispatch.
type CustomerNotification struct {
	ID             string
	PhoneNo        string
	BatchNo        string
	IntervalMonths int
	EndDate        time.Time
	NextDate       time.Time
}

// Customer is the master record for a notification recipient.
type Customer struct {
	ID      string
	Name    string
	PhoneNo string
}
