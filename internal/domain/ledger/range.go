package ledger

import (
	"time"

	"github.com/lemlem-pharmacy/backend/internal/domain"
)

// DateRange is an inclusive [Start, End] window over event dates.
// The zero value means "no restriction".
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Validate rejects ranges whose start falls after their end. Callers must
// validate before touching the store.
func (r DateRange) Validate() error {
	if r.IsZero() {
		return nil
	}
	if r.Start.After(r.End) {
		return domain.ErrInvalidRange
	}
	return nil
}

// IsZero reports whether the range carries no restriction.
func (r DateRange) IsZero() bool {
	return r.Start.IsZero() && r.End.IsZero()
}

// Contains reports whether t falls inside the window, both ends inclusive.
// The zero range contains every instant.
func (r DateRange) Contains(t time.Time) bool {
	if r.IsZero() {
		return true
	}
	return !t.Before(r.Start) && !t.After(r.End)
}
