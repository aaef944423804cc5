package dto

import (
	"time"

	"github.com/lemlem-pharmacy/backend/internal/domain"
	"github.com/lemlem-pharmacy/backend/internal/domain/ledger"
)

// dateLayout is the wire format for all request dates.
const dateLayout = "2006-01-02"

// ErrorResponse is the HTTP error body.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// DateRangeRequest query parameters for date-windowed reports.
// Both dates empty means "no restriction"; a half-open pair is rejected.
type DateRangeRequest struct {
	StartDate string `query:"start_date"` // YYYY-MM-DD
	EndDate   string `query:"end_date"`   // YYYY-MM-DD
}

// Range parses and validates the request into a domain DateRange.
func (r DateRangeRequest) Range() (ledger.DateRange, error) {
	if r.StartDate == "" && r.EndDate == "" {
		return ledger.DateRange{}, nil
	}
	if r.StartDate == "" || r.EndDate == "" {
		return ledger.DateRange{}, domain.ErrInvalidArgument
	}
	start, err := time.Parse(dateLayout, r.StartDate)
	if err != nil {
		return ledger.DateRange{}, domain.ErrInvalidArgument
	}
	end, err := time.Parse(dateLayout, r.EndDate)
	if err != nil {
		return ledger.DateRange{}, domain.ErrInvalidArgument
	}
	// End of day so the upper bound is inclusive for timestamped events.
	dr := ledger.DateRange{Start: start, End: end.Add(24*time.Hour - time.Nanosecond)}
	if err := dr.Validate(); err != nil {
		return ledger.DateRange{}, err
	}
	return dr, nil
}
