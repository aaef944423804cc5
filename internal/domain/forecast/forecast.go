// Package forecast defines the demand-forecasting capability: fit a model on
// a historical per-period sales series, then ask it for a fixed number of
// future points. The model family behind the interface is replaceable
// without touching the ledger engine or its reports.
package forecast

import (
	"time"

	"github.com/lemlem-pharmacy/backend/internal/domain"
)

// Observation is one historical period (typically a month) with its total
// sold quantity.
type Observation struct {
	Period   time.Time
	Quantity float64
}

// Point is one forecast output: PeriodIndex 1 is the first period after the
// historical series.
type Point struct {
	PeriodIndex    int
	PredictedValue float64
}

// Model is a fitted forecasting artifact. Predict must be deterministic for
// a given fitted model, return exactly horizon points, and agree on shared
// prefixes: Predict(h1) equals the first h1 points of Predict(h2) for h1<h2.
type Model interface {
	Predict(horizon int) ([]Point, error)
}

// Forecaster fits a Model to a historical series.
type Forecaster interface {
	Fit(series []Observation) (Model, error)
}

// validateHorizon is shared by Model implementations.
func validateHorizon(horizon int) error {
	if horizon <= 0 {
		return domain.ErrInvalidArgument
	}
	return nil
}
