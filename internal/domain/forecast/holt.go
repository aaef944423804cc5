package forecast

import (
	"sort"

	"github.com/lemlem-pharmacy/backend/internal/domain"
)

// Default smoothing factors. Level reacts fairly quickly to recent months;
// the trend component is damped harder so one unusual month does not bend
// the whole projection.
const (
	defaultAlpha = 0.5
	defaultBeta  = 0.3
)

// HoltForecaster fits Holt's double exponential smoothing: a smoothed level
// plus a smoothed linear trend, extrapolated over the horizon. Fitting the
// same series always yields the same model, and prediction is a pure linear
// extrapolation, so both determinism and prefix consistency hold by
// construction.
type HoltForecaster struct {
	Alpha float64
	Beta  float64
}

// NewHoltForecaster builds a forecaster with the default smoothing factors.
func NewHoltForecaster() *HoltForecaster {
	return &HoltForecaster{Alpha: defaultAlpha, Beta: defaultBeta}
}

var _ Forecaster = (*HoltForecaster)(nil)

// Fit smooths the series into a (level, trend) pair. The series is sorted by
// period first, so callers may pass observations in any order. An empty
// series cannot be fitted and fails with ErrNoRecords.
func (f *HoltForecaster) Fit(series []Observation) (Model, error) {
	if len(series) == 0 {
		return nil, domain.ErrNoRecords
	}

	obs := make([]Observation, len(series))
	copy(obs, series)
	sort.Slice(obs, func(i, j int) bool { return obs[i].Period.Before(obs[j].Period) })

	level := obs[0].Quantity
	trend := 0.0
	if len(obs) > 1 {
		trend = obs[1].Quantity - obs[0].Quantity
	}
	for _, o := range obs[1:] {
		prevLevel := level
		level = f.Alpha*o.Quantity + (1-f.Alpha)*(level+trend)
		trend = f.Beta*(level-prevLevel) + (1-f.Beta)*trend
	}

	return holtModel{level: level, trend: trend}, nil
}

type holtModel struct {
	level float64
	trend float64
}

// Predict extrapolates level + k*trend for k = 1..horizon. Demand cannot go
// negative, so projections are floored at zero.
func (m holtModel) Predict(horizon int) ([]Point, error) {
	if err := validateHorizon(horizon); err != nil {
		return nil, err
	}
	points := make([]Point, horizon)
	for k := 1; k <= horizon; k++ {
		v := m.level + float64(k)*m.trend
		if v < 0 {
			v = 0
		}
		points[k-1] = Point{PeriodIndex: k, PredictedValue: v}
	}
	return points, nil
}
