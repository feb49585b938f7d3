package stats

import (
	"errors"
	"fmt"
)

// ErrInsufficientData is returned when a computation needs more observations
// than the caller supplied. Distinct from the degenerate numeric cases, which
// yield defined fallback values instead of errors.
var ErrInsufficientData = errors.New("insufficient data")

// Returns computes the percentage change between consecutive prices.
// The result has length len(prices)-1.
func Returns(prices []float64) ([]float64, error) {
	if len(prices) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 prices, got %d", ErrInsufficientData, len(prices))
	}
	returns := make([]float64, len(prices)-1)
	for i := 1; i < len(prices); i++ {
		if prices[i-1] == 0 {
			return nil, fmt.Errorf("zero price at index %d makes return undefined", i-1)
		}
		returns[i-1] = (prices[i] - prices[i-1]) / prices[i-1]
	}
	return returns, nil
}

// CumulativeReturns computes the running product of (1+r).
func CumulativeReturns(returns []float64) []float64 {
	cumulative := make([]float64, len(returns))
	product := 1.0
	for i, r := range returns {
		product *= 1 + r
		cumulative[i] = product
	}
	return cumulative
}

// Drawdown computes (value - runningMax) / runningMax for each point of a
// cumulative-return (or equity) curve. Every element is <= 0.
func Drawdown(cumulative []float64) []float64 {
	drawdowns := make([]float64, len(cumulative))
	peak := 0.0
	for i, v := range cumulative {
		if v > peak {
			peak = v
		}
		if peak > 0 {
			drawdowns[i] = (v - peak) / peak
		}
	}
	return drawdowns
}

// MaxDrawdown returns the minimum of a drawdown series, or 0 on empty input.
func MaxDrawdown(drawdowns []float64) float64 {
	maxDD := 0.0
	for _, d := range drawdowns {
		if d < maxDD {
			maxDD = d
		}
	}
	return maxDD
}

// AnnualizedReturn converts a per-period mean return to an annual figure using
// the 252-day trading calendar.
func AnnualizedReturn(returns []float64) float64 {
	return Mean(returns) * 252
}
