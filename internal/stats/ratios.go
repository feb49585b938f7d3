package stats

import "math"

// tradingDays is the annualization base for daily observations.
const tradingDays = 252

// SharpeRatio computes sqrt(252) * mean(excess) / std(excess), where excess
// subtracts the daily risk-free rate. Returns 0 for fewer than 2 observations
// or zero excess volatility.
func SharpeRatio(returns []float64, riskFreeRate float64) float64 {
	if len(returns) < 2 {
		return 0.0
	}
	excess := excessReturns(returns, riskFreeRate)
	std := StdDev(excess)
	if std == 0 {
		return 0.0
	}
	return math.Sqrt(tradingDays) * Mean(excess) / std
}

// SortinoRatio is like Sharpe but penalizes only downside deviation: the
// denominator is the std of the negative excess returns. Returns 0 when there
// are no negative excess observations or their std is 0.
func SortinoRatio(returns []float64, riskFreeRate float64) float64 {
	if len(returns) < 2 {
		return 0.0
	}
	excess := excessReturns(returns, riskFreeRate)
	var downside []float64
	for _, e := range excess {
		if e < 0 {
			downside = append(downside, e)
		}
	}
	std := StdDev(downside)
	if std == 0 {
		return 0.0
	}
	return math.Sqrt(tradingDays) * Mean(excess) / std
}

// CalmarRatio divides annualized return by the magnitude of max drawdown.
// Returns 0 when max drawdown is 0.
func CalmarRatio(returns []float64, maxDrawdown float64) float64 {
	if maxDrawdown == 0 {
		return 0.0
	}
	return AnnualizedReturn(returns) / math.Abs(maxDrawdown)
}

// TreynorRatio divides annualized excess return by beta. Propagates beta's
// fallback path; returns 0 if beta is 0.
func TreynorRatio(strategy, market []float64, riskFreeRate float64) float64 {
	b := Beta(strategy, market)
	if b == 0 {
		return 0.0
	}
	return (AnnualizedReturn(strategy) - riskFreeRate) / b
}

// InformationRatio divides annualized active return by tracking error.
// Returns 0 for fewer than 2 aligned points or zero tracking error.
func InformationRatio(strategy, market []float64) float64 {
	diff := activeDifference(strategy, market)
	if len(diff) < 2 {
		return 0.0
	}
	te := StdDev(diff) * math.Sqrt(tradingDays)
	if te == 0 {
		return 0.0
	}
	return AnnualizedReturn(diff) / te
}

// TrackingError is the annualized std of the active return difference.
func TrackingError(strategy, market []float64) float64 {
	diff := activeDifference(strategy, market)
	if len(diff) < 2 {
		return 0.0
	}
	return StdDev(diff) * math.Sqrt(tradingDays)
}

// ValueAtRisk returns the loss threshold not exceeded with the given
// confidence, as a positive number. The percentile uses linear interpolation
// between order statistics so results are exactly reproducible.
func ValueAtRisk(returns []float64, confidence float64) float64 {
	if len(returns) == 0 {
		return 0.0
	}
	return math.Abs(Percentile(returns, (1-confidence)*100))
}

// ConditionalVaR is the mean of all returns at or below -VaR. Falls back to
// VaR itself when the tail set is empty.
func ConditionalVaR(returns []float64, confidence float64) float64 {
	v := ValueAtRisk(returns, confidence)
	var tail []float64
	for _, r := range returns {
		if r <= -v {
			tail = append(tail, r)
		}
	}
	if len(tail) == 0 {
		return v
	}
	return math.Abs(Mean(tail))
}

func excessReturns(returns []float64, riskFreeRate float64) []float64 {
	daily := riskFreeRate / tradingDays
	excess := make([]float64, len(returns))
	for i, r := range returns {
		excess[i] = r - daily
	}
	return excess
}

// activeDifference truncates both series to their index-aligned intersection
// and returns the elementwise strategy-minus-market difference.
func activeDifference(strategy, market []float64) []float64 {
	n := len(strategy)
	if len(market) < n {
		n = len(market)
	}
	diff := make([]float64, n)
	for i := 0; i < n; i++ {
		diff[i] = strategy[i] - market[i]
	}
	return diff
}
