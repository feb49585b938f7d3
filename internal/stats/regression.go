package stats

import "math"

// Beta computes cov(strategy, market) / var(market) over the index-aligned
// intersection of both series. Returns 1.0 for fewer than 2 aligned points or
// zero market variance, treating the strategy as moving with the market.
func Beta(strategy, market []float64) float64 {
	n := len(strategy)
	if len(market) < n {
		n = len(market)
	}
	if n < 2 {
		return 1.0
	}
	s := strategy[:n]
	m := market[:n]
	varMarket := Variance(m)
	if varMarket == 0 {
		return 1.0
	}
	return Covariance(s, m) / varMarket
}

// Alpha computes Jensen's alpha against the benchmark under the CAPM model.
func Alpha(strategy, market []float64, riskFreeRate float64) float64 {
	b := Beta(strategy, market)
	expected := riskFreeRate + b*(AnnualizedReturn(market)-riskFreeRate)
	return AnnualizedReturn(strategy) - expected
}

// Correlation computes the Pearson correlation over the index-aligned
// intersection. Returns 0 for degenerate inputs.
func Correlation(x, y []float64) float64 {
	n := len(x)
	if len(y) < n {
		n = len(y)
	}
	if n < 2 {
		return 0.0
	}
	meanX := Mean(x[:n])
	meanY := Mean(y[:n])

	var numerator, sumXSq, sumYSq float64
	for i := 0; i < n; i++ {
		dx := x[i] - meanX
		dy := y[i] - meanY
		numerator += dx * dy
		sumXSq += dx * dx
		sumYSq += dy * dy
	}
	denominator := math.Sqrt(sumXSq * sumYSq)
	if denominator == 0 {
		return 0.0
	}
	return numerator / denominator
}
