package stats

import (
	"fmt"
	"math"

	"SignalBench/internal/model"
)

// Performance derives the full metric snapshot from an equity curve and an
// optional benchmark returns series. Degenerate cases yield the documented
// fallback values; only malformed input is an error.
func Performance(equity []float64, benchmark []float64, p model.ExecutionParameters) (*model.PerformanceMetrics, error) {
	returns, err := Returns(equity)
	if err != nil {
		return nil, fmt.Errorf("equity returns: %w", err)
	}

	cumulative := CumulativeReturns(returns)
	totalReturn := cumulative[len(cumulative)-1] - 1
	annualized := math.Pow(1+totalReturn, tradingDays/float64(len(returns))) - 1
	maxDD := MaxDrawdown(Drawdown(cumulative))

	m := &model.PerformanceMetrics{
		TotalReturn:      totalReturn,
		AnnualizedReturn: annualized,
		Volatility:       StdDev(returns) * math.Sqrt(tradingDays),
		SharpeRatio:      SharpeRatio(returns, p.RiskFreeRate),
		SortinoRatio:     SortinoRatio(returns, p.RiskFreeRate),
		CalmarRatio:      CalmarRatio(returns, maxDD),
		ValueAtRisk:      ValueAtRisk(returns, p.ConfidenceLevel),
		ConditionalVaR:   ConditionalVaR(returns, p.ConfidenceLevel),
		SampleSize:       len(returns),
		HasBenchmark:     len(benchmark) > 0,
	}

	if len(benchmark) > 0 {
		m.Beta = Beta(returns, benchmark)
		m.Alpha = Alpha(returns, benchmark, p.RiskFreeRate)
		m.Correlation = Correlation(returns, benchmark)
		m.TrackingError = TrackingError(returns, benchmark)
		m.InformationRatio = InformationRatio(returns, benchmark)
		m.TreynorRatio = TreynorRatio(returns, benchmark, p.RiskFreeRate)
	} else {
		// Without a benchmark the strategy is its own market.
		m.Beta = 1.0
		m.Correlation = 1.0
	}

	return m, nil
}
