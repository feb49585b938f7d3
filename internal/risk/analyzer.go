package risk

import (
	"math"

	"SignalBench/internal/model"
	"SignalBench/internal/stats"
)

// rollingWindow is the fixed lookback for volatility-of-volatility and
// rolling correlation, one trading year of daily observations.
const rollingWindow = 252

// Analyze produces the full risk summary of a returns series against an
// optional benchmark. Stateless: the same inputs always yield the same
// analysis.
func Analyze(returns, benchmark []float64) *model.RiskAnalysis {
	a := &model.RiskAnalysis{
		SampleSize:   len(returns),
		HasBenchmark: len(benchmark) > 0,
	}

	a.Volatility = volatilityBreakdown(returns)
	a.Drawdown = drawdownBreakdown(returns)
	a.Tail = model.TailRisk{
		VaR95:  stats.ValueAtRisk(returns, 0.95),
		CVaR95: stats.ConditionalVaR(returns, 0.95),
		VaR99:  stats.ValueAtRisk(returns, 0.99),
		CVaR99: stats.ConditionalVaR(returns, 0.99),
	}
	a.Correlation = correlationBlock(returns, benchmark)
	a.StressTests = stressTests(returns)
	a.Scenarios = scenarioTests(returns)
	a.Decomposition = decompose(returns, benchmark)

	return a
}

func volatilityBreakdown(returns []float64) model.VolatilityBreakdown {
	var downside, upside []float64
	for _, r := range returns {
		if r < 0 {
			downside = append(downside, r)
		} else if r > 0 {
			upside = append(upside, r)
		}
	}
	total := stats.StdDev(returns)
	return model.VolatilityBreakdown{
		Total:      total,
		Annualized: total * math.Sqrt(model.TradingDaysPerYear),
		Downside:   stats.StdDev(downside),
		Upside:     stats.StdDev(upside),
		VolOfVol:   stats.StdDev(rollingStd(returns, rollingWindow)),
	}
}

func drawdownBreakdown(returns []float64) model.DrawdownBreakdown {
	drawdowns := stats.Drawdown(stats.CumulativeReturns(returns))
	inDrawdown := 0
	for _, d := range drawdowns {
		if d < 0 {
			inDrawdown++
		}
	}
	recovery := 0.0
	if len(drawdowns) > 0 {
		recovery = float64(inDrawdown) / float64(len(drawdowns))
	}
	return model.DrawdownBreakdown{
		Max:               stats.MaxDrawdown(drawdowns),
		Mean:              stats.Mean(drawdowns),
		PeriodsInDrawdown: inDrawdown,
		RecoveryRatio:     recovery,
	}
}

func correlationBlock(returns, benchmark []float64) model.CorrelationBlock {
	if len(benchmark) == 0 {
		return model.CorrelationBlock{Point: 1.0, RollingMean: 1.0, Stability: 0.0}
	}
	point := stats.Correlation(returns, benchmark)
	rolling := rollingCorrelation(returns, benchmark, rollingWindow)
	if len(rolling) == 0 {
		// Sample shorter than one rolling window: the point estimate stands in.
		return model.CorrelationBlock{Point: point, RollingMean: point, Stability: 0.0}
	}
	return model.CorrelationBlock{
		Point:       point,
		RollingMean: stats.Mean(rolling),
		Stability:   stats.StdDev(rolling),
	}
}

// decompose splits total risk into systematic/idiosyncratic components plus
// the two bounded heuristics for concentration and liquidity.
func decompose(returns, benchmark []float64) model.RiskBreakdown {
	totalVol := stats.StdDev(returns) * math.Sqrt(model.TradingDaysPerYear)

	systematic := 0.0
	if len(benchmark) > 0 {
		benchVol := stats.StdDev(benchmark) * math.Sqrt(model.TradingDaysPerYear)
		systematic = stats.Beta(returns, benchmark) * benchVol
	}
	idiosyncratic := math.Sqrt(math.Max(0, totalVol*totalVol-systematic*systematic))

	return model.RiskBreakdown{
		Systematic:    systematic,
		Idiosyncratic: idiosyncratic,
		Concentration: math.Min(1, math.Abs(stats.Skewness(returns))/10),
		Liquidity:     math.Min(1, stats.StdDev(returns)*10),
	}
}

// rollingStd computes the std over each full window of the given size.
// Empty when the series is shorter than one window.
func rollingStd(values []float64, window int) []float64 {
	if len(values) < window {
		return nil
	}
	out := make([]float64, 0, len(values)-window+1)
	for i := window; i <= len(values); i++ {
		out = append(out, stats.StdDev(values[i-window:i]))
	}
	return out
}

// rollingCorrelation computes the correlation over each full window of the
// index-aligned intersection of both series.
func rollingCorrelation(x, y []float64, window int) []float64 {
	n := len(x)
	if len(y) < n {
		n = len(y)
	}
	if n < window {
		return nil
	}
	out := make([]float64, 0, n-window+1)
	for i := window; i <= n; i++ {
		out = append(out, stats.Correlation(x[i-window:i], y[i-window:i]))
	}
	return out
}
