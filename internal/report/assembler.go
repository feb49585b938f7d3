package report

import (
	"fmt"
	"time"

	"SignalBench/internal/model"
)

// Recommendation thresholds. Assembly only compares already-computed values
// against these; no numeric computation happens in this package.
const (
	minSharpe       = 1.0
	maxTolerableDD  = -0.20
	minWinRate      = 0.4
	minProfitFactor = 1.5
	minSortino      = 1.0
	maxConsecLosses = 5
	minSampleSize   = 30
)

// Report is the assembled, human-readable summary of one backtest run.
type Report struct {
	RunID       string    `json:"run_id"`
	Symbol      string    `json:"symbol"`
	GeneratedAt time.Time `json:"generated_at"`

	Result  *model.BacktestResult     `json:"result"`
	Metrics *model.PerformanceMetrics `json:"metrics"`
	Risk    *model.RiskAnalysis       `json:"risk"`

	Recommendations []string `json:"recommendations"`
	Notes           []string `json:"notes"`
}

// Assemble combines simulator output, performance metrics, and risk analysis
// into a single report with rule-based recommendations.
func Assemble(result *model.BacktestResult, metrics *model.PerformanceMetrics, risk *model.RiskAnalysis) *Report {
	r := &Report{
		RunID:       result.RunID,
		Symbol:      result.Symbol,
		GeneratedAt: time.Now(),
		Result:      result,
		Metrics:     metrics,
		Risk:        risk,
	}

	if result.TotalTrades == 0 {
		r.Recommendations = append(r.Recommendations,
			"no trades executed: the signal series never opened a position")
	}
	if metrics.SharpeRatio < minSharpe {
		r.Recommendations = append(r.Recommendations,
			fmt.Sprintf("Sharpe ratio %.2f is below %.1f: risk-adjusted returns are weak", metrics.SharpeRatio, minSharpe))
	}
	if result.MaxDrawdown < maxTolerableDD {
		r.Recommendations = append(r.Recommendations,
			fmt.Sprintf("max drawdown %.1f%% exceeds %.0f%%: consider tighter exit rules", result.MaxDrawdown*100, maxTolerableDD*100))
	}
	if result.TotalTrades > 0 && result.WinRate < minWinRate {
		r.Recommendations = append(r.Recommendations,
			fmt.Sprintf("win rate %.1f%% is below %.0f%%: entry signals fire too often", result.WinRate*100, minWinRate*100))
	}
	if result.TotalTrades > 0 && result.ProfitFactor < minProfitFactor {
		r.Recommendations = append(r.Recommendations,
			fmt.Sprintf("profit factor %.2f is below %.1f: losses absorb too much of the gains", result.ProfitFactor, minProfitFactor))
	}
	if metrics.SortinoRatio < minSortino {
		r.Recommendations = append(r.Recommendations,
			fmt.Sprintf("Sortino ratio %.2f is below %.1f: downside volatility dominates", metrics.SortinoRatio, minSortino))
	}
	if result.MaxConsecutiveLosses > maxConsecLosses {
		r.Recommendations = append(r.Recommendations,
			fmt.Sprintf("%d consecutive losing trades: signal quality degrades in streaks", result.MaxConsecutiveLosses))
	}

	if metrics.SampleSize < minSampleSize {
		r.Notes = append(r.Notes,
			fmt.Sprintf("insufficient sample size (%d observations): degenerate metrics report sentinel values, not confident estimates", metrics.SampleSize))
	}
	if !metrics.HasBenchmark {
		r.Notes = append(r.Notes,
			"no benchmark supplied: beta/correlation default to 1.0, alpha and tracking metrics to 0")
	}

	return r
}
