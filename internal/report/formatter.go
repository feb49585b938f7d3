package report

import (
	"fmt"
	"math"
	"strings"
)

// Render formats the report as plain text for terminals and logs.
func (r *Report) Render() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("=== Backtest Report | %s | %s ===\n\n",
		r.Symbol, r.GeneratedAt.Format("2006-01-02 15:04")))

	res := r.Result
	b.WriteString(fmt.Sprintf("Initial capital: %.2f\n", res.InitialCapital))
	b.WriteString(fmt.Sprintf("Final equity:    %.2f\n", res.FinalEquity))
	b.WriteString(fmt.Sprintf("Total return:    %+.2f%%\n", res.TotalReturn*100))
	b.WriteString(fmt.Sprintf("Annualized:      %+.2f%% | volatility %.2f%%\n",
		res.AnnualizedReturn*100, res.Volatility*100))
	b.WriteString(fmt.Sprintf("Max drawdown:    %.2f%%\n\n", res.MaxDrawdown*100))

	b.WriteString("Trades:\n")
	b.WriteString(fmt.Sprintf("  completed %d | wins %d | losses %d | win rate %.1f%%\n",
		res.TotalTrades, res.WinningTrades, res.LosingTrades, res.WinRate*100))
	b.WriteString(fmt.Sprintf("  profit factor %s | avg win %.2f | avg loss %.2f\n",
		formatProfitFactor(res.ProfitFactor), res.AvgWin, res.AvgLoss))
	b.WriteString(fmt.Sprintf("  longest streaks: %d wins, %d losses\n\n",
		res.MaxConsecutiveWins, res.MaxConsecutiveLosses))

	m := r.Metrics
	b.WriteString("Performance:\n")
	b.WriteString(fmt.Sprintf("  Sharpe %.2f | Sortino %.2f | Calmar %.2f\n",
		m.SharpeRatio, m.SortinoRatio, m.CalmarRatio))
	b.WriteString(fmt.Sprintf("  Treynor %.2f | information ratio %.2f | tracking error %.2f%%\n",
		m.TreynorRatio, m.InformationRatio, m.TrackingError*100))
	b.WriteString(fmt.Sprintf("  beta %.2f | alpha %+.2f%% | correlation %.2f\n",
		m.Beta, m.Alpha*100, m.Correlation))
	b.WriteString(fmt.Sprintf("  VaR %.2f%% | CVaR %.2f%%\n\n",
		m.ValueAtRisk*100, m.ConditionalVaR*100))

	rk := r.Risk
	b.WriteString("Risk:\n")
	b.WriteString(fmt.Sprintf("  annualized vol %.2f%% (downside %.4f, upside %.4f)\n",
		rk.Volatility.Annualized*100, rk.Volatility.Downside, rk.Volatility.Upside))
	b.WriteString(fmt.Sprintf("  VaR95 %.2f%% / VaR99 %.2f%% | CVaR95 %.2f%% / CVaR99 %.2f%%\n",
		rk.Tail.VaR95*100, rk.Tail.VaR99*100, rk.Tail.CVaR95*100, rk.Tail.CVaR99*100))
	b.WriteString(fmt.Sprintf("  in drawdown %d of %d periods (recovery ratio %.2f)\n",
		rk.Drawdown.PeriodsInDrawdown, rk.SampleSize, rk.Drawdown.RecoveryRatio))
	for _, s := range rk.StressTests {
		b.WriteString(fmt.Sprintf("  stress %-20s %+.2f%%\n", s.Name, s.Impact*100))
	}
	for _, s := range rk.Scenarios {
		b.WriteString(fmt.Sprintf("  scenario %-18s %+.2f%%\n", s.Name, s.Impact*100))
	}
	b.WriteString(fmt.Sprintf("  decomposition: systematic %.4f | idiosyncratic %.4f | concentration %.2f | liquidity %.2f\n\n",
		rk.Decomposition.Systematic, rk.Decomposition.Idiosyncratic,
		rk.Decomposition.Concentration, rk.Decomposition.Liquidity))

	if len(r.Recommendations) > 0 {
		b.WriteString("Recommendations:\n")
		for _, rec := range r.Recommendations {
			b.WriteString("  - " + rec + "\n")
		}
		b.WriteString("\n")
	}
	if len(r.Notes) > 0 {
		b.WriteString("Notes:\n")
		for _, note := range r.Notes {
			b.WriteString("  - " + note + "\n")
		}
	}

	return b.String()
}

func formatProfitFactor(pf float64) string {
	if math.IsInf(pf, 1) {
		return "inf (no losing trades)"
	}
	return fmt.Sprintf("%.2f", pf)
}
