package model

import "time"

// Trade records one executed fill. Created once per executed signal and never
// mutated afterwards; the ledger is append-only within a run.
type Trade struct {
	Time         time.Time `json:"time"`
	Action       Signal    `json:"action"`
	Shares       int64     `json:"shares"`
	Price        float64   `json:"price"`
	CashDelta    float64   `json:"cash_delta"`
	CapitalAfter float64   `json:"capital_after"`
}

// EquityPoint is one sample of total portfolio value (cash + marked position).
type EquityPoint struct {
	Time  time.Time `json:"time"`
	Value float64   `json:"value"`
}

// BacktestResult is the immutable aggregate of one simulation run.
type BacktestResult struct {
	RunID          string    `json:"run_id"`
	Symbol         string    `json:"symbol"`
	StartedAt      time.Time `json:"started_at"`
	InitialCapital float64   `json:"initial_capital"`
	FinalEquity    float64   `json:"final_equity"`

	TotalReturn      float64 `json:"total_return"`
	AnnualizedReturn float64 `json:"annualized_return"`
	Volatility       float64 `json:"volatility"`
	SharpeRatio      float64 `json:"sharpe_ratio"`
	MaxDrawdown      float64 `json:"max_drawdown"`

	TotalTrades   int     `json:"total_trades"`
	WinningTrades int     `json:"winning_trades"`
	LosingTrades  int     `json:"losing_trades"`
	WinRate       float64 `json:"win_rate"`
	// ProfitFactor is +Inf when there are wins and no losses, 0 with no trades.
	ProfitFactor float64 `json:"-"`

	AvgWin      float64 `json:"avg_win"`
	AvgLoss     float64 `json:"avg_loss"`
	LargestWin  float64 `json:"largest_win"`
	LargestLoss float64 `json:"largest_loss"`

	MaxConsecutiveWins   int `json:"max_consecutive_wins"`
	MaxConsecutiveLosses int `json:"max_consecutive_losses"`

	EquityCurve []EquityPoint `json:"equity_curve"`
	Trades      []Trade       `json:"trades"`
}

// EquityValues returns the equity curve as raw values in timestamp order.
func (r *BacktestResult) EquityValues() []float64 {
	values := make([]float64, len(r.EquityCurve))
	for i, p := range r.EquityCurve {
		values[i] = p.Value
	}
	return values
}

// PerformanceMetrics is a stateless snapshot derived from an equity curve and
// an optional benchmark returns series. Recomputable at any time.
type PerformanceMetrics struct {
	TotalReturn      float64 `json:"total_return"`
	AnnualizedReturn float64 `json:"annualized_return"`
	Volatility       float64 `json:"volatility"`

	SharpeRatio      float64 `json:"sharpe_ratio"`
	SortinoRatio     float64 `json:"sortino_ratio"`
	CalmarRatio      float64 `json:"calmar_ratio"`
	TreynorRatio     float64 `json:"treynor_ratio"`
	InformationRatio float64 `json:"information_ratio"`

	Beta          float64 `json:"beta"`
	Alpha         float64 `json:"alpha"`
	Correlation   float64 `json:"correlation"`
	TrackingError float64 `json:"tracking_error"`

	ValueAtRisk    float64 `json:"value_at_risk"`
	ConditionalVaR float64 `json:"conditional_var"`

	SampleSize   int  `json:"sample_size"`
	HasBenchmark bool `json:"has_benchmark"`
}

// VolatilityBreakdown decomposes return volatility.
type VolatilityBreakdown struct {
	Total      float64 `json:"total"`
	Annualized float64 `json:"annualized"`
	Downside   float64 `json:"downside"`
	Upside     float64 `json:"upside"`
	VolOfVol   float64 `json:"vol_of_vol"`
}

// DrawdownBreakdown summarizes the drawdown profile of a returns series.
type DrawdownBreakdown struct {
	Max               float64 `json:"max"`
	Mean              float64 `json:"mean"`
	PeriodsInDrawdown int     `json:"periods_in_drawdown"`
	RecoveryRatio     float64 `json:"recovery_ratio"`
}

// TailRisk holds VaR/CVaR at the two standard confidence levels.
type TailRisk struct {
	VaR95  float64 `json:"var_95"`
	CVaR95 float64 `json:"cvar_95"`
	VaR99  float64 `json:"var_99"`
	CVaR99 float64 `json:"cvar_99"`
}

// CorrelationBlock summarizes co-movement with the benchmark.
type CorrelationBlock struct {
	Point       float64 `json:"point"`
	RollingMean float64 `json:"rolling_mean"`
	Stability   float64 `json:"stability"`
}

// StressImpact reports the fractional change in terminal cumulative return of
// one counterfactual replay versus the unshocked series.
type StressImpact struct {
	Name   string  `json:"name"`
	Impact float64 `json:"impact"`
}

// RiskBreakdown decomposes total risk. Concentration and Liquidity are bounded
// heuristics (|skewness|/10 and stddev*10, both capped at 1), not closed-form
// risk measures.
type RiskBreakdown struct {
	Systematic    float64 `json:"systematic"`
	Idiosyncratic float64 `json:"idiosyncratic"`
	Concentration float64 `json:"concentration"`
	Liquidity     float64 `json:"liquidity"`
}

// RiskAnalysis is the full stateless risk summary of a returns series.
type RiskAnalysis struct {
	Volatility    VolatilityBreakdown `json:"volatility"`
	Drawdown      DrawdownBreakdown   `json:"drawdown"`
	Tail          TailRisk            `json:"tail"`
	Correlation   CorrelationBlock    `json:"correlation"`
	StressTests   []StressImpact      `json:"stress_tests"`
	Scenarios     []StressImpact      `json:"scenarios"`
	Decomposition RiskBreakdown       `json:"decomposition"`
	SampleSize    int                 `json:"sample_size"`
	HasBenchmark  bool                `json:"has_benchmark"`
}
