package recorder

import "SignalBench/internal/model"

// Recorder persists completed backtest results for later analysis. The
// engine itself never calls a Recorder; callers append results after a run
// completes, and implementations must synchronize concurrent appends.
type Recorder interface {
	RecordRun(result *model.BacktestResult, metrics *model.PerformanceMetrics) error
	RecordTrades(runID string, trades []model.Trade) error
	RecordRiskAnalysis(runID string, analysis *model.RiskAnalysis) error
	Close() error
}
