package recorder

import "SignalBench/internal/model"

// NoopRecorder is a no-op implementation used when SQLite is not configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordRun(_ *model.BacktestResult, _ *model.PerformanceMetrics) error {
	return nil
}
func (n *NoopRecorder) RecordTrades(_ string, _ []model.Trade) error             { return nil }
func (n *NoopRecorder) RecordRiskAnalysis(_ string, _ *model.RiskAnalysis) error { return nil }
func (n *NoopRecorder) Close() error                                             { return nil }
