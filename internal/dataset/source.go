package dataset

import "SignalBench/internal/model"

// Source supplies the aligned price/signal series for a backtest, plus an
// optional benchmark returns series (nil when the source has none).
type Source interface {
	LoadSeries() (*model.AlignedSeries, error)
	LoadBenchmark() ([]float64, error)
	Name() string
}
