package dataset

import (
	"math"
	"time"

	"SignalBench/internal/model"
)

// SyntheticSource generates controllable deterministic data for development
// and testing: a slow sine wave around a base price, with buys near troughs
// and sells near crests.
type SyntheticSource struct {
	Symbol    string
	BasePrice float64
	Days      int
}

func (s *SyntheticSource) Name() string { return "synthetic" }

func (s *SyntheticSource) LoadSeries() (*model.AlignedSeries, error) {
	days := s.Days
	if days <= 0 {
		days = 252
	}
	// Index-level default so integer share sizing leaves enough cash headroom
	// to cover frictions on a full-capital buy.
	base := s.BasePrice
	if base <= 0 {
		base = 5800
	}

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	points := make([]model.PricePoint, days)
	signals := make([]model.Signal, days)

	// One full cycle roughly per quarter; drift keeps the series trending up.
	for i := 0; i < days; i++ {
		phase := 2 * math.Pi * float64(i) / 63
		price := base * (1 + 0.10*math.Sin(phase) + 0.0003*float64(i))
		points[i] = model.PricePoint{Time: start.AddDate(0, 0, i), Price: price}

		switch {
		case math.Sin(phase) < -0.95:
			signals[i] = model.SignalBuy
		case math.Sin(phase) > 0.95:
			signals[i] = model.SignalSell
		default:
			signals[i] = model.SignalHold
		}
	}

	return &model.AlignedSeries{Symbol: s.Symbol, Points: points, Signals: signals}, nil
}

// LoadBenchmark returns the returns of a dampened version of the same wave.
func (s *SyntheticSource) LoadBenchmark() ([]float64, error) {
	series, _ := s.LoadSeries()
	returns := make([]float64, series.Len()-1)
	for i := 1; i < series.Len(); i++ {
		prev := series.Points[i-1].Price
		returns[i-1] = 0.5 * (series.Points[i].Price - prev) / prev
	}
	return returns, nil
}
