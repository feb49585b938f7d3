package model

import "time"

// Signal is a trading instruction attached to one timestamp of a price series.
type Signal string

const (
	SignalBuy  Signal = "BUY"
	SignalSell Signal = "SELL"
	SignalHold Signal = "HOLD"
)

// Valid reports whether s is one of the three known signals.
func (s Signal) Valid() bool {
	switch s {
	case SignalBuy, SignalSell, SignalHold:
		return true
	}
	return false
}

// PricePoint is one (timestamp, price) observation.
type PricePoint struct {
	Time  time.Time `json:"time"`
	Price float64   `json:"price"`
}

// AlignedSeries holds a price series and a signal series keyed by the same
// ordered timestamp index: Signals[i] applies at Points[i].Time.
type AlignedSeries struct {
	Symbol  string       `json:"symbol"`
	Points  []PricePoint `json:"points"`
	Signals []Signal     `json:"signals"`
}

// Len returns the number of aligned observations.
func (s *AlignedSeries) Len() int { return len(s.Points) }

// Prices returns the raw price values in timestamp order.
func (s *AlignedSeries) Prices() []float64 {
	prices := make([]float64, len(s.Points))
	for i, p := range s.Points {
		prices[i] = p.Price
	}
	return prices
}
