package risk

import (
	"SignalBench/internal/model"
	"SignalBench/internal/stats"
)

// Stress shocks hit the most recent quarter of the series; scenario replays
// reshape the most recent half. The windows are fixed, matching the original
// analysis design.
const (
	crashShock       = -0.20
	rateShock        = 0.01 // +100bp
	rateDuration     = 5.0  // portfolio duration in years
	volSpikeMultiple = 2.0
)

// scenario reshapes a daily return as r*volAdjust + dailyAdjust.
type scenario struct {
	name        string
	dailyAdjust float64
	volAdjust   float64
}

var scenarios = []scenario{
	{name: "bull_market", dailyAdjust: 0.0010, volAdjust: 0.9},
	{name: "bear_market", dailyAdjust: -0.0015, volAdjust: 1.3},
	{name: "sideways", dailyAdjust: 0.0, volAdjust: 0.7},
}

// stressTests replays the series under three deterministic counterfactual
// shocks applied to the last quarter of observations, reporting the
// fractional change in terminal cumulative return for each.
func stressTests(returns []float64) []model.StressImpact {
	start := len(returns) - len(returns)/4

	crash := shockedCopy(returns, start, func(r float64) float64 {
		return r * (1 + crashShock)
	})
	rates := shockedCopy(returns, start, func(r float64) float64 {
		return r - rateShock*rateDuration/model.TradingDaysPerYear
	})
	volSpike := shockedCopy(returns, start, func(r float64) float64 {
		return r * volSpikeMultiple
	})

	base := terminal(returns)
	return []model.StressImpact{
		{Name: "market_crash", Impact: terminalDelta(base, terminal(crash))},
		{Name: "interest_rate_shock", Impact: terminalDelta(base, terminal(rates))},
		{Name: "volatility_spike", Impact: terminalDelta(base, terminal(volSpike))},
	}
}

// scenarioTests replays the series with the last half reshaped per scenario.
func scenarioTests(returns []float64) []model.StressImpact {
	start := len(returns) - len(returns)/2
	base := terminal(returns)

	impacts := make([]model.StressImpact, 0, len(scenarios))
	for _, sc := range scenarios {
		shocked := shockedCopy(returns, start, func(r float64) float64 {
			return r*sc.volAdjust + sc.dailyAdjust
		})
		impacts = append(impacts, model.StressImpact{
			Name:   sc.name,
			Impact: terminalDelta(base, terminal(shocked)),
		})
	}
	return impacts
}

// shockedCopy applies fn to every element from start onward, leaving the
// original series untouched.
func shockedCopy(returns []float64, start int, fn func(float64) float64) []float64 {
	if start < 0 {
		start = 0
	}
	shocked := make([]float64, len(returns))
	copy(shocked, returns)
	for i := start; i < len(shocked); i++ {
		shocked[i] = fn(shocked[i])
	}
	return shocked
}

// terminal returns the final cumulative growth factor of a returns series.
func terminal(returns []float64) float64 {
	cumulative := stats.CumulativeReturns(returns)
	if len(cumulative) == 0 {
		return 1.0
	}
	return cumulative[len(cumulative)-1]
}

func terminalDelta(base, shocked float64) float64 {
	if base == 0 {
		return 0.0
	}
	return (shocked - base) / base
}
