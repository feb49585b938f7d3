package simulator

import (
	"math"

	"SignalBench/internal/model"
)

// summarizeLedger derives trade counts, win/loss magnitudes, streaks, win
// rate, and profit factor from the fill ledger. A trade for these purposes is
// one completed buy/sell round trip; the realized P&L of each round trip is
// the sum of its two cash deltas.
func summarizeLedger(r *model.BacktestResult) {
	pnls := roundTripPnLs(r.Trades)
	r.TotalTrades = len(pnls)

	if len(pnls) == 0 {
		r.WinRate = 0
		r.ProfitFactor = 0
		return
	}

	var totalWins, totalLosses float64
	var winStreak, lossStreak int

	for _, pnl := range pnls {
		if pnl > 0 {
			r.WinningTrades++
			totalWins += pnl
			if pnl > r.LargestWin {
				r.LargestWin = pnl
			}
			winStreak++
			lossStreak = 0
		} else {
			r.LosingTrades++
			totalLosses += -pnl
			if pnl < r.LargestLoss {
				r.LargestLoss = pnl
			}
			lossStreak++
			winStreak = 0
		}
		if winStreak > r.MaxConsecutiveWins {
			r.MaxConsecutiveWins = winStreak
		}
		if lossStreak > r.MaxConsecutiveLosses {
			r.MaxConsecutiveLosses = lossStreak
		}
	}

	r.WinRate = float64(r.WinningTrades) / float64(r.TotalTrades)
	if r.WinningTrades > 0 {
		r.AvgWin = totalWins / float64(r.WinningTrades)
	}
	if r.LosingTrades > 0 {
		r.AvgLoss = -totalLosses / float64(r.LosingTrades)
	}

	switch {
	case totalLosses == 0 && r.WinningTrades > 0:
		r.ProfitFactor = math.Inf(1)
	case totalLosses == 0:
		r.ProfitFactor = 0
	default:
		r.ProfitFactor = totalWins / totalLosses
	}
}

// roundTripPnLs scans the fill ledger in order and pairs each sell with the
// buy that opened it.
func roundTripPnLs(trades []model.Trade) []float64 {
	var pnls []float64
	entryCost := 0.0
	open := false
	for _, t := range trades {
		switch t.Action {
		case model.SignalBuy:
			entryCost = -t.CashDelta
			open = true
		case model.SignalSell:
			if open {
				pnls = append(pnls, t.CashDelta-entryCost)
				open = false
			}
		}
	}
	return pnls
}
