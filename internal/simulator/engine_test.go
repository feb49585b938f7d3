package simulator

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"SignalBench/internal/model"
)

func testSeries(prices []float64, signals []model.Signal) *model.AlignedSeries {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	points := make([]model.PricePoint, len(prices))
	for i, p := range prices {
		points[i] = model.PricePoint{Time: start.AddDate(0, 0, i), Price: p}
	}
	return &model.AlignedSeries{Symbol: "TEST", Points: points, Signals: signals}
}

func frictionlessParams(capital float64) model.ExecutionParameters {
	p := model.DefaultParameters()
	p.InitialCapital = capital
	p.CommissionRate = 0
	p.SlippageRate = 0
	return p
}

func TestRun_SingleBuySell(t *testing.T) {
	eng, err := New(frictionlessParams(1000))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	series := testSeries(
		[]float64{100, 110, 105, 120},
		[]model.Signal{model.SignalBuy, model.SignalHold, model.SignalHold, model.SignalSell},
	)
	result, err := eng.Run(series)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Trades) != 2 {
		t.Fatalf("expected 2 fills, got %d", len(result.Trades))
	}
	if result.Trades[0].Shares != 10 {
		t.Errorf("expected 10 shares bought, got %d", result.Trades[0].Shares)
	}
	if result.Trades[0].CapitalAfter != 0 {
		t.Errorf("expected 0 capital after buy, got %f", result.Trades[0].CapitalAfter)
	}
	if result.FinalEquity != 1200 {
		t.Errorf("expected final equity 1200, got %f", result.FinalEquity)
	}
	if math.Abs(result.TotalReturn-0.20) > 1e-9 {
		t.Errorf("expected total return 0.20, got %f", result.TotalReturn)
	}
	if result.TotalTrades != 1 {
		t.Errorf("expected 1 round trip, got %d", result.TotalTrades)
	}
	if result.WinningTrades != 1 || result.LosingTrades != 0 {
		t.Errorf("expected 1 win / 0 losses, got %d/%d", result.WinningTrades, result.LosingTrades)
	}
	if !math.IsInf(result.ProfitFactor, 1) {
		t.Errorf("expected +Inf profit factor with wins and no losses, got %f", result.ProfitFactor)
	}
	if result.RunID == "" {
		t.Error("expected non-empty run ID")
	}
}

func TestRun_ForcedCloseAtEnd(t *testing.T) {
	eng, _ := New(frictionlessParams(1000))
	series := testSeries(
		[]float64{100, 110, 105, 120},
		[]model.Signal{model.SignalBuy, model.SignalHold, model.SignalHold, model.SignalHold},
	)
	result, err := eng.Run(series)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Trades) != 2 {
		t.Fatalf("expected forced close to append a sell, got %d fills", len(result.Trades))
	}
	last := result.Trades[len(result.Trades)-1]
	if last.Action != model.SignalSell {
		t.Errorf("expected final fill to be a sell, got %s", last.Action)
	}
	if result.FinalEquity != 1200 {
		t.Errorf("expected final equity 1200 after forced close, got %f", result.FinalEquity)
	}
	// The last equity sample must be realized cash, not a marked position.
	lastEquity := result.EquityCurve[len(result.EquityCurve)-1].Value
	if lastEquity != last.CapitalAfter {
		t.Errorf("final equity sample %f != realized cash %f", lastEquity, last.CapitalAfter)
	}
}

func TestRun_AllHoldIsFlat(t *testing.T) {
	eng, _ := New(frictionlessParams(1000))
	series := testSeries(
		[]float64{100, 110, 105, 120},
		[]model.Signal{model.SignalHold, model.SignalHold, model.SignalHold, model.SignalHold},
	)
	result, err := eng.Run(series)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Trades) != 0 {
		t.Errorf("expected no fills, got %d", len(result.Trades))
	}
	for i, pt := range result.EquityCurve {
		if pt.Value != 1000 {
			t.Errorf("equity[%d] = %f, expected constant 1000", i, pt.Value)
		}
	}
	if result.TotalReturn != 0 {
		t.Errorf("expected 0 total return, got %f", result.TotalReturn)
	}
	if result.ProfitFactor != 0 {
		t.Errorf("expected 0 profit factor with no trades, got %f", result.ProfitFactor)
	}
	if result.WinRate != 0 {
		t.Errorf("expected 0 win rate with no trades, got %f", result.WinRate)
	}
}

func TestRun_FrictionsReduceProceeds(t *testing.T) {
	p := frictionlessParams(1000)
	p.CommissionRate = 0.001
	p.SlippageRate = 0.0005
	eng, _ := New(p)
	// Price 99 leaves enough cash headroom to cover the friction on the buy.
	series := testSeries(
		[]float64{99, 110},
		[]model.Signal{model.SignalBuy, model.SignalSell},
	)
	result, err := eng.Run(series)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Trades) != 2 {
		t.Fatalf("expected a full round trip, got %d fills", len(result.Trades))
	}
	frictionless := 10*110.0 - 10*99.0
	realized := result.Trades[1].CashDelta + result.Trades[0].CashDelta
	if realized >= frictionless {
		t.Errorf("expected frictions to reduce P&L below %f, got %f", frictionless, realized)
	}
}

func TestRun_SkipsUnaffordableBuy(t *testing.T) {
	eng, _ := New(frictionlessParams(50))
	series := testSeries(
		[]float64{100, 110},
		[]model.Signal{model.SignalBuy, model.SignalSell},
	)
	result, err := eng.Run(series)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Trades) != 0 {
		t.Errorf("expected no fills with insufficient capital, got %d", len(result.Trades))
	}
	if result.FinalEquity != 50 {
		t.Errorf("expected capital unchanged at 50, got %f", result.FinalEquity)
	}
}

func TestRun_IgnoresRedundantSignals(t *testing.T) {
	eng, _ := New(frictionlessParams(1000))
	// SELL while flat and BUY while long must both be ignored.
	series := testSeries(
		[]float64{100, 100, 110, 120},
		[]model.Signal{model.SignalSell, model.SignalBuy, model.SignalBuy, model.SignalSell},
	)
	result, err := eng.Run(series)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Trades) != 2 {
		t.Fatalf("expected exactly one round trip, got %d fills", len(result.Trades))
	}
	if result.Trades[0].Price != 100 || result.Trades[1].Price != 120 {
		t.Errorf("expected buy@100 sell@120, got buy@%f sell@%f",
			result.Trades[0].Price, result.Trades[1].Price)
	}
}

func TestRun_ValidationFailures(t *testing.T) {
	eng, _ := New(frictionlessParams(1000))
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		series *model.AlignedSeries
	}{
		{"nil series", nil},
		{"empty series", &model.AlignedSeries{Symbol: "TEST"}},
		{"length mismatch", testSeries([]float64{100, 110}, []model.Signal{model.SignalHold})},
		{"non-positive price", testSeries([]float64{100, -5}, []model.Signal{model.SignalHold, model.SignalHold})},
		{"unknown signal", testSeries([]float64{100, 110}, []model.Signal{model.SignalHold, "SHORT"})},
		{"duplicate timestamp", &model.AlignedSeries{
			Symbol: "TEST",
			Points: []model.PricePoint{
				{Time: start, Price: 100},
				{Time: start, Price: 110},
			},
			Signals: []model.Signal{model.SignalHold, model.SignalHold},
		}},
	}
	for _, tt := range tests {
		_, err := eng.Run(tt.series)
		if !errors.Is(err, ErrDataAlignment) {
			t.Errorf("%s: expected ErrDataAlignment, got %v", tt.name, err)
		}
	}
}

func TestNew_RejectsInvalidParams(t *testing.T) {
	p := model.DefaultParameters()
	p.InitialCapital = -1
	if _, err := New(p); err == nil {
		t.Error("expected error for negative capital")
	}
}

func TestRun_Deterministic(t *testing.T) {
	eng, _ := New(frictionlessParams(1000))
	series := testSeries(
		[]float64{100, 110, 95, 105, 120, 90},
		[]model.Signal{model.SignalBuy, model.SignalSell, model.SignalBuy, model.SignalHold, model.SignalSell, model.SignalHold},
	)
	a, err := eng.Run(series)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := eng.Run(series)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.FinalEquity != b.FinalEquity || a.TotalTrades != b.TotalTrades {
		t.Errorf("runs diverged: %f/%d vs %f/%d",
			a.FinalEquity, a.TotalTrades, b.FinalEquity, b.TotalTrades)
	}
	for i := range a.EquityCurve {
		if a.EquityCurve[i].Value != b.EquityCurve[i].Value {
			t.Errorf("equity[%d] diverged: %f vs %f", i, a.EquityCurve[i].Value, b.EquityCurve[i].Value)
		}
	}
}

func TestRunBatch_IndependentJobs(t *testing.T) {
	series := testSeries(
		[]float64{100, 110, 105, 120},
		[]model.Signal{model.SignalBuy, model.SignalHold, model.SignalHold, model.SignalSell},
	)
	jobs := []Job{
		{Series: series, Params: frictionlessParams(1000)},
		{Series: series, Params: frictionlessParams(2000)},
		{Series: series, Params: frictionlessParams(5000)},
	}
	results, err := RunBatch(context.Background(), jobs, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	for i, r := range results {
		if r == nil {
			t.Fatalf("result %d is nil", i)
		}
		if r.InitialCapital != jobs[i].Params.InitialCapital {
			t.Errorf("result %d: expected capital %f, got %f",
				i, jobs[i].Params.InitialCapital, r.InitialCapital)
		}
	}
}

func TestRunBatch_FailingJobCancels(t *testing.T) {
	good := testSeries([]float64{100, 110}, []model.Signal{model.SignalBuy, model.SignalSell})
	bad := testSeries([]float64{100, -1}, []model.Signal{model.SignalHold, model.SignalHold})
	_, err := RunBatch(context.Background(), []Job{{Series: good, Params: frictionlessParams(1000)}, {Series: bad, Params: frictionlessParams(1000)}}, 2)
	if !errors.Is(err, ErrDataAlignment) {
		t.Errorf("expected ErrDataAlignment from failing job, got %v", err)
	}
}
