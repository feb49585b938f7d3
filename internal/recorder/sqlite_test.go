package recorder

import (
	"math"
	"path/filepath"
	"testing"
	"time"

	"SignalBench/internal/model"
)

func openTestRecorder(t *testing.T) *SQLiteRecorder {
	t.Helper()
	r, err := NewSQLiteRecorder(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open recorder: %v", err)
	}
	t.Cleanup(func() { r.Close() })
	return r
}

func TestSQLiteRecorder_RecordRun(t *testing.T) {
	r := openTestRecorder(t)

	result := &model.BacktestResult{
		RunID:          "run-abc",
		Symbol:         "SPX500",
		InitialCapital: 100000,
		FinalEquity:    112000,
		TotalReturn:    0.12,
		TotalTrades:    5,
		WinningTrades:  3,
		LosingTrades:   2,
		WinRate:        0.6,
		ProfitFactor:   1.8,
	}
	metrics := &model.PerformanceMetrics{SharpeRatio: 1.2, SortinoRatio: 1.5}

	if err := r.RecordRun(result, metrics); err != nil {
		t.Fatalf("record run: %v", err)
	}

	var count int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM runs WHERE run_id = ?", "run-abc").Scan(&count); err != nil {
		t.Fatalf("query runs: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 run row, got %d", count)
	}
}

func TestSQLiteRecorder_InfiniteProfitFactorStoresNull(t *testing.T) {
	r := openTestRecorder(t)

	result := &model.BacktestResult{RunID: "run-inf", ProfitFactor: math.Inf(1)}
	if err := r.RecordRun(result, &model.PerformanceMetrics{}); err != nil {
		t.Fatalf("record run: %v", err)
	}

	var count int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM runs WHERE run_id = ? AND profit_factor IS NULL", "run-inf").Scan(&count); err != nil {
		t.Fatalf("query runs: %v", err)
	}
	if count != 1 {
		t.Errorf("expected NULL profit_factor, got %d matching rows", count)
	}
}

func TestSQLiteRecorder_RecordTrades(t *testing.T) {
	r := openTestRecorder(t)

	now := time.Now()
	trades := []model.Trade{
		{Time: now, Action: model.SignalBuy, Shares: 10, Price: 100, CashDelta: -1000, CapitalAfter: 0},
		{Time: now.Add(24 * time.Hour), Action: model.SignalSell, Shares: 10, Price: 120, CashDelta: 1200, CapitalAfter: 1200},
	}
	if err := r.RecordTrades("run-abc", trades); err != nil {
		t.Fatalf("record trades: %v", err)
	}

	var count int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM trades WHERE run_id = ?", "run-abc").Scan(&count); err != nil {
		t.Fatalf("query trades: %v", err)
	}
	if count != 2 {
		t.Errorf("expected 2 trade rows, got %d", count)
	}
}

func TestSQLiteRecorder_RecordRiskAnalysis(t *testing.T) {
	r := openTestRecorder(t)

	analysis := &model.RiskAnalysis{
		Volatility: model.VolatilityBreakdown{Annualized: 0.18, Downside: 0.01},
		Tail:       model.TailRisk{VaR95: 0.02, CVaR95: 0.03, VaR99: 0.04, CVaR99: 0.05},
		Drawdown:   model.DrawdownBreakdown{Max: -0.15},
	}
	if err := r.RecordRiskAnalysis("run-abc", analysis); err != nil {
		t.Fatalf("record risk analysis: %v", err)
	}

	var varNinetyFive float64
	if err := r.db.QueryRow("SELECT var_95 FROM risk_analyses WHERE run_id = ?", "run-abc").Scan(&varNinetyFive); err != nil {
		t.Fatalf("query risk_analyses: %v", err)
	}
	if varNinetyFive != 0.02 {
		t.Errorf("expected var_95 0.02, got %f", varNinetyFive)
	}
}

func TestNoopRecorder_AllMethodsSucceed(t *testing.T) {
	n := NewNoopRecorder()
	if err := n.RecordRun(&model.BacktestResult{}, &model.PerformanceMetrics{}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := n.RecordTrades("x", nil); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := n.RecordRiskAnalysis("x", nil); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := n.Close(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
