package config

import (
	"os"
	"path/filepath"
	"testing"

	"SignalBench/internal/model"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Dataset.Symbol != "SPX500" {
		t.Errorf("expected default symbol SPX500, got %q", cfg.Dataset.Symbol)
	}
	if cfg.Execution.InitialCapital != model.DefaultInitialCapital {
		t.Errorf("expected default capital, got %f", cfg.Execution.InitialCapital)
	}
	if cfg.Execution.ConfidenceLevel != model.DefaultConfidenceLevel {
		t.Errorf("expected default confidence, got %f", cfg.Execution.ConfidenceLevel)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config must validate: %v", err)
	}
}

func TestLoad_YAMLValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
dataset:
  symbol: NDX100
  prices_path: data/prices.csv
  signals_path: data/signals.csv
execution:
  initial_capital: 50000
  commission_rate: 0.002
schedule:
  rerun_cron: "0 0 8 * * 1"
database:
  sqlite_path: /tmp/bench.db
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Dataset.Symbol != "NDX100" {
		t.Errorf("expected NDX100, got %q", cfg.Dataset.Symbol)
	}
	if cfg.Execution.InitialCapital != 50000 {
		t.Errorf("expected 50000, got %f", cfg.Execution.InitialCapital)
	}
	if cfg.Execution.CommissionRate != 0.002 {
		t.Errorf("expected 0.002, got %f", cfg.Execution.CommissionRate)
	}
	// Unset fields still get defaults.
	if cfg.Execution.SlippageRate != model.DefaultSlippageRate {
		t.Errorf("expected default slippage, got %f", cfg.Execution.SlippageRate)
	}
	if cfg.Schedule.RerunCron != "0 0 8 * * 1" {
		t.Errorf("expected cron preserved, got %q", cfg.Schedule.RerunCron)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SIGNALBENCH_SYMBOL", "DAX40")
	t.Setenv("INITIAL_CAPITAL", "250000")
	t.Setenv("SQLITE_PATH", "/tmp/override.db")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Dataset.Symbol != "DAX40" {
		t.Errorf("expected env symbol DAX40, got %q", cfg.Dataset.Symbol)
	}
	if cfg.Execution.InitialCapital != 250000 {
		t.Errorf("expected env capital 250000, got %f", cfg.Execution.InitialCapital)
	}
	if cfg.Database.SQLitePath != "/tmp/override.db" {
		t.Errorf("expected env sqlite path, got %q", cfg.Database.SQLitePath)
	}
}

func TestValidate_PathsMustPair(t *testing.T) {
	cfg, _ := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	cfg.Dataset.PricesPath = "data/prices.csv"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error when prices_path is set without signals_path")
	}
	cfg.Dataset.SignalsPath = "data/signals.csv"
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected paired paths to validate: %v", err)
	}
}

func TestValidate_RejectsBadExecution(t *testing.T) {
	cfg, _ := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	cfg.Execution.CommissionRate = -0.01
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for negative commission")
	}
}
