package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"SignalBench/internal/model"
)

// Config holds all application configuration.
type Config struct {
	Dataset struct {
		Symbol        string `yaml:"symbol"`
		PricesPath    string `yaml:"prices_path"`
		SignalsPath   string `yaml:"signals_path"`
		BenchmarkPath string `yaml:"benchmark_path"`
	} `yaml:"dataset"`
	Execution model.ExecutionParameters `yaml:"execution"`
	Schedule  struct {
		RerunCron string `yaml:"rerun_cron"`
	} `yaml:"schedule"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Report struct {
		ChartPath string `yaml:"chart_path"`
	} `yaml:"report"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("SIGNALBENCH_SYMBOL"); v != "" {
		cfg.Dataset.Symbol = v
	}
	if v := os.Getenv("SIGNALBENCH_PRICES"); v != "" {
		cfg.Dataset.PricesPath = v
	}
	if v := os.Getenv("SIGNALBENCH_SIGNALS"); v != "" {
		cfg.Dataset.SignalsPath = v
	}
	if v := os.Getenv("SIGNALBENCH_BENCHMARK"); v != "" {
		cfg.Dataset.BenchmarkPath = v
	}
	if v := os.Getenv("INITIAL_CAPITAL"); v != "" {
		var capital float64
		if _, err := fmt.Sscanf(v, "%f", &capital); err == nil {
			cfg.Execution.InitialCapital = capital
		}
	}
	if v := os.Getenv("CRON_RERUN"); v != "" {
		cfg.Schedule.RerunCron = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("CHART_PATH"); v != "" {
		cfg.Report.ChartPath = v
	}

	// Defaults
	if cfg.Dataset.Symbol == "" {
		cfg.Dataset.Symbol = "SPX500"
	}
	if cfg.Execution.InitialCapital == 0 {
		cfg.Execution.InitialCapital = model.DefaultInitialCapital
	}
	if cfg.Execution.CommissionRate == 0 {
		cfg.Execution.CommissionRate = model.DefaultCommissionRate
	}
	if cfg.Execution.SlippageRate == 0 {
		cfg.Execution.SlippageRate = model.DefaultSlippageRate
	}
	if cfg.Execution.RiskFreeRate == 0 {
		cfg.Execution.RiskFreeRate = model.DefaultRiskFreeRate
	}
	if cfg.Execution.ConfidenceLevel == 0 {
		cfg.Execution.ConfidenceLevel = model.DefaultConfidenceLevel
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/signalbench.db"
	}
	if cfg.Report.ChartPath == "" {
		cfg.Report.ChartPath = "data/equity.html"
	}

	return cfg, nil
}

// Validate checks that all required fields are set and consistent.
func (c *Config) Validate() error {
	if c.Dataset.Symbol == "" {
		return fmt.Errorf("dataset.symbol is required")
	}
	if (c.Dataset.PricesPath == "") != (c.Dataset.SignalsPath == "") {
		return fmt.Errorf("dataset.prices_path and dataset.signals_path must be set together")
	}
	if err := c.Execution.Validate(); err != nil {
		return fmt.Errorf("execution: %w", err)
	}
	return nil
}
