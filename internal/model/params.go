package model

import "fmt"

// Trading-calendar and default execution constants.
const (
	TradingDaysPerYear = 252

	DefaultInitialCapital  = 100000.0
	DefaultCommissionRate  = 0.001
	DefaultSlippageRate    = 0.0005
	DefaultRiskFreeRate    = 0.02
	DefaultConfidenceLevel = 0.95
)

// ExecutionParameters configures one simulation run. Treated as immutable once
// passed to the engine.
type ExecutionParameters struct {
	InitialCapital  float64 `json:"initial_capital" yaml:"initial_capital"`
	CommissionRate  float64 `json:"commission_rate" yaml:"commission_rate"`
	SlippageRate    float64 `json:"slippage_rate" yaml:"slippage_rate"`
	RiskFreeRate    float64 `json:"risk_free_rate" yaml:"risk_free_rate"`
	ConfidenceLevel float64 `json:"confidence_level" yaml:"confidence_level"`
}

// DefaultParameters returns the standard execution parameters.
func DefaultParameters() ExecutionParameters {
	return ExecutionParameters{
		InitialCapital:  DefaultInitialCapital,
		CommissionRate:  DefaultCommissionRate,
		SlippageRate:    DefaultSlippageRate,
		RiskFreeRate:    DefaultRiskFreeRate,
		ConfidenceLevel: DefaultConfidenceLevel,
	}
}

// Validate checks that the parameters describe a runnable simulation.
func (p ExecutionParameters) Validate() error {
	if p.InitialCapital <= 0 {
		return fmt.Errorf("initial_capital must be positive, got %.2f", p.InitialCapital)
	}
	if p.CommissionRate < 0 {
		return fmt.Errorf("commission_rate must be non-negative, got %.4f", p.CommissionRate)
	}
	if p.SlippageRate < 0 {
		return fmt.Errorf("slippage_rate must be non-negative, got %.4f", p.SlippageRate)
	}
	if p.ConfidenceLevel <= 0 || p.ConfidenceLevel >= 1 {
		return fmt.Errorf("confidence_level must be in (0,1), got %.2f", p.ConfidenceLevel)
	}
	return nil
}
