package model

import (
	"errors"
	"fmt"
)

// ErrInvalidInput marks pricing inputs that violate the model's domain
// (non-positive spot/strike, negative maturity or volatility). Callers can
// match it with errors.Is.
var ErrInvalidInput = errors.New("invalid pricing input")

// PricingInputs is the canonical "inputs to the model" object.
// Units:
// - Spot, Strike: currency
// - TimeToMaturity: years
// - RiskFreeRate: continuously-compounded annual rate (0.05 = 5%)
// - Volatility: annualized (0.20 = 20%)
type PricingInputs struct {
	Spot           float64
	Strike         float64
	TimeToMaturity float64
	RiskFreeRate   float64
	Volatility     float64
}

// Validate checks the model-domain invariants.
//
// TimeToMaturity == 0 and Volatility == 0 are valid degenerate cases (the
// engine prices them as intrinsic / discounted-forward payoffs); strictly
// negative values are not.
func (in PricingInputs) Validate() error {
	if in.Spot <= 0 {
		return fmt.Errorf("%w: Spot must be > 0, got %g", ErrInvalidInput, in.Spot)
	}
	if in.Strike <= 0 {
		return fmt.Errorf("%w: Strike must be > 0, got %g", ErrInvalidInput, in.Strike)
	}
	if in.TimeToMaturity < 0 {
		return fmt.Errorf("%w: TimeToMaturity must be >= 0, got %g", ErrInvalidInput, in.TimeToMaturity)
	}
	if in.Volatility < 0 {
		return fmt.Errorf("%w: Volatility must be >= 0, got %g", ErrInvalidInput, in.Volatility)
	}
	return nil
}

// WithParameter returns a copy with the named parameter overridden.
// The receiver is never mutated; grid sweeps rely on this.
func (in PricingInputs) WithParameter(p Parameter, v float64) (PricingInputs, error) {
	out := in
	switch p {
	case ParameterSpot:
		out.Spot = v
	case ParameterStrike:
		out.Strike = v
	case ParameterTimeToMaturity:
		out.TimeToMaturity = v
	case ParameterRiskFreeRate:
		out.RiskFreeRate = v
	case ParameterVolatility:
		out.Volatility = v
	default:
		return PricingInputs{}, fmt.Errorf("unknown parameter %q", p)
	}
	return out, nil
}
