package model

import "fmt"

// Parameter names one of the five Black-Scholes inputs. It is the axis
// vocabulary for sensitivity sweeps and the wire value used by the API.
type Parameter string

const (
	ParameterSpot           Parameter = "spot"
	ParameterStrike         Parameter = "strike"
	ParameterTimeToMaturity Parameter = "time_to_maturity"
	ParameterRiskFreeRate   Parameter = "risk_free_rate"
	ParameterVolatility     Parameter = "volatility"
)

// Parameters lists all sweepable parameters in display order.
func Parameters() []Parameter {
	return []Parameter{
		ParameterSpot,
		ParameterStrike,
		ParameterTimeToMaturity,
		ParameterRiskFreeRate,
		ParameterVolatility,
	}
}

// ParseParameter maps a wire/CLI string onto a Parameter.
func ParseParameter(s string) (Parameter, error) {
	switch Parameter(s) {
	case ParameterSpot, ParameterStrike, ParameterTimeToMaturity,
		ParameterRiskFreeRate, ParameterVolatility:
		return Parameter(s), nil
	}
	return "", fmt.Errorf("unknown parameter %q (want one of spot, strike, time_to_maturity, risk_free_rate, volatility)", s)
}
