package model

// PricingResult holds the theoretical fair values for a European call and
// put at the same strike and maturity. Both are non-negative for valid
// inputs and satisfy put-call parity:
//
//	Call - Put == Spot - Strike*exp(-RiskFreeRate*TimeToMaturity)
type PricingResult struct {
	CallPrice float64
	PutPrice  float64
}
