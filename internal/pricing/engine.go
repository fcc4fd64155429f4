// Package pricing implements closed-form Black-Scholes valuation of
// European options.
//
// The engine is a pure function of its inputs: no state, no I/O, safe to
// call concurrently without synchronization.
package pricing

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"option-surface/internal/model"
)

// normCDF is the standard normal cumulative distribution function.
// distuv's implementation is erfc-based and keeps small relative error in
// the tails, unlike polynomial approximations.
func normCDF(x float64) float64 {
	return distuv.UnitNormal.CDF(x)
}

// Price computes the Black-Scholes call and put values (no dividends).
//
// Degenerate cases are priced deterministically rather than rejected:
//   - Volatility == 0: discounted-forward payoff
//     call = max(S - K*exp(-rT), 0), put = max(K*exp(-rT) - S, 0)
//   - TimeToMaturity == 0: intrinsic value
//     call = max(S-K, 0), put = max(K-S, 0)
//
// Inputs outside the model domain fail with model.ErrInvalidInput before
// any computation. For valid inputs the result is never NaN or Inf.
func Price(in model.PricingInputs) (model.PricingResult, error) {
	if err := in.Validate(); err != nil {
		return model.PricingResult{}, err
	}

	S, K, T, r, sigma := in.Spot, in.Strike, in.TimeToMaturity, in.RiskFreeRate, in.Volatility

	if T == 0 {
		return model.PricingResult{
			CallPrice: math.Max(S-K, 0),
			PutPrice:  math.Max(K-S, 0),
		}, nil
	}

	discountedStrike := K * math.Exp(-r*T)
	if sigma == 0 {
		// d1/d2 are undefined at zero volatility; the option degenerates
		// to a forward claim on the discounted strike.
		return model.PricingResult{
			CallPrice: math.Max(S-discountedStrike, 0),
			PutPrice:  math.Max(discountedStrike-S, 0),
		}, nil
	}

	sqrtT := math.Sqrt(T)
	d1 := (math.Log(S/K) + (r+0.5*sigma*sigma)*T) / (sigma * sqrtT)
	d2 := d1 - sigma*sqrtT

	// Deep out-of-the-money values can round to a hair below zero.
	return model.PricingResult{
		CallPrice: math.Max(S*normCDF(d1)-discountedStrike*normCDF(d2), 0),
		PutPrice:  math.Max(discountedStrike*normCDF(-d2)-S*normCDF(-d1), 0),
	}, nil
}
