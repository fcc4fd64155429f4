package pricing

import (
	"errors"
	"math"
	"testing"

	"option-surface/internal/model"
)

func baseInputs() model.PricingInputs {
	return model.PricingInputs{
		Spot:           100,
		Strike:         100,
		TimeToMaturity: 1,
		RiskFreeRate:   0.05,
		Volatility:     0.20,
	}
}

// Standard reference values for the ATM one-year 20% vol scenario.
func TestPriceReferenceScenario(t *testing.T) {
	res, err := Price(baseInputs())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(res.CallPrice-10.4506) > 1e-3 {
		t.Fatalf("call price: got %f, want 10.4506", res.CallPrice)
	}
	if math.Abs(res.PutPrice-5.5735) > 1e-3 {
		t.Fatalf("put price: got %f, want 5.5735", res.PutPrice)
	}
}

func TestPricePutCallParity(t *testing.T) {
	cases := []model.PricingInputs{
		{Spot: 100, Strike: 100, TimeToMaturity: 1, RiskFreeRate: 0.05, Volatility: 0.20},
		{Spot: 42, Strike: 40, TimeToMaturity: 0.5, RiskFreeRate: 0.10, Volatility: 0.20},
		{Spot: 100, Strike: 120, TimeToMaturity: 2, RiskFreeRate: 0.03, Volatility: 0.45},
		{Spot: 250, Strike: 90, TimeToMaturity: 0.25, RiskFreeRate: -0.01, Volatility: 0.15},
		{Spot: 5, Strike: 500, TimeToMaturity: 1, RiskFreeRate: 0.02, Volatility: 0.30},
		{Spot: 100, Strike: 100, TimeToMaturity: 1, RiskFreeRate: 0.05, Volatility: 0},
	}

	for _, in := range cases {
		res, err := Price(in)
		if err != nil {
			t.Fatalf("Price(%+v): %v", in, err)
		}
		lhs := res.CallPrice - res.PutPrice
		rhs := in.Spot - in.Strike*math.Exp(-in.RiskFreeRate*in.TimeToMaturity)
		if math.Abs(lhs-rhs) > 1e-6*math.Max(1, math.Abs(rhs)) {
			t.Fatalf("put-call parity violated for %+v: LHS=%f RHS=%f", in, lhs, rhs)
		}
	}
}

func TestPriceNonNegative(t *testing.T) {
	in := baseInputs()
	for _, spot := range []float64{1, 20, 80, 100, 120, 500, 10000} {
		for _, vol := range []float64{0, 0.01, 0.2, 1, 3} {
			in.Spot, in.Volatility = spot, vol
			res, err := Price(in)
			if err != nil {
				t.Fatalf("Price(spot=%f vol=%f): %v", spot, vol, err)
			}
			if res.CallPrice < 0 || res.PutPrice < 0 {
				t.Fatalf("negative price at spot=%f vol=%f: call=%g put=%g", spot, vol, res.CallPrice, res.PutPrice)
			}
		}
	}
}

// Call value must not decrease, and put value must not increase, as spot rises.
func TestPriceMonotoneInSpot(t *testing.T) {
	in := baseInputs()
	prevCall, prevPut := math.Inf(-1), math.Inf(1)
	for spot := 50.0; spot <= 150.0; spot += 1.0 {
		in.Spot = spot
		res, err := Price(in)
		if err != nil {
			t.Fatalf("Price(spot=%f): %v", spot, err)
		}
		if res.CallPrice < prevCall-1e-12 {
			t.Fatalf("call not non-decreasing in spot at %f: %f < %f", spot, res.CallPrice, prevCall)
		}
		if res.PutPrice > prevPut+1e-12 {
			t.Fatalf("put not non-increasing in spot at %f: %f > %f", spot, res.PutPrice, prevPut)
		}
		prevCall, prevPut = res.CallPrice, res.PutPrice
	}
}

// Both values must not decrease as volatility rises (vega >= 0).
func TestPriceMonotoneInVolatility(t *testing.T) {
	in := baseInputs()
	prevCall, prevPut := math.Inf(-1), math.Inf(-1)
	for vol := 0.0; vol <= 1.0; vol += 0.01 {
		in.Volatility = vol
		res, err := Price(in)
		if err != nil {
			t.Fatalf("Price(vol=%f): %v", vol, err)
		}
		if res.CallPrice < prevCall-1e-12 {
			t.Fatalf("call not non-decreasing in vol at %f: %f < %f", vol, res.CallPrice, prevCall)
		}
		if res.PutPrice < prevPut-1e-12 {
			t.Fatalf("put not non-decreasing in vol at %f: %f < %f", vol, res.PutPrice, prevPut)
		}
		prevCall, prevPut = res.CallPrice, res.PutPrice
	}
}

// Zero volatility is an exact boundary, and small volatilities converge to it.
func TestPriceZeroVolatility(t *testing.T) {
	in := baseInputs()
	in.Spot = 110

	in.Volatility = 0
	res, err := Price(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wantCall := math.Max(in.Spot-in.Strike*math.Exp(-in.RiskFreeRate*in.TimeToMaturity), 0)
	wantPut := math.Max(in.Strike*math.Exp(-in.RiskFreeRate*in.TimeToMaturity)-in.Spot, 0)
	if math.Abs(res.CallPrice-wantCall) > 1e-12 || math.Abs(res.PutPrice-wantPut) > 1e-12 {
		t.Fatalf("zero-vol fallback: got call=%f put=%f, want call=%f put=%f",
			res.CallPrice, res.PutPrice, wantCall, wantPut)
	}
	if math.IsNaN(res.CallPrice) || math.IsInf(res.CallPrice, 0) {
		t.Fatalf("zero-vol produced non-finite call: %f", res.CallPrice)
	}

	in.Volatility = 1e-6
	near, err := Price(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(near.CallPrice-wantCall) > 1e-4 {
		t.Fatalf("small-vol call %f did not converge to limit %f", near.CallPrice, wantCall)
	}
	if math.Abs(near.PutPrice-wantPut) > 1e-4 {
		t.Fatalf("small-vol put %f did not converge to limit %f", near.PutPrice, wantPut)
	}
}

func TestPriceZeroMaturityIntrinsic(t *testing.T) {
	cases := []struct {
		spot, strike      float64
		wantCall, wantPut float64
	}{
		{spot: 110, strike: 100, wantCall: 10, wantPut: 0},
		{spot: 90, strike: 100, wantCall: 0, wantPut: 10},
		{spot: 100, strike: 100, wantCall: 0, wantPut: 0},
	}
	for _, tc := range cases {
		in := baseInputs()
		in.Spot, in.Strike, in.TimeToMaturity = tc.spot, tc.strike, 0
		res, err := Price(in)
		if err != nil {
			t.Fatalf("Price(spot=%f T=0): %v", tc.spot, err)
		}
		if res.CallPrice != tc.wantCall || res.PutPrice != tc.wantPut {
			t.Fatalf("intrinsic at spot=%f: got call=%f put=%f, want call=%f put=%f",
				tc.spot, res.CallPrice, res.PutPrice, tc.wantCall, tc.wantPut)
		}
	}
}

func TestPriceInvalidInputs(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*model.PricingInputs)
	}{
		{"negative spot", func(in *model.PricingInputs) { in.Spot = -5 }},
		{"zero spot", func(in *model.PricingInputs) { in.Spot = 0 }},
		{"negative strike", func(in *model.PricingInputs) { in.Strike = -100 }},
		{"zero strike", func(in *model.PricingInputs) { in.Strike = 0 }},
		{"negative maturity", func(in *model.PricingInputs) { in.TimeToMaturity = -1 }},
		{"negative volatility", func(in *model.PricingInputs) { in.Volatility = -0.2 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := baseInputs()
			tc.mutate(&in)
			res, err := Price(in)
			if !errors.Is(err, model.ErrInvalidInput) {
				t.Fatalf("want ErrInvalidInput, got %v", err)
			}
			if res != (model.PricingResult{}) {
				t.Fatalf("invalid input returned a partial result: %+v", res)
			}
		})
	}
}
