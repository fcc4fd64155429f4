package models

import "option-surface/internal/model"

// PriceRequest represents the request body for pricing a single option.
type PriceRequest struct {
	Inputs InputsPayload `json:"inputs" binding:"required"`
}

// SurfaceRequest represents the request body for building a sensitivity
// surface: fixed base inputs plus the two swept axes.
type SurfaceRequest struct {
	Inputs InputsPayload `json:"inputs" binding:"required"`
	XAxis  AxisPayload   `json:"x_axis" binding:"required"`
	YAxis  AxisPayload   `json:"y_axis" binding:"required"`
}

// InputsPayload is the wire form of the five Black-Scholes scalars.
// Zero maturity/volatility are meaningful (priced as degenerate payoffs),
// so only spot and strike are bound strictly positive here; full domain
// validation happens in the core.
type InputsPayload struct {
	Spot           float64 `json:"spot" binding:"required,gt=0"`
	Strike         float64 `json:"strike" binding:"required,gt=0"`
	TimeToMaturity float64 `json:"time_to_maturity" binding:"gte=0"`
	RiskFreeRate   float64 `json:"risk_free_rate"`
	Volatility     float64 `json:"volatility" binding:"gte=0"`
}

// AxisPayload is the wire form of one sweep axis.
type AxisPayload struct {
	Parameter string  `json:"parameter" binding:"required"`
	Min       float64 `json:"min"`
	Max       float64 `json:"max"`
	Steps     int     `json:"steps" binding:"required,gte=2"`
}

func (p InputsPayload) ToModel() model.PricingInputs {
	return model.PricingInputs{
		Spot:           p.Spot,
		Strike:         p.Strike,
		TimeToMaturity: p.TimeToMaturity,
		RiskFreeRate:   p.RiskFreeRate,
		Volatility:     p.Volatility,
	}
}

func (p AxisPayload) ToModel() (model.AxisSpec, error) {
	param, err := model.ParseParameter(p.Parameter)
	if err != nil {
		return model.AxisSpec{}, err
	}
	return model.AxisSpec{Parameter: param, Min: p.Min, Max: p.Max, Steps: p.Steps}, nil
}
