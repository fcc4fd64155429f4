// Package surface builds two-dimensional option-price sensitivity grids
// suitable for heatmap rendering.
package surface

import (
	"fmt"
	"sync"

	"option-surface/internal/model"
	"option-surface/internal/pricing"
)

// Surface is a call/put price grid over two swept parameters.
//
// Calls and Puts are indexed [i][j] where i walks XValues (ascending) and
// j walks YValues (ascending); Calls[0][0] is priced at (XValues[0],
// YValues[0]). XValues/YValues double as the heatmap row/column labels.
// A Surface is built fresh per request and never cached.
type Surface struct {
	XParameter model.Parameter
	YParameter model.Parameter
	XValues    []float64
	YValues    []float64
	Calls      [][]float64
	Puts       [][]float64
}

// Build sweeps axisX and axisY over base, pricing every combination.
//
// The two axis parameters override the corresponding base fields; the
// remaining three inputs are held at their base values. Axis validation
// (distinct parameters, min < max, steps >= 2) happens before any pricing
// and fails with model.ErrInvalidAxisPair.
//
// Cells are independent, so rows are priced concurrently. Any cell whose
// derived inputs are invalid (e.g. a spot axis crossing zero) fails the
// whole build with model.ErrInvalidInput.
func Build(base model.PricingInputs, axisX, axisY model.AxisSpec) (*Surface, error) {
	if err := axisX.Validate(); err != nil {
		return nil, fmt.Errorf("x axis: %w", err)
	}
	if err := axisY.Validate(); err != nil {
		return nil, fmt.Errorf("y axis: %w", err)
	}
	if axisX.Parameter == axisY.Parameter {
		return nil, fmt.Errorf("%w: both axes sweep %s", model.ErrInvalidAxisPair, axisX.Parameter)
	}
	if err := base.Validate(); err != nil {
		return nil, err
	}

	s := &Surface{
		XParameter: axisX.Parameter,
		YParameter: axisY.Parameter,
		XValues:    axisX.Values(),
		YValues:    axisY.Values(),
		Calls:      make([][]float64, axisX.Steps),
		Puts:       make([][]float64, axisX.Steps),
	}

	var (
		wg       sync.WaitGroup
		errOnce  sync.Once
		buildErr error
	)
	for i := range s.XValues {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			calls, puts, err := priceRow(base, axisX.Parameter, s.XValues[i], axisY.Parameter, s.YValues)
			if err != nil {
				errOnce.Do(func() { buildErr = fmt.Errorf("row %d (%s=%g): %w", i, axisX.Parameter, s.XValues[i], err) })
				return
			}
			s.Calls[i] = calls
			s.Puts[i] = puts
		}(i)
	}
	wg.Wait()

	if buildErr != nil {
		return nil, buildErr
	}
	return s, nil
}

// priceRow prices one grid row: x fixed, every y value swept.
func priceRow(base model.PricingInputs, xParam model.Parameter, x float64, yParam model.Parameter, yValues []float64) ([]float64, []float64, error) {
	rowBase, err := base.WithParameter(xParam, x)
	if err != nil {
		return nil, nil, err
	}

	calls := make([]float64, len(yValues))
	puts := make([]float64, len(yValues))
	for j, y := range yValues {
		in, err := rowBase.WithParameter(yParam, y)
		if err != nil {
			return nil, nil, err
		}
		res, err := pricing.Price(in)
		if err != nil {
			return nil, nil, fmt.Errorf("cell %s=%g: %w", yParam, y, err)
		}
		calls[j] = res.CallPrice
		puts[j] = res.PutPrice
	}
	return calls, puts, nil
}
