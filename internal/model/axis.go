package model

import (
	"errors"
	"fmt"
)

// ErrInvalidAxisPair marks axis specifications that cannot form a grid:
// both axes sweeping the same parameter, min >= max, or fewer than 2 steps.
var ErrInvalidAxisPair = errors.New("invalid axis pair")

// AxisSpec describes one swept dimension of a sensitivity grid:
// Steps linearly spaced values of Parameter from Min to Max inclusive.
type AxisSpec struct {
	Parameter Parameter
	Min       float64
	Max       float64
	Steps     int
}

func (a AxisSpec) Validate() error {
	if _, err := ParseParameter(string(a.Parameter)); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidAxisPair, err)
	}
	if a.Min >= a.Max {
		return fmt.Errorf("%w: %s axis must have min < max, got [%g, %g]", ErrInvalidAxisPair, a.Parameter, a.Min, a.Max)
	}
	if a.Steps < 2 {
		return fmt.Errorf("%w: %s axis must have steps >= 2, got %d", ErrInvalidAxisPair, a.Parameter, a.Steps)
	}
	return nil
}

// Value returns the i-th axis value, i in [0, Steps).
// Endpoints are exact: Value(0) == Min and Value(Steps-1) == Max.
func (a AxisSpec) Value(i int) float64 {
	if i == a.Steps-1 {
		return a.Max
	}
	return a.Min + float64(i)*(a.Max-a.Min)/float64(a.Steps-1)
}

// Values returns the full ascending axis value sequence, used both to
// derive grid inputs and to label heatmap rows/columns.
func (a AxisSpec) Values() []float64 {
	vs := make([]float64, a.Steps)
	for i := range vs {
		vs[i] = a.Value(i)
	}
	return vs
}
