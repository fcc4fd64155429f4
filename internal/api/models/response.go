package models

// PriceResponse echoes the inputs alongside the computed values, so the UI
// can render its input table and CALL/PUT cards from one payload.
type PriceResponse struct {
	Inputs    InputsPayload `json:"inputs"`
	CallPrice float64       `json:"call_price"`
	PutPrice  float64       `json:"put_price"`
}

// SurfaceResponse carries both price grids plus the axis value sequences
// used to label heatmap rows/columns. Calls and Puts are indexed
// [x][y], ascending along both axes.
type SurfaceResponse struct {
	XParameter string         `json:"x_parameter"`
	YParameter string         `json:"y_parameter"`
	XValues    []float64      `json:"x_values"`
	YValues    []float64      `json:"y_values"`
	Calls      [][]float64    `json:"calls"`
	Puts       [][]float64    `json:"puts"`
	Summary    SurfaceSummary `json:"summary"`
}

// SurfaceSummary gives per-grid value ranges for fixing color scales.
type SurfaceSummary struct {
	Call ValueRange `json:"call"`
	Put  ValueRange `json:"put"`
}

// ValueRange is a min/max pair.
type ValueRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// DefaultsResponse exposes the configured default inputs and axes.
type DefaultsResponse struct {
	Inputs InputsPayload `json:"inputs"`
	XAxis  AxisPayload   `json:"x_axis"`
	YAxis  AxisPayload   `json:"y_axis"`
}

// ParameterInfo describes one sweepable pricing parameter
type ParameterInfo struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Default     float64 `json:"default"`
}

// ParametersResponse lists the sweepable parameters
type ParametersResponse struct {
	Parameters []ParameterInfo `json:"parameters"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
