package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"option-surface/internal/api/models"
	"option-surface/internal/config"
	"option-surface/internal/model"
)

// ParametersHandler serves parameter metadata and configured defaults
type ParametersHandler struct {
	cfg *config.Config
}

// NewParametersHandler creates a new parameters handler
func NewParametersHandler(cfg *config.Config) *ParametersHandler {
	if cfg == nil {
		cfg = config.Default()
	}
	return &ParametersHandler{cfg: cfg}
}

// ListParameters handles GET /api/v1/parameters
func (h *ParametersHandler) ListParameters(c *gin.Context) {
	in := h.cfg.Defaults.Inputs
	params := []models.ParameterInfo{
		{
			Name:        string(model.ParameterSpot),
			Description: "Current price of the underlying asset",
			Default:     in.Spot,
		},
		{
			Name:        string(model.ParameterStrike),
			Description: "Price at which the option may be exercised",
			Default:     in.Strike,
		},
		{
			Name:        string(model.ParameterTimeToMaturity),
			Description: "Time to expiration in years",
			Default:     in.TimeToMaturity,
		},
		{
			Name:        string(model.ParameterRiskFreeRate),
			Description: "Continuously-compounded annual risk-free rate (0.05 = 5%)",
			Default:     in.RiskFreeRate,
		},
		{
			Name:        string(model.ParameterVolatility),
			Description: "Annualized volatility of the underlying (0.20 = 20%)",
			Default:     in.Volatility,
		},
	}
	c.JSON(http.StatusOK, models.ParametersResponse{Parameters: params})
}

// GetDefaults handles GET /api/v1/defaults
func (h *ParametersHandler) GetDefaults(c *gin.Context) {
	d := h.cfg.Defaults
	c.JSON(http.StatusOK, models.DefaultsResponse{
		Inputs: models.InputsPayload{
			Spot:           d.Inputs.Spot,
			Strike:         d.Inputs.Strike,
			TimeToMaturity: d.Inputs.TimeToMaturity,
			RiskFreeRate:   d.Inputs.RiskFreeRate,
			Volatility:     d.Inputs.Volatility,
		},
		XAxis: models.AxisPayload{
			Parameter: d.XAxis.Parameter,
			Min:       d.XAxis.Min,
			Max:       d.XAxis.Max,
			Steps:     d.XAxis.Steps,
		},
		YAxis: models.AxisPayload{
			Parameter: d.YAxis.Parameter,
			Min:       d.YAxis.Min,
			Max:       d.YAxis.Max,
			Steps:     d.YAxis.Steps,
		},
	})
}
