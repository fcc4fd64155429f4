package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"option-surface/internal/api/models"
	"option-surface/internal/model"
	"option-surface/internal/pricing"
)

// PriceHandler handles point-pricing requests
type PriceHandler struct{}

// NewPriceHandler creates a new price handler
func NewPriceHandler() *PriceHandler {
	return &PriceHandler{}
}

// Price handles POST /api/v1/price
func (h *PriceHandler) Price(c *gin.Context) {
	var req models.PriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	res, err := pricing.Price(req.Inputs.ToModel())
	if err != nil {
		status := http.StatusInternalServerError
		code := "PRICING_ERROR"
		if errors.Is(err, model.ErrInvalidInput) {
			status = http.StatusBadRequest
			code = "INVALID_INPUT"
		}
		c.JSON(status, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    code,
				Message: err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, models.PriceResponse{
		Inputs:    req.Inputs,
		CallPrice: res.CallPrice,
		PutPrice:  res.PutPrice,
	})
}
