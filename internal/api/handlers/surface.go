package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"option-surface/internal/api/models"
	"option-surface/internal/model"
	"option-surface/internal/surface"
)

// SurfaceHandler handles sensitivity-surface requests
type SurfaceHandler struct{}

// NewSurfaceHandler creates a new surface handler
func NewSurfaceHandler() *SurfaceHandler {
	return &SurfaceHandler{}
}

// Surface handles POST /api/v1/surface
func (h *SurfaceHandler) Surface(c *gin.Context) {
	var req models.SurfaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	axisX, err := req.XAxis.ToModel()
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_AXIS_PAIR",
				Message: "x_axis: " + err.Error(),
			},
		})
		return
	}
	axisY, err := req.YAxis.ToModel()
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_AXIS_PAIR",
				Message: "y_axis: " + err.Error(),
			},
		})
		return
	}

	s, err := surface.Build(req.Inputs.ToModel(), axisX, axisY)
	if err != nil {
		status := http.StatusInternalServerError
		code := "SURFACE_ERROR"
		switch {
		case errors.Is(err, model.ErrInvalidAxisPair):
			status = http.StatusBadRequest
			code = "INVALID_AXIS_PAIR"
		case errors.Is(err, model.ErrInvalidInput):
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

	sum := s.Summarize()
	c.JSON(http.StatusOK, models.SurfaceResponse{
		XParameter: string(s.XParameter),
		YParameter: string(s.YParameter),
		XValues:    s.XValues,
		YValues:    s.YValues,
		Calls:      s.Calls,
		Puts:       s.Puts,
		Summary: models.SurfaceSummary{
			Call: models.ValueRange{Min: sum.Call.Min, Max: sum.Call.Max},
			Put:  models.ValueRange{Min: sum.Put.Min, Max: sum.Put.Max},
		},
	})
}
