package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sherbie/spot-risk-assessment/internal/api/models"
	"github.com/sherbie/spot-risk-assessment/internal/cost"
	"github.com/sherbie/spot-risk-assessment/internal/data"
	"github.com/sherbie/spot-risk-assessment/internal/model"
	"github.com/sherbie/spot-risk-assessment/internal/simulate"
)

// EstimateHandler handles cost estimate requests
type EstimateHandler struct{}

func NewEstimateHandler() *EstimateHandler {
	return &EstimateHandler{}
}

// Estimate handles POST /api/v1/estimate
func (h *EstimateHandler) Estimate(c *gin.Context) {
	var req models.EstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	if req.FixedRate == 0 && req.FixedTotal == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "MISSING_RATE",
				Message: "either fixed_rate or fixed_total must be provided",
			},
		})
		return
	}

	entries, err := convertConsumption(req.Consumption)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_CONSUMPTION",
				Message: err.Error(),
			},
		})
		return
	}

	hours := req.Hours
	if hours <= 0 {
		hours = model.HoursPerYear
	}
	prices := simulate.New(*req.Seed).SpotPrices(hours)

	summary, err := cost.Calculate(entries, prices, cost.Params{
		FixedRate:     req.FixedRate,
		FixedTotal:    req.FixedTotal,
		TransferPrice: req.TransferPrice,
	})
	if err != nil {
		status := http.StatusInternalServerError
		code := "CALCULATION_FAILED"
		if errors.Is(err, cost.ErrNoFixedBaseline) || errors.Is(err, cost.ErrNoPrices) {
			status = http.StatusBadRequest
			code = "INVALID_REQUEST"
		}
		c.JSON(status, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    code,
				Message: err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, models.EstimateResponse{
		Seed:    *req.Seed,
		Hours:   hours,
		Summary: *summary,
	})
}

// convertConsumption maps request entries to core model entries, parsing the
// HH:MM:SS window strings at this boundary.
func convertConsumption(in []models.ConsumptionEntry) ([]model.ConsumptionEntry, error) {
	entries := make([]model.ConsumptionEntry, 0, len(in))
	for _, e := range in {
		entry := model.ConsumptionEntry{
			Name:    e.Name,
			Periods: make([]model.ConsumptionPeriod, 0, len(e.Periods)),
		}
		for _, p := range e.Periods {
			period, err := data.NewPeriod(p.StartTime, p.StopTime, p.KwDraw, p.Months)
			if err != nil {
				return nil, err
			}
			entry.Periods = append(entry.Periods, period)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
