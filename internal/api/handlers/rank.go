package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sherbie/spot-risk-assessment/internal/analysis"
	"github.com/sherbie/spot-risk-assessment/internal/api/models"
	"github.com/sherbie/spot-risk-assessment/internal/model"
	"github.com/sherbie/spot-risk-assessment/internal/simulate"
)

// RankHandler handles consumer ranking requests
type RankHandler struct{}

func NewRankHandler() *RankHandler {
	return &RankHandler{}
}

// Rank handles POST /api/v1/rank
func (h *RankHandler) Rank(c *gin.Context) {
	var req models.RankRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
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

	ranked := analysis.RankEntriesByCost(entries, prices, req.TransferPrice)
	rankings := make([]models.Ranking, len(ranked))
	for i, r := range ranked {
		rankings[i] = models.Ranking{
			Rank:         i + 1,
			Name:         r.Name,
			ActiveHours:  r.ActiveHours,
			PeakHours:    r.PeakHours,
			OffPeakHours: r.OffPeakHours,
			VariableCost: r.VariableCost,
		}
	}

	c.JSON(http.StatusOK, models.RankResponse{Rankings: rankings})
}
