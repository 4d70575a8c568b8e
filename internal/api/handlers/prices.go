package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sherbie/spot-risk-assessment/internal/analysis"
	"github.com/sherbie/spot-risk-assessment/internal/api/models"
	"github.com/sherbie/spot-risk-assessment/internal/model"
	"github.com/sherbie/spot-risk-assessment/internal/simulate"
)

// PricesHandler serves simulated price series and their statistics
type PricesHandler struct{}

func NewPricesHandler() *PricesHandler {
	return &PricesHandler{}
}

// Prices handles GET /api/v1/prices
func (h *PricesHandler) Prices(c *gin.Context) {
	var req models.PricesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
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

	limit := len(prices)
	if req.Limit > 0 && req.Limit < limit {
		limit = req.Limit
	}

	points := make([]models.PricePoint, limit)
	for i := 0; i < limit; i++ {
		month := model.MonthForHour(i)
		points[i] = models.PricePoint{
			Hour:   i,
			Month:  month,
			Season: string(model.SeasonForMonth(month)),
			Peak:   model.IsPeakHour(i % 24),
			Price:  prices[i],
		}
	}

	c.JSON(http.StatusOK, models.PricesResponse{
		Seed:   *req.Seed,
		Hours:  hours,
		Prices: points,
	})
}

// Stats handles GET /api/v1/stats
func (h *PricesHandler) Stats(c *gin.Context) {
	var req models.StatsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	hours := req.Hours
	if hours <= 0 {
		hours = model.HoursPerYear
	}
	stats := analysis.ComputePriceStats(simulate.New(*req.Seed).SpotPrices(hours))

	resp := models.StatsResponse{
		Seed:  *req.Seed,
		Hours: hours,
		Count: stats.Count,
		Min:   stats.Min,
		Max:   stats.Max,
		Mean:  stats.Mean,
		P05:   stats.P05,
		P95:   stats.P95,
	}
	for _, b := range stats.Buckets {
		resp.Buckets = append(resp.Buckets, models.BucketStats{
			Season: string(b.Season),
			Peak:   b.Peak,
			Count:  b.Count,
			Min:    b.Min,
			Max:    b.Max,
			Mean:   b.Mean,
			P05:    b.P05,
			P95:    b.P95,
		})
	}

	c.JSON(http.StatusOK, resp)
}
