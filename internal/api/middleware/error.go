package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sherbie/spot-risk-assessment/internal/api/models"
)

// ErrorHandler converts panics into the JSON error envelope.
func ErrorHandler() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		message := "An unexpected error occurred"
		switch v := recovered.(type) {
		case string:
			message = v
		case error:
			message = v.Error()
		case fmt.Stringer:
			message = v.String()
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INTERNAL_ERROR",
				Message: message,
			},
		})
		c.Abort()
	})
}
