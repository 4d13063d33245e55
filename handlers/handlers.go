package handlers

import (
	"errors"
	"net/http"

	"github.com/Aishwarya-deoraj/Sustainability-tracker/services"
	"github.com/Aishwarya-deoraj/Sustainability-tracker/utils"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	activitySvc *services.ActivityService
	summarySvc  *services.SummaryService
	userSvc     *services.UserService
)

// Init wires the service layer. Must run before any route is served.
func Init(database *gorm.DB, logger *zap.Logger) {
	activitySvc = services.NewActivityService(database, logger)
	summarySvc = services.NewSummaryService(database, logger)
	userSvc = services.NewUserService(database, logger)
}

// abortWithServiceError maps service error kinds onto HTTP statuses.
// Unknown errors become a generic 500 with no internal detail in the body.
func abortWithServiceError(c *gin.Context, handler string, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	default:
		utils.ErrorCount.WithLabelValues(handler, "internal").Inc()
		utils.Logger.Error("handler_error",
			zap.String("handler", handler),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
