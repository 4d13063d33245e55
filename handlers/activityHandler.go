package handlers

import (
	"net/http"
	"strconv"

	"github.com/Aishwarya-deoraj/Sustainability-tracker/models"
	"github.com/Aishwarya-deoraj/Sustainability-tracker/services"
	"github.com/Aishwarya-deoraj/Sustainability-tracker/utils"
	"github.com/gin-gonic/gin"
)

func currentUser(c *gin.Context) (models.User, bool) {
	userInterface, exists := c.Get("user")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return models.User{}, false
	}
	return userInterface.(models.User), true
}

func factorKind(unitUsed string) string {
	if services.IsEconomicFactor(unitUsed) {
		return "economic"
	}
	return "physical"
}

func CreateActivity(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var input models.ActivityCreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid data"})
		return
	}

	activity, err := activitySvc.Create(user.ID, input)
	if err != nil {
		abortWithServiceError(c, "create_activity", err)
		return
	}

	utils.ActivityWrites.WithLabelValues("create", factorKind(activity.UnitUsed)).Inc()
	c.JSON(http.StatusCreated, activity)
}

func GetActivities(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	activities, err := activitySvc.ListByUser(user.ID, limit)
	if err != nil {
		abortWithServiceError(c, "get_activities", err)
		return
	}

	c.JSON(http.StatusOK, activities)
}

func UpdateActivity(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid activity id"})
		return
	}

	var input models.ActivityUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid data"})
		return
	}

	if input.Quantity != nil && *input.Quantity <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Quantity must be positive"})
		return
	}
	if input.MonetaryAmount != nil && *input.MonetaryAmount < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Monetary amount must not be negative"})
		return
	}

	activity, err := activitySvc.Update(user.ID, uint(id), input)
	if err != nil {
		abortWithServiceError(c, "update_activity", err)
		return
	}

	utils.ActivityWrites.WithLabelValues("update", factorKind(activity.UnitUsed)).Inc()
	c.JSON(http.StatusOK, activity)
}

func DeleteActivity(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid activity id"})
		return
	}

	if err := activitySvc.Delete(user.ID, uint(id)); err != nil {
		abortWithServiceError(c, "delete_activity", err)
		return
	}

	utils.ActivityWrites.WithLabelValues("delete", "any").Inc()
	c.JSON(http.StatusOK, gin.H{"message": "Activity deleted successfully"})
}
