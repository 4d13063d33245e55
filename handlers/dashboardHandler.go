package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Dashboard queries are all read-only and scoped to the authenticated
// user; each one delegates to the summary service.

func SummaryByItem(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	summary, err := summarySvc.ByItem(user.ID)
	if err != nil {
		abortWithServiceError(c, "summary_by_item", err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func SummaryBySector(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	summary, err := summarySvc.BySector(user.ID)
	if err != nil {
		abortWithServiceError(c, "summary_by_sector", err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func SummaryByCategory(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	summary, err := summarySvc.ByCategory(user.ID)
	if err != nil {
		abortWithServiceError(c, "summary_by_category", err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func GetBiggestImpactors(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	impactors, err := summarySvc.BiggestImpactors(user.ID)
	if err != nil {
		abortWithServiceError(c, "biggest_impactors", err)
		return
	}
	c.JSON(http.StatusOK, impactors)
}

func SummaryDaily(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	buckets, err := summarySvc.Daily(user.ID)
	if err != nil {
		abortWithServiceError(c, "summary_daily", err)
		return
	}
	c.JSON(http.StatusOK, buckets)
}

func SummaryWeekly(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	buckets, err := summarySvc.Weekly(user.ID)
	if err != nil {
		abortWithServiceError(c, "summary_weekly", err)
		return
	}
	c.JSON(http.StatusOK, buckets)
}

func SummaryMonthly(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	buckets, err := summarySvc.Monthly(user.ID)
	if err != nil {
		abortWithServiceError(c, "summary_monthly", err)
		return
	}
	c.JSON(http.StatusOK, buckets)
}
