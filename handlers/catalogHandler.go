package handlers

import (
	"net/http"
	"strings"

	"github.com/Aishwarya-deoraj/Sustainability-tracker/db"
	"github.com/Aishwarya-deoraj/Sustainability-tracker/models"
	"github.com/gin-gonic/gin"
)

// The emission catalog is read-only; these are plain lookups.

func GetCategories(c *gin.Context) {
	var categories []models.Category
	if err := db.DB.Find(&categories).Error; err != nil {
		abortWithServiceError(c, "get_categories", err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

// GetEmissionFactors lists the factor catalog, optionally filtered by
// category name and/or an item-name search term.
func GetEmissionFactors(c *gin.Context) {
	query := db.DB.Model(&models.EmissionFactor{})

	if category := c.Query("category"); category != "" {
		query = query.
			Joins("JOIN categories ON categories.id = emission_factors.category_id").
			Where("categories.name = ?", category)
	}

	if search := c.Query("search"); search != "" {
		query = query.Where("LOWER(item_name) LIKE ?", "%"+strings.ToLower(search)+"%")
	}

	var factors []models.EmissionFactor
	if err := query.Find(&factors).Error; err != nil {
		abortWithServiceError(c, "get_emission_factors", err)
		return
	}
	c.JSON(http.StatusOK, factors)
}
