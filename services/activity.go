package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/Aishwarya-deoraj/Sustainability-tracker/cache"
	"github.com/Aishwarya-deoraj/Sustainability-tracker/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const defaultActivityLimit = 50

// ActivityService owns the per-user activity log. Every mutation and
// single-item read filters on (id, user_id) in the query itself, never as
// a post-fetch check, so a foreign activity and a missing one fail the
// same way.
type ActivityService struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewActivityService(db *gorm.DB, logger *zap.Logger) *ActivityService {
	return &ActivityService{db: db, logger: logger}
}

func (s *ActivityService) Create(userID uint, input models.ActivityCreateInput) (*models.Activity, error) {
	var factor models.EmissionFactor
	if err := s.db.First(&factor, input.FactorID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("emission factor not found: %w", ErrNotFound)
		}
		return nil, err
	}

	totalCO2e, quantity, monetary, err := ComputeTotalCO2e(&factor, input.Quantity, input.MonetaryAmount)
	if err != nil {
		return nil, err
	}

	date := time.Now()
	if input.Date != nil {
		date = *input.Date
	}

	activity := models.Activity{
		UserID:         userID,
		FactorID:       factor.ID,
		Quantity:       quantity,
		MonetaryAmount: monetary,
		TotalCO2e:      totalCO2e,
		Date:           date,
		UnitUsed:       factor.Unit,
	}

	if err := s.db.Create(&activity).Error; err != nil {
		return nil, err
	}

	s.invalidateDashboards(userID)

	s.logger.Info("activity_created",
		zap.Uint("user_id", userID),
		zap.Uint("activity_id", activity.ID),
		zap.Uint("factor_id", factor.ID),
		zap.Float64("total_co2e", totalCO2e),
	)

	return &activity, nil
}

// Update merges the provided fields over the stored activity and recomputes
// total_co2e from the merged values. A nil field keeps the stored value; the
// derived total is never merged, only recomputed. Changing the factor
// refreshes unit_used from the new factor.
func (s *ActivityService) Update(userID, activityID uint, input models.ActivityUpdateInput) (*models.Activity, error) {
	var activity models.Activity
	if err := s.db.Where("id = ? AND user_id = ?", activityID, userID).First(&activity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("activity: %w", ErrNotFound)
		}
		return nil, err
	}

	factorID := activity.FactorID
	if input.FactorID != nil {
		factorID = *input.FactorID
	}
	quantity := activity.Quantity
	if input.Quantity != nil {
		quantity = *input.Quantity
	}
	monetary := activity.MonetaryAmount
	if input.MonetaryAmount != nil {
		monetary = *input.MonetaryAmount
	}

	var factor models.EmissionFactor
	if err := s.db.First(&factor, factorID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("emission factor not found: %w", ErrNotFound)
		}
		return nil, err
	}

	totalCO2e, quantity, monetary, err := ComputeTotalCO2e(&factor, quantity, monetary)
	if err != nil {
		return nil, err
	}

	activity.FactorID = factor.ID
	activity.Quantity = quantity
	activity.MonetaryAmount = monetary
	activity.TotalCO2e = totalCO2e
	activity.UnitUsed = factor.Unit
	if input.Date != nil {
		activity.Date = *input.Date
	}

	if err := s.db.Save(&activity).Error; err != nil {
		return nil, err
	}

	s.invalidateDashboards(userID)

	s.logger.Info("activity_updated",
		zap.Uint("user_id", userID),
		zap.Uint("activity_id", activity.ID),
		zap.Float64("total_co2e", totalCO2e),
	)

	return &activity, nil
}

func (s *ActivityService) Delete(userID, activityID uint) error {
	result := s.db.Where("id = ? AND user_id = ?", activityID, userID).Delete(&models.Activity{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("activity: %w", ErrNotFound)
	}

	s.invalidateDashboards(userID)

	s.logger.Info("activity_deleted",
		zap.Uint("user_id", userID),
		zap.Uint("activity_id", activityID),
	)

	return nil
}

// ListByUser returns the user's newest activities joined with the factor's
// display name and the factor's category name.
func (s *ActivityService) ListByUser(userID uint, limit int) ([]models.EnrichedActivity, error) {
	if limit <= 0 {
		limit = defaultActivityLimit
	}

	var rows []models.EnrichedActivity
	err := s.db.Table("activities").
		Select(`activities.id,
			emission_factors.item_name AS name,
			categories.name AS category,
			activities.quantity,
			activities.monetary_amount,
			activities.total_co2e AS emissions,
			activities.date,
			activities.unit_used AS unit`).
		Joins("JOIN emission_factors ON emission_factors.id = activities.factor_id").
		Joins("JOIN categories ON categories.id = emission_factors.category_id").
		Where("activities.user_id = ?", userID).
		Order("activities.date DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	return rows, nil
}

// Dashboard caches hold aggregates over this user's log; any write makes
// them stale.
func (s *ActivityService) invalidateDashboards(userID uint) {
	if err := cache.DeletePattern(fmt.Sprintf("dashboard:%d:*", userID)); err != nil && !errors.Is(err, cache.ErrDisabled) {
		s.logger.Warn("dashboard_cache_invalidation_failed",
			zap.Uint("user_id", userID),
			zap.Error(err),
		)
	}
}
