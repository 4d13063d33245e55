package services

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/Aishwarya-deoraj/Sustainability-tracker/cache"
	"github.com/Aishwarya-deoraj/Sustainability-tracker/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const summaryCacheTTL = 5 * time.Minute

// economicUnitFilter matches activities written against a spend-based
// factor. Physical queries use the same fragment negated, so the two
// predicates partition the activity log exactly.
const economicUnitFilter = "activities.unit_used LIKE ?"

func economicUnitPattern() string {
	return "%" + economicMarker + "%"
}

// SummaryService answers the read-only dashboard queries. Item, sector and
// category summaries run as join+group+sum in the store; the time series
// are bucketed in Go over the user's fetched log. Results are cached per
// user and query for a few minutes and invalidated on any activity write.
type SummaryService struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewSummaryService(db *gorm.DB, logger *zap.Logger) *SummaryService {
	return &SummaryService{db: db, logger: logger}
}

// ByItem sums physical emissions per factor display name, highest first.
// Spend-based activities are excluded.
func (s *SummaryService) ByItem(userID uint) ([]models.ItemSummary, error) {
	cacheKey := fmt.Sprintf("dashboard:%d:items", userID)
	var cached []models.ItemSummary
	if err := cache.Get(cacheKey, &cached); err == nil {
		return cached, nil
	}

	var rows []models.ItemSummary
	err := s.db.Table("activities").
		Select("emission_factors.item_name AS item_name, SUM(activities.total_co2e) AS total_co2e_kg").
		Joins("JOIN emission_factors ON emission_factors.id = activities.factor_id").
		Where("activities.user_id = ?", userID).
		Where("NOT ("+economicUnitFilter+")", economicUnitPattern()).
		Group("emission_factors.item_name").
		Order("total_co2e_kg DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for i := range rows {
		rows[i].TotalCO2eKg = round2(rows[i].TotalCO2eKg)
	}

	cache.Set(cacheKey, rows, summaryCacheTTL)
	return rows, nil
}

// BySector sums spending and emissions per spend-based factor display
// name, highest emissions first.
func (s *SummaryService) BySector(userID uint) ([]models.SectorSummary, error) {
	cacheKey := fmt.Sprintf("dashboard:%d:sectors", userID)
	var cached []models.SectorSummary
	if err := cache.Get(cacheKey, &cached); err == nil {
		return cached, nil
	}

	var rows []models.SectorSummary
	err := s.db.Table("activities").
		Select(`emission_factors.item_name AS sector,
			SUM(activities.monetary_amount) AS total_spending_usd,
			SUM(activities.total_co2e) AS total_co2e_kg`).
		Joins("JOIN emission_factors ON emission_factors.id = activities.factor_id").
		Where("activities.user_id = ?", userID).
		Where(economicUnitFilter, economicUnitPattern()).
		Group("emission_factors.item_name").
		Order("total_co2e_kg DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for i := range rows {
		rows[i].TotalSpendingUSD = round2(rows[i].TotalSpendingUSD)
		rows[i].TotalCO2eKg = round2(rows[i].TotalCO2eKg)
	}

	cache.Set(cacheKey, rows, summaryCacheTTL)
	return rows, nil
}

// ByCategory sums all emissions per category name via the factor->category
// join, highest first.
func (s *SummaryService) ByCategory(userID uint) ([]models.CategorySummary, error) {
	cacheKey := fmt.Sprintf("dashboard:%d:categories", userID)
	var cached []models.CategorySummary
	if err := cache.Get(cacheKey, &cached); err == nil {
		return cached, nil
	}

	var rows []models.CategorySummary
	err := s.db.Table("activities").
		Select("categories.name AS category, SUM(activities.total_co2e) AS total_co2e_kg").
		Joins("JOIN emission_factors ON emission_factors.id = activities.factor_id").
		Joins("JOIN categories ON categories.id = emission_factors.category_id").
		Where("activities.user_id = ?", userID).
		Group("categories.name").
		Order("total_co2e_kg DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for i := range rows {
		rows[i].TotalCO2eKg = round2(rows[i].TotalCO2eKg)
	}

	cache.Set(cacheKey, rows, summaryCacheTTL)
	return rows, nil
}

// BiggestImpactors returns the top physical item and top economic sector
// by summed emissions, unrounded. Either side is nil when the user has no
// activities of that kind; ties break on the display name.
func (s *SummaryService) BiggestImpactors(userID uint) (*models.BiggestImpactors, error) {
	cacheKey := fmt.Sprintf("dashboard:%d:impactors", userID)
	var cached models.BiggestImpactors
	if err := cache.Get(cacheKey, &cached); err == nil {
		return &cached, nil
	}

	var physical []models.ItemSummary
	err := s.db.Table("activities").
		Select("emission_factors.item_name AS item_name, SUM(activities.total_co2e) AS total_co2e_kg").
		Joins("JOIN emission_factors ON emission_factors.id = activities.factor_id").
		Where("activities.user_id = ?", userID).
		Where("NOT ("+economicUnitFilter+")", economicUnitPattern()).
		Group("emission_factors.item_name").
		Order("total_co2e_kg DESC, item_name ASC").
		Limit(1).
		Scan(&physical).Error
	if err != nil {
		return nil, err
	}

	var economic []models.SectorSummary
	err = s.db.Table("activities").
		Select(`emission_factors.item_name AS sector,
			SUM(activities.monetary_amount) AS total_spending_usd,
			SUM(activities.total_co2e) AS total_co2e_kg`).
		Joins("JOIN emission_factors ON emission_factors.id = activities.factor_id").
		Where("activities.user_id = ?", userID).
		Where(economicUnitFilter, economicUnitPattern()).
		Group("emission_factors.item_name").
		Order("total_co2e_kg DESC, sector ASC").
		Limit(1).
		Scan(&economic).Error
	if err != nil {
		return nil, err
	}

	result := models.BiggestImpactors{}
	if len(physical) > 0 {
		result.BiggestPhysical = &physical[0]
	}
	if len(economic) > 0 {
		result.BiggestEconomic = &economic[0]
	}

	cache.Set(cacheKey, result, summaryCacheTTL)
	return &result, nil
}

// Daily buckets the user's emissions per calendar day, oldest first,
// labelled "YYYY-MM-DD".
func (s *SummaryService) Daily(userID uint) ([]models.TimeBucket, error) {
	return s.timeSeries(userID, "daily", func(d time.Time) (int, string) {
		return d.Year()*1000 + d.YearDay(), d.Format("2006-01-02")
	})
}

// Weekly buckets per ISO 8601 week, oldest first, labelled "Week W, YYYY".
func (s *SummaryService) Weekly(userID uint) ([]models.TimeBucket, error) {
	return s.timeSeries(userID, "weekly", func(d time.Time) (int, string) {
		year, week := d.ISOWeek()
		return year*100 + week, fmt.Sprintf("Week %d, %d", week, year)
	})
}

// Monthly buckets per calendar month, oldest first, labelled "YYYY-M"
// without zero padding.
func (s *SummaryService) Monthly(userID uint) ([]models.TimeBucket, error) {
	return s.timeSeries(userID, "monthly", func(d time.Time) (int, string) {
		return d.Year()*100 + int(d.Month()), fmt.Sprintf("%d-%d", d.Year(), int(d.Month()))
	})
}

// timeSeries fetches the user's log once and folds it into buckets keyed
// by bucketOf. Keys must sort chronologically.
func (s *SummaryService) timeSeries(userID uint, kind string, bucketOf func(time.Time) (int, string)) ([]models.TimeBucket, error) {
	cacheKey := fmt.Sprintf("dashboard:%d:%s", userID, kind)
	var cached []models.TimeBucket
	if err := cache.Get(cacheKey, &cached); err == nil {
		return cached, nil
	}

	var activities []models.Activity
	if err := s.db.Select("date", "total_co2e").
		Where("user_id = ?", userID).
		Find(&activities).Error; err != nil {
		return nil, err
	}

	totals := make(map[int]float64)
	labels := make(map[int]string)
	for _, a := range activities {
		key, label := bucketOf(a.Date)
		totals[key] += a.TotalCO2e
		labels[key] = label
	}

	keys := make([]int, 0, len(totals))
	for k := range totals {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	buckets := make([]models.TimeBucket, 0, len(keys))
	for _, k := range keys {
		buckets = append(buckets, models.TimeBucket{
			Label:     labels[k],
			Emissions: round2(totals[k]),
		})
	}

	cache.Set(cacheKey, buckets, summaryCacheTTL)
	return buckets, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
