package services

import (
	"testing"
	"time"

	"github.com/Aishwarya-deoraj/Sustainability-tracker/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// seedMixedActivities writes a known mix of physical and economic
// activities for the user:
//
//	Beef 10kg        -> 270.0  (Food)
//	Beef 2kg         ->  54.0  (Food)
//	Chicken 2kg      ->  13.8  (Food)
//	Electricity $100 ->  50.0  (Energy)
//	Electricity $60  ->  30.0  (Energy)
//	Clothing $20     ->   7.0  (Shopping)
//
// Grand total: 424.8 kg CO2e.
func seedMixedActivities(t *testing.T, db *gorm.DB, userID uint, date time.Time) {
	t.Helper()
	svc := NewActivityService(db, testLogger())

	beef := factorByName(t, db, "Beef", "kg")
	chicken := factorByName(t, db, "Chicken", "kg")
	electricity := factorByName(t, db, "Electricity", "USD spent")
	clothing := factorByName(t, db, "Clothing", "USD spent")

	for _, in := range []models.ActivityCreateInput{
		{FactorID: beef.ID, Quantity: 10, Date: &date},
		{FactorID: beef.ID, Quantity: 2, Date: &date},
		{FactorID: chicken.ID, Quantity: 2, Date: &date},
		{FactorID: electricity.ID, Quantity: 1, MonetaryAmount: 100, Date: &date},
		{FactorID: electricity.ID, Quantity: 1, MonetaryAmount: 60, Date: &date},
		{FactorID: clothing.ID, Quantity: 1, MonetaryAmount: 20, Date: &date},
	} {
		_, err := svc.Create(userID, in)
		require.NoError(t, err)
	}
}

func TestByItemPhysicalOnly(t *testing.T) {
	db := newTestDB(t)
	svc := NewSummaryService(db, testLogger())
	user := newTestUser(t, db, "alice")
	seedMixedActivities(t, db, user.ID, time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC))

	items, err := svc.ByItem(user.ID)
	require.NoError(t, err)
	require.Len(t, items, 2, "spend-based activities are excluded")

	assert.Equal(t, "Beef", items[0].ItemName)
	assert.InDelta(t, 324.0, items[0].TotalCO2eKg, 1e-9)
	assert.Equal(t, "Chicken", items[1].ItemName)
	assert.InDelta(t, 13.8, items[1].TotalCO2eKg, 1e-9)
}

func TestBySectorEconomicOnly(t *testing.T) {
	db := newTestDB(t)
	svc := NewSummaryService(db, testLogger())
	user := newTestUser(t, db, "alice")
	seedMixedActivities(t, db, user.ID, time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC))

	sectors, err := svc.BySector(user.ID)
	require.NoError(t, err)
	require.Len(t, sectors, 2)

	assert.Equal(t, "Electricity", sectors[0].Sector)
	assert.InDelta(t, 160.0, sectors[0].TotalSpendingUSD, 1e-9)
	assert.InDelta(t, 80.0, sectors[0].TotalCO2eKg, 1e-9)
	assert.Equal(t, "Clothing", sectors[1].Sector)
	assert.InDelta(t, 20.0, sectors[1].TotalSpendingUSD, 1e-9)
	assert.InDelta(t, 7.0, sectors[1].TotalCO2eKg, 1e-9)
}

// The item and sector filters must partition the log: together they
// account for every kilogram, with no overlap.
func TestItemAndSectorFiltersPartitionTheLog(t *testing.T) {
	db := newTestDB(t)
	svc := NewSummaryService(db, testLogger())
	user := newTestUser(t, db, "alice")
	seedMixedActivities(t, db, user.ID, time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC))

	items, err := svc.ByItem(user.ID)
	require.NoError(t, err)
	sectors, err := svc.BySector(user.ID)
	require.NoError(t, err)

	var total float64
	for _, it := range items {
		total += it.TotalCO2eKg
	}
	for _, sec := range sectors {
		total += sec.TotalCO2eKg
	}

	var grandTotal float64
	require.NoError(t, db.Model(&models.Activity{}).
		Where("user_id = ?", user.ID).
		Select("COALESCE(SUM(total_co2e), 0)").
		Scan(&grandTotal).Error)

	assert.InDelta(t, grandTotal, total, 0.01*float64(len(items)+len(sectors)))
}

func TestByCategoryCoversBothKinds(t *testing.T) {
	db := newTestDB(t)
	svc := NewSummaryService(db, testLogger())
	user := newTestUser(t, db, "alice")
	seedMixedActivities(t, db, user.ID, time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC))

	categories, err := svc.ByCategory(user.ID)
	require.NoError(t, err)
	require.Len(t, categories, 3)

	assert.Equal(t, "Food", categories[0].Category)
	assert.InDelta(t, 337.8, categories[0].TotalCO2eKg, 1e-9)
	assert.Equal(t, "Energy", categories[1].Category)
	assert.InDelta(t, 80.0, categories[1].TotalCO2eKg, 1e-9)
	assert.Equal(t, "Shopping", categories[2].Category)
	assert.InDelta(t, 7.0, categories[2].TotalCO2eKg, 1e-9)
}

func TestBiggestImpactorsEmptyLog(t *testing.T) {
	db := newTestDB(t)
	svc := NewSummaryService(db, testLogger())
	user := newTestUser(t, db, "alice")

	impactors, err := svc.BiggestImpactors(user.ID)
	require.NoError(t, err)

	assert.Nil(t, impactors.BiggestPhysical)
	assert.Nil(t, impactors.BiggestEconomic)
}

func TestBiggestImpactors(t *testing.T) {
	db := newTestDB(t)
	svc := NewSummaryService(db, testLogger())
	user := newTestUser(t, db, "alice")
	seedMixedActivities(t, db, user.ID, time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC))

	impactors, err := svc.BiggestImpactors(user.ID)
	require.NoError(t, err)

	require.NotNil(t, impactors.BiggestPhysical)
	assert.Equal(t, "Beef", impactors.BiggestPhysical.ItemName)
	assert.InDelta(t, 324.0, impactors.BiggestPhysical.TotalCO2eKg, 1e-9)

	require.NotNil(t, impactors.BiggestEconomic)
	assert.Equal(t, "Electricity", impactors.BiggestEconomic.Sector)
	assert.InDelta(t, 80.0, impactors.BiggestEconomic.TotalCO2eKg, 1e-9)
}

func TestBiggestImpactorsTieBreaksOnName(t *testing.T) {
	db := newTestDB(t)
	activities := NewActivityService(db, testLogger())
	svc := NewSummaryService(db, testLogger())
	user := newTestUser(t, db, "alice")
	var food models.Category
	require.NoError(t, db.Where("name = ?", "Food").First(&food).Error)

	tied := []models.EmissionFactor{
		{ItemName: "Pears", Unit: "kg", CO2ePerUnit: 1.5, CategoryID: food.ID},
		{ItemName: "Apples", Unit: "kg", CO2ePerUnit: 1.5, CategoryID: food.ID},
	}
	require.NoError(t, db.Create(&tied).Error)

	// equal totals: 3.0 each
	for _, f := range tied {
		_, err := activities.Create(user.ID, models.ActivityCreateInput{FactorID: f.ID, Quantity: 2})
		require.NoError(t, err)
	}

	impactors, err := svc.BiggestImpactors(user.ID)
	require.NoError(t, err)
	require.NotNil(t, impactors.BiggestPhysical)
	assert.Equal(t, "Apples", impactors.BiggestPhysical.ItemName, "ties resolve alphabetically")
}

func TestTimeSeriesLabelsAndOrder(t *testing.T) {
	db := newTestDB(t)
	activities := NewActivityService(db, testLogger())
	svc := NewSummaryService(db, testLogger())
	user := newTestUser(t, db, "alice")
	beef := factorByName(t, db, "Beef", "kg")

	// 2025-01-06 is the Monday of ISO week 2.
	early := time.Date(2025, 1, 6, 8, 0, 0, 0, time.UTC)
	late := time.Date(2025, 3, 5, 8, 0, 0, 0, time.UTC)

	_, err := activities.Create(user.ID, models.ActivityCreateInput{FactorID: beef.ID, Quantity: 1, Date: &early})
	require.NoError(t, err)
	_, err = activities.Create(user.ID, models.ActivityCreateInput{FactorID: beef.ID, Quantity: 2, Date: &late})
	require.NoError(t, err)

	daily, err := svc.Daily(user.ID)
	require.NoError(t, err)
	require.Len(t, daily, 2)
	assert.Equal(t, "2025-01-06", daily[0].Label)
	assert.InDelta(t, 27.0, daily[0].Emissions, 1e-9)
	assert.Equal(t, "2025-03-05", daily[1].Label)
	assert.InDelta(t, 54.0, daily[1].Emissions, 1e-9)

	weekly, err := svc.Weekly(user.ID)
	require.NoError(t, err)
	require.Len(t, weekly, 2)
	assert.Equal(t, "Week 2, 2025", weekly[0].Label)

	monthly, err := svc.Monthly(user.ID)
	require.NoError(t, err)
	require.Len(t, monthly, 2)
	assert.Equal(t, "2025-1", monthly[0].Label)
	assert.Equal(t, "2025-3", monthly[1].Label)
}

func TestTimeSeriesMergesSameBucket(t *testing.T) {
	db := newTestDB(t)
	activities := NewActivityService(db, testLogger())
	svc := NewSummaryService(db, testLogger())
	user := newTestUser(t, db, "alice")
	beef := factorByName(t, db, "Beef", "kg")

	morning := time.Date(2025, 3, 5, 8, 0, 0, 0, time.UTC)
	evening := time.Date(2025, 3, 5, 20, 0, 0, 0, time.UTC)

	_, err := activities.Create(user.ID, models.ActivityCreateInput{FactorID: beef.ID, Quantity: 1, Date: &morning})
	require.NoError(t, err)
	_, err = activities.Create(user.ID, models.ActivityCreateInput{FactorID: beef.ID, Quantity: 1, Date: &evening})
	require.NoError(t, err)

	daily, err := svc.Daily(user.ID)
	require.NoError(t, err)
	require.Len(t, daily, 1)
	assert.InDelta(t, 54.0, daily[0].Emissions, 1e-9)
}

// Re-aggregating the monthly series reproduces the grand total.
func TestTimeSeriesConservesMass(t *testing.T) {
	db := newTestDB(t)
	svc := NewSummaryService(db, testLogger())
	user := newTestUser(t, db, "alice")
	seedMixedActivities(t, db, user.ID, time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC))
	seedMixedActivities(t, db, user.ID, time.Date(2025, 4, 2, 9, 0, 0, 0, time.UTC))

	monthly, err := svc.Monthly(user.ID)
	require.NoError(t, err)

	var total float64
	for _, bucket := range monthly {
		total += bucket.Emissions
	}

	var grandTotal float64
	require.NoError(t, db.Model(&models.Activity{}).
		Where("user_id = ?", user.ID).
		Select("COALESCE(SUM(total_co2e), 0)").
		Scan(&grandTotal).Error)

	assert.InDelta(t, grandTotal, total, 0.01*float64(len(monthly)))
}

func TestSummariesAreUserScoped(t *testing.T) {
	db := newTestDB(t)
	svc := NewSummaryService(db, testLogger())
	alice := newTestUser(t, db, "alice")
	bob := newTestUser(t, db, "bob")
	seedMixedActivities(t, db, alice.ID, time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC))

	items, err := svc.ByItem(bob.ID)
	require.NoError(t, err)
	assert.Empty(t, items)

	categories, err := svc.ByCategory(bob.ID)
	require.NoError(t, err)
	assert.Empty(t, categories)
}
