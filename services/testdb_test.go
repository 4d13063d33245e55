package services

import (
	"testing"
	"time"

	"github.com/Aishwarya-deoraj/Sustainability-tracker/models"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an in-memory SQLite database with the schema migrated
// and a small factor catalog seeded.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// keep everything on one connection so :memory: stays alive
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Category{},
		&models.EmissionFactor{},
		&models.User{},
		&models.Activity{},
	))

	categories := []models.Category{
		{Name: "Food"},
		{Name: "Energy"},
		{Name: "Shopping"},
	}
	require.NoError(t, db.Create(&categories).Error)

	factors := []models.EmissionFactor{
		{ItemName: "Beef", Unit: "kg", CO2ePerUnit: 27.0, CategoryID: categories[0].ID},
		{ItemName: "Chicken", Unit: "kg", CO2ePerUnit: 6.9, CategoryID: categories[0].ID},
		{ItemName: "Electricity", Unit: "USD spent", CO2ePerUnit: 0.5, CategoryID: categories[1].ID},
		{ItemName: "Clothing", Unit: "USD spent", CO2ePerUnit: 0.35, CategoryID: categories[2].ID},
	}
	require.NoError(t, db.Create(&factors).Error)

	return db
}

func newTestUser(t *testing.T, db *gorm.DB, username string) models.User {
	t.Helper()

	user := models.User{Username: username, LastLogin: time.Now()}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func factorByName(t *testing.T, db *gorm.DB, item, unit string) models.EmissionFactor {
	t.Helper()

	var factor models.EmissionFactor
	require.NoError(t, db.Where("item_name = ? AND unit = ?", item, unit).First(&factor).Error)
	return factor
}

func testLogger() *zap.Logger {
	return zap.NewNop()
}
