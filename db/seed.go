package db

import (
	"fmt"

	"github.com/Aishwarya-deoraj/Sustainability-tracker/models"
)

// SeedCatalog fills the category and emission-factor tables on first boot.
// Factor values are kg CO2e per unit; "USD spent" units mark spend-based
// factors.
func SeedCatalog() {
	var count int64
	DB.Model(&models.Category{}).Count(&count)
	if count == 0 {
		categories := []models.Category{
			{Name: "Food"},
			{Name: "Transportation"},
			{Name: "Energy"},
			{Name: "Shopping"},
		}
		DB.Create(&categories)

		byName := make(map[string]uint, len(categories))
		for _, c := range categories {
			byName[c.Name] = c.ID
		}

		factors := []models.EmissionFactor{
			{ItemName: "Beef", Unit: "kg", CO2ePerUnit: 27.0, CategoryID: byName["Food"]},
			{ItemName: "Chicken", Unit: "kg", CO2ePerUnit: 6.9, CategoryID: byName["Food"]},
			{ItemName: "Rice", Unit: "kg", CO2ePerUnit: 4.0, CategoryID: byName["Food"]},
			{ItemName: "Milk", Unit: "liter", CO2ePerUnit: 3.2, CategoryID: byName["Food"]},
			{ItemName: "Car (gasoline)", Unit: "km", CO2ePerUnit: 0.192, CategoryID: byName["Transportation"]},
			{ItemName: "Domestic flight", Unit: "km", CO2ePerUnit: 0.255, CategoryID: byName["Transportation"]},
			{ItemName: "Train", Unit: "km", CO2ePerUnit: 0.041, CategoryID: byName["Transportation"]},
			{ItemName: "Electricity", Unit: "kWh", CO2ePerUnit: 0.475, CategoryID: byName["Energy"]},
			{ItemName: "Natural gas", Unit: "kWh", CO2ePerUnit: 0.202, CategoryID: byName["Energy"]},
			{ItemName: "Electricity", Unit: "USD spent", CO2ePerUnit: 0.5, CategoryID: byName["Energy"]},
			{ItemName: "Clothing", Unit: "USD spent", CO2ePerUnit: 0.35, CategoryID: byName["Shopping"]},
			{ItemName: "Electronics", Unit: "USD spent", CO2ePerUnit: 0.45, CategoryID: byName["Shopping"]},
		}
		DB.Create(&factors)
		fmt.Println("✅ Seed emission catalog created")
	}
}
