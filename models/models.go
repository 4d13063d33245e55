package models

import "time"

type Category struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"unique" json:"name"`
}

// EmissionFactor converts one unit of an activity into kg CO2e.
// Factors whose Unit contains "USD" are spend-based (economic); everything
// else is a physical unit such as "kg", "kWh" or "km".
type EmissionFactor struct {
	ID          uint     `gorm:"primaryKey" json:"id"`
	ItemName    string   `gorm:"index" json:"item_name"`
	Unit        string   `json:"unit"`
	CO2ePerUnit float64  `gorm:"column:co2e_per_unit" json:"co2e_per_unit"`
	CategoryID  uint     `json:"category_id"`
	Category    Category `gorm:"foreignKey:CategoryID" json:"-"`
}

type User struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	Username     string     `gorm:"unique" json:"username"`
	Email        *string    `gorm:"uniqueIndex" json:"email,omitempty"`
	PasswordHash string     `json:"-"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"created_at"`
	LastLogin    time.Time  `json:"last_login"`
	Activities   []Activity `gorm:"foreignKey:UserID" json:"-"`
}

// Activity is one tracked emission event. TotalCO2e is derived on every
// write and never accepted from the caller. UnitUsed keeps the factor's
// unit as it was at computation time, so later factor edits don't
// reinterpret history.
type Activity struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	UserID         uint      `gorm:"index" json:"user_id"`
	FactorID       uint      `json:"factor_id"`
	Quantity       float64   `json:"quantity"`
	MonetaryAmount float64   `json:"monetary_amount"`
	TotalCO2e      float64   `gorm:"column:total_co2e" json:"total_co2e"`
	Date           time.Time `gorm:"index" json:"date"`
	UnitUsed       string    `json:"unit_used"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
}
