package models

import "time"

type SignUpInput struct {
	Username string `json:"username" binding:"required" validate:"min=3,max=40"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required" validate:"min=8"`
}

type SignInInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LegacyUserInput creates a user without a password. Kept for older
// clients; posting an existing username returns that user's id.
type LegacyUserInput struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email"`
}

type ActivityCreateInput struct {
	FactorID       uint       `json:"factor_id" binding:"required"`
	Quantity       float64    `json:"quantity" binding:"required,gt=0"`
	MonetaryAmount float64    `json:"monetary_amount" binding:"gte=0"`
	Date           *time.Time `json:"date"`
}

// ActivityUpdateInput distinguishes "field absent" from "field zero":
// nil pointers keep the stored value, non-nil ones override it.
// total_co2e is never part of the payload; it is always recomputed.
type ActivityUpdateInput struct {
	FactorID       *uint      `json:"factor_id"`
	Quantity       *float64   `json:"quantity"`
	MonetaryAmount *float64   `json:"monetary_amount"`
	Date           *time.Time `json:"date"`
}

// EnrichedActivity is an activity joined with its factor and category,
// shaped for the activity list view.
type EnrichedActivity struct {
	ID             uint      `json:"id"`
	Name           string    `json:"name"`
	Category       string    `json:"category"`
	Quantity       float64   `json:"quantity"`
	MonetaryAmount float64   `json:"monetary_amount"`
	Emissions      float64   `json:"emissions"`
	Date           time.Time `json:"date"`
	Unit           string    `json:"unit"`
}

type ItemSummary struct {
	ItemName    string  `json:"item_name"`
	TotalCO2eKg float64 `json:"total_co2e_kg"`
}

type SectorSummary struct {
	Sector           string  `json:"sector"`
	TotalSpendingUSD float64 `json:"total_spending_usd"`
	TotalCO2eKg      float64 `json:"total_co2e_kg"`
}

type CategorySummary struct {
	Category    string  `json:"category"`
	TotalCO2eKg float64 `json:"total_co2e_kg"`
}

// BiggestImpactors holds the single highest-emission item and sector.
// Either side is null when the user has no activities of that kind.
type BiggestImpactors struct {
	BiggestPhysical *ItemSummary   `json:"biggest_physical"`
	BiggestEconomic *SectorSummary `json:"biggest_economic"`
}

// TimeBucket is one point of a daily/weekly/monthly series.
type TimeBucket struct {
	Label     string  `json:"label"`
	Emissions float64 `json:"emissions"`
}
