package services

import (
	"errors"
	"testing"

	"github.com/Aishwarya-deoraj/Sustainability-tracker/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeTotalCO2ePhysical(t *testing.T) {
	beef := &models.EmissionFactor{ItemName: "Beef", Unit: "kg", CO2ePerUnit: 27.0}

	total, quantity, monetary, err := ComputeTotalCO2e(beef, 10, 0)
	require.NoError(t, err)
	assert.InDelta(t, 270.0, total, 1e-9)
	assert.Equal(t, 10.0, quantity)
	assert.Equal(t, 0.0, monetary)
}

func TestComputeTotalCO2ePhysicalKeepsMonetaryAmount(t *testing.T) {
	train := &models.EmissionFactor{ItemName: "Train", Unit: "km", CO2ePerUnit: 0.041}

	total, _, monetary, err := ComputeTotalCO2e(train, 100, 12.5)
	require.NoError(t, err)
	assert.InDelta(t, 4.1, total, 1e-9)
	// stored but not part of the formula
	assert.Equal(t, 12.5, monetary)
}

func TestComputeTotalCO2eEconomic(t *testing.T) {
	electricity := &models.EmissionFactor{ItemName: "Electricity", Unit: "USD spent", CO2ePerUnit: 0.5}

	total, quantity, monetary, err := ComputeTotalCO2e(electricity, 42, 100)
	require.NoError(t, err)
	assert.InDelta(t, 50.0, total, 1e-9)
	assert.Equal(t, 1.0, quantity, "economic activities store a conventional quantity of 1")
	assert.Equal(t, 100.0, monetary)
}

func TestComputeTotalCO2eEconomicRejectsNonPositiveAmount(t *testing.T) {
	electricity := &models.EmissionFactor{ItemName: "Electricity", Unit: "USD spent", CO2ePerUnit: 0.5}

	for _, amount := range []float64{0, -1, -100} {
		_, _, _, err := ComputeTotalCO2e(electricity, 1, amount)
		assert.True(t, errors.Is(err, ErrValidation), "amount %v must fail validation", amount)
	}
}

func TestIsEconomicFactor(t *testing.T) {
	economic := []string{"USD", "USD spent", "spent USD"}
	physical := []string{"kg", "kWh", "km", "liter", "usd"} // marker is case-sensitive

	for _, unit := range economic {
		assert.True(t, IsEconomicFactor(unit), "unit %q should be economic", unit)
	}
	for _, unit := range physical {
		assert.False(t, IsEconomicFactor(unit), "unit %q should be physical", unit)
	}
}
