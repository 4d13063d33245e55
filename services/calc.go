package services

import (
	"fmt"
	"strings"

	"github.com/Aishwarya-deoraj/Sustainability-tracker/models"
)

// economicMarker flags spend-based factors. It lives in the free-text unit
// field ("USD spent") rather than a separate column; IsEconomicFactor is
// the single predicate for it so physical and economic filters stay exact
// complements everywhere.
const economicMarker = "USD"

func IsEconomicFactor(unit string) bool {
	return strings.Contains(unit, economicMarker)
}

// ComputeTotalCO2e applies the hybrid emission rule. Spend-based factors
// multiply the monetary amount by the factor coefficient and store a
// conventional quantity of 1; physical factors multiply the quantity and
// keep the monetary amount as given. No rounding happens here - summaries
// round, raw activities don't.
func ComputeTotalCO2e(factor *models.EmissionFactor, quantity, monetaryAmount float64) (totalCO2e, quantityStored, monetaryStored float64, err error) {
	if IsEconomicFactor(factor.Unit) {
		if monetaryAmount <= 0 {
			return 0, 0, 0, fmt.Errorf("%w: monetary amount must be positive for economic activities", ErrValidation)
		}
		return monetaryAmount * factor.CO2ePerUnit, 1, monetaryAmount, nil
	}

	return quantity * factor.CO2ePerUnit, quantity, monetaryAmount, nil
}
