package accounting

import (
	"github.com/shopspring/decimal"

	"github.com/rudmsa/finformulas/numeric"
)

func CalcBookValue(acquisitionCost, depreciation decimal.Decimal) decimal.Decimal {
	return acquisitionCost.Sub(depreciation)
}

// CalcDecliningBalance calculates one year's depreciation charge.
func CalcDecliningBalance(depreciationRate, bookValueAtBeginningOfYear decimal.Decimal) decimal.Decimal {
	return depreciationRate.Mul(bookValueAtBeginningOfYear)
}

// CalcUnitsOfProduction calculates the depreciation charge for actualProduction
// units: (cost - residual) / estimated total * actual.
func CalcUnitsOfProduction(costOfAsset, residualValue, estimatedTotalProduction, actualProduction decimal.Decimal) (decimal.Decimal, error) {
	return numeric.Ratio("CalcUnitsOfProduction", costOfAsset.Sub(residualValue).Mul(actualProduction), estimatedTotalProduction)
}

func CalcStraightLineMethod(costOfFixedAsset, residualValue, usefulLifeOfAsset decimal.Decimal) (decimal.Decimal, error) {
	return numeric.Ratio("CalcStraightLineMethod", costOfFixedAsset.Sub(residualValue), usefulLifeOfAsset)
}
