package accounting

import (
	"github.com/shopspring/decimal"

	"github.com/rudmsa/finformulas/numeric"
)

func CalcCashRatio(cash, marketableSecurities, currentLiabilities decimal.Decimal) (decimal.Decimal, error) {
	return numeric.Ratio("CalcCashRatio", cash.Add(marketableSecurities), currentLiabilities)
}

func CalcCurrentRatio(currentAssets, currentLiabilities decimal.Decimal) (decimal.Decimal, error) {
	return numeric.Ratio("CalcCurrentRatio", currentAssets, currentLiabilities)
}

func CalcOperatingCashFlowRatio(operatingCashFlow, totalDebts decimal.Decimal) (decimal.Decimal, error) {
	return numeric.Ratio("CalcOperatingCashFlowRatio", operatingCashFlow, totalDebts)
}

// CalcQuickRatio excludes inventories from current assets.
func CalcQuickRatio(currentAssets, inventories, currentLiabilities decimal.Decimal) (decimal.Decimal, error) {
	return numeric.Ratio("CalcQuickRatio", currentAssets.Sub(inventories), currentLiabilities)
}
