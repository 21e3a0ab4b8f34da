package accounting

import (
	"github.com/shopspring/decimal"

	"github.com/rudmsa/finformulas/numeric"
)

var (
	half        = decimal.NewFromFloat(0.5)
	daysPerYear = decimal.NewFromInt(numeric.DaysPerYear)
)

func CalcAssetTurnover(netSales, totalAssets decimal.Decimal) (decimal.Decimal, error) {
	return numeric.Ratio("CalcAssetTurnover", netSales, totalAssets)
}

// CalcAverageCollectionPeriod calculates AR / (annual credit sales / 365),
// evaluated as AR*365 / sales so no precision is lost to the inner division.
func CalcAverageCollectionPeriod(accountsReceivable, annualCreditSales decimal.Decimal) (decimal.Decimal, error) {
	return numeric.Ratio("CalcAverageCollectionPeriod", accountsReceivable.Mul(daysPerYear), annualCreditSales)
}

func CalcCashConversionCycle(inventoryConversionPeriod, receivablesConversionPeriod, payablesConversionPeriod decimal.Decimal) decimal.Decimal {
	return inventoryConversionPeriod.Add(receivablesConversionPeriod).Sub(payablesConversionPeriod)
}

func CalcInventoryConversionPeriod(inventoryTurnoverRatio decimal.Decimal) (decimal.Decimal, error) {
	return numeric.Ratio("CalcInventoryConversionPeriod", daysPerYear, inventoryTurnoverRatio)
}

// CalcInventoryConversionRatio calculates (sales * 0.5) / COGS.
func CalcInventoryConversionRatio(sales, costOfGoodsSold decimal.Decimal) (decimal.Decimal, error) {
	return numeric.Ratio("CalcInventoryConversionRatio", sales.Mul(half), costOfGoodsSold)
}

func CalcInventoryTurnover(sales, averageInventory decimal.Decimal) (decimal.Decimal, error) {
	return numeric.Ratio("CalcInventoryTurnover", sales, averageInventory)
}

func CalcPayablesConversionPeriod(accountsPayable, purchases decimal.Decimal) (decimal.Decimal, error) {
	return numeric.Ratio("CalcPayablesConversionPeriod", accountsPayable.Mul(daysPerYear), purchases)
}

func CalcReceivablesConversionPeriod(receivables, netSales decimal.Decimal) (decimal.Decimal, error) {
	return numeric.Ratio("CalcReceivablesConversionPeriod", receivables.Mul(daysPerYear), netSales)
}

func CalcReceivablesTurnoverRatio(netCreditSales, averageNetReceivables decimal.Decimal) (decimal.Decimal, error) {
	return numeric.Ratio("CalcReceivablesTurnoverRatio", netCreditSales, averageNetReceivables)
}
