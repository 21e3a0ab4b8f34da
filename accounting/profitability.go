package accounting

import (
	"github.com/shopspring/decimal"

	"github.com/rudmsa/finformulas/numeric"
)

var one = decimal.NewFromInt(1)

func CalcEfficiencyRatio(nonInterestExpense, revenue decimal.Decimal) (decimal.Decimal, error) {
	return numeric.Ratio("CalcEfficiencyRatio", nonInterestExpense, revenue)
}

func CalcGrossProfitMargin(grossProfit, revenue decimal.Decimal) (decimal.Decimal, error) {
	return numeric.Ratio("CalcGrossProfitMargin", grossProfit, revenue)
}

func CalcOperatingMargin(operatingIncome, revenue decimal.Decimal) (decimal.Decimal, error) {
	return numeric.Ratio("CalcOperatingMargin", operatingIncome, revenue)
}

func CalcProfitMargin(netProfit, revenue decimal.Decimal) (decimal.Decimal, error) {
	return numeric.Ratio("CalcProfitMargin", netProfit, revenue)
}

func CalcReturnOnAssets(netIncome, totalAssets decimal.Decimal) (decimal.Decimal, error) {
	return numeric.Ratio("CalcReturnOnAssets", netIncome, totalAssets)
}

// CalcReturnOnCapital calculates after-tax EBIT over invested capital.
func CalcReturnOnCapital(ebit, taxRate, investedCapital decimal.Decimal) (decimal.Decimal, error) {
	return numeric.Ratio("CalcReturnOnCapital", ebit.Mul(one.Sub(taxRate)), investedCapital)
}

func CalcReturnOnEquity(netIncome, averageShareholderEquity decimal.Decimal) (decimal.Decimal, error) {
	return numeric.Ratio("CalcReturnOnEquity", netIncome, averageShareholderEquity)
}

func CalcReturnOnNetAssets(netIncome, fixedAssets, workingCapital decimal.Decimal) (decimal.Decimal, error) {
	return numeric.Ratio("CalcReturnOnNetAssets", netIncome, fixedAssets.Add(workingCapital))
}

func CalcRiskAdjustedReturnOnCapital(expectedReturn, economicCapital decimal.Decimal) (decimal.Decimal, error) {
	return numeric.Ratio("CalcRiskAdjustedReturnOnCapital", expectedReturn, economicCapital)
}

// CalcReturnOnInvestment calculates (gain - cost) / cost.
func CalcReturnOnInvestment(gain, cost decimal.Decimal) (decimal.Decimal, error) {
	return numeric.Ratio("CalcReturnOnInvestment", gain.Sub(cost), cost)
}
