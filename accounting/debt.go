package accounting

import (
	"github.com/shopspring/decimal"

	"github.com/rudmsa/finformulas/numeric"
)

func CalcDebtEquityRatio(totalLiabilities, shareholderEquity decimal.Decimal) (decimal.Decimal, error) {
	return numeric.Ratio("CalcDebtEquityRatio", totalLiabilities, shareholderEquity)
}

func CalcDebtRatio(totalLiabilities, totalAssets decimal.Decimal) (decimal.Decimal, error) {
	return numeric.Ratio("CalcDebtRatio", totalLiabilities, totalAssets)
}

func CalcDebtServiceCoverageRatio(netOperatingIncome, totalDebtService decimal.Decimal) (decimal.Decimal, error) {
	return numeric.Ratio("CalcDebtServiceCoverageRatio", netOperatingIncome, totalDebtService)
}

func CalcLongTermDebtEquityRatio(longTermLiabilities, equity decimal.Decimal) (decimal.Decimal, error) {
	return numeric.Ratio("CalcLongTermDebtEquityRatio", longTermLiabilities, equity)
}
