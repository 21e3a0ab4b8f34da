package accounting

import (
	"github.com/shopspring/decimal"

	"github.com/rudmsa/finformulas/numeric"
)

func CalcDividendCover(earningsPerShare, dividendsPerShare decimal.Decimal) (decimal.Decimal, error) {
	return numeric.Ratio("CalcDividendCover", earningsPerShare, dividendsPerShare)
}

func CalcDividendsPerShare(dividendsPaid, numberOfShares decimal.Decimal) (decimal.Decimal, error) {
	return numeric.Ratio("CalcDividendsPerShare", dividendsPaid, numberOfShares)
}

func CalcDividendYield(annualDividendPerShare, pricePerShare decimal.Decimal) (decimal.Decimal, error) {
	return numeric.Ratio("CalcDividendYield", annualDividendPerShare, pricePerShare)
}

func CalcEarningsPerShare(netEarnings, numberOfShares decimal.Decimal) (decimal.Decimal, error) {
	return numeric.Ratio("CalcEarningsPerShare", netEarnings, numberOfShares)
}

func CalcPayoutRatio(dividends, earnings decimal.Decimal) (decimal.Decimal, error) {
	return numeric.Ratio("CalcPayoutRatio", dividends, earnings)
}

func CalcPegRatio(pricePerEarnings, annualEpsGrowth decimal.Decimal) (decimal.Decimal, error) {
	return numeric.Ratio("CalcPegRatio", pricePerEarnings, annualEpsGrowth)
}

func CalcPriceSalesRatio(pricePerShare, revenuePerShare decimal.Decimal) (decimal.Decimal, error) {
	return numeric.Ratio("CalcPriceSalesRatio", pricePerShare, revenuePerShare)
}
