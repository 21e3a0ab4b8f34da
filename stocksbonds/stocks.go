// Package stocksbonds implements equity valuation, per-share, yield and bond
// pricing formulas.
package stocksbonds

import (
	"github.com/shopspring/decimal"

	"github.com/rudmsa/finformulas/numeric"
)

var one = decimal.NewFromInt(1)

func CalcBidAskSpread(bid, ask decimal.Decimal) decimal.Decimal {
	return ask.Sub(bid)
}

func CalcBookValuePerShare(totalCommonStockholdersEquity, numberOfCommonShares decimal.Decimal) (decimal.Decimal, error) {
	return numeric.Ratio("CalcBookValuePerShare", totalCommonStockholdersEquity, numberOfCommonShares)
}

// CalcCapitalAssetPricingModel calculates the expected return
// rf + beta*(rm - rf).
func CalcCapitalAssetPricingModel(riskFreeRate, beta, returnOnTheMarket decimal.Decimal) decimal.Decimal {
	return riskFreeRate.Add(beta.Mul(returnOnTheMarket.Sub(riskFreeRate)))
}

func CalcCapitalGainsYield(initialStockPrice, endingStockPrice decimal.Decimal) (decimal.Decimal, error) {
	return numeric.Ratio("CalcCapitalGainsYield", endingStockPrice.Sub(initialStockPrice), initialStockPrice)
}

func CalcDilutedEarningsPerShare(netIncome, averageShares, otherConvertibleInstruments decimal.Decimal) (decimal.Decimal, error) {
	return numeric.Ratio("CalcDilutedEarningsPerShare", netIncome, averageShares.Add(otherConvertibleInstruments))
}

func CalcDividendPayoutRatio(dividends, netIncome decimal.Decimal) (decimal.Decimal, error) {
	return numeric.Ratio("CalcDividendPayoutRatio", dividends, netIncome)
}

func CalcDividendYield(dividendsForThePeriod, initialPriceForThePeriod decimal.Decimal) (decimal.Decimal, error) {
	return numeric.Ratio("CalcDividendYield", dividendsForThePeriod, initialPriceForThePeriod)
}

func CalcDividendsPerShare(dividends, numberOfShares decimal.Decimal) (decimal.Decimal, error) {
	return numeric.Ratio("CalcDividendsPerShare", dividends, numberOfShares)
}

func CalcEarningsPerShare(netIncome, weightedAverageOutstandingShares decimal.Decimal) (decimal.Decimal, error) {
	return numeric.Ratio("CalcEarningsPerShare", netIncome, weightedAverageOutstandingShares)
}

func CalcEquityMultiplier(totalAssets, stockholdersEquity decimal.Decimal) (decimal.Decimal, error) {
	return numeric.Ratio("CalcEquityMultiplier", totalAssets, stockholdersEquity)
}

// CalcEquityMultiplierFromEquityRatio is CalcEquityMultiplier expressed through
// the equity ratio (equity / assets).
func CalcEquityMultiplierFromEquityRatio(equityRatio decimal.Decimal) (decimal.Decimal, error) {
	return numeric.Ratio("CalcEquityMultiplierFromEquityRatio", one, equityRatio)
}

func CalcEstimatedEarnings(forecastedSales, forecastedExpenses decimal.Decimal) decimal.Decimal {
	return forecastedSales.Sub(forecastedExpenses)
}

func CalcEstimatedEarningsWithProfitMargin(projectedSales, projectedNetProfitMargin decimal.Decimal) decimal.Decimal {
	return projectedSales.Mul(projectedNetProfitMargin)
}

// CalcNetAssetValue calculates the per-share value of a fund.
func CalcNetAssetValue(fundAssets, fundLiabilities, outstandingShares decimal.Decimal) (decimal.Decimal, error) {
	return numeric.Ratio("CalcNetAssetValue", fundAssets.Sub(fundLiabilities), outstandingShares)
}

func CalcPreferredStockValue(dividend, discountRate decimal.Decimal) (decimal.Decimal, error) {
	return numeric.Ratio("CalcPreferredStockValue", dividend, discountRate)
}

func CalcRateOfReturn(dividend, price decimal.Decimal) (decimal.Decimal, error) {
	return numeric.Ratio("CalcRateOfReturn", dividend, price)
}

func CalcPriceToBookValueRatio(marketPricePerShare, bookValuePerShare decimal.Decimal) (decimal.Decimal, error) {
	return numeric.Ratio("CalcPriceToBookValueRatio", marketPricePerShare, bookValuePerShare)
}

func CalcPriceToEarningsRatio(pricePerShare, earningsPerShare decimal.Decimal) (decimal.Decimal, error) {
	return numeric.Ratio("CalcPriceToEarningsRatio", pricePerShare, earningsPerShare)
}

func CalcPriceToSalesRatio(pricePerShare, salesPerShare decimal.Decimal) (decimal.Decimal, error) {
	return numeric.Ratio("CalcPriceToSalesRatio", pricePerShare, salesPerShare)
}

func CalcRiskPremium(assetOrInvestmentReturn, riskFreeReturn decimal.Decimal) decimal.Decimal {
	return assetOrInvestmentReturn.Sub(riskFreeReturn)
}

// CalcStockPresentValueWithConstantGrowth is the Gordon growth model
// D1 / (k - g).
func CalcStockPresentValueWithConstantGrowth(estimatedDividendsForNextPeriod, requiredRateOfReturn, growthRate decimal.Decimal) (decimal.Decimal, error) {
	return numeric.Ratio("CalcStockPresentValueWithConstantGrowth", estimatedDividendsForNextPeriod, requiredRateOfReturn.Sub(growthRate))
}

func CalcGrowthRate(retentionRate, returnOnEquity decimal.Decimal) decimal.Decimal {
	return retentionRate.Mul(returnOnEquity)
}

func CalcRequiredRateOfReturn(dividendYield, growthRate decimal.Decimal) decimal.Decimal {
	return dividendYield.Add(growthRate)
}

func CalcStockPresentValueWithZeroGrowth(dividendsPerPeriod, requiredRateOfReturn decimal.Decimal) (decimal.Decimal, error) {
	return numeric.Ratio("CalcStockPresentValueWithZeroGrowth", dividendsPerPeriod, requiredRateOfReturn)
}

func CalcTotalStockReturnPercentage(initialStockPrice, endingStockPrice, dividends decimal.Decimal) (decimal.Decimal, error) {
	return numeric.Ratio("CalcTotalStockReturnPercentage", CalcTotalStockReturnCash(initialStockPrice, endingStockPrice, dividends), initialStockPrice)
}

func CalcTotalStockReturnCash(initialStockPrice, endingStockPrice, dividends decimal.Decimal) decimal.Decimal {
	return endingStockPrice.Sub(initialStockPrice).Add(dividends)
}

func CalcTotalStockReturnFromYields(dividendYield, capitalGainsYield decimal.Decimal) decimal.Decimal {
	return dividendYield.Add(capitalGainsYield)
}
