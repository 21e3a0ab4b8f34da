// Package corporate implements corporate finance formulas: capital budgeting,
// cash flow and balance-sheet ratios.
package corporate

import (
	"github.com/shopspring/decimal"

	"github.com/rudmsa/finformulas/internal/series"
	"github.com/rudmsa/finformulas/numeric"
)

var (
	one         = decimal.NewFromInt(1)
	daysPerYear = decimal.NewFromInt(numeric.DaysPerYear)
)

func CalcAssetToSalesRatio(totalAssets, salesRevenue decimal.Decimal) (decimal.Decimal, error) {
	return numeric.Ratio("CalcAssetToSalesRatio", totalAssets, salesRevenue)
}

func CalcAssetTurnoverRatio(salesRevenue, totalAssets decimal.Decimal) (decimal.Decimal, error) {
	return numeric.Ratio("CalcAssetTurnoverRatio", salesRevenue, totalAssets)
}

// CalcAverageCollectionPeriod converts a receivables turnover into days.
func CalcAverageCollectionPeriod(receivablesTurnover decimal.Decimal) (decimal.Decimal, error) {
	return numeric.Ratio("CalcAverageCollectionPeriod", daysPerYear, receivablesTurnover)
}

func CalcContributionMargin(pricePerProduct, variableCostPerProduct decimal.Decimal) decimal.Decimal {
	return pricePerProduct.Sub(variableCostPerProduct)
}

func CalcCurrentRatio(currentAssets, currentLiabilities decimal.Decimal) (decimal.Decimal, error) {
	return numeric.Ratio("CalcCurrentRatio", currentAssets, currentLiabilities)
}

// CalcDaysInInventory converts an inventory turnover into days.
func CalcDaysInInventory(inventoryTurnover decimal.Decimal) (decimal.Decimal, error) {
	return numeric.Ratio("CalcDaysInInventory", daysPerYear, inventoryTurnover)
}

func CalcDebtCoverageRatio(netOperatingIncome, debtService decimal.Decimal) (decimal.Decimal, error) {
	return numeric.Ratio("CalcDebtCoverageRatio", netOperatingIncome, debtService)
}

func CalcDebtRatio(totalLiabilities, totalAssets decimal.Decimal) (decimal.Decimal, error) {
	return numeric.Ratio("CalcDebtRatio", totalLiabilities, totalAssets)
}

func CalcDebtToEquityRatio(totalLiabilities, totalEquity decimal.Decimal) (decimal.Decimal, error) {
	return numeric.Ratio("CalcDebtToEquityRatio", totalLiabilities, totalEquity)
}

// CalcDiscountedPaybackPeriod calculates the number of periods a level
// periodic cash flow needs to recover initialInvestment once discounted at rate:
// ln(1 / (1 - I*r/CF)) / ln(1+r).
//
// The investment is never recovered when I*r >= CF: equality fails with
// ErrDivisionByZero, anything above with ErrInvalidDomain.
func CalcDiscountedPaybackPeriod(initialInvestment, rate, periodicCashFlow decimal.Decimal) (decimal.Decimal, error) {
	share, err := numeric.Div(initialInvestment.Mul(rate), periodicCashFlow)
	if err != nil {
		return numeric.Fail("CalcDiscountedPaybackPeriod", err)
	}
	inverse, err := numeric.Div(one, one.Sub(share))
	if err != nil {
		return numeric.Fail("CalcDiscountedPaybackPeriod", err)
	}
	num, err := numeric.Ln(inverse)
	if err != nil {
		return numeric.Fail("CalcDiscountedPaybackPeriod", err)
	}
	den, err := numeric.Ln(one.Add(rate))
	if err != nil {
		return numeric.Fail("CalcDiscountedPaybackPeriod", err)
	}
	return numeric.Ratio("CalcDiscountedPaybackPeriod", num, den)
}

// CalcEquivalentAnnualAnnuity spreads a project's NPV into a level annual
// amount over its life: r*NPV / (1 - (1+r)^-n).
func CalcEquivalentAnnualAnnuity(netPresentValue, ratePerPeriod, numberOfPeriods decimal.Decimal) (decimal.Decimal, error) {
	discount, err := numeric.Pow(one.Add(ratePerPeriod), numberOfPeriods.Neg())
	if err != nil {
		return numeric.Fail("CalcEquivalentAnnualAnnuity", err)
	}
	return numeric.Ratio("CalcEquivalentAnnualAnnuity", ratePerPeriod.Mul(netPresentValue), one.Sub(discount))
}

func CalcFreeCashFlowToEquity(netIncome, depreciationAndAmortization, capitalExpenditure, changeInWorkingCapital, netBorrowing decimal.Decimal) decimal.Decimal {
	return netIncome.
		Add(depreciationAndAmortization).
		Sub(changeInWorkingCapital).
		Sub(capitalExpenditure).
		Add(netBorrowing)
}

func CalcFreeCashFlowToFirm(ebit, taxRate, depreciationAndAmortization, capitalExpenditure, changeInWorkingCapital decimal.Decimal) decimal.Decimal {
	return ebit.Mul(one.Sub(taxRate)).
		Add(depreciationAndAmortization).
		Sub(capitalExpenditure).
		Sub(changeInWorkingCapital)
}

func CalcInterestCoverageRatio(ebit, interestExpense decimal.Decimal) (decimal.Decimal, error) {
	return numeric.Ratio("CalcInterestCoverageRatio", ebit, interestExpense)
}

func CalcInventoryTurnoverRatio(sales, inventory decimal.Decimal) (decimal.Decimal, error) {
	return numeric.Ratio("CalcInventoryTurnoverRatio", sales, inventory)
}

// CalcNetPresentValue discounts cashFlows at discountRate and subtracts
// initialInvestment. cashFlows[0] is the flow at the end of period 1, so it
// is discounted one full period. An empty series yields -initialInvestment.
func CalcNetPresentValue(initialInvestment decimal.Decimal, cashFlows []decimal.Decimal, discountRate decimal.Decimal) (decimal.Decimal, error) {
	pv, err := series.Fold(series.NewDiscount(discountRate), cashFlows)
	if err != nil {
		return numeric.Fail("CalcNetPresentValue", err)
	}
	return pv.Sub(initialInvestment), nil
}

func CalcNetProfitMargin(netIncome, salesRevenue decimal.Decimal) (decimal.Decimal, error) {
	return numeric.Ratio("CalcNetProfitMargin", netIncome, salesRevenue)
}

func CalcNetWorkingCapital(currentAssets, currentLiabilities decimal.Decimal) decimal.Decimal {
	return currentAssets.Sub(currentLiabilities)
}

func CalcPaybackPeriod(initialInvestment, periodicCashFlow decimal.Decimal) (decimal.Decimal, error) {
	return numeric.Ratio("CalcPaybackPeriod", initialInvestment, periodicCashFlow)
}

func CalcQuickRatio(quickAssets, currentLiabilities decimal.Decimal) (decimal.Decimal, error) {
	return numeric.Ratio("CalcQuickRatio", quickAssets, currentLiabilities)
}

func CalcReceivablesTurnoverRatio(salesRevenue, averageAccountsReceivable decimal.Decimal) (decimal.Decimal, error) {
	return numeric.Ratio("CalcReceivablesTurnoverRatio", salesRevenue, averageAccountsReceivable)
}

// CalcRetentionRatio is the share of net income kept after dividends.
func CalcRetentionRatio(netIncome, dividends decimal.Decimal) (decimal.Decimal, error) {
	return numeric.Ratio("CalcRetentionRatio", netIncome.Sub(dividends), netIncome)
}

func CalcReturnOnAssets(netIncome, averageTotalAssets decimal.Decimal) (decimal.Decimal, error) {
	return numeric.Ratio("CalcReturnOnAssets", netIncome, averageTotalAssets)
}

func CalcReturnOnEquity(netIncome, averageStockholdersEquity decimal.Decimal) (decimal.Decimal, error) {
	return numeric.Ratio("CalcReturnOnEquity", netIncome, averageStockholdersEquity)
}

func CalcReturnOnInvestment(earnings, initialInvestment decimal.Decimal) (decimal.Decimal, error) {
	return numeric.Ratio("CalcReturnOnInvestment", earnings.Sub(initialInvestment), initialInvestment)
}
