package accounting

import (
	"github.com/shopspring/decimal"
)

// Balance sheet and income statement identities. None of them can fail.

func CalcAssets(liabilities, equity decimal.Decimal) decimal.Decimal {
	return liabilities.Add(equity)
}

func CalcEbit(revenue, operatingExpenses decimal.Decimal) decimal.Decimal {
	return revenue.Sub(operatingExpenses)
}

func CalcEquity(assets, liabilities decimal.Decimal) decimal.Decimal {
	return assets.Sub(liabilities)
}

func CalcGrossProfit(revenue, costOfGoodsSold decimal.Decimal) decimal.Decimal {
	return revenue.Sub(costOfGoodsSold)
}

func CalcLiabilities(assets, equity decimal.Decimal) decimal.Decimal {
	return assets.Sub(equity)
}

func CalcNetProfit(grossProfit, operatingExpenses, taxes, interest decimal.Decimal) decimal.Decimal {
	return grossProfit.Sub(operatingExpenses).Sub(taxes).Sub(interest)
}

func CalcOperatingProfit(grossProfit, operatingExpenses decimal.Decimal) decimal.Decimal {
	return grossProfit.Sub(operatingExpenses)
}

func CalcSalesRevenue(grossSales, salesOfReturnsAndAllowances decimal.Decimal) decimal.Decimal {
	return grossSales.Sub(salesOfReturnsAndAllowances)
}

// CalcEbitda adds depreciation and amortization back to EBIT.
func CalcEbitda(ebit, depreciation, amortization decimal.Decimal) decimal.Decimal {
	return ebit.Add(depreciation).Add(amortization)
}
