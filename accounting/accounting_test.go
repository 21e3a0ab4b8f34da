package accounting

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rudmsa/finformulas/numeric"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

type ratio func(a, b decimal.Decimal) (decimal.Decimal, error)

func TestTwoArgumentRatios(t *testing.T) {
	tests := []struct {
		name string
		fn   ratio
		a, b string
		want string
	}{
		{"asset turnover", CalcAssetTurnover, "500", "200", "2.5"},
		{"average collection period", CalcAverageCollectionPeriod, "500", "200", "912.5"},
		{"inventory conversion ratio", CalcInventoryConversionRatio, "500", "200", "1.25"},
		{"inventory turnover", CalcInventoryTurnover, "500", "200", "2.5"},
		{"payables conversion period", CalcPayablesConversionPeriod, "500", "200", "912.5"},
		{"receivables conversion period", CalcReceivablesConversionPeriod, "500", "200", "912.5"},
		{"receivables turnover", CalcReceivablesTurnoverRatio, "500", "200", "2.5"},

		{"debt to equity", CalcDebtEquityRatio, "500", "200", "2.5"},
		{"debt ratio", CalcDebtRatio, "500", "200", "2.5"},
		{"debt service coverage", CalcDebtServiceCoverageRatio, "500", "200", "2.5"},
		{"long term debt to equity", CalcLongTermDebtEquityRatio, "500", "200", "2.5"},

		{"current ratio", CalcCurrentRatio, "500", "200", "2.5"},
		{"operating cash flow ratio", CalcOperatingCashFlowRatio, "500", "200", "2.5"},

		{"dividend cover", CalcDividendCover, "500", "200", "2.5"},
		{"dividends per share", CalcDividendsPerShare, "500", "200", "2.5"},
		{"dividend yield", CalcDividendYield, "5", "200", "0.025"},
		{"earnings per share", CalcEarningsPerShare, "500", "200", "2.5"},
		{"payout ratio", CalcPayoutRatio, "500", "10000", "0.05"},
		{"peg ratio", CalcPegRatio, "500", "200", "2.5"},
		{"price to sales", CalcPriceSalesRatio, "500", "200", "2.5"},

		{"efficiency ratio", CalcEfficiencyRatio, "500", "200", "2.5"},
		{"gross profit margin", CalcGrossProfitMargin, "500", "200", "2.5"},
		{"operating margin", CalcOperatingMargin, "500", "200", "2.5"},
		{"profit margin", CalcProfitMargin, "500", "200", "2.5"},
		{"return on assets", CalcReturnOnAssets, "500", "200", "2.5"},
		{"return on equity", CalcReturnOnEquity, "500", "200", "2.5"},
		{"risk adjusted return on capital", CalcRiskAdjustedReturnOnCapital, "500", "200", "2.5"},
		{"return on investment", CalcReturnOnInvestment, "500", "200", "1.5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.fn(d(tt.a), d(tt.b))
			require.NoError(t, err)
			assert.Truef(t, d(tt.want).Equal(got), "want %s, got %s", tt.want, got)

			_, err = tt.fn(d(tt.a), decimal.Zero)
			assert.ErrorIs(t, err, numeric.ErrDivisionByZero)
		})
	}
}

func TestActivity(t *testing.T) {
	assert.True(t, CalcCashConversionCycle(d("500"), d("200"), d("100")).Equal(d("600")))

	got, err := CalcInventoryConversionPeriod(d("365"))
	require.NoError(t, err)
	assert.True(t, got.Equal(d("1")))

	_, err = CalcInventoryConversionPeriod(decimal.Zero)
	assert.ErrorIs(t, err, numeric.ErrDivisionByZero)
	assert.Contains(t, err.Error(), "CalcInventoryConversionPeriod: ")
}

func TestBasic(t *testing.T) {
	assert.True(t, CalcAssets(d("300"), d("200")).Equal(d("500")))
	assert.True(t, CalcEbit(d("500"), d("200")).Equal(d("300")))
	assert.True(t, CalcEquity(d("300"), d("200")).Equal(d("100")))
	assert.True(t, CalcGrossProfit(d("500"), d("200")).Equal(d("300")))
	assert.True(t, CalcLiabilities(d("500"), d("200")).Equal(d("300")))
	assert.True(t, CalcNetProfit(d("500"), d("200"), d("100"), d("100")).Equal(d("100")))
	assert.True(t, CalcOperatingProfit(d("500"), d("200")).Equal(d("300")))
	assert.True(t, CalcSalesRevenue(d("500"), d("200")).Equal(d("300")))
	assert.True(t, CalcEbitda(d("500"), d("200"), d("100")).Equal(d("800")))
}

func TestBalanceSheetIdentities(t *testing.T) {
	liabilities, equity := d("1234.56"), d("789.01")
	assets := CalcAssets(liabilities, equity)

	assert.True(t, assets.Sub(equity).Equal(liabilities))
	assert.True(t, CalcLiabilities(assets, equity).Equal(liabilities))
	assert.True(t, CalcEquity(assets, liabilities).Equal(equity))

	revenue, cogs := d("0.1"), d("0.2")
	assert.True(t, CalcGrossProfit(revenue, cogs).Add(cogs).Equal(revenue))
}

func TestDepreciation(t *testing.T) {
	assert.True(t, CalcBookValue(d("500"), d("200")).Equal(d("300")))
	assert.True(t, CalcDecliningBalance(d("0.5"), d("200")).Equal(d("100")))

	got, err := CalcUnitsOfProduction(d("500"), d("200"), d("100"), d("150"))
	require.NoError(t, err)
	assert.True(t, got.Equal(d("450")))

	got, err = CalcStraightLineMethod(d("500"), d("200"), d("10"))
	require.NoError(t, err)
	assert.True(t, got.Equal(d("30")))

	_, err = CalcUnitsOfProduction(d("500"), d("200"), decimal.Zero, d("150"))
	assert.ErrorIs(t, err, numeric.ErrDivisionByZero)

	_, err = CalcStraightLineMethod(d("500"), d("200"), decimal.Zero)
	assert.ErrorIs(t, err, numeric.ErrDivisionByZero)
}

func TestLiquidity(t *testing.T) {
	got, err := CalcCashRatio(d("500"), d("200"), d("100"))
	require.NoError(t, err)
	assert.True(t, got.Equal(d("7")))

	got, err = CalcQuickRatio(d("500"), d("200"), d("100"))
	require.NoError(t, err)
	assert.True(t, got.Equal(d("3")))

	_, err = CalcCashRatio(d("500"), d("200"), decimal.Zero)
	assert.ErrorIs(t, err, numeric.ErrDivisionByZero)
}

func TestProfitability(t *testing.T) {
	got, err := CalcReturnOnCapital(d("500"), d("0.2"), d("100"))
	require.NoError(t, err)
	assert.True(t, got.Equal(d("4")))

	got, err = CalcReturnOnNetAssets(d("500"), d("200"), d("50"))
	require.NoError(t, err)
	assert.True(t, got.Equal(d("2")))

	_, err = CalcReturnOnNetAssets(d("500"), d("200"), d("-200"))
	assert.ErrorIs(t, err, numeric.ErrDivisionByZero)
}

func TestDecimalExactness(t *testing.T) {
	// 0.1 + 0.2 sums exactly in decimal arithmetic
	got, err := CalcCashRatio(d("0.1"), d("0.2"), d("1"))
	require.NoError(t, err)
	assert.Equal(t, "0.3", got.String())
}
