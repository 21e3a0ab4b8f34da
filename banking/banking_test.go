package banking

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

func assertRounded(t *testing.T, want string, got decimal.Decimal, places int32) {
	t.Helper()
	rounded := numeric.Round(got, places)
	assert.Truef(t, d(want).Equal(rounded), "want %s, got %s (unrounded %s)", want, rounded, got)
}

func TestFormulas(t *testing.T) {
	type formula func() (decimal.Decimal, error)

	tests := []struct {
		name   string
		fn     formula
		want   string
		places int32
	}{
		{
			"annual percentage yield",
			func() (decimal.Decimal, error) { return CalcAnnualPercentageYield(d("0.04"), d("12")) },
			"0.0407415", 7,
		},
		{
			"balloon loan payment",
			func() (decimal.Decimal, error) { return CalcBalloonLoanPayment(d("10000"), d("2000"), d("0.04"), d("10")) },
			"1066.33", 2,
		},
		{
			"compound interest",
			func() (decimal.Decimal, error) { return CalcCompoundInterest(d("1000"), d("0.07"), d("10")) },
			"967.15", 2,
		},
		{
			"continuous compounding",
			func() (decimal.Decimal, error) { return CalcContinuousCompounding(d("1000"), d("0.07"), d("10")) },
			"2013.75", 2,
		},
		{
			"debt to income",
			func() (decimal.Decimal, error) { return CalcDebtToIncomeRatio(d("250"), d("1000")) },
			"0.25", 2,
		},
		{
			"balloon balance",
			func() (decimal.Decimal, error) { return CalcBalloonBalanceOfLoan(d("100000"), d("500"), d("0.04"), d("25")) },
			"245760.68", 2,
		},
		{
			"loan payment",
			func() (decimal.Decimal, error) { return CalcLoanPayment(d("1000"), d("0.04"), d("10")) },
			"123.29", 2,
		},
		{
			"remaining balance",
			func() (decimal.Decimal, error) { return CalcRemainingBalanceOnLoan(d("10000"), d("250"), d("0.04"), d("10")) },
			"11800.92", 2,
		},
		{
			"loan to deposit",
			func() (decimal.Decimal, error) { return CalcLoanToDepositRatio(d("10000"), d("4000")) },
			"2.5", 2,
		},
		{
			"loan to value",
			func() (decimal.Decimal, error) { return CalcLoanToValueRatio(d("150000"), d("130000")) },
			"1.15", 2,
		},
		{
			"simple interest rate",
			func() (decimal.Decimal, error) { return CalcSimpleInterestRate(d("1000"), d("400"), d("10")) },
			"0.04", 2,
		},
		{
			"simple interest principal",
			func() (decimal.Decimal, error) { return CalcSimpleInterestPrincipal(d("400"), d("0.04"), d("10")) },
			"1000", 2,
		},
		{
			"simple interest time",
			func() (decimal.Decimal, error) { return CalcSimpleInterestTime(d("1000"), d("400"), d("0.04")) },
			"10", 2,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.fn()
			require.NoError(t, err)
			assertRounded(t, tt.want, got, tt.places)
		})
	}
}

func TestCalcSimpleInterest(t *testing.T) {
	assert.True(t, CalcSimpleInterest(d("1000"), d("0.04"), d("10")).Equal(d("400")))
}

func TestSimpleInterestSolvers(t *testing.T) {
	principal, rate, time := d("2500"), d("0.035"), d("3.5")
	interest := CalcSimpleInterest(principal, rate, time)

	gotRate, err := CalcSimpleInterestRate(principal, interest, time)
	require.NoError(t, err)
	assert.True(t, gotRate.Equal(rate))

	gotPrincipal, err := CalcSimpleInterestPrincipal(interest, rate, time)
	require.NoError(t, err)
	assert.True(t, gotPrincipal.Equal(principal))

	gotTime, err := CalcSimpleInterestTime(principal, interest, rate)
	require.NoError(t, err)
	assert.True(t, gotTime.Equal(time))
}

func TestFractionalPeriods(t *testing.T) {
	got, err := CalcCompoundInterest(d("1000"), d("0.1"), d("0.5"))
	require.NoError(t, err)
	// sqrt(1.1) - 1
	assertRounded(t, "48.81", got, 2)
}

func TestLoanPaymentAmortisesToZero(t *testing.T) {
	pv, rate, n := d("25000"), d("0.005"), d("60")
	payment, err := CalcLoanPayment(pv, rate, n)
	require.NoError(t, err)

	remaining, err := CalcRemainingBalanceOnLoan(pv, payment, rate, n)
	require.NoError(t, err)
	assertRounded(t, "0", remaining, 6)
}

func TestBalloonPaymentLeavesBalloon(t *testing.T) {
	pv, balloon, rate, n := d("10000"), d("2000"), d("0.04"), d("10")
	payment, err := CalcBalloonLoanPayment(pv, balloon, rate, n)
	require.NoError(t, err)

	left, err := CalcBalloonBalanceOfLoan(pv, payment, rate, n)
	require.NoError(t, err)
	assertRounded(t, "2000", left, 6)
}

func TestErrors(t *testing.T) {
	tests := []struct {
		name    string
		fn      func() (decimal.Decimal, error)
		wantErr error
	}{
		{"apy with zero compounding", func() (decimal.Decimal, error) { return CalcAnnualPercentageYield(d("0.04"), decimal.Zero) }, numeric.ErrDivisionByZero},
		{"loan payment at zero rate", func() (decimal.Decimal, error) { return CalcLoanPayment(d("1000"), decimal.Zero, d("10")) }, numeric.ErrDivisionByZero},
		{"remaining balance at zero rate", func() (decimal.Decimal, error) {
			return CalcRemainingBalanceOnLoan(d("1000"), d("100"), decimal.Zero, d("10"))
		}, numeric.ErrDivisionByZero},
		{"compound interest below total loss", func() (decimal.Decimal, error) { return CalcCompoundInterest(d("1000"), d("-1.5"), d("0.5")) }, numeric.ErrInvalidDomain},
		{"balloon payment at total loss", func() (decimal.Decimal, error) { return CalcBalloonLoanPayment(d("1000"), d("100"), d("-1"), d("10")) }, numeric.ErrDivisionByZero},
		{"debt to income without income", func() (decimal.Decimal, error) { return CalcDebtToIncomeRatio(d("250"), decimal.Zero) }, numeric.ErrDivisionByZero},
		{"loan to deposit without deposits", func() (decimal.Decimal, error) { return CalcLoanToDepositRatio(d("250"), decimal.Zero) }, numeric.ErrDivisionByZero},
		{"loan to value without collateral", func() (decimal.Decimal, error) { return CalcLoanToValueRatio(d("250"), decimal.Zero) }, numeric.ErrDivisionByZero},
		{"simple interest rate without time", func() (decimal.Decimal, error) { return CalcSimpleInterestRate(d("1000"), d("400"), decimal.Zero) }, numeric.ErrDivisionByZero},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.fn()
			assert.ErrorIs(t, err, tt.wantErr)
			assert.True(t, got.IsZero())
		})
	}
}
