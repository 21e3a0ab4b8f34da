// Package banking implements loan, deposit and interest formulas.
//
// Rates are fractions per period (0.04 for 4%) and period counts may be
// fractional.
package banking

import (
	"github.com/shopspring/decimal"

	"github.com/rudmsa/finformulas/numeric"
)

var one = decimal.NewFromInt(1)

// CalcAnnualPercentageYield calculates APY from the stated annual rate and the
// number of compounding periods per year: (1 + r/m)^m - 1.
func CalcAnnualPercentageYield(statedAnnualInterestRate, numberOfTimesCompounded decimal.Decimal) (decimal.Decimal, error) {
	periodic, err := numeric.Div(statedAnnualInterestRate, numberOfTimesCompounded)
	if err != nil {
		return numeric.Fail("CalcAnnualPercentageYield", err)
	}
	growth, err := numeric.Pow(one.Add(periodic), numberOfTimesCompounded)
	if err != nil {
		return numeric.Fail("CalcAnnualPercentageYield", err)
	}
	return growth.Sub(one), nil
}

// CalcBalloonLoanPayment calculates the periodic payment of a loan that leaves
// balloonAmount outstanding after numberOfPeriods.
func CalcBalloonLoanPayment(presentValue, balloonAmount, ratePerPeriod, numberOfPeriods decimal.Decimal) (decimal.Decimal, error) {
	growth, err := numeric.Pow(one.Add(ratePerPeriod), numberOfPeriods)
	if err != nil {
		return numeric.Fail("CalcBalloonLoanPayment", err)
	}
	pvOfBalloon, err := numeric.Div(balloonAmount, growth)
	if err != nil {
		return numeric.Fail("CalcBalloonLoanPayment", err)
	}
	paymentFactor, err := annuityPaymentFactor(ratePerPeriod, numberOfPeriods)
	if err != nil {
		return numeric.Fail("CalcBalloonLoanPayment", err)
	}
	return presentValue.Sub(pvOfBalloon).Mul(paymentFactor), nil
}

// CalcCompoundInterest calculates the interest earned on principal compounded
// once per period: P((1+r)^n - 1).
func CalcCompoundInterest(principal, ratePerPeriod, numberOfPeriods decimal.Decimal) (decimal.Decimal, error) {
	growth, err := numeric.Pow(one.Add(ratePerPeriod), numberOfPeriods)
	if err != nil {
		return numeric.Fail("CalcCompoundInterest", err)
	}
	return principal.Mul(growth.Sub(one)), nil
}

// CalcContinuousCompounding calculates the ending balance of principal
// compounded continuously: P*e^(rt).
func CalcContinuousCompounding(principal, rate, time decimal.Decimal) (decimal.Decimal, error) {
	growth, err := numeric.Exp(rate.Mul(time))
	if err != nil {
		return numeric.Fail("CalcContinuousCompounding", err)
	}
	return principal.Mul(growth), nil
}

func CalcDebtToIncomeRatio(monthlyDebtPayments, grossMonthlyIncome decimal.Decimal) (decimal.Decimal, error) {
	return numeric.Ratio("CalcDebtToIncomeRatio", monthlyDebtPayments, grossMonthlyIncome)
}

// CalcBalloonBalanceOfLoan calculates the balance still owed after
// numberOfPayments payments.
func CalcBalloonBalanceOfLoan(presentValue, payment, ratePerPayment, numberOfPayments decimal.Decimal) (decimal.Decimal, error) {
	res, err := outstandingBalance(presentValue, payment, ratePerPayment, numberOfPayments)
	if err != nil {
		return numeric.Fail("CalcBalloonBalanceOfLoan", err)
	}
	return res, nil
}

// CalcLoanPayment calculates the level payment that amortises presentValue
// over numberOfPeriods: r*PV / (1 - (1+r)^-n).
func CalcLoanPayment(presentValue, ratePerPeriod, numberOfPeriods decimal.Decimal) (decimal.Decimal, error) {
	paymentFactor, err := annuityPaymentFactor(ratePerPeriod, numberOfPeriods)
	if err != nil {
		return numeric.Fail("CalcLoanPayment", err)
	}
	return presentValue.Mul(paymentFactor), nil
}

// CalcRemainingBalanceOnLoan calculates the remaining balance after
// numberOfPayments payments. It shares its closed form with
// CalcBalloonBalanceOfLoan.
func CalcRemainingBalanceOnLoan(presentValue, payment, ratePerPayment, numberOfPayments decimal.Decimal) (decimal.Decimal, error) {
	res, err := outstandingBalance(presentValue, payment, ratePerPayment, numberOfPayments)
	if err != nil {
		return numeric.Fail("CalcRemainingBalanceOnLoan", err)
	}
	return res, nil
}

func CalcLoanToDepositRatio(loans, deposits decimal.Decimal) (decimal.Decimal, error) {
	return numeric.Ratio("CalcLoanToDepositRatio", loans, deposits)
}

func CalcLoanToValueRatio(loanAmount, valueOfCollateral decimal.Decimal) (decimal.Decimal, error) {
	return numeric.Ratio("CalcLoanToValueRatio", loanAmount, valueOfCollateral)
}

// CalcSimpleInterest calculates P*r*t.
func CalcSimpleInterest(principal, rate, time decimal.Decimal) decimal.Decimal {
	return principal.Mul(rate).Mul(time)
}

// CalcSimpleInterestRate solves I = P*r*t for r.
func CalcSimpleInterestRate(principal, interest, time decimal.Decimal) (decimal.Decimal, error) {
	return numeric.Ratio("CalcSimpleInterestRate", interest, principal.Mul(time))
}

// CalcSimpleInterestPrincipal solves I = P*r*t for P.
func CalcSimpleInterestPrincipal(interest, rate, time decimal.Decimal) (decimal.Decimal, error) {
	return numeric.Ratio("CalcSimpleInterestPrincipal", interest, rate.Mul(time))
}

// CalcSimpleInterestTime solves I = P*r*t for t.
func CalcSimpleInterestTime(principal, interest, rate decimal.Decimal) (decimal.Decimal, error) {
	return numeric.Ratio("CalcSimpleInterestTime", interest, principal.Mul(rate))
}

// annuityPaymentFactor is r / (1 - (1+r)^-n). A zero rate makes the
// denominator zero.
func annuityPaymentFactor(rate, periods decimal.Decimal) (decimal.Decimal, error) {
	discount, err := numeric.Pow(one.Add(rate), periods.Neg())
	if err != nil {
		return decimal.Zero, err
	}
	return numeric.Div(rate, one.Sub(discount))
}

// outstandingBalance is PV(1+r)^n - PMT((1+r)^n - 1)/r.
func outstandingBalance(presentValue, payment, rate, periods decimal.Decimal) (decimal.Decimal, error) {
	growth, err := numeric.Pow(one.Add(rate), periods)
	if err != nil {
		return decimal.Zero, err
	}
	accumulated, err := numeric.Div(growth.Sub(one), rate)
	if err != nil {
		return decimal.Zero, err
	}
	return presentValue.Mul(growth).Sub(payment.Mul(accumulated)), nil
}
