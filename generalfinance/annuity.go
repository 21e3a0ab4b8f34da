// Package generalfinance implements time-value-of-money formulas: annuities,
// perpetuities, present and future values, doubling time and weighted
// averages.
//
// Formulas come in inverse pairs. For example CalcAnnuityPaymentPresentValue
// recovers the payment passed to CalcPresentValueOfAnnuity, and
// CalcGrowingAnnuityPaymentFromFutureValue inverts
// CalcFutureValueOfGrowingAnnuity. A zero rate makes the closed forms
// degenerate and is reported as ErrDivisionByZero rather than replaced by the
// limit.
package generalfinance

import (
	"github.com/shopspring/decimal"

	"github.com/rudmsa/finformulas/numeric"
)

var one = decimal.NewFromInt(1)

// growth returns (1+rate)^periods.
func growth(rate, periods decimal.Decimal) (decimal.Decimal, error) {
	return numeric.Pow(one.Add(rate), periods)
}

// presentValueAnnuityFactor returns (1 - (1+r)^-n) / r.
func presentValueAnnuityFactor(rate, periods decimal.Decimal) (decimal.Decimal, error) {
	discount, err := growth(rate, periods.Neg())
	if err != nil {
		return decimal.Zero, err
	}
	return numeric.Div(one.Sub(discount), rate)
}

// futureValueAnnuityFactor returns ((1+r)^n - 1) / r.
func futureValueAnnuityFactor(rate, periods decimal.Decimal) (decimal.Decimal, error) {
	g, err := growth(rate, periods)
	if err != nil {
		return decimal.Zero, err
	}
	return numeric.Div(g.Sub(one), rate)
}

// CalcFutureValueOfAnnuity calculates the value at period n of periodicPayment
// paid at the end of each of n periods.
func CalcFutureValueOfAnnuity(periodicPayment, ratePerPeriod, numberOfPeriods decimal.Decimal) (decimal.Decimal, error) {
	factor, err := futureValueAnnuityFactor(ratePerPeriod, numberOfPeriods)
	if err != nil {
		return numeric.Fail("CalcFutureValueOfAnnuity", err)
	}
	return periodicPayment.Mul(factor), nil
}

// CalcFutureValueOfAnnuityWithContinuousCompounding calculates
// CF * (e^(rt) - 1) / (e^r - 1).
func CalcFutureValueOfAnnuityWithContinuousCompounding(cashFlow, rate, time decimal.Decimal) (decimal.Decimal, error) {
	total, err := numeric.Exp(rate.Mul(time))
	if err != nil {
		return numeric.Fail("CalcFutureValueOfAnnuityWithContinuousCompounding", err)
	}
	perPeriod, err := numeric.Exp(rate)
	if err != nil {
		return numeric.Fail("CalcFutureValueOfAnnuityWithContinuousCompounding", err)
	}
	factor, err := numeric.Div(total.Sub(one), perPeriod.Sub(one))
	if err != nil {
		return numeric.Fail("CalcFutureValueOfAnnuityWithContinuousCompounding", err)
	}
	return cashFlow.Mul(factor), nil
}

// CalcNumberOfPeriodsForFutureValueOfAnnuity solves CalcFutureValueOfAnnuity
// for n: ln(1 + FV*r/PMT) / ln(1+r).
func CalcNumberOfPeriodsForFutureValueOfAnnuity(futureValueOfAnnuity, rate, payment decimal.Decimal) (decimal.Decimal, error) {
	share, err := numeric.Div(futureValueOfAnnuity.Mul(rate), payment)
	if err != nil {
		return numeric.Fail("CalcNumberOfPeriodsForFutureValueOfAnnuity", err)
	}
	res, err := periodsToGrow(one.Add(share), rate)
	if err != nil {
		return numeric.Fail("CalcNumberOfPeriodsForFutureValueOfAnnuity", err)
	}
	return res, nil
}

// CalcAnnuityPaymentPresentValue calculates the level payment whose
// ordinary annuity is worth presentValue: r*PV / (1 - (1+r)^-n).
func CalcAnnuityPaymentPresentValue(presentValue, ratePerPeriod, numberOfPeriods decimal.Decimal) (decimal.Decimal, error) {
	factor, err := presentValueAnnuityFactor(ratePerPeriod, numberOfPeriods)
	if err != nil {
		return numeric.Fail("CalcAnnuityPaymentPresentValue", err)
	}
	return numeric.Ratio("CalcAnnuityPaymentPresentValue", presentValue, factor)
}

// CalcAnnuityPaymentFutureValue calculates the level payment whose ordinary
// annuity accumulates to futureValue: r*FV / ((1+r)^n - 1).
func CalcAnnuityPaymentFutureValue(futureValue, ratePerPeriod, numberOfPeriods decimal.Decimal) (decimal.Decimal, error) {
	factor, err := futureValueAnnuityFactor(ratePerPeriod, numberOfPeriods)
	if err != nil {
		return numeric.Fail("CalcAnnuityPaymentFutureValue", err)
	}
	return numeric.Ratio("CalcAnnuityPaymentFutureValue", futureValue, factor)
}

// CalcNumberOfPeriodsForPresentValueOfAnnuity solves CalcPresentValueOfAnnuity
// for n: ln(1 / (1 - PV*r/PMT)) / ln(1+r).
func CalcNumberOfPeriodsForPresentValueOfAnnuity(presentValueOfAnnuity, rate, payment decimal.Decimal) (decimal.Decimal, error) {
	share, err := numeric.Div(presentValueOfAnnuity.Mul(rate), payment)
	if err != nil {
		return numeric.Fail("CalcNumberOfPeriodsForPresentValueOfAnnuity", err)
	}
	inverse, err := numeric.Div(one, one.Sub(share))
	if err != nil {
		return numeric.Fail("CalcNumberOfPeriodsForPresentValueOfAnnuity", err)
	}
	res, err := periodsToGrow(inverse, rate)
	if err != nil {
		return numeric.Fail("CalcNumberOfPeriodsForPresentValueOfAnnuity", err)
	}
	return res, nil
}

// CalcPresentValueOfAnnuity calculates the value today of periodicPayment
// paid at the end of each of n periods.
func CalcPresentValueOfAnnuity(periodicPayment, ratePerPeriod, numberOfPeriods decimal.Decimal) (decimal.Decimal, error) {
	factor, err := presentValueAnnuityFactor(ratePerPeriod, numberOfPeriods)
	if err != nil {
		return numeric.Fail("CalcPresentValueOfAnnuity", err)
	}
	return periodicPayment.Mul(factor), nil
}

// CalcPresentValueAnnuityFactor calculates (1 - (1+r)^-n) / r, the present
// value of an ordinary annuity of 1.
func CalcPresentValueAnnuityFactor(ratePerPeriod, numberOfPeriods decimal.Decimal) (decimal.Decimal, error) {
	factor, err := presentValueAnnuityFactor(ratePerPeriod, numberOfPeriods)
	if err != nil {
		return numeric.Fail("CalcPresentValueAnnuityFactor", err)
	}
	return factor, nil
}

// CalcPresentValueOfAnnuityDue is CalcPresentValueOfAnnuity for payments made
// at the start of each period.
func CalcPresentValueOfAnnuityDue(periodicPayment, ratePerPeriod, numberOfPeriods decimal.Decimal) (decimal.Decimal, error) {
	factor, err := presentValueAnnuityFactor(ratePerPeriod, numberOfPeriods)
	if err != nil {
		return numeric.Fail("CalcPresentValueOfAnnuityDue", err)
	}
	return periodicPayment.Mul(factor).Mul(one.Add(ratePerPeriod)), nil
}

// CalcFutureValueOfAnnuityDue is CalcFutureValueOfAnnuity for payments made at
// the start of each period.
func CalcFutureValueOfAnnuityDue(periodicPayment, ratePerPeriod, numberOfPeriods decimal.Decimal) (decimal.Decimal, error) {
	factor, err := futureValueAnnuityFactor(ratePerPeriod, numberOfPeriods)
	if err != nil {
		return numeric.Fail("CalcFutureValueOfAnnuityDue", err)
	}
	return periodicPayment.Mul(factor).Mul(one.Add(ratePerPeriod)), nil
}

// CalcAnnuityDuePaymentUsingPresentValue inverts CalcPresentValueOfAnnuityDue.
func CalcAnnuityDuePaymentUsingPresentValue(presentValue, ratePerPeriod, numberOfPeriods decimal.Decimal) (decimal.Decimal, error) {
	factor, err := presentValueAnnuityFactor(ratePerPeriod, numberOfPeriods)
	if err != nil {
		return numeric.Fail("CalcAnnuityDuePaymentUsingPresentValue", err)
	}
	return numeric.Ratio("CalcAnnuityDuePaymentUsingPresentValue", presentValue, factor.Mul(one.Add(ratePerPeriod)))
}

// CalcAnnuityDuePaymentUsingFutureValue inverts CalcFutureValueOfAnnuityDue.
func CalcAnnuityDuePaymentUsingFutureValue(futureValue, ratePerPeriod, numberOfPeriods decimal.Decimal) (decimal.Decimal, error) {
	factor, err := futureValueAnnuityFactor(ratePerPeriod, numberOfPeriods)
	if err != nil {
		return numeric.Fail("CalcAnnuityDuePaymentUsingFutureValue", err)
	}
	return numeric.Ratio("CalcAnnuityDuePaymentUsingFutureValue", futureValue, factor.Mul(one.Add(ratePerPeriod)))
}

// CalcFutureValueOfGrowingAnnuity calculates the value at period n of a
// payment stream starting at firstPayment and growing by growthRate each
// period: PMT((1+r)^n - (1+g)^n) / (r-g).
func CalcFutureValueOfGrowingAnnuity(firstPayment, rate, growthRate, numberOfPeriods decimal.Decimal) (decimal.Decimal, error) {
	factor, err := growingFutureValueFactor(rate, growthRate, numberOfPeriods)
	if err != nil {
		return numeric.Fail("CalcFutureValueOfGrowingAnnuity", err)
	}
	return firstPayment.Mul(factor), nil
}

// CalcPresentValueOfGrowingAnnuity calculates
// PMT/(r-g) * (1 - ((1+g)/(1+r))^n).
func CalcPresentValueOfGrowingAnnuity(firstPayment, rate, growthRate, numberOfPeriods decimal.Decimal) (decimal.Decimal, error) {
	factor, err := growingPresentValueFactor(rate, growthRate, numberOfPeriods)
	if err != nil {
		return numeric.Fail("CalcPresentValueOfGrowingAnnuity", err)
	}
	return firstPayment.Mul(factor), nil
}

// CalcGrowingAnnuityPaymentFromPresentValue inverts
// CalcPresentValueOfGrowingAnnuity.
func CalcGrowingAnnuityPaymentFromPresentValue(presentValue, rate, growthRate, numberOfPeriods decimal.Decimal) (decimal.Decimal, error) {
	factor, err := growingPresentValueFactor(rate, growthRate, numberOfPeriods)
	if err != nil {
		return numeric.Fail("CalcGrowingAnnuityPaymentFromPresentValue", err)
	}
	return numeric.Ratio("CalcGrowingAnnuityPaymentFromPresentValue", presentValue, factor)
}

// CalcGrowingAnnuityPaymentFromFutureValue inverts
// CalcFutureValueOfGrowingAnnuity.
func CalcGrowingAnnuityPaymentFromFutureValue(futureValue, rate, growthRate, numberOfPeriods decimal.Decimal) (decimal.Decimal, error) {
	factor, err := growingFutureValueFactor(rate, growthRate, numberOfPeriods)
	if err != nil {
		return numeric.Fail("CalcGrowingAnnuityPaymentFromFutureValue", err)
	}
	return numeric.Ratio("CalcGrowingAnnuityPaymentFromFutureValue", futureValue, factor)
}

// growingFutureValueFactor returns ((1+r)^n - (1+g)^n) / (r-g).
func growingFutureValueFactor(rate, growthRate, periods decimal.Decimal) (decimal.Decimal, error) {
	rg, err := growth(rate, periods)
	if err != nil {
		return decimal.Zero, err
	}
	gg, err := growth(growthRate, periods)
	if err != nil {
		return decimal.Zero, err
	}
	return numeric.Div(rg.Sub(gg), rate.Sub(growthRate))
}

// growingPresentValueFactor returns (1 - ((1+g)/(1+r))^n) / (r-g).
func growingPresentValueFactor(rate, growthRate, periods decimal.Decimal) (decimal.Decimal, error) {
	base, err := numeric.Div(one.Add(growthRate), one.Add(rate))
	if err != nil {
		return decimal.Zero, err
	}
	shrink, err := numeric.Pow(base, periods)
	if err != nil {
		return decimal.Zero, err
	}
	return numeric.Div(one.Sub(shrink), rate.Sub(growthRate))
}

// periodsToGrow returns ln(multiple) / ln(1+rate), the number of periods
// compounding at rate takes to multiply a value by multiple.
func periodsToGrow(multiple, rate decimal.Decimal) (decimal.Decimal, error) {
	num, err := numeric.Ln(multiple)
	if err != nil {
		return decimal.Zero, err
	}
	den, err := numeric.Ln(one.Add(rate))
	if err != nil {
		return decimal.Zero, err
	}
	return numeric.Div(num, den)
}
