package generalfinance

import (
	"github.com/shopspring/decimal"

	"github.com/rudmsa/finformulas/numeric"
)

// RuleOf72Constant is the numerator of the rule of 72 approximation.
const RuleOf72Constant = 72

var (
	two      = decimal.NewFromInt(2)
	hundred  = decimal.NewFromInt(100)
	ruleOf72 = decimal.NewFromInt(RuleOf72Constant)
)

func CalcPresentValueOfPerpetuity(payment, rate decimal.Decimal) (decimal.Decimal, error) {
	return numeric.Ratio("CalcPresentValueOfPerpetuity", payment, rate)
}

// CalcPresentValueOfGrowingPerpetuity calculates D / (r-g). Callers are
// expected to pass r > g; the formula has no meaning otherwise.
func CalcPresentValueOfGrowingPerpetuity(dividendOrCouponAtFirstPeriod, discountRate, growthRate decimal.Decimal) (decimal.Decimal, error) {
	return numeric.Ratio("CalcPresentValueOfGrowingPerpetuity", dividendOrCouponAtFirstPeriod, discountRate.Sub(growthRate))
}

// CalcFutureValue compounds presentValue over numberOfPeriods.
func CalcFutureValue(presentValue, ratePerPeriod, numberOfPeriods decimal.Decimal) (decimal.Decimal, error) {
	factor, err := growth(ratePerPeriod, numberOfPeriods)
	if err != nil {
		return numeric.Fail("CalcFutureValue", err)
	}
	return presentValue.Mul(factor), nil
}

func CalcFutureValueWithContinuousCompounding(presentValue, rate, time decimal.Decimal) (decimal.Decimal, error) {
	factor, err := numeric.Exp(rate.Mul(time))
	if err != nil {
		return numeric.Fail("CalcFutureValueWithContinuousCompounding", err)
	}
	return presentValue.Mul(factor), nil
}

// CalcFutureValueFactor calculates (1+r)^n.
func CalcFutureValueFactor(ratePerPeriod, numberOfPeriods decimal.Decimal) (decimal.Decimal, error) {
	factor, err := growth(ratePerPeriod, numberOfPeriods)
	if err != nil {
		return numeric.Fail("CalcFutureValueFactor", err)
	}
	return factor, nil
}

// CalcPresentValue discounts futureValue over numberOfPeriods.
func CalcPresentValue(futureValue, ratePerPeriod, numberOfPeriods decimal.Decimal) (decimal.Decimal, error) {
	factor, err := growth(ratePerPeriod, numberOfPeriods)
	if err != nil {
		return numeric.Fail("CalcPresentValue", err)
	}
	return numeric.Ratio("CalcPresentValue", futureValue, factor)
}

func CalcPresentValueWithContinuousCompounding(futureValue, rate, time decimal.Decimal) (decimal.Decimal, error) {
	factor, err := numeric.Exp(rate.Mul(time))
	if err != nil {
		return numeric.Fail("CalcPresentValueWithContinuousCompounding", err)
	}
	return numeric.Ratio("CalcPresentValueWithContinuousCompounding", futureValue, factor)
}

// CalcPresentValueFactor calculates 1 / (1+r)^n.
func CalcPresentValueFactor(ratePerPeriod, numberOfPeriods decimal.Decimal) (decimal.Decimal, error) {
	factor, err := growth(ratePerPeriod, numberOfPeriods)
	if err != nil {
		return numeric.Fail("CalcPresentValueFactor", err)
	}
	return numeric.Ratio("CalcPresentValueFactor", one, factor)
}

// CalcNumberOfPeriodsForPresentValueToReachFutureValue calculates
// ln(FV/PV) / ln(1+r).
func CalcNumberOfPeriodsForPresentValueToReachFutureValue(futureValue, presentValue, rate decimal.Decimal) (decimal.Decimal, error) {
	multiple, err := numeric.Div(futureValue, presentValue)
	if err != nil {
		return numeric.Fail("CalcNumberOfPeriodsForPresentValueToReachFutureValue", err)
	}
	res, err := periodsToGrow(multiple, rate)
	if err != nil {
		return numeric.Fail("CalcNumberOfPeriodsForPresentValueToReachFutureValue", err)
	}
	return res, nil
}

// CalcDoublingTime calculates the number of periods needed to double a value
// compounding at rateOfReturn: ln(2) / ln(1+r).
//
// A rate of -1 or less has no logarithm (ErrInvalidDomain); a zero rate never
// doubles (ErrDivisionByZero).
func CalcDoublingTime(rateOfReturn decimal.Decimal) (decimal.Decimal, error) {
	res, err := periodsToGrow(two, rateOfReturn)
	if err != nil {
		return numeric.Fail("CalcDoublingTime", err)
	}
	return res, nil
}

// CalcDoublingTimeWithContinuousCompounding calculates ln(2) / r.
func CalcDoublingTimeWithContinuousCompounding(rate decimal.Decimal) (decimal.Decimal, error) {
	ln2, err := numeric.Ln(two)
	if err != nil {
		return numeric.Fail("CalcDoublingTimeWithContinuousCompounding", err)
	}
	return numeric.Ratio("CalcDoublingTimeWithContinuousCompounding", ln2, rate)
}

// CalcDoublingTimeForSimpleInterest calculates 1 / r.
func CalcDoublingTimeForSimpleInterest(rate decimal.Decimal) (decimal.Decimal, error) {
	return numeric.Ratio("CalcDoublingTimeForSimpleInterest", one, rate)
}

// CalcRuleOf72 approximates the doubling time of a rate given as a fraction.
func CalcRuleOf72(rate decimal.Decimal) (decimal.Decimal, error) {
	return numeric.Ratio("CalcRuleOf72", ruleOf72, rate.Mul(hundred))
}

// CalcRateRequiredToDoubleByRuleOf72 approximates the rate, as a fraction,
// that doubles a value in numberOfPeriods.
func CalcRateRequiredToDoubleByRuleOf72(numberOfPeriods decimal.Decimal) (decimal.Decimal, error) {
	return numeric.Ratio("CalcRateRequiredToDoubleByRuleOf72", ruleOf72, numberOfPeriods.Mul(hundred))
}
