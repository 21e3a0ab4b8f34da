package stocksbonds

import (
	"github.com/shopspring/decimal"

	"github.com/rudmsa/finformulas/numeric"
)

var (
	two         = decimal.NewFromInt(2)
	daysPerYear = decimal.NewFromInt(numeric.DaysPerYear)
)

// CalcBondEquivalentYield annualises the discount of a bond bought below face
// value: (F-P)/P * 365/days.
func CalcBondEquivalentYield(faceValue, bondPrice, daysToMaturity decimal.Decimal) (decimal.Decimal, error) {
	discount, err := numeric.Div(faceValue.Sub(bondPrice), bondPrice)
	if err != nil {
		return numeric.Fail("CalcBondEquivalentYield", err)
	}
	annualise, err := numeric.Div(daysPerYear, daysToMaturity)
	if err != nil {
		return numeric.Fail("CalcBondEquivalentYield", err)
	}
	return discount.Mul(annualise), nil
}

func CalcCurrentYield(annualCoupons, currentBondPrice decimal.Decimal) (decimal.Decimal, error) {
	return numeric.Ratio("CalcCurrentYield", annualCoupons, currentBondPrice)
}

func CalcTaxEquivalentYield(taxFreeYield, taxRate decimal.Decimal) (decimal.Decimal, error) {
	return numeric.Ratio("CalcTaxEquivalentYield", taxFreeYield, one.Sub(taxRate))
}

// CalcApproxYieldToMaturity approximates YTM as
// (C + (F-P)/years) / ((F+P)/2).
func CalcApproxYieldToMaturity(couponOrInterestPayment, faceValue, price, yearsToMaturity decimal.Decimal) (decimal.Decimal, error) {
	accretion, err := numeric.Div(faceValue.Sub(price), yearsToMaturity)
	if err != nil {
		return numeric.Fail("CalcApproxYieldToMaturity", err)
	}
	average, err := numeric.Div(faceValue.Add(price), two)
	if err != nil {
		return numeric.Fail("CalcApproxYieldToMaturity", err)
	}
	return numeric.Ratio("CalcApproxYieldToMaturity", couponOrInterestPayment.Add(accretion), average)
}

// CalcZeroCouponBondValue discounts faceValue at rateOrYield over
// timeToMaturity years. timeToMaturity may be a day-count fraction.
func CalcZeroCouponBondValue(faceValue, rateOrYield, timeToMaturity decimal.Decimal) (decimal.Decimal, error) {
	growth, err := numeric.Pow(one.Add(rateOrYield), timeToMaturity)
	if err != nil {
		return numeric.Fail("CalcZeroCouponBondValue", err)
	}
	return numeric.Ratio("CalcZeroCouponBondValue", faceValue, growth)
}

// CalcZeroCouponBondYield inverts CalcZeroCouponBondValue:
// (F/PV)^(1/t) - 1.
func CalcZeroCouponBondYield(faceValue, presentValue, timeToMaturity decimal.Decimal) (decimal.Decimal, error) {
	multiple, err := numeric.Div(faceValue, presentValue)
	if err != nil {
		return numeric.Fail("CalcZeroCouponBondYield", err)
	}
	inverseTime, err := numeric.Div(one, timeToMaturity)
	if err != nil {
		return numeric.Fail("CalcZeroCouponBondYield", err)
	}
	growth, err := numeric.Pow(multiple, inverseTime)
	if err != nil {
		return numeric.Fail("CalcZeroCouponBondYield", err)
	}
	return growth.Sub(one), nil
}
