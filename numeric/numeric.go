// Package numeric holds the evaluation rules every formula in this module
// follows: exact decimal arithmetic for sums and products, checked division,
// and a float64 bridge for the transcendental steps (power, exp, log) that
// have no exact decimal algorithm.
//
// Nothing here rounds a result. Rounding is left to the caller; Round is
// provided so that callers and tests round the same way (half away from zero).
package numeric

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

const (
	// DivisionScale is the number of decimal places kept by Div.
	DivisionScale int32 = 28

	// DaysPerYear is the day-count basis used by period and yield formulas.
	DaysPerYear = 365
)

// Div returns n/d rounded to DivisionScale places.
func Div(n, d decimal.Decimal) (decimal.Decimal, error) {
	if d.IsZero() {
		return decimal.Zero, fmt.Errorf("division of %s by zero: %w", n, ErrDivisionByZero)
	}
	return n.DivRound(d, DivisionScale), nil
}

// Pow raises base to a real exponent. Fractional exponents are allowed, so a
// period count like 2.5 or a day-count fraction works the same as an integer.
func Pow(base, exp decimal.Decimal) (decimal.Decimal, error) {
	if base.IsZero() && exp.IsNegative() {
		return decimal.Zero, fmt.Errorf("zero raised to negative power %s: %w", exp, ErrDivisionByZero)
	}
	if base.IsNegative() && !exp.IsInteger() {
		return decimal.Zero, fmt.Errorf("negative base %s raised to fractional power %s: %w", base, exp, ErrInvalidDomain)
	}

	// A nonzero base that underflows float64 overflows here and is reported
	// as ErrInvalidDomain. ErrDivisionByZero is kept for an exact zero base.
	res := math.Pow(base.InexactFloat64(), exp.InexactFloat64())
	if math.IsInf(res, 0) || math.IsNaN(res) {
		return decimal.Zero, fmt.Errorf("%s raised to %s is not representable: %w", base, exp, ErrInvalidDomain)
	}
	return decimal.NewFromFloat(res), nil
}

// Exp returns e**x.
func Exp(x decimal.Decimal) (decimal.Decimal, error) {
	res := math.Exp(x.InexactFloat64())
	if math.IsInf(res, 0) {
		return decimal.Zero, fmt.Errorf("exp of %s is not representable: %w", x, ErrInvalidDomain)
	}
	return decimal.NewFromFloat(res), nil
}

// Ln returns the natural logarithm of x. x must be positive and within
// float64 range.
func Ln(x decimal.Decimal) (decimal.Decimal, error) {
	if !x.IsPositive() {
		return decimal.Zero, fmt.Errorf("logarithm of non-positive value %s: %w", x, ErrInvalidDomain)
	}
	res := math.Log(x.InexactFloat64())
	if math.IsInf(res, 0) || math.IsNaN(res) {
		return decimal.Zero, fmt.Errorf("logarithm of %s is not representable: %w", x, ErrInvalidDomain)
	}
	return decimal.NewFromFloat(res), nil
}

// Round rounds d to places decimal places, half away from zero.
func Round(d decimal.Decimal, places int32) decimal.Decimal {
	return d.Round(places)
}

// ParseSeries is for callers that build a cash-flow or rate series from text
// (files, forms, command-line input). It converts decimal strings such as "0",
// "12.2" or "-0.035" into an ordered series. The first value that fails to
// parse aborts the conversion.
func ParseSeries(values ...string) ([]decimal.Decimal, error) {
	series := make([]decimal.Decimal, 0, len(values))
	for i, v := range values {
		d, err := decimal.NewFromString(v)
		if err != nil {
			return nil, fmt.Errorf("failed to convert value #%d [%s]: %w", i+1, v, err)
		}
		series = append(series, d)
	}
	return series, nil
}
