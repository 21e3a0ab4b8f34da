package numeric

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var (
	ErrDivisionByZero = errors.New("division by zero")
	ErrInvalidDomain  = errors.New("invalid domain")
)

// Fail attributes err to the named formula and returns the zero value that
// accompanies it. The failure is logged at debug level only.
func Fail(formula string, err error) (decimal.Decimal, error) {
	logrus.WithFields(logrus.Fields{
		"formula": formula,
		"error":   err,
	}).Debug("formula evaluation failed")

	return decimal.Zero, fmt.Errorf("%s: %w", formula, err)
}

// Ratio evaluates the single-division formulas that make up most of the
// catalogue.
func Ratio(formula string, n, d decimal.Decimal) (decimal.Decimal, error) {
	res, err := Div(n, d)
	if err != nil {
		return Fail(formula, err)
	}
	return res, nil
}
