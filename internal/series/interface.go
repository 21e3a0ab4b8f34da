package series

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrNoData = errors.New("no data")
)

// Accumulator folds a period-indexed series into one value. The first value
// added belongs to period 1.
type Accumulator interface {
	AddValue(decimal.Decimal) error
	Result() (decimal.Decimal, error)
}

// Fold feeds values into acc in order and returns its result.
func Fold(acc Accumulator, values []decimal.Decimal) (decimal.Decimal, error) {
	for i := range values {
		if err := acc.AddValue(values[i]); err != nil {
			return decimal.Decimal{}, err
		}
	}
	return acc.Result()
}
