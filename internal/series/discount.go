package series

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/rudmsa/finformulas/numeric"
)

// Discount sums the present values of cash flows, discounting the value added
// at period t by (1 + rate)^t.
type Discount struct {
	factor decimal.Decimal
	period int64
	sum    decimal.Decimal
}

func NewDiscount(rate decimal.Decimal) *Discount {
	return &Discount{
		factor: one.Add(rate),
		sum:    decimal.Zero,
	}
}

func (ds *Discount) AddValue(cashFlow decimal.Decimal) error {
	ds.period++

	df, err := numeric.Pow(ds.factor, decimal.NewFromInt(ds.period))
	if err != nil {
		return fmt.Errorf("failed to discount period %d: %w", ds.period, err)
	}
	pv, err := numeric.Div(cashFlow, df)
	if err != nil {
		return fmt.Errorf("failed to discount period %d: %w", ds.period, err)
	}

	ds.sum = ds.sum.Add(pv)
	return nil
}

// Result is the discounted sum; an empty series discounts to zero.
func (ds *Discount) Result() (decimal.Decimal, error) {
	return ds.sum, nil
}
