package series

import (
	"github.com/shopspring/decimal"
)

var one = decimal.NewFromInt(1)

// Compound multiplies together the growth factors (1 + rate) of a series of
// periodic returns.
type Compound struct {
	product decimal.Decimal
	samples int64
}

func NewCompound() *Compound {
	return &Compound{product: one}
}

func (c *Compound) AddValue(rate decimal.Decimal) error {
	c.samples++
	c.product = c.product.Mul(one.Add(rate))
	return nil
}

func (c *Compound) Samples() int64 {
	return c.samples
}

// Result is the compounded growth factor, or ErrNoData for an empty series.
func (c *Compound) Result() (decimal.Decimal, error) {
	if c.samples == 0 {
		return decimal.Decimal{}, ErrNoData
	}
	return c.product, nil
}
