package generalfinance

import (
	"github.com/shopspring/decimal"
)

// WeightedValue is one term of a weighted average.
type WeightedValue struct {
	Weight decimal.Decimal
	Value  decimal.Decimal
}

// CalcWeightedAverage returns the sum of Weight*Value over pairs. Weights are
// not normalised: pass weights summing to 1 for a true average, or any weights
// for a weighted sum. The order of pairs does not matter and an empty slice
// yields zero.
func CalcWeightedAverage(pairs []WeightedValue) decimal.Decimal {
	sum := decimal.Zero
	for _, p := range pairs {
		sum = sum.Add(p.Weight.Mul(p.Value))
	}
	return sum
}
