// Package markets implements economy-wide rate formulas.
package markets

import (
	"github.com/shopspring/decimal"

	"github.com/rudmsa/finformulas/numeric"
)

var one = decimal.NewFromInt(1)

// CalcRateOfInflation calculates the relative change between two consumer
// price index readings.
func CalcRateOfInflation(initialConsumerPriceIndex, endingConsumerPriceIndex decimal.Decimal) (decimal.Decimal, error) {
	return numeric.Ratio("CalcRateOfInflation", endingConsumerPriceIndex.Sub(initialConsumerPriceIndex), initialConsumerPriceIndex)
}

// CalcRealRateOfReturn removes inflation from a nominal rate with the exact
// Fisher relation (1+n)/(1+i) - 1.
func CalcRealRateOfReturn(nominalRate, inflationRate decimal.Decimal) (decimal.Decimal, error) {
	ratio, err := numeric.Ratio("CalcRealRateOfReturn", one.Add(nominalRate), one.Add(inflationRate))
	if err != nil {
		return ratio, err
	}
	return ratio.Sub(one), nil
}
