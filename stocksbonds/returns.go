package stocksbonds

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/rudmsa/finformulas/internal/series"
	"github.com/rudmsa/finformulas/numeric"
)

// CalcGeometricMeanReturn calculates the average per-period return that
// compounds to the same total as ratesOfReturn: (Π(1+r))^(1/n) - 1.
// An empty series returns zero.
func CalcGeometricMeanReturn(ratesOfReturn []decimal.Decimal) (decimal.Decimal, error) {
	acc := series.NewCompound()
	product, err := series.Fold(acc, ratesOfReturn)
	if errors.Is(err, series.ErrNoData) {
		return decimal.Zero, nil
	}
	if err != nil {
		return numeric.Fail("CalcGeometricMeanReturn", err)
	}

	root, err := numeric.Div(one, decimal.NewFromInt(acc.Samples()))
	if err != nil {
		return numeric.Fail("CalcGeometricMeanReturn", err)
	}
	mean, err := numeric.Pow(product, root)
	if err != nil {
		return numeric.Fail("CalcGeometricMeanReturn", err)
	}
	return mean.Sub(one), nil
}

// CalcHoldingPeriodReturn compounds a series of periodic returns into the
// total return over the whole holding period: Π(1+r) - 1. An empty series
// returns zero.
func CalcHoldingPeriodReturn(periodReturns []decimal.Decimal) (decimal.Decimal, error) {
	return holdingPeriodReturn(series.NewCompound(), periodReturns)
}

// holdingPeriodReturn takes the accumulator as a parameter. Only ErrNoData
// maps to zero; any other accumulator error is returned.
func holdingPeriodReturn(acc series.Accumulator, periodReturns []decimal.Decimal) (decimal.Decimal, error) {
	product, err := series.Fold(acc, periodReturns)
	if errors.Is(err, series.ErrNoData) {
		return decimal.Zero, nil
	}
	if err != nil {
		return numeric.Fail("CalcHoldingPeriodReturn", err)
	}
	return product.Sub(one), nil
}

// CalcHoldingPeriodReturnFromPeriodicRate calculates (1+r)^n - 1.
func CalcHoldingPeriodReturnFromPeriodicRate(periodicRate, numberOfPeriods decimal.Decimal) (decimal.Decimal, error) {
	growth, err := numeric.Pow(one.Add(periodicRate), numberOfPeriods)
	if err != nil {
		return numeric.Fail("CalcHoldingPeriodReturnFromPeriodicRate", err)
	}
	return growth.Sub(one), nil
}

// CalcHoldingPeriodReturnFromEarnings calculates (earnings + appreciation) /
// initial investment.
func CalcHoldingPeriodReturnFromEarnings(earnings, assetAppreciation, initialInvestment decimal.Decimal) (decimal.Decimal, error) {
	return numeric.Ratio("CalcHoldingPeriodReturnFromEarnings", earnings.Add(assetAppreciation), initialInvestment)
}
