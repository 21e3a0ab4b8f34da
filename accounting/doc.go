// Package accounting collects textbook accounting formulas grouped as
// activity, basic statement, debt, depreciation, liquidity, market and
// profitability measures.
//
// Every formula works on decimal.Decimal and returns its result unrounded.
// Formulas that divide return numeric.ErrDivisionByZero (wrapped with the
// formula name) when their divisor is zero.
package accounting
