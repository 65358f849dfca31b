package domain

import (
	"fmt"

	"github.com/govalues/decimal"
)

var CommissionRate = decimal.MustParse("0.02")

// RoundHalfUp rounds d to scale digits, halves away from zero.
func RoundHalfUp(d decimal.Decimal, scale int) decimal.Decimal {
	if d.IsNeg() {
		return RoundHalfUp(d.Neg(), scale).Neg()
	}
	half := decimal.MustNew(5, scale+1)
	s, err := d.Add(half)
	if err != nil {
		return d.Round(scale)
	}
	return s.Trunc(scale)
}

func LineTotal(price decimal.Decimal, quantity int) (decimal.Decimal, error) {
	q, err := decimal.New(int64(quantity), 0)
	if err != nil {
		return decimal.Zero, err
	}
	return price.Mul(q)
}

// Commission is the platform share of total, rounded to two places.
func Commission(total decimal.Decimal) (decimal.Decimal, error) {
	c, err := total.Mul(CommissionRate)
	if err != nil {
		return decimal.Zero, err
	}
	return RoundHalfUp(c, 2), nil
}

// Subunits converts an amount to the gateway's integer currency subunit.
func Subunits(amount decimal.Decimal) (int64, error) {
	m, err := amount.Mul(decimal.Hundred)
	if err != nil {
		return 0, err
	}
	whole, _, ok := RoundHalfUp(m, 0).Int64(0)
	if !ok {
		return 0, fmt.Errorf("amount %s overflows subunits", amount)
	}
	return whole, nil
}
