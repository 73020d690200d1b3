package domain

import "math"

// AccountID names a ledger account. User accounts are opaque identities
// supplied by the transport; vault accounts are derived with VaultAddress.
type AccountID string

// Amount is a quantity of value in integer minor units.
type Amount int64

// CheckedAdd returns a+b or ErrArithmeticOverflow when the sum does not fit.
func CheckedAdd(a, b Amount) (Amount, error) {
	if b > 0 && a > math.MaxInt64-b {
		return 0, ErrArithmeticOverflow
	}
	if b < 0 && a < math.MinInt64-b {
		return 0, ErrArithmeticOverflow
	}
	return a + b, nil
}

// CheckedSub returns a-b. Ledger amounts are never negative, so a result
// below zero is reported as underflow.
func CheckedSub(a, b Amount) (Amount, error) {
	if b > a {
		return 0, ErrArithmeticOverflow
	}
	return a - b, nil
}
