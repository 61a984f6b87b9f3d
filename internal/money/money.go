// Package money converts between user-entered decimal amounts and the signed
// integer cents stored in the ledger.
//
// Amounts are signed: a negative value is an expense, a positive value is
// income or a credit.
package money

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrInvalidAmount is returned for empty, malformed or out-of-range amounts.
var ErrInvalidAmount = errors.New("invalid amount")

// maxCents bounds amounts so sums over a ledger cannot overflow int64.
var maxCents = decimal.NewFromInt(1 << 53)

var hundred = decimal.NewFromInt(100)

// Parse converts a decimal string such as "-4.99", "12,5" or "+30" to cents.
//
// A comma decimal separator is accepted. Digits past the second decimal place
// are rounded half away from zero:
//
//	Parse("-4.99")  -> -499
//	Parse("12.345") -> 1235
//	Parse("12,34")  -> 1234
func Parse(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidAmount
	}
	s = strings.ReplaceAll(s, ",", ".")

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, ErrInvalidAmount
	}

	cents := d.Mul(hundred).Round(0)
	if cents.Abs().GreaterThan(maxCents) {
		return 0, ErrInvalidAmount
	}
	return cents.IntPart(), nil
}

// FromCents returns cents as a decimal amount with two places.
func FromCents(cents int64) decimal.Decimal {
	return decimal.New(cents, -2)
}

// Format renders cents as a plain decimal string, e.g. -499 -> "-4.99".
func Format(cents int64) string {
	return FromCents(cents).StringFixed(2)
}
