package asset

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Common errors
var (
	ErrNilAsset       = errors.New("asset: nil asset")
	ErrNegativeAmount = errors.New("asset: negative amount")
	ErrAssetMismatch  = errors.New("asset: cannot operate on different assets")
	ErrNegativeResult = errors.New("asset: operation would result in negative amount")
	ErrDivisionByZero = errors.New("asset: division by zero")
)

// Amount is an immutable Value Object representing a quantity of an asset.
// GalaChain quantities travel as decimal strings, so the value is held as a
// decimal rather than an integer smallest-unit representation.
type Amount struct {
	value decimal.Decimal
	asset *Asset
}

// NewAmount creates an Amount from a decimal value.
func NewAmount(a *Asset, value decimal.Decimal) Amount {
	if a == nil {
		panic(ErrNilAsset)
	}
	if value.IsNegative() {
		panic(ErrNegativeAmount)
	}
	return Amount{value: value, asset: a}
}

// Zero creates a zero Amount for the given asset.
func Zero(a *Asset) Amount {
	return NewAmount(a, decimal.Zero)
}

// ParseString creates an Amount from a decimal string (the wire format).
func ParseString(a *Asset, s string) (Amount, error) {
	if a == nil {
		return Amount{}, ErrNilAsset
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, fmt.Errorf("asset: invalid decimal string %q: %w", s, err)
	}
	if d.IsNegative() {
		return Amount{}, ErrNegativeAmount
	}
	return Amount{value: d.Truncate(int32(a.Decimals())), asset: a}, nil
}

// ParseDecimal creates an Amount from a decimal value, truncating excess
// precision to the asset's decimals.
func ParseDecimal(a *Asset, d decimal.Decimal) (Amount, error) {
	if a == nil {
		return Amount{}, ErrNilAsset
	}
	if d.IsNegative() {
		return Amount{}, ErrNegativeAmount
	}
	return Amount{value: d.Truncate(int32(a.Decimals())), asset: a}, nil
}

// Value returns the decimal value.
func (a Amount) Value() decimal.Decimal {
	return a.value
}

// Asset returns the asset this amount is denominated in.
func (a Amount) Asset() *Asset {
	return a.asset
}

// IsZero returns true if the amount is zero.
func (a Amount) IsZero() bool {
	return a.value.IsZero()
}

// IsPositive returns true if the amount is greater than zero.
func (a Amount) IsPositive() bool {
	return a.value.IsPositive()
}

// Add adds two amounts of the same asset.
func (a Amount) Add(b Amount) (Amount, error) {
	if err := a.checkSameAsset(b); err != nil {
		return Amount{}, err
	}
	return Amount{value: a.value.Add(b.value), asset: a.asset}, nil
}

// Sub subtracts b from a (same asset only).
func (a Amount) Sub(b Amount) (Amount, error) {
	if err := a.checkSameAsset(b); err != nil {
		return Amount{}, err
	}
	if a.value.LessThan(b.value) {
		return Amount{}, ErrNegativeResult
	}
	return Amount{value: a.value.Sub(b.value), asset: a.asset}, nil
}

// MulDecimal scales the amount by a non-negative factor.
func (a Amount) MulDecimal(factor decimal.Decimal) Amount {
	if factor.IsNegative() {
		panic(ErrNegativeAmount)
	}
	return Amount{value: a.value.Mul(factor).Truncate(int32(a.asset.Decimals())), asset: a.asset}
}

// Cmp compares two amounts of the same asset.
// Returns -1 if a < b, 0 if a == b, 1 if a > b.
func (a Amount) Cmp(b Amount) (int, error) {
	if err := a.checkSameAsset(b); err != nil {
		return 0, err
	}
	return a.value.Cmp(b.value), nil
}

// Equals returns true if both amounts are equal (same asset and value).
func (a Amount) Equals(b Amount) bool {
	if a.asset == nil || b.asset == nil {
		return a.asset == b.asset && a.value.Equal(b.value)
	}
	return a.asset.Key().Equals(b.asset.Key()) && a.value.Equal(b.value)
}

// GreaterThanOrEqual returns true if a >= b.
func (a Amount) GreaterThanOrEqual(b Amount) (bool, error) {
	cmp, err := a.Cmp(b)
	if err != nil {
		return false, err
	}
	return cmp >= 0, nil
}

// LessThan returns true if a < b.
func (a Amount) LessThan(b Amount) (bool, error) {
	cmp, err := a.Cmp(b)
	if err != nil {
		return false, err
	}
	return cmp < 0, nil
}

// WireString returns the quantity as a decimal string for API payloads.
func (a Amount) WireString() string {
	return a.value.String()
}

// String returns a human-readable representation (e.g., "1500 GALA").
func (a Amount) String() string {
	if a.asset == nil {
		return "0 ???"
	}
	return fmt.Sprintf("%s %s", a.value.String(), a.asset.Symbol())
}

func (a Amount) checkSameAsset(b Amount) error {
	if a.asset == nil || b.asset == nil {
		return ErrNilAsset
	}
	if !a.asset.Key().Equals(b.asset.Key()) {
		return fmt.Errorf("%w: %s vs %s", ErrAssetMismatch, a.asset.Symbol(), b.asset.Symbol())
	}
	return nil
}
