// Package number provides numeric string predicates and float64 arithmetic
// carried out in exact decimal.
//
// Operands are converted through their shortest decimal string rather than
// their binary value, so 0.1 + 0.2 yields 0.3 instead of 0.30000000000000004.
// Rounding is always half-up: ties move away from zero.
package number

import (
	"fmt"
	"math"
	"strconv"

	"github.com/damacus/iron-kit/internal/errs"
	"github.com/grafana/regexp"
	"github.com/shopspring/decimal"
)

// DefaultScale is the number of fractional digits Div keeps.
const DefaultScale = 10

// MaxScale is the largest scale DivScale and Round accept.
const MaxScale = math.MaxInt32

var (
	// ErrNegativeScale is returned when a requested scale is below zero.
	ErrNegativeScale = fmt.Errorf("%w: scale must be zero or positive", errs.ErrInvalidArgument)

	// ErrScaleTooLarge is returned when a requested scale exceeds MaxScale.
	ErrScaleTooLarge = fmt.Errorf("%w: scale must not exceed %d", errs.ErrInvalidArgument, MaxScale)

	// ErrNotFinite is returned when NaN or an infinity reaches a rounding operation.
	ErrNotFinite = fmt.Errorf("%w: value is not finite", errs.ErrInvalidArgument)
)

var (
	numberPattern = regexp.MustCompile(`^[0-9]*$`)
	realPattern   = regexp.MustCompile(`^-?([1-9][0-9]*|0)(\.[0-9]+)?$`)
	one           = decimal.NewFromInt(1)
)

// IsNumber reports whether s is a non-empty run of ASCII digits.
func IsNumber(s string) bool {
	return s != "" && numberPattern.MatchString(s)
}

// IsReal reports whether s is a plain decimal number such as "-12.50".
// Leading zeros, exponents and a leading '+' are rejected.
func IsReal(s string) bool {
	return s != "" && realPattern.MatchString(s)
}

// Add returns a + b computed in exact decimal.
func Add(a, b float64) float64 {
	x, y, ok := decimals(a, b)
	if !ok {
		return a + b
	}
	return x.Add(y).InexactFloat64()
}

// Sub returns a - b computed in exact decimal.
func Sub(a, b float64) float64 {
	x, y, ok := decimals(a, b)
	if !ok {
		return a - b
	}
	return x.Sub(y).InexactFloat64()
}

// Mul returns a * b computed in exact decimal.
func Mul(a, b float64) float64 {
	x, y, ok := decimals(a, b)
	if !ok {
		return a * b
	}
	return x.Mul(y).InexactFloat64()
}

// Div returns a / b rounded half-up to DefaultScale fractional digits.
func Div(a, b float64) (float64, error) {
	return DivScale(a, b, DefaultScale)
}

// DivScale returns a / b rounded half-up to scale fractional digits.
func DivScale(a, b float64, scale int) (float64, error) {
	if err := checkScale(scale); err != nil {
		return 0, err
	}
	if b == 0 {
		return 0, errs.ErrDivisionByZero
	}
	x, y, ok := decimals(a, b)
	if !ok {
		return 0, ErrNotFinite
	}
	return x.DivRound(y, int32(scale)).InexactFloat64(), nil
}

// Round rounds v half-up to scale fractional digits.
func Round(v float64, scale int) (float64, error) {
	if err := checkScale(scale); err != nil {
		return 0, err
	}
	d, ok := toDecimal(v)
	if !ok {
		return 0, ErrNotFinite
	}
	return d.DivRound(one, int32(scale)).InexactFloat64(), nil
}

// Parse reads a finite float64 from s.
func Parse(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", errs.ErrInvalidArgument, s)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrNotFinite
	}
	return v, nil
}

// Format prints v with the fewest digits that read back as v, without an exponent.
func Format(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// checkScale keeps scale within the int32 precision decimal rounds to.
func checkScale(scale int) error {
	switch {
	case scale < 0:
		return ErrNegativeScale
	case scale > MaxScale:
		return ErrScaleTooLarge
	}
	return nil
}

func decimals(a, b float64) (decimal.Decimal, decimal.Decimal, bool) {
	x, ok := toDecimal(a)
	if !ok {
		return decimal.Decimal{}, decimal.Decimal{}, false
	}
	y, ok := toDecimal(b)
	if !ok {
		return decimal.Decimal{}, decimal.Decimal{}, false
	}
	return x, y, true
}

// toDecimal goes through the shortest decimal string so the binary
// representation error of v is not carried into the result.
func toDecimal(v float64) (decimal.Decimal, bool) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return decimal.Decimal{}, false
	}
	d, err := decimal.NewFromString(strconv.FormatFloat(v, 'f', -1, 64))
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}
