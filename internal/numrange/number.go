// Package numrange models file numbers and arithmetic progressions over them.
//
// Two numeric domains exist: 64-bit integers and exact decimals. Decimal
// values are held as rationals so containment and length checks are exact;
// floating point is never used for comparisons.
package numrange

import (
	"fmt"
	"math/big"
	"strings"
)

// Number is an exact file number: an integer or a finite decimal.
// Numbers are immutable; the zero value is the integer 0.
type Number struct {
	rat *big.Rat
	dec bool
}

// FromInt64 returns the integer Number for v.
func FromInt64(v int64) Number {
	return Number{rat: new(big.Rat).SetInt64(v)}
}

// ParseNumber parses a file number lexical value.
//
// The lexical grammar is strict: no leading zeros in the integral part, and
// the fractional part is either "0" or free of trailing zeros. A fractional
// part marks the number as decimal even when its value is integral.
func ParseNumber(s string) (Number, error) {
	intPart, fracPart, neg, err := splitNumber(s)
	if err != nil {
		return Number{}, err
	}

	digits := intPart + fracPart
	rat, ok := new(big.Rat).SetString(digits)
	if !ok {
		return Number{}, fmt.Errorf("invalid number %q", s)
	}
	if len(fracPart) > 0 {
		rat.Quo(rat, new(big.Rat).SetInt(pow10(len(fracPart))))
	}
	if neg {
		rat.Neg(rat)
	}
	return Number{rat: rat, dec: fracPart != ""}, nil
}

func splitNumber(s string) (intPart, fracPart string, neg bool, err error) {
	rest := s
	if strings.HasPrefix(rest, "-") {
		neg = true
		rest = rest[1:]
	}
	intPart, fracPart, hasFrac := strings.Cut(rest, ".")
	if !validIntDigits(intPart) {
		return "", "", false, fmt.Errorf("invalid number %q", s)
	}
	if hasFrac {
		if !validFracDigits(fracPart) {
			return "", "", false, fmt.Errorf("invalid number %q", s)
		}
		return intPart, fracPart, neg, nil
	}
	return intPart, "", neg, nil
}

// validIntDigits accepts "0" or a digit run without a leading zero.
func validIntDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return s == "0" || s[0] != '0'
}

// validFracDigits accepts "0" or a digit run without a trailing zero.
func validFracDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return s == "0" || s[len(s)-1] != '0'
}

// IsDecimal reports whether the number belongs to the decimal domain.
func (n Number) IsDecimal() bool {
	return n.dec
}

// IsIntegral reports whether the number's value is a whole number.
func (n Number) IsIntegral() bool {
	return n.val().IsInt()
}

// Int64 returns the number's value as an int64. It is only meaningful for
// integral values that fit.
func (n Number) Int64() int64 {
	return n.val().Num().Int64()
}

// FitsInt64 reports whether the value is an integer representable in 64
// bits, so Int64 returns it without wrapping.
func (n Number) FitsInt64() bool {
	v := n.val()
	return v.IsInt() && v.Num().IsInt64()
}

// Rat returns a copy of the number's exact rational value.
func (n Number) Rat() *big.Rat {
	return new(big.Rat).Set(n.val())
}

// Cmp compares two numbers by value.
func (n Number) Cmp(o Number) int {
	return n.val().Cmp(o.val())
}

// Equal reports whether the two numbers have the same value and domain.
func (n Number) Equal(o Number) bool {
	return n.dec == o.dec && n.val().Cmp(o.val()) == 0
}

// Add returns n + o. The result is decimal if either operand is.
func (n Number) Add(o Number) Number {
	return Number{rat: new(big.Rat).Add(n.val(), o.val()), dec: n.dec || o.dec}
}

// Sub returns n - o. The result is decimal if either operand is.
func (n Number) Sub(o Number) Number {
	return Number{rat: new(big.Rat).Sub(n.val(), o.val()), dec: n.dec || o.dec}
}

// Neg returns -n.
func (n Number) Neg() Number {
	return Number{rat: new(big.Rat).Neg(n.val()), dec: n.dec}
}

// MulInt64 returns n * v.
func (n Number) MulInt64(v int64) Number {
	return Number{
		rat: new(big.Rat).Mul(n.val(), new(big.Rat).SetInt64(v)),
		dec: n.dec,
	}
}

// Sign returns -1, 0, or 1 depending on the number's sign.
func (n Number) Sign() int {
	return n.val().Sign()
}

// Scale returns the number of fractional decimal digits in the canonical
// rendering. Integral values have scale 0.
func (n Number) Scale() int {
	v := n.val()
	if v.IsInt() {
		return 0
	}
	den := new(big.Int).Set(v.Denom())
	twos := countFactor(den, 2)
	fives := countFactor(den, 5)
	if twos > fives {
		return twos
	}
	return fives
}

// String renders the canonical lexical form: minimal digits, no exponent,
// trailing zeros removed ("1.0" renders as "1").
func (n Number) String() string {
	v := n.val()
	if v.IsInt() {
		return v.Num().String()
	}
	return v.FloatString(n.Scale())
}

// Quantize rounds the number to the given count of decimal places using
// round-half-to-even, matching IEEE-754 default rounding.
func (n Number) Quantize(places int) Number {
	scaled, _ := scaledRoundHalfEven(n.val(), places)
	rat := new(big.Rat).SetInt(scaled)
	if places > 0 {
		rat.Quo(rat, new(big.Rat).SetInt(pow10(places)))
	}
	return Number{rat: rat, dec: n.dec || places > 0}
}

// scaledRoundHalfEven returns round(v * 10^places) with ties to even,
// together with the power of ten used.
func scaledRoundHalfEven(v *big.Rat, places int) (*big.Int, *big.Int) {
	scale := pow10(places)
	num := new(big.Int).Mul(v.Num(), scale)
	den := v.Denom()

	quo, rem := new(big.Int).QuoRem(num, den, new(big.Int))
	if rem.Sign() == 0 {
		return quo, scale
	}

	neg := rem.Sign() < 0
	absRem := new(big.Int).Abs(rem)
	twice := new(big.Int).Lsh(absRem, 1)
	roundUp := false
	switch twice.Cmp(den) {
	case 1:
		roundUp = true
	case 0:
		roundUp = quo.Bit(0) == 1
	}
	if roundUp {
		if neg {
			quo.Sub(quo, big.NewInt(1))
		} else {
			quo.Add(quo, big.NewInt(1))
		}
	}
	return quo, scale
}

func (n Number) val() *big.Rat {
	if n.rat == nil {
		return new(big.Rat)
	}
	return n.rat
}

func pow10(exp int) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(exp)), nil)
}

func countFactor(v *big.Int, factor int64) int {
	f := big.NewInt(factor)
	count := 0
	rem := new(big.Int)
	for {
		quo, r := new(big.Int).QuoRem(v, f, rem)
		if r.Sign() != 0 {
			return count
		}
		v.Set(quo)
		count++
	}
}
