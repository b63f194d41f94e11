// Package mathutil contains float64 helpers that keep intermediate
// results finite when a value is about to leave the float64 range.
package mathutil

import (
	"math"
)

// MaxMag is the exclusive upper bound for a magnitude stored at any layer.
const MaxMag = 1e308

// Log10 returns the decimal logarithm of x.
// Unlike math.Log10, it is exact for powers of ten.
func Log10(x float64) float64 {
	l := math.Log10(x)
	if r := math.Round(l); r != l && math.Abs(r) <= 308 && math.Pow10(int(r)) == x {
		return r
	}
	return l
}

// Sum returns a+b for non-negative a and b.
// If the sum overflows float64, it returns log10(a+b) and log == true.
func Sum(a, b float64) (v float64, log bool) {
	if s := a + b; !math.IsInf(s, 0) {
		return s, false
	}
	return Log10Sum(a, b), true
}

// Prod returns x*y.
// If the product overflows float64, it returns log10(|x*y|) and log == true.
func Prod(x, y float64) (v float64, log bool) {
	if p := x * y; !math.IsInf(p, 0) {
		return p, false
	}
	return Log10(math.Abs(x)) + Log10(math.Abs(y)), true
}

// Log10Sum calculates log10(a+b) for non-negative a and b without computing a+b.
func Log10Sum(a, b float64) float64 {
	if a < b {
		a, b = b, a
	}
	if a == 0 {
		return math.Inf(-1)
	}
	return Log10(a) + math.Log1p(b/a)/math.Ln10
}

// SplitPow10 splits 10^x into a mantissa 1 <= m < 10 and an integral exponent e,
// so that 10^x = m * 10^e. x must be finite.
func SplitPow10(x float64) (m, e float64) {
	e = math.Floor(x)
	m = math.Pow(10, x-e)
	if m >= 10 {
		m /= 10
		e++
	}
	return m, e
}

// IsOddInt reports whether f is an odd integer.
func IsOddInt(f float64) bool {
	if math.IsInf(f, 0) || math.IsNaN(f) || f != math.Trunc(f) {
		return false
	}
	return math.Mod(math.Abs(f), 2) == 1
}
