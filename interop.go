package layered

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/avdva/layered/internal/mathutil"
)

// bigDigits is the number of significant digits BigDecimal produces for layer 1 values.
const bigDigits = 15

// FromBigDecimal returns a value for an arbitrary-precision decimal.
// Decimals beyond the float64 range are kept at layer 1.
func FromBigDecimal(x decimal.Decimal) Decimal {
	if x.IsZero() {
		return zero
	}
	if f, _ := x.Float64(); !math.IsInf(f, 0) && !math.IsNaN(f) {
		return FromFloat64(f)
	}
	digits := strings.TrimPrefix(x.Coefficient().String(), "-")
	l, ok := log10Digits(digits)
	if !ok {
		return zero
	}
	// x = coefficient * 10^exponent
	return normalize(x.Sign() < 0, 1, l+float64(x.Exponent()))
}

// BigDecimal returns d as an arbitrary-precision decimal.
// Values at layer 1 keep 15 significant digits.
// ok is false for values that cannot be converted: infinities, layers 2 and above,
// and exponents beyond the int32 range.
func (d Decimal) BigDecimal() (result decimal.Decimal, ok bool) {
	switch {
	case d.IsZero():
		return decimal.Zero, true
	case d.layer == 0:
		return decimal.NewFromFloat(d.signedMag()), true
	case d.layer > 1 || d.mag >= math.MaxInt32-bigDigits:
		return decimal.Decimal{}, false
	}
	m, e := mathutil.SplitPow10(d.mag)
	coef := int64(math.Round(m * math.Pow10(bigDigits-1)))
	if d.neg {
		coef = -coef
	}
	return decimal.New(coef, int32(e)-(bigDigits-1)), true
}
