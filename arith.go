package layered

import (
	"math"

	"github.com/avdva/layered/internal/mathutil"
)

// layerClass groups layers by the formulas available for them.
type layerClass int

const (
	plain layerClass = iota // layer 0, the magnitude is the value.
	power                   // layer 1, the magnitude is an exponent of 10.
	tower                   // layers 2 and above.
)

func classOf(layer int) layerClass {
	switch layer {
	case 0:
		return plain
	case 1:
		return power
	default:
		return tower
	}
}

type classPair [2]layerClass

func pairOf(a, b Decimal) classPair {
	return classPair{classOf(a.layer), classOf(b.layer)}
}

// sumAt returns a value at the given layer with the magnitude x+y.
func sumAt(neg bool, layer int, x, y float64) Decimal {
	s, log := mathutil.Sum(x, y)
	if log {
		layer++
	}
	return normalize(neg, layer, s)
}

// prodAt returns a value at the given layer with the magnitude x*y.
func prodAt(neg bool, layer int, x, y float64) Decimal {
	p, log := mathutil.Prod(x, y)
	switch {
	case !log:
		return normalize(neg, layer, p)
	case (x < 0) != (y < 0): // a hugely negative exponent.
		return zero
	default:
		return normalize(neg, layer+1, p)
	}
}

// dominant returns the operand with the higher layer, or the larger magnitude for equal layers.
func dominant(a, b Decimal) Decimal {
	if a.layer > b.layer || a.layer == b.layer && a.mag >= b.mag {
		return a
	}
	return b
}

// Add returns d + other.
// If the operands are on different layers, or both are at layer 1 or above,
// the smaller one doesn't contribute to the result.
func (d Decimal) Add(other Decimal) Decimal {
	switch {
	case d.IsZero():
		return other
	case other.IsZero():
		return d
	case d.neg != other.neg:
		return cancel(d, other)
	case d.layer != other.layer || d.layer > 0:
		return dominant(d, other)
	}
	return sumAt(d.neg, 0, d.mag, other.mag)
}

// cancel adds two non-zero values of opposite signs.
func cancel(a, b Decimal) Decimal {
	switch {
	case a.layer == 0 && b.layer == 0:
		return FromFloat64(a.signedMag() + b.signedMag())
	case a.layer != b.layer:
		return dominant(a, b)
	case a.mag == b.mag:
		return zero
	}
	return dominant(a, b)
}

// Sub returns d - other.
func (d Decimal) Sub(other Decimal) Decimal {
	return d.Add(other.Neg())
}

// Sum returns the sum of all values.
func Sum(values ...Decimal) Decimal {
	var result Decimal
	for _, v := range values {
		result = result.Add(v)
	}
	return result
}

// Mul returns d * other.
// Products involving layer 2 and above keep the dominant operand.
func (d Decimal) Mul(other Decimal) Decimal {
	if d.IsZero() || other.IsZero() {
		return zero
	}
	neg := d.neg != other.neg
	a, b := d, other
	if a.layer < b.layer {
		a, b = b, a
	}
	switch pairOf(a, b) {
	case classPair{plain, plain}:
		return prodAt(neg, 0, a.mag, b.mag)
	case classPair{power, plain}:
		return normalize(neg, 1, a.mag+mathutil.Log10(b.mag))
	case classPair{power, power}:
		return sumAt(neg, 1, a.mag, b.mag)
	}
	return dominant(a, b).withNeg(neg)
}

// Div returns d / other.
// Division by zero returns zero.
func (d Decimal) Div(other Decimal) Decimal {
	if other.IsZero() {
		diagnose("division by zero", "dividend", d)
		return zero
	}
	if d.IsZero() {
		return zero
	}
	neg := d.neg != other.neg
	switch pairOf(d, other) {
	case classPair{plain, plain}:
		if q := d.mag / other.mag; !math.IsInf(q, 0) {
			return normalize(neg, 0, q)
		}
		return normalize(neg, 1, mathutil.Log10(d.mag)-mathutil.Log10(other.mag))
	case classPair{power, plain}:
		return normalize(neg, 1, d.mag-mathutil.Log10(other.mag))
	case classPair{plain, power}:
		return normalize(neg, 1, mathutil.Log10(d.mag)-other.mag)
	case classPair{power, power}:
		return normalize(neg, 1, d.mag-other.mag)
	}
	switch {
	case d.layer > other.layer || d.layer == other.layer && d.mag > other.mag:
		return d.withNeg(neg)
	case d.layer == other.layer && d.mag == other.mag:
		return One.withNeg(neg)
	}
	// the quotient is far below the smallest float64.
	return zero
}

// Recip returns 1 / d.
// The reciprocal of zero is zero.
func (d Decimal) Recip() Decimal {
	switch {
	case d.IsZero():
		diagnose("reciprocal of zero")
		return zero
	case d.layer == 0:
		if r := 1 / d.mag; !math.IsInf(r, 0) {
			return normalize(d.neg, 0, r)
		}
		return normalize(d.neg, 1, -mathutil.Log10(d.mag))
	case d.layer == 1:
		return normalize(d.neg, 1, -d.mag)
	}
	// 1/10^10^308 and below underflow.
	return zero
}

// Pow returns d raised to the power of exponent.
// The result is negative only if d is negative and exponent is an odd integer.
func (d Decimal) Pow(exponent Decimal) Decimal {
	switch {
	case exponent.IsZero():
		return One
	case d.IsZero():
		return zero
	case exponent == One:
		return d
	}
	neg := d.neg && exponent.layer == 0 && mathutil.IsOddInt(exponent.signedMag())
	e := exponent.signedMag()
	switch pairOf(d, exponent) {
	case classPair{plain, plain}:
		if exponent.mag < 1000 {
			if p := math.Pow(d.mag, e); !math.IsInf(p, 0) {
				return normalize(neg, 0, p)
			}
		}
		return prodAt(neg, 1, e, mathutil.Log10(d.mag))
	case classPair{power, plain}:
		return prodAt(neg, 1, d.mag, e)
	}
	// |d|^e = 10^(log10(|d|) * e)
	return d.Abs().Log10().Mul(exponent).Pow10().withNeg(neg)
}

// Pow returns base raised to the power of exponent, see Decimal.Pow.
func Pow(base, exponent Decimal) Decimal {
	return base.Pow(exponent)
}

// Sqrt returns the square root of |d|.
func (d Decimal) Sqrt() Decimal {
	return d.Pow(half)
}

var half = FromFloat64(0.5)

// Pow10 returns 10^d.
func (d Decimal) Pow10() Decimal {
	switch {
	case d.IsInf() && d.neg:
		return zero
	case d.IsInf():
		return Infinity
	case d.neg && d.layer == 0:
		return normalize(false, 0, math.Pow(10, -d.mag))
	case d.neg:
		return zero
	}
	return normalize(false, d.layer+1, d.mag)
}

// Exp returns e^d.
func (d Decimal) Exp() Decimal {
	return d.Mul(log10E).Pow10()
}

var log10E = FromFloat64(math.Log10E)

// Log10 returns the decimal logarithm of d.
// The logarithm of zero or a negative number is zero.
func (d Decimal) Log10() Decimal {
	switch {
	case d.IsZero() || d.neg:
		diagnose("logarithm of a non-positive value", "value", d)
		return zero
	case d.IsInf():
		return Infinity
	case d.layer == 0:
		return FromFloat64(mathutil.Log10(d.mag))
	}
	return normalize(false, d.layer-1, d.mag)
}

// Ln returns the natural logarithm of d.
func (d Decimal) Ln() Decimal {
	return d.Log10().Mul(ln10)
}

var ln10 = FromFloat64(math.Ln10)

// Log returns the logarithm of d in the given base.
func (d Decimal) Log(base Decimal) Decimal {
	return d.Log10().Div(base.Log10())
}

// Floor returns the greatest integer value less than or equal to d.
// Values at layer 1 and above are integers already.
func (d Decimal) Floor() Decimal {
	return d.apply(math.Floor)
}

// Ceil returns the least integer value greater than or equal to d.
func (d Decimal) Ceil() Decimal {
	return d.apply(math.Ceil)
}

// Round returns the nearest integer, rounding half away from zero.
func (d Decimal) Round() Decimal {
	return d.apply(math.Round)
}

// Trunc returns the integer part of d.
func (d Decimal) Trunc() Decimal {
	return d.apply(math.Trunc)
}

func (d Decimal) apply(fn func(float64) float64) Decimal {
	if d.layer > 0 {
		return d
	}
	return FromFloat64(fn(d.signedMag()))
}
