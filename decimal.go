// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package layered implements a decimal number for incremental-game economies,
// which reaches far beyond the float64 range by stacking logarithms.
//
// A Decimal is a (sign, layer, magnitude) triple:
//   layer 0: |v| = mag
//   layer 1: |v| = 10^mag
//   layer 2: |v| = 10^10^mag, and so on.
//
// The representation is approximate: every operation is carried out on float64
// values at the layer the operands live on, so precision is traded for range.
// Operations never fail. Invalid inputs, like NaN, unparseable strings or
// division by zero, produce zero. Set Diagnostics to see such coercions.
package layered

import (
	"fmt"
	"math"

	"github.com/avdva/layered/internal/mathutil"
)

const (
	// InfLayer is the layer of Infinity and NegInfinity.
	InfLayer = math.MaxInt32

	// maxMag is the exclusive upper bound for a magnitude at any layer.
	maxMag = mathutil.MaxMag
	// minLayerMag is the lowest magnitude kept at layers >= 1.
	// Anything smaller fits the layer below, as 10^308 < maxMag.
	minLayerMag = 308

	infMag = math.MaxFloat64
)

var (
	zero Decimal

	// Zero is the canonical zero, equal to the zero Decimal value.
	Zero = zero
	// One is 1.
	One = FromFloat64(1)
	// Ten is 10.
	Ten = FromFloat64(10)
	// E is Euler's number.
	E = FromFloat64(math.E)
	// Infinity is the positive infinity sentinel. It is larger than any other value.
	Infinity = Decimal{layer: InfLayer, mag: infMag}
	// NegInfinity is the negative infinity sentinel.
	NegInfinity = Decimal{neg: true, layer: InfLayer, mag: infMag}
)

// Decimal is a layered decimal number.
// It is a small comparable value, so it can be copied, compared with == and used as a map key:
// each number has exactly one representation.
// The zero value is zero.
type Decimal struct {
	neg   bool
	layer int
	mag   float64
}

// Source is the set of types D accepts.
type Source interface {
	int | int64 | float64 | string | Decimal
}

// D converts any supported value into a Decimal.
// Strings are parsed with FromString.
func D[T Source](v T) Decimal {
	switch v := any(v).(type) {
	case int:
		return FromInt64(int64(v))
	case int64:
		return FromInt64(v)
	case float64:
		return FromFloat64(v)
	case string:
		return FromString(v)
	case Decimal:
		return v
	}
	return zero
}

// FromFloat64 returns a Decimal for the given float64.
// Infinities and not-a-numbers produce zero.
func FromFloat64(f float64) Decimal {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		diagnose("non-finite float coerced to zero", "value", f)
		return zero
	}
	return normalize(f < 0, 0, math.Abs(f))
}

// FromInt64 returns a Decimal for the given int64.
func FromInt64(i int64) Decimal {
	return FromFloat64(float64(i))
}

// normalize restores the canonical (layer, mag) encoding:
//   layer 0:  0 <= mag < 1e308
//   layer >0: 308 <= mag < 1e308
// Zero is always positive with layer 0.
// Layers reaching InfLayer saturate to the infinity sentinels.
func normalize(neg bool, layer int, mag float64) Decimal {
	switch {
	case layer >= InfLayer:
		return Decimal{neg: neg, layer: InfLayer, mag: infMag}
	case math.IsNaN(mag) || layer < 0:
		return zero
	case math.IsInf(mag, 1):
		return Decimal{neg: neg, layer: InfLayer, mag: infMag}
	}
	for {
		switch {
		case mag >= maxMag:
			if layer++; layer >= InfLayer {
				return Decimal{neg: neg, layer: InfLayer, mag: infMag}
			}
			mag = math.Max(mathutil.Log10(mag), minLayerMag)
		case layer > 0 && mag < minLayerMag:
			layer--
			mag = math.Pow(10, mag)
		default:
			if mag <= 0 {
				return zero
			}
			return Decimal{neg: neg, layer: layer, mag: mag}
		}
	}
}

// Sign returns -1 if d < 0, 0 if d == 0, 1 if d > 0.
func (d Decimal) Sign() int {
	switch {
	case d.mag == 0:
		return 0
	case d.neg:
		return -1
	default:
		return 1
	}
}

// Layer returns the number of log10 applications between the magnitude and the value.
func (d Decimal) Layer() int {
	return d.layer
}

// Mag returns the magnitude at the current layer.
func (d Decimal) Mag() float64 {
	return d.mag
}

// IsZero returns true if d == 0.
func (d Decimal) IsZero() bool {
	return d.mag == 0
}

// IsInf returns true for Infinity and NegInfinity.
func (d Decimal) IsInf() bool {
	return d.layer == InfLayer
}

// Clone returns a copy of d.
func (d Decimal) Clone() Decimal {
	return d
}

// Neg returns -d.
func (d Decimal) Neg() Decimal {
	if d.IsZero() {
		return zero
	}
	d.neg = !d.neg
	return d
}

// Abs returns |d|.
func (d Decimal) Abs() Decimal {
	d.neg = false
	return d
}

func (d Decimal) withNeg(neg bool) Decimal {
	if d.IsZero() {
		return zero
	}
	d.neg = neg
	return d
}

// signedMag returns the magnitude with d's sign.
func (d Decimal) signedMag() float64 {
	if d.neg {
		return -d.mag
	}
	return d.mag
}

// Float64 returns d as a float64.
// Values at layer 1 and above which don't fit float64 become infinities.
func (d Decimal) Float64() float64 {
	var f float64
	switch d.layer {
	case 0:
		f = d.mag
	case 1:
		f = math.Pow(10, d.mag)
	default:
		f = math.Inf(1)
	}
	if d.neg {
		return -f
	}
	return f
}

// GoString returns debug string representation.
func (d Decimal) GoString() string {
	return d.String() + fmt.Sprintf(" {%d, %d, %v}", d.rawSign(), d.layer, d.mag)
}

func (d Decimal) rawSign() int {
	if d.neg {
		return -1
	}
	return 1
}
