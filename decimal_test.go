// Copyright 2020 Aleksandr Demakin. All rights reserved.

package layered

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
)

func dec(neg bool, layer int, mag float64) Decimal {
	return Decimal{neg: neg, layer: layer, mag: mag}
}

// samples covers every layer class, both signs, and the sentinels.
var samples = []Decimal{
	zero,
	dec(false, 0, 0.5),
	dec(true, 0, 0.5),
	dec(false, 0, 8),
	dec(true, 0, 100),
	dec(false, 0, 1e300),
	dec(false, 1, 309),
	dec(true, 1, 1000),
	dec(false, 1, 1e300),
	dec(false, 2, 600),
	dec(true, 3, 400.5),
	Infinity,
	NegInfinity,
}

func assertCanonical(a *assert.Assertions, d Decimal) {
	msg := spew.Sdump(d)
	if d.mag == 0 {
		a.Equal(0, d.layer, msg)
		a.False(d.neg, msg)
	}
	a.GreaterOrEqual(d.mag, 0.0, msg)
	switch {
	case d.IsInf():
	case d.layer == 0:
		a.Less(d.mag, maxMag, msg)
	default:
		a.GreaterOrEqual(d.mag, float64(minLayerMag), msg)
		a.Less(d.mag, maxMag, msg)
	}
	a.Equal(d, normalize(d.neg, d.layer, d.mag), msg)
}

func TestFromFloat64(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		f     float64
		layer int
		mag   float64
		neg   bool
	}{
		{0, 0, 0, false},
		{math.Copysign(0, -1), 0, 0, false},
		{5, 0, 5, false},
		{-5, 0, 5, true},
		{0.001, 0, 0.001, false},
		{9.9e307, 0, 9.9e307, false},
		{1e308, 1, 308, false},
		{math.MaxFloat64, 1, math.Log10(math.MaxFloat64), false},
		{-math.MaxFloat64, 1, math.Log10(math.MaxFloat64), true},
		{math.NaN(), 0, 0, false},
		{math.Inf(1), 0, 0, false},
		{math.Inf(-1), 0, 0, false},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			d := FromFloat64(test.f)
			a.Equal(test.layer, d.Layer())
			a.Equal(test.neg, d.neg)
			a.InDelta(test.mag, d.Mag(), 1e-9)
			assertCanonical(a, d)
		})
	}
}

func TestD(t *testing.T) {
	a := assert.New(t)
	a.Equal(dec(false, 0, 5), D(5))
	a.Equal(dec(true, 0, 5), D(int64(-5)))
	a.Equal(dec(false, 0, 5.5), D(5.5))
	a.Equal(dec(false, 0, 5), D("5"))
	a.Equal(dec(false, 1, 1000), D("1e1000"))
	a.Equal(dec(false, 0, 5), D(D(5)))
	a.Equal(zero, D("garbage"))
	a.Equal(zero, D(math.NaN()))
}

func TestNormalize(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		in  Decimal
		out Decimal
	}{
		{dec(false, 0, 0), zero},
		{dec(true, 0, 0), zero},
		{dec(false, 0, -5), zero},
		{dec(true, 0, math.NaN()), zero},
		{dec(false, -1, 5), zero},
		{dec(false, 0, math.Inf(1)), Infinity},
		{dec(true, 0, math.Inf(1)), NegInfinity},
		{dec(true, InfLayer, 5), NegInfinity},
		{dec(false, 1, 0), One},
		{dec(false, 1, 2), dec(false, 0, 100)},
		{dec(true, 2, 1), dec(true, 0, 1e10)},
		{dec(false, 1, -400), zero},
		{dec(false, 2, 5), dec(false, 1, 100000)},
		{dec(false, 1, 1000), dec(false, 1, 1000)},
		{dec(false, 2, 600), dec(false, 2, 600)},
		{dec(true, InfLayer, 1), NegInfinity},
		{dec(false, InfLayer-1, 1e308), Infinity},
		{dec(true, InfLayer-1, 1e308), NegInfinity},
		{dec(false, InfLayer-1, 400), dec(false, InfLayer-1, 400)},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			d := normalize(test.in.neg, test.in.layer, test.in.mag)
			a.Equal(test.out, d)
			assertCanonical(a, d)
		})
	}
}

func TestNormalizePromotion(t *testing.T) {
	a := assert.New(t)
	d := normalize(false, 1, 1e308)
	a.Equal(2, d.Layer())
	a.InDelta(308, d.Mag(), 1e-9)
	assertCanonical(a, d)

	d = normalize(false, 0, 5e307*3)
	a.Equal(1, d.Layer())
	a.InDelta(math.Log10(1.5e308), d.Mag(), 1e-9)
}

func TestNormalizeIdempotent(t *testing.T) {
	a := assert.New(t)
	rnd := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		layer := rnd.Intn(5)
		mag := math.Pow(10, rnd.Float64()*616-308)
		d := normalize(rnd.Intn(2) == 0, layer, mag)
		a.Equal(d, normalize(d.neg, d.layer, d.mag))
		assertCanonical(a, d)
	}
}

func TestSignAbsNeg(t *testing.T) {
	a := assert.New(t)
	a.Equal(0, zero.Sign())
	a.Equal(1, D(0.5).Sign())
	a.Equal(-1, D(-0.5).Sign())
	a.Equal(-1, NegInfinity.Sign())

	a.Equal(zero, zero.Neg())
	a.Equal(D(-5), D(5).Neg())
	a.Equal(D(5), D(-5).Neg())
	a.Equal(dec(true, 2, 600), dec(false, 2, 600).Neg())

	a.Equal(D(5), D(-5).Abs())
	a.Equal(Infinity, NegInfinity.Abs())
	a.Equal(zero, zero.Abs())

	v := D(5)
	c := v.Clone()
	a.Equal(v, c)
	a.True(c.Eq(v))
}

func TestFloat64(t *testing.T) {
	a := assert.New(t)
	a.Equal(0.0, zero.Float64())
	a.Equal(8.0, D(8).Float64())
	a.Equal(-8.0, D(-8).Float64())
	a.InEpsilon(1e308, dec(false, 1, 308).Float64(), 1e-12)
	a.True(math.IsInf(dec(false, 1, 1000).Float64(), 1))
	a.True(math.IsInf(dec(true, 1, 1000).Float64(), -1))
	a.True(math.IsInf(dec(true, 2, 600).Float64(), -1))
	a.True(math.IsInf(Infinity.Float64(), 1))
}

func TestConstants(t *testing.T) {
	a := assert.New(t)
	a.Equal(Decimal{}, Zero)
	a.True(Zero.IsZero())
	a.Equal(dec(false, 0, 1), One)
	a.Equal(dec(false, 0, 10), Ten)
	a.Equal(dec(false, 0, math.E), E)
	a.True(Infinity.IsInf())
	a.False(Ten.IsInf())
	a.Equal("1.00 {1, 0, 1}", One.GoString())
	a.Equal("-8.00 {-1, 0, 8}", D(-8).GoString())
}
