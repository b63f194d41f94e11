package mathutil

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLog10(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		x, res float64
	}{
		{1, 0},
		{10, 1},
		{1000, 3},
		{1e22, 22},
		{0.01, -2},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.res, Log10(test.x))
		})
	}
	a.InDelta(math.Log10(2), Log10(2), 1e-15)
	a.InDelta(308.2547, Log10(math.MaxFloat64), 1e-4)
	a.True(math.IsInf(Log10(0), -1))
}

func TestSum(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		a, b, res float64
		log       bool
	}{
		{0, 0, 0, false},
		{1, 2, 3, false},
		{1.5e308, 1.5e308, math.Log10(3) + 308, true},
		{math.MaxFloat64, math.MaxFloat64, math.Log10(math.MaxFloat64) + math.Log10(2), true},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			res, log := Sum(test.a, test.b)
			a.Equal(test.log, log)
			a.InDelta(test.res, res, 1e-9)
		})
	}
}

func TestProd(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		x, y, res float64
		log       bool
	}{
		{2, 3, 6, false},
		{-2, 3, -6, false},
		{1e308, 10, 309, true},
		{1e200, 1e200, 400, true},
		{-1e200, 1e200, 400, true},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			res, log := Prod(test.x, test.y)
			a.Equal(test.log, log)
			a.InDelta(test.res, res, 1e-9)
		})
	}
}

func TestLog10Sum(t *testing.T) {
	a := assert.New(t)
	a.InDelta(math.Log10(30), Log10Sum(10, 20), 1e-12)
	a.InDelta(math.Log10(30), Log10Sum(20, 10), 1e-12)
	a.InDelta(300, Log10Sum(1e300, 1), 1e-12)
	a.True(math.IsInf(Log10Sum(0, 0), -1))
}

func TestSplitPow10(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		x, m, e float64
	}{
		{0, 1, 0},
		{1, 1, 1},
		{2.5, math.Pow(10, 0.5), 2},
		{1000, 1, 1000},
		{-1.5, math.Pow(10, 0.5), -2},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			m, e := SplitPow10(test.x)
			a.InDelta(test.m, m, 1e-12)
			a.Equal(test.e, e)
		})
	}
}

func TestIsOddInt(t *testing.T) {
	a := assert.New(t)
	a.True(IsOddInt(1))
	a.True(IsOddInt(-3))
	a.False(IsOddInt(2))
	a.False(IsOddInt(0))
	a.False(IsOddInt(0.5))
	a.False(IsOddInt(1e300))
	a.False(IsOddInt(math.Inf(1)))
	a.False(IsOddInt(math.NaN()))
}

func BenchmarkSum(b *testing.B) {
	var dummy float64
	for i := 0; i < b.N; i++ {
		v, _ := Sum(float64(i), 1e308)
		dummy += v
	}
	// this metric is just to prevent unwanted optimisations in calculations of `dummy.`
	b.ReportMetric(dummy, "dummy_metric")
}
