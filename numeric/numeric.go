// Package numeric holds the scalar and 3-vector helpers shared by the color
// conversions and the color-difference formulas.
package numeric

import (
	"math"
)

const degree = math.Pi / 180

// Mod returns n modulo m with the sign of m, so Mod(-30, 360) is 330.
func Mod(n, m float64) float64 {
	return math.Mod(math.Mod(n, m)+m, m)
}

// Pow is exp(y*ln(x)). It returns 1 when y is 0 and 0 when x is 0.
// x must not be negative.
func Pow(x, y float64) float64 {
	if y == 0 {
		return 1
	}
	if x == 0 {
		return 0
	}
	return math.Exp(y * math.Log(x))
}

// Round rounds num to place decimal digits. A negative place rounds to
// whole-number places, so Round(12, -1) is 10.
func Round(num float64, place int) float64 {
	scale := math.Pow10(place)
	return math.Round(scale*num) / scale
}

// Clip clamps num to [lo, hi]. The lower bound is checked first, so when
// lo > hi a num below lo yields lo.
func Clip(num, lo, hi float64) float64 {
	if num < lo {
		return lo
	}
	if num > hi {
		return hi
	}
	return num
}

// RangeMapping maps val linearly from [lo, hi] to [newLo, newHi]. Values
// outside [lo, hi] saturate at the ends of the new range. A degenerate
// source range maps everything to newLo.
func RangeMapping(val, lo, hi, newLo, newHi float64) float64 {
	if hi == lo {
		return newLo
	}
	ratio := Clip((val-lo)/(hi-lo), 0, 1)
	return newLo + ratio*(newHi-newLo)
}

// RangeMappingRound is RangeMapping followed by Round(·, place).
func RangeMappingRound(val, lo, hi, newLo, newHi float64, place int) float64 {
	return Round(RangeMapping(val, lo, hi, newLo, newHi), place)
}

func Deg2Rad(deg float64) float64 { return deg * degree }

func Rad2Deg(rad float64) float64 { return rad / degree }

// SquareSum returns the sum of squares of its arguments.
func SquareSum(vals ...float64) float64 {
	sum := 0.0
	for _, v := range vals {
		sum += v * v
	}
	return sum
}

// Norm2 is the euclidean norm of (a, b).
func Norm2(a, b float64) float64 {
	return math.Sqrt(a*a + b*b)
}

// Norm3 is the euclidean norm of (a, b, c).
func Norm3(a, b, c float64) float64 {
	return math.Sqrt(a*a + b*b + c*c)
}

// ElementwiseMean returns the mean of a and b at each index, truncated to
// the shorter of the two.
func ElementwiseMean(a, b []float64) []float64 {
	n := min(len(a), len(b))
	ans := make([]float64, n)
	for i := range n {
		ans[i] = (a[i] + b[i]) / 2
	}
	return ans
}
