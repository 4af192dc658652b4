// Package deltae implements the CIE76, CIE94 and CIEDE2000 color
// difference formulas over CIELAB. Smaller values mean more similar colors
// and every formula is 0 for identical inputs.
package deltae

import (
	"math"

	"github.com/mmuldo/hueorder/numeric"
	"github.com/mmuldo/hueorder/space"
)

// Func computes the difference between two CIELAB colors.
type Func func(a, b space.Lab) float64

// CIE76 is the euclidean distance in CIELAB.
func CIE76(a, b space.Lab) float64 {
	return numeric.Dist3(numeric.Vec3(a), numeric.Vec3(b))
}

// CIE94 is the graphic-arts CIE 1994 difference. The chroma and hue terms
// are weighted by the chroma of a alone, so CIE94(a, b) and CIE94(b, a)
// differ in general.
func CIE94(a, b space.Lab) float64 {
	c1 := numeric.Norm2(a[1], a[2])
	c2 := numeric.Norm2(b[1], b[2])
	da, db := a[1]-b[1], a[2]-b[2]
	dl := a[0] - b[0]
	dc := c1 - c2
	// Algebraically non-negative, but rounding can push it below zero.
	dh := math.Sqrt(max(0, da*da+db*db-dc*dc))
	return numeric.Norm3(dl, dc/(1+0.045*c1), dh/(1+0.015*c1))
}

// 25^7
const pow25_7 = 6103515625

var (
	cos6  = math.Cos(numeric.Deg2Rad(6))
	sin6  = math.Sin(numeric.Deg2Rad(6))
	cos30 = math.Cos(numeric.Deg2Rad(30))
	cos63 = math.Cos(numeric.Deg2Rad(63))
	sin63 = math.Sin(numeric.Deg2Rad(63))
)

// hueWeight is the T term of CIEDE2000,
//
//	1 - 0.17cos(h-30°) + 0.24cos(2h) + 0.32cos(3h+6°) - 0.20cos(4h-63°)
//
// expanded with multiple-angle identities so that only cos(h) and sin(h)
// are evaluated.
func hueWeight(hMean float64) float64 {
	rad := numeric.Deg2Rad(hMean)
	cosH, sinH := math.Cos(rad), math.Sin(rad)
	cos2H := 2*cosH*cosH - 1
	return 1 + 0.2*cos63 -
		0.17*(cosH*cos30+sinH/2) +
		0.32*((4*cosH*cosH-3)*cosH*cos6+(4*sinH*sinH-3)*sinH*sin6) +
		0.4*cos2H*(0.6-cos2H*cos63-2*cosH*sinH*sin63)
}

// hueAngle is atan2(b, a) in degrees, in [0, 360).
func hueAngle(b, a float64) float64 {
	h := numeric.Rad2Deg(math.Atan2(b, a))
	if h < 0 {
		h += 360
	}
	return h
}

// hueEps absorbs rounding in hue angles. Opposite hues land exactly 180
// degrees apart, which must not take the wrap branch.
const hueEps = 1e-9

// CIEDE2000 is the CIE 2000 color difference with unit weighting factors
// (kL = kC = kH = 1), following Sharma, Wu and Dalal (2005).
func CIEDE2000(a, b space.Lab) float64 {
	l1, a1, b1 := a[0], a[1], a[2]
	l2, a2, b2 := b[0], b[1], b[2]

	cMean7 := numeric.Pow((numeric.Norm2(a1, b1)+numeric.Norm2(a2, b2))/2, 7)
	// G rotates a* towards zero near the gray axis.
	g := (1 - math.Sqrt(cMean7/(cMean7+pow25_7))) / 2
	a1p := a1 * (1 + g)
	a2p := a2 * (1 + g)

	c1p := numeric.Norm2(a1p, b1)
	c2p := numeric.Norm2(a2p, b2)
	h1p := hueAngle(b1, a1p)
	h2p := hueAngle(b2, a2p)

	dhp := h2p - h1p
	hMeanP := (h1p + h2p) / 2
	switch {
	case c1p*c2p == 0:
		// The hue of a gray is undefined: no hue difference, and the mean
		// hue is that of the other color.
		dhp = 0
		hMeanP *= 2
	case dhp-180 > hueEps:
		dhp -= 360
		hMeanP = wrapMean(hMeanP)
	case dhp+180 < -hueEps:
		dhp += 360
		hMeanP = wrapMean(hMeanP)
	}

	lMean2 := (l1+l2)/2 - 50
	lMean2 *= lMean2
	cMeanP := (c1p + c2p) / 2
	cMeanP7 := numeric.Pow(cMeanP, 7)

	sl := 1 + 0.015*lMean2/math.Sqrt(20+lMean2)
	sc := 1 + 0.045*cMeanP
	sh := 1 + 0.015*cMeanP*hueWeight(hMeanP)
	e := hMeanP/25 - 11
	rt := 2 * math.Sqrt(cMeanP7/(cMeanP7+pow25_7)) * math.Sin(numeric.Deg2Rad(60*math.Exp(-e*e)))

	dl := (l2 - l1) / sl
	dc := (c2p - c1p) / sc
	dh := 2 * math.Sqrt(c1p*c2p) * math.Sin(numeric.Deg2Rad(dhp/2)) / sh
	// The radicand may come out a few ULPs below zero.
	return math.Sqrt(max(0, numeric.SquareSum(dl, dc, dh)-rt*dc*dh))
}

func wrapMean(h float64) float64 {
	if h < 180 {
		return h + 180
	}
	return h - 180
}
