// Package space converts colors between sRGB and the CIE and Oklab families
// of color spaces.
//
// Every space has its own vector type so that, for instance, a Lab value
// cannot be handed to code expecting RGB. RGB channels are in [0, 255],
// CIE lightness in [0, 100] and hues in degrees in [0, 360). Conversions
// that go through CIE XYZ are methods on *White, the reference white they
// are relative to.
package space

import (
	"math"

	"github.com/mmuldo/hueorder/numeric"
)

type (
	RGB   [3]float64
	XYZ   [3]float64
	Lab   [3]float64
	Luv   [3]float64
	LChab [3]float64
	LChuv [3]float64
	Oklab [3]float64
	Oklch [3]float64
)

func (c RGB) IsGray() bool { return c[0] == c[1] && c[1] == c[2] }

func (c Lab) L() float64 { return c[0] }

func (c Lab) A() float64 { return c[1] }

func (c Lab) B() float64 { return c[2] }

// Chroma is the polar radius of the a*b* plane.
func (c Lab) Chroma() float64 { return numeric.Norm2(c[1], c[2]) }

// srgbToLinear linearizes an sRGB channel in [0, 255] into [0, 1].
func srgbToLinear(val float64) float64 {
	// 10.31475 = 0.04045 * 255, 3294.6 = 12.92 * 255
	if val < 10.31475 {
		return val / 3294.6
	}
	return numeric.Pow((val+14.025)/269.025, 2.4)
}

// linearToSRGB applies the sRGB gamma to a linear channel in [0, 1] and
// scales to [0, 255].
func linearToSRGB(val float64) float64 {
	if val < 0.0031308 {
		return val * 3294.6
	}
	return numeric.Pow(val, 1/2.4)*269.025 - 14.025
}

// finiteOr0 replaces NaN and infinities with 0.
func finiteOr0(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// RGBToXYZ linearizes c and applies the RGB->XYZ matrix of w.
func (w *White) RGBToXYZ(c RGB) XYZ {
	linear := numeric.Vec3{srgbToLinear(c[0]), srgbToLinear(c[1]), srgbToLinear(c[2])}
	return XYZ(w.toXYZ.MulVec(linear))
}

// XYZToRGB applies the XYZ->RGB matrix of w and then the sRGB gamma. Linear
// values are clipped to [0, 1] first, which is the only gamut mapping done.
func (w *White) XYZToRGB(c XYZ) RGB {
	linear := w.fromXYZ.MulVec(numeric.Vec3(c))
	return RGB{
		linearToSRGB(numeric.Clip(linear[0], 0, 1)),
		linearToSRGB(numeric.Clip(linear[1], 0, 1)),
		linearToSRGB(numeric.Clip(linear[2], 0, 1)),
	}
}
