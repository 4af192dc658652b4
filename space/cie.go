package space

import (
	"math"

	"github.com/mmuldo/hueorder/numeric"
)

const (
	cieDelta = 6.0 / 29.0
	// cieEpsilon is cieDelta cubed, the point where cieF switches from
	// linear to cube root.
	cieEpsilon = cieDelta * cieDelta * cieDelta
	// 1 / (3 * cieDelta^2), the slope of the cube root at cieEpsilon.
	cieSlope = 841.0 / 108.0
	cieBias  = 4.0 / 29.0
)

// cieF maps [0, 1] onto [4/29, 1]. The linear segment below cieEpsilon
// joins the cube root with matching value and slope.
func cieF(t float64) float64 {
	if t > cieEpsilon {
		return math.Cbrt(t)
	}
	return cieSlope*t + cieBias
}

// cieFInv is the inverse of cieF.
func cieFInv(t float64) float64 {
	if t > cieDelta {
		return t * t * t
	}
	return (t - cieBias) / cieSlope
}

// XYZToLab converts XYZ relative to w into CIELAB.
func (w *White) XYZToLab(c XYZ) Lab {
	fx := cieF(c[0] / w.max[0])
	fy := cieF(c[1] / w.max[1])
	fz := cieF(c[2] / w.max[2])
	return Lab{116*fy - 16, 500 * (fx - fy), 200 * (fy - fz)}
}

// LabToXYZ converts CIELAB into XYZ relative to w.
func (w *White) LabToXYZ(c Lab) XYZ {
	fy := (c[0] + 16) / 116
	fx := fy + c[1]/500
	fz := fy - c[2]/200
	return XYZ{
		cieFInv(fx) * w.max[0],
		cieFInv(fy) * w.max[1],
		cieFInv(fz) * w.max[2],
	}
}

// RGBToLab converts sRGB into CIELAB. Gray input has a* = b* = 0 exactly.
func (w *White) RGBToLab(c RGB) Lab {
	lab := w.XYZToLab(w.RGBToXYZ(c))
	if c.IsGray() {
		lab[1], lab[2] = 0, 0
	}
	return lab
}

func (w *White) LabToRGB(c Lab) RGB {
	return w.XYZToRGB(w.LabToXYZ(c))
}

// uvWeight is the denominator X + 15Y + 3Z of the u'v' chromaticity.
func uvWeight(c XYZ) float64 {
	return c[0] + 15*c[1] + 3*c[2]
}

// whiteUV returns the u'v' chromaticity of w.
func (w *White) whiteUV() (u0, v0 float64) {
	d := uvWeight(w.max)
	return 4 * w.max[0] / d, 9 * w.max[1] / d
}

// XYZToLuv converts XYZ relative to w into CIELUV. Black, where the
// chromaticity is undefined, maps to u* = v* = 0.
func (w *White) XYZToLuv(c XYZ) Luv {
	u0, v0 := w.whiteUV()
	l := 116*cieF(c[1]/w.max[1]) - 16
	d := uvWeight(c)
	if d == 0 {
		return Luv{l, 0, 0}
	}
	u := 4 * c[0] / d
	v := 9 * c[1] / d
	return Luv{l, finiteOr0(13 * l * (u - u0)), finiteOr0(13 * l * (v - v0))}
}

// LuvToXYZ converts CIELUV into XYZ relative to w. Zero lightness is black.
func (w *White) LuvToXYZ(c Luv) XYZ {
	l := c[0]
	if l == 0 {
		return XYZ{}
	}
	u0, v0 := w.whiteUV()
	y := cieFInv((l+16)/116) * w.max[1]
	u := c[1]/(13*l) + u0
	v := c[2]/(13*l) + v0
	if v == 0 {
		return XYZ{0, y, 0}
	}
	x := y * 9 * u / (4 * v)
	z := y * (12 - 3*u - 20*v) / (4 * v)
	return XYZ{finiteOr0(x), y, finiteOr0(z)}
}

// RGBToLuv converts sRGB into CIELUV. Gray input has u* = v* = 0 exactly.
func (w *White) RGBToLuv(c RGB) Luv {
	luv := w.XYZToLuv(w.RGBToXYZ(c))
	if c.IsGray() {
		luv[1], luv[2] = 0, 0
	}
	return luv
}

// LuvToRGB converts CIELUV into sRGB. The mapping is sharply nonlinear near
// black: small changes of L* there may swing the hue completely.
func (w *White) LuvToRGB(c Luv) RGB {
	return w.XYZToRGB(w.LuvToXYZ(c))
}

// toPolar converts (L, c1, c2) into (L, chroma, hue) with the hue in
// degrees in [0, 360). A zero chroma has hue 0.
func toPolar(v [3]float64) [3]float64 {
	c := numeric.Norm2(v[1], v[2])
	if c == 0 {
		return [3]float64{v[0], 0, 0}
	}
	h := numeric.Rad2Deg(math.Atan2(v[2], v[1]))
	if h < 0 {
		h += 360
	}
	if h >= 360 {
		h -= 360
	}
	return [3]float64{v[0], c, h}
}

func fromPolar(v [3]float64) [3]float64 {
	rad := numeric.Deg2Rad(v[2])
	return [3]float64{v[0], v[1] * math.Cos(rad), v[1] * math.Sin(rad)}
}

func LabToLChab(c Lab) LChab { return LChab(toPolar(c)) }

func LChabToLab(c LChab) Lab { return Lab(fromPolar(c)) }

func LuvToLChuv(c Luv) LChuv { return LChuv(toPolar(c)) }

func LChuvToLuv(c LChuv) Luv { return Luv(fromPolar(c)) }

func (w *White) RGBToLChab(c RGB) LChab { return LabToLChab(w.RGBToLab(c)) }

func (w *White) LChabToRGB(c LChab) RGB { return w.LabToRGB(LChabToLab(c)) }

func (w *White) RGBToLChuv(c RGB) LChuv { return LuvToLChuv(w.RGBToLuv(c)) }

func (w *White) LChuvToRGB(c LChuv) RGB { return w.LuvToRGB(LChuvToLuv(c)) }
