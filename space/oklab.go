package space

import (
	"math"

	"github.com/mmuldo/hueorder/numeric"
)

// Oklab matrices, taking XYZ (D65, Y of white = 100) to the cone responses
// LMS and the cube-rooted LMS' to Lab, with their inverses.
var (
	xyzToLMS = numeric.Mat3{
		{8.189330101e-3, 3.618667424e-3, -1.288597137e-3},
		{0.329845436e-3, 9.293118715e-3, 0.361456387e-3},
		{0.482003018e-3, 2.643662691e-3, 6.338517070e-3},
	}
	lmsToOklab = numeric.Mat3{
		{0.2104542553, 0.7936177850, -0.0040720468},
		{1.9779984951, -2.4285922050, 0.4505937099},
		{0.0259040371, 0.7827717662, -0.8086757660},
	}
	oklabToLMS = numeric.Mat3{
		{0.9999999984505199, 0.39633779217376786, 0.2158037580607588},
		{1.0000000088817607, -0.10556134232365634, -0.0638541747717059},
		{1.000000054672411, -0.08948418209496577, -1.291485537864092},
	}
	lmsToXYZ = numeric.Mat3{
		{122.70138511035211, -55.77999806518222, 28.12561489664678},
		{-4.058017842328059, 111.225686961683, -7.167667866560119},
		{-7.63812845057069, -42.14819784180127, 158.6163220440795},
	}
)

// XYZToOklab converts XYZ relative to w into Oklab. Oklab is defined on
// D65, so XYZ under any other white is Bradford-adapted first.
func (w *White) XYZToOklab(c XYZ) Oklab {
	lms := w.toLMS.MulVec(numeric.Vec3(c))
	lms = numeric.Vec3{math.Cbrt(lms[0]), math.Cbrt(lms[1]), math.Cbrt(lms[2])}
	return Oklab(lmsToOklab.MulVec(lms))
}

// OklabToXYZ converts Oklab into XYZ relative to w.
func (w *White) OklabToXYZ(c Oklab) XYZ {
	lms := oklabToLMS.MulVec(numeric.Vec3(c))
	for i, v := range lms {
		lms[i] = v * v * v
	}
	return XYZ(w.fromLMS.MulVec(lms))
}

// RGBToOklab converts sRGB into Oklab. Gray input has a = b = 0 exactly.
func (w *White) RGBToOklab(c RGB) Oklab {
	lab := w.XYZToOklab(w.RGBToXYZ(c))
	if c.IsGray() {
		lab[1], lab[2] = 0, 0
	}
	return lab
}

func (w *White) OklabToRGB(c Oklab) RGB {
	return w.XYZToRGB(w.OklabToXYZ(c))
}

func OklabToOklch(c Oklab) Oklch { return Oklch(toPolar(c)) }

func OklchToOklab(c Oklch) Oklab { return Oklab(fromPolar(c)) }

func (w *White) RGBToOklch(c RGB) Oklch { return OklabToOklch(w.RGBToOklab(c)) }

func (w *White) OklchToRGB(c Oklch) RGB { return w.OklabToRGB(OklchToOklab(c)) }
