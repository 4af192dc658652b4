package space

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mmuldo/hueorder/numeric"
)

// ErrUnknownIlluminant is returned by ParseIlluminant for names other than
// D65 and D50.
var ErrUnknownIlluminant = errors.New("unknown illuminant")

// Illuminant names a supported reference white.
type Illuminant int

const (
	D65 Illuminant = iota
	D50
)

func (il Illuminant) String() string {
	if il == D50 {
		return "D50"
	}
	return "D65"
}

// ParseIlluminant resolves "D65" or "D50", ignoring case.
func ParseIlluminant(name string) (Illuminant, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "D65":
		return D65, nil
	case "D50":
		return D50, nil
	}
	return D65, fmt.Errorf("%w: %q", ErrUnknownIlluminant, name)
}

// sRGB to XYZ matrices, 2° observer, scaled so that Y of white is 100.
var (
	srgbToXYZD65 = numeric.Mat3{
		{41.24564, 35.75761, 18.04375},
		{21.26729, 71.51522, 7.21750},
		{1.93339, 11.9192, 95.03041},
	}
	srgbToXYZD50 = numeric.Mat3{
		{43.60747, 38.50649, 14.30804},
		{22.25045, 71.68786, 6.06169},
		{1.39322, 9.71045, 71.41733},
	}
)

// Bradford cone response matrix and its inverse.
var (
	bradford = numeric.Mat3{
		{0.8951, 0.2664, -0.1614},
		{-0.7502, 1.7135, 0.0367},
		{0.0389, -0.0685, 1.0296},
	}
	invBradford = numeric.Mat3{
		{0.9869929, -0.1470543, 0.1599627},
		{0.4323053, 0.5183603, 0.0492912},
		{-0.0085287, 0.0400428, 0.9684867},
	}
)

// White is a reference white together with everything derived from it: the
// RGB->XYZ matrix, its inverse and the XYZ of the white itself. A White is
// immutable once built and safe for concurrent use; pass it to every
// conversion that goes through XYZ.
type White struct {
	illuminant Illuminant
	toXYZ      numeric.Mat3
	fromXYZ    numeric.Mat3
	max        XYZ
	// XYZ->LMS and LMS->XYZ for Oklab, with the adaptation to D65 fused in.
	toLMS   numeric.Mat3
	fromLMS numeric.Mat3
}

var (
	WhiteD65 = mustWhite(D65)
	WhiteD50 = mustWhite(D50)
)

func mustWhite(il Illuminant) *White {
	w, err := NewWhite(il)
	if err != nil {
		panic(err)
	}
	return w
}

// NewWhite builds the conversion state for il. Values other than D50 fall
// back to D65.
func NewWhite(il Illuminant) (*White, error) {
	mat := srgbToXYZD65
	if il == D50 {
		mat = srgbToXYZD50
	} else {
		il = D65
	}
	inv, err := mat.Inverse()
	if err != nil {
		return nil, fmt.Errorf("reference white %s: %w", il, err)
	}
	w := &White{
		illuminant: il,
		toXYZ:      mat,
		fromXYZ:    inv,
		max:        XYZ(mat.RowSums()),
		toLMS:      xyzToLMS,
		fromLMS:    lmsToXYZ,
	}
	if il != D65 {
		d65 := srgbToXYZD65.RowSums()
		adapt := chromaticAdaptation(numeric.Vec3(w.max), d65)
		back := chromaticAdaptation(d65, numeric.Vec3(w.max))
		w.toLMS = xyzToLMS.Mul(&adapt)
		w.fromLMS = back.Mul(&lmsToXYZ)
	}
	return w, nil
}

// Illuminant reports which reference white w was built for.
func (w *White) Illuminant() Illuminant { return w.illuminant }

// Max is the XYZ of the reference white, the row sums of the RGB->XYZ
// matrix.
func (w *White) Max() XYZ { return w.max }

// Matrix returns the RGB->XYZ matrix.
func (w *White) Matrix() numeric.Mat3 { return w.toXYZ }

// InverseMatrix returns the XYZ->RGB matrix.
func (w *White) InverseMatrix() numeric.Mat3 { return w.fromXYZ }

func (w *White) String() string { return w.illuminant.String() }

// chromaticAdaptation builds the Bradford matrix adapting XYZ under src to
// XYZ under dst.
func chromaticAdaptation(src, dst numeric.Vec3) numeric.Mat3 {
	s := bradford.MulVec(src)
	d := bradford.MulVec(dst)
	diag := numeric.Mat3{
		{d[0] / s[0], 0, 0},
		{0, d[1] / s[1], 0},
		{0, 0, d[2] / s[2]},
	}
	tmp := diag.Mul(&bradford)
	return invBradford.Mul(&tmp)
}
