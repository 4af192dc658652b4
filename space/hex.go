package space

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/mmuldo/hueorder/numeric"
)

// ErrInvalidHex is returned by ParseHex for malformed strings.
var ErrInvalidHex = errors.New("invalid hex color")

// ParseHex parses #rgb, #rgba, #rrggbb and #rrggbbaa (the # is optional)
// into RGB channels, followed by alpha in [0, 1] when the string has one.
func ParseHex(s string) ([]float64, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(h) {
	case 3, 4:
		var b strings.Builder
		for _, r := range h {
			b.WriteRune(r)
			b.WriteRune(r)
		}
		h = b.String()
	case 6, 8:
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}
	ans := make([]float64, 0, 4)
	for i := 0; i < len(h); i += 2 {
		v, err := strconv.ParseUint(h[i:i+2], 16, 8)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidHex, s)
		}
		ans = append(ans, float64(v))
	}
	if len(ans) == 4 {
		ans[3] = numeric.Round(ans[3]/255, 3)
	}
	return ans, nil
}

func hexByte(v float64) string {
	return fmt.Sprintf("%02x", int(math.Round(numeric.Clip(v, 0, 255))))
}

// Hex formats c as #rrggbb, rounding and clipping each channel.
func (c RGB) Hex() string {
	return "#" + hexByte(c[0]) + hexByte(c[1]) + hexByte(c[2])
}

// Gray is the luma of c, the Y channel of YIQ, in [0, 255].
func Gray(c RGB) float64 {
	return 0.299*c[0] + 0.587*c[1] + 0.114*c[2]
}

// IsLight reports whether the luma of c is above the midpoint.
func IsLight(c RGB) bool {
	return Gray(c) > 127.5
}

// RelativeLuminance is the WCAG relative luminance of c, in [0, 1].
func RelativeLuminance(c RGB) float64 {
	linear := numeric.Vec3{srgbToLinear(c[0]), srgbToLinear(c[1]), srgbToLinear(c[2])}
	return numeric.Dot3(linear, numeric.Vec3{0.2126, 0.7152, 0.0722})
}

// ContrastRatio is the WCAG contrast ratio of two colors, at least 1 and
// rounded to two places.
func ContrastRatio(a, b RGB) float64 {
	ratio := (RelativeLuminance(a) + 0.05) / (RelativeLuminance(b) + 0.05)
	if ratio < 1 {
		ratio = 1 / ratio
	}
	return numeric.Round(ratio, 2)
}
