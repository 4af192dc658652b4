package space

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrShortVector is returned when a color has fewer than three channels.
	ErrShortVector = errors.New("color needs at least 3 channels")
	// ErrUnknownSpace is returned by ParseSpace for unrecognized names.
	ErrUnknownSpace = errors.New("unknown color space")
)

// Space enumerates the supported color spaces.
type Space int

const (
	SpaceRGB Space = iota
	SpaceXYZ
	SpaceLab
	SpaceLuv
	SpaceLChab
	SpaceLChuv
	SpaceOklab
	SpaceOklch
	numSpaces
)

// Range is the nominal [Min, Max] interval of a channel.
type Range struct {
	Min, Max float64
}

type descriptor struct {
	name    string
	aliases []string
	labels  [3]string
	ranges  func(w *White) [3]Range
	fromRGB func(w *White, c RGB) [3]float64
	toRGB   func(w *White, c [3]float64) RGB
	// whiteTagged marks values that are only meaningful together with
	// their reference white.
	whiteTagged bool
}

func fixed(r [3]Range) func(*White) [3]Range {
	return func(*White) [3]Range { return r }
}

var (
	lchRanges = [3]Range{{0, 100}, {0, 100}, {0, 360}}
	labRanges = [3]Range{{0, 100}, {-125, 125}, {-125, 125}}
)

var descriptors = [numSpaces]descriptor{
	SpaceRGB: {
		name:    "RGB",
		aliases: []string{"SRGB"},
		labels:  [3]string{"Red", "Green", "Blue"},
		ranges:  fixed([3]Range{{0, 255}, {0, 255}, {0, 255}}),
		fromRGB: func(_ *White, c RGB) [3]float64 { return c },
		toRGB:   func(_ *White, c [3]float64) RGB { return c },
	},
	SpaceXYZ: {
		name:        "CIEXYZ",
		aliases:     []string{"XYZ"},
		labels:      [3]string{"X", "Y", "Z"},
		whiteTagged: true,
		ranges: func(w *White) [3]Range {
			return [3]Range{{0, w.max[0]}, {0, w.max[1]}, {0, w.max[2]}}
		},
		fromRGB: func(w *White, c RGB) [3]float64 { return w.RGBToXYZ(c) },
		toRGB:   func(w *White, c [3]float64) RGB { return w.XYZToRGB(c) },
	},
	SpaceLab: {
		name:    "CIELAB",
		aliases: []string{"LAB"},
		labels:  [3]string{"L*", "a*", "b*"},
		ranges:  fixed(labRanges),
		fromRGB: func(w *White, c RGB) [3]float64 { return w.RGBToLab(c) },
		toRGB:   func(w *White, c [3]float64) RGB { return w.LabToRGB(c) },
	},
	SpaceLuv: {
		name:    "CIELUV",
		aliases: []string{"LUV"},
		labels:  [3]string{"L*", "u*", "v*"},
		ranges:  fixed([3]Range{{0, 100}, {-134, 220}, {-140, 122}}),
		fromRGB: func(w *White, c RGB) [3]float64 { return w.RGBToLuv(c) },
		toRGB:   func(w *White, c [3]float64) RGB { return w.LuvToRGB(c) },
	},
	SpaceLChab: {
		name:    "CIELCH(ab)",
		aliases: []string{"LCHAB", "LCH"},
		labels:  [3]string{"L*", "C*", "h"},
		ranges:  fixed(lchRanges),
		fromRGB: func(w *White, c RGB) [3]float64 { return w.RGBToLChab(c) },
		toRGB:   func(w *White, c [3]float64) RGB { return w.LChabToRGB(c) },
	},
	SpaceLChuv: {
		name:    "CIELCH(uv)",
		aliases: []string{"LCHUV"},
		labels:  [3]string{"L*", "C*", "h"},
		ranges:  fixed(lchRanges),
		fromRGB: func(w *White, c RGB) [3]float64 { return w.RGBToLChuv(c) },
		toRGB:   func(w *White, c [3]float64) RGB { return w.LChuvToRGB(c) },
	},
	SpaceOklab: {
		name:    "OKLAB",
		labels:  [3]string{"L", "a", "b"},
		ranges:  fixed([3]Range{{0, 1}, {-0.4, 0.4}, {-0.4, 0.4}}),
		fromRGB: func(w *White, c RGB) [3]float64 { return w.RGBToOklab(c) },
		toRGB:   func(w *White, c [3]float64) RGB { return w.OklabToRGB(c) },
	},
	SpaceOklch: {
		name:    "OKLCH",
		labels:  [3]string{"L", "C", "h"},
		ranges:  fixed([3]Range{{0, 1}, {0, 0.4}, {0, 360}}),
		fromRGB: func(w *White, c RGB) [3]float64 { return w.RGBToOklch(c) },
		toRGB:   func(w *White, c [3]float64) RGB { return w.OklchToRGB(c) },
	},
}

// Spaces lists every supported space in declaration order.
func Spaces() []Space {
	ans := make([]Space, numSpaces)
	for i := range ans {
		ans[i] = Space(i)
	}
	return ans
}

func (s Space) Valid() bool { return s >= 0 && s < numSpaces }

func (s Space) desc() *descriptor {
	if !s.Valid() {
		return &descriptors[SpaceRGB]
	}
	return &descriptors[s]
}

func (s Space) String() string {
	if !s.Valid() {
		return "Space(" + strconv.Itoa(int(s)) + ")"
	}
	return descriptors[s].name
}

// Labels returns the human readable channel names.
func (s Space) Labels() [3]string { return s.desc().labels }

// Ranges returns the nominal range of each channel. Only the XYZ ranges
// depend on the reference white.
func (s Space) Ranges(w *White) [3]Range { return s.desc().ranges(w) }

// WhiteTag reports the illuminant of w for spaces whose values are tied to
// the reference white, which is only CIEXYZ.
func (s Space) WhiteTag(w *White) (Illuminant, bool) {
	if !s.desc().whiteTagged {
		return 0, false
	}
	return w.Illuminant(), true
}

// ParseSpace resolves a space by name, alias or position in Spaces(),
// ignoring case.
func ParseSpace(name string) (Space, error) {
	key := strings.TrimSpace(name)
	if idx, err := strconv.Atoi(key); err == nil {
		if s := Space(idx); s.Valid() {
			return s, nil
		}
		return SpaceRGB, fmt.Errorf("%w: index %d", ErrUnknownSpace, idx)
	}
	for i := range descriptors {
		d := &descriptors[i]
		if strings.EqualFold(d.name, key) {
			return Space(i), nil
		}
		for _, a := range d.aliases {
			if strings.EqualFold(a, key) {
				return Space(i), nil
			}
		}
	}
	return SpaceRGB, fmt.Errorf("%w: %q", ErrUnknownSpace, name)
}

// split separates the color channels from an optional trailing alpha.
func split(c []float64) (ch [3]float64, alpha []float64, err error) {
	if len(c) < 3 {
		return ch, nil, fmt.Errorf("%w: got %d", ErrShortVector, len(c))
	}
	copy(ch[:], c)
	if len(c) > 3 {
		alpha = c[3:4]
	}
	return
}

func join(ch [3]float64, alpha []float64) []float64 {
	return append(ch[:], alpha...)
}

// FromRGB converts RGB channels, optionally followed by alpha, into s. Alpha
// is copied through untouched.
func (s Space) FromRGB(w *White, c []float64) ([]float64, error) {
	ch, alpha, err := split(c)
	if err != nil {
		return nil, err
	}
	return join(s.desc().fromRGB(w, ch), alpha), nil
}

// ToRGB converts channels of s, optionally followed by alpha, into RGB.
func (s Space) ToRGB(w *White, c []float64) ([]float64, error) {
	ch, alpha, err := split(c)
	if err != nil {
		return nil, err
	}
	return join(s.desc().toRGB(w, ch), alpha), nil
}

// Convert converts a color from one space to another, going through RGB
// when neither end is RGB.
func Convert(w *White, from, to Space, c []float64) ([]float64, error) {
	ch, alpha, err := split(c)
	if err != nil {
		return nil, err
	}
	switch {
	case from == to:
		return join(ch, alpha), nil
	case from == SpaceRGB:
		return join(to.desc().fromRGB(w, ch), alpha), nil
	case to == SpaceRGB:
		return join(from.desc().toRGB(w, ch), alpha), nil
	}
	return join(to.desc().fromRGB(w, from.desc().toRGB(w, ch)), alpha), nil
}
