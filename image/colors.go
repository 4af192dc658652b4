package image

import (
	"image"
	"image/color"
	"sort"

	"github.com/mmuldo/hueorder/space"
)

// ColorCount is a color and the number of sampled pixels that have it.
type ColorCount struct {
	Color space.RGB
	Count int
}

// ColorCountList sorts by descending count, darker colors first on ties.
type ColorCountList []ColorCount

func (ccl ColorCountList) Len() int { return len(ccl) }
func (ccl ColorCountList) Less(i, j int) bool {
	a, b := ccl[i], ccl[j]
	if a.Count != b.Count {
		return a.Count > b.Count
	}
	if ga, gb := space.Gray(a.Color), space.Gray(b.Color); ga != gb {
		return ga < gb
	}
	for k := range a.Color {
		if a.Color[k] != b.Color[k] {
			return a.Color[k] < b.Color[k]
		}
	}
	return false
}
func (ccl ColorCountList) Swap(i, j int) { ccl[i], ccl[j] = ccl[j], ccl[i] }

// RGBs returns the colors of the list in order.
func (ccl ColorCountList) RGBs() []space.RGB {
	ans := make([]space.RGB, len(ccl))
	for i, cc := range ccl {
		ans[i] = cc.Color
	}
	return ans
}

func toRGB(c color.Color) space.RGB {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return space.RGB{float64(n.R), float64(n.G), float64(n.B)}
}

// GetColors counts the colors of img on a grid with the given step.
// Fully transparent pixels are skipped.
func GetColors(img image.Image, step int) map[space.RGB]int {
	if step < 1 {
		step = 1
	}
	m := make(map[space.RGB]int)

	b := img.Bounds()
	for x := b.Min.X; x < b.Max.X; x += step {
		for y := b.Min.Y; y < b.Max.Y; y += step {
			c := img.At(x, y)
			if _, _, _, a := c.RGBA(); a == 0 {
				continue
			}
			m[toRGB(c)]++
		}
	}

	return m
}

// RankColors orders the counted colors from most to least common.
func RankColors(m map[space.RGB]int) ColorCountList {
	cc := make(ColorCountList, 0, len(m))
	for k, v := range m {
		cc = append(cc, ColorCount{k, v})
	}

	sort.Sort(cc)
	return cc
}
