package image

import (
	"errors"
	"fmt"
	"image"

	"github.com/esimov/colorquant"

	"github.com/mmuldo/hueorder/space"
)

// ErrNotEnoughColors is returned by Extract when the quantized image has
// fewer distinct colors than requested.
var ErrNotEnoughColors = errors.New("not enough color variation")

// sampleStep is the pixel stride used when counting quantized colors.
const sampleStep = 5

// Extract reduces img to num colors and returns them from most to least
// common.
func Extract(img image.Image, num int) ([]space.RGB, error) {
	if num < 1 {
		return nil, fmt.Errorf("palette size must be positive, got %d", num)
	}

	o := image.NewNRGBA(img.Bounds())
	colorquant.NoDither.Quantize(img, o, num, false, true)

	m := GetColors(o, sampleStep)
	if len(m) < num {
		return nil, fmt.Errorf("%w: %d colors requested, image has %d", ErrNotEnoughColors, num, len(m))
	}

	ranked := RankColors(m)
	return ranked[:num].RGBs(), nil
}
