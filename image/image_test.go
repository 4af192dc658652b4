package image

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"

	"github.com/mmuldo/hueorder/space"
)

var stripeColors = []color.NRGBA{
	{0, 0, 0, 255},
	{255, 255, 255, 255},
	{220, 20, 20, 255},
	{20, 20, 220, 255},
}

// stripes returns a 40x40 image of vertical stripes 20, 10, 5 and 5 pixels
// wide.
func stripes() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 40, 40))
	for x := range 40 {
		var c color.NRGBA
		switch {
		case x < 20:
			c = stripeColors[0]
		case x < 30:
			c = stripeColors[1]
		case x < 35:
			c = stripeColors[2]
		default:
			c = stripeColors[3]
		}
		for y := range 40 {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func nrgbaToRGB(c color.NRGBA) space.RGB {
	return space.RGB{float64(c.R), float64(c.G), float64(c.B)}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	img := stripes()

	pngPath := filepath.Join(dir, "stripes.png")
	f, err := os.Create(pngPath)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())

	bmpPath := filepath.Join(dir, "stripes.bmp")
	f, err = os.Create(bmpPath)
	require.NoError(t, err)
	require.NoError(t, bmp.Encode(f, img))
	require.NoError(t, f.Close())

	for _, p := range []string{pngPath, bmpPath} {
		got, err := Load(p)
		require.NoError(t, err, p)
		require.Equal(t, img.Bounds(), got.Bounds())
		assert.Equal(t, nrgbaToRGB(stripeColors[1]), toRGB(got.At(25, 3)), p)
		assert.Equal(t, nrgbaToRGB(stripeColors[3]), toRGB(got.At(39, 39)), p)
	}

	_, err = Load(filepath.Join(dir, "missing.png"))
	require.ErrorIs(t, err, os.ErrNotExist)

	junk := filepath.Join(dir, "junk.png")
	require.NoError(t, os.WriteFile(junk, []byte("not an image"), 0o644))
	_, err = Load(junk)
	require.ErrorIs(t, err, image.ErrFormat)
}

func TestGetColors(t *testing.T) {
	img := stripes()
	m := GetColors(img, 1)
	require.Len(t, m, 4)
	assert.Equal(t, 800, m[nrgbaToRGB(stripeColors[0])])
	assert.Equal(t, 400, m[nrgbaToRGB(stripeColors[1])])
	assert.Equal(t, 200, m[nrgbaToRGB(stripeColors[2])])
	assert.Equal(t, 200, m[nrgbaToRGB(stripeColors[3])])

	m = GetColors(img, sampleStep)
	assert.Equal(t, 32, m[nrgbaToRGB(stripeColors[0])])
	assert.Equal(t, 8, m[nrgbaToRGB(stripeColors[3])])

	img.SetNRGBA(0, 0, color.NRGBA{})
	assert.Equal(t, 799, GetColors(img, 0)[nrgbaToRGB(stripeColors[0])])
}

func TestRankColors(t *testing.T) {
	ranked := RankColors(map[space.RGB]int{
		{255, 255, 255}: 3,
		{0, 0, 0}:       9,
		{200, 0, 0}:     3,
		{0, 0, 200}:     3,
		{10, 10, 10}:    1,
	})
	want := []space.RGB{{0, 0, 0}, {0, 0, 200}, {200, 0, 0}, {255, 255, 255}, {10, 10, 10}}
	assert.Equal(t, want, ranked.RGBs())
	assert.Equal(t, 9, ranked[0].Count)
	assert.Empty(t, RankColors(nil))
}

func TestExtract(t *testing.T) {
	got, err := Extract(stripes(), 4)
	require.NoError(t, err)
	require.Len(t, got, 4)
	// ranked by area: black stripe first, white second
	black, white := nrgbaToRGB(stripeColors[0]), nrgbaToRGB(stripeColors[1])
	assert.InDeltaSlice(t, black[:], got[0][:], 10)
	assert.InDeltaSlice(t, white[:], got[1][:], 10)

	two, err := Extract(stripes(), 2)
	require.NoError(t, err)
	require.Len(t, two, 2)

	_, err = Extract(stripes(), 0)
	require.Error(t, err)
}

func TestExtractNotEnoughColors(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 20, 20))
	for x := range 20 {
		for y := range 20 {
			img.SetNRGBA(x, y, color.NRGBA{40, 80, 120, 255})
		}
	}
	_, err := Extract(img, 4)
	require.ErrorIs(t, err, ErrNotEnoughColors)
}
