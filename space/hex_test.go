package space

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHex(t *testing.T) {
	for in, want := range map[string][]float64{
		"#ff0000":   {255, 0, 0},
		"00ff7f":    {0, 255, 127},
		"#abc":      {0xaa, 0xbb, 0xcc},
		"#0000ff80": {0, 0, 255, 0.502},
		"#fff0":     {255, 255, 255, 0},
	} {
		got, err := ParseHex(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	for _, in := range []string{"", "#12", "#12345", "#gggggg"} {
		_, err := ParseHex(in)
		require.ErrorIs(t, err, ErrInvalidHex, in)
	}
}

func TestHex(t *testing.T) {
	assert.Equal(t, "#ff0000", RGB{255, 0, 0}.Hex())
	assert.Equal(t, "#00ff80", RGB{-3, 300, 127.6}.Hex())
}

func TestLuminance(t *testing.T) {
	assert.InDelta(t, 76.245, Gray(RGB{255, 0, 0}), 1e-9)
	assert.True(t, IsLight(RGB{255, 255, 255}))
	assert.False(t, IsLight(RGB{120, 120, 120}))
	assert.InDelta(t, 1.0, RelativeLuminance(RGB{255, 255, 255}), 1e-9)
	assert.Equal(t, 0.0, RelativeLuminance(RGB{}))
	assert.Equal(t, 21.0, ContrastRatio(RGB{}, RGB{255, 255, 255}))
	assert.Equal(t, 21.0, ContrastRatio(RGB{255, 255, 255}, RGB{}))
	assert.Equal(t, 1.0, ContrastRatio(RGB{9, 9, 9}, RGB{9, 9, 9}))
}
