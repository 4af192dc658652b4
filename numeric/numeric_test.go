package numeric

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPow(t *testing.T) {
	for _, tc := range []struct {
		x, y, want float64
	}{
		{0, 0, 1},
		{0, 1, 0},
		{5, 0, 1},
		{0, math.Inf(1), 0},
		{0, -2, 0},
	} {
		require.Equal(t, tc.want, Pow(tc.x, tc.y), "Pow(%v, %v)", tc.x, tc.y)
	}
	for _, x := range []float64{0.01, 0.5, 1, 2.5, 255} {
		for _, y := range []float64{-1.5, 1.0 / 2.4, 2.4, 7} {
			assert.InEpsilon(t, math.Pow(x, y), Pow(x, y), 1e-12)
		}
	}
}

func TestRound(t *testing.T) {
	for _, tc := range []struct {
		num   float64
		place int
		want  float64
	}{
		{0, 0, 0},
		{0.12345, 0, 0},
		{0.54321, 0, 1},
		{0.45862, 2, 0.46},
		{0.99462, 5, 0.99462},
		{12, -1, 10},
	} {
		assert.InDelta(t, tc.want, Round(tc.num, tc.place), 1e-12, "Round(%v, %d)", tc.num, tc.place)
	}
}

func TestClip(t *testing.T) {
	assert.Equal(t, 0.0, Clip(-3, 0, 1))
	assert.Equal(t, 1.0, Clip(3, 0, 1))
	assert.Equal(t, 0.25, Clip(0.25, 0, 1))
	// inverted bounds: below lo wins over hi
	assert.Equal(t, 5.0, Clip(1, 5, 2))
	assert.Equal(t, 2.0, Clip(7, 5, 2))
}

func TestRangeMapping(t *testing.T) {
	assert.InDelta(t, 50.0, RangeMapping(0.5, 0, 1, 0, 100), 1e-12)
	assert.InDelta(t, 0.0, RangeMapping(-4, 0, 1, 0, 100), 1e-12)
	assert.InDelta(t, 100.0, RangeMapping(4, 0, 1, 0, 100), 1e-12)
	assert.InDelta(t, 127.5, RangeMapping(50, 0, 100, 0, 255), 1e-12)
	assert.InDelta(t, 10.0, RangeMapping(3, 3, 3, 10, 20), 1e-12)
	assert.InDelta(t, 33.33, RangeMappingRound(1, 0, 3, 0, 100, 2), 1e-12)
}

func TestDegRad(t *testing.T) {
	assert.InDelta(t, math.Pi, Deg2Rad(180), 1e-15)
	assert.InDelta(t, 90.0, Rad2Deg(math.Pi/2), 1e-12)
	for _, d := range []float64{-720, -30, 0, 45, 359.5} {
		assert.InDelta(t, d, Rad2Deg(Deg2Rad(d)), 1e-9)
	}
}

func TestMod(t *testing.T) {
	assert.Equal(t, 330.0, Mod(-30, 360))
	assert.Equal(t, 30.0, Mod(390, 360))
	assert.Equal(t, 0.0, Mod(360, 360))
}

func TestVectors(t *testing.T) {
	a, b := Vec3{1, 2, 3}, Vec3{4, 6, 3}
	assert.Equal(t, 25.0, Dot3(a, b))
	assert.Equal(t, 5.0, Dist3(a, b))
	assert.Equal(t, 5.0, Dist3(b, a))
	assert.InDelta(t, math.Sqrt(14), a.Norm(), 1e-15)
	assert.Equal(t, 5.0, Norm2(3, 4))
	assert.Equal(t, 3.0, Norm3(1, 2, 2))
	assert.Equal(t, 30.0, SquareSum(1, 2, 3, 4))
	assert.Equal(t, []float64{1.5, 3}, ElementwiseMean([]float64{1, 2, 9}, []float64{2, 4}))
}

func TestInverse(t *testing.T) {
	m := Mat3{
		{41.24564, 35.75761, 18.04375},
		{21.26729, 71.51522, 7.21750},
		{1.93339, 11.9192, 95.03041},
	}
	inv, err := m.Inverse()
	require.NoError(t, err)
	id := m.Mul(&inv)
	for i := range 3 {
		for j := range 3 {
			want := 0.0
			if i == j {
				want = 1
			}
			assert.InDelta(t, want, id[i][j], 1e-12)
		}
	}
	v := Vec3{0.2, 0.5, 0.9}
	back := inv.MulVec(m.MulVec(v))
	assert.InDeltaSlice(t, v[:], back[:], 1e-12)
	sums := m.RowSums()
	assert.InDeltaSlice(t, []float64{95.047, 100.00001, 108.883}, sums[:], 1e-9)

	_, err = (&Mat3{{1, 2, 3}, {2, 4, 6}, {0, 1, 1}}).Inverse()
	require.ErrorIs(t, err, ErrSingular)
}
