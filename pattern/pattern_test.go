// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package pattern

import (
	"math"
	"testing"

	"github.com/SoftbearStudios/soar/random"
	"github.com/SoftbearStudios/soar/space"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSurface(t *testing.T, width, height int) *space.Surface {
	t.Helper()
	surf, err := space.NewSurface(width, height, 1, 1, 1)
	require.NoError(t, err)
	return surf
}

func TestFill(t *testing.T) {
	s, err := space.New(37)
	require.NoError(t, err)

	Fill(s, 5.0)
	for i, v := range s.Data {
		require.Equal(t, 5.0, v, "index %d", i)
	}
}

func TestRandomize_Reproducible(t *testing.T) {
	rng := random.New(1)
	a, _ := space.New(100)
	b, _ := space.New(100)

	Randomize(a, rng, 31337, -2, 3)
	Randomize(b, rng, 31337, -2, 3)
	assert.Equal(t, a.Data, b.Data)

	for _, v := range a.Data {
		assert.GreaterOrEqual(t, v, -2.0)
		assert.Less(t, v, 3.0)
	}

	// A separately owned generator replays the same values.
	c, _ := space.New(100)
	Randomize(c, random.New(5), 31337, -2, 3)
	assert.Equal(t, a.Data, c.Data)
}

func TestRandomize_IndexOrder(t *testing.T) {
	s, _ := space.New(4)
	Randomize(s, random.New(1), 42, 0, 1)

	// Same stream as the generator replayed by hand.
	assert.Equal(t, []float64{0.19410591753418271, 0.5626318272656208, 0.4861061377100522, 0.27110556060271856}, s.Data)
}

func TestRandomize_TimeSeed(t *testing.T) {
	rng := random.New(1)
	s, _ := space.New(8)
	Randomize(s, rng, 0, 0, 1)
	assert.NotZero(t, rng.Seed())
}

func TestNormalize(t *testing.T) {
	s, _ := space.New(64)
	Randomize(s, random.New(1), 9, -40, 17)

	require.NoError(t, Normalize(s, 0, 1))
	lo, hi := s.MinMax()
	assert.Equal(t, 0.0, lo)
	assert.Equal(t, 1.0, hi)

	// Already in range.
	before := s.Copy()
	require.NoError(t, Normalize(s, 0, 1))
	assert.Equal(t, before.Data, s.Data)

	require.NoError(t, Normalize(s, 0.1, 0.3))
	lo, hi = s.MinMax()
	assert.Equal(t, 0.1, lo)
	assert.Equal(t, 0.3, hi)
	for _, v := range s.Data {
		assert.True(t, v >= 0.1 && v <= 0.3, "%v outside [0.1, 0.3]", v)
	}
}

func TestNormalize_Degenerate(t *testing.T) {
	s, _ := space.New(10)
	Fill(s, 3)

	require.NoError(t, Normalize(s, 0, 1))
	for _, v := range s.Data {
		assert.Equal(t, 3.0, v)
	}
}

func TestNormalize_Negative(t *testing.T) {
	s, _ := space.New(3)
	copy(s.Data, []float64{-3, -2, -1})

	require.NoError(t, Normalize(s, 0, 4))
	assert.Equal(t, []float64{0, 2, 4}, s.Data)
}

func TestNormalize_InvalidRange(t *testing.T) {
	s, _ := space.New(3)
	copy(s.Data, []float64{1, 2, 3})

	assert.ErrorIs(t, Normalize(s, 1, 0), ErrRange)
	assert.ErrorIs(t, Normalize(s, math.NaN(), 1), ErrRange)
	assert.Equal(t, []float64{1, 2, 3}, s.Data)
}

func TestNormalize_Extremes(t *testing.T) {
	s, _ := space.New(3)
	copy(s.Data, []float64{-math.MaxFloat64, 0, math.MaxFloat64})

	require.NoError(t, Normalize(s, 0, 1))
	assert.Equal(t, []float64{0, 0.5, 1}, s.Data)

	copy(s.Data, []float64{0, 1, 2})
	require.NoError(t, Normalize(s, -math.MaxFloat64, math.MaxFloat64))
	assert.Equal(t, []float64{-math.MaxFloat64, 0, math.MaxFloat64}, s.Data)
}

func TestNormalize_NonFinite(t *testing.T) {
	for _, bad := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		s, _ := space.New(3)
		copy(s.Data, []float64{1, bad, 3})

		assert.ErrorIs(t, Normalize(s, 0, 1), ErrRange, "%v", bad)
		assert.Equal(t, 1.0, s.Data[0])
		assert.Equal(t, 3.0, s.Data[2])
	}
}

func TestStipple_Regression(t *testing.T) {
	// 2x2 surface, four draws with seed 42 land on cells 0, 2, 1 and 1.
	surf := newSurface(t, 2, 2)
	Fill(surf.Space, 0)

	require.NoError(t, Stipple(surf.Space, random.New(1), 42, 1, 1.0, 1.0))

	expected := [2][2]float64{
		{1, 1},
		{1, 0},
	}
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			assert.Equal(t, expected[y][x], surf.Sample(float64(x), float64(y)), "(%d, %d)", x, y)
		}
	}
}

func TestStipple_Blend(t *testing.T) {
	s, _ := space.New(1)
	Fill(s, 1)

	// Every draw hits the only cell: 1 -> 0.75*1 + 0.25*5, applied round(1*2.4) = 2 times.
	require.NoError(t, Stipple(s, random.New(1), 3, 2.4, 0.25, 5))
	assert.InDelta(t, (1*0.75+1.25)*0.75+1.25, s.Data[0], 1e-12)
}

func TestStipple_Reproducible(t *testing.T) {
	a, _ := space.New(50)
	b, _ := space.New(50)
	rng := random.New(1)

	require.NoError(t, Stipple(a, rng, 8, 3, 0.5, 1))
	require.NoError(t, Stipple(b, rng, 8, 3, 0.5, 1))
	assert.Equal(t, a.Data, b.Data)
}

func TestStipple_Invalid(t *testing.T) {
	s, _ := space.New(4)
	Fill(s, 2)
	rng := random.New(1)

	assert.ErrorIs(t, Stipple(s, rng, 1, 1, 1.5, 0), ErrBlend)
	assert.ErrorIs(t, Stipple(s, rng, 1, 1, -0.1, 0), ErrBlend)
	assert.ErrorIs(t, Stipple(s, rng, 1, 1, math.NaN(), 0), ErrBlend)
	assert.ErrorIs(t, Stipple(s, rng, 1, -1, 0.5, 0), ErrReps)
	assert.ErrorIs(t, Stipple(s, rng, 1, math.Inf(1), 0.5, 0), ErrReps)

	for _, v := range s.Data {
		assert.Equal(t, 2.0, v)
	}
}

func TestScratch(t *testing.T) {
	surf := newSurface(t, 4, 4)

	require.NoError(t, Scratch(surf, 1, 1, 0.5, 1.5, 1, 0, 3))
	assert.Equal(t, []float64{
		0, 0, 0, 0,
		1, 1, 1, 0,
		0, 0, 0, 0,
		0, 0, 0, 0,
	}, surf.Data)
}

func TestScratch_Wraparound(t *testing.T) {
	surf := newSurface(t, 4, 4)

	// Moving -x from column 0 lands on column 3, moving +y from row 3 lands on row 0.
	require.NoError(t, Scratch(surf, 1, 1, 0, 3, -1, 1, 2))
	assert.Equal(t, 1.0, surf.Data[surf.Index(0, 3)])
	assert.Equal(t, 1.0, surf.Data[surf.Index(3, 0)])

	// A long line wraps many times but never leaves the surface.
	other := newSurface(t, 4, 4)
	require.NoError(t, Scratch(other, 0.5, 1, 3.9, 0.1, 1.3, -0.7, 1000))
	for _, v := range other.Data {
		assert.True(t, v >= 0 && v <= 1)
	}
}

func TestScratch_Invalid(t *testing.T) {
	surf := newSurface(t, 4, 4)

	assert.ErrorIs(t, Scratch(surf, 2, 1, 0, 0, 1, 0, 4), ErrBlend)
	assert.ErrorIs(t, Scratch(surf, 1, 1, 4, 0, 1, 0, 4), ErrOrigin)
	assert.ErrorIs(t, Scratch(surf, 1, 1, 0, -0.5, 1, 0, 4), ErrOrigin)
	assert.ErrorIs(t, Scratch(surf, 1, 1, 0, 0, math.NaN(), 0, 4), ErrRange)
	assert.ErrorIs(t, Scratch(surf, 1, 1, 0, 0, 1, 0, -1), ErrReps)

	for _, v := range surf.Data {
		assert.Zero(t, v)
	}
}

func TestWalk_Wraparound(t *testing.T) {
	tests := []struct {
		name string
		odds Odds
	}{
		{"+x", Odds{PosX: 1}},
		{"+y", Odds{PosY: 1}},
		{"-x", Odds{NegX: 1}},
		{"-y", Odds{NegY: 1}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			surf := newSurface(t, 4, 4)

			// Sixteen steps in one direction cross the edge at least
			// three times and revisit each cell of the row or column four times.
			require.NoError(t, Walk(surf, random.New(1), 77, 1, 1, 1, test.odds))

			var touched int
			for _, v := range surf.Data {
				if v == 1 {
					touched++
				} else {
					assert.Zero(t, v)
				}
			}
			assert.Equal(t, 4, touched)
		})
	}
}

func TestWalk_Diagonal(t *testing.T) {
	surf := newSurface(t, 4, 4)

	// +x and +y every step traces the wrapped diagonal through the start cell.
	require.NoError(t, Walk(surf, random.New(1), 5, 1, 1, 1, Odds{PosX: 1, PosY: 1}))

	var touched int
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if surf.Data[surf.Index(x, y)] == 1 {
				touched++
			}
		}
	}
	assert.Equal(t, 4, touched)
}

func TestWalk_Stationary(t *testing.T) {
	surf := newSurface(t, 3, 3)

	require.NoError(t, Walk(surf, random.New(1), 9, 2, 0.5, 1, Odds{}))

	// Eighteen blends onto a single cell.
	var touched int
	for _, v := range surf.Data {
		if v != 0 {
			touched++
			assert.InDelta(t, 1-math.Pow(0.5, 18), v, 1e-12)
		}
	}
	assert.Equal(t, 1, touched)
}

func TestWalk_Reproducible(t *testing.T) {
	a := newSurface(t, 8, 8)
	b := newSurface(t, 8, 8)
	odds := Odds{PosX: 0.3, PosY: 0.4, NegX: 0.3, NegY: 0.2}

	require.NoError(t, Walk(a, random.New(1), 123, 1.5, 0.1, 1, odds))
	require.NoError(t, Walk(b, random.New(2), 123, 1.5, 0.1, 1, odds))
	assert.Equal(t, a.Data, b.Data)
}

func TestWalk_Invalid(t *testing.T) {
	surf := newSurface(t, 4, 4)
	rng := random.New(1)

	assert.ErrorIs(t, Walk(surf, rng, 1, 1, 1, 1, Odds{PosX: 1.1}), ErrProbability)
	assert.ErrorIs(t, Walk(surf, rng, 1, 1, 1, 1, Odds{NegY: -1}), ErrProbability)
	assert.ErrorIs(t, Walk(surf, rng, 1, 1, 7, 1, Odds{}), ErrBlend)
	assert.ErrorIs(t, Walk(surf, rng, 1, -2, 1, 1, Odds{}), ErrReps)

	for _, v := range surf.Data {
		assert.Zero(t, v)
	}
}
