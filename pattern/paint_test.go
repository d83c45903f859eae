// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package pattern

import (
	"testing"

	"github.com/SoftbearStudios/soar/noise"
	"github.com/SoftbearStudios/soar/space"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type constant float64

func (c constant) Eval2(float64, float64) float64 {
	return float64(c)
}

func TestPaint(t *testing.T) {
	surf := newSurface(t, 8, 4)
	Fill(surf.Space, 1)

	require.NoError(t, Paint(surf, constant(3), 0.5))
	for _, v := range surf.Data {
		assert.InDelta(t, 2, v, 1e-12)
	}

	assert.ErrorIs(t, Paint(surf, constant(3), 1.5), ErrBlend)
	assert.InDelta(t, 2, surf.Data[0], 1e-12)
}

func TestPaint_Seamless(t *testing.T) {
	surf := newSurface(t, 32, 32)
	require.NoError(t, Paint(surf, noise.NewScale(noise.NewSimplex(4), 0.15), 1))

	// Neighbors across the wrap differ no more than typical neighbors.
	var inner, seam float64
	for j := 0; j < surf.Height; j++ {
		inner += abs(surf.At(1, j) - surf.At(0, j))
		seam += abs(surf.At(0, j) - surf.At(-1, j))
	}
	assert.Less(t, seam, 4*inner+1e-9)
}

func TestPaintLine(t *testing.T) {
	line, err := space.NewLine(16, 1, 1)
	require.NoError(t, err)

	require.NoError(t, PaintLine(line, constant(0.25), 1))
	for _, v := range line.Data {
		assert.Equal(t, 0.25, v)
	}
	assert.ErrorIs(t, PaintLine(line, constant(1), -1), ErrBlend)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
