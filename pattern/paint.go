// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package pattern

import (
	"github.com/SoftbearStudios/soar/noise"
	"github.com/SoftbearStudios/soar/space"
)

// Paint blends a noise map into every cell of a surface. The map is
// tesselated over the surface so the result wraps without a seam.
func Paint(surf *space.Surface, m noise.Map, blend float64) error {
	if err := checkBlend(blend); err != nil {
		return err
	}

	t := noise.NewTesselation(m, float64(surf.Width), float64(surf.Height))
	data := surf.Data
	dnelb := 1 - blend

	for j := 0; j < surf.Height; j++ {
		for i := 0; i < surf.Width; i++ {
			k := i + j*surf.Width
			data[k] = data[k]*dnelb + t.Eval2(float64(i), float64(j))*blend
		}
	}
	return nil
}

// PaintLine blends a noise map, read along y = 0, into every cell of a line.
func PaintLine(line *space.Line, m noise.Map, blend float64) error {
	if err := checkBlend(blend); err != nil {
		return err
	}

	t := noise.NewTesselation(m, float64(line.Width), 1)
	data := line.Data
	dnelb := 1 - blend

	for i := range data[:line.Width] {
		data[i] = data[i]*dnelb + t.Eval2(float64(i), 0)*blend
	}
	return nil
}
