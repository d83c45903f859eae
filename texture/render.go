// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package texture

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"sort"

	"github.com/SoftbearStudios/soar/space"
)

type ColorVec [3]float32

// Stop is a color at a level of a normalized surface.
type Stop struct {
	Level float64
	Color ColorVec
}

// Palette maps levels in [0, 1] to colors, blending linearly between stops.
type Palette []Stop

// TerrainPalette colors a normalized heightmap from deep water to snow.
var TerrainPalette = Palette{
	{0, RGB(0, 50, 115)},
	{0.25, RGB(0, 75, 130)},
	{0.29, RGB(194, 178, 128)},
	{0.33, RGB(194, 178, 128)},
	{0.48, RGB(90, 180, 30)},
	{0.68, RGB(105, 110, 115)},
	{1, Gray(220)},
}

// GrayPalette is black at 0 and white at 1.
var GrayPalette = Palette{
	{0, Gray(0)},
	{1, Gray(255)},
}

// At returns the color at level.
func (p Palette) At(level float64) ColorVec {
	if len(p) == 0 {
		return ColorVec{}
	}

	i := sort.Search(len(p), func(i int) bool {
		return p[i].Level >= level
	})
	switch {
	case i == len(p):
		return p[len(p)-1].Color
	case i == 0 || p[i].Level == level:
		return p[i].Color
	}

	lo, hi := p[i-1], p[i]
	return lo.Color.Lerp(hi.Color, clamp(float32((level-lo.Level)/(hi.Level-lo.Level))))
}

// Render colors a normalized surface with a palette.
func Render(surf *space.Surface, palette Palette) *image.RGBA {
	width, height := surf.Width, surf.Height
	img := image.NewRGBA(image.Rect(0, 0, width, height))

	for j := 0; j < height; j++ {
		for i := 0; i < width; i++ {
			img.SetRGBA(i, j, palette.At(surf.Data[i+j*width]).Color())
		}
	}

	return img
}

// Grayscale renders the luminance of a normalized surface.
func Grayscale(surf *space.Surface) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, surf.Width, surf.Height))
	copy(img.Pix, Luminance(surf))
	return img
}

// EncodePNG writes img as a PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

func Gray(v byte) ColorVec {
	return RGB(v, v, v)
}

func RGB(r, g, b byte) ColorVec {
	const factor = 1.0 / 255
	return ColorVec{float32(r) * factor, float32(g) * factor, float32(b) * factor}
}

func (vec ColorVec) Lerp(other ColorVec, factor float32) ColorVec {
	for i := range vec {
		vec[i] += (other[i] - vec[i]) * factor
	}
	return vec
}

func (vec ColorVec) Color() color.RGBA {
	return color.RGBA{R: floatToByte(vec[0]), G: floatToByte(vec[1]), B: floatToByte(vec[2]), A: 255}
}

func clamp(f float32) float32 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

func floatToByte(f float32) byte {
	return ToByte(float64(f))
}
