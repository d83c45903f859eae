// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package space

// Sampler2 is a two dimensional field.
type Sampler2 interface {
	Sample(x, y float64) float64
}

// Surface is an interpolated, periodic 2D space stored row major.
// It is used for heightmaps (with amplitude and periods) and as raw texture
// data (without).
type Surface struct {
	*Space
	Width     int
	Height    int
	Amplitude float64
	XPeriod   float64
	YPeriod   float64
}

var _ Sampler2 = (*Surface)(nil)

// NewSurface allocates a zeroed heightmap surface.
func NewSurface(width, height int, amplitude, xPeriod, yPeriod float64) (*Surface, error) {
	if width < 1 || height < 1 {
		return nil, checkExtents(0, width, height)
	}
	s, err := New(width * height)
	if err != nil {
		return nil, err
	}
	return SurfaceFrom(s, width, height, amplitude, xPeriod, yPeriod)
}

// NewTexture allocates a zeroed surface meant only for texture payloads.
// Its amplitude and periods are zero, so Sample always returns 0.
func NewTexture(width, height int) (*Surface, error) {
	return NewSurface(width, height, 0, 0, 0)
}

// SurfaceFrom takes ownership of s as a width x height surface.
func SurfaceFrom(s *Space, width, height int, amplitude, xPeriod, yPeriod float64) (*Surface, error) {
	if err := checkExtents(s.Length, width, height); err != nil {
		return nil, err
	}
	return &Surface{
		Space:     s,
		Width:     width,
		Height:    height,
		Amplitude: amplitude,
		XPeriod:   xPeriod,
		YPeriod:   yPeriod,
	}, nil
}

// Index returns the flat index of cell (x, y).
func (s *Surface) Index(x, y int) int {
	return x + y*s.Width
}

// At returns the raw value of cell (x, y), wrapping out of range cells.
func (s *Surface) At(x, y int) float64 {
	return s.Data[s.Index(mod(x, s.Width), mod(y, s.Height))]
}

// Sample returns the value at (x, y).
func (s *Surface) Sample(x, y float64) float64 {
	x0, x1, mux := wrap(x, s.XPeriod, s.Width)
	y0, y1, muy := wrap(y, s.YPeriod, s.Height)

	data := s.Data
	y0m := y0 * s.Width
	y1m := y1 * s.Width

	i1 := Cerp(data[x0+y0m], data[x0+y1m], muy)
	i2 := Cerp(data[x1+y0m], data[x1+y1m], muy)
	return s.Amplitude * Cerp(i1, i2, mux)
}

func mod(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}
