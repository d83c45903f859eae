// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package space

// Sampler3 is a three dimensional field.
type Sampler3 interface {
	Sample(x, y, z float64) float64
}

// Field is an interpolated, periodic 3D space stored x fastest, then y, then z.
type Field struct {
	*Space
	Width     int
	Height    int
	Depth     int
	Amplitude float64
	XPeriod   float64
	YPeriod   float64
	ZPeriod   float64

	area int
}

var _ Sampler3 = (*Field)(nil)

// NewField allocates a zeroed volume.
func NewField(width, height, depth int, amplitude, xPeriod, yPeriod, zPeriod float64) (*Field, error) {
	if width < 1 || height < 1 || depth < 1 {
		return nil, checkExtents(0, width, height, depth)
	}
	s, err := New(width * height * depth)
	if err != nil {
		return nil, err
	}
	return FieldFrom(s, width, height, depth, amplitude, xPeriod, yPeriod, zPeriod)
}

// FieldFrom takes ownership of s as a width x height x depth volume.
func FieldFrom(s *Space, width, height, depth int, amplitude, xPeriod, yPeriod, zPeriod float64) (*Field, error) {
	if err := checkExtents(s.Length, width, height, depth); err != nil {
		return nil, err
	}
	return &Field{
		Space:     s,
		Width:     width,
		Height:    height,
		Depth:     depth,
		Amplitude: amplitude,
		XPeriod:   xPeriod,
		YPeriod:   yPeriod,
		ZPeriod:   zPeriod,
		area:      width * height,
	}, nil
}

// Index returns the flat index of cell (x, y, z).
func (f *Field) Index(x, y, z int) int {
	return x + y*f.Width + z*f.area
}

// Sample returns the value at (x, y, z).
func (f *Field) Sample(x, y, z float64) float64 {
	x0, x1, mux := wrap(x, f.XPeriod, f.Width)
	y0, y1, muy := wrap(y, f.YPeriod, f.Height)
	z0, z1, muz := wrap(z, f.ZPeriod, f.Depth)

	data := f.Data
	y0m := y0 * f.Width
	y1m := y1 * f.Width
	z0m := z0 * f.area
	z1m := z1 * f.area

	// Along z, then y, then x.
	i1 := Cerp(data[x0+y0m+z0m], data[x0+y0m+z1m], muz)
	i2 := Cerp(data[x0+y1m+z0m], data[x0+y1m+z1m], muz)
	i3 := Cerp(i1, i2, muy)

	i1 = Cerp(data[x1+y0m+z0m], data[x1+y0m+z1m], muz)
	i2 = Cerp(data[x1+y1m+z0m], data[x1+y1m+z1m], muz)
	i4 := Cerp(i1, i2, muy)

	return f.Amplitude * Cerp(i3, i4, mux)
}
