// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package space

// Sampler1 is a one dimensional field.
type Sampler1 interface {
	Sample(x float64) float64
}

// Line is an interpolated, periodic 1D space.
type Line struct {
	*Space
	Width     int
	Amplitude float64
	Period    float64
}

var _ Sampler1 = (*Line)(nil)

// NewLine allocates a zeroed line of the given width.
func NewLine(width int, amplitude, period float64) (*Line, error) {
	s, err := New(width)
	if err != nil {
		return nil, err
	}
	return LineFrom(s, width, amplitude, period)
}

// LineFrom takes ownership of s as a line of the given width.
func LineFrom(s *Space, width int, amplitude, period float64) (*Line, error) {
	if err := checkExtents(s.Length, width); err != nil {
		return nil, err
	}
	return &Line{
		Space:     s,
		Width:     width,
		Amplitude: amplitude,
		Period:    period,
	}, nil
}

// Sample returns the value at x.
func (l *Line) Sample(x float64) float64 {
	x0, x1, mu := wrap(x, l.Period, l.Width)
	data := l.Data
	return l.Amplitude * Cerp(data[x0], data[x1], mu)
}
