// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package space stores scalar fields as flat buffers and samples them as
// periodic (toroidal) lines, surfaces and volumes.
package space

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrEmpty is returned when a buffer or one of its extents would be empty.
	ErrEmpty = errors.New("space: empty extent")
	// ErrExtents is returned when extents do not multiply to the buffer length.
	ErrExtents = errors.New("space: extents do not match buffer length")
)

// Space is a fixed length buffer of field values.
// Pattern operators mutate Data in place; it is never resized.
type Space struct {
	Data   []float64
	Length int
}

// New allocates a zeroed Space of the given length.
func New(length int) (*Space, error) {
	if length < 1 {
		return nil, fmt.Errorf("%w: length %d", ErrEmpty, length)
	}
	return &Space{
		Data:   make([]float64, length),
		Length: length,
	}, nil
}

// Copy returns a deep copy, for callers that want two views of the same values.
func (s *Space) Copy() *Space {
	data := make([]float64, s.Length)
	copy(data, s.Data)
	return &Space{Data: data, Length: s.Length}
}

// MinMax returns the lowest and highest values.
func (s *Space) MinMax() (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range s.Data[:s.Length] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return
}

// Cerp cosine interpolates between y1 and y2 by mu in [0, 1].
func Cerp(y1, y2, mu float64) float64 {
	switch mu {
	case 0:
		return y1
	case 1:
		return y2
	}
	mu2 := (1 - math.Cos(mu*math.Pi)) * 0.5
	return y1*(1-mu2) + y2*mu2
}
