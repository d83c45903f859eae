// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package pattern paints texture, heightmap and field patterns into spaces.
//
// Every operator mutates its space in place. Operators that draw random
// numbers reseed the Generator they are given, so equal nonzero seeds replay
// equal patterns. Parameters are checked before the space is touched; an
// operator that returns an error has not modified anything.
package pattern

import (
	"errors"
	"fmt"
	"math"

	"github.com/SoftbearStudios/soar/random"
	"github.com/SoftbearStudios/soar/space"
)

var (
	ErrBlend       = errors.New("pattern: blend outside [0, 1]")
	ErrProbability = errors.New("pattern: probability outside [0, 1]")
	ErrReps        = errors.New("pattern: negative or non-finite repetitions")
	ErrRange       = errors.New("pattern: invalid range")
	ErrOrigin      = errors.New("pattern: origin outside surface")
)

// Fill sets every value to c.
func Fill(s *space.Space, c float64) {
	data := s.Data[:s.Length]
	for i := range data {
		data[i] = c
	}
}

// Randomize reseeds rng and sets every value to a random number in [lo, hi),
// drawn in index order.
func Randomize(s *space.Space, rng *random.Generator, seed int64, lo, hi float64) {
	data := s.Data[:s.Length]

	rng.Reseed(seed)
	for i := range data {
		data[i] = rng.Between(lo, hi)
	}
}

// Normalize remaps values so the lowest becomes lo and the highest becomes hi.
// A space where every value is equal is left unchanged, as is one that already
// spans exactly [lo, hi]. Non-finite values are rejected with ErrRange.
func Normalize(s *space.Space, lo, hi float64) error {
	if !(lo <= hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) {
		return fmt.Errorf("%w: normalize to [%v, %v]", ErrRange, lo, hi)
	}

	data := s.Data[:s.Length]
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: normalize non-finite value %v at %d", ErrRange, v, i)
		}
	}

	olo, ohi := s.MinMax()
	if olo == ohi || (olo == lo && ohi == hi) {
		return nil
	}

	d0 := ohi - olo
	d1 := hi - lo
	// Spans wider than MaxFloat64 are remapped at half scale.
	wide := math.IsInf(d0, 0) || math.IsInf(d1, 0)
	for i, v := range data {
		switch v {
		case olo:
			data[i] = lo
		case ohi:
			data[i] = hi
		default:
			if wide {
				n := (v/2 - olo/2) / (ohi/2 - olo/2)
				data[i] = clamp((n*(hi/2-lo/2)+lo/2)*2, lo, hi)
			} else {
				n := (v - olo) / d0
				data[i] = clamp(n*d1+lo, lo, hi)
			}
		}
	}
	return nil
}

// Stipple reseeds rng and blends c into round(length * reps) random cells.
// Cells are drawn independently, so some are blended repeatedly and others
// never.
func Stipple(s *space.Space, rng *random.Generator, seed int64, reps, blend, c float64) error {
	n, err := iterations(s.Length, reps)
	if err != nil {
		return err
	}
	if err := checkBlend(blend); err != nil {
		return err
	}

	data := s.Data[:s.Length]
	dnelb := 1 - blend

	rng.Reseed(seed)
	for i := 0; i < n; i++ {
		j := rng.Index(s.Length)
		data[j] = data[j]*dnelb + c*blend
	}
	return nil
}

// Scratch draws a line of length steps starting at (x, y) and moving by
// (dx, dy) per step, blending c into every cell it crosses. The line wraps
// around the edges of the surface.
func Scratch(surf *space.Surface, blend, c, x, y, dx, dy float64, length int) error {
	if err := checkBlend(blend); err != nil {
		return err
	}
	if length < 0 {
		return fmt.Errorf("%w: scratch length %d", ErrReps, length)
	}
	if !inside(x, surf.Width) || !inside(y, surf.Height) {
		return fmt.Errorf("%w: (%v, %v) on %dx%d", ErrOrigin, x, y, surf.Width, surf.Height)
	}
	if math.IsNaN(dx) || math.IsInf(dx, 0) || math.IsNaN(dy) || math.IsInf(dy, 0) {
		return fmt.Errorf("%w: scratch direction (%v, %v)", ErrRange, dx, dy)
	}

	data := surf.Data
	width, height := float64(surf.Width), float64(surf.Height)
	dnelb := 1 - blend

	for i := 0; i < length; i++ {
		j := int(math.Floor(x)) + surf.Width*int(math.Floor(y))
		data[j] = data[j]*dnelb + c*blend

		x = wrap(x+dx, width)
		y = wrap(y+dy, height)
	}
	return nil
}

// Odds are the chances of a walk stepping in each direction on an iteration.
type Odds struct {
	PosX float64 `json:"posX" yaml:"pos_x"`
	PosY float64 `json:"posY" yaml:"pos_y"`
	NegX float64 `json:"negX" yaml:"neg_x"`
	NegY float64 `json:"negY" yaml:"neg_y"`
}

// Walk reseeds rng and random walks round(width * height * reps) steps from a
// random cell, blending c into the current cell on every step. Each step rolls
// every direction independently, so a step may move diagonally or not at all.
func Walk(surf *space.Surface, rng *random.Generator, seed int64, reps, blend, c float64, odds Odds) error {
	n, err := iterations(surf.Length, reps)
	if err != nil {
		return err
	}
	if err := checkBlend(blend); err != nil {
		return err
	}
	for _, p := range [...]float64{odds.PosX, odds.PosY, odds.NegX, odds.NegY} {
		if !(p >= 0 && p <= 1) {
			return fmt.Errorf("%w: %v", ErrProbability, p)
		}
	}

	data := surf.Data
	width, height := surf.Width, surf.Height
	dnelb := 1 - blend

	rng.Reseed(seed)
	x := rng.Index(width)
	y := rng.Index(height)

	for i := 0; i < n; i++ {
		j := x + width*y
		data[j] = data[j]*dnelb + c*blend

		if rng.Float() < odds.PosX {
			x++
			if x >= width {
				x = 0
			}
		}
		if rng.Float() < odds.PosY {
			y++
			if y >= height {
				y = 0
			}
		}
		if rng.Float() < odds.NegX {
			x--
			if x < 0 {
				x = width - 1
			}
		}
		if rng.Float() < odds.NegY {
			y--
			if y < 0 {
				y = height - 1
			}
		}
	}
	return nil
}
