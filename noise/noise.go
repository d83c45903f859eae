// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package noise provides continuous 2D noise sources and combinators that can
// be painted into surfaces.
package noise

import (
	"github.com/aquilax/go-perlin"
	"github.com/ojrac/opensimplex-go"
)

// Map is a two dimensional field of values.
type Map interface {
	Eval2(x, y float64) float64
}

// Perlin is perlin noise, roughly in [-1, 1].
type Perlin struct {
	p *perlin.Perlin
}

// NewPerlin creates perlin noise. alpha is the weight of each octave relative
// to the last (larger is smoother), beta the frequency ratio between octaves.
func NewPerlin(seed int64, alpha, beta float64, octaves int) Perlin {
	return Perlin{p: perlin.NewPerlin(alpha, beta, octaves, seed)}
}

// Eval2 implements Map.
func (n Perlin) Eval2(x, y float64) float64 {
	return n.p.Noise2D(x, y)
}

// Simplex is opensimplex noise in [0, 1).
type Simplex struct {
	n opensimplex.Noise
}

// NewSimplex creates normalized opensimplex noise.
func NewSimplex(seed int64) Simplex {
	return Simplex{n: opensimplex.NewNormalized(seed)}
}

// Eval2 implements Map.
func (n Simplex) Eval2(x, y float64) float64 {
	return n.n.Eval2(x, y)
}
