// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package random provides the reseedable generator used by pattern operators.
package random

import (
	"math/rand"
	"time"
)

// Generator produces uniform doubles. A nonzero seed always replays the same
// stream; seed 0 is reserved for a time derived, non-reproducible stream.
//
// A Generator is not safe for concurrent use. Give every concurrent
// pattern generation task its own.
type Generator struct {
	source Source
	rand   *rand.Rand
	seed   int64
}

// New creates a Generator seeded with seed (0 means time based).
func New(seed int64) *Generator {
	g := &Generator{}
	g.rand = rand.New(&g.source)
	g.Reseed(seed)
	return g
}

// Reseed restarts the stream from seed (0 means time based).
func (g *Generator) Reseed(seed int64) {
	if seed == 0 {
		seed = timeSeed()
	}
	g.seed = seed
	g.rand.Seed(seed)
}

// Seed returns the seed of the current stream, after time substitution.
func (g *Generator) Seed() int64 {
	return g.seed
}

// Float returns a value in [0, 1).
func (g *Generator) Float() float64 {
	return g.rand.Float64()
}

// Upto returns a value in [0, u).
func (g *Generator) Upto(u float64) float64 {
	return u * g.rand.Float64()
}

// Between returns a value in [lo, hi).
func (g *Generator) Between(lo, hi float64) float64 {
	return lo + (hi-lo)*g.rand.Float64()
}

// Index returns floor(Between(0, n)), a uniformly random index below n.
func (g *Generator) Index(n int) int {
	i := int(g.Between(0, float64(n)))
	if i >= n {
		// Only reachable through rounding for huge n.
		i = n - 1
	}
	return i
}

func timeSeed() int64 {
	// Zero would collide with the reserved seed.
	if seed := time.Now().UnixNano(); seed != 0 {
		return seed
	}
	return 1
}
