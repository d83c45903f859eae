// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package noise

import (
	"math"

	"github.com/aquilax/go-perlin"
)

const (
	frequency     = 0.04
	zoneFrequency = 0.006

	// SeaLevel is where Terrain places its coastline, in [0, 1].
	SeaLevel = 0.29
)

// Terrain is an island heightmap in [0, 1] layering several perlin noises.
type Terrain struct {
	// Land/coast heightmap noise
	landHi *perlin.Perlin // for smaller/higher frequency details
	landLo *perlin.Perlin // for larger/lower frequency details

	// Open water depth floor heightmap noise
	waterLo *perlin.Perlin
}

// NewTerrain creates a Terrain with a seed.
func NewTerrain(seed int64) *Terrain {
	return &Terrain{
		landHi:  perlin.NewPerlin(1.5, 2.0, 4, seed),
		landLo:  perlin.NewPerlin(2.5, 3.0, 4, seed+1),
		waterLo: perlin.NewPerlin(2, 3.0, 3, seed+2),
	}
}

// Eval2 implements Map.
func (t *Terrain) Eval2(x, y float64) float64 {
	h := t.landHi.Noise2D(x*frequency, y*frequency) + SeaLevel - 0.2

	// Zone is very low frequency
	zone := math.Min(t.landLo.Noise2D(x*zoneFrequency, y*zoneFrequency)*2.0+0.4, 1)
	h *= zone

	depthFloor := clamp01((t.waterLo.Noise2D(x*zoneFrequency, y*zoneFrequency)+0.3)*4) * SeaLevel * 0.5

	return clamp01(math.Max(h, depthFloor))
}

func clamp01(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
