// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package recipe

import (
	"fmt"

	"github.com/SoftbearStudios/soar/noise"
	"github.com/SoftbearStudios/soar/pattern"
	"github.com/SoftbearStudios/soar/random"
	"github.com/SoftbearStudios/soar/space"
)

// Output holds the view a recipe built. Exactly one of the fields is set.
type Output struct {
	Line    *space.Line
	Surface *space.Surface
	Field   *space.Field
}

// Space returns the buffer behind the view.
func (o *Output) Space() *space.Space {
	switch {
	case o.Line != nil:
		return o.Line.Space
	case o.Surface != nil:
		return o.Surface.Space
	default:
		return o.Field.Space
	}
}

// Build validates the recipe, allocates its view and runs every step with rng.
func (r *Recipe) Build(rng *random.Generator) (*Output, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	out := &Output{}
	var err error
	switch r.Dims() {
	case 1:
		out.Line, err = space.NewLine(r.Width, r.Amplitude, r.period(0))
	case 2:
		out.Surface, err = space.NewSurface(r.Width, r.Height, r.Amplitude, r.period(0), r.period(1))
	default:
		out.Field, err = space.NewField(r.Width, r.Height, r.Depth, r.Amplitude, r.period(0), r.period(1), r.period(2))
	}
	if err != nil {
		return nil, err
	}

	for i, step := range r.Steps {
		if err := out.apply(rng, step); err != nil {
			return nil, fmt.Errorf("step %d (%s): %w", i, step.Op, err)
		}
	}
	return out, nil
}

func (o *Output) apply(rng *random.Generator, step Step) error {
	s := o.Space()

	switch step.Op {
	case OpFill:
		pattern.Fill(s, step.Value)
	case OpRandomize:
		pattern.Randomize(s, rng, step.Seed, step.Lo, step.Hi)
	case OpNormalize:
		return pattern.Normalize(s, step.Lo, step.Hi)
	case OpStipple:
		return pattern.Stipple(s, rng, step.Seed, step.Reps, step.Blend, step.Value)
	case OpScratch:
		return pattern.Scratch(o.Surface, step.Blend, step.Value, step.X, step.Y, step.DX, step.DY, step.Length)
	case OpWalk:
		return pattern.Walk(o.Surface, rng, step.Seed, step.Reps, step.Blend, step.Value, step.Odds)
	case OpPerlin, OpSimplex, OpTerrain:
		return o.paint(rng, step)
	}
	return nil
}

func (o *Output) paint(rng *random.Generator, step Step) error {
	// Noise sources take their own seeds; resolve 0 the same way operators do.
	rng.Reseed(step.Seed)
	seed := rng.Seed()

	var m noise.Map
	switch step.Op {
	case OpPerlin:
		m = noise.NewPerlin(seed, step.Alpha, step.Beta, step.Octaves)
	case OpSimplex:
		m = noise.NewSimplex(seed)
	default:
		m = noise.NewTerrain(seed)
	}
	if step.Frequency != 0 {
		m = noise.NewScale(m, step.Frequency)
	}

	if o.Line != nil {
		return pattern.PaintLine(o.Line, m, step.Blend)
	}
	return pattern.Paint(o.Surface, m, step.Blend)
}
