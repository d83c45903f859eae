// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package recipe

import (
	"fmt"
	"math"

	"go.uber.org/multierr"
)

// MaxCells bounds the size of any recipe.
const MaxCells = 1 << 24

// Validate reports every problem with the recipe at once.
func (r *Recipe) Validate() error {
	var err error
	invalid := func(format string, args ...interface{}) {
		err = multierr.Append(err, fmt.Errorf("%w: "+format, append([]interface{}{ErrInvalid}, args...)...))
	}

	if r.Width < 1 {
		invalid("width %d", r.Width)
	}
	if r.Height < 0 || (r.Height == 0 && r.Depth != 0) {
		invalid("height %d with depth %d", r.Height, r.Depth)
	}
	if r.Depth < 0 {
		invalid("depth %d", r.Depth)
	}
	if len(r.Period) > r.Dims() {
		invalid("%d periods for %d dimensions", len(r.Period), r.Dims())
	}
	for i, p := range r.Period {
		if math.IsNaN(p) || math.IsInf(p, 0) {
			invalid("period %d is %v", i, p)
		}
	}
	if r.Width > 0 && r.Height >= 0 && r.Depth >= 0 {
		// Checked in steps to avoid overflowing int.
		cells := float64(r.Width) * math.Max(float64(r.Height), 1) * math.Max(float64(r.Depth), 1)
		if cells > MaxCells {
			err = multierr.Append(err, fmt.Errorf("%w: %.0f > %d", ErrTooBig, cells, MaxCells))
		}
	}

	for i, step := range r.Steps {
		err = multierr.Append(err, r.validateStep(i, step))
	}

	return err
}

func (r *Recipe) validateStep(i int, step Step) (err error) {
	invalid := func(format string, args ...interface{}) {
		err = multierr.Append(err, fmt.Errorf("%w: step %d (%s): "+format, append([]interface{}{ErrInvalid, i, step.Op}, args...)...))
	}
	unit := func(name string, v float64) {
		if !(v >= 0 && v <= 1) {
			invalid("%s %v outside [0, 1]", name, v)
		}
	}

	switch step.Op {
	case OpFill, OpRandomize:
	case OpNormalize:
		if !(step.Lo <= step.Hi) {
			invalid("range [%v, %v]", step.Lo, step.Hi)
		}
	case OpStipple:
		unit("blend", step.Blend)
		if !(step.Reps >= 0) {
			invalid("reps %v", step.Reps)
		}
	case OpScratch:
		if r.Dims() != 2 {
			invalid("needs a surface")
		}
		unit("blend", step.Blend)
		if step.Length < 0 {
			invalid("length %d", step.Length)
		}
		if !(step.X >= 0 && step.X < float64(r.Width) && step.Y >= 0 && step.Y < float64(r.Height)) {
			invalid("origin (%v, %v)", step.X, step.Y)
		}
	case OpWalk:
		if r.Dims() != 2 {
			invalid("needs a surface")
		}
		unit("blend", step.Blend)
		if !(step.Reps >= 0) {
			invalid("reps %v", step.Reps)
		}
		unit("odds.pos_x", step.Odds.PosX)
		unit("odds.pos_y", step.Odds.PosY)
		unit("odds.neg_x", step.Odds.NegX)
		unit("odds.neg_y", step.Odds.NegY)
	case OpPerlin, OpSimplex, OpTerrain:
		if r.Dims() == 3 {
			invalid("needs a line or surface")
		}
		unit("blend", step.Blend)
		if step.Op == OpPerlin {
			if step.Octaves < 1 {
				invalid("octaves %d", step.Octaves)
			}
			if !(step.Alpha > 0 && step.Beta > 0) {
				invalid("alpha %v and beta %v must be positive", step.Alpha, step.Beta)
			}
		}
	default:
		invalid("unknown operator")
	}
	return
}
