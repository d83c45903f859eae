// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package pattern

import (
	"fmt"
	"math"
)

func checkBlend(blend float64) error {
	if !(blend >= 0 && blend <= 1) {
		return fmt.Errorf("%w: %v", ErrBlend, blend)
	}
	return nil
}

// iterations returns round(length * reps).
func iterations(length int, reps float64) (int, error) {
	n := math.Round(float64(length) * reps)
	if !(n >= 0) || math.IsInf(n, 0) || n > math.MaxInt32 {
		return 0, fmt.Errorf("%w: %v", ErrReps, reps)
	}
	return int(n), nil
}

func inside(v float64, extent int) bool {
	return v >= 0 && v < float64(extent)
}

// wrap returns v modulo extent in [0, extent).
func wrap(v, extent float64) float64 {
	v = math.Mod(v, extent)
	if v < 0 {
		v += extent
	}
	if v >= extent {
		v = 0
	}
	return v
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}
