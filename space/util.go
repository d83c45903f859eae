// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package space

import (
	"fmt"
	"math"
)

// wrap maps a coordinate onto an axis of the given extent and returns the two
// neighboring cells and the blend factor between them.
func wrap(coord, period float64, extent int) (i0, i1 int, mu float64) {
	e := float64(extent)
	f := math.Mod(period*coord, e)
	if f < 0 {
		f += e
	}
	// A tiny negative remainder can round up to e, and non-finite input
	// has no cell at all.
	if !(f < e) || math.IsNaN(f) {
		f = 0
	}

	fi := math.Floor(f)
	i0 = int(fi)
	mu = f - fi
	i1 = i0 + 1
	if i1 == extent {
		i1 = 0
	}
	return
}

// checkExtents verifies that extents are positive and multiply to length.
func checkExtents(length int, extents ...int) error {
	product := 1
	for _, e := range extents {
		if e < 1 {
			return fmt.Errorf("%w: %v", ErrEmpty, extents)
		}
		product *= e
	}
	if product != length {
		return fmt.Errorf("%w: %v has %d cells, buffer has %d", ErrExtents, extents, product, length)
	}
	return nil
}
