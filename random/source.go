// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package random

import "math/rand"

// Source is an xorshift* random number source.
// Its output depends only on the seed, never on the Go release.
type Source struct {
	state uint64
}

var _ rand.Source64 = (*Source)(nil)

// Seed seeds the source. The seed is scrambled first so that nearby seeds
// start far apart.
func (s *Source) Seed(seed int64) {
	s.state = mix(uint64(seed))
}

// mix is the splitmix64 finalizer. It never returns zero, which would stall
// xorshift.
func mix(z uint64) uint64 {
	z += 0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	z ^= z >> 31
	if z == 0 {
		return 0x9e3779b97f4a7c15
	}
	return z
}

// Uint64 returns a random number.
func (s *Source) Uint64() uint64 {
	state := s.state
	state ^= state >> 12
	state ^= state << 25
	state ^= state >> 27
	s.state = state
	return state * 2685821657736338717
}

// Int63 returns a non-negative random number.
func (s *Source) Int63() int64 {
	return int64(s.Uint64() >> 1)
}
