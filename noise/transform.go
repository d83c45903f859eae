// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package noise

// Scale stretches a map; coordinates are multiplied by the frequency.
type Scale struct {
	source    Map
	frequency float64
}

func NewScale(source Map, frequency float64) Scale {
	return Scale{source: source, frequency: frequency}
}

// Eval2 implements Map.
func (m Scale) Eval2(x, y float64) float64 {
	return m.source.Eval2(x*m.frequency, y*m.frequency)
}

// Amplify multiplies every value of a map.
type Amplify struct {
	source Map
	value  float64
}

func NewAmplify(source Map, value float64) Amplify {
	return Amplify{source: source, value: value}
}

// Eval2 implements Map.
func (m Amplify) Eval2(x, y float64) float64 {
	return m.value * m.source.Eval2(x, y)
}

// Offset translates a map.
type Offset struct {
	source Map
	x, y   float64
}

func NewOffset(source Map, x, y float64) Offset {
	return Offset{source: source, x: x, y: y}
}

// Eval2 implements Map.
func (m Offset) Eval2(x, y float64) float64 {
	return m.source.Eval2(x+m.x, y+m.y)
}

// Sum adds maps together.
type Sum []Map

// Eval2 implements Map.
func (s Sum) Eval2(x, y float64) float64 {
	var z float64
	for _, m := range s {
		z += m.Eval2(x, y)
	}
	return z
}

// Tesselation wraps a map horizontally and vertically so it is seamless
// across the edges of a width x height tile.
type Tesselation struct {
	source        Map
	width, height float64
}

func NewTesselation(source Map, width, height float64) Tesselation {
	return Tesselation{source: source, width: width, height: height}
}

// Eval2 implements Map for x in [0, width) and y in [0, height).
func (t Tesselation) Eval2(x, y float64) float64 {
	u := x / t.width
	v := y / t.height

	a := t.source.Eval2(x, y)
	b := t.source.Eval2(x-t.width, y)
	c := t.source.Eval2(x, y-t.height)
	d := t.source.Eval2(x-t.width, y-t.height)

	ab := a*(1-u) + b*u
	cd := c*(1-u) + d*u
	return ab*(1-v) + cd*v
}
