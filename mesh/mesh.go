// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package mesh builds indexed vertex payloads from heightmap surfaces.
package mesh

import (
	"errors"
	"fmt"
	"math"

	"github.com/SoftbearStudios/soar/space"
	"github.com/chewxy/math32"
)

// ErrTooLarge is returned when a mesh needs more vertices than a uint16 index can address.
var ErrTooLarge = errors.New("mesh: too many vertices")

// Stride is the number of floats per vertex: position (x, y, z) then normal (x, y, z).
const Stride = 6

// Mesh is a list of vertices and triangle indices ready to be uploaded.
type Mesh struct {
	Vertices []float32 `json:"vertices"`
	Indices  []uint16  `json:"indices"`
}

// Count returns the number of vertices.
func (m *Mesh) Count() int {
	return len(m.Vertices) / Stride
}

// Append adds one vertex. Storage doubles as needed.
func (m *Mesh) Append(x, y, z, nx, ny, nz float32) {
	m.Vertices = append(m.Vertices, x, y, z, nx, ny, nz)
}

// Triangle adds the indices of one triangle.
func (m *Mesh) Triangle(a, b, c uint16) {
	m.Indices = append(m.Indices, a, b, c)
}

// Reset empties the mesh, keeping its storage.
func (m *Mesh) Reset() {
	m.Vertices = m.Vertices[:0]
	m.Indices = m.Indices[:0]
}

// FromSurface builds a heightmap mesh with one vertex per grid point,
// spacing apart in x and z. The far row and column repeat the first, so
// meshes of the same surface tile without a crack.
func FromSurface(surf *space.Surface, spacing float32) (*Mesh, error) {
	columns, rows := surf.Width+1, surf.Height+1
	if columns*rows > math.MaxUint16+1 {
		return nil, fmt.Errorf("%w: %dx%d grid", ErrTooLarge, columns, rows)
	}

	m := &Mesh{
		Vertices: make([]float32, 0, columns*rows*Stride),
		Indices:  make([]uint16, 0, surf.Width*surf.Height*6),
	}

	height := func(i, j int) float32 {
		return float32(surf.Amplitude * surf.At(i, j))
	}

	for j := 0; j < rows; j++ {
		for i := 0; i < columns; i++ {
			// Central differences, wrapping at the edges.
			dx := (height(i+1, j) - height(i-1, j)) / (2 * spacing)
			dz := (height(i, j+1) - height(i, j-1)) / (2 * spacing)
			nx, ny, nz := normalize(-dx, 1, -dz)

			m.Append(float32(i)*spacing, height(i, j), float32(j)*spacing, nx, ny, nz)
		}
	}

	for j := 0; j < surf.Height; j++ {
		for i := 0; i < surf.Width; i++ {
			a := uint16(i + j*columns)
			b := a + 1
			c := a + uint16(columns)
			d := c + 1

			m.Triangle(a, c, b)
			m.Triangle(b, c, d)
		}
	}

	return m, nil
}

func normalize(x, y, z float32) (float32, float32, float32) {
	l := math32.Sqrt(x*x + y*y + z*z)
	if l == 0 {
		return 0, 1, 0
	}
	return x / l, y / l, z / l
}
