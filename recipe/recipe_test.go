// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package recipe

import (
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/SoftbearStudios/soar/random"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

const caves = `
name: caves
width: 32
height: 16
amplitude: 2
period: [0.5, 0.5]
steps:
  - op: fill
    value: 0
  - op: walk
    seed: 11
    reps: 2
    blend: 0.5
    value: 1
    odds: {pos_x: 0.4, pos_y: 0.3, neg_x: 0.4, neg_y: 0.3}
  - op: scratch
    blend: 1
    value: 1
    x: 0.5
    y: 8
    dx: 1.5
    dy: 0.25
    length: 40
  - op: normalize
    lo: 0
    hi: 1
`

func TestParse(t *testing.T) {
	r, err := Parse([]byte(caves))
	require.NoError(t, err)

	assert.Equal(t, "caves", r.Name)
	assert.Equal(t, 2, r.Dims())
	assert.Equal(t, 32*16, r.Cells())
	require.Len(t, r.Steps, 4)
	assert.Equal(t, OpWalk, r.Steps[1].Op)
	assert.Equal(t, 0.3, r.Steps[1].Odds.NegY)
	assert.Equal(t, 40, r.Steps[2].Length)
	assert.NoError(t, r.Validate())
}

func TestParse_UnknownField(t *testing.T) {
	_, err := Parse([]byte("name: x\nwidth: 4\nwidht: 5\n"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "caves.yaml")
	require.NoError(t, ioutil.WriteFile(path, []byte(caves), 0644))

	r, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "caves", r.Name)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestParseJSON(t *testing.T) {
	r, err := ParseJSON([]byte(`{"name":"dots","width":8,"height":8,"steps":[{"op":"stipple","seed":4,"reps":1,"blend":1,"value":1},{"op":"walk","odds":{"posX":1}}]}`))
	require.NoError(t, err)
	assert.Equal(t, "dots", r.Name)
	assert.Equal(t, 1.0, r.Steps[0].Blend)
	assert.Equal(t, 1.0, r.Steps[1].Odds.PosX)
}

func TestMarshal(t *testing.T) {
	buf, err := Default().Marshal()
	require.NoError(t, err)

	r, err := Parse(buf)
	require.NoError(t, err)
	assert.Equal(t, Default(), r)
}

func TestValidate_Aggregates(t *testing.T) {
	r := &Recipe{
		Width:  0,
		Height: 4,
		Steps: []Step{
			{Op: "smear"},
			{Op: OpStipple, Blend: 2, Reps: -1},
			{Op: OpNormalize, Lo: 1, Hi: 0},
			{Op: OpPerlin, Blend: 1},
		},
	}

	err := r.Validate()
	require.ErrorIs(t, err, ErrInvalid)
	// width, unknown op, blend, reps, range, octaves, alpha/beta
	assert.Len(t, multierr.Errors(err), 7)
}

func TestValidate_Dimensions(t *testing.T) {
	line := &Recipe{Width: 16, Steps: []Step{{Op: OpWalk, Blend: 1}}}
	assert.ErrorIs(t, line.Validate(), ErrInvalid)

	volume := &Recipe{Width: 4, Height: 4, Depth: 4, Steps: []Step{{Op: OpSimplex, Blend: 1}}}
	assert.ErrorIs(t, volume.Validate(), ErrInvalid)

	big := &Recipe{Width: 1 << 13, Height: 1 << 13}
	assert.ErrorIs(t, big.Validate(), ErrTooBig)

	depthOnly := &Recipe{Width: 4, Depth: 4}
	assert.ErrorIs(t, depthOnly.Validate(), ErrInvalid)
}

func TestBuild_Surface(t *testing.T) {
	r, err := Parse([]byte(caves))
	require.NoError(t, err)

	a, err := r.Build(random.New(1))
	require.NoError(t, err)
	require.NotNil(t, a.Surface)
	assert.Equal(t, 0.5, a.Surface.XPeriod)
	assert.Equal(t, 2.0, a.Surface.Amplitude)

	lo, hi := a.Space().MinMax()
	assert.Equal(t, 0.0, lo)
	assert.Equal(t, 1.0, hi)

	b, err := r.Build(random.New(2))
	require.NoError(t, err)
	assert.Equal(t, a.Surface.Data, b.Surface.Data)
}

func TestBuild_Default(t *testing.T) {
	out, err := Default().Build(random.New(1))
	require.NoError(t, err)

	lo, hi := out.Space().MinMax()
	assert.Equal(t, 0.0, lo)
	assert.Equal(t, 1.0, hi)
}

func TestBuild_Line(t *testing.T) {
	r := &Recipe{
		Width:     64,
		Amplitude: 1,
		Steps: []Step{
			{Op: OpPerlin, Seed: 3, Blend: 1, Alpha: 2, Beta: 2, Octaves: 3, Frequency: 0.1},
			{Op: OpNormalize, Lo: -1, Hi: 1},
		},
	}

	out, err := r.Build(random.New(1))
	require.NoError(t, err)
	require.NotNil(t, out.Line)

	lo, hi := out.Space().MinMax()
	assert.Equal(t, -1.0, lo)
	assert.Equal(t, 1.0, hi)
	assert.InDelta(t, out.Line.Sample(0), out.Line.Sample(64), 1e-12)
}

func TestBuild_Field(t *testing.T) {
	r := &Recipe{
		Width:     4,
		Height:    4,
		Depth:     4,
		Amplitude: 3,
		Period:    []float64{1, 1, 0.5},
		Steps: []Step{
			{Op: OpRandomize, Seed: 1, Lo: 0, Hi: 1},
			{Op: OpStipple, Seed: 2, Reps: 0.5, Blend: 1, Value: 2},
		},
	}

	out, err := r.Build(random.New(1))
	require.NoError(t, err)
	require.NotNil(t, out.Field)
	assert.Equal(t, 0.5, out.Field.ZPeriod)

	_, hi := out.Space().MinMax()
	assert.Equal(t, 2.0, hi)
}

func TestBuild_Invalid(t *testing.T) {
	_, err := (&Recipe{Width: -1}).Build(random.New(1))
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestWithSeed(t *testing.T) {
	r := Default()
	r.WithSeed(100)
	for i, step := range r.Steps {
		assert.Equal(t, int64(100+i), step.Seed)
	}

	r.WithSeed(0)
	assert.Equal(t, int64(100), r.Steps[0].Seed)

	r.WithSeed(-1)
	assert.Equal(t, int64(-1), r.Steps[0].Seed)
	assert.Equal(t, int64(-2), r.Steps[1].Seed)
	assert.Equal(t, int64(1), r.Steps[2].Seed)
}
