// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package recipe describes a field and the pattern steps that generate it, so
// generation can be configured in YAML files or sent as JSON.
package recipe

import (
	"errors"
	"fmt"
	"io/ioutil"

	"github.com/SoftbearStudios/soar/pattern"
	jsoniter "github.com/json-iterator/go"
	"gopkg.in/yaml.v2"
)

var (
	ErrInvalid = errors.New("recipe: invalid")
	ErrTooBig  = errors.New("recipe: too many cells")
)

// Operators that can appear in a step.
const (
	OpFill      = "fill"
	OpRandomize = "randomize"
	OpNormalize = "normalize"
	OpStipple   = "stipple"
	OpScratch   = "scratch"
	OpWalk      = "walk"
	OpPerlin    = "perlin"
	OpSimplex   = "simplex"
	OpTerrain   = "terrain"
)

// Recipe describes a line (height 0), surface (depth 0) or volume and the
// steps applied to it in order.
type Recipe struct {
	Name      string    `yaml:"name" json:"name"`
	Width     int       `yaml:"width" json:"width"`
	Height    int       `yaml:"height" json:"height"`
	Depth     int       `yaml:"depth" json:"depth"`
	Amplitude float64   `yaml:"amplitude" json:"amplitude"`
	Period    []float64 `yaml:"period" json:"period"` // Period per axis, defaults to 1
	Steps     []Step    `yaml:"steps" json:"steps"`
}

// Step is one pattern operator and its parameters. Only the parameters the
// operator uses are read.
type Step struct {
	Op    string  `yaml:"op" json:"op"`
	Seed  int64   `yaml:"seed" json:"seed"` // 0 means time based
	Value float64 `yaml:"value" json:"value"`
	Blend float64 `yaml:"blend" json:"blend"`
	Reps  float64 `yaml:"reps" json:"reps"`
	Lo    float64 `yaml:"lo" json:"lo"`
	Hi    float64 `yaml:"hi" json:"hi"`

	// Scratch
	X      float64 `yaml:"x" json:"x"`
	Y      float64 `yaml:"y" json:"y"`
	DX     float64 `yaml:"dx" json:"dx"`
	DY     float64 `yaml:"dy" json:"dy"`
	Length int     `yaml:"length" json:"length"`

	// Walk
	Odds pattern.Odds `yaml:"odds" json:"odds"`

	// Noise
	Frequency float64 `yaml:"frequency" json:"frequency"`
	Alpha     float64 `yaml:"alpha" json:"alpha"`
	Beta      float64 `yaml:"beta" json:"beta"`
	Octaves   int     `yaml:"octaves" json:"octaves"`
}

// Default is a small island heightmap.
func Default() *Recipe {
	return &Recipe{
		Name:      "island",
		Width:     128,
		Height:    128,
		Amplitude: 1,
		Period:    []float64{1, 1},
		Steps: []Step{
			{Op: OpTerrain, Seed: 56, Blend: 1, Frequency: 1},
			{Op: OpStipple, Seed: 3, Reps: 1, Blend: 0.1, Value: 0},
			{Op: OpWalk, Seed: 7, Reps: 0.5, Blend: 0.05, Value: 1, Odds: pattern.Odds{PosX: 0.5, PosY: 0.5, NegX: 0.5, NegY: 0.5}},
			{Op: OpNormalize, Lo: 0, Hi: 1},
		},
	}
}

// Load reads a YAML recipe file.
func Load(path string) (*Recipe, error) {
	buf, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading recipe: %w", err)
	}
	return Parse(buf)
}

// Parse parses a YAML recipe.
func Parse(buf []byte) (*Recipe, error) {
	r := &Recipe{}
	if err := yaml.UnmarshalStrict(buf, r); err != nil {
		return nil, fmt.Errorf("error parsing recipe: %w", err)
	}
	return r, nil
}

// ParseJSON parses a JSON recipe.
func ParseJSON(buf []byte) (*Recipe, error) {
	r := &Recipe{}
	if err := jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(buf, r); err != nil {
		return nil, fmt.Errorf("error parsing recipe: %w", err)
	}
	return r, nil
}

// Marshal encodes the recipe as YAML.
func (r *Recipe) Marshal() ([]byte, error) {
	return yaml.Marshal(r)
}

// Dims returns 1, 2 or 3.
func (r *Recipe) Dims() int {
	switch {
	case r.Height == 0:
		return 1
	case r.Depth == 0:
		return 2
	default:
		return 3
	}
}

// Cells returns the number of cells the recipe allocates.
func (r *Recipe) Cells() int {
	cells := r.Width
	if r.Height > 0 {
		cells *= r.Height
	}
	if r.Depth > 0 {
		cells *= r.Depth
	}
	return cells
}

// period returns the period of an axis.
func (r *Recipe) period(axis int) float64 {
	if axis < len(r.Period) {
		return r.Period[axis]
	}
	return 1
}

// WithSeed replaces the seed of every random step with seed + its index.
// A zero seed leaves the recipe unchanged.
func (r *Recipe) WithSeed(seed int64) {
	if seed == 0 {
		return
	}
	for i := range r.Steps {
		if s := seed + int64(i); s != 0 {
			r.Steps[i].Seed = s
		} else {
			r.Steps[i].Seed = seed - 1
		}
	}
}
