// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"

	"github.com/SoftbearStudios/soar/cloud"
	"github.com/SoftbearStudios/soar/random"
	"github.com/SoftbearStudios/soar/recipe"
	"github.com/SoftbearStudios/soar/texture"
)

func main() {
	if err := renderMain(); err != nil {
		log.Fatal(err)
	}
}

// renderMain returns instead of exiting so the deferred profile is flushed.
func renderMain() error {
	var (
		recipePath string
		out        string
		seed       int64
		cpuProfile string
		gray       bool
		mesh       float64
		config     cloud.Config
	)

	flag.StringVar(&recipePath, "recipe", "", "recipe YAML `file` (default island)")
	flag.StringVar(&out, "out", "out", "output directory when not uploading to S3")
	flag.Int64Var(&seed, "seed", 0, "replaces the seed of every random step if nonzero")
	flag.StringVar(&cpuProfile, "cpuprofile", "", "write cpu profile to `file`")
	flag.BoolVar(&gray, "gray", false, "render grayscale instead of terrain colors")
	flag.Float64Var(&mesh, "mesh", 0, "also write a mesh with this grid spacing")
	flag.StringVar(&config.Bucket, "s3-bucket", "", "upload to this S3 bucket and record in DynamoDB")
	flag.StringVar(&config.Region, "region", "us-east-1", "AWS region")
	flag.StringVar(&config.Stage, "stage", "dev", "deployment stage, names the DynamoDB table")
	flag.Parse()

	if cpuProfile != "" {
		f, err := os.Create(cpuProfile)
		if err != nil {
			return fmt.Errorf("could not create CPU profile: %w", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			return fmt.Errorf("could not start CPU profile: %w", err)
		}
		defer pprof.StopCPUProfile()
	}

	var c *cloud.Cloud
	if config.Bucket != "" {
		var err error
		if c, err = cloud.New(config); err != nil {
			return fmt.Errorf("cloud error: %w", err)
		}
	} else {
		c = cloud.NewLocal(out)
	}
	if gray {
		c.Palette = texture.GrayPalette
	}
	c.MeshSpacing = float32(mesh)

	return run(c, recipePath, seed)
}

func run(c *cloud.Cloud, recipePath string, seed int64) error {
	r := recipe.Default()
	if recipePath != "" {
		var err error
		if r, err = recipe.Load(recipePath); err != nil {
			return err
		}
	}
	r.WithSeed(seed)

	rng := random.New(seed)
	output, err := r.Build(rng)
	if err != nil {
		return err
	}
	if output.Surface == nil {
		return fmt.Errorf("recipe %q does not build a surface", r.Name)
	}

	if err := c.Publish(r, seed, output.Surface); err != nil {
		return err
	}
	log.Printf("%s published %s\n", c, cloud.Key(r.Name, seed))
	return nil
}
