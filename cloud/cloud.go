// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cloud publishes finished textures to a filesystem and records them
// in a catalog.
package cloud

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"strings"
	"time"

	"github.com/SoftbearStudios/soar/cloud/db"
	"github.com/SoftbearStudios/soar/cloud/fs"
	"github.com/SoftbearStudios/soar/mesh"
	"github.com/SoftbearStudios/soar/recipe"
	"github.com/SoftbearStudios/soar/space"
	"github.com/SoftbearStudios/soar/texture"
	jsoniter "github.com/json-iterator/go"
)

// Published textures are immutable, so they may be cached for a long time.
const secondsCache = 60 * 60 * 24

const DefaultThumbnailSize = 64

// A nil cloud is valid to use with any methods (acts as a no-op)
// This just means textures are not published
type Cloud struct {
	name    string
	fs      fs.Filesystem
	catalog db.Catalog

	// TTL of catalog records, zero for no expiry.
	TTL     time.Duration
	Palette texture.Palette
	// MeshSpacing is the grid spacing of published meshes, zero to skip them.
	MeshSpacing float32
	// ThumbnailSize bounds published thumbnails, zero to skip them.
	ThumbnailSize uint
}

// Config selects the AWS resources of a deployment.
type Config struct {
	Region string `yaml:"region" json:"region"`
	Stage  string `yaml:"stage" json:"stage"`
	Bucket string `yaml:"bucket" json:"bucket"`
}

func (cloud *Cloud) String() string {
	if cloud == nil {
		return "[offline]"
	}
	return "[" + cloud.name + "]"
}

// New publishes to S3 and DynamoDB. Returns nil cloud on error.
func New(config Config) (*Cloud, error) {
	if config.Region == "" {
		return nil, errors.New("missing region")
	}
	if config.Stage == "" {
		return nil, errors.New("missing stage")
	}

	session, err := getAWSSession(config.Region)
	if err != nil {
		return nil, err
	}

	cloud := &Cloud{name: config.Region + " " + config.Stage, Palette: texture.TerrainPalette, ThumbnailSize: DefaultThumbnailSize}
	cloud.catalog, err = db.NewDynamoDBCatalog(session, config.Stage)
	if err != nil {
		return nil, err
	}
	cloud.fs, err = fs.NewS3Filesystem(session, config.Bucket)
	if err != nil {
		return nil, err
	}
	return cloud, nil
}

// NewLocal publishes to a directory and keeps the catalog in memory.
func NewLocal(dir string) *Cloud {
	return NewWith("local "+dir, fs.NewDirFilesystem(dir), &db.MemoryCatalog{})
}

// NewWith publishes to the given filesystem and catalog.
func NewWith(name string, filesystem fs.Filesystem, catalog db.Catalog) *Cloud {
	return &Cloud{name: name, fs: filesystem, catalog: catalog, Palette: texture.TerrainPalette, ThumbnailSize: DefaultThumbnailSize}
}

// Key returns the path, without extension, of a published texture.
func Key(name string, seed int64) string {
	name = strings.Map(func(r rune) rune {
		if r == '/' || r == '\\' || r == '.' || r < ' ' {
			return '_'
		}
		return r
	}, name)
	if name == "" {
		name = "unnamed"
	}
	return fmt.Sprintf("textures/%s/%d", name, seed)
}

// Publish uploads a rendered PNG, the compressed texture data, optionally a
// mesh, and the recipe that built surf, then records them in the catalog.
func (cloud *Cloud) Publish(r *recipe.Recipe, seed int64, surf *space.Surface) error {
	if cloud == nil {
		return nil
	}

	key := Key(r.Name, seed)

	img := texture.Render(surf, cloud.Palette)
	if err := cloud.uploadPNG(key+".png", img); err != nil {
		return err
	}
	if cloud.ThumbnailSize > 0 {
		if err := cloud.uploadPNG(key+".thumb.png", texture.Thumbnail(img, cloud.ThumbnailSize)); err != nil {
			return err
		}
	}

	data := texture.Encode(surf, true)
	buf, err := data.MarshalJSON()
	data.Pool()
	if err != nil {
		return err
	}
	if err := cloud.fs.UploadStaticFile(key+".json", secondsCache, buf); err != nil {
		return err
	}

	if cloud.MeshSpacing > 0 {
		m, err := mesh.FromSurface(surf, cloud.MeshSpacing)
		if err != nil {
			return err
		}
		buf, err := jsoniter.ConfigFastest.Marshal(m)
		if err != nil {
			return err
		}
		if err := cloud.fs.UploadStaticFile(key+".mesh.json", secondsCache, buf); err != nil {
			return err
		}
	}

	buf, err = r.Marshal()
	if err != nil {
		return err
	}
	if err := cloud.fs.UploadStaticFile(key+".yaml", secondsCache, buf); err != nil {
		return err
	}

	now := time.Now()
	record := db.Texture{
		Recipe:  r.Name,
		Seed:    seed,
		Width:   surf.Width,
		Height:  surf.Height,
		Key:     key,
		Created: now.Unix(),
	}
	if cloud.TTL > 0 {
		record.TTL = now.Add(cloud.TTL).Unix()
	}
	return cloud.catalog.PutTexture(record)
}

func (cloud *Cloud) uploadPNG(filename string, img image.Image) error {
	var buf bytes.Buffer
	if err := texture.EncodePNG(&buf, img); err != nil {
		return err
	}
	return cloud.fs.UploadStaticFile(filename, secondsCache, buf.Bytes())
}

// Textures lists published textures, optionally only those of one recipe.
func (cloud *Cloud) Textures(recipe string) ([]db.Texture, error) {
	if cloud == nil {
		return nil, nil
	}
	if recipe == "" {
		return cloud.catalog.ReadTextures()
	}
	return cloud.catalog.ReadTexturesByRecipe(recipe)
}
