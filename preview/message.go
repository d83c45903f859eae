// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package preview

import (
	"github.com/SoftbearStudios/soar/cloud/db"
	"github.com/SoftbearStudios/soar/recipe"
	"github.com/SoftbearStudios/soar/texture"
	jsoniter "github.com/json-iterator/go"
)

type messageType string

const (
	typeBuild    messageType = "build"
	typeList     messageType = "list"
	typeTexture  messageType = "texture"
	typeTextures messageType = "textures"
	typeError    messageType = "error"
)

type (
	// Inbound envelope, data is decoded once the type is known.
	inboundJSON struct {
		Type messageType         `json:"type"`
		Data jsoniter.RawMessage `json:"data"`
	}

	outboundJSON struct {
		Type messageType `json:"type"`
		Data outbound    `json:"data"`
	}

	outbound interface {
		// Pool returns the contents of outbound to their sync.Pool
		Pool()
	}

	// Build asks for a recipe to be built and sent back as a texture.
	Build struct {
		Recipe   recipe.Recipe `json:"recipe"`
		Seed     int64         `json:"seed"` // Replaces step seeds if nonzero
		Compress bool          `json:"compress"`
		Publish  bool          `json:"publish"`
	}

	// List asks for published textures, optionally of one recipe.
	List struct {
		Recipe string `json:"recipe"`
	}

	Texture struct {
		Name    string        `json:"name"`
		Seed    int64         `json:"seed"`
		Texture *texture.Data `json:"texture"`
	}

	Textures struct {
		Textures []db.Texture `json:"textures"`
	}

	Error struct {
		Message string `json:"message"`
	}
)

func (t *Texture) Pool() {
	if t.Texture != nil {
		t.Texture.Pool()
		t.Texture = nil
	}
}

func (*Textures) Pool() {}

func (*Error) Pool() {}

func outboundType(out outbound) messageType {
	switch out.(type) {
	case *Texture:
		return typeTexture
	case *Textures:
		return typeTextures
	default:
		return typeError
	}
}
