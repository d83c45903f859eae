// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package db

// Catalog records which textures have been published.
type Catalog interface {
	PutTexture(texture Texture) error
	ReadTextures() (textures []Texture, err error)
	ReadTexturesByRecipe(recipe string) (textures []Texture, err error)
}
