// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package db

import (
	"sort"
	"sync"
)

// MemoryCatalog is a Catalog for offline use and tests.
type MemoryCatalog struct {
	mutex    sync.Mutex
	textures map[string]map[int64]Texture
}

func (m *MemoryCatalog) PutTexture(texture Texture) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if m.textures == nil {
		m.textures = make(map[string]map[int64]Texture)
	}
	bySeed := m.textures[texture.Recipe]
	if bySeed == nil {
		bySeed = make(map[int64]Texture)
		m.textures[texture.Recipe] = bySeed
	}
	if old, ok := bySeed[texture.Seed]; !ok || old.Created < texture.Created {
		bySeed[texture.Seed] = texture
	}
	return nil
}

func (m *MemoryCatalog) ReadTextures() (textures []Texture, err error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	for _, bySeed := range m.textures {
		for _, texture := range bySeed {
			textures = append(textures, texture)
		}
	}
	sortTextures(textures)
	return
}

func (m *MemoryCatalog) ReadTexturesByRecipe(recipe string) (textures []Texture, err error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	for _, texture := range m.textures[recipe] {
		textures = append(textures, texture)
	}
	sortTextures(textures)
	return
}

func sortTextures(textures []Texture) {
	sort.Slice(textures, func(i, j int) bool {
		if textures[i].Recipe != textures[j].Recipe {
			return textures[i].Recipe < textures[j].Recipe
		}
		return textures[i].Seed < textures[j].Seed
	})
}
