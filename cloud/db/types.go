// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package db

// Texture is one published texture.
type Texture struct {
	Recipe  string `dynamo:"recipe" json:"recipe"` // hash key
	Seed    int64  `dynamo:"seed" json:"seed"`     // range key
	Width   int    `dynamo:"width" json:"width"`
	Height  int    `dynamo:"height" json:"height"`
	Key     string `dynamo:"key" json:"key"` // path of the files, without extension
	Created int64  `dynamo:"created" json:"created"`
	TTL     int64  `dynamo:"ttl,omitempty" json:"-"`
}
