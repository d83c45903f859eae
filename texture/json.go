// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package texture

import (
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.Config{
	IndentionStep:                 0,
	MarshalFloatWith6Digits:       true,
	EscapeHTML:                    false,
	SortMapKeys:                   true,
	UseNumber:                     false,
	DisallowUnknownFields:         false,
	TagKey:                        "json",
	OnlyTaggedField:               false,
	ValidateJsonRawMessage:        false,
	ObjectFieldMustBeSimpleString: true,
	CaseSensitive:                 true,
}.Froze()

// MarshalJSON encodes data with the shared jsoniter configuration.
func (data *Data) MarshalJSON() ([]byte, error) {
	type plain Data
	return json.Marshal((*plain)(data))
}

// UnmarshalJSON decodes data with the shared jsoniter configuration.
func (data *Data) UnmarshalJSON(buf []byte) error {
	type plain Data
	return json.Unmarshal(buf, (*plain)(data))
}
