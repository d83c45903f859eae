// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package texture converts finished surfaces into payloads for texture upload:
// luminance bytes, compressed data and images.
package texture

import (
	"errors"
	"fmt"
	"io"
	"math"
	"sync"

	"github.com/SoftbearStudios/soar/space"
)

// ErrCorrupt is returned when compressed data does not decode to its length.
var ErrCorrupt = errors.New("texture: corrupt data")

// Data describes a luminance texture.
// It may be in a compressed format.
type Data struct {
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	Data       []byte `json:"data"`       // Data is a possibly compressed luminance map.
	Length     int    `json:"length"`     // Length is uncompressed length of Data for faster reading.
	Compressed bool   `json:"compressed"` // Compressed is true if Data was written by a Buffer.
}

var dataPool = sync.Pool{
	New: func() interface{} {
		return &Data{
			Data: make([]byte, 0, 2048),
		}
	},
}

// NewData returns an empty Data, possibly recycled. Return it with Pool.
func NewData() *Data {
	return dataPool.Get().(*Data)
}

func (data *Data) Pool() {
	*data = Data{
		Data: data.Data[:0],
	}
	dataPool.Put(data)
}

// ToByte converts a value expected in [0, 1] to a byte, rounding to nearest.
func ToByte(v float64) byte {
	if !(v > 0) {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return byte(math.Round(v * 255))
}

// Luminance converts every value of a normalized surface to a byte.
func Luminance(surf *space.Surface) []byte {
	buf := make([]byte, surf.Length)
	for i, v := range surf.Data[:surf.Length] {
		buf[i] = ToByte(v)
	}
	return buf
}

// Encode builds uncompressed or compressed texture data from a normalized surface.
func Encode(surf *space.Surface, compress bool) *Data {
	data := NewData()
	data.Width = surf.Width
	data.Height = surf.Height
	data.Length = surf.Length
	data.Compressed = compress

	if compress {
		buffer := Buffer{buf: data.Data}
		buffer.Grow(surf.Length)
		for _, v := range surf.Data[:surf.Length] {
			_ = buffer.WriteByte(ToByte(v))
		}
		data.Data = buffer.Bytes()
	} else {
		for _, v := range surf.Data[:surf.Length] {
			data.Data = append(data.Data, ToByte(v))
		}
	}

	return data
}

// Decode returns the luminance bytes of data.
func Decode(data *Data) ([]byte, error) {
	if data.Width < 0 || data.Height < 0 || data.Width*data.Height != data.Length {
		return nil, fmt.Errorf("%w: %dx%d with length %d", ErrCorrupt, data.Width, data.Height, data.Length)
	}

	raw := make([]byte, data.Length)
	if !data.Compressed {
		if len(data.Data) != data.Length {
			return nil, fmt.Errorf("%w: %d bytes, expected %d", ErrCorrupt, len(data.Data), data.Length)
		}
		copy(raw, data.Data)
		return raw, nil
	}

	var buffer Buffer
	buffer.Reset(data.Data)
	n, err := io.ReadFull(&buffer, raw)
	if err != nil {
		return nil, fmt.Errorf("%w: decoded %d of %d bytes", ErrCorrupt, n, data.Length)
	}
	return raw, nil
}

// Surface decodes data back into a texture surface with values in [0, 1].
func Surface(data *Data) (*space.Surface, error) {
	raw, err := Decode(data)
	if err != nil {
		return nil, err
	}

	surf, err := space.NewTexture(data.Width, data.Height)
	if err != nil {
		return nil, err
	}
	const factor = 1.0 / 255
	for i, b := range raw {
		surf.Data[i] = float64(b) * factor
	}
	return surf, nil
}
