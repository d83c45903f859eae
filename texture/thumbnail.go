// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package texture

import (
	"image"

	"github.com/nfnt/resize"
)

// Thumbnail shrinks img to fit within size x size, keeping its aspect ratio.
// Images that already fit are returned unchanged.
func Thumbnail(img image.Image, size uint) image.Image {
	bounds := img.Bounds()
	if uint(bounds.Dx()) <= size && uint(bounds.Dy()) <= size {
		return img
	}
	return resize.Thumbnail(size, size, img, resize.Lanczos3)
}
