// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package fs

// Filesystem stores finished texture files.
type Filesystem interface {
	UploadStaticFile(filename string, secondsCache int, data []byte) error
}

var contentTypes = map[string]string{
	".json": "application/json",
	".png":  "image/png",
	".yaml": "application/x-yaml",
}
