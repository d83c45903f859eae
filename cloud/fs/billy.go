// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package fs

import (
	"path"

	"go.uber.org/multierr"
	billy "gopkg.in/src-d/go-billy.v4"
	"gopkg.in/src-d/go-billy.v4/osfs"
)

// BillyFilesystem writes files to a billy filesystem, such as a local
// directory or memory. Cache lifetimes are ignored.
type BillyFilesystem struct {
	Filesystem billy.Filesystem
}

// NewDirFilesystem writes files under dir.
func NewDirFilesystem(dir string) *BillyFilesystem {
	return &BillyFilesystem{Filesystem: osfs.New(dir)}
}

// UploadStaticFile writes data to a temporary file and renames it into place,
// so readers never see a partial file.
func (b *BillyFilesystem) UploadStaticFile(filename string, _ int, data []byte) (err error) {
	if dir := path.Dir(filename); dir != "." {
		if err := b.Filesystem.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	temp, err := b.Filesystem.TempFile(path.Dir(filename), ".upload-")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			err = multierr.Append(err, b.Filesystem.Remove(temp.Name()))
		}
	}()

	if _, err = temp.Write(data); err != nil {
		_ = temp.Close()
		return err
	}
	if err = temp.Close(); err != nil {
		return err
	}
	return b.Filesystem.Rename(temp.Name(), filename)
}
