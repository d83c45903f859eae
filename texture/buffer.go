// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package texture

import "io"

// maxRun is the longest run one tuple can describe.
const maxRun = 16

// Buffer run length encodes bytes at 4 bits of precision.
// Each encoded byte is a 4 bit value (high nibble) followed by the
// run length minus one (low nibble).
type Buffer struct {
	buf  []byte
	off  int  // read position
	used byte // values already read from the tuple at off
}

// Reset makes the buffer read from (or append to) buf.
func (buffer *Buffer) Reset(buf []byte) {
	buffer.buf = buf
	buffer.off = 0
	buffer.used = 0
}

// Bytes returns the encoded bytes.
func (buffer *Buffer) Bytes() []byte {
	return buffer.buf
}

// WriteByte encodes the 4 most significant bits of b.
func (buffer *Buffer) WriteByte(b byte) error {
	nibble := b >> 4

	if end := len(buffer.buf) - 1; end >= 0 {
		tuple := buffer.buf[end]
		if tuple>>4 == nibble && tuple&0b1111 < maxRun-1 {
			buffer.buf[end] = tuple + 1
			return nil
		}
	}

	buffer.buf = append(buffer.buf, nibble<<4)
	return nil
}

// Write implements io.Writer.
func (buffer *Buffer) Write(p []byte) (int, error) {
	for _, b := range p {
		_ = buffer.WriteByte(b)
	}
	return len(p), nil
}

// Read implements io.Reader. Decoded bytes have their low nibble cleared.
func (buffer *Buffer) Read(p []byte) (int, error) {
	n := 0
	for n < len(p) && buffer.off < len(buffer.buf) {
		tuple := buffer.buf[buffer.off]
		p[n] = tuple & 0b11110000
		n++

		buffer.used++
		if buffer.used > tuple&0b1111 {
			buffer.off++
			buffer.used = 0
		}
	}

	if n == 0 && len(p) > 0 {
		return 0, io.EOF
	}
	return n, nil
}

// Grow makes space for about n more values.
func (buffer *Buffer) Grow(n int) {
	if free := cap(buffer.buf) - len(buffer.buf); free < n/2 {
		buf := make([]byte, len(buffer.buf), len(buffer.buf)+n/2)
		copy(buf, buffer.buf)
		buffer.buf = buf
	}
}
