// debruijn: a de Bruijn graph assembler for short sequencing reads.
// Copyright (c) 2026 imec vzw.

// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version, and Additional Terms
// (see below).

// This program is distributed in the hope that it will be useful, but
// WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
// Affero General Public License for more details.

// You should have received a copy of the GNU Affero General Public
// License and Additional Terms along with this program. If not, see
// <https://github.com/ExaScience/elprep/blob/master/LICENSE.txt>.

package utils

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"io"

	"github.com/klauspost/compress/zstd"
)

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

// IsGzip determines if the given reader produces a gzip file
// by peeking at its initial bytes.
func IsGzip(buf *bufio.Reader) (bool, error) {
	return hasMagic(buf, gzipMagic)
}

// IsZstd determines if the given reader produces a zstd frame
// by peeking at its initial bytes.
func IsZstd(buf *bufio.Reader) (bool, error) {
	return hasMagic(buf, zstdMagic)
}

func hasMagic(buf *bufio.Reader, magic []byte) (bool, error) {
	b, err := buf.Peek(len(magic))
	if err == io.EOF || err == bufio.ErrBufferFull {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return bytes.Equal(b, magic), nil
}

// HandleCompressed checks if the given reader produces a gzip or a
// zstd stream by looking at the initial bytes. It then either returns
// a decompressing reader, or returns the given reader unchanged.
// The returned close function releases decoder resources and must
// be called once the reader is no longer needed.
func HandleCompressed(buf *bufio.Reader) (r io.Reader, close func() error, err error) {
	noop := func() error { return nil }
	if ok, err := IsGzip(buf); err != nil {
		return nil, noop, err
	} else if ok {
		gz, err := gzip.NewReader(buf)
		if err != nil {
			return nil, noop, err
		}
		return gz, gz.Close, nil
	}
	if ok, err := IsZstd(buf); err != nil {
		return nil, noop, err
	} else if ok {
		zr, err := zstd.NewReader(buf, zstd.WithDecoderConcurrency(1))
		if err != nil {
			return nil, noop, err
		}
		return zr, func() error { zr.Close(); return nil }, nil
	}
	return buf, noop, nil
}
