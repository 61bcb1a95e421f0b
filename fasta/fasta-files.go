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

// Package fasta writes assembled contigs in FASTA format.
package fasta

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/exascience/debruijn/debruijn"
	"github.com/exascience/debruijn/internal"
)

const (
	// DefaultWidth is the default number of bases per sequence line.
	DefaultWidth = 80

	// LineTerminator ends every line of the output, on all platforms.
	LineTerminator = '\n'
)

// ErrInvalidWidth is returned for non-positive line widths.
var ErrInvalidWidth = errors.New("fasta: line width must be positive")

// appendRecord formats one contig record: a header line with its
// index and length, followed by the sequence in lines of at most
// width bases.
func appendRecord(buf []byte, index int, contig debruijn.Contig, width int) []byte {
	buf = append(buf, ">contig_"...)
	buf = strconv.AppendInt(buf, int64(index), 10)
	buf = append(buf, " len="...)
	buf = strconv.AppendInt(buf, int64(contig.Length), 10)
	buf = append(buf, LineTerminator)
	seq := contig.Sequence
	for len(seq) > width {
		buf = append(buf, seq[:width]...)
		buf = append(buf, LineTerminator)
		seq = seq[width:]
	}
	buf = append(buf, seq...)
	return append(buf, LineTerminator)
}

// WriteContigs writes the contigs as FASTA records, numbered from 0
// in the given order. No contigs produce no output.
func WriteContigs(w io.Writer, contigs []debruijn.Contig, width int) error {
	if width <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidWidth, width)
	}
	buf := internal.ReserveByteBuffer()
	defer func() {
		internal.ReleaseByteBuffer(buf)
	}()
	for i, contig := range contigs {
		buf = appendRecord(buf[:0], i, contig, width)
		if _, err := w.Write(buf); err != nil {
			return err
		}
	}
	return nil
}

// WriteContigsFile creates or truncates a FASTA file and writes the
// contigs to it.
func WriteContigsFile(filename string, contigs []debruijn.Contig, width int) (err error) {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if nerr := f.Close(); err == nil {
			err = nerr
		}
	}()
	out := bufio.NewWriter(f)
	if err = WriteContigs(out, contigs, width); err != nil {
		return err
	}
	return out.Flush()
}
