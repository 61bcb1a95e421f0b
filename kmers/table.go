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

package kmers

import (
	"bufio"
	"io"
	"strconv"
)

// WriteTable writes one line per k-mer with its count, separated by a
// tab, in lexicographic k-mer order.
func (counts Counts) WriteTable(w io.Writer) error {
	out := bufio.NewWriter(w)
	var buf []byte
	for _, kmer := range counts.Sorted() {
		buf = append(buf[:0], kmer...)
		buf = append(buf, '\t')
		buf = strconv.AppendInt(buf, int64(counts[kmer]), 10)
		buf = append(buf, '\n')
		if _, err := out.Write(buf); err != nil {
			return err
		}
	}
	return out.Flush()
}
