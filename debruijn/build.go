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

package debruijn

import (
	"fmt"

	"github.com/exascience/debruijn/kmers"
)

// BuildGraph turns a k-mer count table into a de Bruijn graph. Each
// k-mer contributes an edge from its prefix to its suffix, weighted by
// its count; counts of k-mers that map to the same edge accumulate.
// k-mers are visited in sorted order, so the resulting node order does
// not depend on map iteration.
func BuildGraph(counts kmers.Counts) (*Graph, error) {
	g := NewGraph()
	for _, kmer := range counts.Sorted() {
		if len(kmer) < 2 {
			return nil, fmt.Errorf("%w: k-mer %q is too short for a (k-1)-mer graph", ErrInvalidArgument, kmer)
		}
		if err := g.AddEdge(kmer[:len(kmer)-1], kmer[1:], counts[kmer]); err != nil {
			return nil, err
		}
	}
	return g, nil
}
