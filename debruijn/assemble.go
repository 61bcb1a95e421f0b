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
	"github.com/exascience/debruijn/internal"
	"github.com/exascience/debruijn/kmers"
)

// Simplify removes bubbles, then entry tips, then exit tips, each to
// a fixed point. A maxBubbleDepth <= 0 leaves the bubble search
// unbounded.
func Simplify(g *Graph, maxBubbleDepth int, rnd *internal.Rand) (bubbles, entryTips, exitTips int) {
	bubbles = SimplifyBubbles(g, maxBubbleDepth, rnd)
	entryTips = SolveEntryTips(g, rnd)
	exitTips = SolveExitTips(g, rnd)
	return
}

// Assemble builds the de Bruijn graph of seqs for k-mer size k,
// simplifies it, and extracts its contigs.
func Assemble(seqs []string, k int, rnd *internal.Rand) (*Graph, []Contig, error) {
	return AssembleWithDepth(seqs, k, 0, rnd)
}

// AssembleWithDepth is Assemble with a bound on the distance searched
// for the end of a bubble.
func AssembleWithDepth(seqs []string, k, maxBubbleDepth int, rnd *internal.Rand) (*Graph, []Contig, error) {
	counts, err := kmers.Count(seqs, k)
	if err != nil {
		return nil, nil, err
	}
	g, err := BuildGraph(counts)
	if err != nil {
		return nil, nil, err
	}
	Simplify(g, maxBubbleDepth, rnd)
	return g, Contigs(g, StartingNodes(g), SinkNodes(g)), nil
}
