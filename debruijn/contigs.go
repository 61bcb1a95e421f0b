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
	"github.com/exascience/pargo/parallel"
)

// Contig is an assembled sequence together with its length.
type Contig struct {
	Sequence string
	Length   int
}

func makeContig(path Path) Contig {
	sequence := PathToSequence(path)
	return Contig{Sequence: sequence, Length: len(sequence)}
}

// contigsFrom returns the contigs of all simple paths from start to
// the given sinks, grouped by sink.
func (g *Graph) contigsFrom(start string, sinks []string, sinkIndex map[string]int) [][]Contig {
	result := make([][]Contig, len(sinks))
	if sinkIndex == nil {
		for i, sink := range sinks {
			for _, path := range g.AllSimplePaths(start, sink) {
				result[i] = append(result[i], makeContig(path))
			}
		}
		return result
	}
	if i, ok := sinkIndex[start]; ok {
		result[i] = append(result[i], makeContig(Path{start}))
		return result
	}
	// Sinks have no successors, so a single depth-first search from
	// start enumerates the paths to each sink in the same order as a
	// separate search per sink would.
	for _, path := range g.simplePaths(start, func(node string) bool {
		_, ok := sinkIndex[node]
		return ok
	}) {
		i := sinkIndex[path[len(path)-1]]
		result[i] = append(result[i], makeContig(path))
	}
	return result
}

// sinkIndexOf maps each sink to its position, or returns nil if some
// sink is missing from the graph, repeated, or has successors.
func (g *Graph) sinkIndexOf(sinks []string) map[string]int {
	sinkIndex := make(map[string]int, len(sinks))
	for i, sink := range sinks {
		if _, dup := sinkIndex[sink]; dup || !g.HasNode(sink) || g.OutDegree(sink) > 0 {
			return nil
		}
		sinkIndex[sink] = i
	}
	return sinkIndex
}

// Contigs returns the sequences of all simple paths from each of the
// starting nodes to each of the sink nodes. Contigs are ordered by
// starting node, then by sink node, then in depth-first path order.
//
// The graph is only read, and starting nodes are processed in
// parallel.
func Contigs(g *Graph, starts, sinks []string) []Contig {
	if len(starts) == 0 || len(sinks) == 0 {
		return nil
	}
	sinkIndex := g.sinkIndexOf(sinks)
	perStart := make([][][]Contig, len(starts))
	parallel.Range(0, len(starts), 0, func(low, high int) {
		for i := low; i < high; i++ {
			if g.HasNode(starts[i]) {
				perStart[i] = g.contigsFrom(starts[i], sinks, sinkIndex)
			}
		}
	})
	var result []Contig
	for _, perSink := range perStart {
		for _, contigs := range perSink {
			result = append(result, contigs...)
		}
	}
	return result
}
