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
)

// StartingNodes returns the nodes without predecessors, in insertion
// order.
func StartingNodes(g *Graph) []string {
	return g.nodesWhere(func(vertex *vertexInfo) bool {
		return g.InDegree(vertex.bases) == 0
	})
}

// SinkNodes returns the nodes without successors, in insertion order.
func SinkNodes(g *Graph) []string {
	return g.nodesWhere(func(vertex *vertexInfo) bool {
		return g.OutDegree(vertex.bases) == 0
	})
}

func (g *Graph) solveEntryTip(rnd *internal.Rand) bool {
	sources := StartingNodes(g)
	if len(sources) < 2 {
		return false
	}
	for _, vertex := range g.getVertices(nil) {
		node := vertex.bases
		if g.InDegree(node) < 2 {
			continue
		}
		var paths []Path
		origins := 0
		for _, source := range sources {
			if found := g.AllSimplePaths(source, node); len(found) > 0 {
				origins++
				paths = append(paths, found...)
			}
		}
		if origins < 2 {
			continue
		}
		selectBestOf(g, paths, true, false, rnd)
		return true
	}
	return false
}

func (g *Graph) solveExitTip(rnd *internal.Rand) bool {
	sinks := SinkNodes(g)
	if len(sinks) < 2 {
		return false
	}
	for _, vertex := range g.getVertices(nil) {
		node := vertex.bases
		if g.OutDegree(node) < 2 {
			continue
		}
		var paths []Path
		targets := 0
		for _, sink := range sinks {
			if found := g.AllSimplePaths(node, sink); len(found) > 0 {
				targets++
				paths = append(paths, found...)
			}
		}
		if targets < 2 {
			continue
		}
		selectBestOf(g, paths, false, true, rnd)
		return true
	}
	return false
}

// SolveEntryTips removes competing entries into the graph: for a node
// reached by paths from at least two different starting nodes, only
// the best supported path is kept, and the others are removed together
// with their starting node. This repeats until no such node is left,
// and returns the number of nodes resolved.
func SolveEntryTips(g *Graph, rnd *internal.Rand) (resolved int) {
	for g.solveEntryTip(rnd) {
		resolved++
	}
	return
}

// SolveExitTips removes competing exits from the graph: for a node
// leading to at least two different sink nodes, only the best
// supported path is kept, and the others are removed together with
// their sink node. This repeats until no such node is left, and
// returns the number of nodes resolved.
func SolveExitTips(g *Graph, rnd *internal.Rand) (resolved int) {
	for g.solveExitTip(rnd) {
		resolved++
	}
	return
}
