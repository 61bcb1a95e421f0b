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

// distancesFrom returns the breadth-first distance of every node
// reachable from start without passing through avoid. A positive
// maxDistance bounds the search to nodes at most that many edges away
// from start.
func (g *Graph) distancesFrom(start, avoid string, maxDistance int) map[string]int {
	distances := map[string]int{start: 0}
	frontier := []string{start}
	for depth := 1; len(frontier) > 0; depth++ {
		if maxDistance > 0 && depth > maxDistance {
			break
		}
		var next []string
		for _, node := range frontier {
			for _, edge := range g.outgoingEdges[node] {
				if edge.to == avoid {
					continue
				}
				if _, seen := distances[edge.to]; !seen {
					distances[edge.to] = depth
					next = append(next, edge.to)
				}
			}
		}
		frontier = next
	}
	return distances
}

// nearestCommonDescendant returns the node reachable from both left
// and right, without passing through ancestor, with the smallest
// combined distance. Ties go to the node inserted first.
//
// A positive maxDepth bounds the number of edges between ancestor and
// the descendant along each branch. The branches start at left and
// right, which are one edge away from ancestor already.
func (g *Graph) nearestCommonDescendant(ancestor, left, right string, maxDepth int) (string, bool) {
	maxDistance := 0
	if maxDepth > 0 {
		if maxDepth == 1 {
			// distinct successors cannot meet within one edge
			return "", false
		}
		maxDistance = maxDepth - 1
	}
	leftDistances := g.distancesFrom(left, ancestor, maxDistance)
	rightDistances := g.distancesFrom(right, ancestor, maxDistance)
	var best *vertexInfo
	bestDistance := -1
	for node, l := range leftDistances {
		r, ok := rightDistances[node]
		if !ok {
			continue
		}
		vertex := g.vertices[node]
		if d := l + r; bestDistance < 0 || d < bestDistance || (d == bestDistance && vertex.id < best.id) {
			best, bestDistance = vertex, d
		}
	}
	if best == nil {
		return "", false
	}
	return best.bases, true
}

// FindBubble looks for a node with two successors whose forward paths
// reconverge, and returns that node together with the nearest node
// where they meet. Nodes are scanned in insertion order. A positive
// maxDepth is the largest number of edges from the ancestor to the
// descendant allowed on either branch.
func FindBubble(g *Graph, maxDepth int) (ancestor, descendant string, ok bool) {
	for _, vertex := range g.getVertices(nil) {
		successors := g.Successors(vertex.bases)
		if len(successors) < 2 {
			continue
		}
		for i, left := range successors {
			if left == vertex.bases {
				continue
			}
			for _, right := range successors[i+1:] {
				if right == vertex.bases {
					continue
				}
				if descendant, ok := g.nearestCommonDescendant(vertex.bases, left, right, maxDepth); ok {
					return vertex.bases, descendant, true
				}
			}
		}
	}
	return "", "", false
}

// SolveBubble keeps the best supported of all simple paths between
// ancestor and descendant and removes the inner nodes of the others.
func SolveBubble(g *Graph, ancestor, descendant string, rnd *internal.Rand) {
	paths := g.AllSimplePaths(ancestor, descendant)
	if len(paths) < 2 {
		return
	}
	selectBestOf(g, paths, false, false, rnd)
}

// SimplifyBubbles resolves bubbles until none are left, and returns
// the number of bubbles resolved. Candidate bubbles are searched anew
// after every resolution, since each one changes the graph.
func SimplifyBubbles(g *Graph, maxDepth int, rnd *internal.Rand) (resolved int) {
	for {
		ancestor, descendant, ok := FindBubble(g, maxDepth)
		if !ok {
			return
		}
		SolveBubble(g, ancestor, descendant, rnd)
		resolved++
	}
}
