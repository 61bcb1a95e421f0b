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

// pathRange returns the index range of the nodes of a path of the
// given length that are removed, depending on whether the first and
// the last node go as well.
func pathRange(length int, deleteEntryNode, deleteSinkNode bool) (start, end int) {
	start, end = 1, length-1
	if deleteEntryNode {
		start = 0
	}
	if deleteSinkNode {
		end = length
	}
	return
}

func (g *Graph) removePaths(paths []Path, deleteEntryNode, deleteSinkNode bool, keep map[string]bool) (removed []bool) {
	removed = make([]bool, len(paths))
	for i, path := range paths {
		start, end := pathRange(len(path), deleteEntryNode, deleteSinkNode)
		for j := start; j < end; j++ {
			if keep[path[j]] {
				continue
			}
			if g.RemoveNode(path[j]) {
				removed[i] = true
			}
		}
	}
	return
}

// RemovePaths removes the nodes of each path from the graph. The first
// node of a path is only removed if deleteEntryNode is set, and the
// last node only if deleteSinkNode is set. Incident edges go together
// with their nodes.
func RemovePaths(g *Graph, paths []Path, deleteEntryNode, deleteSinkNode bool) {
	g.removePaths(paths, deleteEntryNode, deleteSinkNode, nil)
}

func maxFloatCandidates(candidates []int, values []float64) []int {
	best := values[candidates[0]]
	for _, c := range candidates[1:] {
		if values[c] > best {
			best = values[c]
		}
	}
	var result []int
	for _, c := range candidates {
		if values[c] == best {
			result = append(result, c)
		}
	}
	return result
}

func maxIntCandidates(candidates []int, values []int) []int {
	best := values[candidates[0]]
	for _, c := range candidates[1:] {
		if values[c] > best {
			best = values[c]
		}
	}
	var result []int
	for _, c := range candidates {
		if values[c] == best {
			result = append(result, c)
		}
	}
	return result
}

// SelectBestPath keeps one of several alternative paths and removes
// the others from the graph.
//
// If the mean weights of the paths differ, the paths with the highest
// mean weight remain candidates. Among the candidates, the longest
// paths are preferred, and any remaining tie is broken with rnd.
//
// The losing paths are removed as in RemovePaths, except that nodes on
// the selected path are never removed. When that leaves nothing to
// remove for a losing path, its edges that are not on the selected
// path are removed instead.
//
// SelectBestPath returns the index of the selected path, or -1 if
// there are no paths.
func SelectBestPath(g *Graph, paths []Path, lengths []int, weights []float64, deleteEntryNode, deleteSinkNode bool, rnd *internal.Rand) int {
	if len(paths) == 0 {
		return -1
	}
	candidates := make([]int, len(paths))
	for i := range candidates {
		candidates[i] = i
	}
	if Std(weights) > 0 {
		candidates = maxFloatCandidates(candidates, weights)
	}
	candidates = maxIntCandidates(candidates, lengths)
	best := candidates[0]
	if len(candidates) > 1 {
		best = candidates[rnd.Int31n(int32(len(candidates)))]
	}
	if len(paths) == 1 {
		return best
	}

	bestPath := paths[best]
	keep := make(map[string]bool, len(bestPath))
	keepEdges := make(map[[2]string]bool, len(bestPath))
	for i, node := range bestPath {
		keep[node] = true
		if i > 0 {
			keepEdges[[2]string{bestPath[i-1], node}] = true
		}
	}
	losers := make([]Path, 0, len(paths)-1)
	for i, path := range paths {
		if i != best {
			losers = append(losers, path)
		}
	}
	removed := g.removePaths(losers, deleteEntryNode, deleteSinkNode, keep)
	for i, path := range losers {
		if removed[i] {
			continue
		}
		for j := 1; j < len(path); j++ {
			if !keepEdges[[2]string{path[j-1], path[j]}] {
				g.RemoveEdge(path[j-1], path[j])
			}
		}
	}
	return best
}

// selectBestOf evaluates the given paths and keeps the best one.
func selectBestOf(g *Graph, paths []Path, deleteEntryNode, deleteSinkNode bool, rnd *internal.Rand) int {
	lengths, weights := evaluatePaths(g, paths)
	return SelectBestPath(g, paths, lengths, weights, deleteEntryNode, deleteSinkNode, rnd)
}
