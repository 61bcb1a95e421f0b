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
	"log"
	"strings"

	"github.com/bits-and-blooms/bitset"
	"gonum.org/v1/gonum/stat"
)

// Path is a walk through the graph, as a sequence of nodes.
type Path []string

// PathLength returns the number of nodes of a path.
func PathLength(path Path) int {
	return len(path)
}

// PathAverageWeight returns the mean weight of the edges along a path.
// A path needs at least two nodes to have an average weight.
func PathAverageWeight(g *Graph, path Path) (float64, error) {
	if len(path) < 2 {
		return 0, fmt.Errorf("%w: path of %v node(s) has no average weight", ErrInvalidArgument, len(path))
	}
	total := 0
	for i := 1; i < len(path); i++ {
		weight, ok := g.Weight(path[i-1], path[i])
		if !ok {
			return 0, fmt.Errorf("%w: no edge %v -> %v on path", ErrInvalidArgument, path[i-1], path[i])
		}
		total += weight
	}
	return float64(total) / float64(len(path)-1), nil
}

// Std returns the sample standard deviation of values, or 0 if there
// are fewer than two values.
func Std(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	return stat.StdDev(values, nil)
}

// evaluatePaths computes length and mean weight of each candidate.
// Candidates are always built from graph walks of at least two nodes,
// so an error here is a programming error.
func evaluatePaths(g *Graph, paths []Path) (lengths []int, weights []float64) {
	lengths = make([]int, len(paths))
	weights = make([]float64, len(paths))
	for i, path := range paths {
		weight, err := PathAverageWeight(g, path)
		if err != nil {
			log.Panic(err)
		}
		lengths[i] = PathLength(path)
		weights[i] = weight
	}
	return
}

// AllSimplePaths returns all paths from source to target that visit no
// node twice, in depth-first order following successors in insertion
// order. If source equals target, the result is the single path
// consisting of that node.
func (g *Graph) AllSimplePaths(source, target string) []Path {
	if !g.HasNode(source) || !g.HasNode(target) {
		return nil
	}
	if source == target {
		return []Path{{source}}
	}
	return g.simplePaths(source, func(node string) bool { return node == target })
}

// simplePaths enumerates all simple paths from source that end in a
// node accepted by isTarget. The search does not extend a path past a
// target node.
func (g *Graph) simplePaths(source string, isTarget func(string) bool) (paths []Path) {
	onPath := bitset.New(uint(g.verticesId) + 1)
	path := Path{source}
	onPath.Set(uint(g.vertices[source].id))
	var visit func(node string)
	visit = func(node string) {
		for _, edge := range g.outgoingEdges[node] {
			next := g.vertices[edge.to]
			if onPath.Test(uint(next.id)) {
				continue
			}
			if isTarget(edge.to) {
				found := make(Path, len(path)+1)
				copy(found, path)
				found[len(path)] = edge.to
				paths = append(paths, found)
				continue
			}
			onPath.Set(uint(next.id))
			path = append(path, edge.to)
			visit(edge.to)
			path = path[:len(path)-1]
			onPath.Clear(uint(next.id))
		}
	}
	visit(source)
	return
}

// PathToSequence reconstructs the sequence spelled by a path:
// consecutive nodes overlap in all but one symbol, so each node after
// the first contributes its last symbol.
func PathToSequence(path Path) string {
	if len(path) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.Grow(len(path[0]) + len(path) - 1)
	sb.WriteString(path[0])
	for _, node := range path[1:] {
		sb.WriteByte(node[len(node)-1])
	}
	return sb.String()
}
