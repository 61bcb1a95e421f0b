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
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrInvalidArgument indicates a degenerate path or weight was
	// passed to a graph operation.
	ErrInvalidArgument = errors.New("debruijn: invalid argument")

	// ErrGraphConsistency indicates an edge that refers to a node that
	// is no longer part of the graph.
	ErrGraphConsistency = errors.New("debruijn: graph consistency error")
)

type (
	vertexInfo struct {
		id    int32
		bases string
	}

	edgeInfo struct {
		from, to string
		weight   int
	}

	// Graph is a directed, weighted de Bruijn graph over (k-1)-mers.
	//
	// Nodes are identified by their bases. Each node keeps its
	// outgoing and incoming edges in insertion order, and both lists
	// share the same edge records, so that weights are stored once.
	// A Graph is not safe for concurrent mutation.
	Graph struct {
		verticesId    int32
		vertices      map[string]*vertexInfo
		outgoingEdges map[string][]*edgeInfo
		incomingEdges map[string][]*edgeInfo
		nofEdges      int
	}

	// Edge is a read-only snapshot of a graph edge.
	Edge struct {
		From, To string
		Weight   int
	}
)

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{
		vertices:      make(map[string]*vertexInfo),
		outgoingEdges: make(map[string][]*edgeInfo),
		incomingEdges: make(map[string][]*edgeInfo),
	}
}

func (g *Graph) newVertexId() int32 {
	g.verticesId++
	return g.verticesId
}

// AddNode adds a node. Adding an existing node is a no-op.
func (g *Graph) AddNode(bases string) {
	if _, ok := g.vertices[bases]; ok {
		return
	}
	g.vertices[bases] = &vertexInfo{id: g.newVertexId(), bases: bases}
}

// HasNode reports whether the node is part of the graph.
func (g *Graph) HasNode(bases string) bool {
	_, ok := g.vertices[bases]
	return ok
}

func (g *Graph) getOutgoingEdge(source, target string) (*edgeInfo, bool) {
	for _, edge := range g.outgoingEdges[source] {
		if edge.to == target {
			return edge, true
		}
	}
	return nil, false
}

// AddEdge adds the edge source->target with the given weight, adding
// missing endpoints first. If the edge already exists, its weight is
// incremented by weight instead.
func (g *Graph) AddEdge(source, target string, weight int) error {
	if weight < 1 {
		return fmt.Errorf("%w: edge %v -> %v with weight %v", ErrInvalidArgument, source, target, weight)
	}
	g.AddNode(source)
	g.AddNode(target)
	if edge, ok := g.getOutgoingEdge(source, target); ok {
		edge.weight += weight
		return nil
	}
	edge := &edgeInfo{from: source, to: target, weight: weight}
	g.outgoingEdges[source] = append(g.outgoingEdges[source], edge)
	g.incomingEdges[target] = append(g.incomingEdges[target], edge)
	g.nofEdges++
	return nil
}

// HasEdge reports whether the edge source->target is part of the graph.
func (g *Graph) HasEdge(source, target string) bool {
	_, ok := g.getOutgoingEdge(source, target)
	return ok
}

// Weight returns the weight of the edge source->target.
func (g *Graph) Weight(source, target string) (int, bool) {
	if edge, ok := g.getOutgoingEdge(source, target); ok {
		return edge.weight, true
	}
	return 0, false
}

// OutDegree returns the number of outgoing edges of a node.
func (g *Graph) OutDegree(bases string) int {
	return len(g.outgoingEdges[bases])
}

// InDegree returns the number of incoming edges of a node.
func (g *Graph) InDegree(bases string) int {
	return len(g.incomingEdges[bases])
}

// Successors returns the targets of the outgoing edges of a node,
// in insertion order.
func (g *Graph) Successors(bases string) []string {
	edges := g.outgoingEdges[bases]
	result := make([]string, 0, len(edges))
	for _, edge := range edges {
		result = append(result, edge.to)
	}
	return result
}

// Predecessors returns the sources of the incoming edges of a node,
// in insertion order.
func (g *Graph) Predecessors(bases string) []string {
	edges := g.incomingEdges[bases]
	result := make([]string, 0, len(edges))
	for _, edge := range edges {
		result = append(result, edge.from)
	}
	return result
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int {
	return len(g.vertices)
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	return g.nofEdges
}

func (g *Graph) getVertices(predicate func(*vertexInfo) bool) (result []*vertexInfo) {
	for _, vertex := range g.vertices {
		if predicate == nil || predicate(vertex) {
			result = append(result, vertex)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].id < result[j].id
	})
	return
}

func (g *Graph) nodesWhere(predicate func(*vertexInfo) bool) []string {
	vertices := g.getVertices(predicate)
	result := make([]string, len(vertices))
	for i, vertex := range vertices {
		result[i] = vertex.bases
	}
	return result
}

// Nodes returns all nodes in insertion order.
func (g *Graph) Nodes() []string {
	return g.nodesWhere(nil)
}

// Edges returns all edges, ordered by source node insertion order
// and then by the insertion order of the edges of that source.
func (g *Graph) Edges() []Edge {
	result := make([]Edge, 0, g.nofEdges)
	for _, vertex := range g.getVertices(nil) {
		for _, edge := range g.outgoingEdges[vertex.bases] {
			result = append(result, Edge{From: edge.from, To: edge.to, Weight: edge.weight})
		}
	}
	return result
}

func removeEdgeInfo(edges []*edgeInfo, edge *edgeInfo) []*edgeInfo {
	var result []*edgeInfo
	for _, e := range edges {
		if e != edge {
			result = append(result, e)
		}
	}
	return result
}

func (g *Graph) setOutgoingEdges(bases string, edges []*edgeInfo) {
	if len(edges) == 0 {
		delete(g.outgoingEdges, bases)
	} else {
		g.outgoingEdges[bases] = edges
	}
}

func (g *Graph) setIncomingEdges(bases string, edges []*edgeInfo) {
	if len(edges) == 0 {
		delete(g.incomingEdges, bases)
	} else {
		g.incomingEdges[bases] = edges
	}
}

func (g *Graph) removeEdgeRaw(edge *edgeInfo) {
	g.setOutgoingEdges(edge.from, removeEdgeInfo(g.outgoingEdges[edge.from], edge))
	g.setIncomingEdges(edge.to, removeEdgeInfo(g.incomingEdges[edge.to], edge))
	g.nofEdges--
}

// RemoveEdge removes the edge source->target, and reports whether
// it was present. Its endpoints stay in the graph.
func (g *Graph) RemoveEdge(source, target string) bool {
	edge, ok := g.getOutgoingEdge(source, target)
	if !ok {
		return false
	}
	g.removeEdgeRaw(edge)
	return true
}

// RemoveNode removes a node together with all its incident edges,
// and reports whether the node was present.
func (g *Graph) RemoveNode(bases string) bool {
	if _, ok := g.vertices[bases]; !ok {
		return false
	}
	for _, edge := range g.outgoingEdges[bases] {
		if edge.to != bases {
			g.setIncomingEdges(edge.to, removeEdgeInfo(g.incomingEdges[edge.to], edge))
		}
		g.nofEdges--
	}
	for _, edge := range g.incomingEdges[bases] {
		if edge.from != bases {
			g.setOutgoingEdges(edge.from, removeEdgeInfo(g.outgoingEdges[edge.from], edge))
			g.nofEdges--
		}
	}
	delete(g.outgoingEdges, bases)
	delete(g.incomingEdges, bases)
	delete(g.vertices, bases)
	return true
}

// Validate checks that every edge refers to nodes of the graph, and
// that outgoing and incoming edge lists agree with each other.
func (g *Graph) Validate() error {
	count := 0
	for source, edges := range g.outgoingEdges {
		for _, edge := range edges {
			if edge.from != source {
				return fmt.Errorf("%w: edge %v -> %v listed under %v", ErrGraphConsistency, edge.from, edge.to, source)
			}
			if !g.HasNode(edge.from) || !g.HasNode(edge.to) {
				return fmt.Errorf("%w: edge %v -> %v has a missing endpoint", ErrGraphConsistency, edge.from, edge.to)
			}
			if edge.weight < 1 {
				return fmt.Errorf("%w: edge %v -> %v has weight %v", ErrGraphConsistency, edge.from, edge.to, edge.weight)
			}
			found := false
			for _, in := range g.incomingEdges[edge.to] {
				if in == edge {
					found = true
					break
				}
			}
			if !found {
				return fmt.Errorf("%w: edge %v -> %v missing from incoming edges", ErrGraphConsistency, edge.from, edge.to)
			}
			count++
		}
	}
	incoming := 0
	for _, edges := range g.incomingEdges {
		incoming += len(edges)
	}
	if count != g.nofEdges || incoming != g.nofEdges {
		return fmt.Errorf("%w: %v outgoing and %v incoming edges, expected %v", ErrGraphConsistency, count, incoming, g.nofEdges)
	}
	return nil
}
