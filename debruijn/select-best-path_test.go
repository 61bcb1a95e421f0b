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
	"testing"

	"github.com/exascience/debruijn/internal"
	"github.com/stretchr/testify/assert"
)

func TestRemovePaths(t *testing.T) {
	edges := []Edge{{"A", "B", 1}, {"B", "C", 1}, {"C", "D", 1}}
	for _, tc := range []struct {
		name        string
		entry, sink bool
		expected    []string
	}{
		{"interior", false, false, []string{"A", "D"}},
		{"entry", true, false, []string{"D"}},
		{"sink", false, true, []string{"A"}},
		{"all", true, true, []string{}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGraph(t, edges...)
			RemovePaths(g, []Path{{"A", "B", "C", "D"}}, tc.entry, tc.sink)
			assert.Equal(t, tc.expected, g.Nodes())
			assert.NoError(t, g.Validate())
		})
	}
}

func TestSelectBestPathByWeight(t *testing.T) {
	g := newTestGraph(t,
		Edge{"A", "B", 5}, Edge{"B", "D", 5},
		Edge{"A", "C", 1}, Edge{"C", "E", 1}, Edge{"E", "D", 1},
	)
	paths := []Path{{"A", "C", "E", "D"}, {"A", "B", "D"}}
	best := SelectBestPath(g, paths, []int{4, 3}, []float64{1, 5}, false, false, internal.NewRand(1))
	assert.Equal(t, 1, best)
	assert.Equal(t, []string{"A", "B", "D"}, g.Nodes())
	assert.NoError(t, g.Validate())
}

func TestSelectBestPathByLength(t *testing.T) {
	g := newTestGraph(t,
		Edge{"A", "B", 2}, Edge{"B", "D", 2},
		Edge{"A", "C", 2}, Edge{"C", "E", 2}, Edge{"E", "D", 2},
	)
	paths := []Path{{"A", "B", "D"}, {"A", "C", "E", "D"}}
	best := SelectBestPath(g, paths, []int{3, 4}, []float64{2, 2}, false, false, internal.NewRand(1))
	assert.Equal(t, 1, best)
	assert.Equal(t, []string{"A", "D", "C", "E"}, g.Nodes())
}

func TestSelectBestPathEqualFractionalWeights(t *testing.T) {
	g := newTestGraph(t,
		Edge{"A", "B", 1}, Edge{"B", "D", 1},
		Edge{"A", "C", 1}, Edge{"C", "E", 1}, Edge{"E", "D", 1},
	)
	paths := []Path{{"A", "B", "D"}, {"A", "C", "E", "D"}}
	weights := []float64{0.1, 0.1}
	assert.Equal(t, 1, SelectBestPath(g, paths, []int{3, 4}, weights, false, false, internal.NewRand(1)))
	assert.False(t, g.HasNode("B"))
}

func TestSelectBestPathRandomTie(t *testing.T) {
	edges := []Edge{
		{"A", "B", 2}, {"B", "D", 2},
		{"A", "C", 2}, {"C", "D", 2},
	}
	paths := []Path{{"A", "B", "D"}, {"A", "C", "D"}}
	run := func(seed int64) (int, []string) {
		g := newTestGraph(t, edges...)
		best := SelectBestPath(g, paths, []int{3, 3}, []float64{2, 2}, false, false, internal.NewRand(seed))
		return best, g.Nodes()
	}
	best, nodes := run(9001)
	assert.Contains(t, []int{0, 1}, best)
	assert.Len(t, nodes, 3)
	assert.Contains(t, nodes, paths[best][1])
	for i := 0; i < 5; i++ {
		b, n := run(9001)
		assert.Equal(t, best, b)
		assert.Equal(t, nodes, n)
	}
}

func TestSelectBestPathRemovesDirectEdge(t *testing.T) {
	g := newTestGraph(t, Edge{"A", "B", 5}, Edge{"B", "D", 5}, Edge{"A", "D", 1})
	paths := []Path{{"A", "B", "D"}, {"A", "D"}}
	assert.Equal(t, 0, selectBestOf(g, paths, false, false, internal.NewRand(1)))
	assert.Equal(t, []string{"A", "B", "D"}, g.Nodes())
	assert.False(t, g.HasEdge("A", "D"))
	assert.Equal(t, 2, g.EdgeCount())
}

func TestSelectBestPathKeepsSharedNodes(t *testing.T) {
	g := newTestGraph(t,
		Edge{"A", "B", 9}, Edge{"B", "C", 9}, Edge{"C", "D", 9},
		Edge{"A", "X", 1}, Edge{"X", "C", 1},
	)
	paths := []Path{{"A", "X", "C", "D"}, {"A", "B", "C", "D"}}
	assert.Equal(t, 1, selectBestOf(g, paths, false, false, internal.NewRand(1)))
	assert.Equal(t, []string{"A", "B", "C", "D"}, g.Nodes())
	assert.NoError(t, g.Validate())
}

func TestSelectBestPathEmpty(t *testing.T) {
	assert.Equal(t, -1, SelectBestPath(NewGraph(), nil, nil, nil, false, false, internal.NewRand(1)))
}
