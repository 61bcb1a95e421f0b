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

func TestFindBubble(t *testing.T) {
	g := newTestGraph(t,
		Edge{"A", "B", 3}, Edge{"B", "D", 3},
		Edge{"A", "C", 1}, Edge{"C", "D", 1},
		Edge{"D", "E", 4},
	)
	ancestor, descendant, ok := FindBubble(g, 0)
	assert.True(t, ok)
	assert.Equal(t, "A", ancestor)
	assert.Equal(t, "D", descendant)
}

func TestFindBubbleDirectBranch(t *testing.T) {
	g := newTestGraph(t, Edge{"A", "B", 1}, Edge{"A", "C", 1}, Edge{"B", "C", 1})
	ancestor, descendant, ok := FindBubble(g, 0)
	assert.True(t, ok)
	assert.Equal(t, "A", ancestor)
	assert.Equal(t, "C", descendant)
}

func TestFindBubbleMaxDepth(t *testing.T) {
	// the longer branch has four edges from A to D
	g := newTestGraph(t,
		Edge{"A", "B", 1}, Edge{"B", "X", 1}, Edge{"X", "Y", 1}, Edge{"Y", "D", 1},
		Edge{"A", "C", 1}, Edge{"C", "D", 1},
	)
	for _, maxDepth := range []int{1, 2, 3} {
		_, _, ok := FindBubble(g, maxDepth)
		assert.False(t, ok, maxDepth)
	}
	for _, maxDepth := range []int{4, 5, 0} {
		ancestor, descendant, ok := FindBubble(g, maxDepth)
		assert.True(t, ok, maxDepth)
		assert.Equal(t, "A", ancestor)
		assert.Equal(t, "D", descendant)
	}
}

func TestFindBubbleMaxDepthCountsFromAncestor(t *testing.T) {
	g := newTestGraph(t,
		Edge{"A", "B", 1}, Edge{"B", "D", 1},
		Edge{"A", "C", 1}, Edge{"C", "X", 1}, Edge{"X", "D", 1},
	)
	_, _, ok := FindBubble(g, 2)
	assert.False(t, ok)
	_, descendant, ok := FindBubble(g, 3)
	assert.True(t, ok)
	assert.Equal(t, "D", descendant)
	assert.Equal(t, 0, SimplifyBubbles(g, 2, internal.NewRand(9001)))
	assert.Equal(t, 1, SimplifyBubbles(g, 3, internal.NewRand(9001)))
}

func TestFindBubbleDirectBranchDepth(t *testing.T) {
	g := newTestGraph(t, Edge{"A", "B", 1}, Edge{"A", "C", 1}, Edge{"B", "C", 1})
	_, _, ok := FindBubble(g, 1)
	assert.False(t, ok)
	_, descendant, ok := FindBubble(g, 2)
	assert.True(t, ok)
	assert.Equal(t, "C", descendant)
}

func TestFindBubbleNone(t *testing.T) {
	g := newTestGraph(t, Edge{"A", "B", 1}, Edge{"A", "C", 1}, Edge{"C", "A", 1})
	_, _, ok := FindBubble(g, 0)
	assert.False(t, ok)
}

func TestSimplifyBubbles(t *testing.T) {
	g := newTestGraph(t,
		Edge{"S", "A", 5},
		Edge{"A", "B", 5}, Edge{"B", "D", 5},
		Edge{"A", "C", 1}, Edge{"C", "D", 1},
		Edge{"D", "E", 5}, Edge{"E", "G", 5},
		Edge{"D", "F", 1}, Edge{"F", "G", 1},
	)
	rnd := internal.NewRand(9001)
	assert.Equal(t, 2, SimplifyBubbles(g, 0, rnd))
	assert.Equal(t, []string{"S", "A", "B", "D", "E", "G"}, g.Nodes())
	assert.NoError(t, g.Validate())

	nodes, edges := g.Nodes(), g.Edges()
	assert.Equal(t, 0, SimplifyBubbles(g, 0, rnd))
	assert.Equal(t, nodes, g.Nodes())
	assert.Equal(t, edges, g.Edges())
}

func TestSimplifyNestedBubbles(t *testing.T) {
	g := newTestGraph(t,
		Edge{"A", "B", 4}, Edge{"B", "C", 4}, Edge{"C", "E", 4},
		Edge{"B", "D", 1}, Edge{"D", "E", 1},
		Edge{"A", "F", 1}, Edge{"F", "E", 1},
		Edge{"E", "A", 1},
	)
	rnd := internal.NewRand(9001)
	assert.Positive(t, SimplifyBubbles(g, 0, rnd))
	_, _, ok := FindBubble(g, 0)
	assert.False(t, ok)
	assert.NoError(t, g.Validate())
	assert.True(t, g.HasEdge("A", "B"))
	assert.True(t, g.HasEdge("B", "C"))
	assert.True(t, g.HasEdge("C", "E"))
}
