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

func TestStartingAndSinkNodes(t *testing.T) {
	g := newTestGraph(t,
		Edge{"A", "B", 1}, Edge{"C", "B", 1},
		Edge{"B", "D", 1}, Edge{"B", "E", 1},
	)
	g.AddNode("I")
	assert.Equal(t, []string{"A", "C", "I"}, StartingNodes(g))
	assert.Equal(t, []string{"D", "E", "I"}, SinkNodes(g))
}

func TestSolveExitTips(t *testing.T) {
	g := newTestGraph(t,
		Edge{"A", "B", 10}, Edge{"B", "C", 10}, Edge{"C", "X", 10},
		Edge{"B", "T", 1}, Edge{"T", "Y", 1},
	)
	assert.Equal(t, 1, SolveExitTips(g, internal.NewRand(9001)))
	assert.Equal(t, []string{"A", "B", "C", "X"}, g.Nodes())
	assert.Equal(t, []string{"X"}, SinkNodes(g))
	assert.NoError(t, g.Validate())
	assert.Equal(t, 0, SolveExitTips(g, internal.NewRand(9001)))
}

func TestSolveEntryTips(t *testing.T) {
	g := newTestGraph(t,
		Edge{"A", "B", 10}, Edge{"B", "C", 10}, Edge{"C", "X", 10},
		Edge{"Y", "T", 1}, Edge{"T", "C", 1},
	)
	assert.Equal(t, 1, SolveEntryTips(g, internal.NewRand(9001)))
	assert.Equal(t, []string{"A", "B", "C", "X"}, g.Nodes())
	assert.Equal(t, []string{"A"}, StartingNodes(g))
	assert.NoError(t, g.Validate())
}

func TestSolveEntryTipsPrefersLongerPath(t *testing.T) {
	g := newTestGraph(t,
		Edge{"A", "B", 2}, Edge{"B", "C", 2}, Edge{"C", "D", 2},
		Edge{"Y", "D", 2},
	)
	assert.Equal(t, 1, SolveEntryTips(g, internal.NewRand(9001)))
	assert.Equal(t, []string{"A", "B", "C", "D"}, g.Nodes())
}

func TestSolveTipsSingleSource(t *testing.T) {
	g := newTestGraph(t, Edge{"A", "B", 1}, Edge{"A", "C", 1}, Edge{"C", "B", 1})
	assert.Equal(t, 0, SolveEntryTips(g, internal.NewRand(9001)))
	assert.Equal(t, 3, g.NodeCount())
}
