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
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathAverageWeight(t *testing.T) {
	g := newTestGraph(t, Edge{"A", "B", 2}, Edge{"B", "C", 5})
	weight, err := PathAverageWeight(g, Path{"A", "B", "C"})
	require.NoError(t, err)
	assert.InDelta(t, 3.5, weight, 1e-9)

	_, err = PathAverageWeight(g, Path{"A"})
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = PathAverageWeight(g, Path{"A", "C"})
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestStd(t *testing.T) {
	assert.Equal(t, 0.0, Std(nil))
	assert.Equal(t, 0.0, Std([]float64{3}))
	assert.Equal(t, 0.0, Std([]float64{2, 2, 2}))
	assert.InDelta(t, math.Sqrt(2), Std([]float64{1, 3}), 1e-9)
	assert.InDelta(t, 1.0, Std([]float64{1, 2, 3}), 1e-9)
	assert.InDelta(t, math.Sqrt(32.0/7), Std([]float64{2, 4, 4, 4, 5, 5, 7, 9}), 1e-9)
}

func TestAllSimplePaths(t *testing.T) {
	g := newTestGraph(t,
		Edge{"A", "B", 1},
		Edge{"A", "C", 1},
		Edge{"B", "D", 1},
		Edge{"C", "D", 1},
		Edge{"D", "A", 1},
	)
	assert.Equal(t, []Path{{"A", "B", "D"}, {"A", "C", "D"}}, g.AllSimplePaths("A", "D"))
	assert.Equal(t, []Path{{"A"}}, g.AllSimplePaths("A", "A"))
	assert.Empty(t, g.AllSimplePaths("A", "X"))
	assert.Equal(t, []Path{{"B", "D", "A", "C"}}, g.AllSimplePaths("B", "C"))
}

func TestPathToSequence(t *testing.T) {
	assert.Equal(t, "", PathToSequence(nil))
	assert.Equal(t, "AAT", PathToSequence(Path{"AAT"}))
	path := Path{"AAT", "ATC", "TCG", "CGA", "GAT"}
	sequence := PathToSequence(path)
	assert.Equal(t, "AATCGAT", sequence)
	assert.Equal(t, len(path[0])+len(path)-1, len(sequence))
}
