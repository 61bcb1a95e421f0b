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
	"io"
	"strconv"

	"github.com/awalterschulze/gographviz"
)

// Dot returns a Graphviz representation of the graph. Nodes and edges
// appear in insertion order; edges are labelled with their weight.
func (g *Graph) Dot() (*gographviz.Graph, error) {
	dot := gographviz.NewGraph()
	if err := dot.SetName("debruijn"); err != nil {
		return nil, err
	}
	if err := dot.SetDir(true); err != nil {
		return nil, err
	}
	for _, node := range g.Nodes() {
		if err := dot.AddNode("debruijn", strconv.Quote(node), nil); err != nil {
			return nil, err
		}
	}
	for _, edge := range g.Edges() {
		attrs := map[string]string{"label": strconv.Quote(strconv.Itoa(edge.Weight))}
		if err := dot.AddEdge(strconv.Quote(edge.From), strconv.Quote(edge.To), true, attrs); err != nil {
			return nil, err
		}
	}
	return dot, nil
}

// WriteDot writes the graph in Graphviz dot format.
func (g *Graph) WriteDot(w io.Writer) error {
	dot, err := g.Dot()
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, dot.String())
	return err
}
