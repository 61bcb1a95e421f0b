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

// debruijn assembles short sequencing reads into contigs using a de
// Bruijn graph.
//
// Please see https://github.com/exascience/debruijn for a documentation
// of the tool, and below (and/or
// https://godoc.org/github.com/exascience/debruijn) for the API
// documentation.
package main

import (
	"fmt"
	"os"

	"github.com/exascience/debruijn/cmd"
)

func main() {
	fmt.Fprintln(os.Stderr, cmd.ProgramMessage)
	cmd.Execute()
}
