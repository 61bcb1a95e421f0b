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

package internal

import (
	mathrand "math/rand"

	exprand "golang.org/x/exp/rand"
)

type int31nSource interface {
	Int31n(n int32) int32
}

// Rand is the pseudo-random generator threaded through graph
// simplification for tie-breaking.
type Rand struct {
	source int31nSource
}

// NewRand returns a generator initialized with the given seed. In
// pedantic mode it is a PCG generator from golang.org/x/exp/rand,
// otherwise the math/rand generator.
func NewRand(seed int64) *Rand {
	if PedanticMode {
		return NewPCGRand(seed)
	}
	return NewMathRand(seed)
}

// NewMathRand returns a math/rand generator with the given seed.
func NewMathRand(seed int64) *Rand {
	return &Rand{source: mathrand.New(mathrand.NewSource(seed))}
}

// NewPCGRand returns a golang.org/x/exp/rand PCG generator with the
// given seed.
func NewPCGRand(seed int64) *Rand {
	return &Rand{source: exprand.New(exprand.NewSource(uint64(seed)))}
}

// Int31n returns a pseudo-random number in [0, n). It panics if n <= 0.
func (r *Rand) Int31n(n int32) int32 {
	return r.source.Int31n(n)
}
