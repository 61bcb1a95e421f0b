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

// Package kmers cuts sequencing reads into k-mers and counts their
// occurrences.
package kmers

import (
	"errors"
	"fmt"
	"iter"
	"sort"

	"github.com/exascience/pargo/parallel"
)

// ErrInvalidParameter is returned for k-mer sizes that cannot be used
// for indexing.
var ErrInvalidParameter = errors.New("kmers: invalid parameter")

// Counts maps each k-mer to its number of occurrences.
type Counts map[string]int

// Cut returns the overlapping substrings of length k of seq, from
// left to right, one per start offset. A sequence shorter than k
// yields nothing. The returned sequence can be ranged over repeatedly.
func Cut(seq string, k int) iter.Seq[string] {
	return func(yield func(string) bool) {
		if k <= 0 {
			return
		}
		for i, end := 0, len(seq)-k; i <= end; i++ {
			if !yield(seq[i : i+k]) {
				return
			}
		}
	}
}

// CheckSize rejects non-positive k-mer sizes.
func CheckSize(k int) error {
	if k <= 0 {
		return fmt.Errorf("%w: k-mer size %v must be positive", ErrInvalidParameter, k)
	}
	return nil
}

// Shortest returns the length of the shortest sequence, or 0 if
// there are no sequences.
func Shortest(seqs []string) int {
	if len(seqs) == 0 {
		return 0
	}
	shortest := len(seqs[0])
	for _, seq := range seqs[1:] {
		if len(seq) < shortest {
			shortest = len(seq)
		}
	}
	return shortest
}

// CheckSizeAgainst rejects non-positive k-mer sizes, and k-mer sizes
// that exceed the length of the shortest sequence.
func CheckSizeAgainst(k int, seqs []string) error {
	if err := CheckSize(k); err != nil {
		return err
	}
	if len(seqs) == 0 {
		return nil
	}
	if shortest := Shortest(seqs); k > shortest {
		return fmt.Errorf("%w: k-mer size %v exceeds shortest sequence length %v", ErrInvalidParameter, k, shortest)
	}
	return nil
}

// Add accumulates the occurrences of all k-mers of seq.
func (counts Counts) Add(seq string, k int) {
	for kmer := range Cut(seq, k) {
		counts[kmer]++
	}
}

// Merge adds all counts of other to counts.
func (counts Counts) Merge(other Counts) {
	for kmer, n := range other {
		counts[kmer] += n
	}
}

// Sorted returns the k-mers in lexicographic order.
func (counts Counts) Sorted() []string {
	result := make([]string, 0, len(counts))
	for kmer := range counts {
		result = append(result, kmer)
	}
	sort.Strings(result)
	return result
}

// Total returns the sum of all occurrence counts.
func (counts Counts) Total() (total int) {
	for _, n := range counts {
		total += n
	}
	return
}

// Count indexes all k-mers of all sequences. Ranges of sequences are
// counted in parallel and the partial tables are merged by addition,
// so the result does not depend on scheduling.
func Count(seqs []string, k int) (Counts, error) {
	if err := CheckSize(k); err != nil {
		return nil, err
	}
	if len(seqs) == 0 {
		return make(Counts), nil
	}
	return parallel.RangeReduce(0, len(seqs), 0, func(low, high int) interface{} {
		counts := make(Counts)
		for _, seq := range seqs[low:high] {
			counts.Add(seq, k)
		}
		return counts
	}, func(left, right interface{}) interface{} {
		l := left.(Counts)
		r := right.(Counts)
		if len(l) < len(r) {
			l, r = r, l
		}
		l.Merge(r)
		return l
	}).(Counts), nil
}
