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

package kmers

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(seq string, k int) (result []string) {
	for kmer := range Cut(seq, k) {
		result = append(result, kmer)
	}
	return
}

func TestCut(t *testing.T) {
	assert.Equal(t, []string{"AAT", "ATC", "TCG"}, collect("AATCG", 3))
	assert.Equal(t, []string{"AATCG"}, collect("AATCG", 5))
	assert.Nil(t, collect("AATCG", 6))
	assert.Nil(t, collect("", 1))
	assert.Nil(t, collect("ACGT", 0))
}

func TestCutCountAndLength(t *testing.T) {
	seqs := []string{"", "A", "ACGTACGTTGCA", strings.Repeat("ACG", 20)}
	for _, seq := range seqs {
		for k := 1; k <= 12; k++ {
			t.Run(fmt.Sprintf("%v/%v", len(seq), k), func(t *testing.T) {
				got := collect(seq, k)
				want := len(seq) - k + 1
				if want < 0 {
					want = 0
				}
				require.Len(t, got, want)
				for i, kmer := range got {
					assert.Len(t, kmer, k)
					assert.Equal(t, seq[i:i+k], kmer)
				}
			})
		}
	}
}

func TestCutIsRestartable(t *testing.T) {
	seq := Cut("ACGTTGCA", 4)
	var first, second []string
	for kmer := range seq {
		first = append(first, kmer)
	}
	for kmer := range seq {
		second = append(second, kmer)
	}
	assert.Equal(t, first, second)
}

func TestCutStopsEarly(t *testing.T) {
	var got []string
	for kmer := range Cut("ACGTTGCA", 2) {
		got = append(got, kmer)
		if len(got) == 2 {
			break
		}
	}
	assert.Equal(t, []string{"AC", "CG"}, got)
}

func TestCount(t *testing.T) {
	counts, err := Count([]string{"AATCG", "ATCGA", "TCGAT"}, 3)
	require.NoError(t, err)
	assert.Equal(t, Counts{"AAT": 1, "ATC": 2, "TCG": 3, "CGA": 2, "GAT": 1}, counts)
	assert.Equal(t, 9, counts.Total())
}

func TestCountRepeatsWithinRead(t *testing.T) {
	counts, err := Count([]string{"AAAA"}, 2)
	require.NoError(t, err)
	assert.Equal(t, Counts{"AA": 3}, counts)
}

func TestCountEmpty(t *testing.T) {
	counts, err := Count(nil, 21)
	require.NoError(t, err)
	assert.Empty(t, counts)
}

func TestCountShortReads(t *testing.T) {
	counts, err := Count([]string{"ACG", "ACGTA"}, 4)
	require.NoError(t, err)
	assert.Equal(t, Counts{"ACGT": 1, "CGTA": 1}, counts)
}

func TestCountInvalidSize(t *testing.T) {
	for _, k := range []int{0, -3} {
		_, err := Count([]string{"ACGT"}, k)
		assert.ErrorIs(t, err, ErrInvalidParameter)
	}
}

func TestCountMatchesSequential(t *testing.T) {
	var seqs []string
	for i := 0; i < 500; i++ {
		seqs = append(seqs, strings.Repeat("ACGT", i%7+3)+strings.Repeat("G", i%5))
	}
	want := make(Counts)
	for _, seq := range seqs {
		want.Add(seq, 5)
	}
	got, err := Count(seqs, 5)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestCheckSizeAgainst(t *testing.T) {
	seqs := []string{"ACGTACGT", "ACG"}
	assert.NoError(t, CheckSizeAgainst(3, seqs))
	assert.ErrorIs(t, CheckSizeAgainst(4, seqs), ErrInvalidParameter)
	assert.ErrorIs(t, CheckSizeAgainst(0, seqs), ErrInvalidParameter)
	assert.NoError(t, CheckSizeAgainst(21, nil))
	assert.Equal(t, 3, Shortest(seqs))
	assert.Equal(t, 0, Shortest(nil))
}

func TestSorted(t *testing.T) {
	counts := Counts{"TT": 1, "AC": 2, "GA": 1}
	assert.Equal(t, []string{"AC", "GA", "TT"}, counts.Sorted())
}
