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

package cmd

import (
	"bufio"
	"log"
	"os"

	"github.com/google/uuid"

	"github.com/exascience/debruijn/config"
	"github.com/exascience/debruijn/debruijn"
	"github.com/exascience/debruijn/fasta"
	"github.com/exascience/debruijn/fastq"
	"github.com/exascience/debruijn/internal"
	"github.com/exascience/debruijn/kmers"
)

func checkAssembleOptions(c config.Config) bool {
	sanityChecksFailed := false
	if !checkRegular("--fastq", c.FastqPath) {
		sanityChecksFailed = true
	}
	if !checkCreate("--output", c.OutputPath) {
		sanityChecksFailed = true
	}
	if c.DotPath != "" && !checkCreate("--dot", c.DotPath) {
		sanityChecksFailed = true
	}
	if c.Profile != "" && !checkCreate("--profile", c.Profile) {
		sanityChecksFailed = true
	}
	if c.BubbleDepth < 0 {
		log.Println("Error: Invalid bubble-depth: ", c.BubbleDepth)
		sanityChecksFailed = true
	}
	return !sanityChecksFailed
}

func readSequences(c config.Config, phase int64) (seqs []string, err error) {
	err = timedRun(c.Timed, c.Profile, "Reading FASTQ file.", phase, func() (err error) {
		if seqs, err = fastq.ParseFile(c.FastqPath, c.Progress); err != nil {
			return err
		}
		if c.StrictKmerSize {
			return kmers.CheckSizeAgainst(c.KmerSize, seqs)
		}
		if shortest := kmers.Shortest(seqs); len(seqs) > 0 && c.KmerSize > shortest {
			log.Printf("Warning: k-mer size %v exceeds the length %v of the shortest read; shorter reads contribute no k-mers.\n", c.KmerSize, shortest)
		}
		return nil
	})
	if err == nil {
		log.Printf("Read %v sequences from %v.\n", len(seqs), c.FastqPath)
	}
	return
}

func countKmers(c config.Config, seqs []string, phase int64) (counts kmers.Counts, err error) {
	err = timedRun(c.Timed, c.Profile, "Counting k-mers.", phase, func() (err error) {
		counts, err = kmers.Count(seqs, c.KmerSize)
		return
	})
	if err == nil {
		log.Printf("Counted %v distinct %v-mers, %v in total.\n", len(counts), c.KmerSize, counts.Total())
	}
	return
}

func writeDot(g *debruijn.Graph, filename string) (err error) {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if nerr := f.Close(); err == nil {
			err = nerr
		}
	}()
	out := bufio.NewWriter(f)
	if err = g.WriteDot(out); err != nil {
		return err
	}
	return out.Flush()
}

func runAssemble(c config.Config, runID uuid.UUID) error {
	phase := int64(1)
	seqs, err := readSequences(c, phase)
	if err != nil {
		return err
	}

	phase++
	counts, err := countKmers(c, seqs, phase)
	if err != nil {
		return err
	}

	var g *debruijn.Graph
	phase++
	err = timedRun(c.Timed, c.Profile, "Building de Bruijn graph.", phase, func() (err error) {
		g, err = debruijn.BuildGraph(counts)
		return
	})
	if err != nil {
		return err
	}
	log.Printf("Built graph with %v nodes and %v edges.\n", g.NodeCount(), g.EdgeCount())

	rnd := internal.NewRand(c.Seed)
	phase++
	_ = timedRun(c.Timed, c.Profile, "Simplifying graph.", phase, func() error {
		bubbles, entryTips, exitTips := debruijn.Simplify(g, c.BubbleDepth, rnd)
		log.Printf("Resolved %v bubbles, %v entry tips and %v exit tips; %v nodes and %v edges left.\n",
			bubbles, entryTips, exitTips, g.NodeCount(), g.EdgeCount())
		return nil
	})

	if c.DotPath != "" {
		phase++
		if err = timedRun(c.Timed, c.Profile, "Writing graph.", phase, func() error {
			return writeDot(g, c.DotPath)
		}); err != nil {
			return err
		}
	}

	var contigs []debruijn.Contig
	phase++
	_ = timedRun(c.Timed, c.Profile, "Extracting contigs.", phase, func() error {
		contigs = debruijn.Contigs(g, debruijn.StartingNodes(g), debruijn.SinkNodes(g))
		return nil
	})
	log.Printf("Extracted %v contigs.\n", len(contigs))

	phase++
	err = timedRun(c.Timed, c.Profile, "Write to file.", phase, func() error {
		return fasta.WriteContigsFile(c.OutputPath, contigs, c.Width)
	})
	if err != nil {
		return err
	}
	output, err := internal.FullPathname(c.OutputPath)
	if err != nil {
		return err
	}
	log.Printf("Run %v wrote contigs to %v.\n", runID, output)
	return nil
}
