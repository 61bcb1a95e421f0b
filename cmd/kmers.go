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
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/exascience/debruijn/config"
	"github.com/exascience/debruijn/kmers"
)

func newKmersCmd(v *viper.Viper) *cobra.Command {
	kmersCmd := &cobra.Command{
		Use:   "kmers -i reads.fastq",
		Short: "Write the k-mer counts of a FASTQ file as a tab-separated table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := config.NewConfig(v)
			if err != nil {
				return err
			}
			runID := startRun(c)
			sanityChecksFailed := false
			if !checkRegular("--fastq", c.FastqPath) {
				sanityChecksFailed = true
			}
			if !checkCreate("--output", c.OutputPath) {
				sanityChecksFailed = true
			}
			if c.Profile != "" && !checkCreate("--profile", c.Profile) {
				sanityChecksFailed = true
			}
			if sanityChecksFailed {
				return errSanityChecks
			}
			cmd.SilenceUsage = true
			return runKmers(c, runID)
		},
	}
	kmersCmd.Flags().StringP("output", "o", "./kmers.tsv", "tab-separated file for the k-mer counts")
	return kmersCmd
}

func writeTable(counts kmers.Counts, filename string) (err error) {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if nerr := f.Close(); err == nil {
			err = nerr
		}
	}()
	return counts.WriteTable(f)
}

func runKmers(c config.Config, runID uuid.UUID) error {
	seqs, err := readSequences(c, 1)
	if err != nil {
		return err
	}
	counts, err := countKmers(c, seqs, 2)
	if err != nil {
		return err
	}
	err = timedRun(c.Timed, c.Profile, "Write to file.", 3, func() error {
		return writeTable(counts, c.OutputPath)
	})
	if err == nil {
		log.Printf("Run %v wrote k-mer counts to %v.\n", runID, c.OutputPath)
	}
	return err
}
