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

// Package cmd is for command line interactions with the debruijn
// application.
package cmd

import (
	"errors"
	"log"
	"os"
	"runtime"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/exascience/debruijn/config"
	"github.com/exascience/debruijn/fasta"
	"github.com/exascience/debruijn/utils"
)

var errSanityChecks = errors.New("invalid command line parameters")

// newRootCmd builds the command tree. All settings end up in v, from
// flags, a config file, or DEBRUIJN_ environment variables.
func newRootCmd(v *viper.Viper) *cobra.Command {
	var configFile string

	rootCmd := &cobra.Command{
		Use:   utils.ProgramName + " -i reads.fastq",
		Short: "Assemble short sequencing reads into contigs with a de Bruijn graph",
		Long: `Assemble short sequencing reads into contigs with a de Bruijn graph

The reads of a FASTQ file (plain, gzip or zstd) are cut into k-mers, which
form the edges of a de Bruijn graph over (k-1)-mers. The graph is simplified
by resolving bubbles, then entry tips, then exit tips, always keeping the
best supported path. The sequences of all simple paths from a starting node
to a sink node are written as contigs in FASTA format.`,
		Version: utils.ProgramVersion,
		Args:    cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if configFile != "" {
				v.SetConfigFile(configFile)
				if err := v.ReadInConfig(); err != nil {
					return err
				}
			}
			return v.BindPFlags(cmd.Flags())
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := config.NewConfig(v)
			if err != nil {
				return err
			}
			runID := startRun(c)
			if !checkAssembleOptions(c) {
				return errSanityChecks
			}
			cmd.SilenceUsage = true
			return runAssemble(c, runID)
		},
	}

	v.SetEnvPrefix(config.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	v.SetDefault("width", fasta.DefaultWidth)

	persistent := rootCmd.PersistentFlags()
	persistent.StringVar(&configFile, "config", "", "read settings from the specified file")
	persistent.StringP("fastq", "i", "", "FASTQ file with the reads (plain, gzip or zstd)")
	persistent.IntP("kmer-size", "k", 21, "length of the k-mers")
	persistent.Bool("strict-kmer-size", false, "reject k-mer sizes larger than the shortest read")
	persistent.Bool("progress", false, "show a progress bar while reading the FASTQ file")
	persistent.Int("nr-of-threads", 0, "number of worker threads")
	persistent.Bool("timed", false, "measure the runtime")
	persistent.String("profile", "", "write a runtime profile to the specified file(s)")
	persistent.String("log-path", "", "write log files to the specified directory")

	flags := rootCmd.Flags()
	flags.StringP("output", "o", "./contigs.fasta", "FASTA file for the contigs")
	flags.Int64("seed", 9001, "seed of the random generator used to break ties")
	flags.Int("width", fasta.DefaultWidth, "number of bases per FASTA line")
	flags.String("dot", "", "write the simplified graph in Graphviz format to the specified file")
	flags.Int("bubble-depth", 0, "maximum number of edges from the branching node to the end of a bubble, 0 for no limit")

	rootCmd.AddCommand(newKmersCmd(v))
	return rootCmd
}

// startRun applies the settings shared by all commands and logs the
// start of the run.
func startRun(c config.Config) uuid.UUID {
	runID := uuid.New()
	if c.LogPath != "" {
		setLogOutput(c.LogPath, runID)
	}
	log.Println("Run id:", runID)
	log.Println("Command line:", os.Args)
	if c.NrOfThreads > 0 {
		runtime.GOMAXPROCS(c.NrOfThreads)
	}
	return runID
}

// Execute runs the command selected by the command line arguments.
// This is called by main.main().
func Execute() {
	if err := newRootCmd(viper.New()).Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}
