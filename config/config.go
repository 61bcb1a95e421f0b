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

// Package config holds the run settings of an assembly, unmarshalled
// from Viper (see: /cmd).
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables that override
// settings, as in DEBRUIJN_KMER_SIZE.
const EnvPrefix = "DEBRUIJN"

// ErrInvalidConfig is returned for settings that cannot be used.
var ErrInvalidConfig = errors.New("config: invalid setting")

// Config is the set of settings of one run.
type Config struct {
	// the FASTQ file with the reads to assemble
	FastqPath string `mapstructure:"fastq"`

	// the length of the k-mers cut from the reads
	KmerSize int `mapstructure:"kmer-size"`

	// the FASTA file the contigs are written to
	OutputPath string `mapstructure:"output"`

	// the seed of the tie-breaking random generator
	Seed int64 `mapstructure:"seed"`

	// the number of bases per FASTA sequence line
	Width int `mapstructure:"width"`

	// an optional Graphviz file for the simplified graph
	DotPath string `mapstructure:"dot"`

	// the maximum number of edges from the branching node to the end
	// of a bubble, 0 for no limit
	BubbleDepth int `mapstructure:"bubble-depth"`

	// caps GOMAXPROCS, 0 keeps the default
	NrOfThreads int `mapstructure:"nr-of-threads"`

	// reject k-mer sizes that exceed the shortest read
	StrictKmerSize bool `mapstructure:"strict-kmer-size"`

	// show a progress bar while reading
	Progress bool `mapstructure:"progress"`

	// log the elapsed time of each phase
	Timed bool `mapstructure:"timed"`

	// prefix for per-phase CPU profiles
	Profile string `mapstructure:"profile"`

	// directory for log files
	LogPath string `mapstructure:"log-path"`
}

// NewConfig returns a new Config populated by the settings of v,
// from a config file, the environment, and/or command line flags.
func NewConfig(v *viper.Viper) (Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("unable to decode into struct: %w", err)
	}
	return c, c.Validate()
}

// Validate checks the settings that do not depend on the input.
func (c Config) Validate() error {
	if c.FastqPath == "" {
		return fmt.Errorf("%w: missing FASTQ input", ErrInvalidConfig)
	}
	if c.KmerSize <= 0 {
		return fmt.Errorf("%w: k-mer size %v must be positive", ErrInvalidConfig, c.KmerSize)
	}
	if c.Width <= 0 {
		return fmt.Errorf("%w: line width %v must be positive", ErrInvalidConfig, c.Width)
	}
	if c.NrOfThreads < 0 {
		return fmt.Errorf("%w: number of threads %v must not be negative", ErrInvalidConfig, c.NrOfThreads)
	}
	return nil
}
