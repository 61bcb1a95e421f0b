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

// Package fastq reads the sequences of FASTQ files.
package fastq

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/cheggaaa/pb/v3"

	"github.com/exascience/debruijn/utils"
)

// ErrInput is returned for FASTQ input that cannot be read or parsed.
var ErrInput = errors.New("fastq: invalid input")

const maxLineLength = 64 * 1024 * 1024

const linesPerRecord = 4

// Read parses FASTQ records from r and returns the sequence line of
// each record, with surrounding white space removed. Blank lines
// between records are skipped. An incomplete record at the end of the
// input is dropped with a warning.
func Read(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)

	var (
		seqs   []string
		seq    string
		line   int
		record int
	)

	for scanner.Scan() {
		b := strings.TrimSpace(scanner.Text())
		switch line {
		case 0:
			if len(b) == 0 {
				continue
			}
			record++
			if b[0] != '@' {
				return nil, fmt.Errorf("%w: record %v does not start with '@'", ErrInput, record)
			}
		case 1:
			seq = b
		case 2:
			if len(b) == 0 || b[0] != '+' {
				return nil, fmt.Errorf("%w: record %v has no '+' separator line", ErrInput, record)
			}
		case 3:
			seqs = append(seqs, seq)
		}
		line = (line + 1) % linesPerRecord
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInput, err)
	}
	if line != 0 {
		log.Printf("Warning: ignoring incomplete FASTQ record %v with %v of %v lines.\n", record, line, linesPerRecord)
	}
	return seqs, nil
}

// ParseFile reads the sequences of a FASTQ file, which may be
// compressed with gzip or zstd. If progress is true, a progress bar
// for the bytes read from the file is shown on stderr.
func ParseFile(filename string, progress bool) (seqs []string, err error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInput, err)
	}
	defer func() {
		if nerr := f.Close(); err == nil && nerr != nil {
			err = fmt.Errorf("%w: %v", ErrInput, nerr)
		}
	}()

	var in io.Reader = f
	if progress {
		stat, err := f.Stat()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInput, err)
		}
		bar := pb.Full.Start64(stat.Size())
		bar.Set(pb.Bytes, true)
		defer bar.Finish()
		in = bar.NewProxyReader(f)
	}

	r, closeReader, err := utils.HandleCompressed(bufio.NewReader(in))
	if err != nil {
		return nil, fmt.Errorf("%w: %v: %v", ErrInput, filename, err)
	}
	defer func() {
		if nerr := closeReader(); err == nil && nerr != nil {
			err = fmt.Errorf("%w: %v: %v", ErrInput, filename, nerr)
		}
	}()

	if seqs, err = Read(r); err != nil {
		return nil, fmt.Errorf("%v: %w", filename, err)
	}
	return seqs, nil
}
