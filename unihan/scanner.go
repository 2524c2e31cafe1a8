// Copyright 2025 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package unihan

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/ianlewis/go-cedict/internal/source"
)

var recordRegex = regexp.MustCompile(`^(\S*)\s(\S*)\s(.*)$`)

// Record is a single property line.
type Record struct {
	// Line is the 1-based line number in the source.
	Line int

	// Code is the character code point, e.g. "U+4E2D".
	Code string

	// Field is the property name, e.g. "kMandarin".
	Field string

	// Value is the raw property value.
	Value string
}

// Scanner scans property records from start to end. Blank lines and comment
// lines are skipped.
type Scanner struct {
	s      *bufio.Scanner
	logger *zap.Logger
	rec    Record
	line   int
	misses int
}

// NewScanner returns a new Scanner reading from r. Lines that are not
// comments and do not have the CODE FIELD VALUE shape are reported to logger.
//
// Lines of source.MaxLineSize bytes or more are reported, counted as misses
// and skipped.
func NewScanner(r io.Reader, logger *zap.Logger) *Scanner {
	return newScanner(r, source.MaxLineSize, logger)
}

func newScanner(r io.Reader, maxLine int, logger *zap.Logger) *Scanner {
	if logger == nil {
		logger = zap.NewNop()
	}
	sc := &Scanner{logger: logger}
	sc.s = source.NewLineScanner(r, maxLine, func(line int) {
		sc.misses++
		logger.Warn("property line too long",
			zap.Int("line", line),
			zap.Int("max", maxLine),
		)
	})
	return sc
}

// Scan advances to the next record. It returns false when the scan stops
// either by reaching the end of the input or an error.
func (s *Scanner) Scan() bool {
	for s.s.Scan() {
		s.line++
		line := strings.TrimRight(s.s.Text(), "\r")
		if skippable(line) {
			continue
		}

		parts := recordRegex.FindStringSubmatch(line)
		if parts == nil {
			s.misses++
			s.logger.Warn("cannot parse property line",
				zap.Int("line", s.line),
				zap.String("text", line),
			)
			continue
		}

		s.rec = Record{
			Line:  s.line,
			Code:  parts[1],
			Field: parts[2],
			Value: parts[3],
		}
		return true
	}
	return false
}

// Record returns the most recent record read by Scan.
func (s *Scanner) Record() Record {
	return s.rec
}

// Misses returns the number of lines that could not be parsed so far.
func (s *Scanner) Misses() int {
	return s.misses
}

// Err returns the first error encountered.
func (s *Scanner) Err() error {
	if err := s.s.Err(); err != nil {
		return fmt.Errorf("reading properties: %w", err)
	}
	return nil
}

func skippable(line string) bool {
	return strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#")
}
