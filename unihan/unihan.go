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
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

var (
	errEmptyValue   = errors.New("empty value")
	errInvalidValue = errors.New("invalid value")
)

// FieldSet maps property names to setters on the per-code record. Properties
// not in the set are ignored.
type FieldSet[T any] map[string]func(rec *T, value string) error

// Collect reads property records from r and groups them by code point.
//
// Records must be grouped contiguously by code. The record for a code is
// stored when a different code is seen and at the end of input, so a code
// that appears again after another code replaces its earlier record. If a
// field repeats within a group the last value wins.
func Collect[T any](r io.Reader, fields FieldSet[T], logger *zap.Logger) (map[string]*T, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	data := map[string]*T{}
	var code string
	var current *T

	s := NewScanner(r, logger)
	for s.Scan() {
		rec := s.Record()
		if current == nil || rec.Code != code {
			if current != nil {
				data[code] = current
			}
			code = rec.Code
			current = new(T)
		}

		set, ok := fields[rec.Field]
		if !ok {
			continue
		}
		if err := set(current, rec.Value); err != nil {
			logger.Warn("cannot parse property value",
				zap.Int("line", rec.Line),
				zap.String("code", rec.Code),
				zap.String("field", rec.Field),
				zap.String("value", rec.Value),
				zap.Error(err),
			)
		}
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	if current != nil {
		data[code] = current
	}

	return data, nil
}

// CodePoint returns the code point of r in the Unihan "U+XXXX" notation.
func CodePoint(r rune) string {
	return fmt.Sprintf("U+%04X", r)
}

// Readings are the reading properties of a character from Unihan_Readings.txt.
type Readings struct {
	Cantonese string
	Mandarin  string
	Tang      string

	// Definition is an English gloss. It is only used when a dictionary entry
	// has no definitions of its own.
	Definition string
}

var readingFields = FieldSet[Readings]{
	"kCantonese": func(r *Readings, v string) error {
		r.Cantonese = v
		return nil
	},
	"kMandarin": func(r *Readings, v string) error {
		r.Mandarin = v
		return nil
	},
	"kTang": func(r *Readings, v string) error {
		r.Tang = v
		return nil
	},
	"kDefinition": func(r *Readings, v string) error {
		r.Definition = v
		return nil
	},
}

// ParseReadings parses Unihan_Readings.txt data.
func ParseReadings(r io.Reader, logger *zap.Logger) (map[string]*Readings, error) {
	return Collect(r, readingFields, logger)
}

// DictionaryLike are the properties of a character from
// Unihan_DictionaryLikeData.txt.
type DictionaryLike struct {
	// Frequency is a rough frequency measurement from 1 (most frequent) to 5.
	Frequency *int

	// TotalStrokes is the total number of strokes in the character.
	TotalStrokes *int
}

var dictionaryLikeFields = FieldSet[DictionaryLike]{
	"kFrequency": func(d *DictionaryLike, v string) error {
		n, err := firstInt(v)
		if err != nil {
			return err
		}
		d.Frequency = &n
		return nil
	},
	"kTotalStrokes": func(d *DictionaryLike, v string) error {
		n, err := firstInt(v)
		if err != nil {
			return err
		}
		d.TotalStrokes = &n
		return nil
	},
}

// ParseDictionaryLike parses Unihan_DictionaryLikeData.txt data.
func ParseDictionaryLike(r io.Reader, logger *zap.Logger) (map[string]*DictionaryLike, error) {
	return Collect(r, dictionaryLikeFields, logger)
}

// Radical is a character's radical-stroke index.
type Radical struct {
	// Radical is the KangXi radical number.
	Radical int `json:"radical"`

	// ExtraStrokes is the number of strokes in addition to the radical.
	ExtraStrokes int `json:"extraStrokes"`

	// Simplified is set when the character is indexed under the simplified
	// form of the radical. It is nil when the flag is not recorded.
	Simplified *bool `json:"simplified,omitempty"`
}

// Clone returns a copy of the radical.
func (r *Radical) Clone() *Radical {
	if r == nil {
		return nil
	}
	c := *r
	if r.Simplified != nil {
		s := *r.Simplified
		c.Simplified = &s
	}
	return &c
}

var radicalStrokeRegex = regexp.MustCompile(`^(\d+)('*)\.(-?\d+)$`)

var radicalFields = FieldSet[Radical]{
	"kRSUnicode": func(r *Radical, v string) error {
		values := strings.Fields(v)
		if len(values) == 0 {
			return errEmptyValue
		}
		match := radicalStrokeRegex.FindStringSubmatch(values[0])
		if match == nil {
			return fmt.Errorf("%w: %q", errInvalidValue, values[0])
		}
		radical, err := strconv.Atoi(match[1])
		if err != nil {
			return fmt.Errorf("%w: %w", errInvalidValue, err)
		}
		strokes, err := strconv.Atoi(match[3])
		if err != nil {
			return fmt.Errorf("%w: %w", errInvalidValue, err)
		}
		simplified := match[2] != ""
		r.Radical = radical
		r.ExtraStrokes = strokes
		r.Simplified = &simplified
		return nil
	},
}

// ParseRadicals parses the kRSUnicode property from Unihan_IRGSources.txt
// data. Only the first radical-stroke value of each character is used.
func ParseRadicals(r io.Reader, logger *zap.Logger) (map[string]*Radical, error) {
	return Collect(r, radicalFields, logger)
}

// firstInt parses the first whitespace separated value of v as an integer.
func firstInt(v string) (int, error) {
	values := strings.Fields(v)
	if len(values) == 0 {
		return 0, errEmptyValue
	}
	n, err := strconv.Atoi(values[0])
	if err != nil {
		return 0, fmt.Errorf("%w: %w", errInvalidValue, err)
	}
	return n, nil
}
