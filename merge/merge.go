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

// Package merge attaches Unihan character properties to dictionary entries.
package merge

import (
	"unicode/utf8"

	"github.com/ianlewis/go-cedict/dict"
	"github.com/ianlewis/go-cedict/unihan"
)

// Properties are the character property maps keyed by code point. Any of the
// maps may be nil.
type Properties struct {
	Readings       map[string]*unihan.Readings
	DictionaryLike map[string]*unihan.DictionaryLike
	Radicals       map[string]*unihan.Radical
}

// Merge returns copies of entries with character properties attached to every
// side whose headword is a single character. Neither entries nor props are
// modified. The result has the same length and order as entries.
func Merge(entries []*dict.Entry, props Properties) []*dict.Entry {
	merged := make([]*dict.Entry, 0, len(entries))
	for _, e := range entries {
		c := e.Clone()
		props.attach(c, c.Traditional, true)
		props.attach(c, c.Simplified, false)
		merged = append(merged, c)
	}
	return merged
}

func (p Properties) attach(e *dict.Entry, s *dict.Side, traditional bool) {
	if s == nil || s.Name != nil || utf8.RuneCountInString(s.Headword) != 1 {
		return
	}

	r, _ := utf8.DecodeRuneInString(s.Headword)
	code := unihan.CodePoint(r)

	if rd, ok := p.Readings[code]; ok && rd != nil {
		s.CodePoint = code
		if rd.Cantonese != "" {
			s.Cantonese = rd.Cantonese
		}
		if rd.Mandarin != "" {
			s.Mandarin = rd.Mandarin
		}
		if rd.Tang != "" {
			s.Tang = rd.Tang
		}
		if len(e.Definitions) == 0 && rd.Definition != "" {
			e.Definitions = append(e.Definitions, rd.Definition)
		}
	}

	if rad, ok := p.Radicals[code]; ok && rad != nil {
		s.CodePoint = code
		s.Radical = rad.Clone()
		if traditional {
			s.Radical.Simplified = nil
		}
	}

	if dl, ok := p.DictionaryLike[code]; ok && dl != nil {
		s.CodePoint = code
		if dl.Frequency != nil {
			f := *dl.Frequency
			s.Frequency = &f
		}
		if dl.TotalStrokes != nil {
			n := *dl.TotalStrokes
			s.TotalStrokes = &n
		}
	}
}
