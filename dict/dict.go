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

package dict

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"go.uber.org/zap"

	"github.com/ianlewis/go-cedict/internal/index"
	"github.com/ianlewis/go-cedict/internal/source"
	"github.com/ianlewis/go-cedict/meta"
)

// Dictionary is a fully parsed CC-CEDICT source.
type Dictionary struct {
	Metadata *meta.Metadata
	Entries  []*Entry

	// index is built on the first search.
	index *index.Index[*headwordKey]
}

// Read parses a whole CC-CEDICT source. Lines that cannot be parsed, and
// lines of source.MaxLineSize bytes or more, are reported to logger and
// skipped. An error is returned only if reading from r fails.
func Read(r io.Reader, logger *zap.Logger) (*Dictionary, error) {
	return readLines(r, source.MaxLineSize, logger)
}

func readLines(r io.Reader, maxLine int, logger *zap.Logger) (*Dictionary, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	p := NewParser(logger)
	s := source.NewLineScanner(r, maxLine, func(line int) {
		logger.Warn("line too long",
			zap.Int("line", line),
			zap.Int("max", maxLine),
		)
	})

	var entries []*Entry
	for s.Scan() {
		entries = append(entries, p.ParseLine(s.Text())...)
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("reading line %d: %w", p.Lines()+1, err)
	}

	logger.Debug("parsed dictionary",
		zap.Int("lines", p.Lines()),
		zap.Int("entries", p.Count()),
	)

	return &Dictionary{
		Metadata: meta.Parse(p.Header(), logger),
		Entries:  entries,
	}, nil
}

// headwordKey is an index entry keyed by one of an entry's headwords.
type headwordKey struct {
	key   string
	entry *Entry
}

func (k *headwordKey) String() string {
	return k.key
}

// Search returns the entries whose traditional or simplified headword equals
// query, ordered by index. Search is not safe for concurrent use.
func (d *Dictionary) Search(query string) []*Entry {
	if d.index == nil {
		keys := make([]*headwordKey, 0, len(d.Entries)*2)
		for _, e := range d.Entries {
			trad := e.Traditional.String()
			keys = append(keys, &headwordKey{key: trad, entry: e})
			if simp := e.Simplified.String(); simp != trad {
				keys = append(keys, &headwordKey{key: simp, entry: e})
			}
		}
		d.index = index.NewIndex(keys, strings.Compare)
	}

	var entries []*Entry
	for _, k := range d.index.Search(query) {
		entries = append(entries, k.entry)
	}
	slices.SortFunc(entries, func(a, b *Entry) int {
		return a.Index - b.Index
	})
	return entries
}
