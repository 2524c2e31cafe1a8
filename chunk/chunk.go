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

package chunk

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/ianlewis/go-cedict/dict"
	"github.com/ianlewis/go-cedict/meta"
)

// ErrInvalidLimit is returned when the chunk size target or ratio is not
// positive.
var ErrInvalidLimit = errors.New("invalid chunk size limit")

// FrequencyLevel describes one value of the character frequency property.
type FrequencyLevel struct {
	Value int    `json:"value"`
	Name  string `json:"name"`
	Order int    `json:"order"`
}

// FrequencyLegend lists the frequency values used in character properties.
var FrequencyLegend = []FrequencyLevel{
	{Value: 1, Name: "least frequent", Order: 5},
	{Value: 2, Name: "less frequent", Order: 4},
	{Value: 3, Name: "moderatelyfrequent", Order: 3},
	{Value: 4, Name: "more frequent", Order: 2},
	{Value: 5, Name: "most frequent", Order: 1},
}

// Metadata is the distribution metadata written at the top of every chunk.
type Metadata struct {
	// Version is the date of the source dictionary as a YYYYMMDD number.
	Version int `json:"version"`

	// Revision distinguishes several builds of the same source version.
	Revision int `json:"revision"`

	Frequency []FrequencyLevel `json:"frequency"`

	// ChunkNumber is the 1-based number of the chunk. It is zero, and
	// omitted, outside of a chunk.
	ChunkNumber int `json:"chunkNumber,omitempty"`
}

// NewMetadata returns the distribution metadata for a source dictionary. The
// version is derived from the source timestamp, or from its date if there is
// no timestamp.
func NewMetadata(cedictMeta *meta.Metadata, revision int) Metadata {
	m := Metadata{
		Revision:  revision,
		Frequency: slices.Clone(FrequencyLegend),
	}
	if cedictMeta == nil {
		return m
	}

	switch {
	case cedictMeta.DateTime != nil:
		m.Version = dateVersion(cedictMeta.DateTime.UTC())
	case cedictMeta.Date != "":
		if t, err := time.Parse(time.DateOnly, cedictMeta.Date); err == nil {
			m.Version = dateVersion(t)
		}
	}
	return m
}

func dateVersion(t time.Time) int {
	return t.Year()*10000 + int(t.Month())*100 + t.Day()
}

func (m Metadata) clone() Metadata {
	m.Frequency = slices.Clone(m.Frequency)
	return m
}

// Document is a single output JSON document.
type Document struct {
	Metadata   Metadata       `json:"metadata"`
	CedictMeta *meta.Metadata `json:"cedictMeta"`
	Entries    []*dict.Entry  `json:"entries"`
}

// Marshal encodes v the way documents are written: indented by two spaces and
// without HTML escaping.
func Marshal(v any) ([]byte, error) {
	return marshalIndent(v, "")
}

// marshalIndent is Marshal with every line after the first starting with
// prefix.
func marshalIndent(v any, prefix string) ([]byte, error) {
	var b bytes.Buffer
	enc := json.NewEncoder(&b)
	enc.SetEscapeHTML(false)
	enc.SetIndent(prefix, "  ")
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("encoding JSON: %w", err)
	}
	return bytes.TrimSuffix(b.Bytes(), []byte("\n")), nil
}

// Split divides entries into documents whose encoded size, as written by
// Marshal, stays below Limit(target, ratio). A document reaches the limit only
// when it holds a single entry that does on its own. At least one document is
// returned.
//
// Each document gets its own copy of m with ChunkNumber set. cedictMeta is
// shared by all documents.
func Split(m Metadata, cedictMeta *meta.Metadata, entries []*dict.Entry, target int, ratio float64) ([]*Document, error) {
	if target <= 0 || ratio <= 0 {
		return nil, fmt.Errorf("%w: target %d, ratio %v", ErrInvalidLimit, target, ratio)
	}
	limit := Limit(target, ratio)
	if limit <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLimit, limit)
	}

	// There are never more chunks than entries.
	base, err := documentSize(m, cedictMeta, max(len(entries), 1))
	if err != nil {
		return nil, err
	}

	sizes := make([]int, 0, len(entries))
	for _, e := range entries {
		size, err := entrySize(e)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", e.Index, err)
		}
		sizes = append(sizes, size)
	}

	spans := Partition(sizes, base, limit)
	docs := make([]*Document, 0, len(spans))
	for i, s := range spans {
		dm := m.clone()
		dm.ChunkNumber = i + 1
		docs = append(docs, &Document{
			Metadata:   dm,
			CedictMeta: cedictMeta,
			Entries:    append([]*dict.Entry{}, entries[s.Start:s.End]...),
		})
	}
	return docs, nil
}

// entryIndent is the indentation of an entry inside the entries list.
const entryIndent = "    "

// entrySize returns the number of bytes e adds to a document: the entry
// indented to its depth in the entries list, its leading indentation and the
// ",\n" that follows it.
func entrySize(e *dict.Entry) (int, error) {
	b, err := marshalIndent(e, entryIndent)
	if err != nil {
		return 0, err
	}
	return len(entryIndent) + len(b) + len(",\n"), nil
}

// documentSize returns the size of a document without entries, plus what a
// non-empty entries list adds besides the entries themselves. chunkNumber
// should be the largest chunk number that can occur.
//
// An empty list is written as "[]". A non-empty one is "[\n", the entries,
// and "  ]", where the last entry ends with "\n" rather than ",\n". That is 2
// bytes more than "[]" once entrySize is counted for every entry.
func documentSize(m Metadata, cedictMeta *meta.Metadata, chunkNumber int) (int, error) {
	m.ChunkNumber = chunkNumber
	b, err := Marshal(&Document{
		Metadata:   m,
		CedictMeta: cedictMeta,
		Entries:    []*dict.Entry{},
	})
	if err != nil {
		return 0, fmt.Errorf("metadata: %w", err)
	}
	return len(b) + 2, nil
}

// Fixture returns a document holding only the entries whose index is listed
// in indexes, in dictionary order. The metadata carries no chunk number.
func Fixture(m Metadata, cedictMeta *meta.Metadata, entries []*dict.Entry, indexes []int) *Document {
	keep := make(map[int]struct{}, len(indexes))
	for _, i := range indexes {
		keep[i] = struct{}{}
	}

	selected := []*dict.Entry{}
	for _, e := range entries {
		if _, ok := keep[e.Index]; ok {
			selected = append(selected, e)
		}
	}

	fm := m.clone()
	fm.ChunkNumber = 0
	return &Document{
		Metadata:   fm,
		CedictMeta: cedictMeta,
		Entries:    selected,
	}
}
