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
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/ianlewis/go-cedict/dict"
	"github.com/ianlewis/go-cedict/meta"
)

func testEntries(n int) []*dict.Entry {
	var entries []*dict.Entry
	for i := 1; i <= n; i++ {
		entries = append(entries, &dict.Entry{
			Index:       i,
			Traditional: &dict.Side{Headword: "字"},
			Simplified:  &dict.Side{Headword: "字"},
			Pinyin:      dict.Pinyin{Text: "zi4"},
			Definitions: []string{fmt.Sprintf("definition %d%s", i, strings.Repeat("x", i%13))},
		})
	}
	return entries
}

func testCedictMeta() *meta.Metadata {
	t := time.Date(2024, time.January, 2, 3, 4, 5, 0, time.UTC)
	return &meta.Metadata{
		Name:     "CC-CEDICT",
		DateTime: &t,
	}
}

func TestNewMetadata(t *testing.T) {
	t.Parallel()

	ts := time.Date(2024, time.January, 2, 23, 59, 0, 0, time.UTC)

	tests := []struct {
		name     string
		meta     *meta.Metadata
		revision int
		expected Metadata
	}{
		{
			name:     "date time",
			meta:     &meta.Metadata{DateTime: &ts, Date: "2020-01-01"},
			revision: 1,
			expected: Metadata{Version: 20240102, Revision: 1, Frequency: FrequencyLegend},
		},
		{
			name:     "date",
			meta:     &meta.Metadata{Date: "2023-12-31"},
			revision: 2,
			expected: Metadata{Version: 20231231, Revision: 2, Frequency: FrequencyLegend},
		},
		{
			name:     "no date",
			meta:     &meta.Metadata{},
			revision: 1,
			expected: Metadata{Revision: 1, Frequency: FrequencyLegend},
		},
		{
			name:     "nil",
			revision: 1,
			expected: Metadata{Revision: 1, Frequency: FrequencyLegend},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			got := NewMetadata(test.meta, test.revision)
			if diff := cmp.Diff(test.expected, got); diff != "" {
				t.Fatalf("NewMetadata (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestSplit(t *testing.T) {
	t.Parallel()

	cm := testCedictMeta()
	m := NewMetadata(cm, 1)
	entries := testEntries(200)

	const target = 4000
	const ratio = 1.21
	limit := Limit(target, ratio)

	docs, err := Split(m, cm, entries, target, ratio)
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	if len(docs) < 2 {
		t.Fatalf("Split; want several documents, got %d", len(docs))
	}

	var all []*dict.Entry
	for i, d := range docs {
		if want, got := i+1, d.Metadata.ChunkNumber; want != got {
			t.Errorf("ChunkNumber; want: %d, got: %d", want, got)
		}
		if d.CedictMeta != cm {
			t.Errorf("document %d: CedictMeta not shared", i+1)
		}

		b, err := Marshal(d)
		if err != nil {
			t.Fatalf("Marshal: %v", err)
		}
		if len(b) >= limit && len(d.Entries) > 1 {
			t.Errorf("document %d: size %d exceeds limit %d", i+1, len(b), limit)
		}

		all = append(all, d.Entries...)
	}

	if diff := cmp.Diff(entries, all); diff != "" {
		t.Fatalf("concatenated entries (-want, +got):\n%s", diff)
	}

	// Documents own their metadata.
	docs[0].Metadata.Frequency[0].Name = "changed"
	if got := docs[1].Metadata.Frequency[0].Name; got != FrequencyLegend[0].Name {
		t.Errorf("Frequency shared between documents: %q", got)
	}
	if got := m.ChunkNumber; got != 0 {
		t.Errorf("input ChunkNumber modified: %d", got)
	}
}

func TestSplit_documentSize(t *testing.T) {
	t.Parallel()

	// Entries with classifiers and many definitions span many lines, so
	// their indentation inside a document adds up.
	var entries []*dict.Entry
	for i := 1; i <= 2000; i++ {
		entries = append(entries, &dict.Entry{
			Index:       i,
			Traditional: &dict.Side{Headword: fmt.Sprintf("中%d", i)},
			Simplified:  &dict.Side{Headword: fmt.Sprintf("中%d", i)},
			Pinyin:      dict.Pinyin{Text: "zhong1 guo2"},
			Definitions: []string{"a", "b", "c", "d", "e"},
			Classifiers: []dict.Classifier{
				{Traditional: "個", Simplified: "个", Pinyin: "ge4"},
				{Traditional: "隻", Simplified: "只", Pinyin: "zhi1"},
			},
		})
	}

	cm := testCedictMeta()
	m := NewMetadata(cm, 1)

	const target = 20000
	const ratio = 1.21
	limit := Limit(target, ratio)

	docs, err := Split(m, cm, entries, target, ratio)
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	if len(docs) < 2 {
		t.Fatalf("Split; want several documents, got %d", len(docs))
	}

	// Chunk numbers are measured at their widest.
	widest := len(strconv.Itoa(len(entries)))

	for i, d := range docs {
		b, err := Marshal(d)
		if err != nil {
			t.Fatalf("Marshal: %v", err)
		}
		if len(b) >= limit {
			t.Errorf("document %d: size %d exceeds limit %d", i+1, len(b), limit)
		}

		if i == len(docs)-1 {
			continue
		}

		// The next entry would not have fit.
		grown := *d
		grown.Entries = append(slices.Clone(d.Entries), docs[i+1].Entries[0])
		gb, err := Marshal(&grown)
		if err != nil {
			t.Fatalf("Marshal: %v", err)
		}
		slack := widest - len(strconv.Itoa(d.Metadata.ChunkNumber))
		if len(gb)+slack < limit {
			t.Errorf("document %d: size %d with the next entry is below limit %d", i+1, len(gb), limit)
		}
	}
}

func TestSplit_empty(t *testing.T) {
	t.Parallel()

	cm := testCedictMeta()
	docs, err := Split(NewMetadata(cm, 1), cm, nil, 1000, 1)
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	if want, got := 1, len(docs); want != got {
		t.Fatalf("len; want: %d, got: %d", want, got)
	}
	if want, got := 1, docs[0].Metadata.ChunkNumber; want != got {
		t.Errorf("ChunkNumber; want: %d, got: %d", want, got)
	}

	b, err := Marshal(docs[0])
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if !strings.Contains(string(b), `"entries": []`) {
		t.Errorf("empty entries not encoded as a list:\n%s", b)
	}
}

func TestSplit_invalidLimit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		target int
		ratio  float64
	}{
		{name: "zero target", target: 0, ratio: 1},
		{name: "zero ratio", target: 100, ratio: 0},
		{name: "negative ratio", target: 100, ratio: -1},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			_, err := Split(Metadata{}, nil, testEntries(1), test.target, test.ratio)
			if !errors.Is(err, ErrInvalidLimit) {
				t.Fatalf("Split; want: %v, got: %v", ErrInvalidLimit, err)
			}
		})
	}
}

func TestFixture(t *testing.T) {
	t.Parallel()

	cm := testCedictMeta()
	m := NewMetadata(cm, 1)
	m.ChunkNumber = 3
	entries := testEntries(10)

	doc := Fixture(m, cm, entries, []int{9, 2, 42, 5})

	var got []int
	for _, e := range doc.Entries {
		got = append(got, e.Index)
	}
	if diff := cmp.Diff([]int{2, 5, 9}, got); diff != "" {
		t.Fatalf("indexes (-want, +got):\n%s", diff)
	}
	if got := doc.Metadata.ChunkNumber; got != 0 {
		t.Errorf("ChunkNumber; want: 0, got: %d", got)
	}
	if doc.CedictMeta != cm {
		t.Errorf("CedictMeta not set")
	}
}

func TestMarshal(t *testing.T) {
	t.Parallel()

	b, err := Marshal(map[string]string{"a": "<b> & c"})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	expected := "{\n  \"a\": \"<b> & c\"\n}"
	if diff := cmp.Diff(expected, string(b)); diff != "" {
		t.Fatalf("Marshal (-want, +got):\n%s", diff)
	}
}
