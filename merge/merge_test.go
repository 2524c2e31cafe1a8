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

package merge

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ianlewis/go-cedict/dict"
	"github.com/ianlewis/go-cedict/unihan"
)

func intp(n int) *int {
	return &n
}

func boolp(b bool) *bool {
	return &b
}

func TestMerge(t *testing.T) {
	t.Parallel()

	props := Properties{
		Readings: map[string]*unihan.Readings{
			"U+4E2D": {Cantonese: "zung1", Mandarin: "zhōng", Definition: "central; center, middle"},
			"U+5B57": {Mandarin: "zì", Definition: "letter, character, word"},
		},
		DictionaryLike: map[string]*unihan.DictionaryLike{
			"U+4E2D": {Frequency: intp(5), TotalStrokes: intp(4)},
		},
		Radicals: map[string]*unihan.Radical{
			"U+4E2D": {Radical: 2, ExtraStrokes: 3, Simplified: boolp(false)},
			"U+4E2A": {Radical: 2, ExtraStrokes: 2, Simplified: boolp(true)},
		},
	}

	tests := []struct {
		name     string
		entry    *dict.Entry
		expected *dict.Entry
	}{
		{
			name: "single character traditional",
			entry: &dict.Entry{
				Index:       1,
				Traditional: &dict.Side{Headword: "中"},
				Simplified:  &dict.Side{Headword: "中国"},
				Pinyin:      dict.Pinyin{Text: "zhong1"},
				Definitions: []string{"middle"},
			},
			expected: &dict.Entry{
				Index: 1,
				Traditional: &dict.Side{
					Headword: "中",
					Props: dict.Props{
						Cantonese:    "zung1",
						Mandarin:     "zhōng",
						CodePoint:    "U+4E2D",
						Radical:      &unihan.Radical{Radical: 2, ExtraStrokes: 3},
						Frequency:    intp(5),
						TotalStrokes: intp(4),
					},
				},
				Simplified:  &dict.Side{Headword: "中国"},
				Pinyin:      dict.Pinyin{Text: "zhong1"},
				Definitions: []string{"middle"},
			},
		},
		{
			name: "simplified radical keeps flag",
			entry: &dict.Entry{
				Index:       2,
				Traditional: &dict.Side{Headword: "個"},
				Simplified:  &dict.Side{Headword: "个"},
				Pinyin:      dict.Pinyin{Text: "ge4"},
				Definitions: []string{"individual"},
			},
			expected: &dict.Entry{
				Index:       2,
				Traditional: &dict.Side{Headword: "個"},
				Simplified: &dict.Side{
					Headword: "个",
					Props: dict.Props{
						CodePoint: "U+4E2A",
						Radical:   &unihan.Radical{Radical: 2, ExtraStrokes: 2, Simplified: boolp(true)},
					},
				},
				Pinyin:      dict.Pinyin{Text: "ge4"},
				Definitions: []string{"individual"},
			},
		},
		{
			name: "definition of last resort",
			entry: &dict.Entry{
				Index:       3,
				Traditional: &dict.Side{Headword: "字"},
				Simplified:  &dict.Side{Headword: "字"},
				Pinyin:      dict.Pinyin{Text: "zi4"},
			},
			expected: &dict.Entry{
				Index:       3,
				Traditional: &dict.Side{Headword: "字", Props: dict.Props{Mandarin: "zì", CodePoint: "U+5B57"}},
				Simplified:  &dict.Side{Headword: "字", Props: dict.Props{Mandarin: "zì", CodePoint: "U+5B57"}},
				Pinyin:      dict.Pinyin{Text: "zi4"},
				Definitions: []string{"letter, character, word"},
			},
		},
		{
			name: "multiple characters untouched",
			entry: &dict.Entry{
				Index:       4,
				Traditional: &dict.Side{Headword: "中國"},
				Simplified:  &dict.Side{Headword: "中国"},
				Pinyin:      dict.Pinyin{Text: "Zhong1 guo2"},
				Definitions: []string{"China"},
			},
			expected: &dict.Entry{
				Index:       4,
				Traditional: &dict.Side{Headword: "中國"},
				Simplified:  &dict.Side{Headword: "中国"},
				Pinyin:      dict.Pinyin{Text: "Zhong1 guo2"},
				Definitions: []string{"China"},
			},
		},
		{
			name: "compound name untouched",
			entry: &dict.Entry{
				Index:       5,
				Type:        dict.CompoundName,
				Traditional: &dict.Side{Name: &dict.NameParts{FirstName: "中", LastName: "中"}},
				Simplified:  &dict.Side{Name: &dict.NameParts{FirstName: "中", LastName: "中"}},
				Pinyin:      dict.Pinyin{Parts: &dict.NameParts{FirstName: "zhong1", LastName: "zhong1"}},
			},
			expected: &dict.Entry{
				Index:       5,
				Type:        dict.CompoundName,
				Traditional: &dict.Side{Name: &dict.NameParts{FirstName: "中", LastName: "中"}},
				Simplified:  &dict.Side{Name: &dict.NameParts{FirstName: "中", LastName: "中"}},
				Pinyin:      dict.Pinyin{Parts: &dict.NameParts{FirstName: "zhong1", LastName: "zhong1"}},
			},
		},
		{
			name: "no properties",
			entry: &dict.Entry{
				Index:       6,
				Traditional: &dict.Side{Headword: "狗"},
				Simplified:  &dict.Side{Headword: "狗"},
				Pinyin:      dict.Pinyin{Text: "gou3"},
				Definitions: []string{"dog"},
			},
			expected: &dict.Entry{
				Index:       6,
				Traditional: &dict.Side{Headword: "狗"},
				Simplified:  &dict.Side{Headword: "狗"},
				Pinyin:      dict.Pinyin{Text: "gou3"},
				Definitions: []string{"dog"},
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			before := test.entry.Clone()
			got := Merge([]*dict.Entry{test.entry}, props)
			if diff := cmp.Diff([]*dict.Entry{test.expected}, got); diff != "" {
				t.Fatalf("Merge (-want, +got):\n%s", diff)
			}
			if diff := cmp.Diff(before, test.entry); diff != "" {
				t.Fatalf("Merge modified its input (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestMerge_propertiesUnchanged(t *testing.T) {
	t.Parallel()

	props := Properties{
		DictionaryLike: map[string]*unihan.DictionaryLike{
			"U+4E2D": {Frequency: intp(5), TotalStrokes: intp(4)},
		},
		Radicals: map[string]*unihan.Radical{
			"U+4E2D": {Radical: 2, ExtraStrokes: 3, Simplified: boolp(false)},
		},
	}

	entries := []*dict.Entry{
		{
			Index:       1,
			Traditional: &dict.Side{Headword: "中"},
			Simplified:  &dict.Side{Headword: "中"},
		},
	}

	merged := Merge(entries, props)
	*merged[0].Traditional.Frequency = 1
	*merged[0].Simplified.Radical.Simplified = true

	if got := *props.DictionaryLike["U+4E2D"].Frequency; got != 5 {
		t.Errorf("Frequency; want: 5, got: %d", got)
	}
	if got := *props.Radicals["U+4E2D"].Simplified; got {
		t.Errorf("Radical.Simplified; want: false, got: %v", got)
	}
	if merged[0].Traditional.Radical.Simplified != nil {
		t.Errorf("traditional Radical.Simplified; want: nil, got: %v", *merged[0].Traditional.Radical.Simplified)
	}
}

func TestMerge_order(t *testing.T) {
	t.Parallel()

	var entries []*dict.Entry
	for i := 1; i <= 10; i++ {
		entries = append(entries, &dict.Entry{
			Index:       i,
			Traditional: &dict.Side{Headword: "中"},
			Simplified:  &dict.Side{Headword: "中"},
		})
	}

	merged := Merge(entries, Properties{})
	if want, got := len(entries), len(merged); want != got {
		t.Fatalf("len; want: %d, got: %d", want, got)
	}
	for i, e := range merged {
		if want, got := i+1, e.Index; want != got {
			t.Errorf("Index; want: %d, got: %d", want, got)
		}
		if e == entries[i] {
			t.Errorf("entry %d was not copied", e.Index)
		}
	}
}
