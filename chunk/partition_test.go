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
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLimit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		target   int
		ratio    float64
		expected int
	}{
		{
			name:     "default",
			target:   10000000,
			ratio:    1.21,
			expected: 8264463,
		},
		{
			name:     "no adjustment",
			target:   100,
			ratio:    1,
			expected: 100,
		},
		{
			name:     "rounds half up",
			target:   5,
			ratio:    2,
			expected: 3,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			if got := Limit(test.target, test.ratio); got != test.expected {
				t.Fatalf("Limit; want: %d, got: %d", test.expected, got)
			}
		})
	}
}

func TestPartition(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		sizes    []int
		base     int
		limit    int
		expected []Span
	}{
		{
			name:     "empty",
			sizes:    nil,
			base:     10,
			limit:    100,
			expected: []Span{{Start: 0, End: 0}},
		},
		{
			name:     "single chunk",
			sizes:    []int{10, 10, 10},
			base:     10,
			limit:    100,
			expected: []Span{{Start: 0, End: 3}},
		},
		{
			name:  "cut when reaching limit",
			sizes: []int{30, 30, 30, 30},
			base:  10,
			limit: 70,
			// 10+30=40, 40+30=70 reaches the limit.
			expected: []Span{
				{Start: 0, End: 1},
				{Start: 1, End: 2},
				{Start: 2, End: 3},
				{Start: 3, End: 4},
			},
		},
		{
			name:  "cut below limit",
			sizes: []int{20, 20, 20, 20, 20},
			base:  10,
			limit: 60,
			expected: []Span{
				{Start: 0, End: 2},
				{Start: 2, End: 4},
				{Start: 4, End: 5},
			},
		},
		{
			name:  "oversize entry alone",
			sizes: []int{10, 500, 10},
			base:  10,
			limit: 100,
			expected: []Span{
				{Start: 0, End: 1},
				{Start: 1, End: 2},
				{Start: 2, End: 3},
			},
		},
		{
			name:  "oversize first entry",
			sizes: []int{500, 10},
			base:  10,
			limit: 100,
			expected: []Span{
				{Start: 0, End: 1},
				{Start: 1, End: 2},
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			got := Partition(test.sizes, test.base, test.limit)
			if diff := cmp.Diff(test.expected, got); diff != "" {
				t.Fatalf("Partition (-want, +got):\n%s", diff)
			}
		})
	}
}

// TestPartition_properties checks that spans cover every item once, in order,
// and respect the limit.
func TestPartition_properties(t *testing.T) {
	t.Parallel()

	var sizes []int
	for i := range 1000 {
		sizes = append(sizes, 1+(i*7919)%97)
	}
	const base, limit = 50, 400

	spans := Partition(sizes, base, limit)

	next := 0
	for _, s := range spans {
		if s.Start != next {
			t.Fatalf("span %v does not start at %d", s, next)
		}
		if s.Len() == 0 {
			t.Fatalf("empty span %v", s)
		}
		total := base
		for _, size := range sizes[s.Start:s.End] {
			total += size
		}
		if total >= limit && s.Len() > 1 {
			t.Errorf("span %v size %d exceeds limit %d", s, total, limit)
		}
		next = s.End
	}
	if next != len(sizes) {
		t.Fatalf("spans end at %d, want %d", next, len(sizes))
	}
}
