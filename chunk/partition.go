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
	"math"
)

// Span is a half-open range [Start, End) of entry positions.
type Span struct {
	Start int
	End   int
}

// Len returns the number of entries in the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// Limit returns the effective chunk size limit for a nominal target size.
// A ratio above 1 leaves headroom below the target.
func Limit(target int, ratio float64) int {
	return int(math.Round(float64(target) / ratio))
}

// Partition greedily groups consecutive sizes into spans. Every span starts
// with a running total of base. A span is closed before the item whose size
// would bring the total to limit or above, unless the span is still empty,
// so an item larger than limit gets a span of its own.
//
// The last span is always returned. It is empty only when sizes is empty.
func Partition(sizes []int, base, limit int) []Span {
	var spans []Span
	start, total := 0, base
	for i, size := range sizes {
		if i > start && total+size >= limit {
			spans = append(spans, Span{Start: start, End: i})
			start = i
			total = base
		}
		total += size
	}
	return append(spans, Span{Start: start, End: len(sizes)})
}
