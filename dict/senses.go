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
	"strings"
)

// classifierMarker starts a classifier inside a definitions blob.
const classifierMarker = "/CL:"

// Sense is one meaning of a headword: a group of definitions and the
// classifier string that follows them, if any.
type Sense struct {
	// Definitions is the '/' separated definitions text.
	Definitions string

	// Classifier is the ',' separated classifier text without the "CL:"
	// prefix.
	Classifier string

	// HasClassifier is true if the sense was terminated by a classifier.
	HasClassifier bool
}

// SplitSenses splits a definitions blob (the text between the first and last
// '/' of a CEDICT line) into senses. Each "/CL:" closes a sense and the
// classifier text runs up to the next '/' or to the end of the blob. Text
// after the last classifier forms a final sense without a classifier.
func SplitSenses(blob string) []Sense {
	var senses []Sense
	rest := blob
	for {
		i := strings.Index(rest, classifierMarker)
		if i < 0 {
			return append(senses, Sense{Definitions: rest})
		}

		s := Sense{
			Definitions:   rest[:i],
			HasClassifier: true,
		}
		rest = rest[i+len(classifierMarker):]

		j := strings.IndexByte(rest, '/')
		if j < 0 {
			s.Classifier = rest
			return append(senses, s)
		}
		s.Classifier = rest[:j]
		senses = append(senses, s)
		rest = rest[j+1:]
	}
}

// JoinSenses is the inverse of SplitSenses.
func JoinSenses(senses []Sense) string {
	var b strings.Builder
	for i, s := range senses {
		if i > 0 {
			b.WriteByte('/')
		}
		b.WriteString(s.Definitions)
		if s.HasClassifier {
			b.WriteString(classifierMarker)
			b.WriteString(s.Classifier)
		}
	}
	return b.String()
}

// Blob reconstructs the definitions blob of the source line that entries were
// parsed from. entries must be all the entries produced by one line, in
// order.
func Blob(entries []*Entry) string {
	senses := make([]Sense, 0, len(entries))
	for _, e := range entries {
		s := Sense{
			Definitions:   strings.Join(e.Definitions, "/"),
			HasClassifier: len(e.Classifiers) > 0,
		}
		cls := make([]string, 0, len(e.Classifiers))
		for _, c := range e.Classifiers {
			cls = append(cls, c.String())
		}
		s.Classifier = strings.Join(cls, ",")
		senses = append(senses, s)
	}
	return JoinSenses(senses)
}
