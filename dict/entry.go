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
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ianlewis/go-cedict/unihan"
)

// Type is the shape of an entry's headword.
type Type int

const (
	// Plain is a regular dictionary entry.
	Plain Type = iota

	// CompoundName is a name made of a first and last name, e.g. a western
	// name written with a middle dot.
	CompoundName

	// Proverb is a phrase containing a full-width comma.
	Proverb
)

// String returns the name of the type as written in JSON output.
func (t Type) String() string {
	switch t {
	case CompoundName:
		return "compound name"
	case Proverb:
		return "proverb"
	default:
		return "not specified"
	}
}

// MarshalJSON implements [json.Marshaler].
func (t Type) MarshalJSON() ([]byte, error) {
	//nolint:wrapcheck // error should not be wrapped
	return json.Marshal(t.String())
}

// marshal encodes v without escaping HTML characters, which occur in
// definitions.
func marshal(v any) ([]byte, error) {
	var b bytes.Buffer
	enc := json.NewEncoder(&b)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(b.Bytes(), []byte("\n")), nil
}

// NameParts is a compound name split at the middle dot.
type NameParts struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// String returns the name joined with a middle dot.
func (n NameParts) String() string {
	return n.FirstName + nameSeparator + n.LastName
}

// Props are character properties attached to a single character headword.
type Props struct {
	Cantonese    string          `json:"cantonese,omitempty"`
	Mandarin     string          `json:"mandarin,omitempty"`
	Tang         string          `json:"tang,omitempty"`
	CodePoint    string          `json:"codePoint,omitempty"`
	Radical      *unihan.Radical `json:"radical,omitempty"`
	Frequency    *int            `json:"frequency,omitempty"`
	TotalStrokes *int            `json:"totalStrokes,omitempty"`
}

// Side is the traditional or simplified form of an entry. Exactly one of
// Headword or Name is used: Name is set for compound names and Headword
// otherwise.
type Side struct {
	Headword string
	Name     *NameParts

	Props
}

// String returns the headword text of the side.
func (s *Side) String() string {
	if s.Name != nil {
		return s.Name.String()
	}
	return s.Headword
}

// MarshalJSON implements [json.Marshaler].
func (s *Side) MarshalJSON() ([]byte, error) {
	if s.Name != nil {
		//nolint:wrapcheck // error should not be wrapped
		return marshal(&struct {
			FirstName string `json:"firstName"`
			LastName  string `json:"lastName"`
			Props
		}{
			FirstName: s.Name.FirstName,
			LastName:  s.Name.LastName,
			Props:     s.Props,
		})
	}

	//nolint:wrapcheck // error should not be wrapped
	return marshal(&struct {
		Headword string `json:"headword"`
		Props
	}{
		Headword: s.Headword,
		Props:    s.Props,
	})
}

func (s *Side) clone() *Side {
	if s == nil {
		return nil
	}
	c := *s
	if s.Name != nil {
		n := *s.Name
		c.Name = &n
	}
	c.Radical = s.Radical.Clone()
	if s.Frequency != nil {
		f := *s.Frequency
		c.Frequency = &f
	}
	if s.TotalStrokes != nil {
		n := *s.TotalStrokes
		c.TotalStrokes = &n
	}
	return &c
}

// Pinyin is the reading of an entry. Parts is set for compound names and
// Text otherwise.
type Pinyin struct {
	Text  string
	Parts *NameParts
}

// String returns the reading text.
func (p Pinyin) String() string {
	if p.Parts != nil {
		return p.Parts.FirstName + " " + nameSeparator + " " + p.Parts.LastName
	}
	return p.Text
}

// Classifier is a measure word associated with an entry.
type Classifier struct {
	Traditional string `json:"traditional"`
	Simplified  string `json:"simplified"`
	Pinyin      string `json:"pinyin"`
}

// String returns the classifier in CEDICT notation, e.g. "隻|只[zhi1]".
func (c Classifier) String() string {
	if c.Traditional == c.Simplified {
		return fmt.Sprintf("%s[%s]", c.Traditional, c.Pinyin)
	}
	return fmt.Sprintf("%s|%s[%s]", c.Traditional, c.Simplified, c.Pinyin)
}

// Entry is a single dictionary entry. A source line that lists several senses
// with their own classifiers produces one entry per sense.
type Entry struct {
	// Index is the 1-based position of the entry in the dictionary.
	Index int

	Type        Type
	Traditional *Side
	Simplified  *Side
	Pinyin      Pinyin
	Definitions []string
	Classifiers []Classifier
}

// MarshalJSON implements [json.Marshaler].
func (e *Entry) MarshalJSON() ([]byte, error) {
	var pinyin string
	if e.Pinyin.Parts == nil {
		pinyin = e.Pinyin.Text
	}

	//nolint:wrapcheck // error should not be wrapped
	return marshal(&struct {
		Index       int          `json:"index"`
		Type        Type         `json:"type"`
		Traditional *Side        `json:"traditional"`
		Simplified  *Side        `json:"simplified"`
		Pinyin      string       `json:"pinyin"`
		PinyinParts *NameParts   `json:"pinyinParts,omitempty"`
		Definitions []string     `json:"definitions"`
		Classifier  []Classifier `json:"classifier,omitempty"`
	}{
		Index:       e.Index,
		Type:        e.Type,
		Traditional: e.Traditional,
		Simplified:  e.Simplified,
		Pinyin:      pinyin,
		PinyinParts: e.Pinyin.Parts,
		Definitions: e.Definitions,
		Classifier:  e.Classifiers,
	})
}

// Clone returns a deep copy of the entry.
func (e *Entry) Clone() *Entry {
	c := *e
	c.Traditional = e.Traditional.clone()
	c.Simplified = e.Simplified.clone()
	if e.Pinyin.Parts != nil {
		p := *e.Pinyin.Parts
		c.Pinyin.Parts = &p
	}
	if e.Definitions != nil {
		c.Definitions = append([]string(nil), e.Definitions...)
	}
	if e.Classifiers != nil {
		c.Classifiers = append([]Classifier(nil), e.Classifiers...)
	}
	return &c
}

// String returns a human readable representation of the entry.
func (e *Entry) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s [%s]\n", e.Traditional, e.Simplified, e.Pinyin)
	for _, d := range e.Definitions {
		fmt.Fprintf(&b, "  %s\n", d)
	}
	if len(e.Classifiers) > 0 {
		cls := make([]string, 0, len(e.Classifiers))
		for _, c := range e.Classifiers {
			cls = append(cls, c.String())
		}
		fmt.Fprintf(&b, "  CL: %s\n", strings.Join(cls, ", "))
	}
	return b.String()
}
