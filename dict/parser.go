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
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/ianlewis/go-cedict/meta"
)

const nameSeparator = "·"

var (
	// lineRegex matches "TRAD SIMP [PINYIN] /DEF1/DEF2/".
	lineRegex = regexp.MustCompile(`^(\S+) (\S+) \[([^\]]+)\] /(.+)/$`)

	nameRegex       = regexp.MustCompile(`(\S+)·(\S+)`)
	pinyinNameRegex = regexp.MustCompile(`(.+)\s·\s(.+)`)
	proverbRegex    = regexp.MustCompile(`.+，.+`)
	classifierRegex = regexp.MustCompile(`(.+)\[(.+)\]`)
)

// Parser parses CC-CEDICT lines into entries. A Parser keeps the line and
// entry counters for a single source and must not be shared between sources.
type Parser struct {
	logger *zap.Logger
	header meta.Collector

	// line is the number of lines seen so far.
	line int

	// next is the index of the next emitted entry.
	next int
}

// NewParser returns a new Parser. A nil logger discards diagnostics.
func NewParser(logger *zap.Logger) *Parser {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Parser{
		logger: logger,
		next:   1,
	}
}

// Header returns the header block collected from comment lines so far.
func (p *Parser) Header() string {
	return p.header.Block()
}

// Lines returns the number of lines parsed so far.
func (p *Parser) Lines() int {
	return p.line
}

// Count returns the number of entries emitted so far.
func (p *Parser) Count() int {
	return p.next - 1
}

// ParseLine parses a single source line. Comment lines are added to the
// header and produce no entries. A data line produces one entry per sense.
// Lines that cannot be parsed are reported and produce no entries.
func (p *Parser) ParseLine(line string) []*Entry {
	p.line++

	if meta.IsComment(line) {
		p.header.Add(line)
		return nil
	}

	line = strings.TrimRight(line, "\r\n ")
	if line == "" {
		return nil
	}

	parts := lineRegex.FindStringSubmatch(line)
	if parts == nil {
		p.logger.Warn("cannot parse line",
			zap.Int("line", p.line),
			zap.String("text", line),
		)
		return nil
	}

	template := p.classify(line, parts[1], parts[2], parts[3])

	var entries []*Entry
	for _, s := range SplitSenses(parts[4]) {
		e := template.Clone()
		e.Index = p.next
		e.Definitions = strings.Split(s.Definitions, "/")
		if s.HasClassifier {
			e.Classifiers = p.parseClassifiers(s.Classifier)
		}
		entries = append(entries, e)
		p.next++
	}
	return entries
}

// classify determines the type of the entry from its headwords and builds an
// entry template without definitions.
func (p *Parser) classify(line, trad, simp, pinyin string) *Entry {
	switch {
	case strings.Contains(trad, nameSeparator):
		if e := p.parseCompoundName(line, trad, simp, pinyin); e != nil {
			return e
		}
		return &Entry{
			Type:        Plain,
			Traditional: &Side{Headword: trad},
			Simplified:  &Side{Headword: simp},
			Pinyin:      Pinyin{Text: pinyin},
		}
	case proverbRegex.MatchString(trad):
		return &Entry{
			Type:        Proverb,
			Traditional: &Side{Headword: trad},
			Simplified:  &Side{Headword: simp},
			Pinyin:      Pinyin{Text: pinyin},
		}
	default:
		return &Entry{
			Type:        Plain,
			Traditional: &Side{Headword: trad},
			Simplified:  &Side{Headword: simp},
			Pinyin:      Pinyin{Text: pinyin},
		}
	}
}

// parseCompoundName builds a compound name entry. Every malformed part is
// reported, and nil is returned if any part is malformed so that the entry
// never mixes name parts with plain headwords.
func (p *Parser) parseCompoundName(line, trad, simp, pinyin string) *Entry {
	tradName := p.parseName(line, "traditional", trad)
	simpName := p.parseName(line, "simplified", simp)
	pinyinName := p.parseName(line, "pinyin", pinyin)
	if tradName == nil || simpName == nil || pinyinName == nil {
		return nil
	}
	return &Entry{
		Type:        CompoundName,
		Traditional: &Side{Name: tradName},
		Simplified:  &Side{Name: simpName},
		Pinyin:      Pinyin{Parts: pinyinName},
	}
}

// parseName parses a "first·last" headword or a "first · last" reading. A
// malformed name is reported and nil is returned.
func (p *Parser) parseName(line, part, text string) *NameParts {
	re := nameRegex
	if part == "pinyin" {
		re = pinyinNameRegex
	}
	m := re.FindStringSubmatch(text)
	if m == nil {
		p.logger.Warn("cannot parse compound name",
			zap.Int("line", p.line),
			zap.String("part", part),
			zap.String("text", line),
		)
		return nil
	}
	return &NameParts{
		FirstName: m[1],
		LastName:  m[2],
	}
}

// parseClassifiers parses a ',' separated list of classifiers such as
// "個|个[ge4],隻|只[zhi1]". Malformed classifiers are reported and dropped.
func (p *Parser) parseClassifiers(s string) []Classifier {
	var classifiers []Classifier
	for _, token := range strings.Split(s, ",") {
		m := classifierRegex.FindStringSubmatch(token)
		if m == nil {
			p.logger.Warn("cannot parse classifier",
				zap.Int("line", p.line),
				zap.String("classifier", token),
			)
			continue
		}

		heads := strings.Split(m[1], "|")
		c := Classifier{
			Traditional: heads[0],
			Simplified:  heads[0],
			Pinyin:      m[2],
		}
		if len(heads) == 2 {
			c.Simplified = heads[1]
		}
		classifiers = append(classifiers, c)
	}
	return classifiers
}
