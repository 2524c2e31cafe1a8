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

package meta

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/ianlewis/go-cedict/internal/folding"
)

// Metadata is the CC-CEDICT header information. Fields that could not be
// found in the header are left empty and omitted from JSON output.
type Metadata struct {
	Name               string     `json:"name,omitempty"`
	Description        string     `json:"description,omitempty"`
	LicenseName        string     `json:"licenseName,omitempty"`
	LicenseURI         string     `json:"licenseURI,omitempty"`
	ReferencedWorks    []string   `json:"referencedWorks,omitempty"`
	DownloadURI        string     `json:"downloadURI,omitempty"`
	EditorURI          string     `json:"editorURI,omitempty"`
	ReferenceURI       string     `json:"referenceURI,omitempty"`
	OriginalVersion    string     `json:"originalVersion,omitempty"`
	OriginalSubversion string     `json:"originalSubversion,omitempty"`
	OriginalFormat     string     `json:"originalFormat,omitempty"`
	OriginalCharset    string     `json:"originalCharset,omitempty"`
	Publisher          string     `json:"publisher,omitempty"`
	Date               string     `json:"date,omitempty"`
	DateTime           *time.Time `json:"dateTime,omitempty"`
}

// field is a single header field extraction.
type field struct {
	// name is used in diagnostics.
	name string
	re   *regexp.Regexp
	set  func(m *Metadata, v string) error
}

func setString(f func(m *Metadata) *string) func(*Metadata, string) error {
	return func(m *Metadata, v string) error {
		*f(m) = v
		return nil
	}
}

var fields = []field{
	{
		name: "dictionary name",
		re:   regexp.MustCompile(`^#\s(.+)`),
		set:  setString(func(m *Metadata) *string { return &m.Name }),
	},
	{
		name: "description",
		re:   regexp.MustCompile(`^.+\n# (.+)`),
		set:  setString(func(m *Metadata) *string { return &m.Description }),
	},
	{
		name: "license name",
		re:   regexp.MustCompile(`# License:\n# (.+)`),
		set:  setString(func(m *Metadata) *string { return &m.LicenseName }),
	},
	{
		name: "license URI",
		re:   regexp.MustCompile(`#! license=(.+)`),
		set:  setString(func(m *Metadata) *string { return &m.LicenseURI }),
	},
	{
		name: "referenced works",
		re:   regexp.MustCompile(`# Referenced works:\n# (.+)`),
		set: func(m *Metadata, v string) error {
			m.ReferencedWorks = []string{v}
			return nil
		},
	},
	{
		name: "download URI",
		re:   regexp.MustCompile(`# CC-CEDICT can be downloaded from:\n# (.+)`),
		set:  setString(func(m *Metadata) *string { return &m.DownloadURI }),
	},
	{
		name: "editor URI",
		re:   regexp.MustCompile(`# Additions and corrections can be sent through:\n# (.+)`),
		set:  setString(func(m *Metadata) *string { return &m.EditorURI }),
	},
	{
		name: "reference URI",
		re:   regexp.MustCompile(`# For more information about CC-CEDICT see:\n# (.+)`),
		set:  setString(func(m *Metadata) *string { return &m.ReferenceURI }),
	},
	{
		name: "original version",
		re:   regexp.MustCompile(`#! version=(.+)`),
		set:  setString(func(m *Metadata) *string { return &m.OriginalVersion }),
	},
	{
		name: "original subversion",
		re:   regexp.MustCompile(`#! subversion=(.+)`),
		set:  setString(func(m *Metadata) *string { return &m.OriginalSubversion }),
	},
	{
		name: "original format",
		re:   regexp.MustCompile(`#! format=(.+)`),
		set:  setString(func(m *Metadata) *string { return &m.OriginalFormat }),
	},
	{
		name: "original charset",
		re:   regexp.MustCompile(`#! charset=(.+)`),
		set:  setString(func(m *Metadata) *string { return &m.OriginalCharset }),
	},
	{
		name: "publisher",
		re:   regexp.MustCompile(`#! publisher=(.+)`),
		set:  setString(func(m *Metadata) *string { return &m.Publisher }),
	},
	{
		name: "date",
		re:   regexp.MustCompile(`#! date=(\d{4}-\d{2}-\d{2})`),
		set:  setString(func(m *Metadata) *string { return &m.Date }),
	},
	{
		name: "time",
		re:   regexp.MustCompile(`#! time=(\d+)`),
		set: func(m *Metadata, v string) error {
			sec, err := strconv.ParseInt(v, 10, 64)
			if err != nil {
				return err
			}
			t := time.Unix(sec, 0).UTC()
			m.DateTime = &t
			return nil
		},
	},
}

// Parse parses a header block made of the source's comment lines, each
// terminated by a newline. Each field is extracted independently. Fields that
// cannot be found are reported to logger and left empty. A nil logger
// discards diagnostics.
func Parse(block string, logger *zap.Logger) *Metadata {
	if logger == nil {
		logger = zap.NewNop()
	}

	m := &Metadata{}
	for _, f := range fields {
		match := f.re.FindStringSubmatch(block)
		if match == nil {
			logger.Warn("cannot parse metadata field", zap.String("field", f.name))
			continue
		}
		if err := f.set(m, folding.Fold(match[1])); err != nil {
			logger.Warn("cannot parse metadata field",
				zap.String("field", f.name),
				zap.String("value", match[1]),
				zap.Error(err),
			)
		}
	}
	return m
}

// Collector accumulates comment lines into a header block.
type Collector struct {
	b strings.Builder
}

// Add appends a comment line to the block.
func (c *Collector) Add(line string) {
	c.b.WriteString(line)
	c.b.WriteByte('\n')
}

// Block returns the accumulated header block.
func (c *Collector) Block() string {
	return c.b.String()
}

// IsComment reports whether the line is a header comment line.
func IsComment(line string) bool {
	return strings.HasPrefix(line, "#")
}
