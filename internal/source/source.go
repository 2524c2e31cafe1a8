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

// Package source opens dictionary source files.
package source

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ianlewis/go-dictzip"
	"go.uber.org/multierr"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Source is an open source file.
type Source struct {
	io.Reader

	// closers are closed in reverse order.
	closers []io.Closer
}

// Close closes the source and the underlying file.
func (s *Source) Close() error {
	var err error
	for i := len(s.closers) - 1; i >= 0; i-- {
		err = multierr.Append(err, s.closers[i].Close())
	}
	s.closers = nil
	return err
}

// Open opens the file at path. Files with a .gz extension are decompressed
// with gzip and files with a .dz extension with dictzip. A leading UTF-8 byte
// order mark is removed.
func Open(path string) (*Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %q: %w", path, err)
	}
	s := &Source{closers: []io.Closer{f}}

	var r io.Reader = f
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		z, err := gzip.NewReader(f)
		if err != nil {
			_ = s.Close()
			return nil, fmt.Errorf("opening %q: gzip: %w", path, err)
		}
		s.closers = append(s.closers, z)
		r = z
	case ".dz":
		z, err := dictzip.NewReader(f)
		if err != nil {
			_ = s.Close()
			return nil, fmt.Errorf("opening %q: dictzip: %w", path, err)
		}
		s.closers = append(s.closers, z)
		r = z
	}

	s.Reader = StripBOM(r)
	return s, nil
}

// StripBOM returns a reader that removes a leading UTF-8 byte order mark
// from r.
func StripBOM(r io.Reader) io.Reader {
	return transform.NewReader(r, unicode.UTF8BOM.NewDecoder())
}
