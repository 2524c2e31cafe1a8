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

package testutil

import (
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"

	"github.com/ianlewis/go-dictzip"
)

// Compression is the compression applied to a temporary source file.
type Compression int

const (
	// None writes the data as is.
	None Compression = iota

	// Gzip compresses the data with gzip.
	Gzip

	// DictZip compresses the data with dictzip.
	DictZip
)

// Ext returns the file extension added for the compression.
func (c Compression) Ext() string {
	switch c {
	case Gzip:
		return ".gz"
	case DictZip:
		return ".dz"
	default:
		return ""
	}
}

// MakeSourceOptions are options for MakeTempSource.
type MakeSourceOptions struct {
	// Compression is the compression of the file. Its extension is appended
	// to the file name.
	Compression Compression

	// BOM prepends a UTF-8 byte order mark to the data.
	BOM bool
}

// MakeTempSource writes data to name in dir and returns the path of the
// written file. If dir is empty a new temporary directory is used.
func MakeTempSource(t *testing.T, dir, name, data string, opts *MakeSourceOptions) string {
	t.Helper()
	if opts == nil {
		opts = &MakeSourceOptions{}
	}
	if dir == "" {
		dir = t.TempDir()
	}

	path := filepath.Join(dir, name+opts.Compression.Ext())
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	b := []byte(data)
	if opts.BOM {
		b = append([]byte("\ufeff"), b...)
	}

	switch opts.Compression {
	case Gzip:
		z := gzip.NewWriter(f)
		if _, err := z.Write(b); err != nil {
			t.Fatal(err)
		}
		if err := z.Close(); err != nil {
			t.Fatal(err)
		}
	case DictZip:
		z, err := dictzip.NewWriter(f)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := z.Write(b); err != nil {
			t.Fatal(err)
		}
		if err := z.Close(); err != nil {
			t.Fatal(err)
		}
	default:
		if _, err := f.Write(b); err != nil {
			t.Fatal(err)
		}
	}

	return path
}
