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

// Package output writes distribution JSON documents to disk.
package output

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strconv"

	"github.com/ianlewis/go-dictzip"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/ianlewis/go-cedict/chunk"
	"github.com/ianlewis/go-cedict/internal/source"
)

// ErrWrite is returned when an output file cannot be written.
var ErrWrite = errors.New("write failed")

const (
	jsonExt    = ".json"
	dictZipExt = ".dz"
)

// FileName returns the name of a chunk file, e.g. "cedict-v20240102-c001.json".
// The revision is omitted when it is 1 or less.
func FileName(name string, version, revision, chunkNumber int, dictZip bool) string {
	v := fmt.Sprintf("v%d", version)
	if revision > 1 {
		v += fmt.Sprintf("r%d", revision)
	}
	fn := fmt.Sprintf("%s-%s-c%03d%s", name, v, chunkNumber, jsonExt)
	if dictZip {
		fn += dictZipExt
	}
	return fn
}

var fileNameRegex = regexp.MustCompile(`^(.+)-v(\d+)(?:r(\d+))?-c(\d{3,})\.json(\.dz)?$`)

// Result describes a written or listed chunk file.
type Result struct {
	Path        string
	Version     int
	Revision    int
	ChunkNumber int
	Entries     int
	Size        int64
}

// Writer writes chunk documents to a directory.
type Writer struct {
	// Dir is the output directory. It is created if missing.
	Dir string

	// Name is the file name prefix.
	Name string

	// DictZip compresses files with dictzip.
	DictZip bool

	logger *zap.Logger
}

// NewWriter returns a new Writer. A nil logger discards diagnostics.
func NewWriter(dir, name string, dictZip bool, logger *zap.Logger) *Writer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Writer{
		Dir:     dir,
		Name:    name,
		DictZip: dictZip,
		logger:  logger,
	}
}

// WriteChunks writes every document to its own file. Writes are independent:
// a failed write is logged and the remaining documents are still written.
// The returned error combines every failure.
func (w *Writer) WriteChunks(docs []*chunk.Document) ([]Result, error) {
	if err := os.MkdirAll(w.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: creating %q: %w", ErrWrite, w.Dir, err)
	}

	var results []Result
	var errs error
	for _, d := range docs {
		m := d.Metadata
		path := filepath.Join(w.Dir, FileName(w.Name, m.Version, m.Revision, m.ChunkNumber, w.DictZip))
		size, err := WriteFile(path, d, w.DictZip)
		if err != nil {
			w.logger.Error("cannot write chunk",
				zap.String("path", path),
				zap.Int("chunk", m.ChunkNumber),
				zap.Error(err),
			)
			errs = multierr.Append(errs, err)
			continue
		}
		w.logger.Debug("wrote chunk",
			zap.String("path", path),
			zap.Int("chunk", m.ChunkNumber),
			zap.Int("entries", len(d.Entries)),
			zap.Int64("size", size),
		)
		results = append(results, Result{
			Path:        path,
			Version:     m.Version,
			Revision:    m.Revision,
			ChunkNumber: m.ChunkNumber,
			Entries:     len(d.Entries),
			Size:        size,
		})
	}
	return results, errs
}

// WriteFixture writes the fixture document to dir/name.json. Fixtures are
// never compressed.
func (w *Writer) WriteFixture(dir, name string, d *chunk.Document) (Result, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Result{}, fmt.Errorf("%w: creating %q: %w", ErrWrite, dir, err)
	}
	path := filepath.Join(dir, name+jsonExt)
	size, err := WriteFile(path, d, false)
	if err != nil {
		w.logger.Error("cannot write fixture", zap.String("path", path), zap.Error(err))
		return Result{}, err
	}
	return Result{
		Path:     path,
		Version:  d.Metadata.Version,
		Revision: d.Metadata.Revision,
		Entries:  len(d.Entries),
		Size:     size,
	}, nil
}

// WriteFile encodes v with [chunk.Marshal] and writes it to path. It returns
// the number of bytes written to the file.
func WriteFile(path string, v any, dictZip bool) (n int64, err error) {
	b, err := chunk.Marshal(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", ErrWrite, path, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrWrite, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			err = multierr.Append(err, fmt.Errorf("%w: %w", ErrWrite, cerr))
		}
	}()

	if dictZip {
		z, err := dictzip.NewWriter(f)
		if err != nil {
			return 0, fmt.Errorf("%w: %s: %w", ErrWrite, path, err)
		}
		if _, err := z.Write(b); err != nil {
			_ = z.Close()
			return 0, fmt.Errorf("%w: %s: %w", ErrWrite, path, err)
		}
		if err := z.Close(); err != nil {
			return 0, fmt.Errorf("%w: %s: %w", ErrWrite, path, err)
		}
	} else if _, err := f.Write(b); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrWrite, err)
	}

	info, err := os.Stat(path)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrWrite, err)
	}
	return info.Size(), nil
}

// header is the part of a document read when listing chunk files.
type header struct {
	Metadata chunk.Metadata    `json:"metadata"`
	Entries  []json.RawMessage `json:"entries"`
}

// List returns the chunk files in dir ordered by version, revision and
// chunk number. Files that do not follow the chunk file naming are ignored.
func List(dir string) ([]Result, error) {
	des, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", dir, err)
	}

	var results []Result
	for _, de := range des {
		if de.IsDir() {
			continue
		}
		match := fileNameRegex.FindStringSubmatch(de.Name())
		if match == nil {
			continue
		}
		r, err := readResult(filepath.Join(dir, de.Name()))
		if err != nil {
			return nil, err
		}
		// Fall back to the file name when the document lacks metadata.
		if r.Version == 0 {
			r.Version, _ = strconv.Atoi(match[2])
		}
		if r.ChunkNumber == 0 {
			r.ChunkNumber, _ = strconv.Atoi(match[4])
		}
		results = append(results, r)
	}

	slices.SortFunc(results, func(a, b Result) int {
		if a.Version != b.Version {
			return a.Version - b.Version
		}
		if a.Revision != b.Revision {
			return a.Revision - b.Revision
		}
		return a.ChunkNumber - b.ChunkNumber
	})
	return results, nil
}

func readResult(path string) (Result, error) {
	s, err := source.Open(path)
	if err != nil {
		return Result{}, err
	}
	defer s.Close()

	b, err := io.ReadAll(s)
	if err != nil {
		return Result{}, fmt.Errorf("reading %q: %w", path, err)
	}
	var h header
	if err := json.Unmarshal(b, &h); err != nil {
		return Result{}, fmt.Errorf("decoding %q: %w", path, err)
	}

	info, err := os.Stat(path)
	if err != nil {
		return Result{}, fmt.Errorf("reading %q: %w", path, err)
	}

	return Result{
		Path:        path,
		Version:     h.Metadata.Version,
		Revision:    h.Metadata.Revision,
		ChunkNumber: h.Metadata.ChunkNumber,
		Entries:     len(h.Entries),
		Size:        info.Size(),
	}, nil
}
