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

package cedict

import (
	"errors"
	"fmt"
	"io"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/ianlewis/go-cedict/chunk"
	"github.com/ianlewis/go-cedict/config"
	"github.com/ianlewis/go-cedict/dict"
	"github.com/ianlewis/go-cedict/internal/output"
	"github.com/ianlewis/go-cedict/internal/source"
	"github.com/ianlewis/go-cedict/merge"
	"github.com/ianlewis/go-cedict/unihan"
)

// ErrNoSource is returned when no CEDICT source path is configured.
var ErrNoSource = errors.New("no CEDICT source")

// ReadDictionary opens and parses the CEDICT source at path.
func ReadDictionary(path string, logger *zap.Logger) (*dict.Dictionary, error) {
	if path == "" {
		return nil, ErrNoSource
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	s, err := source.Open(path)
	if err != nil {
		return nil, err
	}
	defer s.Close()

	d, err := dict.Read(s, logger.With(zap.String("source", path)))
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}
	return d, nil
}

// ReadProperties reads the Unihan property sources. A source that cannot be
// read is logged and contributes no properties.
func ReadProperties(sources config.Sources, logger *zap.Logger) merge.Properties {
	if logger == nil {
		logger = zap.NewNop()
	}
	return merge.Properties{
		Readings:       readProperties(sources.Readings, unihan.ParseReadings, logger),
		DictionaryLike: readProperties(sources.DictionaryLike, unihan.ParseDictionaryLike, logger),
		Radicals:       readProperties(sources.IRGSources, unihan.ParseRadicals, logger),
	}
}

func readProperties[T any](
	path string,
	parse func(io.Reader, *zap.Logger) (map[string]*T, error),
	logger *zap.Logger,
) map[string]*T {
	if path == "" {
		return map[string]*T{}
	}
	logger = logger.With(zap.String("source", path))

	s, err := source.Open(path)
	if err != nil {
		logger.Warn("cannot open property source", zap.Error(err))
		return map[string]*T{}
	}
	defer s.Close()

	props, err := parse(s, logger)
	if err != nil {
		logger.Warn("cannot read property source", zap.Error(err))
		return map[string]*T{}
	}
	logger.Debug("read property source", zap.Int("codes", len(props)))
	return props
}

// Result summarizes a build.
type Result struct {
	// Entries is the number of dictionary entries written.
	Entries int

	// Chunks are the chunk files written.
	Chunks []output.Result

	// Fixture is the fixture file. It is nil if no fixture was written.
	Fixture *output.Result
}

// Build reads the sources, merges character properties into the dictionary
// entries and writes the chunked distribution.
//
// Output files are written independently. If some of them cannot be written
// Build returns the files that were written along with an error combining
// every failure.
func Build(cfg *config.Config, logger *zap.Logger) (*Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	d, err := ReadDictionary(cfg.Sources.CEDICT, logger)
	if err != nil {
		return nil, err
	}
	props := ReadProperties(cfg.Sources, logger)
	entries := merge.Merge(d.Entries, props)

	m := chunk.NewMetadata(d.Metadata, cfg.Chunk.Revision)
	docs, err := chunk.Split(m, d.Metadata, entries, cfg.Chunk.TargetSize, cfg.Chunk.AdjustmentRatio)
	if err != nil {
		return nil, fmt.Errorf("splitting entries: %w", err)
	}

	w := output.NewWriter(cfg.Output.Dir, cfg.Output.Name, cfg.Output.DictZip, logger)
	r := &Result{Entries: len(entries)}

	var errs error
	r.Chunks, err = w.WriteChunks(docs)
	errs = multierr.Append(errs, err)

	if !cfg.Fixture.Disabled {
		fixture := chunk.Fixture(m, d.Metadata, entries, cfg.Fixture.Indexes)
		fr, err := w.WriteFixture(cfg.Fixture.Dir, cfg.Fixture.Name, fixture)
		if err == nil {
			r.Fixture = &fr
		}
		errs = multierr.Append(errs, err)
	}

	logger.Info("CEDICT data files have been generated",
		zap.Int("entries", r.Entries),
		zap.Int("chunks", len(r.Chunks)),
		zap.Int("version", m.Version),
		zap.Int("revision", m.Revision),
	)
	return r, errs
}
