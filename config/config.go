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

// Package config holds the settings of a distribution build.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// ErrInvalid is returned when a loaded configuration is not usable.
var ErrInvalid = errors.New("invalid config")

// Sources are the paths of the source files. Paths ending in .gz or .dz are
// decompressed.
type Sources struct {
	CEDICT         string `yaml:"cedict"          env:"CEDICT_SOURCE"               env-default:"./src/cedict/cedict_ts.u8"`
	Readings       string `yaml:"readings"        env:"CEDICT_UNIHAN_READINGS"      env-default:"./src/unihan/Unihan_Readings.txt"`
	DictionaryLike string `yaml:"dictionary_like" env:"CEDICT_UNIHAN_DICTIONARY_LIKE" env-default:"./src/unihan/Unihan_DictionaryLikeData.txt"`
	IRGSources     string `yaml:"irg_sources"     env:"CEDICT_UNIHAN_IRG_SOURCES"   env-default:"./src/unihan/Unihan_IRGSources.txt"`
}

// Output controls where and how chunk files are written.
type Output struct {
	Dir     string `yaml:"dir"      env:"CEDICT_OUTPUT_DIR"     env-default:"./dist"`
	Name    string `yaml:"name"     env:"CEDICT_OUTPUT_NAME"    env-default:"cedict"`
	DictZip bool   `yaml:"dictzip"  env:"CEDICT_OUTPUT_DICTZIP"`
}

// Chunk controls chunk sizes and distribution metadata.
type Chunk struct {
	// TargetSize is the nominal maximum size of a chunk file in bytes.
	TargetSize int `yaml:"target_size" env:"CEDICT_CHUNK_TARGET_SIZE" env-default:"10000000"`

	// AdjustmentRatio divides TargetSize to get the limit used when packing
	// entries.
	AdjustmentRatio float64 `yaml:"adjustment_ratio" env:"CEDICT_CHUNK_ADJUSTMENT_RATIO" env-default:"1.21"`

	// Revision identifies several builds of one source version.
	Revision int `yaml:"revision" env:"CEDICT_REVISION" env-default:"1"`
}

// Fixture controls the test fixture file.
type Fixture struct {
	Dir     string `yaml:"dir"     env:"CEDICT_FIXTURE_DIR"     env-default:"./test"`
	Name    string `yaml:"name"    env:"CEDICT_FIXTURE_NAME"    env-default:"zho-cedict"`
	Indexes []int  `yaml:"indexes" env:"CEDICT_FIXTURE_INDEXES" env-default:"2,35909,55562,72267,73893,83686,108832,108835"`

	// Disabled skips writing the fixture.
	Disabled bool `yaml:"disabled" env:"CEDICT_FIXTURE_DISABLED"`
}

// Config is the build configuration.
type Config struct {
	Sources Sources `yaml:"sources"`
	Output  Output  `yaml:"output"`
	Chunk   Chunk   `yaml:"chunk"`
	Fixture Fixture `yaml:"fixture"`
}

// Load reads the configuration. Values are taken from the environment, then
// from the YAML file at path if path is not empty, then from defaults.
func Load(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config: file %s: %w", path, err)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports whether the configuration can be used for a build.
func (c *Config) Validate() error {
	switch {
	case c.Sources.CEDICT == "":
		return fmt.Errorf("%w: empty CEDICT source path", ErrInvalid)
	case c.Output.Dir == "":
		return fmt.Errorf("%w: empty output directory", ErrInvalid)
	case c.Output.Name == "":
		return fmt.Errorf("%w: empty output name", ErrInvalid)
	case c.Chunk.TargetSize <= 0:
		return fmt.Errorf("%w: chunk target size %d", ErrInvalid, c.Chunk.TargetSize)
	case c.Chunk.AdjustmentRatio <= 0:
		return fmt.Errorf("%w: chunk adjustment ratio %v", ErrInvalid, c.Chunk.AdjustmentRatio)
	case c.Chunk.Revision < 1:
		return fmt.Errorf("%w: revision %d", ErrInvalid, c.Chunk.Revision)
	}
	return nil
}
