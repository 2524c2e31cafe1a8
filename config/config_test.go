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

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeYAML(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cedict.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// Tests in this file use t.Setenv and cannot run in parallel.

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "./src/cedict/cedict_ts.u8", cfg.Sources.CEDICT)
	assert.Equal(t, "./src/unihan/Unihan_Readings.txt", cfg.Sources.Readings)
	assert.Equal(t, "./src/unihan/Unihan_DictionaryLikeData.txt", cfg.Sources.DictionaryLike)
	assert.Equal(t, "./src/unihan/Unihan_IRGSources.txt", cfg.Sources.IRGSources)
	assert.Equal(t, "./dist", cfg.Output.Dir)
	assert.Equal(t, "cedict", cfg.Output.Name)
	assert.False(t, cfg.Output.DictZip)
	assert.Equal(t, 10000000, cfg.Chunk.TargetSize)
	assert.InDelta(t, 1.21, cfg.Chunk.AdjustmentRatio, 1e-9)
	assert.Equal(t, 1, cfg.Chunk.Revision)
	assert.Equal(t, "./test", cfg.Fixture.Dir)
	assert.Equal(t, "zho-cedict", cfg.Fixture.Name)
	assert.Equal(t, []int{2, 35909, 55562, 72267, 73893, 83686, 108832, 108835}, cfg.Fixture.Indexes)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("CEDICT_SOURCE", "/data/cedict_ts.u8.gz")
	t.Setenv("CEDICT_CHUNK_TARGET_SIZE", "5000000")
	t.Setenv("CEDICT_REVISION", "3")
	t.Setenv("CEDICT_OUTPUT_DICTZIP", "true")
	t.Setenv("CEDICT_FIXTURE_INDEXES", "1,2,3")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "/data/cedict_ts.u8.gz", cfg.Sources.CEDICT)
	assert.Equal(t, 5000000, cfg.Chunk.TargetSize)
	assert.Equal(t, 3, cfg.Chunk.Revision)
	assert.True(t, cfg.Output.DictZip)
	assert.Equal(t, []int{1, 2, 3}, cfg.Fixture.Indexes)
}

func TestLoad_YAML(t *testing.T) {
	path := writeYAML(t, `
sources:
  cedict: "/data/cedict_ts.u8"
output:
  dir: "/out"
  name: "zho"
chunk:
  target_size: 2000000
  revision: 2
fixture:
  indexes: [5, 6]
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/data/cedict_ts.u8", cfg.Sources.CEDICT)
	assert.Equal(t, "/out", cfg.Output.Dir)
	assert.Equal(t, "zho", cfg.Output.Name)
	assert.Equal(t, 2000000, cfg.Chunk.TargetSize)
	assert.Equal(t, 2, cfg.Chunk.Revision)
	assert.Equal(t, []int{5, 6}, cfg.Fixture.Indexes)

	// Unset values fall back to defaults.
	assert.Equal(t, "./src/unihan/Unihan_Readings.txt", cfg.Sources.Readings)
	assert.InDelta(t, 1.21, cfg.Chunk.AdjustmentRatio, 1e-9)
}

func TestLoad_EnvOverridesYAML(t *testing.T) {
	path := writeYAML(t, `
output:
  dir: "/out"
`)
	t.Setenv("CEDICT_OUTPUT_DIR", "/env-out")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/env-out", cfg.Output.Dir)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("CEDICT_CHUNK_ADJUSTMENT_RATIO", "0")

	_, err := Load("")
	require.ErrorIs(t, err, ErrInvalid)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Sources: Sources{CEDICT: "cedict_ts.u8"},
			Output:  Output{Dir: "dist", Name: "cedict"},
			Chunk:   Chunk{TargetSize: 100, AdjustmentRatio: 1, Revision: 1},
		}
	}

	tests := []struct {
		name   string
		modify func(c *Config)
		ok     bool
	}{
		{name: "valid", modify: func(*Config) {}, ok: true},
		{name: "no source", modify: func(c *Config) { c.Sources.CEDICT = "" }},
		{name: "no output dir", modify: func(c *Config) { c.Output.Dir = "" }},
		{name: "no output name", modify: func(c *Config) { c.Output.Name = "" }},
		{name: "zero target", modify: func(c *Config) { c.Chunk.TargetSize = 0 }},
		{name: "negative ratio", modify: func(c *Config) { c.Chunk.AdjustmentRatio = -1 }},
		{name: "zero revision", modify: func(c *Config) { c.Chunk.Revision = 0 }},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			c := valid()
			test.modify(c)
			err := c.Validate()
			if test.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalid)
			}
		})
	}
}
