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

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-cedict"
	"github.com/ianlewis/go-cedict/config"
	"github.com/ianlewis/go-cedict/internal/output"
)

// sourceFlags returns the flags that set source paths.
func sourceFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "cedict",
			Usage: "read the CC-CEDICT dictionary from `FILE`",
		},
		&cli.StringFlag{
			Name:  "readings",
			Usage: "read Unihan readings from `FILE`",
		},
		&cli.StringFlag{
			Name:  "dictionary-like",
			Usage: "read Unihan dictionary-like data from `FILE`",
		},
		&cli.StringFlag{
			Name:  "irg-sources",
			Usage: "read Unihan IRG sources from `FILE`",
		},
		&cli.StringSliceFlag{
			Name:    "data-dir",
			Usage:   "look for missing source files in `DIR`",
			Aliases: []string{"d"},
			Value:   cli.NewStringSlice(dataDirs()...),
		},
	}
}

func buildCommand() *cli.Command {
	return &cli.Command{
		Name:      "build",
		Usage:     "build the chunked JSON distribution",
		UsageText: "build [OPTIONS]",
		Flags: append(sourceFlags(),
			&cli.StringFlag{
				Name:    "out-dir",
				Usage:   "write chunk files to `DIR`",
				Aliases: []string{"o"},
			},
			&cli.StringFlag{
				Name:  "name",
				Usage: "prefix chunk file names with `NAME`",
			},
			&cli.BoolFlag{
				Name:               "dictzip",
				Usage:              "compress chunk files with dictzip",
				DisableDefaultText: true,
			},
			&cli.IntFlag{
				Name:  "revision",
				Usage: "set the distribution revision to `N`",
			},
			&cli.IntFlag{
				Name:  "target-size",
				Usage: "target chunk file size in `BYTES`",
			},
			&cli.Float64Flag{
				Name:  "ratio",
				Usage: "divide the target size by `RATIO` when packing entries",
			},
			&cli.StringFlag{
				Name:  "fixture-dir",
				Usage: "write the test fixture to `DIR`",
			},
			&cli.StringFlag{
				Name:  "fixture-name",
				Usage: "name the test fixture `NAME`.json",
			},
			&cli.BoolFlag{
				Name:               "no-fixture",
				Usage:              "do not write the test fixture",
				DisableDefaultText: true,
			},
			&cli.BoolFlag{
				Name:               "help",
				Usage:              "print this help text and exit",
				Aliases:            []string{"h"},
				DisableDefaultText: true,
			},
		),
		Action: func(c *cli.Context) error {
			if c.Bool("help") {
				check(cli.ShowSubcommandHelp(c))
				return nil
			}

			cfg, err := loadConfig(c)
			if err != nil {
				return err
			}

			r, buildErr := cedict.Build(cfg, loggerFrom(c))
			if r != nil {
				printResults(c, r.Chunks, r.Fixture)
			}
			if buildErr != nil {
				return fmt.Errorf("%w: %w", ErrCedictutil, buildErr)
			}
			return nil
		},
	}
}

// loadConfig reads the configuration file and environment and applies the
// flags that are set on the command line.
func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCedictutil, err)
	}

	setString := func(name string, dst *string) {
		if c.IsSet(name) {
			*dst = c.String(name)
		}
	}
	setString("cedict", &cfg.Sources.CEDICT)
	setString("readings", &cfg.Sources.Readings)
	setString("dictionary-like", &cfg.Sources.DictionaryLike)
	setString("irg-sources", &cfg.Sources.IRGSources)
	setString("out-dir", &cfg.Output.Dir)
	setString("name", &cfg.Output.Name)
	setString("fixture-dir", &cfg.Fixture.Dir)
	setString("fixture-name", &cfg.Fixture.Name)

	if c.IsSet("dictzip") {
		cfg.Output.DictZip = c.Bool("dictzip")
	}
	if c.IsSet("no-fixture") {
		cfg.Fixture.Disabled = c.Bool("no-fixture")
	}
	if c.IsSet("revision") {
		cfg.Chunk.Revision = c.Int("revision")
	}
	if c.IsSet("target-size") {
		cfg.Chunk.TargetSize = c.Int("target-size")
	}
	if c.IsSet("ratio") {
		cfg.Chunk.AdjustmentRatio = c.Float64("ratio")
	}

	dirs := c.StringSlice("data-dir")
	cfg.Sources.CEDICT = findSource(cfg.Sources.CEDICT, dirs)
	cfg.Sources.Readings = findSource(cfg.Sources.Readings, dirs)
	cfg.Sources.DictionaryLike = findSource(cfg.Sources.DictionaryLike, dirs)
	cfg.Sources.IRGSources = findSource(cfg.Sources.IRGSources, dirs)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFlagParse, err)
	}
	return cfg, nil
}

// findSource returns path if it exists. Otherwise it returns the first file in
// dirs with the same base name, possibly compressed. If none is found path is
// returned unchanged.
func findSource(path string, dirs []string) string {
	if path == "" {
		return path
	}
	if _, err := os.Stat(path); err == nil {
		return path
	}

	base := filepath.Base(path)
	for _, dir := range dirs {
		for _, ext := range []string{"", ".gz", ".dz"} {
			candidate := filepath.Join(dir, base+ext)
			if _, err := os.Stat(candidate); err == nil {
				return candidate
			}
		}
	}
	return path
}

// printResults prints a table of written or listed files.
func printResults(c *cli.Context, chunks []output.Result, fixture *output.Result) {
	tbl := table.New("Chunk", "Version", "Revision", "Entries", "Size", "Path").WithWriter(c.App.Writer)
	for _, r := range chunks {
		tbl.AddRow(r.ChunkNumber, r.Version, r.Revision, r.Entries, r.Size, r.Path)
	}
	if fixture != nil {
		tbl.AddRow("fixture", fixture.Version, fixture.Revision, fixture.Entries, fixture.Size, fixture.Path)
	}
	tbl.Print()
}
