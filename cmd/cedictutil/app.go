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
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"sigs.k8s.io/release-utils/version"
)

const (
	// ExitCodeSuccess is successful error code.
	ExitCodeSuccess int = iota

	// ExitCodeFlagParseError is the exit code for a flag parsing error.
	ExitCodeFlagParseError

	// ExitCodeUnknownError is the exit code for an unknown error.
	ExitCodeUnknownError
)

// ErrCedictutil is a parent error for all command errors.
var ErrCedictutil = errors.New("cedictutil")

// ErrFlagParse is a flag parsing error.
var ErrFlagParse = fmt.Errorf("%w: parsing flags", ErrCedictutil)

var copyrightNames = []string{
	"2025 Ian Lewis",
}

//nolint:gochecknoinits // init needed needed for global variable.
func init() {
	// Set the HelpFlag to a random name so that it isn't used. `cli` handles
	// the flag with the root command such that it takes a command name argument
	// but the help text of each command is printed by the command itself.
	//
	// This flag is hidden by the help output.
	// See: github.com/urfave/cli/issues/1809
	cli.HelpFlag = &cli.BoolFlag{
		// NOTE: Use a random name no one would guess.
		Name:               "d41d8cd98f00b204e980",
		DisableDefaultText: true,
	}
}

// check checks the error and panics if not nil.
func check(err error) {
	if err != nil {
		panic(err)
	}
}

// newLogger returns the logger for the command. Logs are written to stderr so
// that command output on stdout stays machine readable.
func newLogger(debug bool) (*zap.Logger, error) {
	var cfg zap.Config
	if debug {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("%w: initializing logger: %w", ErrCedictutil, err)
	}
	return logger, nil
}

// loggerFrom returns the logger stored in the app metadata.
func loggerFrom(c *cli.Context) *zap.Logger {
	if l, ok := c.App.Metadata["logger"].(*zap.Logger); ok {
		return l
	}
	return zap.NewNop()
}

func printVersion(c *cli.Context) error {
	info := version.GetVersionInfo()
	_, err := fmt.Fprintf(c.App.Writer, `%s %s
Copyright (c) %s

Git commit:  %s
Build date:  %s
Go version:  %s
Platform:    %s
`,
		c.App.Name,
		info.GitVersion,
		strings.Join(copyrightNames, ", "),
		info.GitCommit,
		info.BuildDate,
		info.GoVersion,
		info.Platform,
	)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrCedictutil, err)
	}
	return nil
}

func newCedictutilApp() *cli.App {
	return &cli.App{
		Name:  filepath.Base(os.Args[0]),
		Usage: "Build and query a JSON distribution of CC-CEDICT.",
		Description: strings.Join([]string{
			"CC-CEDICT and Unihan converter written in Go.",
			"http://github.com/ianlewis/go-cedict",
		}, "\n"),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Usage:   "read configuration from YAML `FILE`",
				Aliases: []string{"c"},
				EnvVars: []string{"CEDICT_CONFIG"},
			},
			&cli.BoolFlag{
				Name:               "debug",
				Usage:              "enable debug logging",
				EnvVars:            []string{"CEDICT_DEBUG"},
				DisableDefaultText: true,
			},

			// Special flags are shown at the end.
			&cli.BoolFlag{
				Name:               "help",
				Usage:              "print this help text and exit",
				Aliases:            []string{"h"},
				DisableDefaultText: true,
			},
			&cli.BoolFlag{
				Name:               "version",
				Usage:              "print version information and exit",
				Aliases:            []string{"V"},
				DisableDefaultText: true,
			},
		},
		Copyright:       strings.Join(copyrightNames, "\n"),
		HideHelp:        true,
		HideHelpCommand: true,
		Before: func(c *cli.Context) error {
			logger, err := newLogger(c.Bool("debug"))
			if err != nil {
				return err
			}
			if c.App.Metadata == nil {
				c.App.Metadata = map[string]interface{}{}
			}
			c.App.Metadata["logger"] = logger
			return nil
		},
		After: func(c *cli.Context) error {
			// Sync fails on some terminals and the error carries no useful
			// information.
			_ = loggerFrom(c).Sync()
			return nil
		},
		OnUsageError: func(_ *cli.Context, err error, _ bool) error {
			return fmt.Errorf("%w: %w", ErrFlagParse, err)
		},
		Action: func(c *cli.Context) error {
			if c.Bool("version") {
				return printVersion(c)
			}

			check(cli.ShowAppHelp(c))
			return nil
		},
		Commands: []*cli.Command{
			buildCommand(),
			inspectCommand(),
			queryCommand(),
		},
	}
}
