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

	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-cedict/internal/output"
)

func inspectCommand() *cli.Command {
	return &cli.Command{
		Name:      "inspect",
		Usage:     "list the chunk files in a directory",
		UsageText: "inspect [OPTIONS] DIR",
		ArgsUsage: "DIR",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:               "help",
				Usage:              "print this help text and exit",
				Aliases:            []string{"h"},
				DisableDefaultText: true,
			},
		},
		Action: func(c *cli.Context) error {
			if c.Bool("help") {
				check(cli.ShowSubcommandHelp(c))
				return nil
			}

			if c.NArg() != 1 {
				return fmt.Errorf("%w: expected a single directory, got %d arguments", ErrFlagParse, c.NArg())
			}

			results, err := output.List(c.Args().First())
			if err != nil {
				return fmt.Errorf("%w: %w", ErrCedictutil, err)
			}
			printResults(c, results, nil)
			return nil
		},
	}
}
