// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/poiesic/dairyreg/importer"
	"github.com/poiesic/dairyreg/search"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func dbFlag(required bool) *cli.StringFlag {
	return &cli.StringFlag{
		Name:     "db",
		Aliases:  []string{"d"},
		Usage:    "Path to BadgerDB database directory",
		EnvVars:  []string{"DAIRYREG_DB"},
		Required: required,
	}
}

func rankingFlags() []cli.Flag {
	return []cli.Flag{
		dbFlag(false),
		&cli.StringFlag{
			Name:    "catalog",
			Aliases: []string{"c"},
			Usage:   "Search a catalog file (json, yaml, csv) instead of a database",
		},
		&cli.Float64Flag{
			Name:    "threshold",
			Aliases: []string{"t"},
			Usage:   "Minimum relevance in [0, 1] for a result",
			EnvVars: []string{"DAIRYREG_THRESHOLD"},
			Value:   search.DefaultThreshold,
		},
		&cli.IntFlag{
			Name:    "limit",
			Aliases: []string{"n"},
			Usage:   "Maximum number of results",
			EnvVars: []string{"DAIRYREG_LIMIT"},
			Value:   search.DefaultLimit,
		},
		&cli.BoolFlag{
			Name:    "explain",
			Aliases: []string{"x"},
			Usage:   "Show the field that explains each match, with matched characters bracketed",
		},
	}
}

func importFlags() []cli.Flag {
	defaults := importer.DefaultConfig()
	return []cli.Flag{
		dbFlag(true),
		&cli.BoolFlag{
			Name:  "force",
			Usage: "Import even when the stored catalog is identical",
		},
		&cli.IntFlag{
			Name:  "batch-size",
			Usage: "Number of establishments written per transaction",
			Value: defaults.BatchSize,
		},
		&cli.IntFlag{
			Name:  "report-interval",
			Usage: "Report progress every N establishments",
			Value: defaults.ReportInterval,
		},
		&cli.IntFlag{
			Name:  "max-retries",
			Usage: "Maximum attempts for a failed batch write",
			Value: defaults.MaxRetries,
		},
		&cli.DurationFlag{
			Name:  "retry-delay",
			Usage: "Base delay for exponential backoff",
			Value: defaults.RetryDelay,
		},
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "dairyreg",
		Usage: "Search the Canadian dairy establishment registry",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "warn",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "import",
				Usage:     "Import a catalog file into the database",
				ArgsUsage: "<catalog file>",
				Action:    importCommand,
				Flags:     importFlags(),
			},
			{
				Name:   "seed",
				Usage:  "Import the embedded sample catalog into the database",
				Action: seedCommand,
				Flags:  importFlags(),
			},
			{
				Name:      "search",
				Usage:     "Search establishments by registration number, name, or city",
				ArgsUsage: "<query>",
				Action:    searchCommand,
				Flags:     rankingFlags(),
			},
			{
				Name:   "interactive",
				Usage:  "Search interactively, one query per line",
				Action: interactiveCommand,
				Flags:  rankingFlags(),
			},
			{
				Name:   "info",
				Usage:  "Show the catalog held by the database",
				Action: infoCommand,
				Flags:  []cli.Flag{dbFlag(true)},
			},
			{
				Name:   "help-regno",
				Usage:  "Explain what a dairy establishment registration number is",
				Action: helpRegNoCommand,
			},
		},
	}
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(c.App.ErrWriter, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
