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
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/poiesic/dairyreg/catalog"
	"github.com/poiesic/dairyreg/index"
	"github.com/poiesic/dairyreg/search"
)

var (
	catalogFile = flag.String("catalog", "", "catalog file (default: embedded sample)")
	limit       = flag.Int("n", 5, "maximum number of results")
)

func init() {
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))
	flag.Parse()
}

func main() {
	records := catalog.Sample()
	if *catalogFile != "" {
		var err error
		records, err = catalog.LoadFile(*catalogFile)
		if err != nil {
			panic(err)
		}
	}

	idx, err := index.Prepare(records)
	if err != nil {
		panic(err)
	}

	query := "dairy"
	if flag.NArg() > 0 {
		query = strings.Join(flag.Args(), " ")
	}

	results := search.SearchResults(idx, query, search.DefaultThreshold, *limit)
	fmt.Printf("Found %d hits\n", len(results))
	for i, hit := range results {
		fmt.Printf("%d: '%s' (%s)[%0.3f] %s\n", i, hit.Record.Name, hit.Record.RegNo, hit.Score, hit.Field)
	}
}
