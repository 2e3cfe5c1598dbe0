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
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/poiesic/dairyreg"
	"github.com/poiesic/dairyreg/importer"
)

var (
	dbPath        = flag.String("db", "./registry_db", "database directory")
	seedFileName  = flag.String("src", "", "catalog file to seed from (default: embedded sample)")
	forceReimport = flag.Bool("force", false, "import even when the stored catalog is identical")
)

func init() {
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))
	flag.Parse()
}

func main() {
	cfg := importer.DefaultConfig()
	cfg.Force = *forceReimport

	reg, err := dairyreg.Open(*dbPath, dairyreg.WithImporterConfig(cfg))
	if err != nil {
		panic(err)
	}
	defer reg.Close()

	ctx := context.Background()
	progress := importer.WithProgress(os.Stderr)
	if *seedFileName != "" {
		_, err = reg.ImportFile(ctx, *seedFileName, progress)
	} else {
		_, err = reg.ImportSample(ctx, progress)
	}
	if err != nil {
		panic(err)
	}
}
