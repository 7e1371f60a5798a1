// Copyright 2026 The DYOD Authors.
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

// Command kernelbench populates a synthetic table, optionally
// dictionary-compresses its sealed chunks, then runs a table scan against
// it and reports timings. It exists to exercise the kernel end to end
// against a registry-backed operator tree, the way a real caller would.
package main

import (
	"flag"
	"math/rand"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/pkg/profile"

	"github.com/phnm/DYOD-WS1819/colval"
	"github.com/phnm/DYOD-WS1819/config"
	"github.com/phnm/DYOD-WS1819/ids"
	"github.com/phnm/DYOD-WS1819/kernellog"
	"github.com/phnm/DYOD-WS1819/operator"
	"github.com/phnm/DYOD-WS1819/registry"
	"github.com/phnm/DYOD-WS1819/table"
)

var (
	configPath = flag.String("config", "", "path to a kernel.toml config file (optional)")
	rows       = flag.Int("rows", 1_000_000, "number of synthetic rows to generate")
	chunkSize  = flag.Int("chunk-size", 65536, "rows per chunk before a new chunk is started")
	compress   = flag.Bool("compress", true, "dictionary-compress every sealed chunk before scanning")
	cpuProfile = flag.Bool("cpuprofile", false, "capture a pkg/profile CPU profile of the whole run")
	seed       = flag.Int64("seed", 1, "rng seed for synthetic data generation")
)

func main() {
	flag.Parse()

	cfg, err := loadConfig()
	if err != nil {
		fatal(err)
	}
	kernellog.SetLevel(cfg.LogLevel)

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile).Stop()
	}

	reg := registry.New()
	tbl := table.New(*chunkSize)
	if err := tbl.AddColumn("id", colval.Int); err != nil {
		fatal(err)
	}
	if err := tbl.AddColumn("bucket", colval.String); err != nil {
		fatal(err)
	}
	if err := reg.AddTable("events", tbl); err != nil {
		fatal(err)
	}

	color.Cyan("generating %d synthetic rows (chunk size %d)", *rows, *chunkSize)
	generate(tbl, *rows, *seed)

	if *compress {
		color.Cyan("compressing %d sealed chunks", tbl.ChunkCount()-1)
		for id := 0; id < tbl.ChunkCount()-1; id++ {
			if err := tbl.CompressChunk(ids.ChunkID(id)); err != nil {
				fatal(err)
			}
		}
	}

	src := operator.NewGetTable(reg, "events")
	scan := operator.NewTableScan(src, 0, operator.Ge, colval.NewInt(int32(*rows/2)), cfg.ScanWorkers)

	start := time.Now()
	out, err := scan.Execute()
	if err != nil {
		fatal(err)
	}
	elapsed := time.Since(start)

	color.Green("scan matched %d / %d rows in %s", out.RowCount(), tbl.RowCount(), elapsed)
}

func generate(tbl *table.Table, n int, seed int64) {
	rnd := rand.New(rand.NewSource(seed))
	buckets := []string{"a", "b", "c", "d", "e"}
	for i := 0; i < n; i++ {
		row := []colval.Variant{
			colval.NewInt(int32(i)),
			colval.NewString(buckets[rnd.Intn(len(buckets))]),
		}
		if err := tbl.Append(row); err != nil {
			fatal(err)
		}
	}
}

func loadConfig() (*config.Config, error) {
	if *configPath == "" {
		return config.Default()
	}
	return config.Load(*configPath)
}

func fatal(err error) {
	color.Red("kernelbench: %v", err)
	os.Exit(1)
}
