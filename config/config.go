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

// Package config loads the storage kernel's TOML-backed configuration.
package config

import (
	"github.com/BurntSushi/toml"
	"github.com/creasty/defaults"

	"github.com/phnm/DYOD-WS1819/kernelerr"
	"github.com/phnm/DYOD-WS1819/table"
)

// Config holds the kernel's tunables. Zero-value fields are filled by
// Default()/Load() via creasty/defaults struct tags.
type Config struct {
	// ChunkSize is the default per-table row cap passed to table.New.
	ChunkSize int `toml:"chunk_size" default:"4294967294"`
	// ScanWorkers bounds the per-chunk parallelism of TableScan; 0 means
	// "use GOMAXPROCS" (resolved by the operator package).
	ScanWorkers int `toml:"scan_workers" default:"0"`
	// LogLevel names the kernellog level ("debug", "info", "warn", "error").
	LogLevel string `toml:"log_level" default:"info"`
}

// Default returns a Config with every field set to its struct-tag default.
func Default() (*Config, error) {
	cfg := &Config{}
	if err := defaults.Set(cfg); err != nil {
		return nil, kernelerr.New(kernelerr.Precondition, "applying config defaults: %v", err)
	}
	return cfg, nil
}

// Load reads a TOML document from path, applying struct-tag defaults to
// any field the file leaves unset.
func Load(path string) (*Config, error) {
	cfg, err := Default()
	if err != nil {
		return nil, err
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, kernelerr.New(kernelerr.Precondition, "loading config %s: %v", path, err)
	}
	return cfg, nil
}

// NewTableChunkSize is a convenience for wiring cfg.ChunkSize into
// table.New without every caller re-deriving it, falling back to
// table.DefaultChunkSize when ChunkSize is not positive.
func (c *Config) NewTableChunkSize() int {
	if c.ChunkSize <= 0 {
		return table.DefaultChunkSize
	}
	return c.ChunkSize
}
