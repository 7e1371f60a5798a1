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

// Package operator implements the operator tree: GetTable leaves and
// TableScan nodes, each a pure function of its inputs that caches its
// result behind a one-shot execute.
package operator

import (
	"sync"

	"github.com/phnm/DYOD-WS1819/table"
)

// Operator is any node of the operator tree: GetTable, TableScan, and
// future operators all implement it. Execute runs (or returns the cached
// result of) the operator and produces an immutable result table handle.
type Operator interface {
	Execute() (*table.Table, error)
}

// base implements the cached, run-once execution every operator shares,
// mirroring AbstractOperator's "execute() runs once and caches" contract.
// base holds no input operators and has no left/right fields: each
// operator keeps its own inputs (TableScan one, GetTable none).
type base struct {
	once   sync.Once
	result *table.Table
	err    error
}

func (b *base) cachedExecute(compute func() (*table.Table, error)) (*table.Table, error) {
	b.once.Do(func() {
		b.result, b.err = compute()
	})
	return b.result, b.err
}
