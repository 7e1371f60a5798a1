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

package operator

import (
	"github.com/phnm/DYOD-WS1819/registry"
	"github.com/phnm/DYOD-WS1819/table"
)

// GetTable is a thin leaf operator: it resolves a name against the
// external registry at construction time and exposes the resolved table
// as an operator result. A failed resolution is remembered and surfaces
// from every call to Execute.
type GetTable struct {
	base
	name     string
	resolved *table.Table
	resolveErr error
}

// NewGetTable resolves name against reg immediately. Failure to resolve
// surfaces the registry's NotFound error from every later Execute call.
func NewGetTable(reg *registry.Registry, name string) *GetTable {
	g := &GetTable{name: name}
	g.resolved, g.resolveErr = reg.GetTable(name)
	return g
}

// Name returns the table name this operator resolves.
func (g *GetTable) Name() string { return g.name }

func (g *GetTable) Execute() (*table.Table, error) {
	return g.cachedExecute(func() (*table.Table, error) {
		return g.resolved, g.resolveErr
	})
}
